package booking

import (
	"fmt"
	"time"

	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// UnavailableRoomError reports a room that already has a booking sharing at
// least one night with the requested stay.
type UnavailableRoomError struct {
	RoomID   uuid.UUID
	CheckIn  time.Time
	CheckOut time.Time
	cause    error
}

func NewUnavailableRoomError(roomID uuid.UUID, stay StayPeriod, cause error) *UnavailableRoomError {
	return &UnavailableRoomError{
		RoomID:   roomID,
		CheckIn:  stay.CheckIn(),
		CheckOut: stay.CheckOut(),
		cause:    cause,
	}
}

func (e *UnavailableRoomError) Error() string {
	return fmt.Sprintf("room %s is unavailable from %s to %s",
		e.RoomID, e.CheckIn.Format(time.DateOnly), e.CheckOut.Format(time.DateOnly))
}

func (e *UnavailableRoomError) Is(target error) bool {
	return target == errs.ErrUnavailableRoom
}

func (e *UnavailableRoomError) Unwrap() error {
	return e.cause
}
