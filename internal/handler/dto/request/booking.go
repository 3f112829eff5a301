package request

import (
	"time"

	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidDate = errs.NewKind("dates must use the YYYY-MM-DD format", errs.ErrBadRequest)

type CreateBookingRequest struct {
	HotelID  uuid.UUID   `json:"hotel_id" binding:"required"`
	RoomIDs  []uuid.UUID `json:"room_ids" binding:"required,min=1"`
	CheckIn  string      `json:"check_in" binding:"required" example:"2025-01-10"`
	CheckOut string      `json:"check_out" binding:"required" example:"2025-01-15"`
	// Upper bounds come from BOOKING_MAX_GUESTS_PER_KIND.
	Adults        int    `json:"adults" binding:"min=0"`
	Children      int    `json:"children" binding:"min=0"`
	Remarks       string `json:"remarks,omitempty" binding:"max=1000"`
	PaymentMethod string `json:"payment_method" binding:"required,max=50"`
}

// Dates parses check-in and check-out as calendar dates.
func (r CreateBookingRequest) Dates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(time.DateOnly, r.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, errs.Wrapf(ErrInvalidDate, "check_in %q", r.CheckIn)
	}
	checkOut, err = time.Parse(time.DateOnly, r.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, errs.Wrapf(ErrInvalidDate, "check_out %q", r.CheckOut)
	}
	return checkIn, checkOut, nil
}
