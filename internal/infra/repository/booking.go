package repository

import (
	"context"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/repository/converter"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/errs"
)

const bookingRoomsOverlapConstraint = "booking_rooms_no_overlap"

var errLineNotWritten = errs.New("booking line was not written")

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	CreateBookingRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingRoomParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

// Create writes the booking row and one row per line, in line order. A line
// that collides with another stay of the same room is reported as
// *booking.UnavailableRoomError.
func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}

	for i, line := range b.Lines() {
		n, err := r.queries.CreateBookingRoom(ctx, tx, converter.BookingLineToCreateParams(b, line, i))
		if err != nil {
			wrapped := infra.WrapRepoErr("failed to create booking room", err)
			if infra.IsKind(wrapped, infra.KindConflict) && infra.ConstraintName(err) == bookingRoomsOverlapConstraint {
				return booking.NewUnavailableRoomError(line.Room().ID(), b.Stay(), wrapped)
			}
			return wrapped
		}
		if n == 0 {
			return infra.WrapRepoErr("failed to create booking room", errLineNotWritten, infra.KindDBFailure)
		}
	}
	return nil
}
