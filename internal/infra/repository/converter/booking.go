package converter

import (
	"math"

	"hotel-booking/internal/domain/booking"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:            b.ID(),
		HotelID:       b.HotelID(),
		GuestID:       b.GuestID(),
		CheckIn:       pgconv.DateToPgtype(b.Stay().CheckIn()),
		CheckOut:      pgconv.DateToPgtype(b.Stay().CheckOut()),
		Adults:        toInt32(b.Guests().Adults()),
		Children:      toInt32(b.Guests().Children()),
		Remarks:       pgconv.OptionalStringToPgtype(b.Remarks().String()),
		PaymentMethod: b.PaymentMethod().String(),
		Price:         pgconv.DecimalToNumeric(b.Price().Decimal()),
	}
}

func BookingLineToCreateParams(b *booking.Booking, line booking.Line, position int) sqlc.CreateBookingRoomParams {
	discountID := pgtype.UUID{Valid: false}
	if d := line.Discount(); d != nil {
		discountID = pgconv.UUIDToPgtype(d.ID())
	}
	return sqlc.CreateBookingRoomParams{
		BookingID:  b.ID(),
		RoomID:     line.Room().ID(),
		DiscountID: discountID,
		Position:   toInt32(position),
		CheckIn:    pgconv.DateToPgtype(b.Stay().CheckIn()),
		CheckOut:   pgconv.DateToPgtype(b.Stay().CheckOut()),
	}
}

// Values come from validated domain objects; clamping only guards the conversion.
func toInt32(n int) int32 {
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	if n < math.MinInt32 {
		return math.MinInt32
	}
	return int32(n)
}
