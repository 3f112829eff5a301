package readstore

import (
	"context"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/discount"
	"hotel-booking/internal/domain/pricing"
	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Booking, error)
	ListBookingRoomsByBookingID(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.ListBookingRoomsByBookingIDRow, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByID loads the booking with the discount each line was bound to at
// creation, not the discount that would apply today.
func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking by id", err)
	}

	lineRows, err := r.queries.ListBookingRoomsByBookingID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking rooms", err)
	}

	b, err := toBooking(row, lineRows)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booking row", errs.Handled(err), infra.KindDBFailure)
	}
	return b, nil
}

func toBooking(row sqlc.Booking, lineRows []sqlc.ListBookingRoomsByBookingIDRow) (*booking.Booking, error) {
	stay, err := booking.NewStayPeriod(pgconv.DateFromPgtype(row.CheckIn), pgconv.DateFromPgtype(row.CheckOut))
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s", row.ID)
	}
	// Stored counts are trusted; the per-kind limit only applies to new requests.
	guests, err := booking.NewGuestCount(int(row.Adults), int(row.Children), int(max(row.Adults, row.Children)))
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s", row.ID)
	}
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s price", row.ID)
	}
	remarks, err := booking.NewRemarks(pgconv.StringFromPgtype(row.Remarks))
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s", row.ID)
	}

	lines := make([]booking.Line, 0, len(lineRows))
	for _, lr := range lineRows {
		line, err := toLine(lr)
		if err != nil {
			return nil, errs.Wrapf(err, "booking %s", row.ID)
		}
		lines = append(lines, line)
	}

	return booking.Reconstruct(
		row.ID, row.HotelID, row.GuestID,
		stay, guests, remarks,
		booking.PaymentMethod(row.PaymentMethod),
		pricing.NewMoney(price),
		lines,
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}

func toLine(lr sqlc.ListBookingRoomsByBookingIDRow) (booking.Line, error) {
	rm, err := toRoom(roomColumns{
		ID:               lr.ID,
		HotelID:          lr.HotelID,
		Number:           lr.Number,
		RoomType:         lr.RoomType,
		Price:            lr.Price,
		AdultsCapacity:   lr.AdultsCapacity,
		ChildrenCapacity: lr.ChildrenCapacity,
	})
	if err != nil {
		return booking.Line{}, err
	}

	var d *discount.Discount
	if lr.DiscountID.Valid {
		d, err = toDiscount(discountColumns{
			ID:         uuid.UUID(lr.DiscountID.Bytes),
			RoomID:     lr.ID,
			RoomPrice:  lr.Price,
			Percentage: lr.DiscountPercentage,
			StartDate:  lr.DiscountStartDate,
			EndDate:    lr.DiscountEndDate,
			CreatedAt:  pgconv.TimeFromPgtype(lr.DiscountCreatedAt),
		})
		if err != nil {
			return booking.Line{}, err
		}
	}

	return booking.NewLine(rm, d)
}
