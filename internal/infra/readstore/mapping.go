package readstore

import (
	"time"

	"hotel-booking/internal/domain/discount"
	"hotel-booking/internal/domain/pricing"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type roomColumns struct {
	ID               uuid.UUID
	HotelID          uuid.UUID
	Number           string
	RoomType         string
	Price            pgtype.Numeric
	AdultsCapacity   int32
	ChildrenCapacity int32
}

func toRoom(c roomColumns) (*room.Room, error) {
	price, err := pgconv.DecimalFromNumeric(c.Price)
	if err != nil {
		return nil, errs.Wrapf(err, "room %s price", c.ID)
	}
	r, err := room.NewRoom(c.ID, c.HotelID, c.Number, c.RoomType, pricing.NewMoney(price),
		int(c.AdultsCapacity), int(c.ChildrenCapacity))
	if err != nil {
		return nil, errs.Wrapf(err, "room %s", c.ID)
	}
	return r, nil
}

type discountColumns struct {
	ID         uuid.UUID
	RoomID     uuid.UUID
	RoomPrice  pgtype.Numeric
	Percentage pgtype.Numeric
	StartDate  pgtype.Date
	EndDate    pgtype.Date
	CreatedAt  time.Time
}

func toDiscount(c discountColumns) (*discount.Discount, error) {
	price, err := pgconv.DecimalFromNumeric(c.RoomPrice)
	if err != nil {
		return nil, errs.Wrapf(err, "discount %s room price", c.ID)
	}
	pct, err := pgconv.DecimalFromNumeric(c.Percentage)
	if err != nil {
		return nil, errs.Wrapf(err, "discount %s percentage", c.ID)
	}
	window, err := discount.NewWindow(pgconv.DateFromPgtype(c.StartDate), pgconv.DateFromPgtype(c.EndDate))
	if err != nil {
		return nil, errs.Wrapf(err, "discount %s", c.ID)
	}
	d, err := discount.NewFromPercentage(c.ID, c.RoomID, pricing.NewMoney(price), pct, window, c.CreatedAt)
	if err != nil {
		return nil, errs.Wrapf(err, "discount %s", c.ID)
	}
	return d, nil
}
