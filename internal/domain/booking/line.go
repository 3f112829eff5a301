package booking

import (
	"errors"

	"hotel-booking/internal/domain/discount"
	"hotel-booking/internal/domain/pricing"
	"hotel-booking/internal/domain/room"
)

var ErrDiscountRoomMismatch = errors.New("discount does not belong to the room")

// Line binds a room to a booking together with the discount resolved when the
// booking was made. The discount is never re-resolved afterwards.
type Line struct {
	room     *room.Room
	discount *discount.Discount
}

func NewLine(r *room.Room, d *discount.Discount) (Line, error) {
	if d != nil && d.RoomID() != r.ID() {
		return Line{}, ErrDiscountRoomMismatch
	}
	return Line{room: r, discount: d}, nil
}

// FinalPrice is the effective nightly price of the line.
func (l Line) FinalPrice() pricing.Money {
	if l.discount != nil {
		return l.discount.DiscountedPrice()
	}
	return l.room.Price()
}

func (l Line) Price(calc pricing.Calculator, nights int) pricing.LinePrice {
	return calc.ComputeLinePrice(l.room.Price(), l.FinalPrice(), nights)
}

func (l Line) HasDiscount() bool            { return l.discount != nil }
func (l Line) Room() *room.Room             { return l.room }
func (l Line) Discount() *discount.Discount { return l.discount }
