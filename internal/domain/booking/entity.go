package booking

import (
	"time"

	"hotel-booking/internal/domain/discount"
	"hotel-booking/internal/domain/pricing"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRoomNotInHotel = errs.NewKind("room does not belong to the hotel", errs.ErrBadRequest)
	ErrDuplicateRoom  = errs.NewKind("room requested more than once", errs.ErrBadRequest)
	ErrNoRooms        = errs.NewKind("at least one room is required", errs.ErrBadRequest)
	ErrNegativeTotal  = errs.New("booking total cannot be negative")
)

// Draft is a booking under construction. It only becomes a Booking once every
// line is bound and the total is priced.
type Draft struct {
	id            uuid.UUID
	hotelID       uuid.UUID
	guestID       uuid.UUID
	stay          StayPeriod
	guests        GuestCount
	remarks       Remarks
	paymentMethod PaymentMethod
	lines         []Line
}

func NewDraft(
	hotelID, guestID uuid.UUID,
	stay StayPeriod,
	guests GuestCount,
	remarks Remarks,
	paymentMethod PaymentMethod,
) *Draft {
	return &Draft{
		id:            uuid.New(),
		hotelID:       hotelID,
		guestID:       guestID,
		stay:          stay,
		guests:        guests,
		remarks:       remarks,
		paymentMethod: paymentMethod,
	}
}

func (d *Draft) AddLine(r *room.Room, disc *discount.Discount) error {
	for _, l := range d.lines {
		if l.room.ID() == r.ID() {
			return errs.Wrapf(ErrDuplicateRoom, "room %s", r.ID())
		}
	}
	line, err := NewLine(r, disc)
	if err != nil {
		return err
	}
	d.lines = append(d.lines, line)
	return nil
}

func (d *Draft) ValidateRoomsBelongToHotel() error {
	for _, l := range d.lines {
		if !l.room.BelongsTo(d.hotelID) {
			return errs.Wrapf(ErrRoomNotInHotel, "room %s, hotel %s", l.room.ID(), d.hotelID)
		}
	}
	return nil
}

func (d *Draft) ValidateCapacity() error {
	return ValidateCapacity(d.guests, d.Rooms())
}

// Finalize prices every line for the stay and freezes the total.
func (d *Draft) Finalize(calc pricing.Calculator) (*Booking, error) {
	if len(d.lines) == 0 {
		return nil, ErrNoRooms
	}

	nights := d.stay.Nights()
	prices := make([]pricing.LinePrice, 0, len(d.lines))
	for _, l := range d.lines {
		prices = append(prices, l.Price(calc, nights))
	}
	total := calc.ComputeBookingTotal(prices)
	if total.IsNegative() {
		return nil, ErrNegativeTotal
	}

	lines := make([]Line, len(d.lines))
	copy(lines, d.lines)

	return &Booking{
		id:            d.id,
		hotelID:       d.hotelID,
		guestID:       d.guestID,
		stay:          d.stay,
		guests:        d.guests,
		remarks:       d.remarks,
		paymentMethod: d.paymentMethod,
		price:         total,
		lines:         lines,
	}, nil
}

func (d *Draft) Rooms() []*room.Room {
	rooms := make([]*room.Room, 0, len(d.lines))
	for _, l := range d.lines {
		rooms = append(rooms, l.room)
	}
	return rooms
}

func (d *Draft) ID() uuid.UUID      { return d.id }
func (d *Draft) HotelID() uuid.UUID { return d.hotelID }
func (d *Draft) GuestID() uuid.UUID { return d.guestID }
func (d *Draft) Stay() StayPeriod   { return d.stay }
func (d *Draft) Guests() GuestCount { return d.guests }
func (d *Draft) Lines() []Line      { return d.lines }

// Booking is immutable once created. price is the total agreed at creation
// and is never recomputed from the current discounts.
type Booking struct {
	id            uuid.UUID
	hotelID       uuid.UUID
	guestID       uuid.UUID
	stay          StayPeriod
	guests        GuestCount
	remarks       Remarks
	paymentMethod PaymentMethod
	price         pricing.Money
	lines         []Line
	createdAt     time.Time
}

func Reconstruct(
	id, hotelID, guestID uuid.UUID,
	stay StayPeriod,
	guests GuestCount,
	remarks Remarks,
	paymentMethod PaymentMethod,
	price pricing.Money,
	lines []Line,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		hotelID:       hotelID,
		guestID:       guestID,
		stay:          stay,
		guests:        guests,
		remarks:       remarks,
		paymentMethod: paymentMethod,
		price:         price,
		lines:         lines,
		createdAt:     createdAt,
	}
}

func (b *Booking) IsOwnedBy(guestID uuid.UUID) bool {
	return b.guestID == guestID
}

func (b *Booking) RoomNumbers() []string {
	numbers := make([]string, 0, len(b.lines))
	for _, l := range b.lines {
		numbers = append(numbers, l.room.Number())
	}
	return numbers
}

func (b *Booking) Lines() []Line {
	lines := make([]Line, len(b.lines))
	copy(lines, b.lines)
	return lines
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) HotelID() uuid.UUID           { return b.hotelID }
func (b *Booking) GuestID() uuid.UUID           { return b.guestID }
func (b *Booking) Stay() StayPeriod             { return b.stay }
func (b *Booking) Guests() GuestCount           { return b.guests }
func (b *Booking) Remarks() Remarks             { return b.remarks }
func (b *Booking) PaymentMethod() PaymentMethod { return b.paymentMethod }
func (b *Booking) Price() pricing.Money         { return b.price }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
