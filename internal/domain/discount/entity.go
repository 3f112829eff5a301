package discount

import (
	"errors"
	"time"

	"hotel-booking/internal/domain/pricing"
	"hotel-booking/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPercentage      = errors.New("discount percentage must be between 0 and 100")
	ErrInvalidDiscountedPrice = errors.New("discounted price must be between 0 and the room price")
	ErrInvalidWindow          = errors.New("discount end date must not precede its start date")
	ErrZeroRoomPrice          = errors.New("cannot derive a percentage from a zero room price")
)

var hundred = decimal.NewFromInt(100)

// Window is the closed date interval [start, end] in which a discount applies.
type Window struct {
	start time.Time
	end   time.Time
}

func NewWindow(start, end time.Time) (Window, error) {
	start, end = clock.DateOf(start), clock.DateOf(end)
	if end.Before(start) {
		return Window{}, ErrInvalidWindow
	}
	return Window{start: start, end: end}, nil
}

func (w Window) Start() time.Time { return w.start }
func (w Window) End() time.Time   { return w.end }

// Covers reports whether both stay dates fall inside the window.
func (w Window) Covers(checkIn, checkOut time.Time) bool {
	checkIn, checkOut = clock.DateOf(checkIn), clock.DateOf(checkOut)
	return !checkIn.Before(w.start) && !checkOut.After(w.end)
}

// Discount is a percentage reduction of one room's nightly price. The room
// price is carried so the discounted price is always derived, never stored.
type Discount struct {
	id         uuid.UUID
	roomID     uuid.UUID
	roomPrice  pricing.Money
	percentage decimal.Decimal
	window     Window
	createdAt  time.Time
}

func NewFromPercentage(
	id, roomID uuid.UUID,
	roomPrice pricing.Money,
	percentage decimal.Decimal,
	window Window,
	createdAt time.Time,
) (*Discount, error) {
	percentage = pricing.Round(percentage)
	if percentage.IsNegative() || percentage.GreaterThan(hundred) {
		return nil, ErrInvalidPercentage
	}

	return &Discount{
		id:         id,
		roomID:     roomID,
		roomPrice:  roomPrice,
		percentage: percentage,
		window:     window,
		createdAt:  createdAt,
	}, nil
}

// NewFromDiscountedPrice derives the percentage from a target nightly price.
func NewFromDiscountedPrice(
	id, roomID uuid.UUID,
	roomPrice pricing.Money,
	discountedPrice pricing.Money,
	window Window,
	createdAt time.Time,
) (*Discount, error) {
	if !roomPrice.IsPositive() {
		return nil, ErrZeroRoomPrice
	}
	if discountedPrice.IsNegative() || discountedPrice.Cmp(roomPrice) > 0 {
		return nil, ErrInvalidDiscountedPrice
	}

	original := roomPrice.Decimal()
	percentage := original.Sub(discountedPrice.Decimal()).Div(original).Mul(hundred)

	return NewFromPercentage(id, roomID, roomPrice, percentage, window, createdAt)
}

func (d *Discount) DiscountedPrice() pricing.Money {
	price := d.roomPrice.Decimal()
	off := price.Mul(d.percentage).Div(hundred)
	return pricing.NewMoney(price.Sub(off)).Round()
}

func (d *Discount) AppliesTo(checkIn, checkOut time.Time) bool {
	return d.window.Covers(checkIn, checkOut)
}

func (d *Discount) ID() uuid.UUID                { return d.id }
func (d *Discount) RoomID() uuid.UUID            { return d.roomID }
func (d *Discount) OriginalPrice() pricing.Money { return d.roomPrice }
func (d *Discount) Percentage() decimal.Decimal  { return d.percentage }
func (d *Discount) Window() Window               { return d.window }
func (d *Discount) CreatedAt() time.Time         { return d.createdAt }
