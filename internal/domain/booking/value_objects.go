package booking

import (
	"strings"
	"time"
	"unicode/utf8"

	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
)

const (
	DefaultMaxGuestsPerKind = 20
	MaxRemarksLength        = 1000
	MaxPaymentMethodLength  = 50
)

var (
	ErrInvalidStayPeriod = errs.NewKind("check-out must be after check-in", errs.ErrBadRequest)
	ErrCheckInInPast     = errs.NewKind("check-in cannot be in the past", errs.ErrBadRequest)
	ErrInvalidGuestCount = errs.NewKind("invalid guest count", errs.ErrBadRequest)
	ErrRemarksTooLong    = errs.NewKind("remarks are too long", errs.ErrBadRequest)
	ErrInvalidPayment    = errs.NewKind("invalid payment method", errs.ErrBadRequest)
)

// StayPeriod is a half-open range of calendar dates [checkIn, checkOut).
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	checkIn, checkOut = clock.DateOf(checkIn), clock.DateOf(checkOut)
	if !checkOut.After(checkIn) {
		return StayPeriod{}, ErrInvalidStayPeriod
	}
	return StayPeriod{checkIn: checkIn, checkOut: checkOut}, nil
}

func (s StayPeriod) CheckIn() time.Time  { return s.checkIn }
func (s StayPeriod) CheckOut() time.Time { return s.checkOut }

// Nights is the difference of the two day numbers. Both ends are UTC
// midnight so the division is exact.
func (s StayPeriod) Nights() int {
	return int(s.checkOut.Sub(s.checkIn).Hours() / 24)
}

// Overlaps treats a check-out and a check-in on the same day as disjoint.
func (s StayPeriod) Overlaps(other StayPeriod) bool {
	return s.checkIn.Before(other.checkOut) && other.checkIn.Before(s.checkOut)
}

func (s StayPeriod) ValidateStartsOnOrAfter(today time.Time) error {
	if s.checkIn.Before(clock.DateOf(today)) {
		return ErrCheckInInPast
	}
	return nil
}

type GuestCount struct {
	adults   int
	children int
}

// NewGuestCount bounds each count to [0, maxPerKind]; a non-positive maxPerKind
// falls back to DefaultMaxGuestsPerKind.
func NewGuestCount(adults, children, maxPerKind int) (GuestCount, error) {
	if maxPerKind <= 0 {
		maxPerKind = DefaultMaxGuestsPerKind
	}
	if adults < 0 || children < 0 || adults > maxPerKind || children > maxPerKind {
		return GuestCount{}, errs.Wrapf(ErrInvalidGuestCount, "adults=%d children=%d", adults, children)
	}
	if adults+children == 0 {
		return GuestCount{}, errs.Wrap(ErrInvalidGuestCount, "at least one guest is required")
	}
	return GuestCount{adults: adults, children: children}, nil
}

func (g GuestCount) Adults() int   { return g.adults }
func (g GuestCount) Children() int { return g.children }

type Remarks struct {
	value string
}

func NewRemarks(value string) (Remarks, error) {
	value = strings.TrimSpace(value)
	if utf8.RuneCountInString(value) > MaxRemarksLength {
		return Remarks{}, ErrRemarksTooLong
	}
	return Remarks{value: value}, nil
}

func (r Remarks) String() string { return r.value }
func (r Remarks) IsEmpty() bool  { return r.value == "" }

// PaymentMethod is an opaque tag recorded with the booking.
type PaymentMethod string

func NewPaymentMethod(value string) (PaymentMethod, error) {
	value = strings.TrimSpace(value)
	if value == "" || len(value) > MaxPaymentMethodLength {
		return "", ErrInvalidPayment
	}
	return PaymentMethod(value), nil
}

func (p PaymentMethod) String() string {
	return string(p)
}
