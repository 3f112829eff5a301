//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustStay(t *testing.T, checkIn, checkOut time.Time) booking.StayPeriod {
	t.Helper()
	s, err := booking.NewStayPeriod(checkIn, checkOut)
	require.NoError(t, err)
	return s
}

func TestNewStayPeriod(t *testing.T) {
	tests := []struct {
		name       string
		checkIn    time.Time
		checkOut   time.Time
		wantNights int
		wantErr    error
	}{
		{name: "five nights", checkIn: date(2030, 5, 1), checkOut: date(2030, 5, 6), wantNights: 5},
		{name: "across month end", checkIn: date(2030, 1, 30), checkOut: date(2030, 2, 2), wantNights: 3},
		{name: "across leap day", checkIn: date(2028, 2, 28), checkOut: date(2028, 3, 1), wantNights: 2},
		{name: "time of day is dropped", checkIn: date(2030, 5, 1).Add(23 * time.Hour), checkOut: date(2030, 5, 2).Add(time.Hour), wantNights: 1},
		{name: "same day", checkIn: date(2030, 5, 1), checkOut: date(2030, 5, 1), wantErr: booking.ErrInvalidStayPeriod},
		{name: "inverted", checkIn: date(2030, 5, 2), checkOut: date(2030, 5, 1), wantErr: booking.ErrInvalidStayPeriod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := booking.NewStayPeriod(tt.checkIn, tt.checkOut)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, errs.Is(err, errs.ErrBadRequest))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantNights, s.Nights())
			assert.Positive(t, s.Nights())
		})
	}
}

func TestStayPeriod_Overlaps(t *testing.T) {
	base := mustStay(t, date(2030, 5, 10), date(2030, 5, 15))

	tests := []struct {
		name  string
		other booking.StayPeriod
		want  bool
	}{
		{name: "check-out day equals check-in day", other: mustStay(t, date(2030, 5, 15), date(2030, 5, 18)), want: false},
		{name: "check-in day equals check-out day", other: mustStay(t, date(2030, 5, 7), date(2030, 5, 10)), want: false},
		{name: "one night shared", other: mustStay(t, date(2030, 5, 14), date(2030, 5, 16)), want: true},
		{name: "contained", other: mustStay(t, date(2030, 5, 11), date(2030, 5, 12)), want: true},
		{name: "containing", other: mustStay(t, date(2030, 5, 1), date(2030, 5, 30)), want: true},
		{name: "disjoint", other: mustStay(t, date(2030, 6, 1), date(2030, 6, 2)), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

func TestStayPeriod_ValidateStartsOnOrAfter(t *testing.T) {
	stay := mustStay(t, date(2030, 5, 10), date(2030, 5, 15))

	require.NoError(t, stay.ValidateStartsOnOrAfter(date(2030, 5, 10).Add(20*time.Hour)))
	require.NoError(t, stay.ValidateStartsOnOrAfter(date(2030, 5, 1)))
	require.ErrorIs(t, stay.ValidateStartsOnOrAfter(date(2030, 5, 11)), booking.ErrCheckInInPast)
}

func TestNewGuestCount(t *testing.T) {
	tests := []struct {
		name     string
		adults   int
		children int
		max      int
		wantErr  bool
	}{
		{name: "typical", adults: 2, children: 1, max: 20},
		{name: "upper bound", adults: 20, children: 20, max: 20},
		{name: "children only", adults: 0, children: 2, max: 20},
		{name: "default bound", adults: 20, children: 0, max: 0},
		{name: "too many adults", adults: 21, children: 0, max: 20, wantErr: true},
		{name: "negative children", adults: 1, children: -1, max: 20, wantErr: true},
		{name: "nobody", adults: 0, children: 0, max: 20, wantErr: true},
		{name: "custom bound", adults: 5, children: 0, max: 4, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := booking.NewGuestCount(tt.adults, tt.children, tt.max)
			if tt.wantErr {
				require.ErrorIs(t, err, booking.ErrInvalidGuestCount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.adults, g.Adults())
			assert.Equal(t, tt.children, g.Children())
		})
	}
}

func TestNewRemarksAndPaymentMethod(t *testing.T) {
	r, err := booking.NewRemarks("  late arrival ")
	require.NoError(t, err)
	assert.Equal(t, "late arrival", r.String())

	_, err = booking.NewRemarks(strings.Repeat("x", booking.MaxRemarksLength+1))
	require.ErrorIs(t, err, booking.ErrRemarksTooLong)

	pm, err := booking.NewPaymentMethod("card")
	require.NoError(t, err)
	assert.Equal(t, "card", pm.String())

	_, err = booking.NewPaymentMethod(" ")
	require.ErrorIs(t, err, booking.ErrInvalidPayment)
}
