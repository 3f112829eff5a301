//go:build unit

package discount_test

import (
	"testing"
	"time"

	"hotel-booking/internal/domain/discount"
	"hotel-booking/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustWindow(t *testing.T, start, end time.Time) discount.Window {
	t.Helper()
	w, err := discount.NewWindow(start, end)
	require.NoError(t, err)
	return w
}

func TestNewFromDiscountedPrice(t *testing.T) {
	window := mustWindow(t, date(2030, 1, 1), date(2030, 12, 31))

	t.Run("derives percentage from target price", func(t *testing.T) {
		d, err := discount.NewFromDiscountedPrice(uuid.New(), uuid.New(),
			pricing.MustMoney("150"), pricing.MustMoney("105"), window, time.Now())
		require.NoError(t, err)

		assert.True(t, d.Percentage().Equal(decimal.NewFromInt(30)))
		assert.Equal(t, "105.00", d.DiscountedPrice().String())
	})

	t.Run("rounds derived percentage to two digits", func(t *testing.T) {
		d, err := discount.NewFromDiscountedPrice(uuid.New(), uuid.New(),
			pricing.MustMoney("300"), pricing.MustMoney("200"), window, time.Now())
		require.NoError(t, err)

		assert.True(t, d.Percentage().Equal(decimal.RequireFromString("33.33")))
	})

	t.Run("rejects price above room price", func(t *testing.T) {
		_, err := discount.NewFromDiscountedPrice(uuid.New(), uuid.New(),
			pricing.MustMoney("100"), pricing.MustMoney("100.01"), window, time.Now())
		require.ErrorIs(t, err, discount.ErrInvalidDiscountedPrice)
	})

	t.Run("rejects zero room price", func(t *testing.T) {
		_, err := discount.NewFromDiscountedPrice(uuid.New(), uuid.New(),
			pricing.Zero(), pricing.Zero(), window, time.Now())
		require.ErrorIs(t, err, discount.ErrZeroRoomPrice)
	})
}

func TestNewFromPercentage(t *testing.T) {
	window := mustWindow(t, date(2030, 1, 1), date(2030, 12, 31))

	tests := []struct {
		name       string
		price      string
		percentage string
		want       string
		wantErr    error
	}{
		{name: "ten percent", price: "200", percentage: "10", want: "180.00"},
		{name: "rounds half away from zero", price: "0.25", percentage: "50", want: "0.13"},
		{name: "zero percent", price: "99.99", percentage: "0", want: "99.99"},
		{name: "full discount", price: "99.99", percentage: "100", want: "0.00"},
		{name: "negative", price: "100", percentage: "-1", wantErr: discount.ErrInvalidPercentage},
		{name: "above hundred", price: "100", percentage: "100.01", wantErr: discount.ErrInvalidPercentage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := discount.NewFromPercentage(uuid.New(), uuid.New(),
				pricing.MustMoney(tt.price), decimal.RequireFromString(tt.percentage), window, time.Now())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.DiscountedPrice().String())
		})
	}
}

func TestConstructionPathsAgree(t *testing.T) {
	window := mustWindow(t, date(2030, 1, 1), date(2030, 12, 31))
	id, roomID, created := uuid.New(), uuid.New(), time.Now()

	fromPrice, err := discount.NewFromDiscountedPrice(id, roomID,
		pricing.MustMoney("150"), pricing.MustMoney("105"), window, created)
	require.NoError(t, err)
	fromPct, err := discount.NewFromPercentage(id, roomID,
		pricing.MustMoney("150"), decimal.NewFromInt(30), window, created)
	require.NoError(t, err)

	assert.True(t, fromPrice.Percentage().Equal(fromPct.Percentage()))
	assert.True(t, fromPrice.DiscountedPrice().Equal(fromPct.DiscountedPrice()))
}

func TestDiscountedPriceRoundTrip(t *testing.T) {
	window := mustWindow(t, date(2030, 1, 1), date(2030, 12, 31))
	cent := decimal.RequireFromString("0.01")

	prices := []string{"1", "9.99", "49.50", "75", "99.99", "150", "199.99", "200"}
	for _, p := range prices {
		price := pricing.MustMoney(p)
		for _, ratio := range []string{"0", "0.07", "0.333", "0.5", "0.66", "0.9", "1"} {
			target := pricing.NewMoney(price.Decimal().Mul(decimal.RequireFromString(ratio))).Round()

			d, err := discount.NewFromDiscountedPrice(uuid.New(), uuid.New(), price, target, window, time.Now())
			require.NoError(t, err)

			diff := d.DiscountedPrice().Decimal().Sub(target.Decimal()).Abs()
			assert.Truef(t, diff.LessThanOrEqual(cent),
				"price %s target %s got %s", price, target, d.DiscountedPrice())
		}
	}
}

func TestWindow(t *testing.T) {
	t.Run("rejects inverted window", func(t *testing.T) {
		_, err := discount.NewWindow(date(2030, 2, 1), date(2030, 1, 31))
		require.ErrorIs(t, err, discount.ErrInvalidWindow)
	})

	t.Run("single day window", func(t *testing.T) {
		w := mustWindow(t, date(2030, 1, 1), date(2030, 1, 1))
		assert.True(t, w.Covers(date(2030, 1, 1), date(2030, 1, 1)))
	})

	w := mustWindow(t, date(2030, 1, 10), date(2030, 1, 20))
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     bool
	}{
		{name: "inside", checkIn: date(2030, 1, 12), checkOut: date(2030, 1, 15), want: true},
		{name: "exact bounds", checkIn: date(2030, 1, 10), checkOut: date(2030, 1, 20), want: true},
		{name: "starts before", checkIn: date(2030, 1, 9), checkOut: date(2030, 1, 15), want: false},
		{name: "ends after", checkIn: date(2030, 1, 15), checkOut: date(2030, 1, 21), want: false},
		{name: "time of day ignored", checkIn: date(2030, 1, 10).Add(15 * time.Hour), checkOut: date(2030, 1, 20).Add(11 * time.Hour), want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.Covers(tt.checkIn, tt.checkOut))
		})
	}
}
