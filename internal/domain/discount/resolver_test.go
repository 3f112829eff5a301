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

func newDiscount(t *testing.T, id uuid.UUID, start, end, created time.Time) *discount.Discount {
	t.Helper()
	d, err := discount.NewFromPercentage(id, uuid.New(), pricing.MustMoney("100"),
		decimal.NewFromInt(10), mustWindow(t, start, end), created)
	require.NoError(t, err)
	return d
}

func TestResolveActive(t *testing.T) {
	checkIn, checkOut := date(2030, 3, 10), date(2030, 3, 15)
	base := time.Date(2029, 12, 1, 12, 0, 0, 0, time.UTC)

	older := newDiscount(t, uuid.New(), date(2030, 3, 1), date(2030, 3, 31), base)
	newer := newDiscount(t, uuid.New(), date(2030, 3, 5), date(2030, 3, 20), base.Add(time.Hour))
	newestPartial := newDiscount(t, uuid.New(), date(2030, 3, 12), date(2030, 3, 31), base.Add(2*time.Hour))

	t.Run("most recent covering discount wins", func(t *testing.T) {
		got := discount.ResolveActive([]*discount.Discount{older, newestPartial, newer}, checkIn, checkOut)
		require.NotNil(t, got)
		assert.Equal(t, newer.ID(), got.ID())
	})

	t.Run("partial coverage never applies", func(t *testing.T) {
		got := discount.ResolveActive([]*discount.Discount{newestPartial}, checkIn, checkOut)
		assert.Nil(t, got)
	})

	t.Run("no discounts", func(t *testing.T) {
		assert.Nil(t, discount.ResolveActive(nil, checkIn, checkOut))
	})

	t.Run("tie on creation time is order independent", func(t *testing.T) {
		low := newDiscount(t, uuid.MustParse("00000000-0000-0000-0000-000000000001"), date(2030, 3, 1), date(2030, 3, 31), base)
		high := newDiscount(t, uuid.MustParse("ffffffff-0000-0000-0000-000000000000"), date(2030, 3, 1), date(2030, 3, 31), base)

		a := discount.ResolveActive([]*discount.Discount{low, high}, checkIn, checkOut)
		b := discount.ResolveActive([]*discount.Discount{high, low}, checkIn, checkOut)
		assert.Equal(t, high.ID(), a.ID())
		assert.Equal(t, high.ID(), b.ID())
	})
}
