package discount

import (
	"bytes"
	"time"
)

// ResolveActive picks the most recently created discount whose window covers
// the whole stay. Equal creation times fall back to the larger id so the
// result does not depend on slice order. Returns nil when none applies.
func ResolveActive(discounts []*Discount, checkIn, checkOut time.Time) *Discount {
	var active *Discount
	for _, d := range discounts {
		if d == nil || !d.AppliesTo(checkIn, checkOut) {
			continue
		}
		if active == nil || newer(d, active) {
			active = d
		}
	}
	return active
}

func newer(a, b *Discount) bool {
	if !a.createdAt.Equal(b.createdAt) {
		return a.createdAt.After(b.createdAt)
	}
	return bytes.Compare(a.id[:], b.id[:]) > 0
}
