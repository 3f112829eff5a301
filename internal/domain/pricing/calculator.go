package pricing

// LinePrice holds the per-room figures of a stay.
type LinePrice struct {
	Nights                int
	PerNight              Money
	PerNightAfterDiscount Money
	Total                 Money
	TotalAfterDiscount    Money
}

type Calculator interface {
	ComputeLinePrice(perNight, perNightAfterDiscount Money, nights int) LinePrice
	ComputeBookingTotal(lines []LinePrice) Money
}

type DefaultCalculator struct{}

func NewDefaultCalculator() *DefaultCalculator {
	return &DefaultCalculator{}
}

// nights must already be validated as positive by the stay period.
func (c *DefaultCalculator) ComputeLinePrice(perNight, perNightAfterDiscount Money, nights int) LinePrice {
	return LinePrice{
		Nights:                nights,
		PerNight:              perNight,
		PerNightAfterDiscount: perNightAfterDiscount,
		Total:                 perNight.MulInt(nights),
		TotalAfterDiscount:    perNightAfterDiscount.MulInt(nights),
	}
}

func (c *DefaultCalculator) ComputeBookingTotal(lines []LinePrice) Money {
	total := Zero()
	for _, l := range lines {
		total = total.Add(l.TotalAfterDiscount)
	}
	return total.Round()
}
