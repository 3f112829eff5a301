package invoice

import (
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/guest"
	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/domain/pricing"

	"github.com/google/uuid"
)

// Invoice is a read-only projection of a booking. It is never persisted.
type Invoice struct {
	ConfirmationID          uuid.UUID
	GuestFullName           string
	GuestEmail              string
	Hotel                   HotelSummary
	CheckIn                 time.Time
	CheckOut                time.Time
	Adults                  int
	Children                int
	Rooms                   []RoomLine
	TotalPrice              pricing.Money
	TotalPriceAfterDiscount pricing.Money
}

type HotelSummary struct {
	ID      uuid.UUID
	Name    string
	Address string
	City    string
}

type RoomLine struct {
	RoomNumber                 string
	RoomType                   string
	AdultsCapacity             int
	ChildrenCapacity           int
	PricePerNight              pricing.Money
	PricePerNightAfterDiscount pricing.Money
	Nights                     int
	TotalPrice                 pricing.Money
	TotalPriceAfterDiscount    pricing.Money
}

type Builder struct {
	calc pricing.Calculator
}

func NewBuilder(calc pricing.Calculator) *Builder {
	return &Builder{calc: calc}
}

// Build recomputes line figures from the stored discount binding and stay
// dates. The discounted total is the booking's frozen price.
func (b *Builder) Build(bk *booking.Booking, g *guest.Guest, h *hotel.Hotel) *Invoice {
	nights := bk.Stay().Nights()
	lines := bk.Lines()

	rooms := make([]RoomLine, 0, len(lines))
	total := pricing.Zero()
	for _, l := range lines {
		p := l.Price(b.calc, nights)
		r := l.Room()
		rooms = append(rooms, RoomLine{
			RoomNumber:                 r.Number(),
			RoomType:                   r.Type(),
			AdultsCapacity:             r.AdultsCapacity(),
			ChildrenCapacity:           r.ChildrenCapacity(),
			PricePerNight:              p.PerNight,
			PricePerNightAfterDiscount: p.PerNightAfterDiscount,
			Nights:                     p.Nights,
			TotalPrice:                 p.Total,
			TotalPriceAfterDiscount:    p.TotalAfterDiscount,
		})
		total = total.Add(p.Total)
	}

	return &Invoice{
		ConfirmationID: bk.ID(),
		GuestFullName:  g.FullName(),
		GuestEmail:     g.Email(),
		Hotel: HotelSummary{
			ID:      h.ID(),
			Name:    h.Name(),
			Address: h.Address(),
			City:    h.City(),
		},
		CheckIn:                 bk.Stay().CheckIn(),
		CheckOut:                bk.Stay().CheckOut(),
		Adults:                  bk.Guests().Adults(),
		Children:                bk.Guests().Children(),
		Rooms:                   rooms,
		TotalPrice:              total.Round(),
		TotalPriceAfterDiscount: bk.Price(),
	}
}
