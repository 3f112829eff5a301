//go:build unit || e2e

package builder

import (
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/discount"
	"hotel-booking/internal/domain/guest"
	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/domain/pricing"
	"hotel-booking/internal/domain/room"
	reqdto "hotel-booking/internal/handler/dto/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type RoomSpec struct {
	ID          uuid.UUID
	Number      string
	Type        string
	Price       string
	Adults      int
	Children    int
	DiscountPct int64 // 0 means no active discount
}

// BookingBuilder defaults to a two-room, five-night stay where room 101
// carries a 10% discount.
type BookingBuilder struct {
	HotelID        uuid.UUID
	HotelName      string
	UserID         uuid.UUID
	GuestID        uuid.UUID
	GuestFirstName string
	GuestLastName  string
	GuestEmail     string
	Rooms          []RoomSpec
	CheckIn        time.Time
	CheckOut       time.Time
	Adults         int
	Children       int
	Remarks        string
	PaymentMethod  string
	CreatedAt      time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		HotelID:        uuid.New(),
		HotelName:      "Harbor View",
		UserID:         uuid.New(),
		GuestID:        uuid.New(),
		GuestFirstName: "Ada",
		GuestLastName:  "Lovelace",
		GuestEmail:     "ada@example.com",
		Rooms: []RoomSpec{
			{ID: uuid.New(), Number: "101", Type: "double", Price: "200", Adults: 2, Children: 1, DiscountPct: 10},
			{ID: uuid.New(), Number: "102", Type: "suite", Price: "500", Adults: 2, Children: 2},
		},
		CheckIn:       time.Date(2030, 1, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2030, 1, 15, 0, 0, 0, 0, time.UTC),
		Adults:        2,
		Children:      1,
		Remarks:       "late arrival",
		PaymentMethod: "card",
		CreatedAt:     time.Date(2029, 12, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) RoomIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(b.Rooms))
	for _, r := range b.Rooms {
		ids = append(ids, r.ID)
	}
	return ids
}

func (b *BookingBuilder) BuildHotel(t *testing.T) *hotel.Hotel {
	t.Helper()
	h, err := hotel.NewHotel(b.HotelID, b.HotelName, "1 Quay Street", "Lisbon")
	require.NoError(t, err)
	return h
}

func (b *BookingBuilder) BuildGuest(t *testing.T) *guest.Guest {
	t.Helper()
	g, err := guest.NewGuest(b.GuestID, b.UserID, b.GuestFirstName, b.GuestLastName, b.GuestEmail)
	require.NoError(t, err)
	return g
}

func (b *BookingBuilder) BuildRoom(t *testing.T, spec RoomSpec) *room.Room {
	t.Helper()
	r, err := room.NewRoom(spec.ID, b.HotelID, spec.Number, spec.Type, pricing.MustMoney(spec.Price), spec.Adults, spec.Children)
	require.NoError(t, err)
	return r
}

// BuildRooms returns the rooms keyed by id, the shape LockRooms returns.
func (b *BookingBuilder) BuildRooms(t *testing.T) map[uuid.UUID]*room.Room {
	t.Helper()
	rooms := make(map[uuid.UUID]*room.Room, len(b.Rooms))
	for _, spec := range b.Rooms {
		rooms[spec.ID] = b.BuildRoom(t, spec)
	}
	return rooms
}

func (b *BookingBuilder) BuildDiscount(t *testing.T, spec RoomSpec) *discount.Discount {
	t.Helper()
	if spec.DiscountPct == 0 {
		return nil
	}
	window, err := discount.NewWindow(b.CheckIn.AddDate(0, 0, -30), b.CheckOut.AddDate(0, 0, 30))
	require.NoError(t, err)
	d, err := discount.NewFromPercentage(
		uuid.New(), spec.ID, pricing.MustMoney(spec.Price),
		decimal.NewFromInt(spec.DiscountPct), window, b.CreatedAt,
	)
	require.NoError(t, err)
	return d
}

func (b *BookingBuilder) BuildStay(t *testing.T) booking.StayPeriod {
	t.Helper()
	stay, err := booking.NewStayPeriod(b.CheckIn, b.CheckOut)
	require.NoError(t, err)
	return stay
}

func (b *BookingBuilder) BuildBooking(t *testing.T) *booking.Booking {
	t.Helper()
	guests, err := booking.NewGuestCount(b.Adults, b.Children, booking.DefaultMaxGuestsPerKind)
	require.NoError(t, err)
	remarks, err := booking.NewRemarks(b.Remarks)
	require.NoError(t, err)
	pm, err := booking.NewPaymentMethod(b.PaymentMethod)
	require.NoError(t, err)

	draft := booking.NewDraft(b.HotelID, b.GuestID, b.BuildStay(t), guests, remarks, pm)
	for _, spec := range b.Rooms {
		require.NoError(t, draft.AddLine(b.BuildRoom(t, spec), b.BuildDiscount(t, spec)))
	}
	bk, err := draft.Finalize(pricing.NewDefaultCalculator())
	require.NoError(t, err)
	return bk
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		HotelID:       b.HotelID,
		RoomIDs:       b.RoomIDs(),
		CheckIn:       b.CheckIn.Format(time.DateOnly),
		CheckOut:      b.CheckOut.Format(time.DateOnly),
		Adults:        b.Adults,
		Children:      b.Children,
		Remarks:       b.Remarks,
		PaymentMethod: b.PaymentMethod,
	}
}
