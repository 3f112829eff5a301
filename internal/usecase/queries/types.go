package queries

import (
	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/guest"
	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/domain/pricing"

	"github.com/google/uuid"
)

// BookingConfirmation is what the guest sees right after booking.
type BookingConfirmation struct {
	ID            uuid.UUID
	GuestFullName string
	HotelName     string
	RoomNumbers   []string
	TotalPrice    pricing.Money
}

func NewBookingConfirmation(bk *booking.Booking, g *guest.Guest, h *hotel.Hotel) *BookingConfirmation {
	return &BookingConfirmation{
		ID:            bk.ID(),
		GuestFullName: g.FullName(),
		HotelName:     h.Name(),
		RoomNumbers:   bk.RoomNumbers(),
		TotalPrice:    bk.Price(),
	}
}

// InvoiceDocument is a rendered invoice ready to be served as a download.
type InvoiceDocument struct {
	FileName    string
	ContentType string
	Content     []byte
}

func InvoiceFileName(bookingID uuid.UUID) string {
	return "invoice-" + bookingID.String() + ".pdf"
}
