package queries

import (
	"context"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/guest"
	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/domain/invoice"
	"hotel-booking/internal/domain/pricing"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.NewKind("booking not found", errs.ErrNotFound)
	ErrGuestNotFound   = errs.NewKind("guest not found", errs.ErrNotFound)
	ErrBookingNotOwned = errs.NewKind("booking belongs to another guest", errs.ErrUnauthorized)
)

type BookingQueries interface {
	GetConfirmation(ctx context.Context, bookingID, userID uuid.UUID) (*BookingConfirmation, error)
	GetInvoice(ctx context.Context, bookingID, userID uuid.UUID) (*invoice.Invoice, error)
	GetInvoiceDocument(ctx context.Context, bookingID, userID uuid.UUID) (*InvoiceDocument, error)
}

type bookingQueriesImpl struct {
	uow      shared.UnitOfWork
	invoices *invoice.Builder
	renderer shared.DocumentRenderer
}

func NewBookingQueries(uow shared.UnitOfWork, calc pricing.Calculator, renderer shared.DocumentRenderer) BookingQueries {
	return &bookingQueriesImpl{
		uow:      uow,
		invoices: invoice.NewBuilder(calc),
		renderer: renderer,
	}
}

type ownedBooking struct {
	booking *booking.Booking
	guest   *guest.Guest
	hotel   *hotel.Hotel
}

func (q *bookingQueriesImpl) GetConfirmation(ctx context.Context, bookingID, userID uuid.UUID) (*BookingConfirmation, error) {
	owned, err := q.loadOwned(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}
	return NewBookingConfirmation(owned.booking, owned.guest, owned.hotel), nil
}

func (q *bookingQueriesImpl) GetInvoice(ctx context.Context, bookingID, userID uuid.UUID) (*invoice.Invoice, error) {
	owned, err := q.loadOwned(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}
	return q.invoices.Build(owned.booking, owned.guest, owned.hotel), nil
}

func (q *bookingQueriesImpl) GetInvoiceDocument(ctx context.Context, bookingID, userID uuid.UUID) (*InvoiceDocument, error) {
	inv, err := q.GetInvoice(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}

	content, err := q.renderer.RenderInvoice(ctx, inv)
	if err != nil {
		return nil, errs.Wrap(err, "render invoice")
	}

	return &InvoiceDocument{
		FileName:    InvoiceFileName(bookingID),
		ContentType: shared.InvoiceContentType,
		Content:     content,
	}, nil
}

// loadOwned reads guest, booking and hotel from one snapshot and rejects
// bookings of other guests.
func (q *bookingQueriesImpl) loadOwned(ctx context.Context, bookingID, userID uuid.UUID) (*ownedBooking, error) {
	var owned ownedBooking

	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.CommandReads) error {
		g, err := reads.GuestByUserID(ctx, userID)
		if err != nil {
			if errs.Is(err, errs.ErrNotFound) {
				return errs.Wrapf(ErrGuestNotFound, "user %s", userID)
			}
			return err
		}

		bk, err := reads.BookingByID(ctx, bookingID)
		if err != nil {
			if errs.Is(err, errs.ErrNotFound) {
				return errs.Wrapf(ErrBookingNotFound, "booking %s", bookingID)
			}
			return err
		}
		if !bk.IsOwnedBy(g.ID()) {
			return errs.Wrapf(ErrBookingNotOwned, "booking %s", bookingID)
		}

		h, err := reads.HotelByID(ctx, bk.HotelID())
		if err != nil {
			return errs.Wrapf(err, "hotel %s of booking %s", bk.HotelID(), bookingID)
		}

		owned = ownedBooking{booking: bk, guest: g, hotel: h}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &owned, nil
}
