package commands

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/guest"
	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/domain/invoice"
	"hotel-booking/internal/domain/pricing"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrHotelNotFound = errs.NewKind("hotel not found", errs.ErrNotFound)
	ErrGuestNotFound = errs.NewKind("guest not found", errs.ErrNotFound)
	// ErrRoomVanished means a requested room disappeared between request
	// validation and locking. It is never the client's fault.
	ErrRoomVanished = errs.New("room missing from store")
)

type Stage string

const (
	StageStarted       Stage = "started"
	StageRoomsFetched  Stage = "rooms_fetched"
	StageValidated     Stage = "validated"
	StagePriced        Stage = "priced"
	StagePersisted     Stage = "persisted"
	StagePostProcessed Stage = "post_processed"
	StageCommitted     Stage = "committed"
	StageRolledBack    Stage = "rolled_back"
)

type BookingCommands interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest, userID uuid.UUID) (*queries.BookingConfirmation, error)
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	calc     pricing.Calculator
	invoices *invoice.Builder
	renderer shared.DocumentRenderer
	clock    clock.Clock
	cfg      config.BookingConfig
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	calc pricing.Calculator,
	renderer shared.DocumentRenderer,
	clk clock.Clock,
	cfg config.BookingConfig,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:      uow,
		calc:     calc,
		invoices: invoice.NewBuilder(calc),
		renderer: renderer,
		clock:    clk,
		cfg:      cfg,
	}
}

type bookingInput struct {
	hotelID       uuid.UUID
	roomIDs       []uuid.UUID
	stay          booking.StayPeriod
	guests        booking.GuestCount
	remarks       booking.Remarks
	paymentMethod booking.PaymentMethod
}

// bookingRun tracks how far a single attempt got.
type bookingRun struct {
	stage     Stage
	bookingID uuid.UUID
}

func (r *bookingRun) advance(s Stage) {
	r.stage = s
	slog.Debug("booking stage reached", "stage", s, "booking_id", r.bookingID)
}

func (b *bookingCommandsImpl) CreateBooking(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	userID uuid.UUID,
) (*queries.BookingConfirmation, error) {
	in, err := b.parseRequest(req)
	if err != nil {
		return nil, err
	}

	run := &bookingRun{}
	var confirmation *queries.BookingConfirmation

	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Within may retry, every attempt starts over.
		run.bookingID = uuid.Nil
		run.advance(StageStarted)

		c, err := b.execute(ctx, tx, in, userID, run)
		if err != nil {
			return err
		}
		confirmation = c
		return nil
	})
	if err != nil {
		logFailure(run, err)
		return nil, err
	}

	run.advance(StageCommitted)
	slog.Info("booking created",
		"booking_id", confirmation.ID,
		"hotel_id", in.hotelID,
		"rooms", len(in.roomIDs),
		"total", confirmation.TotalPrice.String())

	return confirmation, nil
}

func (b *bookingCommandsImpl) parseRequest(req reqdto.CreateBookingRequest) (*bookingInput, error) {
	if len(req.RoomIDs) == 0 {
		return nil, booking.ErrNoRooms
	}
	seen := make(map[uuid.UUID]struct{}, len(req.RoomIDs))
	for _, id := range req.RoomIDs {
		if _, ok := seen[id]; ok {
			return nil, errs.Wrapf(booking.ErrDuplicateRoom, "room %s", id)
		}
		seen[id] = struct{}{}
	}

	checkIn, checkOut, err := req.Dates()
	if err != nil {
		return nil, err
	}
	stay, err := booking.NewStayPeriod(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if err := stay.ValidateStartsOnOrAfter(clock.Today(b.clock)); err != nil {
		return nil, err
	}

	guests, err := booking.NewGuestCount(req.Adults, req.Children, b.cfg.MaxGuestsPerKind)
	if err != nil {
		return nil, err
	}
	remarks, err := booking.NewRemarks(req.Remarks)
	if err != nil {
		return nil, err
	}
	paymentMethod, err := booking.NewPaymentMethod(req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	return &bookingInput{
		hotelID:       req.HotelID,
		roomIDs:       slices.Clone(req.RoomIDs),
		stay:          stay,
		guests:        guests,
		remarks:       remarks,
		paymentMethod: paymentMethod,
	}, nil
}

func (b *bookingCommandsImpl) execute(
	ctx context.Context,
	tx shared.Tx,
	in *bookingInput,
	userID uuid.UUID,
	run *bookingRun,
) (*queries.BookingConfirmation, error) {
	reads := tx.Reads()

	h, err := reads.HotelByID(ctx, in.hotelID)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, errs.Wrapf(ErrHotelNotFound, "hotel %s", in.hotelID)
		}
		return nil, err
	}

	g, err := reads.GuestByUserID(ctx, userID)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, errs.Wrapf(ErrGuestNotFound, "user %s", userID)
		}
		return nil, err
	}

	draft := booking.NewDraft(h.ID(), g.ID(), in.stay, in.guests, in.remarks, in.paymentMethod)
	run.bookingID = draft.ID()

	if err := b.fetchRooms(ctx, reads, draft, in); err != nil {
		return nil, err
	}
	run.advance(StageRoomsFetched)

	if err := b.validate(ctx, reads, draft); err != nil {
		return nil, err
	}
	run.advance(StageValidated)

	bk, err := draft.Finalize(b.calc)
	if err != nil {
		return nil, err
	}
	run.advance(StagePriced)

	if err := tx.Bookings().Create(ctx, tx.DB(), bk); err != nil {
		return nil, err
	}
	run.advance(StagePersisted)

	if err := b.sendConfirmation(ctx, tx.Notifier(), bk, g, h); err != nil {
		return nil, err
	}
	run.advance(StagePostProcessed)

	return queries.NewBookingConfirmation(bk, g, h), nil
}

// fetchRooms locks every requested room before any availability read so two
// bookings for the same room serialize here. Lines keep the request order.
func (b *bookingCommandsImpl) fetchRooms(
	ctx context.Context,
	reads shared.CommandReads,
	draft *booking.Draft,
	in *bookingInput,
) error {
	ids := slices.Clone(in.roomIDs)
	slices.SortFunc(ids, func(x, y uuid.UUID) int { return bytes.Compare(x[:], y[:]) })

	rooms, err := reads.LockRooms(ctx, ids)
	if err != nil {
		return err
	}

	for _, id := range in.roomIDs {
		r, ok := rooms[id]
		if !ok {
			return errs.Wrapf(ErrRoomVanished, "room %s", id)
		}

		disc, err := reads.ActiveDiscount(ctx, id, in.stay)
		if err != nil {
			return err
		}

		if err := draft.AddLine(r, disc); err != nil {
			return err
		}
	}
	return nil
}

func (b *bookingCommandsImpl) validate(ctx context.Context, reads shared.CommandReads, draft *booking.Draft) error {
	if err := draft.ValidateRoomsBelongToHotel(); err != nil {
		return err
	}

	for _, r := range draft.Rooms() {
		available, err := reads.IsRoomAvailable(ctx, r.ID(), draft.Stay())
		if err != nil {
			return err
		}
		if !available {
			return booking.NewUnavailableRoomError(r.ID(), draft.Stay(), nil)
		}
	}

	return draft.ValidateCapacity()
}

func (b *bookingCommandsImpl) sendConfirmation(
	ctx context.Context,
	notifier shared.Notifier,
	bk *booking.Booking,
	g *guest.Guest,
	h *hotel.Hotel,
) error {
	inv := b.invoices.Build(bk, g, h)

	doc, err := b.renderer.RenderInvoice(ctx, inv)
	if err != nil {
		return errs.Wrap(err, "render invoice")
	}

	return notifier.SendConfirmation(ctx, shared.ConfirmationMessage{
		To:             g.Email(),
		Subject:        b.cfg.ConfirmationSubject,
		Body:           confirmationBody(inv),
		Attachment:     doc,
		AttachmentName: queries.InvoiceFileName(bk.ID()),
	})
}

func confirmationBody(inv *invoice.Invoice) string {
	return fmt.Sprintf(
		"Dear %s,\n\nyour booking %s at %s from %s to %s is confirmed.\nTotal: %s\n",
		inv.GuestFullName,
		inv.ConfirmationID,
		inv.Hotel.Name,
		inv.CheckIn.Format("2006-01-02"),
		inv.CheckOut.Format("2006-01-02"),
		inv.TotalPriceAfterDiscount.String(),
	)
}

func logFailure(run *bookingRun, err error) {
	reached := run.stage
	run.stage = StageRolledBack

	attrs := []any{
		"stage_reached", reached,
		"booking_id", run.bookingID,
		"error", err.Error(),
	}
	if isClientError(err) {
		slog.Warn("booking rolled back", attrs...)
		return
	}
	attrs = append(attrs, "stack", errs.ExtractStackLines(err, 5))
	slog.Error("booking rolled back", attrs...)
}

func isClientError(err error) bool {
	return errs.Is(err, errs.ErrBadRequest) ||
		errs.Is(err, errs.ErrNotFound) ||
		errs.Is(err, errs.ErrUnavailableRoom) ||
		errs.Is(err, errs.ErrUnauthorized)
}
