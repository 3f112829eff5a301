//go:build e2e

package booking_test

import (
	"context"
	"testing"

	"hotel-booking/internal/domain/invoice"
	"hotel-booking/internal/domain/pricing"
	"hotel-booking/internal/infra/document"
	"hotel-booking/internal/infra/notification"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/infra/uow"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/shared"
	"hotel-booking/tests/common/builder"
	"hotel-booking/tests/common/dbtest"

	"github.com/stretchr/testify/require"
)

var errRenderFailed = errs.New("renderer unavailable")

type failingRenderer struct{}

func (failingRenderer) RenderInvoice(context.Context, *invoice.Invoice) ([]byte, error) {
	return nil, errRenderFailed
}

// afterWorkUoW runs hook once fn has finished without error, still inside
// the transaction.
type afterWorkUoW struct {
	shared.UnitOfWork
	hook func() error
}

func (u afterWorkUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.UnitOfWork.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := fn(ctx, tx); err != nil {
			return err
		}
		return u.hook()
	})
}

func (s *BookingSuite) postgresUoW() shared.UnitOfWork {
	return uow.NewPostgresUoW(s.DB, sqlc.New(), clock.NewRealClock(), s.Config.Booking.TxMaxRetries)
}

func (s *BookingSuite) commandsWith(u shared.UnitOfWork, renderer shared.DocumentRenderer) commands.BookingCommands {
	return commands.NewBookingCommands(u, pricing.NewDefaultCalculator(), renderer, clock.NewRealClock(), s.Config.Booking)
}

func (s *BookingSuite) requireNothingCommitted(t *testing.T, b *builder.BookingBuilder) {
	t.Helper()

	require.Zero(t, dbtest.CountBookings(t, s.DB, b.GuestID))
	for _, id := range b.RoomIDs() {
		require.Zero(t, dbtest.CountBookingLines(t, s.DB, id))
	}
	require.Zero(t, dbtest.CountNotificationJobs(t, s.DB, notification.TopicBookingConfirmed))
}

// =============================================================================
// TestRollback
// =============================================================================

func (s *BookingSuite) TestRollback() {
	s.Run("Error case: render failure after insert undoes the booking", func() {
		t := s.T()

		b := builder.NewBookingBuilder()
		dbtest.SeedBookingScenario(t, s.DB, b)

		cmd := s.commandsWith(s.postgresUoW(), failingRenderer{})
		_, err := cmd.CreateBooking(context.Background(), b.BuildCreateRequestDTO(), b.UserID)
		require.ErrorIs(t, err, errRenderFailed)

		s.requireNothingCommitted(t, b)

		// row locks are released, the same rooms can still be booked
		created := s.create(t, b, s.token(t, b.UserID))
		require.Equal(t, "3400.00", created.TotalPrice)
	})

	s.Run("Error case: failure after the outbox write undoes booking and job", func() {
		t := s.T()

		b := builder.NewBookingBuilder()
		dbtest.SeedBookingScenario(t, s.DB, b)

		errLate := errs.New("post-processing failed")
		u := afterWorkUoW{UnitOfWork: s.postgresUoW(), hook: func() error { return errLate }}
		cmd := s.commandsWith(u, document.NewInvoiceRenderer("Invoice"))

		_, err := cmd.CreateBooking(context.Background(), b.BuildCreateRequestDTO(), b.UserID)
		require.ErrorIs(t, err, errLate)

		s.requireNothingCommitted(t, b)
	})

	s.Run("Error case: context cancelled before commit commits nothing", func() {
		t := s.T()

		b := builder.NewBookingBuilder()
		dbtest.SeedBookingScenario(t, s.DB, b)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		u := afterWorkUoW{UnitOfWork: s.postgresUoW(), hook: func() error {
			cancel()
			return nil
		}}
		cmd := s.commandsWith(u, document.NewInvoiceRenderer("Invoice"))

		confirmation, err := cmd.CreateBooking(ctx, b.BuildCreateRequestDTO(), b.UserID)
		require.ErrorIs(t, err, context.Canceled)
		require.Nil(t, confirmation)

		s.requireNothingCommitted(t, b)
	})
}
