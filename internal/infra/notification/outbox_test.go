//go:build unit

package notification_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"hotel-booking/internal/infra/notification"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockJobWriter struct {
	mock.Mock
}

func (m *mockJobWriter) CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	args := m.Called(ctx, tx, kind, topic, payload, runAt)
	return args.Error(0)
}

func TestOutboxNotifier_SendConfirmation(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("queues email job with attachment", func(t *testing.T) {
		jobs := new(mockJobWriter)
		var captured []byte
		jobs.On("CreateJob", ctx, nil, notification.JobKindEmail, notification.TopicBookingConfirmed, mock.Anything, now).
			Run(func(args mock.Arguments) { captured = args.Get(4).([]byte) }).
			Return(nil).Once()

		n := notification.NewOutboxNotifier(jobs, nil, clock.NewMockClock(now))
		err := n.SendConfirmation(ctx, shared.ConfirmationMessage{
			To:             " ada@example.com ",
			Subject:        "Your booking",
			Body:           "Thanks",
			Attachment:     []byte("%PDF-1.4"),
			AttachmentName: "invoice.pdf",
		})
		require.NoError(t, err)
		jobs.AssertExpectations(t)

		var got map[string]any
		require.NoError(t, json.Unmarshal(captured, &got))
		assert.Equal(t, "ada@example.com", got["to"])
		assert.Equal(t, "Your booking", got["subject"])
		assert.Equal(t, "invoice.pdf", got["attachment_name"])
		assert.Equal(t, "application/pdf", got["content_type"])
		assert.NotEmpty(t, got["attachment"])
	})

	t.Run("rejects empty recipient without queueing", func(t *testing.T) {
		jobs := new(mockJobWriter)
		n := notification.NewOutboxNotifier(jobs, nil, clock.NewMockClock(now))

		err := n.SendConfirmation(ctx, shared.ConfirmationMessage{To: "  "})
		require.ErrorIs(t, err, notification.ErrMissingRecipient)
		jobs.AssertNotCalled(t, "CreateJob", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("propagates store failure", func(t *testing.T) {
		jobs := new(mockJobWriter)
		storeErr := errors.New("insert failed")
		jobs.On("CreateJob", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(storeErr).Once()

		n := notification.NewOutboxNotifier(jobs, nil, clock.NewMockClock(now))
		err := n.SendConfirmation(ctx, shared.ConfirmationMessage{To: "ada@example.com"})
		require.ErrorIs(t, err, storeErr)
	})
}
