package notification

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"
)

const (
	JobKindEmail          = "email"
	TopicBookingConfirmed = "booking_confirmed"
)

var ErrMissingRecipient = errs.New("confirmation recipient is empty")

type JobWriter interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

// OutboxNotifier queues the confirmation as a job in the same transaction as
// the booking, so a rolled back booking never sends mail.
type OutboxNotifier struct {
	jobs  JobWriter
	db    sqlc.DBTX
	clock clock.Clock
}

func NewOutboxNotifier(jobs JobWriter, db sqlc.DBTX, clk clock.Clock) *OutboxNotifier {
	return &OutboxNotifier{
		jobs:  jobs,
		db:    db,
		clock: clk,
	}
}

type emailPayload struct {
	To             string `json:"to"`
	Subject        string `json:"subject"`
	Body           string `json:"body"`
	Attachment     []byte `json:"attachment,omitempty"`
	AttachmentName string `json:"attachment_name,omitempty"`
	ContentType    string `json:"content_type,omitempty"`
}

func (n *OutboxNotifier) SendConfirmation(ctx context.Context, msg shared.ConfirmationMessage) error {
	to := strings.TrimSpace(msg.To)
	if to == "" {
		return ErrMissingRecipient
	}

	p := emailPayload{
		To:      to,
		Subject: msg.Subject,
		Body:    msg.Body,
	}
	if len(msg.Attachment) > 0 {
		p.Attachment = msg.Attachment
		p.AttachmentName = msg.AttachmentName
		p.ContentType = shared.InvoiceContentType
	}

	payload, err := json.Marshal(p)
	if err != nil {
		return errs.Wrap(err, "failed to encode confirmation payload")
	}

	return n.jobs.CreateJob(ctx, n.db, JobKindEmail, TopicBookingConfirmed, payload, n.clock.Now())
}
