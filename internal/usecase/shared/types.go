package shared

import (
	"context"

	"hotel-booking/internal/domain/invoice"
)

type ConfirmationMessage struct {
	To             string
	Subject        string
	Body           string
	Attachment     []byte
	AttachmentName string
}

type Notifier interface {
	SendConfirmation(ctx context.Context, msg ConfirmationMessage) error
}

const InvoiceContentType = "application/pdf"

type DocumentRenderer interface {
	RenderInvoice(ctx context.Context, inv *invoice.Invoice) ([]byte, error)
}
