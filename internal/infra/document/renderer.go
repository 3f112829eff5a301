package document

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"hotel-booking/internal/domain/invoice"
	"hotel-booking/internal/pkg/errs"

	"github.com/go-pdf/fpdf"
)

const (
	margin     = 20.0 // mm
	lineHeight = 6.0
	fontSize   = 11.0
	titleSize  = 18.0
)

var ErrNilInvoice = errs.New("invoice is nil")

type InvoiceRenderer struct {
	title    string
	compress bool
}

func NewInvoiceRenderer(title string) *InvoiceRenderer {
	if title == "" {
		title = "Invoice"
	}
	return &InvoiceRenderer{title: title, compress: true}
}

func (r *InvoiceRenderer) RenderInvoice(ctx context.Context, inv *invoice.Invoice) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, ErrNilInvoice
	}
	return r.write(r.lines(inv))
}

// write sets the first line as a title and the rest in Helvetica, breaking
// pages automatically. Text goes through the cp1252 translator so accented
// Latin names survive the core font encoding.
func (r *InvoiceRenderer) write(lines []string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(r.compress)
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.SetTitle(r.title, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	for i, line := range lines {
		if i == 0 {
			pdf.SetFont("Helvetica", "B", titleSize)
			pdf.CellFormat(0, titleSize/2, tr(line), "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", fontSize)
			continue
		}
		pdf.CellFormat(0, lineHeight, tr(line), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errs.Wrap(err, "failed to render invoice document")
	}
	return buf.Bytes(), nil
}

func (r *InvoiceRenderer) lines(inv *invoice.Invoice) []string {
	nights := 0
	if len(inv.Rooms) > 0 {
		nights = inv.Rooms[0].Nights
	}

	lines := []string{
		r.title,
		"",
		"Confirmation: " + inv.ConfirmationID.String(),
		fmt.Sprintf("Guest: %s <%s>", inv.GuestFullName, inv.GuestEmail),
		fmt.Sprintf("Hotel: %s, %s, %s", inv.Hotel.Name, inv.Hotel.Address, inv.Hotel.City),
		fmt.Sprintf("Stay: %s to %s (%d nights)",
			inv.CheckIn.Format(time.DateOnly), inv.CheckOut.Format(time.DateOnly), nights),
		fmt.Sprintf("Guests: %d adults, %d children", inv.Adults, inv.Children),
		"",
	}
	for _, room := range inv.Rooms {
		lines = append(lines,
			fmt.Sprintf("Room %s (%s), up to %d adults and %d children",
				room.RoomNumber, room.RoomType, room.AdultsCapacity, room.ChildrenCapacity),
			fmt.Sprintf("    %s x %d nights = %s", room.PricePerNight, room.Nights, room.TotalPrice),
			fmt.Sprintf("    after discount %s x %d nights = %s",
				room.PricePerNightAfterDiscount, room.Nights, room.TotalPriceAfterDiscount),
		)
	}
	return append(lines,
		"",
		"Total: "+inv.TotalPrice.String(),
		"Total after discount: "+inv.TotalPriceAfterDiscount.String(),
	)
}
