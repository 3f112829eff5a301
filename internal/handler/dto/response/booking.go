package response

import (
	"time"

	"hotel-booking/internal/domain/invoice"
	"hotel-booking/internal/domain/pricing"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingConfirmationResponse struct {
	ID            uuid.UUID `json:"id"`
	GuestFullName string    `json:"guestFullName"`
	HotelName     string    `json:"hotelName"`
	RoomNumbers   []string  `json:"roomNumbers"`
	TotalPrice    string    `json:"totalPrice" example:"3400.00"`
}

type HotelSummaryResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
	City    string    `json:"city"`
}

type RoomLineResponse struct {
	RoomNumber                 string `json:"roomNumber"`
	RoomType                   string `json:"roomType"`
	AdultsCapacity             int    `json:"adultsCapacity"`
	ChildrenCapacity           int    `json:"childrenCapacity"`
	PricePerNight              string `json:"pricePerNight"`
	PricePerNightAfterDiscount string `json:"pricePerNightAfterDiscount"`
	Nights                     int    `json:"nights"`
	TotalPrice                 string `json:"totalPrice"`
	TotalPriceAfterDiscount    string `json:"totalPriceAfterDiscount"`
}

type InvoiceResponse struct {
	ConfirmationID          uuid.UUID            `json:"confirmationId"`
	GuestFullName           string               `json:"guestFullName"`
	GuestEmail              string               `json:"guestEmail"`
	Hotel                   HotelSummaryResponse `json:"hotel"`
	CheckIn                 string               `json:"checkIn" example:"2025-01-10"`
	CheckOut                string               `json:"checkOut" example:"2025-01-15"`
	Adults                  int                  `json:"adults"`
	Children                int                  `json:"children"`
	Rooms                   []RoomLineResponse   `json:"rooms"`
	TotalPrice              string               `json:"totalPrice"`
	TotalPriceAfterDiscount string               `json:"totalPriceAfterDiscount"`
}

// Money and dates go out as fixed-point and YYYY-MM-DD strings.
var copyOption = copier.Option{
	DeepCopy: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: pricing.Money{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(pricing.Money).String(), nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(time.Time).Format(time.DateOnly), nil
			},
		},
	},
}

func FromBookingConfirmation(v *queries.BookingConfirmation) (*BookingConfirmationResponse, error) {
	var res BookingConfirmationResponse
	if err := copier.CopyWithOption(&res, v, copyOption); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromInvoice(inv *invoice.Invoice) (*InvoiceResponse, error) {
	var res InvoiceResponse
	if err := copier.CopyWithOption(&res, inv, copyOption); err != nil {
		return nil, err
	}
	return &res, nil
}
