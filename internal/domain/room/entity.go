package room

import (
	"errors"
	"strings"

	"hotel-booking/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoomNumber   = errors.New("room number cannot be empty")
	ErrNegativeRoomPrice = errors.New("room price cannot be negative")
	ErrNegativeCapacity  = errors.New("room capacity cannot be negative")
)

type Room struct {
	id               uuid.UUID
	hotelID          uuid.UUID
	number           string
	roomType         string
	price            pricing.Money
	adultsCapacity   int
	childrenCapacity int
}

func NewRoom(
	id, hotelID uuid.UUID,
	number, roomType string,
	price pricing.Money,
	adultsCapacity, childrenCapacity int,
) (*Room, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, ErrEmptyRoomNumber
	}
	if price.IsNegative() {
		return nil, ErrNegativeRoomPrice
	}
	if adultsCapacity < 0 || childrenCapacity < 0 {
		return nil, ErrNegativeCapacity
	}

	return &Room{
		id:               id,
		hotelID:          hotelID,
		number:           number,
		roomType:         strings.TrimSpace(roomType),
		price:            price,
		adultsCapacity:   adultsCapacity,
		childrenCapacity: childrenCapacity,
	}, nil
}

func (r *Room) BelongsTo(hotelID uuid.UUID) bool {
	return r.hotelID == hotelID
}

func (r *Room) ID() uuid.UUID         { return r.id }
func (r *Room) HotelID() uuid.UUID    { return r.hotelID }
func (r *Room) Number() string        { return r.number }
func (r *Room) Type() string          { return r.roomType }
func (r *Room) Price() pricing.Money  { return r.price }
func (r *Room) AdultsCapacity() int   { return r.adultsCapacity }
func (r *Room) ChildrenCapacity() int { return r.childrenCapacity }
