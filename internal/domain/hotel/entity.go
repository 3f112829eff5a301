package hotel

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrEmptyHotelName = errors.New("hotel name cannot be empty")

type Hotel struct {
	id      uuid.UUID
	name    string
	address string
	city    string
}

func NewHotel(id uuid.UUID, name, address, city string) (*Hotel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyHotelName
	}
	return &Hotel{
		id:      id,
		name:    name,
		address: strings.TrimSpace(address),
		city:    strings.TrimSpace(city),
	}, nil
}

func (h *Hotel) ID() uuid.UUID   { return h.id }
func (h *Hotel) Name() string    { return h.name }
func (h *Hotel) Address() string { return h.address }
func (h *Hotel) City() string    { return h.city }
