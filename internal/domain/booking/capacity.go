package booking

import (
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/pkg/errs"
)

// ValidateCapacity checks the party against the summed capacity of all rooms,
// so several small rooms may host one large party.
func ValidateCapacity(guests GuestCount, rooms []*room.Room) error {
	var adults, children int
	for _, r := range rooms {
		adults += r.AdultsCapacity()
		children += r.ChildrenCapacity()
	}
	if guests.Adults() > adults || guests.Children() > children {
		return errs.Wrapf(ErrInvalidGuestCount,
			"requested %d adults and %d children, capacity is %d and %d",
			guests.Adults(), guests.Children(), adults, children)
	}
	return nil
}
