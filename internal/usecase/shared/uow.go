package shared

import (
	"context"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/discount"
	"hotel-booking/internal/domain/guest"
	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/domain/room"
	sqlc "hotel-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full read-committed transaction for write operations with retry logic.
	// The transaction is rolled back when fn fails or ctx is done before commit.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads CommandReads) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Notifier() Notifier
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads returns errors marked with errs.ErrNotFound for missing rows.
type CommandReads interface {
	HotelByID(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error)
	// LockRooms takes row locks in ascending id order and returns the rooms
	// that exist, keyed by id.
	LockRooms(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*room.Room, error)
	IsRoomAvailable(ctx context.Context, roomID uuid.UUID, stay booking.StayPeriod) (bool, error)
	// ActiveDiscount returns nil when no discount covers the stay.
	ActiveDiscount(ctx context.Context, roomID uuid.UUID, stay booking.StayPeriod) (*discount.Discount, error)
	GuestByUserID(ctx context.Context, userID uuid.UUID) (*guest.Guest, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
}

type BookingRepository interface {
	// Create inserts the booking with all of its lines and fails unless every
	// line was written.
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
}
