package readstore

import (
	"context"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RoomReadQueries interface {
	LockRoomsByIDs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]sqlc.LockRoomsByIDsRow, error)
	CountOverlappingBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.CountOverlappingBookingsParams) (int64, error)
}

type RoomReadStore struct {
	queries RoomReadQueries
	db      sqlc.DBTX
}

func NewRoomReadStore(queries RoomReadQueries, db sqlc.DBTX) *RoomReadStore {
	return &RoomReadStore{
		queries: queries,
		db:      db,
	}
}

// LockByIDs must run inside a transaction; the locks are held until it ends.
func (r *RoomReadStore) LockByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*room.Room, error) {
	rows, err := r.queries.LockRoomsByIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock rooms", err)
	}
	rooms := make(map[uuid.UUID]*room.Room, len(rows))
	for _, row := range rows {
		rm, err := toRoom(roomColumns(row))
		if err != nil {
			return nil, infra.WrapRepoErr("invalid room row", errs.Handled(err), infra.KindDBFailure)
		}
		rooms[rm.ID()] = rm
	}
	return rooms, nil
}

// IsAvailable reports whether no booked stay of the room overlaps the given
// one. Overlap is half-open, so back-to-back stays do not conflict.
func (r *RoomReadStore) IsAvailable(ctx context.Context, roomID uuid.UUID, stay booking.StayPeriod) (bool, error) {
	n, err := r.queries.CountOverlappingBookings(ctx, r.db, sqlc.CountOverlappingBookingsParams{
		RoomID:   roomID,
		CheckIn:  pgconv.DateToPgtype(stay.CheckIn()),
		CheckOut: pgconv.DateToPgtype(stay.CheckOut()),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check room availability", err)
	}
	return n == 0, nil
}
