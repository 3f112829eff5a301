package readstore

import (
	"context"

	"hotel-booking/internal/domain/guest"
	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type GuestReadQueries interface {
	GetGuestByUserID(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (sqlc.GetGuestByUserIDRow, error)
}

type GuestReadStore struct {
	queries GuestReadQueries
	db      sqlc.DBTX
}

func NewGuestReadStore(queries GuestReadQueries, db sqlc.DBTX) *GuestReadStore {
	return &GuestReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *GuestReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) (*guest.Guest, error) {
	row, err := r.queries.GetGuestByUserID(ctx, r.db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("guest not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get guest by user id", err)
	}
	g, err := guest.NewGuest(row.ID, row.UserID, row.FirstName, row.LastName, row.Email)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid guest row", errs.Handled(err), infra.KindDBFailure)
	}
	return g, nil
}
