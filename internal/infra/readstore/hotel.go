package readstore

import (
	"context"

	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type HotelReadQueries interface {
	GetHotelByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetHotelByIDRow, error)
}

type HotelReadStore struct {
	queries HotelReadQueries
	db      sqlc.DBTX
}

func NewHotelReadStore(queries HotelReadQueries, db sqlc.DBTX) *HotelReadStore {
	return &HotelReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *HotelReadStore) FindByID(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error) {
	row, err := r.queries.GetHotelByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get hotel by id", err)
	}
	h, err := hotel.NewHotel(row.ID, row.Name, row.Address, row.City)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid hotel row", errs.Handled(err), infra.KindDBFailure)
	}
	return h, nil
}
