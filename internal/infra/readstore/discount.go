package readstore

import (
	"context"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/discount"
	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type DiscountReadQueries interface {
	ListCoveringDiscountsByRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCoveringDiscountsByRoomParams) ([]sqlc.ListCoveringDiscountsByRoomRow, error)
}

type DiscountReadStore struct {
	queries DiscountReadQueries
	db      sqlc.DBTX
}

func NewDiscountReadStore(queries DiscountReadQueries, db sqlc.DBTX) *DiscountReadStore {
	return &DiscountReadStore{
		queries: queries,
		db:      db,
	}
}

// ActiveFor narrows candidates in SQL and leaves the choice between them to
// discount.ResolveActive. Returns nil when nothing covers the stay.
func (r *DiscountReadStore) ActiveFor(ctx context.Context, roomID uuid.UUID, stay booking.StayPeriod) (*discount.Discount, error) {
	rows, err := r.queries.ListCoveringDiscountsByRoom(ctx, r.db, sqlc.ListCoveringDiscountsByRoomParams{
		RoomID:   roomID,
		CheckIn:  pgconv.DateToPgtype(stay.CheckIn()),
		CheckOut: pgconv.DateToPgtype(stay.CheckOut()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room discounts", err)
	}

	candidates := make([]*discount.Discount, 0, len(rows))
	for _, row := range rows {
		d, err := toDiscount(discountColumns{
			ID:         row.ID,
			RoomID:     row.RoomID,
			RoomPrice:  row.RoomPrice,
			Percentage: row.Percentage,
			StartDate:  row.StartDate,
			EndDate:    row.EndDate,
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		})
		if err != nil {
			return nil, infra.WrapRepoErr("invalid discount row", errs.Handled(err), infra.KindDBFailure)
		}
		candidates = append(candidates, d)
	}

	return discount.ResolveActive(candidates, stay.CheckIn(), stay.CheckOut()), nil
}
