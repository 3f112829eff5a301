package components

import (
	"hotel-booking/internal/infra/document"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/infra/uow"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Read stores, repositories and the outbox notifier are bound to a
// transaction inside the unit of work, so only the unit of work itself is
// provided here.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewSQLQueries,
		NewUnitOfWork,
		fx.Annotate(
			NewInvoiceRenderer,
			fx.As(new(shared.DocumentRenderer)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewUnitOfWork(pool *pgxpool.Pool, q *sqlc.Queries, clk clock.Clock, cfg config.Config) shared.UnitOfWork {
	return uow.NewPostgresUoW(pool, q, clk, cfg.Booking.TxMaxRetries)
}

func NewInvoiceRenderer(cfg config.Config) *document.InvoiceRenderer {
	return document.NewInvoiceRenderer(cfg.Booking.DocumentTitle)
}
