package components

import (
	"context"
	"log/slog"

	"hotel-booking/internal/infra/arbiter"
	"hotel-booking/internal/infra/catalog"
	"hotel-booking/internal/infra/ledger"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	ledgerModule,
	catalogModule,
	arbiterModule,
)

var ledgerModule = fx.Module("persistence/ledger",
	fx.Provide(
		fx.Annotate(
			ledger.NewLedger,
			fx.As(new(commands.BookingLedger)),
			fx.As(new(queries.BookingReadStore)),
		),
	),
)

var catalogModule = fx.Module("persistence/catalog",
	fx.Provide(
		fx.Annotate(
			catalog.NewStore,
			fx.As(fx.Self()),
			fx.As(new(commands.RoomCatalog)),
			fx.As(new(commands.CatalogWriter)),
			fx.As(new(queries.CatalogReadStore)),
		),
	),
	fx.Invoke(SeedCatalog),
)

var arbiterModule = fx.Module("persistence/arbiter",
	fx.Provide(
		fx.Annotate(
			arbiter.NewArbiter,
			fx.As(new(commands.Arbiter)),
		),
		fx.Annotate(
			arbiter.NewRoomGate,
			fx.As(new(commands.RoomGate)),
		),
	),
)

func SeedCatalog(store *catalog.Store, cfg config.Config, logger *slog.Logger) error {
	n, err := catalog.Seed(context.Background(), store, catalog.SeedOptions{
		GeneratedHotels: cfg.Catalog.SeedHotels,
		Seed:            cfg.Catalog.Seed,
	})
	if err != nil {
		return err
	}
	logger.Info("Catalog seeded", slog.Int("hotels", n))
	return nil
}
