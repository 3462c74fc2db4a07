package components

import (
	"context"
	"log/slog"

	"hotel-booking/internal/infra/cache"
	"hotel-booking/internal/infra/catalog"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewSearchCache,
	),
)

// NewSearchCache uses Redis when REDIS_ADDR is set and the in-process cache
// otherwise. An unreachable Redis fails start-up.
func NewSearchCache(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, store *catalog.Store, logger *slog.Logger) (queries.SearchCache, error) {
	var sc queries.SearchCache = cache.NewMemoryCache(cfg.Search.CacheTTL, clk)

	if cfg.Redis.Enabled() {
		client, err := cache.NewRedisClient(context.Background(), cfg.Redis)
		if err != nil {
			return nil, errs.Wrapf(err, "search cache: redis at %s", cfg.Redis.Addr)
		}
		sc = cache.NewRedisCache(client, cfg.Redis.Prefix, cfg.Search.CacheTTL, logger)
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})
		logger.Info("Search cache backed by redis", slog.String("addr", cfg.Redis.Addr))
	}

	store.OnChange(func() {
		sc.Purge(context.Background())
	})
	return sc, nil
}
