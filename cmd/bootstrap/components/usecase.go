package components

import (
	"context"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra/ratelimit"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		booking.NewNightlyPriceCalculator,
		fx.As(new(booking.PriceCalculator)),
	),
	func(clk clock.Clock, calc booking.PriceCalculator, cfg config.Config) *booking.Services {
		return booking.NewServices(clk, calc, cfg.Booking.MaxStayNights)
	},
	fx.Annotate(
		NewGuestLimiter,
		fx.As(new(commands.GuestRateLimiter)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewCatalogCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		func(store queries.CatalogReadStore, cache queries.SearchCache, cfg config.Config) queries.CatalogQueries {
			return queries.NewCatalogQueries(store, cache, queries.SearchLimits{
				Default: cfg.Search.DefaultLimit,
				Max:     cfg.Search.MaxLimit,
			})
		},
	),
)

// NewGuestLimiter also runs the limiter's sweeper for the lifetime of the app.
func NewGuestLimiter(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) *ratelimit.GuestLimiter {
	limiter := ratelimit.NewGuestLimiter(cfg.Booking.RateLimitMax, cfg.Booking.RateLimitWindow, clk)
	if cfg.Booking.RateLimitMax <= 0 {
		return limiter
	}

	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go limiter.Run(ctx, max(cfg.Booking.RateLimitWindow, time.Second))
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
	return limiter
}
