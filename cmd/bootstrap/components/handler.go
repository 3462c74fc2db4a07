package components

import (
	"hotel-booking/internal/handler"
	"hotel-booking/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewCatalogHandler,
		api.NewHealthHandler,
		func(b *api.BookingHandler, c *api.CatalogHandler, h *api.HealthHandler) handler.Handlers {
			return handler.Handlers{Booking: b, Catalog: c, Health: h}
		},
	),
	fx.Invoke(handler.NewRouter),
)
