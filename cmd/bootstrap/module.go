package bootstrap

import (
	"hotel-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	components.PersistenceModule,
	components.CacheModule,
	components.MessagingModule,
	components.UseCaseModule,
	components.HandlerModule,
)
