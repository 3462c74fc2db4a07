package components

import (
	"context"
	"log/slog"

	"hotel-booking/internal/infra/messaging"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher logs events unless AMQP_URL is set. An unreachable broker
// fails start-up.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (commands.EventPublisher, error) {
	if !cfg.AMQP.Enabled() {
		return messaging.NewLogPublisher(logger), nil
	}

	pub, err := messaging.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
	if err != nil {
		return nil, errs.Wrap(err, "booking events: rabbitmq")
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	logger.Info("Booking events published to rabbitmq", slog.String("exchange", cfg.AMQP.Exchange))
	return pub, nil
}
