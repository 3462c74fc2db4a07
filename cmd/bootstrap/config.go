package bootstrap

import (
	"hotel-booking/internal/pkg/config"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		LoadConfig,
	),
)

// LoadConfig reads an optional .env file before processing the environment.
// Variables already set in the environment win.
func LoadConfig() (config.Config, error) {
	_ = godotenv.Load(".env")
	return config.LoadConfig()
}
