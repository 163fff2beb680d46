package logger

import (
	"time"

	"github.com/lintang-b-s/edgesep/pkg/logger/config"
	myZap "github.com/lintang-b-s/edgesep/pkg/logger/zap"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// New builds the process-wide zap.Logger from viper-resolved
// configuration, the same three-step shape (env-backed defaults, then
// validate, then build) the rest of the ambient stack uses.
func New() (*zap.Logger, error) {
	viper.SetDefault("LOG_LEVEL", config.InfoLevel)
	viper.SetDefault("LOG_TIME_FORMAT", time.RFC3339Nano)
	viper.AutomaticEnv()

	cfg := config.Configuration{
		Level:      viper.GetInt("LOG_LEVEL"),
		TimeFormat: viper.GetString("LOG_TIME_FORMAT"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := myZap.New(cfg)
	if err != nil {
		return nil, err
	}

	return log, nil
}
