package logger_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"itinero/internal/config"
	"itinero/internal/infra"
)

var Module = fx.Provide(provideLogger)

func provideLogger(cfg *config.Config) *zap.Logger {
	return infra.InitLogger(cfg)
}
