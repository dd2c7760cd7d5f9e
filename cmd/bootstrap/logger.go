package bootstrap

import (
	"log/slog"

	"sportshub/internal/handler/middleware"
	"sportshub/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewRequestLogger,
		NewLogger,
	),
)

func NewRequestLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}

// NewLogger also installs the logger as the slog default so packages that
// log through slog directly share the same handler.
func NewLogger(l *middleware.Logger) *slog.Logger {
	logger := l.GetSlogLogger()
	slog.SetDefault(logger)
	return logger
}
