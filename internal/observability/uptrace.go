package observability

import (
	"context"
	"strings"

	"github.com/uptrace/uptrace-go/uptrace"

	"github.com/riskibarqy/matchvision/internal/config"
	"github.com/riskibarqy/matchvision/internal/platform/logging"
)

// Shutdown flushes and stops a telemetry component.
type Shutdown func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// InitUptrace installs the global OpenTelemetry providers and, when enabled,
// mirrors application logs to the Uptrace log pipeline.
func InitUptrace(cfg config.Config, logger *logging.Logger) (Shutdown, error) {
	logger = logger.Named("uptrace")

	if !cfg.Uptrace.Enabled {
		logging.SetMirror(nil)
		logger.Info("uptrace disabled", "reason", "UPTRACE_ENABLED=false")
		return noopShutdown, nil
	}
	dsn := strings.TrimSpace(cfg.Uptrace.DSN)
	if dsn == "" {
		logging.SetMirror(nil)
		logger.Info("uptrace disabled", "reason", "UPTRACE_DSN empty")
		return noopShutdown, nil
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(dsn),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
		uptrace.WithLoggingEnabled(cfg.Uptrace.LogsEnabled),
	)

	var mirror logging.MirrorFunc
	if cfg.Uptrace.LogsEnabled {
		mirror = newLogMirror(cfg.ServiceVersion)
	}
	logging.SetMirror(mirror)

	logger.Info("uptrace enabled",
		"service_name", cfg.ServiceName,
		"service_version", cfg.ServiceVersion,
		"environment", cfg.AppEnv,
		"logs_enabled", cfg.Uptrace.LogsEnabled,
	)

	return func(ctx context.Context) error {
		logging.SetMirror(nil)
		return uptrace.Shutdown(ctx)
	}, nil
}
