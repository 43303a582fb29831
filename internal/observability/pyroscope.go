package observability

import (
	"github.com/grafana/pyroscope-go"

	"github.com/riskibarqy/matchvision/internal/config"
	"github.com/riskibarqy/matchvision/internal/platform/logging"
)

// InitPyroscope starts continuous profiling when enabled.
func InitPyroscope(cfg config.Config, logger *logging.Logger) (func() error, error) {
	logger = logger.Named("pyroscope")
	pc := cfg.Pyroscope

	if !pc.Enabled {
		logger.Info("pyroscope disabled", "reason", "PYROSCOPE_ENABLED=false")
		return func() error { return nil }, nil
	}

	profiler, err := pyroscope.Start(pyroscope.Config{
		ApplicationName:   pc.AppName,
		ServerAddress:     pc.ServerAddress,
		AuthToken:         pc.AuthToken,
		BasicAuthUser:     pc.BasicAuthUser,
		BasicAuthPassword: pc.BasicAuthPassword,
		UploadRate:        pc.UploadRate,
		Tags: map[string]string{
			"env":     cfg.AppEnv,
			"service": cfg.ServiceName,
			"version": cfg.ServiceVersion,
		},
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileInuseSpace,
			pyroscope.ProfileGoroutines,
			pyroscope.ProfileMutexDuration,
			pyroscope.ProfileBlockDuration,
		},
	})
	if err != nil {
		return nil, err
	}

	logger.Info("pyroscope enabled", "server_address", pc.ServerAddress, "application", pc.AppName)
	return profiler.Stop, nil
}
