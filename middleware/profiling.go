package middleware

import (
	"github.com/grafana/pyroscope-go"

	"github.com/ecilanotrub/users-microservice/config"
)

var profiler *pyroscope.Profiler

// InitProfiling starts Pyroscope continuous profiling using the application
// config. The service name falls back to Kubernetes auto-detection when the
// config does not carry one.
func InitProfiling(cfg config.ProfilingConfig) error {
	serviceName := cfg.ServiceName
	namespace := "default"
	if serviceName == "" {
		serviceName, namespace = detectServiceInfo()
	} else {
		_, namespace = detectServiceInfo()
	}

	pcfg := pyroscope.Config{
		ApplicationName: serviceName,
		ServerAddress:   cfg.Endpoint,
		Tags: map[string]string{
			"service":   serviceName,
			"namespace": namespace,
		},
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocObjects,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileInuseObjects,
			pyroscope.ProfileInuseSpace,
			pyroscope.ProfileGoroutines,
		},
		Logger: pyroscope.StandardLogger,
	}

	var err error
	profiler, err = pyroscope.Start(pcfg)
	return err
}

// StopProfiling stops Pyroscope profiling.
func StopProfiling() {
	if profiler != nil {
		_ = profiler.Stop()
	}
}
