package profiling

import (
	"fmt"
	"strings"
	"time"

	"github.com/grafana/pyroscope-go"
	"go.uber.org/zap"

	"github.com/devportfolio/portfolio-api/config"
	"github.com/devportfolio/portfolio-api/pkg/logger"
)

const (
	defaultAppName        = "portfolio-api"
	defaultUploadInterval = 15 * time.Second
)

// Target identifies the running process in the profiling backend
type Target struct {
	Service     string
	Namespace   string
	Version     string
	Instance    string
	Environment string
}

// tags drops empty labels so the backend does not index blank series
func (t Target) tags() map[string]string {
	tags := make(map[string]string, 5)
	for name, value := range map[string]string{
		"service_name":    t.Service,
		"namespace":       t.Namespace,
		"environment":     t.Environment,
		"service_version": t.Version,
		"instance":        t.Instance,
	} {
		if value = strings.TrimSpace(value); value != "" {
			tags[name] = value
		}
	}
	return tags
}

var profileGroups = map[string][]pyroscope.ProfileType{
	"cpu":           {pyroscope.ProfileCPU},
	"alloc_space":   {pyroscope.ProfileAllocSpace},
	"alloc_objects": {pyroscope.ProfileAllocObjects},
	"inuse_space":   {pyroscope.ProfileInuseSpace},
	"inuse_objects": {pyroscope.ProfileInuseObjects},
	"goroutines":    {pyroscope.ProfileGoroutines},
	"mutex":         {pyroscope.ProfileMutexCount, pyroscope.ProfileMutexDuration},
	"block":         {pyroscope.ProfileBlockCount, pyroscope.ProfileBlockDuration},
}

// defaultSampleTypes is what an unset O11Y_PROFILING_SAMPLE_TYPES means.
// The API is IO bound, so block and mutex contention are not collected.
const defaultSampleTypes = "cpu,alloc_space,alloc_objects,inuse_space,goroutines"

// InitProfiler starts continuous profiling when enabled and returns its stop func
func InitProfiler(cfg config.ProfilingConfig, target Target) (func(), error) {
	if !cfg.Enabled {
		logger.Info("Continuous profiling disabled")
		return func() {}, nil
	}

	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("profiling endpoint is required when profiling is enabled")
	}

	uploadRate := time.Duration(cfg.UploadIntervalSeconds) * time.Second
	if uploadRate <= 0 {
		uploadRate = defaultUploadInterval
	}

	profileTypes, err := parseSampleTypes(cfg.SampleTypes)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.AppName)
	if appName == "" {
		appName = defaultAppName
	}

	profiler, err := pyroscope.Start(pyroscope.Config{
		ApplicationName:   appName,
		Tags:              target.tags(),
		ServerAddress:     endpoint,
		BasicAuthUser:     cfg.BasicAuthUser,
		BasicAuthPassword: cfg.BasicAuthPassword,
		UploadRate:        uploadRate,
		ProfileTypes:      profileTypes,
		Logger:            logger.With(zap.String("component", "profiler")).Sugar(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start profiler: %w", err)
	}

	logger.Info("Continuous profiling initialized",
		zap.String("application_name", appName),
		zap.String("endpoint", endpoint),
		zap.Int("profile_types", len(profileTypes)),
		zap.Duration("upload_rate", uploadRate),
	)

	return func() {
		if stopErr := profiler.Stop(); stopErr != nil {
			logger.Error("Failed to stop profiler", zap.Error(stopErr))
		}
	}, nil
}

// parseSampleTypes expands a comma separated list of group names, keeping first-seen order
func parseSampleTypes(value string) ([]pyroscope.ProfileType, error) {
	if strings.TrimSpace(value) == "" {
		value = defaultSampleTypes
	}

	var types []pyroscope.ProfileType
	seen := make(map[pyroscope.ProfileType]bool)
	for _, raw := range strings.Split(value, ",") {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" {
			continue
		}
		group, ok := profileGroups[name]
		if !ok {
			return nil, fmt.Errorf("unsupported O11Y_PROFILING_SAMPLE_TYPES value: %q", name)
		}
		for _, t := range group {
			if !seen[t] {
				seen[t] = true
				types = append(types, t)
			}
		}
	}

	if len(types) == 0 {
		return parseSampleTypes(defaultSampleTypes)
	}
	return types, nil
}
