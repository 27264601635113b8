package profiling

import (
	"testing"

	"github.com/grafana/pyroscope-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devportfolio/portfolio-api/config"
)

func TestParseSampleTypes_Default(t *testing.T) {
	got, err := parseSampleTypes("")
	require.NoError(t, err)
	assert.Equal(t, []pyroscope.ProfileType{
		pyroscope.ProfileCPU,
		pyroscope.ProfileAllocSpace,
		pyroscope.ProfileAllocObjects,
		pyroscope.ProfileInuseSpace,
		pyroscope.ProfileGoroutines,
	}, got)

	blank, err := parseSampleTypes(" , ")
	require.NoError(t, err)
	assert.Equal(t, got, blank)
}

func TestParseSampleTypes_Custom(t *testing.T) {
	got, err := parseSampleTypes("cpu, mutex,CPU")
	require.NoError(t, err)
	assert.Equal(t, []pyroscope.ProfileType{
		pyroscope.ProfileCPU,
		pyroscope.ProfileMutexCount,
		pyroscope.ProfileMutexDuration,
	}, got)
}

func TestParseSampleTypes_Invalid(t *testing.T) {
	_, err := parseSampleTypes("cpu,unknown")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"unknown"`)
}

func TestTargetTags(t *testing.T) {
	tags := Target{Service: "portfolio-api", Environment: "production", Version: " "}.tags()
	assert.Equal(t, map[string]string{
		"service_name": "portfolio-api",
		"environment":  "production",
	}, tags)
}

func TestInitProfiler_Disabled(t *testing.T) {
	stop, err := InitProfiler(config.ProfilingConfig{Enabled: false}, Target{})
	require.NoError(t, err)
	require.NotNil(t, stop)
	stop()
}

func TestInitProfiler_MissingEndpoint(t *testing.T) {
	_, err := InitProfiler(config.ProfilingConfig{Enabled: true, Endpoint: "  "}, Target{})
	assert.Error(t, err)
}
