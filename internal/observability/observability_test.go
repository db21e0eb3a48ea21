package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rainbox/internal/models"
	"rainbox/internal/version"
)

func TestSetup_AllDisabled(t *testing.T) {
	provider, err := Setup(
		models.MetricsConfig{Enabled: false},
		models.ObservabilityConfig{ServiceName: "rainbox"},
		version.Info{Version: "test"},
	)
	require.NoError(t, err)

	assert.Nil(t, provider.PrometheusExporter())
	assert.NoError(t, provider.Shutdown(context.Background()))
}

func TestSetup_MetricsEnabled(t *testing.T) {
	provider, err := Setup(
		models.MetricsConfig{Enabled: true, Port: 9090, Path: "/metrics"},
		models.ObservabilityConfig{ServiceName: "rainbox"},
		version.Info{Version: "test"},
	)
	require.NoError(t, err)
	defer provider.Shutdown(context.Background())

	assert.NotNil(t, provider.PrometheusExporter())
}

func TestSetup_TracingStdout(t *testing.T) {
	provider, err := Setup(
		models.MetricsConfig{},
		models.ObservabilityConfig{
			ServiceName: "rainbox",
			Tracing: models.TracingConfig{
				Enabled:    true,
				Exporter:   "stdout",
				SampleRate: 1.0,
			},
		},
		version.Info{Version: "test"},
	)
	require.NoError(t, err)

	assert.NoError(t, provider.Shutdown(context.Background()))
}

func TestSetup_UnsupportedExporter(t *testing.T) {
	_, err := Setup(
		models.MetricsConfig{},
		models.ObservabilityConfig{
			ServiceName: "rainbox",
			Tracing: models.TracingConfig{
				Enabled:  true,
				Exporter: "jaeger",
			},
		},
		version.Info{Version: "test"},
	)
	assert.ErrorContains(t, err, "unsupported trace exporter")
}
