package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rhenanbartels/rri-rqa-analysis/common"
	"github.com/rhenanbartels/rri-rqa-analysis/config"
	"github.com/rhenanbartels/rri-rqa-analysis/model"
	"github.com/rhenanbartels/rri-rqa-analysis/resample"
	"github.com/rhenanbartels/rri-rqa-analysis/rri"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// TestLoad_Defaults: 4 Hz, 180 s windows, 90 s overlap, embedding 2, delay 2, radius 0.65.
func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)

	opts, err := cfg.PipelineOptions()
	require.NoError(t, err)
	assert.Equal(t, rri.Milliseconds, opts.Unit)
	assert.Equal(t, 4.0, opts.ResamplingFs)
	assert.Equal(t, resample.NaturalCubic, opts.Method)
	assert.Equal(t, 180.0, opts.WindowSize)
	assert.Equal(t, 90.0, opts.Overlap)
	assert.False(t, opts.KeepLast)
	assert.Equal(t, model.DefaultAnalysisSettings(), opts.Settings)
	assert.Equal(t, 4, opts.Workers)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
input:
  unit: s
resampling:
  fs: 8
  method: not-a-knot
segmentation:
  window_size: 120
  overlap: 60
  keep_last: true
analysis:
  embedding_dimension: 3
  time_delay: 1
  radius: 0.5
  metric: maximum
  theiler_corrector: 2
report:
  nats_url: nats://127.0.0.1:4222
  subject: hrv.rqa
logging:
  level: debug
workers: 2
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "nats://127.0.0.1:4222", cfg.Report.NATSURL)
	assert.Equal(t, "hrv.rqa", cfg.Report.Subject)
	assert.Equal(t, "debug", cfg.Logging.Level)

	opts, err := cfg.PipelineOptions()
	require.NoError(t, err)
	assert.Equal(t, rri.Seconds, opts.Unit)
	assert.Equal(t, 8.0, opts.ResamplingFs)
	assert.Equal(t, resample.NotAKnotCubic, opts.Method)
	assert.Equal(t, 120.0, opts.WindowSize)
	assert.Equal(t, 60.0, opts.Overlap)
	assert.True(t, opts.KeepLast)
	assert.Equal(t, model.AnalysisSettings{
		EmbeddingDimension: 3,
		TimeDelay:          1,
		Radius:             0.5,
		Metric:             model.MaximumMetric,
		TheilerCorrector:   2,
	}, opts.Settings)
	assert.Equal(t, 2, opts.Workers)
}

// TestLoad_EnvOverride lets RRI_* variables win over the file.
func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "resampling:\n  fs: 8\n")
	t.Setenv("RRI_RESAMPLING_FS", "2")
	t.Setenv("RRI_SEGMENTATION_KEEP_LAST", "true")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2.0, cfg.Resampling.Fs)
	assert.True(t, cfg.Segmentation.KeepLast)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"overlap", "segmentation:\n  window_size: 60\n  overlap: 60\n"},
		{"fs", "resampling:\n  fs: 0\n"},
		{"method", "resampling:\n  method: bezier\n"},
		{"unit", "input:\n  unit: minutes\n"},
		{"metric", "analysis:\n  metric: cosine\n"},
		{"embedding", "analysis:\n  embedding_dimension: 1\n"},
		{"workers", "workers: 0\n"},
		{"level", "logging:\n  level: verbose\n"},
		{"subject", "report:\n  nats_url: nats://127.0.0.1:4222\n  subject: \"\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, common.ErrorInvalidValue)
		})
	}
}
