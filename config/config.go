// Package config loads pipeline, analysis, report and logging settings.
package config

import (
	"github.com/rhenanbartels/rri-rqa-analysis/common"
	"github.com/rhenanbartels/rri-rqa-analysis/model"
	"github.com/rhenanbartels/rri-rqa-analysis/pipeline"
	"github.com/rhenanbartels/rri-rqa-analysis/resample"
	"github.com/rhenanbartels/rri-rqa-analysis/rri"
)

type Config struct {
	Input        InputConfig        `mapstructure:"input"`
	Resampling   ResamplingConfig   `mapstructure:"resampling"`
	Segmentation SegmentationConfig `mapstructure:"segmentation"`
	Analysis     AnalysisConfig     `mapstructure:"analysis"`
	Report       ReportConfig       `mapstructure:"report"`
	Logging      LoggingConfig      `mapstructure:"logging"`
	Workers      int                `mapstructure:"workers"`
}

type InputConfig struct {
	Unit string `mapstructure:"unit"`
}

type ResamplingConfig struct {
	Fs     float64 `mapstructure:"fs"`
	Method string  `mapstructure:"method"`
}

type SegmentationConfig struct {
	WindowSize float64 `mapstructure:"window_size"`
	Overlap    float64 `mapstructure:"overlap"`
	KeepLast   bool    `mapstructure:"keep_last"`
}

type AnalysisConfig struct {
	EmbeddingDimension int     `mapstructure:"embedding_dimension"`
	TimeDelay          int     `mapstructure:"time_delay"`
	Radius             float64 `mapstructure:"radius"`
	Metric             string  `mapstructure:"metric"`
	TheilerCorrector   int     `mapstructure:"theiler_corrector"`
}

type ReportConfig struct {
	// NATSURL empty disables publishing.
	NATSURL string `mapstructure:"nats_url"`
	Subject string `mapstructure:"subject"`
}

type LoggingConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

func DefaultConfig() *Config {
	return &Config{
		Input:      InputConfig{Unit: "ms"},
		Resampling: ResamplingConfig{Fs: 4, Method: string(resample.DefaultMethod)},
		Segmentation: SegmentationConfig{
			WindowSize: 180,
			Overlap:    90,
			KeepLast:   false,
		},
		Analysis: AnalysisConfig{
			EmbeddingDimension: 2,
			TimeDelay:          2,
			Radius:             0.65,
			Metric:             "euclidean",
			TheilerCorrector:   1,
		},
		Report:  ReportConfig{Subject: "rri.segments"},
		Logging: LoggingConfig{Level: "info"},
		Workers: 4,
	}
}

// Validate checks every section and stops at the first invalid value.
func (c *Config) Validate() error {
	_, err := c.PipelineOptions()
	if err != nil {
		return err
	}
	if c.Workers < 1 {
		return common.Wrap(common.ErrorInvalidValue, "workers %d < 1", c.Workers)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return common.Wrap(common.ErrorInvalidValue, "unknown logging level %q", c.Logging.Level)
	}
	if c.Report.NATSURL != "" && c.Report.Subject == "" {
		return common.Wrap(common.ErrorInvalidValue, "report subject is required with nats_url")
	}
	return nil
}

// PipelineOptions converts the configuration into pipeline options.
func (c *Config) PipelineOptions() (pipeline.Options, error) {
	unit, err := rri.ParseUnit(c.Input.Unit)
	if err != nil {
		return pipeline.Options{}, err
	}
	method, err := resample.ParseMethod(c.Resampling.Method)
	if err != nil {
		return pipeline.Options{}, err
	}
	metric, err := model.ParseMetric(c.Analysis.Metric)
	if err != nil {
		return pipeline.Options{}, err
	}
	if !(c.Resampling.Fs > 0) {
		return pipeline.Options{}, common.Wrap(common.ErrorInvalidValue, "resampling fs %v must be positive", c.Resampling.Fs)
	}
	if !(c.Segmentation.WindowSize > 0) || c.Segmentation.Overlap < 0 ||
		c.Segmentation.Overlap >= c.Segmentation.WindowSize {
		return pipeline.Options{}, common.Wrap(common.ErrorInvalidValue, "window size %v with overlap %v",
			c.Segmentation.WindowSize, c.Segmentation.Overlap)
	}

	settings := model.AnalysisSettings{
		EmbeddingDimension: c.Analysis.EmbeddingDimension,
		TimeDelay:          c.Analysis.TimeDelay,
		Radius:             c.Analysis.Radius,
		Metric:             metric,
		TheilerCorrector:   c.Analysis.TheilerCorrector,
	}
	if err := settings.Validate(); err != nil {
		return pipeline.Options{}, err
	}

	return pipeline.Options{
		Unit:         unit,
		ResamplingFs: c.Resampling.Fs,
		Method:       method,
		WindowSize:   c.Segmentation.WindowSize,
		Overlap:      c.Segmentation.Overlap,
		KeepLast:     c.Segmentation.KeepLast,
		Settings:     settings,
		Workers:      c.Workers,
	}, nil
}
