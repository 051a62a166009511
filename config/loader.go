package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const EnvPrefix = "RRI"

// Load reads configPath, or config.yaml from the usual locations when empty.
// A missing default file is not an error, RRI_* environment variables override file values.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/rri-rqa")
	}

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := DefaultConfig()

	v.SetDefault("input.unit", def.Input.Unit)

	v.SetDefault("resampling.fs", def.Resampling.Fs)
	v.SetDefault("resampling.method", def.Resampling.Method)

	v.SetDefault("segmentation.window_size", def.Segmentation.WindowSize)
	v.SetDefault("segmentation.overlap", def.Segmentation.Overlap)
	v.SetDefault("segmentation.keep_last", def.Segmentation.KeepLast)

	v.SetDefault("analysis.embedding_dimension", def.Analysis.EmbeddingDimension)
	v.SetDefault("analysis.time_delay", def.Analysis.TimeDelay)
	v.SetDefault("analysis.radius", def.Analysis.Radius)
	v.SetDefault("analysis.metric", def.Analysis.Metric)
	v.SetDefault("analysis.theiler_corrector", def.Analysis.TheilerCorrector)

	v.SetDefault("report.nats_url", def.Report.NATSURL)
	v.SetDefault("report.subject", def.Report.Subject)

	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.development", def.Logging.Development)

	v.SetDefault("workers", def.Workers)
}
