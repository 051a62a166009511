package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	osSignal "os/signal"
	"path/filepath"
	"strings"

	"github.com/rhenanbartels/rri-rqa-analysis/common"
	"github.com/rhenanbartels/rri-rqa-analysis/config"
	"github.com/rhenanbartels/rri-rqa-analysis/model"
	"github.com/rhenanbartels/rri-rqa-analysis/pipeline"
	"github.com/rhenanbartels/rri-rqa-analysis/report"
	"github.com/rhenanbartels/rri-rqa-analysis/rqa"
	"github.com/rhenanbartels/rri-rqa-analysis/rri"
	"github.com/rhenanbartels/rri-rqa-analysis/utils"
	"go.uber.org/zap"
)

func main() {
	var (
		configPath = flag.String("config", "", "config file (yaml)")
		input      = flag.String("input", "", "interval file, one value per line")
		id         = flag.String("id", "", "recording id, defaults to the input file name")
		natsURL    = flag.String("nats", "", "publish reports to this NATS url")
	)
	flag.Parse()

	if err := run(*configPath, *input, *id, *natsURL); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, input, id, natsURL string) error {
	if input == "" {
		return fmt.Errorf("-input is required")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if natsURL != "" {
		cfg.Report.NATSURL = natsURL
	}
	if err := utils.InitLogger(cfg.Logging.Level, cfg.Logging.Development); err != nil {
		return err
	}
	logger := utils.GetLogger(context.Background())
	defer func() { _ = logger.Sync() }()

	opts, err := cfg.PipelineOptions()
	if err != nil {
		return err
	}

	intervals, err := readIntervals(input)
	if err != nil {
		return err
	}
	if id == "" {
		id = strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	}

	reporters := report.Multi{report.NewLogReporter()}
	if cfg.Report.NATSURL != "" {
		natsReporter, err := report.NewNATSReporter(cfg.Report.NATSURL, cfg.Report.Subject)
		if err != nil {
			return err
		}
		defer func() { _ = natsReporter.Close() }()
		reporters = append(reporters, natsReporter)
	}

	p, err := pipeline.New(opts, rqa.NewDescriptiveAnalyzer(), reporters)
	if err != nil {
		return err
	}

	ctx, stop := osSignal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("processing recording", zap.String("input", input), zap.String("recording", id),
		zap.Int("intervals", len(intervals)))
	if _, err := p.Run(ctx, model.Recording{ID: id, Intervals: intervals}); err != nil {
		if stageErr, ok := common.AsStageError(err); ok {
			return fmt.Errorf("stage %s failed on %s=%v: %w", stageErr.Stage, stageErr.Param, stageErr.Value, err)
		}
		return err
	}
	return nil
}

func readIntervals(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return rri.ReadIntervals(f)
}
