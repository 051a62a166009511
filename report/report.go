// Package report delivers run reports to logs or a message bus.
package report

import (
	"context"

	"github.com/rhenanbartels/rri-rqa-analysis/model"
	"github.com/rhenanbartels/rri-rqa-analysis/utils"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type Reporter interface {
	Report(ctx context.Context, run *model.RunReport) error
}

// LogReporter writes one line per segment to the context logger.
type LogReporter struct{}

func NewLogReporter() *LogReporter {
	return &LogReporter{}
}

func (r *LogReporter) Report(ctx context.Context, run *model.RunReport) error {
	logger := utils.GetLogger(ctx).With(zap.String("run", run.RunID), zap.String("recording", run.RecordingID))

	for _, seg := range run.Segments {
		fields := []zap.Field{
			zap.Int("segment", seg.Index),
			zap.Float64("begin", utils.FormatFloat(seg.Begin, 3)),
			zap.Float64("end", utils.FormatFloat(seg.End, 3)),
			zap.Float64("duration", utils.FormatFloat(seg.Duration, 3)),
			zap.Int("samples", seg.SampleCount),
			zap.Bool("partial", seg.Partial),
		}
		if seg.Result != nil {
			fields = append(fields, zap.String("analyzer", seg.Result.Analyzer),
				zap.Any("statistics", seg.Result.Statistics))
		}
		logger.Info("segment result", fields...)
	}
	logger.Info("run finished", zap.Int("segmentCount", len(run.Segments)))
	return nil
}

// Multi reports to every reporter and joins their errors.
type Multi []Reporter

func (m Multi) Report(ctx context.Context, run *model.RunReport) error {
	var err error
	for _, r := range m {
		err = multierr.Append(err, r.Report(ctx, run))
	}
	return err
}
