package rqa

import (
	"context"
	"fmt"

	"github.com/rhenanbartels/rri-rqa-analysis/common"
	"github.com/rhenanbartels/rri-rqa-analysis/model"
	"github.com/rhenanbartels/rri-rqa-analysis/utils"
	"go.uber.org/zap"
)

type Driver struct {
	analyzer Analyzer
	settings model.AnalysisSettings
}

func NewDriver(analyzer Analyzer, settings model.AnalysisSettings) (*Driver, error) {
	if analyzer == nil {
		return nil, common.NewStageError(common.StageAnalysis, "analyzer", nil,
			common.Wrap(common.ErrorInvalidValue, "nil analyzer"))
	}
	if err := settings.Validate(); err != nil {
		return nil, common.NewStageError(common.StageAnalysis, "settings", settings, err)
	}
	return &Driver{
		analyzer: analyzer,
		settings: settings,
	}, nil
}

func (d *Driver) Settings() model.AnalysisSettings {
	return d.settings
}

// Run analyzes segments in order. The first failing segment aborts the run.
func (d *Driver) Run(ctx context.Context, segments []model.Segment) ([]*model.SegmentReport, error) {
	logger := utils.GetLogger(ctx)

	reports := make([]*model.SegmentReport, 0, len(segments))
	for i := range segments {
		seg := &segments[i]
		if err := ctx.Err(); err != nil {
			return nil, common.NewStageError(common.StageAnalysis, "segment_index", seg.Index, err)
		}

		result, err := d.analyzeSegment(ctx, seg)
		if err != nil {
			logger.Error("analyze segment failed", zap.Int("segment", seg.Index),
				zap.String("analyzer", d.analyzer.Name()), zap.Error(err))
			return nil, common.NewStageError(common.StageAnalysis, "segment_index", seg.Index, err)
		}

		reports = append(reports, &model.SegmentReport{
			Index:       seg.Index,
			Begin:       seg.Begin,
			End:         seg.End,
			Partial:     seg.Partial,
			SampleCount: seg.Len(),
			Duration:    seg.Duration(),
			Result:      result,
		})
	}

	logger.Debug("analysis finished", zap.String("analyzer", d.analyzer.Name()),
		zap.Int("segmentCount", len(reports)))
	return reports, nil
}

func (d *Driver) analyzeSegment(ctx context.Context, seg *model.Segment) (res *model.AnalysisResult, err error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("analyzer panic recovered", zap.Any("err", r), zap.Int("segment", seg.Index),
				zap.String("panic info", utils.GetPanicInfo()))
			res = nil
			err = common.Wrap(common.ErrorAnalysisFailed, "panic: %v", r)
		}
	}()

	res, err = d.analyzer.Analyze(ctx, seg.Series.Values, d.settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorAnalysisFailed, err)
	}
	return res, nil
}
