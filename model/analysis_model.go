package model

import (
	"fmt"
	"strings"

	"github.com/rhenanbartels/rri-rqa-analysis/common"
)

type Metric int

const (
	EuclideanMetric Metric = 1
	MaximumMetric   Metric = 2
	TaxicabMetric   Metric = 3
)

func (m Metric) String() string {
	switch m {
	case EuclideanMetric:
		return "euclidean"
	case MaximumMetric:
		return "maximum"
	case TaxicabMetric:
		return "taxicab"
	}
	return fmt.Sprintf("metric(%d)", int(m))
}

func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "euclidean":
		return EuclideanMetric, nil
	case "maximum", "chebyshev":
		return MaximumMetric, nil
	case "taxicab", "manhattan":
		return TaxicabMetric, nil
	}
	return 0, common.Wrap(common.ErrorInvalidValue, "unknown metric %q", s)
}

// AnalysisSettings are handed to the recurrence quantification stage with every segment.
type AnalysisSettings struct {
	EmbeddingDimension int     `json:"embedding_dimension"`
	TimeDelay          int     `json:"time_delay"`
	Radius             float64 `json:"radius"`
	Metric             Metric  `json:"metric"`
	TheilerCorrector   int     `json:"theiler_corrector"` // pairs closer than this in time are not counted
}

func DefaultAnalysisSettings() AnalysisSettings {
	return AnalysisSettings{
		EmbeddingDimension: 2,
		TimeDelay:          2,
		Radius:             0.65,
		Metric:             EuclideanMetric,
		TheilerCorrector:   1,
	}
}

func (s *AnalysisSettings) Validate() error {
	if s.EmbeddingDimension < 2 {
		return common.Wrap(common.ErrorInvalidValue, "embedding dimension %d < 2", s.EmbeddingDimension)
	}
	if s.TimeDelay < 1 {
		return common.Wrap(common.ErrorInvalidValue, "time delay %d < 1", s.TimeDelay)
	}
	if !(s.Radius > 0) {
		return common.Wrap(common.ErrorInvalidValue, "radius %v must be positive", s.Radius)
	}
	switch s.Metric {
	case EuclideanMetric, MaximumMetric, TaxicabMetric:
	default:
		return common.Wrap(common.ErrorInvalidValue, "unknown metric %d", int(s.Metric))
	}
	if s.TheilerCorrector < 0 {
		return common.Wrap(common.ErrorInvalidValue, "theiler corrector %d < 0", s.TheilerCorrector)
	}
	return nil
}

// AnalysisResult is produced by the external analysis stage and only forwarded, never interpreted.
type AnalysisResult struct {
	Analyzer   string             `json:"analyzer"`
	Statistics map[string]float64 `json:"statistics,omitempty"`
}

type SegmentReport struct {
	Index       int             `json:"index"`
	Begin       float64         `json:"begin"`
	End         float64         `json:"end"`
	Partial     bool            `json:"partial,omitempty"`
	SampleCount int             `json:"sample_count"`
	Duration    float64         `json:"duration"`
	Result      *AnalysisResult `json:"result,omitempty"`
}

type RunReport struct {
	RunID       string           `json:"run_id"`
	RecordingID string           `json:"recording_id"`
	Settings    AnalysisSettings `json:"settings"`
	Segments    []*SegmentReport `json:"segments"`
	StartedAt   int64            `json:"started_at,omitempty"`
	FinishedAt  int64            `json:"finished_at,omitempty"`
}

func (r *RunReport) DebugString() string {
	return fmt.Sprintf("run: %v, recording: %v, segmentCount: %v", r.RunID, r.RecordingID, len(r.Segments))
}

func (r *RunReport) IsEmpty() bool {
	if r == nil {
		return true
	}
	return len(r.Segments) == 0
}
