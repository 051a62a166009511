// Package rqa hands every segment to a time-series analysis stage (recurrence quantification)
// and collects what it returns for reporting.
package rqa

import (
	"context"

	"github.com/rhenanbartels/rri-rqa-analysis/model"
)

// Analyzer is the external analysis stage. values must be treated as read only.
type Analyzer interface {
	Name() string
	Analyze(ctx context.Context, values []float64, settings model.AnalysisSettings) (*model.AnalysisResult, error)
}

// AnalyzerFunc adapts a plain function to Analyzer.
type AnalyzerFunc func(ctx context.Context, values []float64, settings model.AnalysisSettings) (*model.AnalysisResult, error)

func (f AnalyzerFunc) Name() string {
	return "func"
}

func (f AnalyzerFunc) Analyze(ctx context.Context, values []float64,
	settings model.AnalysisSettings) (*model.AnalysisResult, error) {
	return f(ctx, values, settings)
}
