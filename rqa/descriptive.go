package rqa

import (
	"context"
	"math"
	"sort"

	"github.com/rhenanbartels/rri-rqa-analysis/common"
	"github.com/rhenanbartels/rri-rqa-analysis/model"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const DescriptiveAnalyzerName = "descriptive"

// DescriptiveAnalyzer summarises each segment with plain statistics.
// It stands in for a recurrence quantification engine and ignores the embedding settings.
type DescriptiveAnalyzer struct{}

func NewDescriptiveAnalyzer() *DescriptiveAnalyzer {
	return &DescriptiveAnalyzer{}
}

func (a *DescriptiveAnalyzer) Name() string {
	return DescriptiveAnalyzerName
}

func (a *DescriptiveAnalyzer) Analyze(ctx context.Context, values []float64,
	settings model.AnalysisSettings) (*model.AnalysisResult, error) {
	if len(values) == 0 {
		return nil, common.Wrap(common.ErrorInvalidInput, "empty segment values")
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	statistics := map[string]float64{
		"count":  float64(len(values)),
		"mean":   stat.Mean(values, nil),
		"min":    floats.Min(values),
		"max":    floats.Max(values),
		"median": stat.Quantile(0.5, stat.Empirical, sorted, nil),
	}
	// spread statistics are undefined for a single sample
	if len(values) > 1 {
		statistics["stddev"] = stat.StdDev(values, nil)
		statistics["rmssd"] = rmssd(values)
	}

	return &model.AnalysisResult{
		Analyzer:   a.Name(),
		Statistics: statistics,
	}, nil
}

// rmssd is the root mean square of successive differences.
func rmssd(values []float64) float64 {
	sum := 0.0
	for i := 1; i < len(values); i++ {
		d := values[i] - values[i-1]
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1))
}
