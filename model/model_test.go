package model_test

import (
	"math"
	"testing"

	"github.com/rhenanbartels/rri-rqa-analysis/common"
	"github.com/rhenanbartels/rri-rqa-analysis/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPairedSeries_Validate covers every rejection path.
func TestPairedSeries_Validate(t *testing.T) {
	tests := []struct {
		name   string
		series model.PairedSeries
		want   error
	}{
		{"valid", model.NewPairedSeries([]float64{1, 2, 3}, []float64{0, 1, 2}), nil},
		{"empty", model.NewPairedSeries(nil, nil), nil},
		{"length mismatch", model.NewPairedSeries([]float64{1, 2}, []float64{0}), common.ErrorInvalidInput},
		{"nan value", model.NewPairedSeries([]float64{1, math.NaN()}, []float64{0, 1}), common.ErrorInvalidInput},
		{"inf time", model.NewPairedSeries([]float64{1, 2}, []float64{0, math.Inf(1)}), common.ErrorInvalidInput},
		{"repeated time", model.NewPairedSeries([]float64{1, 2, 3}, []float64{0, 1, 1}), common.ErrorNonMonotonicTime},
		{"decreasing time", model.NewPairedSeries([]float64{1, 2}, []float64{1, 0}), common.ErrorNonMonotonicTime},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.series.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// TestPairedSeries_SliceCopies makes sure a slice does not alias its source.
func TestPairedSeries_SliceCopies(t *testing.T) {
	s := model.NewPairedSeries([]float64{10, 11, 12, 13}, []float64{0, 1, 2, 3})
	sub := s.Slice(1, 3)
	require.Equal(t, []float64{11, 12}, sub.Values)
	require.Equal(t, []float64{1, 2}, sub.Times)

	sub.Values[0] = -1
	assert.Equal(t, 11.0, s.Values[1])
	assert.Equal(t, 1.0, sub.Duration())
}

// TestSegment_Contains follows the half-open and closed bound rules.
func TestSegment_Contains(t *testing.T) {
	open := model.Segment{Begin: 0, End: 180}
	assert.True(t, open.Contains(0))
	assert.True(t, open.Contains(179.75))
	assert.False(t, open.Contains(180))
	assert.False(t, open.Contains(-0.25))

	closed := model.Segment{Begin: 270, End: 450, Closed: true}
	assert.True(t, closed.Contains(450))
	assert.False(t, closed.Contains(450.25))
}

// TestAnalysisSettings_Validate checks defaults and each bad field.
func TestAnalysisSettings_Validate(t *testing.T) {
	def := model.DefaultAnalysisSettings()
	require.NoError(t, def.Validate())
	assert.Equal(t, 2, def.EmbeddingDimension)
	assert.Equal(t, 2, def.TimeDelay)
	assert.Equal(t, 0.65, def.Radius)
	assert.Equal(t, model.EuclideanMetric, def.Metric)
	assert.Equal(t, 1, def.TheilerCorrector)

	mutations := map[string]func(s *model.AnalysisSettings){
		"embedding":  func(s *model.AnalysisSettings) { s.EmbeddingDimension = 1 },
		"delay":      func(s *model.AnalysisSettings) { s.TimeDelay = 0 },
		"radius":     func(s *model.AnalysisSettings) { s.Radius = 0 },
		"nan radius": func(s *model.AnalysisSettings) { s.Radius = math.NaN() },
		"metric":     func(s *model.AnalysisSettings) { s.Metric = 0 },
		"theiler":    func(s *model.AnalysisSettings) { s.TheilerCorrector = -1 },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			s := model.DefaultAnalysisSettings()
			mutate(&s)
			assert.ErrorIs(t, s.Validate(), common.ErrorInvalidValue)
		})
	}
}

// TestParseMetric accepts aliases and rejects unknown names.
func TestParseMetric(t *testing.T) {
	m, err := model.ParseMetric(" Manhattan ")
	require.NoError(t, err)
	assert.Equal(t, model.TaxicabMetric, m)
	assert.Equal(t, "taxicab", m.String())

	_, err = model.ParseMetric("cosine")
	assert.ErrorIs(t, err, common.ErrorInvalidValue)
}

// TestSegment_ContainsLeftOpen excludes the begin time of a trailing segment.
func TestSegment_ContainsLeftOpen(t *testing.T) {
	tail := model.Segment{Begin: 360, End: 500, Closed: true, LeftOpen: true, Partial: true}
	assert.False(t, tail.Contains(360))
	assert.True(t, tail.Contains(360.25))
	assert.True(t, tail.Contains(500))
}
