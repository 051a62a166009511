package rri_test

import (
	"strings"
	"testing"

	"github.com/rhenanbartels/rri-rqa-analysis/common"
	"github.com/rhenanbartels/rri-rqa-analysis/rri"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromPeaks converts index differences at 512 Hz into milliseconds.
func TestFromPeaks(t *testing.T) {
	intervals, err := rri.FromPeaks([]int{100, 612, 1124, 1636}, 512)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1000, 1000, 1000}, intervals, 1e-9)

	intervals, err = rri.FromPeaks([]int{0, 200, 456}, 250)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{800, 1024}, intervals, 1e-9)
}

func TestFromPeaks_Invalid(t *testing.T) {
	_, err := rri.FromPeaks([]int{10}, 512)
	assert.ErrorIs(t, err, common.ErrorInvalidInput)

	_, err = rri.FromPeaks([]int{10, 10}, 512)
	assert.ErrorIs(t, err, common.ErrorInvalidInput)

	_, err = rri.FromPeaks([]int{10, 20}, 0)
	assert.ErrorIs(t, err, common.ErrorInvalidInput)
}

func TestToSeconds(t *testing.T) {
	in := []float64{800, 810, 795}
	out, err := rri.ToSeconds(in, rri.Milliseconds)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.8, 0.81, 0.795}, out, 1e-12)
	assert.Equal(t, 800.0, in[0], "input must not be modified")

	out, err = rri.ToSeconds([]float64{0.8}, rri.Seconds)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.8}, out)

	_, err = rri.ToSeconds(in, rri.Unit(0))
	assert.ErrorIs(t, err, common.ErrorInvalidValue)
}

func TestParseUnit(t *testing.T) {
	u, err := rri.ParseUnit("MS")
	require.NoError(t, err)
	assert.Equal(t, rri.Milliseconds, u)

	u, err = rri.ParseUnit("seconds")
	require.NoError(t, err)
	assert.Equal(t, "s", u.String())

	_, err = rri.ParseUnit("minutes")
	assert.ErrorIs(t, err, common.ErrorInvalidValue)
}

// TestReadIntervals skips header, comments, blank lines and extra columns.
func TestReadIntervals(t *testing.T) {
	input := "rri\n# patient 05\n800\n\n810, 1\n 795 \n"
	intervals, err := rri.ReadIntervals(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []float64{800, 810, 795}, intervals)
}

func TestReadIntervals_BadLine(t *testing.T) {
	_, err := rri.ReadIntervals(strings.NewReader("800\nabc\n"))
	assert.ErrorIs(t, err, common.ErrorInvalidInput)
	assert.Contains(t, err.Error(), "line 2")
}
