package main

import (
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/rhenanbartels/rri-rqa-analysis/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeIntervals(t *testing.T, n int) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("rri\n")
	for i := 0; i < n; i++ {
		v := 800 + 40*math.Sin(2*math.Pi*float64(i)/15)
		b.WriteString(strconv.FormatFloat(v, 'f', 3, 64))
		b.WriteByte('\n')
	}
	path := filepath.Join(t.TempDir(), "patient05.txt")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o600))
	return path
}

func TestRun_File(t *testing.T) {
	assert.NoError(t, run("", writeIntervals(t, 600), "", ""))
}

func TestRun_MissingInput(t *testing.T) {
	assert.Error(t, run("", "", "", ""))
	assert.Error(t, run("", filepath.Join(t.TempDir(), "none.txt"), "", ""))
}

// TestRun_StageFailure names the failing stage in the returned error.
func TestRun_StageFailure(t *testing.T) {
	err := run("", writeIntervals(t, 2), "short", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrorInsufficientData)
	assert.Contains(t, err.Error(), "stage resample")
}
