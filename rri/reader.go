package rri

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/rhenanbartels/rri-rqa-analysis/common"
)

// ReadIntervals reads one interval per line. For comma separated rows the first column is used.
// Blank lines and lines starting with '#' are skipped, as is a non numeric header on the first line.
func ReadIntervals(r io.Reader) ([]float64, error) {
	scanner := bufio.NewScanner(r)

	res := []float64{}
	lineNo := 0
	firstContent := true
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		field := line
		if idx := strings.IndexByte(line, ','); idx >= 0 {
			field = strings.TrimSpace(line[:idx])
		}

		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			if firstContent {
				firstContent = false
				continue
			}
			return nil, common.Wrap(common.ErrorInvalidInput, "line %d: %q is not a number", lineNo, field)
		}
		firstContent = false
		res = append(res, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return res, nil
}
