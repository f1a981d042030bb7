// Package rowcodec holds the cell-level conventions shared by every
// repository: fixed-width padding, header sniffing, column addressing and
// the text encodings used for numbers, booleans and timestamps.
package rowcodec

import (
	"strconv"
	"strings"
	"time"
)

// TimeLayout is how timestamps are written into store cells.
const TimeLayout = time.RFC3339

// Pad widens a row to the expected column count. The store drops trailing
// empty cells, so a short row means empty cells, never a shorter record.
func Pad(row []string, width int) []string {
	if len(row) >= width {
		return row
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}

// HeaderOffset sniffs whether the first row is a header by comparing its
// first cell against the expected label, and returns the index data starts at.
func HeaderOffset(rows [][]string, label string) int {
	if len(rows) > 0 && len(rows[0]) > 0 && strings.EqualFold(rows[0][0], label) {
		return 1
	}
	return 0
}

// Letter converts a zero-based column offset to its A1 letter. Sheets here
// are well under 26 columns wide.
func Letter(col int) string {
	return string(rune('A' + col))
}

func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ParseFloat is tolerant: humans edit these cells, so thousands separators
// and blanks show up. Unparseable values read as zero.
func ParseFloat(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

func FormatBool(b bool) string {
	return strconv.FormatBool(b)
}

func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "1":
		return true
	}
	return false
}

func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(TimeLayout)
}

func ParseTime(s string) time.Time {
	t, err := time.Parse(TimeLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}
	}
	return t
}
