// Package duedate derives a payment's due date from its creation timestamp
// and a duration specifier. Derivation is pure: no clock reads, no mutation
// of the input, same inputs always give the same output.
package duedate

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Spec is a duration specifier as it arrives from a client or a store cell:
// either a known enumerated label, free text with unit words, or a bare
// number meaning whole months.
type Spec struct {
	text    string
	months  int
	numeric bool
}

// FromText builds a Spec from an enumerated label or free text.
func FromText(s string) Spec {
	return Spec{text: s}
}

// FromMonths builds a Spec meaning a whole number of months.
func FromMonths(n int) Spec {
	return Spec{months: n, numeric: true}
}

// UnmarshalJSON accepts both a JSON string and a JSON number.
func (s *Spec) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*s = FromText(text)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = FromMonths(int(n))
	return nil
}

// String returns the value persisted into the duration cell.
func (s Spec) String() string {
	if s.numeric {
		return strconv.Itoa(s.months)
	}
	return s.text
}

func (s Spec) IsZero() bool {
	return !s.numeric && s.text == ""
}

// Enumerated labels offered by the UI, mapped to fixed day offsets.
var fixedDays = map[string]int{
	"Instant":   0,
	"1 day":     1,
	"1-2 days":  2,
	"2-3 days":  3,
	"3-5 days":  5,
	"5-10 days": 10,
}

// Unit keywords scanned in free text, including the Persian synonyms the
// shop's staff actually type.
var unitWords = []struct {
	word string
	unit string
}{
	{"day", "day"},
	{"روز", "day"},
	{"week", "week"},
	{"هفته", "week"},
	{"month", "month"},
	{"ماه", "month"},
	{"year", "year"},
	{"سال", "year"},
}

var firstInt = regexp.MustCompile(`\d+`)

// Derive computes the due date for a record created at createdAt. Unmatched
// free text falls back to one month out.
func Derive(createdAt time.Time, spec Spec) time.Time {
	if spec.numeric {
		return createdAt.AddDate(0, spec.months, 0)
	}

	text := strings.TrimSpace(spec.text)
	if days, ok := fixedDays[text]; ok {
		return createdAt.AddDate(0, 0, days)
	}

	lower := strings.ToLower(text)
	n := 1
	if m := firstInt.FindString(lower); m != "" {
		if v, err := strconv.Atoi(m); err == nil {
			n = v
		}
	}
	for _, uw := range unitWords {
		if !strings.Contains(lower, uw.word) {
			continue
		}
		switch uw.unit {
		case "day":
			return createdAt.AddDate(0, 0, n)
		case "week":
			return createdAt.AddDate(0, 0, 7*n)
		case "month":
			return createdAt.AddDate(0, n, 0)
		case "year":
			return createdAt.AddDate(n, 0, 0)
		}
	}

	return createdAt.AddDate(0, 1, 0)
}
