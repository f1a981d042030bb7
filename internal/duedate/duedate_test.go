package duedate

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var createdAt = time.Date(2024, 3, 10, 12, 30, 0, 0, time.UTC)

func TestDeriveFixedLabels(t *testing.T) {
	tests := []struct {
		label string
		days  int
	}{
		{"Instant", 0},
		{"1 day", 1},
		{"1-2 days", 2},
		{"2-3 days", 3},
		{"3-5 days", 5},
		{"5-10 days", 10},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got := Derive(createdAt, FromText(tt.label))
			assert.Equal(t, createdAt.AddDate(0, 0, tt.days), got)
		})
	}
}

func TestDeriveFreeText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected time.Time
	}{
		{"days with number", "4 days", createdAt.AddDate(0, 0, 4)},
		{"weeks with number", "2 weeks", createdAt.AddDate(0, 0, 14)},
		{"unit without number defaults to one", "week", createdAt.AddDate(0, 0, 7)},
		{"months", "3 months", createdAt.AddDate(0, 3, 0)},
		{"years", "1 year", createdAt.AddDate(1, 0, 0)},
		{"mixed case", "2 Days", createdAt.AddDate(0, 0, 2)},
		{"persian days", "2 روز", createdAt.AddDate(0, 0, 2)},
		{"persian weeks", "1 هفته", createdAt.AddDate(0, 0, 7)},
		{"persian months", "2 ماه", createdAt.AddDate(0, 2, 0)},
		{"persian years", "1 سال", createdAt.AddDate(1, 0, 0)},
		{"unmatched text falls back to one month", "whenever", createdAt.AddDate(0, 1, 0)},
		{"empty text falls back to one month", "", createdAt.AddDate(0, 1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Derive(createdAt, FromText(tt.text)))
		})
	}
}

func TestDeriveNumericMeansMonths(t *testing.T) {
	assert.Equal(t, createdAt.AddDate(0, 2, 0), Derive(createdAt, FromMonths(2)))
}

func TestDeriveNeverBeforeCreation(t *testing.T) {
	specs := []Spec{
		FromText("Instant"), FromText("1 day"), FromText("5-10 days"),
		FromText("2 weeks"), FromText("garbage"), FromMonths(1), FromMonths(12),
	}
	for _, spec := range specs {
		got := Derive(createdAt, spec)
		assert.False(t, got.Before(createdAt), "spec %q produced a due date before creation", spec.String())
	}
}

func TestDeriveIsDeterministic(t *testing.T) {
	spec := FromText("3-5 days")
	first := Derive(createdAt, spec)
	second := Derive(createdAt, spec)
	assert.Equal(t, first, second)
	assert.Equal(t, createdAt, time.Date(2024, 3, 10, 12, 30, 0, 0, time.UTC), "input must not be mutated")
}

func TestSpecUnmarshalJSON(t *testing.T) {
	var s Spec
	assert.NoError(t, json.Unmarshal([]byte(`"1-2 days"`), &s))
	assert.Equal(t, "1-2 days", s.String())

	assert.NoError(t, json.Unmarshal([]byte(`3`), &s))
	assert.Equal(t, "3", s.String())
	assert.Equal(t, createdAt.AddDate(0, 3, 0), Derive(createdAt, s))

	assert.Error(t, json.Unmarshal([]byte(`{"bad":true}`), &s))
}
