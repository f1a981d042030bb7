// Package sheetapitest provides an in-memory RowStore for repository tests.
// Writes are applied to the held rows the way the real store would apply
// them, so round-trip behavior can be asserted without a network.
package sheetapitest

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

type MemStore struct {
	Rows     [][]string
	ReadErr  error
	WriteErr error
	// FailRow makes writes touching this 1-indexed row fail, for partial
	// batch scenarios. Zero disables it.
	FailRow int

	Reads    int
	Appends  int
	Writes   []string // ranges written, in order
}

func New(rows [][]string) *MemStore {
	return &MemStore{Rows: rows}
}

func (m *MemStore) ReadRows(ctx context.Context, rng string) ([][]string, error) {
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	m.Reads++
	out := make([][]string, len(m.Rows))
	for i, row := range m.Rows {
		out[i] = append([]string(nil), row...)
	}
	return out, nil
}

func (m *MemStore) AppendRow(ctx context.Context, rng string, values []string) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Appends++
	m.Rows = append(m.Rows, append([]string(nil), values...))
	return nil
}

func (m *MemStore) WriteRow(ctx context.Context, rng string, values []string) error {
	startCol, rowNum, err := parseRange(rng)
	if err != nil {
		return err
	}
	if m.WriteErr != nil || (m.FailRow != 0 && m.FailRow == rowNum) {
		if m.WriteErr != nil {
			return m.WriteErr
		}
		return fmt.Errorf("simulated write failure on row %d", rowNum)
	}
	m.Writes = append(m.Writes, rng)
	for rowNum > len(m.Rows) {
		m.Rows = append(m.Rows, nil)
	}
	row := m.Rows[rowNum-1]
	for len(row) < startCol+len(values) {
		row = append(row, "")
	}
	copy(row[startCol:], values)
	m.Rows[rowNum-1] = row
	return nil
}

// parseRange reads "Sheet!B3:D3" into the zero-based start column and the
// 1-indexed row number.
func parseRange(rng string) (int, int, error) {
	if i := strings.IndexByte(rng, '!'); i >= 0 {
		rng = rng[i+1:]
	}
	start := strings.SplitN(rng, ":", 2)[0]
	if start == "" {
		return 0, 0, fmt.Errorf("bad range %q", rng)
	}
	col := int(start[0] - 'A')
	rowNum, err := strconv.Atoi(start[1:])
	if err != nil {
		return 0, 0, fmt.Errorf("bad range %q: %w", rng, err)
	}
	return col, rowNum, nil
}
