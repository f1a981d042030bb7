// Package goldrepo maps GoldPayment records onto the Gold sheet. The sheet
// carries no key column, so record IDs are synthesized at read time from the
// owner, the row position and the capture instant. Known limitation: such
// IDs are not stable across cache refreshes; giving the sheet a real ID
// column would fix this but is a store-schema decision, not ours to guess.
package goldrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/ashkanv/shopdesk/internal/domain"
	"github.com/ashkanv/shopdesk/internal/repo/rowcodec"
	"github.com/ashkanv/shopdesk/internal/sheetapi"
	"go.uber.org/zap"
)

const (
	sheet       = "Gold"
	headerLabel = "ExternalID"
	columnCount = 9
)

const (
	colExternalID = iota
	colRequesterName
	colAmount
	colPrice
	colTotalRial
	colCreatedAt
	colNote
	colStatus
	colChangedBy
)

type Repository struct {
	rows sheetapi.RowStore
	now  func() time.Time
}

func New(rows sheetapi.RowStore) *Repository {
	return &Repository{rows: rows, now: time.Now}
}

func readRange() string {
	return fmt.Sprintf("%s!A:%s", sheet, rowcodec.Letter(columnCount-1))
}

func (r *Repository) List(ctx context.Context) ([]domain.GoldPayment, error) {
	raw, err := r.rows.ReadRows(ctx, readRange())
	if err != nil {
		zap.L().Error("can't read gold rows", zap.Error(err))
		return nil, err
	}

	capture := r.now().UnixMilli()
	start := rowcodec.HeaderOffset(raw, headerLabel)
	records := make([]domain.GoldPayment, 0, len(raw))
	for i, row := range raw[start:] {
		row = rowcodec.Pad(row, columnCount)
		if row[colExternalID] == "" {
			continue
		}
		rec := fromRow(row)
		rec.ID = fmt.Sprintf("gold-%s-%d-%d", rec.ExternalID, start+i+1, capture)
		records = append(records, rec)
	}
	return records, nil
}

// UpdateStatusForOwner writes the status and changed-by cells of every row
// belonging to one external ID. One transition fanning out to all of an
// owner's rows is the documented behavior of this operation; callers that
// ever need a single-row variant need the store to grow a real key column.
func (r *Repository) UpdateStatusForOwner(ctx context.Context, externalID string, status domain.Status, actor string) (int, error) {
	raw, err := r.rows.ReadRows(ctx, readRange())
	if err != nil {
		zap.L().Error("can't read gold rows", zap.Error(err))
		return 0, err
	}

	updated := 0
	for i, row := range raw {
		row = rowcodec.Pad(row, columnCount)
		if row[colExternalID] != externalID || externalID == "" {
			continue
		}
		rowNum := i + 1
		rng := fmt.Sprintf("%s!%s%d:%s%d", sheet, rowcodec.Letter(colStatus), rowNum, rowcodec.Letter(colChangedBy), rowNum)
		if err := r.rows.WriteRow(ctx, rng, []string{string(status), actor}); err != nil {
			zap.L().Error("can't write gold status",
				zap.String("externalID", externalID), zap.Int("row", rowNum), zap.Error(err))
			return updated, err
		}
		updated++
	}
	if updated == 0 {
		return 0, fmt.Errorf("gold rows for %s: %w", externalID, domain.ErrNotFound)
	}
	return updated, nil
}

func fromRow(row []string) domain.GoldPayment {
	return domain.GoldPayment{
		ExternalID:    row[colExternalID],
		RequesterName: row[colRequesterName],
		Amount:        rowcodec.ParseFloat(row[colAmount]),
		Price:         rowcodec.ParseFloat(row[colPrice]),
		TotalRial:     rowcodec.ParseFloat(row[colTotalRial]),
		CreatedAt:     rowcodec.ParseTime(row[colCreatedAt]),
		Note:          row[colNote],
		Status:        domain.NormalizeStatus(row[colStatus]),
		ChangedBy:     row[colChangedBy],
	}
}
