// Package sellerrepo maps SellerInfo payout profiles onto the Sellers
// sheet, at most one row per external ID.
package sellerrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/ashkanv/shopdesk/internal/domain"
	"github.com/ashkanv/shopdesk/internal/repo/rowcodec"
	"github.com/ashkanv/shopdesk/internal/sheetapi"
	"go.uber.org/zap"
)

const (
	sheet       = "Sellers"
	headerLabel = "ExternalID"
	columnCount = 5
)

const (
	colExternalID = iota
	colCardNumber
	colIBAN
	colAccountName
	colPhone
)

type Repository struct {
	rows sheetapi.RowStore
}

func New(rows sheetapi.RowStore) *Repository {
	return &Repository{rows: rows}
}

func readRange() string {
	return fmt.Sprintf("%s!A:%s", sheet, rowcodec.Letter(columnCount-1))
}

func (r *Repository) Get(ctx context.Context, externalID string) (*domain.SellerInfo, error) {
	row, _, err := r.findRow(ctx, externalID)
	if err != nil {
		return nil, err
	}
	info := fromRow(row)
	return &info, nil
}

// Upsert writes the profile in place when a row for the external ID exists,
// otherwise appends one. Reports whether a row was created.
func (r *Repository) Upsert(ctx context.Context, info *domain.SellerInfo) (created bool, err error) {
	_, rowNum, err := r.findRow(ctx, info.ExternalID)
	switch {
	case err == nil:
		rng := fmt.Sprintf("%s!A%d:%s%d", sheet, rowNum, rowcodec.Letter(columnCount-1), rowNum)
		if err := r.rows.WriteRow(ctx, rng, toRow(info)); err != nil {
			zap.L().Error("can't update seller row", zap.String("externalID", info.ExternalID), zap.Error(err))
			return false, err
		}
		return false, nil
	case errors.Is(err, domain.ErrNotFound):
		if err := r.rows.AppendRow(ctx, readRange(), toRow(info)); err != nil {
			zap.L().Error("can't append seller row", zap.String("externalID", info.ExternalID), zap.Error(err))
			return false, err
		}
		return true, nil
	default:
		return false, err
	}
}

func (r *Repository) findRow(ctx context.Context, externalID string) ([]string, int, error) {
	raw, err := r.rows.ReadRows(ctx, readRange())
	if err != nil {
		zap.L().Error("can't read seller rows", zap.Error(err))
		return nil, 0, err
	}
	start := rowcodec.HeaderOffset(raw, headerLabel)
	for i, row := range raw[start:] {
		row = rowcodec.Pad(row, columnCount)
		if row[colExternalID] == externalID && externalID != "" {
			return row, start + i + 1, nil
		}
	}
	return nil, 0, fmt.Errorf("seller %s: %w", externalID, domain.ErrNotFound)
}

func fromRow(row []string) domain.SellerInfo {
	return domain.SellerInfo{
		ExternalID:  row[colExternalID],
		CardNumber:  row[colCardNumber],
		IBAN:        row[colIBAN],
		AccountName: row[colAccountName],
		Phone:       row[colPhone],
	}
}

func toRow(info *domain.SellerInfo) []string {
	row := make([]string, columnCount)
	row[colExternalID] = info.ExternalID
	row[colCardNumber] = info.CardNumber
	row[colIBAN] = info.IBAN
	row[colAccountName] = info.AccountName
	row[colPhone] = info.Phone
	return row
}

