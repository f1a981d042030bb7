// Package paymentrepo maps Payment records onto positional rows of the
// Payments sheet. It is the only place that knows that sheet's column order.
package paymentrepo

import (
	"context"
	"fmt"

	"github.com/ashkanv/shopdesk/internal/domain"
	"github.com/ashkanv/shopdesk/internal/repo/rowcodec"
	"github.com/ashkanv/shopdesk/internal/sheetapi"
	"go.uber.org/zap"
)

const (
	sheet       = "Payments"
	headerLabel = "ID"
	columnCount = 18
)

// Column offsets, fixed contract with the spreadsheet.
const (
	colID = iota
	colRequesterName
	colExternalID
	colAmount
	colPrice
	colTotalRial
	colCardNumber
	colIBAN
	colAccountName
	colPhone
	colDuration
	colCreatedAt
	colDueDate
	colNote
	colGame
	colStatus
	colPaid
	colChangedBy
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

func rowRange(rowNum int) string {
	return fmt.Sprintf("%s!A%d:%s%d", sheet, rowNum, rowcodec.Letter(columnCount-1), rowNum)
}

func (r *Repository) List(ctx context.Context) ([]domain.Payment, error) {
	raw, err := r.rows.ReadRows(ctx, readRange())
	if err != nil {
		zap.L().Error("can't read payment rows", zap.Error(err))
		return nil, err
	}

	start := rowcodec.HeaderOffset(raw, headerLabel)
	payments := make([]domain.Payment, 0, len(raw))
	for _, row := range raw[start:] {
		row = rowcodec.Pad(row, columnCount)
		if row[colID] == "" {
			continue
		}
		payments = append(payments, fromRow(row))
	}
	return payments, nil
}

func (r *Repository) Get(ctx context.Context, id string) (*domain.Payment, error) {
	row, _, err := r.findRow(ctx, id)
	if err != nil {
		return nil, err
	}
	p := fromRow(row)
	return &p, nil
}

func (r *Repository) Append(ctx context.Context, p *domain.Payment) error {
	if err := r.rows.AppendRow(ctx, readRange(), toRow(p)); err != nil {
		zap.L().Error("can't append payment row", zap.String("id", p.ID), zap.Error(err))
		return err
	}
	return nil
}

// Update merges the patch against the stored row and rewrites it. Fields
// absent from the patch keep the stored cell value; the creation timestamp
// is never overwritten by this path.
func (r *Repository) Update(ctx context.Context, id string, patch domain.PaymentPatch) (*domain.Payment, error) {
	row, rowNum, err := r.findRow(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := fromRow(row)
	applyPatch(&merged, patch)

	if err := r.rows.WriteRow(ctx, rowRange(rowNum), toRow(&merged)); err != nil {
		zap.L().Error("can't update payment row", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return &merged, nil
}

// SetStatus is the narrow hot-path write: only the status, paid and
// changed-by cells are touched, so stale client state can't revert the rest
// of the row.
func (r *Repository) SetStatus(ctx context.Context, id string, status domain.Status, actor string) (*domain.Payment, error) {
	row, rowNum, err := r.findRow(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := fromRow(row)
	updated.Status = status
	updated.Paid = status == domain.StatusPaid
	updated.ChangedBy = actor

	rng := fmt.Sprintf("%s!%s%d:%s%d", sheet, rowcodec.Letter(colStatus), rowNum, rowcodec.Letter(colChangedBy), rowNum)
	values := []string{string(status), rowcodec.FormatBool(updated.Paid), actor}
	if err := r.rows.WriteRow(ctx, rng, values); err != nil {
		zap.L().Error("can't write payment status", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return &updated, nil
}

// findRow scans the identity column; first match wins. The returned row
// number is the 1-indexed sheet position, usable directly in a range.
func (r *Repository) findRow(ctx context.Context, id string) ([]string, int, error) {
	raw, err := r.rows.ReadRows(ctx, readRange())
	if err != nil {
		return nil, 0, err
	}
	for i, row := range raw {
		row = rowcodec.Pad(row, columnCount)
		if row[colID] == id && id != "" {
			return row, i + 1, nil
		}
	}
	return nil, 0, fmt.Errorf("payment %s: %w", id, domain.ErrNotFound)
}

func fromRow(row []string) domain.Payment {
	return domain.Payment{
		ID:            row[colID],
		RequesterName: row[colRequesterName],
		ExternalID:    row[colExternalID],
		Amount:        rowcodec.ParseFloat(row[colAmount]),
		Price:         rowcodec.ParseFloat(row[colPrice]),
		TotalRial:     rowcodec.ParseFloat(row[colTotalRial]),
		CardNumber:    row[colCardNumber],
		IBAN:          row[colIBAN],
		AccountName:   row[colAccountName],
		Phone:         row[colPhone],
		Duration:      row[colDuration],
		CreatedAt:     rowcodec.ParseTime(row[colCreatedAt]),
		DueDate:       rowcodec.ParseTime(row[colDueDate]),
		Note:          row[colNote],
		Game:          row[colGame],
		Status:        domain.NormalizeStatus(row[colStatus]),
		Paid:          rowcodec.ParseBool(row[colPaid]),
		ChangedBy:     row[colChangedBy],
	}
}

func toRow(p *domain.Payment) []string {
	row := make([]string, columnCount)
	row[colID] = p.ID
	row[colRequesterName] = p.RequesterName
	row[colExternalID] = p.ExternalID
	row[colAmount] = rowcodec.FormatFloat(p.Amount)
	row[colPrice] = rowcodec.FormatFloat(p.Price)
	row[colTotalRial] = rowcodec.FormatFloat(p.TotalRial)
	row[colCardNumber] = p.CardNumber
	row[colIBAN] = p.IBAN
	row[colAccountName] = p.AccountName
	row[colPhone] = p.Phone
	row[colDuration] = p.Duration
	row[colCreatedAt] = rowcodec.FormatTime(p.CreatedAt)
	row[colDueDate] = rowcodec.FormatTime(p.DueDate)
	row[colNote] = p.Note
	row[colGame] = p.Game
	row[colStatus] = string(p.Status)
	row[colPaid] = rowcodec.FormatBool(p.Paid)
	row[colChangedBy] = p.ChangedBy
	return row
}

func applyPatch(p *domain.Payment, patch domain.PaymentPatch) {
	if patch.RequesterName != nil {
		p.RequesterName = *patch.RequesterName
	}
	if patch.Amount != nil {
		p.Amount = *patch.Amount
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.TotalRial != nil {
		p.TotalRial = *patch.TotalRial
	}
	if patch.CardNumber != nil {
		p.CardNumber = *patch.CardNumber
	}
	if patch.IBAN != nil {
		p.IBAN = *patch.IBAN
	}
	if patch.AccountName != nil {
		p.AccountName = *patch.AccountName
	}
	if patch.Phone != nil {
		p.Phone = *patch.Phone
	}
	if patch.Duration != nil {
		p.Duration = *patch.Duration
	}
	if patch.DueDate != nil {
		p.DueDate = *patch.DueDate
	}
	if patch.Note != nil {
		p.Note = *patch.Note
	}
	if patch.Game != nil {
		p.Game = *patch.Game
	}
}
