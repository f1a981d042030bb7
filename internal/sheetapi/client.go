// Package sheetapi talks to the external tabular record store over its
// values REST API. It is the only package that knows the wire shapes; the
// repositories above it see rows of strings addressed by A1-style ranges.
package sheetapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ashkanv/shopdesk/internal/domain"
	"github.com/ashkanv/shopdesk/pkg/clients"
)

// callTimeout bounds every store call; expiry surfaces as ErrStoreUnavailable.
const callTimeout = time.Second * 10

// RowStore is the adapter contract the repositories consume. No retry
// happens at this level: retry and degradation are the cache's concern.
type RowStore interface {
	ReadRows(ctx context.Context, rng string) ([][]string, error)
	AppendRow(ctx context.Context, rng string, values []string) error
	WriteRow(ctx context.Context, rng string, values []string) error
}

type Client struct {
	baseURL       string
	spreadsheetID string
	token         string
	client        clients.HTTPClientI
}

func New(baseURL, spreadsheetID, token string, client clients.HTTPClientI) *Client {
	return &Client{
		baseURL:       baseURL,
		spreadsheetID: spreadsheetID,
		token:         token,
		client:        client,
	}
}

type valueRange struct {
	Range          string  `json:"range,omitempty"`
	MajorDimension string  `json:"majorDimension,omitempty"`
	Values         [][]any `json:"values"`
}

func (c *Client) ReadRows(ctx context.Context, rng string) ([][]string, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	statusCode, body, err := c.client.Get(ctx, c.valuesURL(rng, ""), c.headers())
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrStoreUnavailable, rng, err)
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: read %s: status %d", domain.ErrStoreUnavailable, rng, statusCode)
	}

	var vr valueRange
	if err := json.Unmarshal(body, &vr); err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrStoreUnavailable, rng, err)
	}

	rows := make([][]string, 0, len(vr.Values))
	for _, raw := range vr.Values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, cellString(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (c *Client) AppendRow(ctx context.Context, rng string, values []string) error {
	return c.write(ctx, http.MethodPost, c.valuesURL(rng, ":append")+"?valueInputOption=RAW", rng, values)
}

func (c *Client) WriteRow(ctx context.Context, rng string, values []string) error {
	return c.write(ctx, http.MethodPut, c.valuesURL(rng, "")+"?valueInputOption=RAW", rng, values)
}

func (c *Client) write(ctx context.Context, method, u, rng string, values []string) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	row := make([]any, 0, len(values))
	for _, v := range values {
		row = append(row, v)
	}
	body, err := json.Marshal(valueRange{MajorDimension: "ROWS", Values: [][]any{row}})
	if err != nil {
		return fmt.Errorf("marshal write body: %w", err)
	}

	statusCode, _, err := c.client.Send(ctx, method, u, body, c.headers())
	if err != nil {
		return fmt.Errorf("%w: write %s: %v", domain.ErrStoreUnavailable, rng, err)
	}
	if statusCode != http.StatusOK {
		return fmt.Errorf("%w: write %s: status %d", domain.ErrStoreUnavailable, rng, statusCode)
	}
	return nil
}

func (c *Client) valuesURL(rng, suffix string) string {
	return fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s%s",
		c.baseURL, c.spreadsheetID, url.PathEscape(rng), suffix)
}

func (c *Client) headers() http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	if c.token != "" {
		h.Set("Authorization", "Bearer "+c.token)
	}
	return h
}

// cellString renders a store cell as text. The API reports untyped JSON
// values, so numbers and booleans show up for columns humans edited.
func cellString(cell any) string {
	switch v := cell.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
