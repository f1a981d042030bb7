package sheetapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ashkanv/shopdesk/internal/domain"
	"github.com/ashkanv/shopdesk/pkg/clients"
	"github.com/stretchr/testify/assert"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := New(srv.URL, "sheet-1", "token-1", clients.NewHTTPClient())
	return c, srv
}

func TestReadRows(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Contains(t, r.URL.Path, "/v4/spreadsheets/sheet-1/values/")
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"range":  "Payments!A:R",
			"values": [][]any{{"ID", "Name"}, {"p1", "ali", 2.5, true, nil}},
		})
	})
	defer srv.Close()

	rows, err := c.ReadRows(context.Background(), "Payments!A:R")
	assert.NoError(t, err)
	assert.Equal(t, [][]string{
		{"ID", "Name"},
		{"p1", "ali", "2.5", "true", ""},
	}, rows)
}

func TestReadRowsStoreFailure(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	defer srv.Close()

	_, err := c.ReadRows(context.Background(), "Payments!A:R")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestAppendRow(t *testing.T) {
	var gotBody valueRange
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.RawPath+r.URL.Path, ":append")
		assert.Equal(t, "RAW", r.URL.Query().Get("valueInputOption"))
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	})
	defer srv.Close()

	err := c.AppendRow(context.Background(), "Payments!A:R", []string{"p1", "ali"})
	assert.NoError(t, err)
	assert.Equal(t, [][]any{{"p1", "ali"}}, gotBody.Values)
}

func TestWriteRow(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		w.WriteHeader(http.StatusOK)
	})
	defer srv.Close()

	assert.NoError(t, c.WriteRow(context.Background(), "Payments!P3:R3", []string{"Paid", "true", "staff"}))
}

func TestWriteRowStoreFailure(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer srv.Close()

	err := c.WriteRow(context.Background(), "Payments!P3:R3", []string{"Paid"})
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
