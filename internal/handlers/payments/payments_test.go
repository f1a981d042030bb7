package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/ashkanv/shopdesk/internal/domain"
	"github.com/ashkanv/shopdesk/internal/dto"
	"github.com/ashkanv/shopdesk/internal/service/paymentservice"
	"github.com/ashkanv/shopdesk/pkg/auth"
	"github.com/ashkanv/shopdesk/pkg/utils"
)

func NewMock(t *testing.T) (*PaymentHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

var (
	support = domain.Viewer{ExternalID: "sup-1", Name: "sara", Role: domain.RoleSupport}
	member  = domain.Viewer{ExternalID: "u-1", Name: "ali", Role: domain.RoleMember}
)

func asViewer(r *http.Request, v domain.Viewer) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.ViewerKey, v))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func samplePayment() *domain.Payment {
	created := time.Date(2024, 3, 10, 12, 30, 0, 0, time.UTC)
	return &domain.Payment{
		ID:            "pay-1",
		RequesterName: "ali",
		ExternalID:    "u-1",
		Amount:        2,
		Price:         150000,
		TotalRial:     3000000,
		Duration:      "1-2 days",
		CreatedAt:     created,
		DueDate:       created.AddDate(0, 0, 2),
		Status:        domain.StatusPending,
	}
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		viewer        *domain.Viewer
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:   "Successful list",
			viewer: &member,
			prepareMock: func() {
				service.EXPECT().List(gomock.Any(), member).Return([]domain.Payment{*samplePayment()}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Missing viewer",
			viewer:        nil,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Unauthorized",
		},
		{
			name:   "Store unavailable",
			viewer: &member,
			prepareMock: func() {
				service.EXPECT().List(gomock.Any(), member).Return(nil, domain.ErrStoreUnavailable)
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", "/api/payments", nil)
			if tt.viewer != nil {
				req = asViewer(req, *tt.viewer)
			}
			rr := httptest.NewRecorder()

			handler.List(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestCreateHandler(t *testing.T) {
	handler, service := NewMock(t)

	validBody := `{"requester_name":"ali","external_id":"u-1","amount":"2","price":"150000","duration":"1-2 days"}`

	tests := []struct {
		name          string
		viewer        domain.Viewer
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:   "Successful creation",
			viewer: support,
			body:   validBody,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), support, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ domain.Viewer, in paymentservice.CreateInput) (*domain.Payment, error) {
						assert.Equal(t, "ali", in.RequesterName)
						assert.Equal(t, float64(2), in.Amount)
						assert.Equal(t, float64(150000), in.Price)
						return samplePayment(), nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request body",
			viewer:        support,
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "",
		},
		{
			name:          "Missing required fields",
			viewer:        support,
			body:          `{"amount":"2"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "",
		},
		{
			name:   "Member is rejected",
			viewer: member,
			body:   validBody,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), member, gomock.Any()).
					Return(nil, domain.ErrForbidden)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: "Support role required",
		},
		{
			name:   "Validation failure from service",
			viewer: support,
			body:   validBody,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), support, gomock.Any()).
					Return(nil, domain.NewValidationError("iban", "must be IR followed by 24 digits"))
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/payments", bytes.NewReader([]byte(tt.body)))
			req = asViewer(req, tt.viewer)
			rr := httptest.NewRecorder()

			handler.Create(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestUpdateHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful update",
			body: `{"amount":"3","note":"rush"}`,
			prepareMock: func() {
				service.EXPECT().
					Update(gomock.Any(), support, "pay-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ domain.Viewer, _ string, patch domain.PaymentPatch) (*domain.Payment, error) {
						assert.NotNil(t, patch.Amount)
						assert.Equal(t, float64(3), *patch.Amount)
						assert.Nil(t, patch.Price)
						assert.Equal(t, "rush", *patch.Note)
						return samplePayment(), nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Payment not found",
			body: `{"note":"rush"}`,
			prepareMock: func() {
				service.EXPECT().
					Update(gomock.Any(), support, "pay-1", gomock.Any()).
					Return(nil, domain.ErrNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Payment not found",
		},
		{
			name:         "Invalid request body",
			body:         `{invalid`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("PATCH", "/api/payments/pay-1", bytes.NewReader([]byte(tt.body)))
			req = asViewer(req, support)
			req = withURLParam(req, "id", "pay-1")
			rr := httptest.NewRecorder()

			handler.Update(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestSetStatusHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful transition",
			body: `{"status":"Paid"}`,
			prepareMock: func() {
				paid := samplePayment()
				paid.Status = domain.StatusPaid
				paid.Paid = true
				service.EXPECT().
					Transition(gomock.Any(), support, "pay-1", domain.StatusPaid).
					Return(paid, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Unknown status",
			body:          `{"status":"Shipped"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Unknown status",
		},
		{
			name: "Payment not found",
			body: `{"status":"Cancelled"}`,
			prepareMock: func() {
				service.EXPECT().
					Transition(gomock.Any(), support, "pay-1", domain.StatusCancelled).
					Return(nil, domain.ErrNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Payment not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/payments/pay-1/status", bytes.NewReader([]byte(tt.body)))
			req = asViewer(req, support)
			req = withURLParam(req, "id", "pay-1")
			rr := httptest.NewRecorder()

			handler.SetStatus(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestBatchStatusHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Mixed outcomes reported per ID", func(t *testing.T) {
		paid := samplePayment()
		paid.Status = domain.StatusPaid
		paid.Paid = true
		service.EXPECT().
			BatchTransition(gomock.Any(), support, []string{"pay-1", "missing"}, domain.StatusPaid).
			Return([]paymentservice.BatchResult{
				{ID: "pay-1", Payment: paid},
				{ID: "missing", Err: domain.ErrNotFound},
			}, nil)

		body := `{"ids":["pay-1","missing"],"status":"Paid"}`
		req := httptest.NewRequest("POST", "/api/payments/status", bytes.NewReader([]byte(body)))
		req = asViewer(req, support)
		rr := httptest.NewRecorder()

		handler.BatchStatus(rr, req)

		assert.Equal(t, http.StatusMultiStatus, rr.Code)

		var resp dto.BatchStatusResponseDTO
		err := json.NewDecoder(rr.Body).Decode(&resp)
		assert.NoError(t, err)
		assert.Len(t, resp.Results, 2)
		assert.True(t, resp.Results[0].OK)
		assert.NotNil(t, resp.Results[0].Payment)
		assert.False(t, resp.Results[1].OK)
		assert.NotEmpty(t, resp.Results[1].Error)
	})

	t.Run("Empty ID list rejected", func(t *testing.T) {
		body := `{"ids":[],"status":"Paid"}`
		req := httptest.NewRequest("POST", "/api/payments/status", bytes.NewReader([]byte(body)))
		req = asViewer(req, support)
		rr := httptest.NewRecorder()

		handler.BatchStatus(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Member is rejected", func(t *testing.T) {
		service.EXPECT().
			BatchTransition(gomock.Any(), member, []string{"pay-1"}, domain.StatusPaid).
			Return(nil, domain.ErrForbidden)

		body := `{"ids":["pay-1"],"status":"Paid"}`
		req := httptest.NewRequest("POST", "/api/payments/status", bytes.NewReader([]byte(body)))
		req = asViewer(req, member)
		rr := httptest.NewRecorder()

		handler.BatchStatus(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestCancelHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful cancel",
			prepareMock: func() {
				cancelled := samplePayment()
				cancelled.Status = domain.StatusCancelled
				service.EXPECT().
					Cancel(gomock.Any(), support, "pay-1").
					Return(cancelled, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Payment not found",
			prepareMock: func() {
				service.EXPECT().
					Cancel(gomock.Any(), support, "pay-1").
					Return(nil, domain.ErrNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Payment not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("DELETE", "/api/payments/pay-1", nil)
			req = asViewer(req, support)
			req = withURLParam(req, "id", "pay-1")
			rr := httptest.NewRecorder()

			handler.Cancel(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}
