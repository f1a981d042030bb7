package sellers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/ashkanv/shopdesk/internal/domain"
	"github.com/ashkanv/shopdesk/internal/dto"
	"github.com/ashkanv/shopdesk/internal/service/sellerservice"
	"github.com/ashkanv/shopdesk/pkg/auth"
	"github.com/ashkanv/shopdesk/pkg/utils"
)

func NewMock(t *testing.T) (*SellerHandler, *MockService) {
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

func sampleInfo() *domain.SellerInfo {
	return &domain.SellerInfo{
		ExternalID:  "u-1",
		CardNumber:  "4242424242424242",
		IBAN:        "IR123456789012345678901234",
		AccountName: "Ali Tester",
		Phone:       "09121234567",
	}
}

func TestGetHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		viewer        domain.Viewer
		externalID    string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:       "Member reads own profile",
			viewer:     member,
			externalID: "u-1",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), member, "u-1").Return(sampleInfo(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:       "Member blocked from another profile",
			viewer:     member,
			externalID: "u-2",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), member, "u-2").Return(nil, domain.ErrForbidden)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: "Not your profile",
		},
		{
			name:       "Profile not found",
			viewer:     support,
			externalID: "missing",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), support, "missing").Return(nil, domain.ErrNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Profile not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", "/api/sellers/"+tt.externalID, nil)
			req = asViewer(req, tt.viewer)
			req = withURLParam(req, "externalID", tt.externalID)
			rr := httptest.NewRecorder()

			handler.Get(rr, req)

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

func TestUpsertHandler(t *testing.T) {
	handler, service := NewMock(t)

	validBody := `{"external_id":"u-1","card_number":"4242424242424242","iban":"IR123456789012345678901234","account_name":"Ali Tester","phone":"09121234567"}`

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Profile created",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					Upsert(gomock.Any(), member, *sampleInfo()).
					Return(sampleInfo(), sellerservice.ActionCreated, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Profile updated",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					Upsert(gomock.Any(), member, *sampleInfo()).
					Return(sampleInfo(), sellerservice.ActionUpdated, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `{invalid`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Bad IBAN rejected before service",
			body:         `{"external_id":"u-1","iban":"IR12"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Validation failure from service",
			body: `{"account_name":"Ali Tester"}`,
			prepareMock: func() {
				service.EXPECT().
					Upsert(gomock.Any(), member, gomock.Any()).
					Return(nil, sellerservice.Action(""), domain.NewValidationError("externalID", "required"))
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("PUT", "/api/sellers", bytes.NewReader([]byte(tt.body)))
			req = asViewer(req, member)
			rr := httptest.NewRecorder()

			handler.Upsert(rr, req)

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

func TestUpsertResponseEchoesStoredProfile(t *testing.T) {
	handler, service := NewMock(t)

	// A member's profile is pinned to their own external ID; the response
	// reflects what was stored, not what was sent.
	stored := sampleInfo()
	service.EXPECT().
		Upsert(gomock.Any(), member, gomock.Any()).
		Return(stored, sellerservice.ActionCreated, nil)

	body := `{"external_id":"someone-else","card_number":"4242424242424242"}`
	req := httptest.NewRequest("PUT", "/api/sellers", bytes.NewReader([]byte(body)))
	req = asViewer(req, member)
	rr := httptest.NewRecorder()

	handler.Upsert(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp dto.SellerResponseDTO
	err := json.NewDecoder(rr.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.Equal(t, "u-1", resp.ExternalID)
}
