package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ashkanv/shopdesk/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	s := &JWTService{}
	token, err := s.GenerateJWT(domain.Viewer{ExternalID: "100", Name: "ali", Role: domain.RoleMember}, time.Now().Add(time.Hour))
	assert.NoError(t, err)

	var got domain.Viewer
	handler := AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = ViewerFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name         string
		header       string
		expectedCode int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer garbage", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}

	assert.Equal(t, "100", got.ExternalID)
	assert.Equal(t, domain.RoleMember, got.Role)
}
