package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/ashkanv/shopdesk/internal/domain"
	"github.com/ashkanv/shopdesk/pkg/utils"
)

type ContextKey string

const ViewerKey ContextKey = "viewer"

func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		jwtService := &JWTService{}
		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), ViewerKey, claims.Viewer())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ViewerFromContext reads the viewer injected by AuthMiddleware.
func ViewerFromContext(ctx context.Context) (domain.Viewer, bool) {
	viewer, ok := ctx.Value(ViewerKey).(domain.Viewer)
	return viewer, ok
}
