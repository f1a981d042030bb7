package auth

import (
	"errors"
	"time"

	"github.com/ashkanv/shopdesk/internal/domain"
	"github.com/golang-jwt/jwt"
)

type JWTServiceInterface interface {
	GenerateJWT(viewer domain.Viewer, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

var secretKey = []byte("shopdesk-secret-key")

// SetSecret overrides the signing key at process start.
func SetSecret(secret string) {
	if secret != "" {
		secretKey = []byte(secret)
	}
}

// Claims carry the identity-provider context resolved at login: the
// viewer's external ID, display name and role classification.
type Claims struct {
	ExternalID string `json:"external_id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	jwt.StandardClaims
}

func (c *Claims) Viewer() domain.Viewer {
	role := domain.RoleMember
	if c.Role == string(domain.RoleSupport) {
		role = domain.RoleSupport
	}
	return domain.Viewer{
		ExternalID: c.ExternalID,
		Name:       c.Name,
		Role:       role,
	}
}

type JWTService struct{}

func (s *JWTService) GenerateJWT(viewer domain.Viewer, expirationTime time.Time) (string, error) {
	claims := Claims{
		ExternalID: viewer.ExternalID,
		Name:       viewer.Name,
		Role:       string(viewer.Role),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			Issuer:    "shopdesk",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.ExternalID == "" || claims.Issuer != "shopdesk" {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
