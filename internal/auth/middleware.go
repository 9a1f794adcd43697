package auth

import (
	"net/http"
	"strings"

	apperrors "github.com/sbaumgartner/MBGolfers2/internal/errors"

	"github.com/gin-gonic/gin"
)

const identityContextKey = "identity"

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates the bearer token and sets the caller identity on the
// context. A request without a resolvable user id never reaches a handler.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := m.identityFromRequest(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		SetIdentity(c, identity)
		c.Next()
	}
}

// identityFromRequest resolves the caller identity from the bearer token.
// Every failure is an authentication error; the response body never says
// which check failed.
func (m *AuthMiddleware) identityFromRequest(c *gin.Context) (Identity, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return Identity{}, apperrors.ErrMissingIdentity
	}

	// Extract token from Bearer header
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return Identity{}, apperrors.ErrMissingIdentity
	}

	claims, err := m.service.ValidateJWT(tokenString)
	if err != nil {
		return Identity{}, apperrors.ErrInvalidToken
	}

	identity := claims.Identity()
	if identity.UserID == "" {
		return Identity{}, apperrors.ErrMissingIdentity
	}

	return identity, nil
}

// GetIdentity extracts the caller identity from the context
func GetIdentity(c *gin.Context) (Identity, bool) {
	value, exists := c.Get(identityContextKey)
	if !exists {
		return Identity{}, false
	}

	identity, ok := value.(Identity)
	return identity, ok
}

// SetIdentity puts a caller identity on the context. Used by tests and by any
// boundary that resolves identity without a bearer token.
func SetIdentity(c *gin.Context, identity Identity) {
	c.Set(identityContextKey, identity)
	c.Set("user_id", identity.UserID)
	c.Set("user_email", identity.Email)
}
