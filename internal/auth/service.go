package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthService validates bearer tokens and mints development tokens
type AuthService struct {
	config *AuthConfig
}

// AuthClaims represents JWT token claims. The subject is the caller's user id
// and the groups claim is a comma-delimited list of role tags, mirroring the
// claim shape an upstream gateway authorizer would attach.
type AuthClaims struct {
	Email  string `json:"email,omitempty"`
	Groups string `json:"groups,omitempty"`
	jwt.RegisteredClaims
}

// Identity decodes the claims into the caller identity the core operates on
func (c *AuthClaims) Identity() Identity {
	return Identity{
		UserID: c.Subject,
		Email:  c.Email,
		Roles:  ParseRoleSet(c.Groups),
	}
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	return &AuthService{config: config}, nil
}

// ValidateJWT parses and validates a bearer token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// GenerateToken mints a signed token for the given identity fields
func (s *AuthService) GenerateToken(userID, email, groups string) (string, int64, error) {
	now := time.Now()
	ttl := time.Duration(s.config.TokenTTLMinutes) * time.Minute

	claims := &AuthClaims{
		Email:  email,
		Groups: groups,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, int64(ttl.Seconds()), nil
}
