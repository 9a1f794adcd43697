package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes the development token endpoint. The original system
// fakes sign-in entirely client-side; this is the server-side stand-in and is
// only routed outside production. It is not a security mechanism.
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// TokenRequest represents the request for a development token
type TokenRequest struct {
	UserID string `json:"userId" binding:"required"`
	Email  string `json:"email"`
	Groups string `json:"groups"`
}

// TokenResponse represents the issued token
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int64  `json:"expiresIn"`
}

// Token handles POST /api/auth/token
func (h *AuthHandler) Token(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, expiresIn, err := h.service.GenerateToken(req.UserID, req.Email, req.Groups)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	})
}
