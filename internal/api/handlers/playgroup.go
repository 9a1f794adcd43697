package handlers

import (
	"net/http"

	"github.com/sbaumgartner/MBGolfers2/internal/auth"
	apperrors "github.com/sbaumgartner/MBGolfers2/internal/errors"
	"github.com/sbaumgartner/MBGolfers2/internal/logger"
	"github.com/sbaumgartner/MBGolfers2/internal/service"

	"github.com/gin-gonic/gin"
)

// PlaygroupHandler handles HTTP requests for playgroup operations
type PlaygroupHandler struct {
	playgroupService service.PlaygroupServiceInterface
}

// NewPlaygroupHandler creates a new playgroup handler
func NewPlaygroupHandler(playgroupService service.PlaygroupServiceInterface) *PlaygroupHandler {
	return &PlaygroupHandler{
		playgroupService: playgroupService,
	}
}

// ListPlaygroups handles GET /playgroups
func (h *PlaygroupHandler) ListPlaygroups(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	playgroups, err := h.playgroupService.List(identity)
	if err != nil {
		logger.WithContext(c).WithField("error", err.Error()).Error("failed to list playgroups")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, playgroups)
}

// CreatePlaygroup handles POST /playgroups
func (h *PlaygroupHandler) CreatePlaygroup(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req service.CreatePlaygroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	playgroup, err := h.playgroupService.Create(identity, &req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.WithContext(c).WithField("error", err.Error()).Error("failed to create playgroup")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Playgroup created successfully",
		"playgroup": playgroup,
	})
}
