package handlers

import (
	"net/http"

	"github.com/sbaumgartner/MBGolfers2/internal/auth"
	apperrors "github.com/sbaumgartner/MBGolfers2/internal/errors"
	"github.com/sbaumgartner/MBGolfers2/internal/logger"
	"github.com/sbaumgartner/MBGolfers2/internal/service"

	"github.com/gin-gonic/gin"
)

// TeeTimeHandler handles HTTP requests for tee time operations
type TeeTimeHandler struct {
	teeTimeService service.TeeTimeServiceInterface
}

// NewTeeTimeHandler creates a new tee time handler
func NewTeeTimeHandler(teeTimeService service.TeeTimeServiceInterface) *TeeTimeHandler {
	return &TeeTimeHandler{
		teeTimeService: teeTimeService,
	}
}

// ListTeeTimes handles GET /teetimes with optional playgroupId and date query
// parameters. The date filter only applies together with playgroupId.
func (h *TeeTimeHandler) ListTeeTimes(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	filter := service.TeeTimeFilter{
		PlaygroupID: c.Query("playgroupId"),
	}
	if date := c.Query("date"); date != "" {
		filter.Date = &date
	}

	teeTimes, err := h.teeTimeService.List(identity, filter)
	if err != nil {
		logger.WithContext(c).WithField("error", err.Error()).Error("failed to list tee times")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, teeTimes)
}

// CreateTeeTime handles POST /teetimes
func (h *TeeTimeHandler) CreateTeeTime(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req service.CreateTeeTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	teeTime, err := h.teeTimeService.Create(identity, &req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsAuthorization(err) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		logger.WithContext(c).WithField("error", err.Error()).Error("failed to create tee time")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Tee time created successfully",
		"teeTime": teeTime,
	})
}
