package service

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sbaumgartner/MBGolfers2/internal/auth"
	"github.com/sbaumgartner/MBGolfers2/internal/database/models"
	apperrors "github.com/sbaumgartner/MBGolfers2/internal/errors"
	"github.com/sbaumgartner/MBGolfers2/internal/logger"
	"github.com/sbaumgartner/MBGolfers2/internal/repository"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
)

// TeeTimeService handles visibility and creation of tee times
type TeeTimeService struct {
	repo          repository.TeeTimeRepositoryInterface
	playgroupRepo repository.PlaygroupRepositoryInterface
	playgroups    PlaygroupServiceInterface
	validator     *validator.Validate
	adminGroup    string
}

// NewTeeTimeService creates a new tee time service
func NewTeeTimeService(repo repository.TeeTimeRepositoryInterface, playgroupRepo repository.PlaygroupRepositoryInterface, playgroups PlaygroupServiceInterface, validator *validator.Validate, adminGroup string) *TeeTimeService {
	return &TeeTimeService{
		repo:          repo,
		playgroupRepo: playgroupRepo,
		playgroups:    playgroups,
		validator:     validator,
		adminGroup:    adminGroup,
	}
}

// TeeTimeFilter narrows a tee time listing. Date is only honored together
// with PlaygroupID.
type TeeTimeFilter struct {
	PlaygroupID string
	Date        *string
}

// CreateTeeTimeRequest represents the request to schedule a tee time.
// MaxPlayers is accepted as any JSON value and coerced; absent or non-numeric
// values fall back to the default of 4.
type CreateTeeTimeRequest struct {
	PlaygroupID string      `json:"playgroupId" validate:"required"`
	CourseID    string      `json:"courseId" validate:"required"`
	Date        string      `json:"date" validate:"required"`
	Time        string      `json:"time" validate:"required"`
	Description string      `json:"description"`
	MaxPlayers  interface{} `json:"maxPlayers"`
}

// TeeTimeListResponse represents a list of tee time INFO records
type TeeTimeListResponse struct {
	TeeTimes []models.TeeTimeRecord `json:"teeTimes"`
	Total    int                    `json:"total"`
}

// List returns the tee times visible to the caller. With a playgroup filter
// the listing is a single indexed query in store order; without one it fans
// out across every accessible playgroup and sorts by (date, time) ascending.
func (s *TeeTimeService) List(identity auth.Identity, filter TeeTimeFilter) (*TeeTimeListResponse, error) {
	if filter.PlaygroupID != "" {
		records, err := s.repo.ListInfoByPlaygroup(filter.PlaygroupID, filter.Date)
		if err != nil {
			return nil, fmt.Errorf("failed to list tee times: %w", err)
		}
		if records == nil {
			records = []models.TeeTimeRecord{}
		}
		return &TeeTimeListResponse{TeeTimes: records, Total: len(records)}, nil
	}

	playgroups, err := s.playgroups.AccessiblePlaygroups(identity)
	if err != nil {
		return nil, err
	}
	if len(playgroups) == 0 {
		return &TeeTimeListResponse{TeeTimes: []models.TeeTimeRecord{}, Total: 0}, nil
	}

	// One query per accessible playgroup, issued concurrently. A single
	// failed query fails the whole listing rather than returning a partial
	// result.
	results := make([][]models.TeeTimeRecord, len(playgroups))
	g := new(errgroup.Group)
	for i, playgroup := range playgroups {
		g.Go(func() error {
			records, err := s.repo.ListInfoByPlaygroup(playgroup.PlaygroupID, nil)
			if err != nil {
				return err
			}
			results[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to list tee times: %w", err)
	}

	teeTimes := make([]models.TeeTimeRecord, 0)
	for _, records := range results {
		teeTimes = append(teeTimes, records...)
	}

	// Both fields are lexically sortable strings
	sort.Slice(teeTimes, func(i, j int) bool {
		if teeTimes[i].Date != teeTimes[j].Date {
			return teeTimes[i].Date < teeTimes[j].Date
		}
		return teeTimes[i].Time < teeTimes[j].Time
	})

	return &TeeTimeListResponse{TeeTimes: teeTimes, Total: len(teeTimes)}, nil
}

// Create schedules a tee time for a playgroup. Admins may schedule for any
// playgroup; everyone else must lead the target playgroup. A missing
// playgroup and an unled one produce the same denial.
func (s *TeeTimeService) Create(identity auth.Identity, req *CreateTeeTimeRequest) (*models.TeeTimeRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", "missing required fields: playgroupId, courseId, date, time")
	}

	allowed, err := s.canSchedule(identity, req.PlaygroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify playgroup permission: %w", err)
	}
	if !allowed {
		return nil, apperrors.ErrTeeTimePermissionDenied
	}

	now := time.Now().UTC()
	info := models.NewTeeTimeInfo(
		models.NewTeeTimeID(),
		req.PlaygroupID,
		req.CourseID,
		req.Date,
		req.Time,
		strings.TrimSpace(req.Description),
		identity.UserID,
		coerceMaxPlayers(req.MaxPlayers),
		now,
	)

	if err := s.repo.Create(info); err != nil {
		return nil, fmt.Errorf("failed to create tee time: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"tee_time_id":  info.TeeTimeID,
		"playgroup_id": info.PlaygroupID,
		"date":         info.Date,
	}).Info("tee time scheduled")

	return info, nil
}

func (s *TeeTimeService) canSchedule(identity auth.Identity, playgroupID string) (bool, error) {
	if identity.Roles.Has(s.adminGroup) {
		return true, nil
	}

	info, err := s.playgroupRepo.GetInfo(playgroupID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}

	return info.LeaderID == identity.UserID, nil
}

func coerceMaxPlayers(value interface{}) int {
	switch v := value.(type) {
	case nil:
		return models.DefaultMaxPlayers
	case float64:
		return int(v)
	case int:
		return v
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return models.DefaultMaxPlayers
}
