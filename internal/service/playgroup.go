package service

import (
	"fmt"
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

// PlaygroupService handles visibility and creation of playgroups
type PlaygroupService struct {
	repo       repository.PlaygroupRepositoryInterface
	validator  *validator.Validate
	adminGroup string
}

// NewPlaygroupService creates a new playgroup service
func NewPlaygroupService(repo repository.PlaygroupRepositoryInterface, validator *validator.Validate, adminGroup string) *PlaygroupService {
	return &PlaygroupService{
		repo:       repo,
		validator:  validator,
		adminGroup: adminGroup,
	}
}

// CreatePlaygroupRequest represents the request to create a playgroup
type CreatePlaygroupRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// PlaygroupListResponse represents a list of playgroup INFO records
type PlaygroupListResponse struct {
	Playgroups []models.PlaygroupRecord `json:"playgroups"`
	Total      int                      `json:"total"`
}

// List returns the playgroups visible to the caller
func (s *PlaygroupService) List(identity auth.Identity) (*PlaygroupListResponse, error) {
	records, err := s.AccessiblePlaygroups(identity)
	if err != nil {
		return nil, err
	}

	return &PlaygroupListResponse{
		Playgroups: records,
		Total:      len(records),
	}, nil
}

// AccessiblePlaygroups resolves the caller's visible playgroup INFO records.
// Admins see every playgroup; everyone else sees the union of the playgroups
// they lead and the playgroups where they hold a membership record.
func (s *PlaygroupService) AccessiblePlaygroups(identity auth.Identity) ([]models.PlaygroupRecord, error) {
	if identity.Roles.Has(s.adminGroup) {
		records, err := s.repo.ListAllInfo()
		if err != nil {
			return nil, fmt.Errorf("failed to list playgroups: %w", err)
		}
		if records == nil {
			records = []models.PlaygroupRecord{}
		}
		return records, nil
	}

	// The leader and member lookups are independent; run both and require
	// both to complete before merging.
	var led, joined []models.PlaygroupRecord
	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		led, err = s.repo.ListInfoByLeader(identity.UserID)
		return err
	})
	g.Go(func() error {
		var err error
		joined, err = s.repo.ListInfoByMember(identity.UserID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to list playgroups: %w", err)
	}

	// Union deduplicated by playgroup id, preferring the leader-path copy
	seen := make(map[string]struct{}, len(led))
	records := make([]models.PlaygroupRecord, 0, len(led)+len(joined))
	for _, rec := range led {
		if !rec.IsInfo() {
			continue
		}
		seen[rec.PlaygroupID] = struct{}{}
		records = append(records, rec)
	}
	for _, rec := range joined {
		if !rec.IsInfo() {
			continue
		}
		if _, ok := seen[rec.PlaygroupID]; ok {
			continue
		}
		records = append(records, rec)
	}

	return records, nil
}

// Create creates a playgroup with the caller as leader. The INFO record and
// the leader membership record are written atomically.
func (s *PlaygroupService) Create(identity auth.Identity, req *CreatePlaygroupRequest) (*models.PlaygroupRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("name", "playgroup name is required")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name", "playgroup name is required")
	}

	now := time.Now().UTC()
	playgroupID := models.NewPlaygroupID()

	info := models.NewPlaygroupInfo(playgroupID, name, strings.TrimSpace(req.Description), identity.UserID, identity.Email, now)
	membership := models.NewPlaygroupMembership(playgroupID, identity.UserID, identity.Email, models.MembershipRoleLeader, now)

	if err := s.repo.CreateWithLeader(info, membership); err != nil {
		return nil, fmt.Errorf("failed to create playgroup: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"playgroup_id": playgroupID,
		"leader_id":    identity.UserID,
	}).Info("playgroup created")

	return info, nil
}
