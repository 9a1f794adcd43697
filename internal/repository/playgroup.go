package repository

import (
	"errors"

	"github.com/sbaumgartner/MBGolfers2/internal/database/models"
	apperrors "github.com/sbaumgartner/MBGolfers2/internal/errors"

	"gorm.io/gorm"
)

// PlaygroupRepository handles database operations for playgroup records
type PlaygroupRepository struct {
	db *gorm.DB
}

// NewPlaygroupRepository creates a new playgroup repository
func NewPlaygroupRepository(db *gorm.DB) *PlaygroupRepository {
	return &PlaygroupRepository{db: db}
}

// ListAllInfo retrieves every playgroup INFO record in the table
func (r *PlaygroupRepository) ListAllInfo() ([]models.PlaygroupRecord, error) {
	var records []models.PlaygroupRecord
	err := r.db.Where("record_type = ?", models.RecordTypeInfo).Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// ListInfoByLeader retrieves the INFO records of all playgroups led by the user
func (r *PlaygroupRepository) ListInfoByLeader(userID string) ([]models.PlaygroupRecord, error) {
	var records []models.PlaygroupRecord
	err := r.db.
		Where("record_type = ? AND leader_id = ?", models.RecordTypeInfo, userID).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// ListInfoByMember retrieves the INFO records of all playgroups where the user
// holds a membership record, resolved through the member index on user_id.
func (r *PlaygroupRepository) ListInfoByMember(userID string) ([]models.PlaygroupRecord, error) {
	var records []models.PlaygroupRecord
	memberships := r.db.Model(&models.PlaygroupRecord{}).
		Select("playgroup_id").
		Where("user_id = ?", userID)
	err := r.db.
		Where("record_type = ? AND playgroup_id IN (?)", models.RecordTypeInfo, memberships).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// GetInfo retrieves a playgroup's INFO record by its id
func (r *PlaygroupRepository) GetInfo(playgroupID string) (*models.PlaygroupRecord, error) {
	var record models.PlaygroupRecord
	err := r.db.First(&record, "playgroup_id = ? AND record_type = ?", playgroupID, models.RecordTypeInfo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlaygroupNotFound
		}
		return nil, err
	}
	return &record, nil
}

// GetMembership retrieves a single membership record for a (playgroup, user) pair
func (r *PlaygroupRepository) GetMembership(playgroupID, userID string) (*models.PlaygroupRecord, error) {
	var record models.PlaygroupRecord
	err := r.db.First(&record, "playgroup_id = ? AND record_type = ?",
		playgroupID, models.MembershipRecordType(userID)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("playgroup membership")
		}
		return nil, err
	}
	return &record, nil
}

// CreateWithLeader writes a playgroup INFO record and its leader membership in
// one transaction. Either both rows are persisted or neither is.
func (r *PlaygroupRepository) CreateWithLeader(info, membership *models.PlaygroupRecord) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(info).Error; err != nil {
			return err
		}
		return tx.Create(membership).Error
	})
}
