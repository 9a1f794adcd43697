package repository

import (
	"errors"

	"github.com/sbaumgartner/MBGolfers2/internal/database/models"
	apperrors "github.com/sbaumgartner/MBGolfers2/internal/errors"

	"gorm.io/gorm"
)

// TeeTimeRepository handles database operations for tee time records
type TeeTimeRepository struct {
	db *gorm.DB
}

// NewTeeTimeRepository creates a new tee time repository
func NewTeeTimeRepository(db *gorm.DB) *TeeTimeRepository {
	return &TeeTimeRepository{db: db}
}

// ListInfoByPlaygroup retrieves the INFO records of a playgroup's tee times,
// optionally narrowed to an exact date. Order is whatever the index returns.
func (r *TeeTimeRepository) ListInfoByPlaygroup(playgroupID string, date *string) ([]models.TeeTimeRecord, error) {
	query := r.db.Where("record_type = ? AND playgroup_id = ?", models.RecordTypeInfo, playgroupID)
	if date != nil {
		query = query.Where("date = ?", *date)
	}

	var records []models.TeeTimeRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// GetInfo retrieves a tee time's INFO record by its id
func (r *TeeTimeRepository) GetInfo(teeTimeID string) (*models.TeeTimeRecord, error) {
	var record models.TeeTimeRecord
	err := r.db.First(&record, "tee_time_id = ? AND record_type = ?", teeTimeID, models.RecordTypeInfo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeeTimeNotFound
		}
		return nil, err
	}
	return &record, nil
}

// Create persists a single tee time INFO record
func (r *TeeTimeRepository) Create(info *models.TeeTimeRecord) error {
	return r.db.Create(info).Error
}
