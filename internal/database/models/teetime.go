package models

import (
	"time"
)

// DefaultMaxPlayers is the number of players a tee time holds unless requested otherwise
const DefaultMaxPlayers = 4

// TeeTimeRecord is a row in the tee_times table, keyed like the playgroups
// table by (teeTimeId, recordType). Only INFO rows exist today; the composite
// key keeps the two families shaped alike. The (playgroup_id, date) index
// backs the per-playgroup listing with optional exact-date narrowing.
type TeeTimeRecord struct {
	TeeTimeID  string `json:"teeTimeId" gorm:"primaryKey;size:64"`
	RecordType string `json:"type" gorm:"primaryKey;size:80"`

	PlaygroupID    string        `json:"playgroupId" gorm:"size:64;index:idx_tee_times_playgroup,priority:1"`
	CourseID       string        `json:"courseId" gorm:"size:64"`
	Date           string        `json:"date" gorm:"size:10;index:idx_tee_times_playgroup,priority:2"`
	Time           string        `json:"time" gorm:"size:8"`
	Description    string        `json:"description,omitempty" gorm:"size:500"`
	MaxPlayers     int           `json:"maxPlayers"`
	CurrentPlayers int           `json:"currentPlayers"`
	CreatedBy      string        `json:"createdBy" gorm:"size:64"`
	Status         TeeTimeStatus `json:"status" gorm:"size:20;not null"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the table name for TeeTimeRecord
func (TeeTimeRecord) TableName() string {
	return "tee_times"
}

// Kind decodes the record's discriminant
func (r *TeeTimeRecord) Kind() RecordKind {
	kind, _ := ParseRecordType(r.RecordType)
	return kind
}

// IsInfo reports whether the row is the tee time's canonical INFO record
func (r *TeeTimeRecord) IsInfo() bool {
	return r.RecordType == RecordTypeInfo
}

// NewTeeTimeInfo builds the INFO record for a freshly scheduled tee time
func NewTeeTimeInfo(teeTimeID, playgroupID, courseID, date, timeOfDay, description, createdBy string, maxPlayers int, now time.Time) *TeeTimeRecord {
	if maxPlayers <= 0 {
		maxPlayers = DefaultMaxPlayers
	}
	return &TeeTimeRecord{
		TeeTimeID:      teeTimeID,
		RecordType:     RecordTypeInfo,
		PlaygroupID:    playgroupID,
		CourseID:       courseID,
		Date:           date,
		Time:           timeOfDay,
		Description:    description,
		MaxPlayers:     maxPlayers,
		CurrentPlayers: 0,
		CreatedBy:      createdBy,
		Status:         TeeTimeStatusScheduled,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
