package models

import (
	"time"
)

// PlaygroupRecord is a row in the playgroups table. The table is sparse:
// INFO rows carry the playgroup attributes, MEMBER:<userId> rows carry a
// single golfer's membership. Leader and member columns are indexed separately
// so both visibility lookups stay index-backed.
type PlaygroupRecord struct {
	PlaygroupID string `json:"playgroupId" gorm:"primaryKey;size:64"`
	RecordType  string `json:"type" gorm:"primaryKey;size:80"`

	// INFO fields
	Name        string          `json:"name,omitempty" gorm:"size:100"`
	Description string          `json:"description,omitempty" gorm:"size:500"`
	LeaderID    string          `json:"leaderId,omitempty" gorm:"size:64;index:idx_playgroups_leader"`
	LeaderEmail string          `json:"leaderEmail,omitempty" gorm:"size:100"`
	MemberCount int             `json:"memberCount,omitempty"`
	Status      PlaygroupStatus `json:"status" gorm:"size:20;not null"`

	// MEMBER fields
	UserID    string         `json:"userId,omitempty" gorm:"size:64;index:idx_playgroups_member"`
	UserEmail string         `json:"userEmail,omitempty" gorm:"size:100"`
	Role      MembershipRole `json:"role,omitempty" gorm:"size:20"`
	JoinedAt  *time.Time     `json:"joinedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the table name for PlaygroupRecord
func (PlaygroupRecord) TableName() string {
	return "playgroups"
}

// Kind decodes the record's discriminant
func (r *PlaygroupRecord) Kind() RecordKind {
	kind, _ := ParseRecordType(r.RecordType)
	return kind
}

// IsInfo reports whether the row is the playgroup's canonical INFO record
func (r *PlaygroupRecord) IsInfo() bool {
	return r.RecordType == RecordTypeInfo
}

// NewPlaygroupInfo builds the INFO record for a freshly created playgroup.
// The creating user is the leader and counts as the first member.
func NewPlaygroupInfo(playgroupID, name, description, leaderID, leaderEmail string, now time.Time) *PlaygroupRecord {
	return &PlaygroupRecord{
		PlaygroupID: playgroupID,
		RecordType:  RecordTypeInfo,
		Name:        name,
		Description: description,
		LeaderID:    leaderID,
		LeaderEmail: leaderEmail,
		MemberCount: 1,
		Status:      PlaygroupStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// NewPlaygroupMembership builds a membership record for a playgroup
func NewPlaygroupMembership(playgroupID, userID, userEmail string, role MembershipRole, now time.Time) *PlaygroupRecord {
	return &PlaygroupRecord{
		PlaygroupID: playgroupID,
		RecordType:  MembershipRecordType(userID),
		UserID:      userID,
		UserEmail:   userEmail,
		Role:        role,
		JoinedAt:    &now,
		Status:      PlaygroupStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
