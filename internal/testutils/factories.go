package testutils

import (
	"time"

	"github.com/sbaumgartner/MBGolfers2/internal/database/models"
)

// PlaygroupFactory provides methods to create test playgroup records
type PlaygroupFactory struct{}

// NewPlaygroupFactory creates a new PlaygroupFactory
func NewPlaygroupFactory() *PlaygroupFactory {
	return &PlaygroupFactory{}
}

// CreateInfo creates a test playgroup INFO record with default values
func (f *PlaygroupFactory) CreateInfo() *models.PlaygroupRecord {
	return models.NewPlaygroupInfo(
		models.NewPlaygroupID(),
		"Saturday Regulars",
		"Weekend morning rounds",
		"user-leader",
		"leader@test.com",
		time.Now(),
	)
}

// WithLeader sets a custom leader for the playgroup INFO record
func (f *PlaygroupFactory) WithLeader(leaderID, leaderEmail string) *models.PlaygroupRecord {
	info := f.CreateInfo()
	info.LeaderID = leaderID
	info.LeaderEmail = leaderEmail
	return info
}

// WithName sets a custom name for the playgroup INFO record
func (f *PlaygroupFactory) WithName(name string) *models.PlaygroupRecord {
	info := f.CreateInfo()
	info.Name = name
	return info
}

// CreateMembership creates a membership record tied to the given playgroup
func (f *PlaygroupFactory) CreateMembership(playgroupID, userID, userEmail string, role models.MembershipRole) *models.PlaygroupRecord {
	return models.NewPlaygroupMembership(playgroupID, userID, userEmail, role, time.Now())
}

// TeeTimeFactory provides methods to create test tee time records
type TeeTimeFactory struct{}

// NewTeeTimeFactory creates a new TeeTimeFactory
func NewTeeTimeFactory() *TeeTimeFactory {
	return &TeeTimeFactory{}
}

// CreateInfo creates a test tee time INFO record with default values
func (f *TeeTimeFactory) CreateInfo() *models.TeeTimeRecord {
	return models.NewTeeTimeInfo(
		models.NewTeeTimeID(),
		"pg-default",
		"course-1",
		"2026-09-05",
		"07:30",
		"Front nine warmup",
		"user-leader",
		models.DefaultMaxPlayers,
		time.Now(),
	)
}

// WithPlaygroup sets the owning playgroup for the tee time
func (f *TeeTimeFactory) WithPlaygroup(playgroupID string) *models.TeeTimeRecord {
	tt := f.CreateInfo()
	tt.PlaygroupID = playgroupID
	return tt
}

// WithSchedule sets the date and time of day for the tee time
func (f *TeeTimeFactory) WithSchedule(playgroupID, date, timeOfDay string) *models.TeeTimeRecord {
	tt := f.CreateInfo()
	tt.PlaygroupID = playgroupID
	tt.Date = date
	tt.Time = timeOfDay
	return tt
}

// FactorySet provides access to all factories
type FactorySet struct {
	Playgroup *PlaygroupFactory
	TeeTime   *TeeTimeFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Playgroup: NewPlaygroupFactory(),
		TeeTime:   NewTeeTimeFactory(),
	}
}

// CreatePlaygroupWithLeader creates linked INFO and leader membership records
// for a fresh playgroup.
func (fs *FactorySet) CreatePlaygroupWithLeader(leaderID, leaderEmail string) (*models.PlaygroupRecord, *models.PlaygroupRecord) {
	info := fs.Playgroup.WithLeader(leaderID, leaderEmail)
	membership := fs.Playgroup.CreateMembership(info.PlaygroupID, leaderID, leaderEmail, models.MembershipRoleLeader)
	return info, membership
}
