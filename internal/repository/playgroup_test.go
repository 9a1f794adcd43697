//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"github.com/sbaumgartner/MBGolfers2/internal/database/models"
	apperrors "github.com/sbaumgartner/MBGolfers2/internal/errors"
	"github.com/sbaumgartner/MBGolfers2/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// PlaygroupRepositoryTestSuite tests the PlaygroupRepository
type PlaygroupRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *PlaygroupRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *PlaygroupRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewPlaygroupRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *PlaygroupRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *PlaygroupRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *PlaygroupRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateWithLeader tests the two-record atomic create
func (suite *PlaygroupRepositoryTestSuite) TestCreateWithLeader() {
	info, membership := suite.factories.CreatePlaygroupWithLeader("user-1", "u1@test.com")

	err := suite.repo.CreateWithLeader(info, membership)
	suite.NoError(err)

	stored, err := suite.repo.GetInfo(info.PlaygroupID)
	suite.NoError(err)
	suite.Equal("user-1", stored.LeaderID)
	suite.Equal(1, stored.MemberCount)
	suite.Equal(models.PlaygroupStatusActive, stored.Status)

	storedMembership, err := suite.repo.GetMembership(info.PlaygroupID, "user-1")
	suite.NoError(err)
	suite.Equal(models.MembershipRoleLeader, storedMembership.Role)
	suite.Equal(models.MembershipRecordType("user-1"), storedMembership.RecordType)
}

// TestCreateWithLeaderRollsBack tests that a failed second write leaves no INFO row
func (suite *PlaygroupRepositoryTestSuite) TestCreateWithLeaderRollsBack() {
	info, membership := suite.factories.CreatePlaygroupWithLeader("user-1", "u1@test.com")

	// Pre-insert the membership row so the second write inside the
	// transaction violates the primary key.
	conflicting := *membership
	suite.NoError(suite.baseTestSuite.DB.Create(&conflicting).Error)

	err := suite.repo.CreateWithLeader(info, membership)
	suite.Error(err)

	_, err = suite.repo.GetInfo(info.PlaygroupID)
	suite.ErrorIs(err, apperrors.ErrPlaygroupNotFound)
}

// TestListAllInfo tests that only INFO rows are listed
func (suite *PlaygroupRepositoryTestSuite) TestListAllInfo() {
	for i := 0; i < 2; i++ {
		info, membership := suite.factories.CreatePlaygroupWithLeader("user-1", "u1@test.com")
		suite.NoError(suite.repo.CreateWithLeader(info, membership))
	}

	records, err := suite.repo.ListAllInfo()
	suite.NoError(err)
	suite.Len(records, 2)
	for _, record := range records {
		suite.Equal(models.RecordTypeInfo, record.RecordType)
	}
}

// TestListInfoByLeader tests the leader index lookup
func (suite *PlaygroupRepositoryTestSuite) TestListInfoByLeader() {
	mine, mineMembership := suite.factories.CreatePlaygroupWithLeader("user-1", "u1@test.com")
	suite.NoError(suite.repo.CreateWithLeader(mine, mineMembership))

	other, otherMembership := suite.factories.CreatePlaygroupWithLeader("user-2", "u2@test.com")
	suite.NoError(suite.repo.CreateWithLeader(other, otherMembership))

	records, err := suite.repo.ListInfoByLeader("user-1")
	suite.NoError(err)
	suite.Len(records, 1)
	suite.Equal(mine.PlaygroupID, records[0].PlaygroupID)
}

// TestListInfoByMember tests membership resolution to INFO records
func (suite *PlaygroupRepositoryTestSuite) TestListInfoByMember() {
	info, leaderMembership := suite.factories.CreatePlaygroupWithLeader("user-leader", "lead@test.com")
	suite.NoError(suite.repo.CreateWithLeader(info, leaderMembership))

	joined := suite.factories.Playgroup.CreateMembership(info.PlaygroupID, "user-2", "u2@test.com", models.MembershipRoleMember)
	suite.NoError(suite.baseTestSuite.DB.Create(joined).Error)

	records, err := suite.repo.ListInfoByMember("user-2")
	suite.NoError(err)
	suite.Len(records, 1)
	suite.Equal(info.PlaygroupID, records[0].PlaygroupID)
	suite.Equal(models.RecordTypeInfo, records[0].RecordType)
	suite.Equal(info.Name, records[0].Name)

	records, err = suite.repo.ListInfoByMember("user-stranger")
	suite.NoError(err)
	suite.Empty(records)
}

// TestGetInfoNotFound tests the miss path
func (suite *PlaygroupRepositoryTestSuite) TestGetInfoNotFound() {
	_, err := suite.repo.GetInfo("pg-missing")
	suite.ErrorIs(err, apperrors.ErrPlaygroupNotFound)
}

// TestGetMembershipNotFound tests the miss path for membership rows
func (suite *PlaygroupRepositoryTestSuite) TestGetMembershipNotFound() {
	info, membership := suite.factories.CreatePlaygroupWithLeader("user-1", "u1@test.com")
	suite.NoError(suite.repo.CreateWithLeader(info, membership))

	_, err := suite.repo.GetMembership(info.PlaygroupID, "user-stranger")
	suite.True(apperrors.IsNotFound(err))
}

// TestMembershipAndInfoShareTable tests that the two record families coexist
// under the same playgroup id without colliding.
func (suite *PlaygroupRepositoryTestSuite) TestMembershipAndInfoShareTable() {
	info, membership := suite.factories.CreatePlaygroupWithLeader("user-1", "u1@test.com")
	suite.NoError(suite.repo.CreateWithLeader(info, membership))

	extra := models.NewPlaygroupMembership(info.PlaygroupID, "user-2", "u2@test.com", models.MembershipRoleMember, time.Now())
	suite.NoError(suite.baseTestSuite.DB.Create(extra).Error)

	var count int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.PlaygroupRecord{}).
		Where("playgroup_id = ?", info.PlaygroupID).Count(&count).Error)
	suite.EqualValues(3, count)
}

// TestPlaygroupRepositoryTestSuite runs the test suite
func TestPlaygroupRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PlaygroupRepositoryTestSuite))
}
