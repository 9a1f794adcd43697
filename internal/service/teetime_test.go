package service_test

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/sbaumgartner/MBGolfers2/internal/database/models"
	apperrors "github.com/sbaumgartner/MBGolfers2/internal/errors"
	"github.com/sbaumgartner/MBGolfers2/internal/mocks"
	"github.com/sbaumgartner/MBGolfers2/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TeeTimeServiceTestSuite defines the test suite for TeeTimeService
type TeeTimeServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockRepo          *mocks.MockTeeTimeRepositoryInterface
	mockPlaygroupRepo *mocks.MockPlaygroupRepositoryInterface
	mockPlaygroupSvc  *mocks.MockPlaygroupServiceInterface
	teeTimeService    *service.TeeTimeService
}

// SetupTest sets up the test suite
func (suite *TeeTimeServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockTeeTimeRepositoryInterface(suite.ctrl)
	suite.mockPlaygroupRepo = mocks.NewMockPlaygroupRepositoryInterface(suite.ctrl)
	suite.mockPlaygroupSvc = mocks.NewMockPlaygroupServiceInterface(suite.ctrl)
	suite.teeTimeService = service.NewTeeTimeService(
		suite.mockRepo,
		suite.mockPlaygroupRepo,
		suite.mockPlaygroupSvc,
		validator.New(),
		testAdminGroup,
	)
}

// TearDownTest cleans up after each test
func (suite *TeeTimeServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func teeTimeRecord(playgroupID, date, timeOfDay string) models.TeeTimeRecord {
	return *models.NewTeeTimeInfo(models.NewTeeTimeID(), playgroupID, "course-1", date, timeOfDay, "", "user-leader", 4, time.Now())
}

// TestListTeeTimes tests the listing paths
func (suite *TeeTimeServiceTestSuite) TestListTeeTimes() {
	identity := identityWithRoles("user-1", "u1@test.com", "Golfers")

	suite.T().Run("Playgroup filter is a single query", func(t *testing.T) {
		records := []models.TeeTimeRecord{teeTimeRecord("pg-1", "2026-09-05", "07:30")}
		suite.mockRepo.EXPECT().ListInfoByPlaygroup("pg-1", nil).Return(records, nil).Times(1)

		response, err := suite.teeTimeService.List(identity, service.TeeTimeFilter{PlaygroupID: "pg-1"})

		assert.NoError(t, err)
		assert.Equal(t, 1, response.Total)
	})

	suite.T().Run("Playgroup filter with no rows serializes to an empty array", func(t *testing.T) {
		suite.mockRepo.EXPECT().ListInfoByPlaygroup("pg-1", nil).Return(nil, nil).Times(1)

		response, err := suite.teeTimeService.List(identity, service.TeeTimeFilter{PlaygroupID: "pg-1"})

		assert.NoError(t, err)
		assert.NotNil(t, response.TeeTimes)

		payload, err := json.Marshal(response)
		assert.NoError(t, err)
		assert.Contains(t, string(payload), `"teeTimes":[]`)
	})

	suite.T().Run("Date filter is passed through with playgroup", func(t *testing.T) {
		date := "2026-09-05"
		suite.mockRepo.EXPECT().ListInfoByPlaygroup("pg-1", &date).Return([]models.TeeTimeRecord{}, nil).Times(1)

		response, err := suite.teeTimeService.List(identity, service.TeeTimeFilter{PlaygroupID: "pg-1", Date: &date})

		assert.NoError(t, err)
		assert.Equal(t, 0, response.Total)
	})

	suite.T().Run("Fan-out merges and sorts by date then time", func(t *testing.T) {
		playgroups := []models.PlaygroupRecord{
			infoRecord("pg-1", "Saturday Regulars", "user-1"),
			infoRecord("pg-2", "Twilight Nine", "user-2"),
		}
		suite.mockPlaygroupSvc.EXPECT().AccessiblePlaygroups(identity).Return(playgroups, nil).Times(1)
		suite.mockRepo.EXPECT().ListInfoByPlaygroup("pg-1", nil).Return([]models.TeeTimeRecord{
			teeTimeRecord("pg-1", "2026-09-05", "07:00"),
			teeTimeRecord("pg-1", "2026-09-12", "08:15"),
		}, nil).Times(1)
		suite.mockRepo.EXPECT().ListInfoByPlaygroup("pg-2", nil).Return([]models.TeeTimeRecord{
			teeTimeRecord("pg-2", "2026-09-05", "06:30"),
		}, nil).Times(1)

		response, err := suite.teeTimeService.List(identity, service.TeeTimeFilter{})

		assert.NoError(t, err)
		assert.Equal(t, 3, response.Total)
		assert.Equal(t, "06:30", response.TeeTimes[0].Time)
		assert.Equal(t, "07:00", response.TeeTimes[1].Time)
		assert.Equal(t, "2026-09-12", response.TeeTimes[2].Date)
	})

	suite.T().Run("No accessible playgroups yields empty list", func(t *testing.T) {
		suite.mockPlaygroupSvc.EXPECT().AccessiblePlaygroups(identity).Return(nil, nil).Times(1)

		response, err := suite.teeTimeService.List(identity, service.TeeTimeFilter{})

		assert.NoError(t, err)
		assert.Equal(t, 0, response.Total)
		assert.NotNil(t, response.TeeTimes)
	})

	suite.T().Run("One failed query fails the whole listing", func(t *testing.T) {
		playgroups := []models.PlaygroupRecord{
			infoRecord("pg-1", "Saturday Regulars", "user-1"),
			infoRecord("pg-2", "Twilight Nine", "user-2"),
		}
		suite.mockPlaygroupSvc.EXPECT().AccessiblePlaygroups(identity).Return(playgroups, nil).Times(1)
		suite.mockRepo.EXPECT().ListInfoByPlaygroup("pg-1", nil).Return([]models.TeeTimeRecord{
			teeTimeRecord("pg-1", "2026-09-05", "07:00"),
		}, nil).MaxTimes(1)
		suite.mockRepo.EXPECT().ListInfoByPlaygroup("pg-2", nil).Return(nil, fmt.Errorf("timeout")).Times(1)

		response, err := suite.teeTimeService.List(identity, service.TeeTimeFilter{})

		assert.Error(t, err)
		assert.Nil(t, response)
		assert.Contains(t, err.Error(), "failed to list tee times")
	})
}

// TestCreateTeeTime tests scheduling and its permission checks
func (suite *TeeTimeServiceTestSuite) TestCreateTeeTime() {
	leader := identityWithRoles("user-leader", "leader@test.com", "Golfers")
	admin := identityWithRoles("admin-user", "admin@test.com", "Admin")

	validRequest := func() *service.CreateTeeTimeRequest {
		return &service.CreateTeeTimeRequest{
			PlaygroupID: "pg-1",
			CourseID:    "course-1",
			Date:        "2026-09-05",
			Time:        "07:30",
		}
	}

	suite.T().Run("Leader schedules for own playgroup", func(t *testing.T) {
		info := infoRecord("pg-1", "Saturday Regulars", "user-leader")
		suite.mockPlaygroupRepo.EXPECT().GetInfo("pg-1").Return(&info, nil).Times(1)
		suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

		teeTime, err := suite.teeTimeService.Create(leader, validRequest())

		assert.NoError(t, err)
		assert.Equal(t, "pg-1", teeTime.PlaygroupID)
		assert.Equal(t, "user-leader", teeTime.CreatedBy)
		assert.Equal(t, models.DefaultMaxPlayers, teeTime.MaxPlayers)
		assert.Equal(t, models.TeeTimeStatusScheduled, teeTime.Status)
	})

	suite.T().Run("Admin schedules without leading", func(t *testing.T) {
		suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

		teeTime, err := suite.teeTimeService.Create(admin, validRequest())

		assert.NoError(t, err)
		assert.Equal(t, "admin-user", teeTime.CreatedBy)
	})

	suite.T().Run("Non-leader is denied", func(t *testing.T) {
		info := infoRecord("pg-1", "Saturday Regulars", "someone-else")
		suite.mockPlaygroupRepo.EXPECT().GetInfo("pg-1").Return(&info, nil).Times(1)

		teeTime, err := suite.teeTimeService.Create(leader, validRequest())

		assert.Nil(t, teeTime)
		assert.True(t, apperrors.IsAuthorization(err))
	})

	suite.T().Run("Missing playgroup is denied identically", func(t *testing.T) {
		suite.mockPlaygroupRepo.EXPECT().GetInfo("pg-1").Return(nil, apperrors.ErrPlaygroupNotFound).Times(1)

		teeTime, err := suite.teeTimeService.Create(leader, validRequest())

		assert.Nil(t, teeTime)
		assert.True(t, apperrors.IsAuthorization(err))
		assert.Equal(t, apperrors.ErrTeeTimePermissionDenied, err)
	})

	suite.T().Run("Missing required fields rejected before permission check", func(t *testing.T) {
		teeTime, err := suite.teeTimeService.Create(leader, &service.CreateTeeTimeRequest{PlaygroupID: "pg-1"})

		assert.Nil(t, teeTime)
		assert.True(t, apperrors.IsValidation(err))
		assert.Contains(t, err.Error(), "missing required fields")
	})

	suite.T().Run("Permission lookup failure is not a denial", func(t *testing.T) {
		suite.mockPlaygroupRepo.EXPECT().GetInfo("pg-1").Return(nil, fmt.Errorf("connection refused")).Times(1)

		teeTime, err := suite.teeTimeService.Create(leader, validRequest())

		assert.Nil(t, teeTime)
		assert.Error(t, err)
		assert.False(t, apperrors.IsAuthorization(err))
	})

	suite.T().Run("MaxPlayers coercion", func(t *testing.T) {
		testCases := []struct {
			name     string
			value    interface{}
			expected int
		}{
			{"Absent defaults to 4", nil, 4},
			{"JSON number", float64(6), 6},
			{"Numeric string", "8", 8},
			{"Non-numeric string defaults to 4", "whole club", 4},
			{"Zero defaults to 4", float64(0), 4},
			{"Negative defaults to 4", float64(-2), 4},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				suite.mockRepo.EXPECT().
					Create(gomock.Any()).
					DoAndReturn(func(info *models.TeeTimeRecord) error {
						assert.Equal(t, tc.expected, info.MaxPlayers)
						return nil
					}).
					Times(1)

				req := validRequest()
				req.MaxPlayers = tc.value
				_, err := suite.teeTimeService.Create(admin, req)
				assert.NoError(t, err)
			})
		}
	})
}

// TestTeeTimeServiceTestSuite runs the test suite
func TestTeeTimeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeeTimeServiceTestSuite))
}
