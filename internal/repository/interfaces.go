package repository

import (
	"github.com/sbaumgartner/MBGolfers2/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// PlaygroupRepositoryInterface defines the interface for playgroup repository operations
type PlaygroupRepositoryInterface interface {
	ListAllInfo() ([]models.PlaygroupRecord, error)
	ListInfoByLeader(userID string) ([]models.PlaygroupRecord, error)
	ListInfoByMember(userID string) ([]models.PlaygroupRecord, error)
	GetInfo(playgroupID string) (*models.PlaygroupRecord, error)
	GetMembership(playgroupID, userID string) (*models.PlaygroupRecord, error)
	CreateWithLeader(info, membership *models.PlaygroupRecord) error
}

// TeeTimeRepositoryInterface defines the interface for tee time repository operations
type TeeTimeRepositoryInterface interface {
	ListInfoByPlaygroup(playgroupID string, date *string) ([]models.TeeTimeRecord, error)
	GetInfo(teeTimeID string) (*models.TeeTimeRecord, error)
	Create(info *models.TeeTimeRecord) error
}
