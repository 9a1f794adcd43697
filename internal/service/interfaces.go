package service

import (
	"github.com/sbaumgartner/MBGolfers2/internal/auth"
	"github.com/sbaumgartner/MBGolfers2/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// PlaygroupServiceInterface defines the interface for playgroup service
type PlaygroupServiceInterface interface {
	List(identity auth.Identity) (*PlaygroupListResponse, error)
	Create(identity auth.Identity, req *CreatePlaygroupRequest) (*models.PlaygroupRecord, error)
	AccessiblePlaygroups(identity auth.Identity) ([]models.PlaygroupRecord, error)
}

// TeeTimeServiceInterface defines the interface for tee time service
type TeeTimeServiceInterface interface {
	List(identity auth.Identity, filter TeeTimeFilter) (*TeeTimeListResponse, error)
	Create(identity auth.Identity, req *CreateTeeTimeRequest) (*models.TeeTimeRecord, error)
}
