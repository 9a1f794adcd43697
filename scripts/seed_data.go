package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/sbaumgartner/MBGolfers2/internal/config"
	"github.com/sbaumgartner/MBGolfers2/internal/database"
	"github.com/sbaumgartner/MBGolfers2/internal/database/models"
	"github.com/sbaumgartner/MBGolfers2/internal/repository"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the YAML seed files
type MemberSeed struct {
	UserID string `yaml:"user_id"`
	Email  string `yaml:"email"`
}

type PlaygroupSeed struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description,omitempty"`
	Leader      MemberSeed   `yaml:"leader"`
	Members     []MemberSeed `yaml:"members,omitempty"`
}

type TeeTimeSeed struct {
	Playgroup   string `yaml:"playgroup"`
	CourseID    string `yaml:"course_id"`
	Date        string `yaml:"date"`
	Time        string `yaml:"time"`
	Description string `yaml:"description,omitempty"`
	MaxPlayers  int    `yaml:"max_players,omitempty"`
}

type PlaygroupsFile struct {
	Playgroups []PlaygroupSeed `yaml:"playgroups"`
}

type TeeTimesFile struct {
	TeeTimes []TeeTimeSeed `yaml:"tee_times"`
}

func main() {
	log.Println("Loading seed data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}

	log.Println("Seed data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	playgroups, err := loadPlaygroups(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load playgroups: %w", err)
	}

	teeTimes, err := loadTeeTimes(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load tee times: %w", err)
	}

	playgroupRepo := repository.NewPlaygroupRepository(db)
	teeTimeRepo := repository.NewTeeTimeRepository(db)

	// Create playgroups through the repository so the INFO row and the
	// leader's membership row land together.
	idByName := make(map[string]string)
	pgCreated := 0
	for _, seed := range playgroups {
		id, created, err := createPlaygroup(db, playgroupRepo, seed)
		if err != nil {
			return fmt.Errorf("failed to create playgroup %s: %w", seed.Name, err)
		}
		idByName[seed.Name] = id
		if created {
			pgCreated++
		}
	}
	log.Printf("Playgroups: %d created, %d total", pgCreated, len(playgroups))

	ttCreated := 0
	for _, seed := range teeTimes {
		playgroupID, ok := idByName[seed.Playgroup]
		if !ok {
			return fmt.Errorf("tee time references unknown playgroup %q", seed.Playgroup)
		}
		created, err := createTeeTime(db, teeTimeRepo, playgroupID, seed)
		if err != nil {
			return fmt.Errorf("failed to create tee time for %s: %w", seed.Playgroup, err)
		}
		if created {
			ttCreated++
		}
	}
	log.Printf("Tee times: %d created, %d total", ttCreated, len(teeTimes))

	return nil
}

func loadPlaygroups(dataDir string) ([]PlaygroupSeed, error) {
	data, err := os.ReadFile(filepath.Join(dataDir, "playgroups.yaml"))
	if err != nil {
		return nil, err
	}
	var file PlaygroupsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	return file.Playgroups, nil
}

func loadTeeTimes(dataDir string) ([]TeeTimeSeed, error) {
	data, err := os.ReadFile(filepath.Join(dataDir, "tee_times.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var file TeeTimesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	return file.TeeTimes, nil
}

func createPlaygroup(db *gorm.DB, repo *repository.PlaygroupRepository, seed PlaygroupSeed) (string, bool, error) {
	// Idempotent by name: reuse an existing playgroup with the same name.
	var existing models.PlaygroupRecord
	err := db.Where("record_type = ? AND name = ?", models.RecordTypeInfo, seed.Name).
		First(&existing).Error
	if err == nil {
		return existing.PlaygroupID, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return "", false, err
	}

	now := time.Now()
	playgroupID := models.NewPlaygroupID()
	info := models.NewPlaygroupInfo(playgroupID, seed.Name, seed.Description, seed.Leader.UserID, seed.Leader.Email, now)
	membership := models.NewPlaygroupMembership(playgroupID, seed.Leader.UserID, seed.Leader.Email, models.MembershipRoleLeader, now)
	if err := repo.CreateWithLeader(info, membership); err != nil {
		return "", false, err
	}

	for _, member := range seed.Members {
		row := models.NewPlaygroupMembership(playgroupID, member.UserID, member.Email, models.MembershipRoleMember, now)
		if err := db.Create(row).Error; err != nil {
			return "", false, err
		}
	}
	if len(seed.Members) > 0 {
		err := db.Model(&models.PlaygroupRecord{}).
			Where("playgroup_id = ? AND record_type = ?", playgroupID, models.RecordTypeInfo).
			Update("member_count", 1+len(seed.Members)).Error
		if err != nil {
			return "", false, err
		}
	}

	return playgroupID, true, nil
}

func createTeeTime(db *gorm.DB, repo *repository.TeeTimeRepository, playgroupID string, seed TeeTimeSeed) (bool, error) {
	var existing models.TeeTimeRecord
	err := db.Where("playgroup_id = ? AND date = ? AND time = ? AND record_type = ?",
		playgroupID, seed.Date, seed.Time, models.RecordTypeInfo).
		First(&existing).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	info := models.NewTeeTimeInfo(
		models.NewTeeTimeID(),
		playgroupID,
		seed.CourseID,
		seed.Date,
		seed.Time,
		seed.Description,
		"seed",
		seed.MaxPlayers,
		time.Now(),
	)
	if err := repo.Create(info); err != nil {
		return false, err
	}
	return true, nil
}
