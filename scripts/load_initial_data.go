package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"scouting-planner-backend/internal/auth"
	"scouting-planner-backend/internal/config"
	"scouting-planner-backend/internal/database"
	"scouting-planner-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type AdminData struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type ScoutGroupData struct {
	Name             string `yaml:"name"`
	Region           string `yaml:"region,omitempty"`
	Localidad        string `yaml:"localidad,omitempty"`
	District         string `yaml:"district,omitempty"`
	Numeral          string `yaml:"numeral,omitempty"`
	Address          string `yaml:"address,omitempty"`
	OfficeHours      string `yaml:"office_hours,omitempty"`
	GroupLeaderName  string `yaml:"group_leader_name,omitempty"`
	GroupLeaderEmail string `yaml:"group_leader_email,omitempty"`
	GroupLeaderPhone string `yaml:"group_leader_phone,omitempty"`
}

// File structures
type AdminsFile struct {
	Admins []AdminData `yaml:"admins"`
}

type ScoutGroupsFile struct {
	ScoutGroups []ScoutGroupData `yaml:"scout_groups"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	admins, err := loadAdmins(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load admins: %w", err)
	}

	groups, err := loadScoutGroups(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load scout groups: %w", err)
	}

	// Create admin users first
	adminCreated := 0
	for _, adminData := range admins {
		created, err := createAdmin(db, adminData)
		if err != nil {
			return fmt.Errorf("failed to create admin %s: %w", adminData.Email, err)
		}
		if created {
			adminCreated++
		}
	}
	log.Printf("Admins: %d created, %d total", adminCreated, len(admins))

	// Create scout groups
	groupCreated := 0
	for _, groupData := range groups {
		created, err := createScoutGroup(db, groupData)
		if err != nil {
			return fmt.Errorf("failed to create scout group %s: %w", groupData.Name, err)
		}
		if created {
			groupCreated++
		}
	}
	log.Printf("Scout groups: %d created, %d total", groupCreated, len(groups))

	return nil
}

func loadAdmins(dataDir string) ([]AdminData, error) {
	path := filepath.Join(dataDir, "admins.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var file AdminsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return file.Admins, nil
}

func loadScoutGroups(dataDir string) ([]ScoutGroupData, error) {
	path := filepath.Join(dataDir, "scout_groups.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var file ScoutGroupsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return file.ScoutGroups, nil
}

func createAdmin(db *gorm.DB, adminData AdminData) (bool, error) {
	var user models.User
	if err := db.Where("email = ?", adminData.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			hashed, err := auth.HashPassword(adminData.Password)
			if err != nil {
				return false, fmt.Errorf("failed to hash password: %w", err)
			}

			user = models.User{
				Email:          adminData.Email,
				HashedPassword: hashed,
				Role:           models.RoleAdministrador,
			}

			if err := db.Create(&user).Error; err != nil {
				return false, fmt.Errorf("failed to create admin user: %w", err)
			}
			return true, nil // created = true
		}
		return false, fmt.Errorf("failed to query admin user: %w", err)
	}

	return false, nil // created = false (existing)
}

func createScoutGroup(db *gorm.DB, groupData ScoutGroupData) (bool, error) {
	var group models.ScoutGroup
	if err := db.Where("name = ?", groupData.Name).First(&group).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			group = models.ScoutGroup{
				Name:             groupData.Name,
				Region:           groupData.Region,
				Localidad:        groupData.Localidad,
				District:         groupData.District,
				Numeral:          groupData.Numeral,
				Address:          groupData.Address,
				OfficeHours:      groupData.OfficeHours,
				GroupLeaderName:  groupData.GroupLeaderName,
				GroupLeaderEmail: groupData.GroupLeaderEmail,
				GroupLeaderPhone: groupData.GroupLeaderPhone,
			}

			if err := db.Create(&group).Error; err != nil {
				return false, fmt.Errorf("failed to create scout group: %w", err)
			}
			return true, nil // created = true
		}
		return false, fmt.Errorf("failed to query scout group: %w", err)
	}

	return false, nil // created = false (existing)
}
