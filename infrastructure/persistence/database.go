package persistence

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"pc2-api/domain/models"
)

type DatabaseConfig struct {
	Driver     string // postgres | sqlite
	Host       string
	Port       string
	User       string
	Password   string
	DBName     string
	SSLMode    string
	SQLitePath string
	LogLevel   string // silent | error | warn | info
}

func NewDatabase(config DatabaseConfig) (*gorm.DB, error) {
	dialector, err := newDialector(config)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(parseGormLogLevel(config.LogLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if config.Driver == "sqlite" {
		// sqlite ไม่บังคับ foreign key ถ้าไม่เปิด pragma
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("failed to enable sqlite foreign keys: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

func newDialector(config DatabaseConfig) (gorm.Dialector, error) {
	switch strings.ToLower(config.Driver) {
	case "", "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			config.Host, config.User, config.Password, config.DBName, config.Port, config.SSLMode)
		return postgres.Open(dsn), nil
	case "sqlite":
		path := config.SQLitePath
		if path == "" {
			path = "pc2.db"
		}
		return sqlite.Open(path), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", config.Driver)
	}
}

func parseGormLogLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}

// Migrate สร้าง/อัปเดต schema ของทุก app
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// tareas
		&models.TaskList{},
		&models.Tag{},
		&models.Task{},
		&models.TaskTag{},
		// galeria
		&models.GalleryCategory{},
		&models.Photographer{},
		&models.Image{},
		&models.ImageTag{},
		&models.ImageTagLink{},
		// multimedia
		&models.FileType{},
		&models.Collection{},
		&models.MediaFile{},
		&models.MediaComment{},
		// proyectos
		&models.Client{},
		&models.ProjectCategory{},
		&models.Project{},
		&models.ProjectTask{},
		&models.ProjectComment{},
	)
}
