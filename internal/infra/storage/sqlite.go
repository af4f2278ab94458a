package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"futures_go/internal/domain"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Journal is the append-only order event store. Rows are inserted and
// never updated; history queries read newest first.
type Journal struct {
	db *gorm.DB
}

// NewJournal opens (or creates) the SQLite journal in the user config dir.
func NewJournal() (*Journal, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve DB path: %w", err)
	}

	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create DB directory: %w", err)
	}

	return openJournal(dbPath)
}

func openJournal(dbPath string) (*Journal, error) {
	// Pure Go SQLite driver, no cgo
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&domain.OrderEvent{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Journal{db: db}, nil
}

// getDBPath resolves the database file path based on OS
func getDBPath() (string, error) {
	var configDir string
	var err error

	if runtime.GOOS == "windows" {
		configDir = os.Getenv("LOCALAPPDATA")
		if configDir == "" {
			configDir, err = os.UserConfigDir()
		}
	} else {
		configDir, err = os.UserConfigDir()
	}

	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, "FuturesGo", "data", "orders.db"), nil
}

// AppendEvent inserts one journal row. Insert-only: existing rows are
// never touched.
func (j *Journal) AppendEvent(ev *domain.OrderEvent) error {
	return j.db.Create(ev).Error
}

// RecentEvents returns up to limit rows, newest first.
func (j *Journal) RecentEvents(limit int) ([]domain.OrderEvent, error) {
	var events []domain.OrderEvent
	err := j.db.Order("id DESC").Limit(limit).Find(&events).Error
	return events, err
}

// EventsForSymbol returns the journal rows for one trading pair, newest first.
func (j *Journal) EventsForSymbol(symbol string, limit int) ([]domain.OrderEvent, error) {
	var events []domain.OrderEvent
	err := j.db.Where("symbol = ?", symbol).Order("id DESC").Limit(limit).Find(&events).Error
	return events, err
}
