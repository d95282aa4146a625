package database

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/orris-inc/footprint/internal/shared/config"
	apperrors "github.com/orris-inc/footprint/internal/shared/errors"
	appLogger "github.com/orris-inc/footprint/internal/shared/logger"
)

var (
	db   *gorm.DB
	dbMu sync.RWMutex
)

// Init opens the shared store and makes it available through Get. Every
// failure is a StoreUnavailable error.
func Init(cfg *config.StoreConfig) error {
	database, err := Open(cfg)
	if err != nil {
		return err
	}

	dbMu.Lock()
	db = database
	dbMu.Unlock()

	appLogger.Info("database connection established", "path", cfg.Path())
	return nil
}

// Open creates the data directory if needed and opens the SQLite file at
// cfg.Path(). Use ":memory:" as FileName with an empty DataDir for tests.
func Open(cfg *config.StoreConfig) (*gorm.DB, error) {
	path := cfg.FileName
	if cfg.DataDir != "" {
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return nil, apperrors.NewStoreUnavailableError("cannot create data directory", err, cfg.DataDir)
		}
		path = cfg.Path()
	}

	gormLogger := logger.New(
		&filteredLogger{},
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	database, err := gorm.Open(sqlite.Open(dsn(path, cfg.BusyTimeoutMillis)), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, apperrors.NewStoreUnavailableError("cannot open store", err, path)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, apperrors.NewStoreUnavailableError("cannot access underlying sql.DB", err, path)
	}

	// One writer per process; SQLite serializes writes anyway.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, apperrors.NewStoreUnavailableError("cannot reach store", err, path)
	}

	return database, nil
}

// dsn carries the pragmas as go-sqlite3 connection parameters, so they are
// applied when the driver opens the connection instead of through a
// statement on the shared pool.
func dsn(path string, busyTimeoutMillis int) string {
	return fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=%d&_synchronous=NORMAL", path, busyTimeoutMillis)
}

// Get returns the database connection
func Get() *gorm.DB {
	dbMu.RLock()
	defer dbMu.RUnlock()
	return db
}

// Close closes the database connection
func Close() error {
	dbMu.Lock()
	currentDB := db
	db = nil
	dbMu.Unlock()

	if currentDB == nil {
		return nil
	}

	sqlDB, err := currentDB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	appLogger.Info("database connection closed")
	return nil
}

// filteredLogger routes gorm's log lines into the application logger
type filteredLogger struct{}

func (l *filteredLogger) Printf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)

	switch {
	case strings.Contains(msg, "[error]") || strings.Contains(msg, "ERROR"):
		appLogger.Error("database error", "details", msg)
	case strings.Contains(msg, "slow sql") || strings.Contains(msg, "SLOW SQL"):
		appLogger.Warn("slow query", "details", msg)
	default:
		appLogger.Debug("database query", "details", msg)
	}
}
