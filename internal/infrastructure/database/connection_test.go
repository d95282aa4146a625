package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/orris-inc/footprint/internal/shared/config"
	apperrors "github.com/orris-inc/footprint/internal/shared/errors"
)

func TestOpen_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", ".clip-log")
	cfg := &config.StoreConfig{DataDir: dir, FileName: "history.db", BusyTimeoutMillis: 1000}

	db, err := Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	var mode string
	require.NoError(t, db.Raw("PRAGMA journal_mode").Scan(&mode).Error)
	assert.Equal(t, "wal", mode)
}

func TestOpen_TransactionsCommitAfterPragmas(t *testing.T) {
	cfg := &config.StoreConfig{DataDir: t.TempDir(), FileName: "history.db", BusyTimeoutMillis: 2500}

	db, err := Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	var timeout int
	require.NoError(t, db.Raw("PRAGMA busy_timeout").Scan(&timeout).Error)
	assert.Equal(t, 2500, timeout)

	var synchronous int
	require.NoError(t, db.Raw("PRAGMA synchronous").Scan(&synchronous).Error)
	assert.Equal(t, 1, synchronous)

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("CREATE TABLE notes (id INTEGER PRIMARY KEY, body TEXT)").Error; err != nil {
			return err
		}
		return tx.Exec("INSERT INTO notes (body) VALUES (?)", "first").Error
	})
	require.NoError(t, err)

	require.NoError(t, db.Exec("INSERT INTO notes (body) VALUES (?)", "second").Error)

	var count int64
	require.NoError(t, db.Table("notes").Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestDSN(t *testing.T) {
	assert.Equal(t,
		"/tmp/x/history.db?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL",
		dsn("/tmp/x/history.db", 5000))
}

func TestOpen_DataDirIsAFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	_, err := Open(&config.StoreConfig{DataDir: file, FileName: "history.db"})

	require.Error(t, err)
	assert.True(t, apperrors.IsStoreUnavailable(err))
}

func TestInitGetClose(t *testing.T) {
	cfg := &config.StoreConfig{DataDir: t.TempDir(), FileName: "history.db"}

	require.NoError(t, Init(cfg))
	assert.NotNil(t, Get())

	require.NoError(t, Close())
	assert.Nil(t, Get())
	assert.NoError(t, Close())
}
