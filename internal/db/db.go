package db

import (
	"fmt"
	"net/url"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/onehealth/portal/internal/logger"
	"github.com/onehealth/portal/internal/models"
)

// MemoryDSN keeps every table in process memory. Nothing outlives the process.
const MemoryDSN = "file:portal?mode=memory&cache=shared&_foreign_keys=on"

var conn *gorm.DB

// NamedMemoryDSN returns a memory DSN isolated under name, so tests do not
// share tables.
func NamedMemoryDSN(name string) string {
	return "file:" + url.PathEscape(name) + "?mode=memory&cache=shared&_foreign_keys=on"
}

func Init(dsn string) error {
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}

	// One connection: a memory database lives only as long as a connection
	// holds it, and SQLite wants a single writer anyway.
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := gdb.AutoMigrate(
		&models.Session{},
		&models.RegistrationDraft{},
		&models.GoldEntry{},
	); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	// Dashboard listing is always "entries of one session, newest first".
	if err := gdb.Exec("CREATE INDEX IF NOT EXISTS idx_entries_session_newest ON gold_entries(session_id, id DESC)").Error; err != nil {
		return fmt.Errorf("create index: %w", err)
	}

	conn = gdb
	logger.L().Info("database ready", zap.String("driver", "sqlite"))
	return nil
}

func Conn() *gorm.DB {
	return conn
}
