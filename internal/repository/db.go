package repository

import (
	"fmt"
	stdlog "log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ahorro-bot/internal/model"
)

// NewDB opens a SQLite database and runs migrations.
func NewDB(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		dsn = "telegram_bot.db"
	}

	if err := ensureDirForSQLite(dsn); err != nil {
		return nil, err
	}

	dbLogger := logger.New(
		stdlog.New(os.Stdout, "", stdlog.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: dbLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := db.AutoMigrate(&model.Account{}, &model.User{}); err != nil {
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	return db, nil
}

// SeedAccounts creates the two fixed savings accounts when they are missing.
// Existing rows, and in particular their balances, are left untouched.
func SeedAccounts(db *gorm.DB) error {
	defaults := []model.Account{
		{ID: 1, Name: "Cuenta Pesos", Currency: "ARS", Balance: 0},
		{ID: 2, Name: "Cuenta Dolares", Currency: "USD", Balance: 0},
	}
	for _, account := range defaults {
		var existing model.Account
		err := db.First(&existing, account.ID).Error
		switch {
		case err == nil:
			continue
		case err == gorm.ErrRecordNotFound:
			if err := db.Create(&account).Error; err != nil {
				return fmt.Errorf("seed account %d: %w", account.ID, err)
			}
		default:
			return fmt.Errorf("check account %d: %w", account.ID, err)
		}
	}
	return nil
}

// ensureDirForSQLite creates parent dir for SQLite file if needed.
func ensureDirForSQLite(dsn string) error {
	// Ignore DSNs with explicit mode=memory or network.
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return nil
	}
	// Strip file: prefix if present.
	clean := strings.TrimPrefix(dsn, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db dir %q: %w", dir, err)
	}
	return nil
}
