// Package database owns the embedded sqlite store and its initialization
// lifecycle: uninitialized -> initializing -> ready. Operations issued before
// the store is ready must be treated as no-ops by callers, who check Ready().
package database

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/airdroplab/backend/config"
	"github.com/airdroplab/backend/internal/entity"
	"github.com/airdroplab/backend/pkg/errorx"
	"github.com/airdroplab/backend/pkg/logger"
)

type Database struct {
	cfg    config.DatabaseConfigs
	logger logger.Logger

	openOnce sync.Once
	openErr  error
	ready    atomic.Bool
	db       *gorm.DB
}

func New(cfg config.DatabaseConfigs, logger logger.Logger) *Database {
	return &Database{cfg: cfg, logger: logger}
}

// Open initializes the store and runs the schema migration. It is safe to
// call from multiple goroutines and repeatedly; only the first call does the
// work, later calls return its result.
func (d *Database) Open(ctx context.Context) error {
	d.openOnce.Do(func() {
		db, err := gorm.Open(sqlite.Open(d.cfg.Path), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if err != nil {
			d.openErr = fmt.Errorf("cannot open sqlite database: %w", err)
			return
		}

		err = db.WithContext(ctx).AutoMigrate(
			&entity.Airdrop{},
			&entity.User{},
			&entity.Withdrawal{},
			&entity.Setting{},
		)
		if err != nil {
			d.openErr = fmt.Errorf("cannot migrate database: %w", err)
			return
		}

		d.db = db
		d.ready.Store(true)
		d.logger.Infof("Database ready at %s", d.cfg.Path)
	})

	return d.openErr
}

// Ready reports whether the store finished initializing.
func (d *Database) Ready() bool {
	return d.ready.Load()
}

// DB returns the underlying handle, or an Unavailable error while the store
// is not ready.
func (d *Database) DB(ctx context.Context) (*gorm.DB, error) {
	if !d.Ready() {
		return nil, errorx.New(errorx.Unavailable, "Database is not ready")
	}

	return d.db.WithContext(ctx), nil
}

func (d *Database) Logger() logger.Logger {
	return d.logger
}

// Export copies the database file into the export directory, named by the
// current date, and returns the destination path.
func (d *Database) Export(now time.Time) (string, error) {
	if !d.Ready() {
		return "", errorx.New(errorx.Unavailable, "Database is not ready")
	}

	src, err := os.Open(d.cfg.Path)
	if err != nil {
		return "", fmt.Errorf("cannot open database file: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("airdrop_database_%s.db", now.Format("2006-01-02"))
	path := filepath.Join(d.cfg.ExportDir, name)
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("cannot create export file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("cannot copy database file: %w", err)
	}

	return path, nil
}

// Clear truncates all tables.
func (d *Database) Clear(ctx context.Context) error {
	db, err := d.DB(ctx)
	if err != nil {
		return err
	}

	for _, model := range []any{
		&entity.Airdrop{}, &entity.User{}, &entity.Withdrawal{}, &entity.Setting{},
	} {
		if err := db.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}

	return nil
}
