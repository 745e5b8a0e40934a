package repository

import (
	"context"

	"gorm.io/gorm/clause"

	"github.com/airdroplab/backend/internal/database"
	"github.com/airdroplab/backend/internal/entity"
)

type SettingRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

type settingRepository struct {
	store *database.Database
}

func NewSettingRepository(store *database.Database) SettingRepository {
	return &settingRepository{store: store}
}

func (r *settingRepository) Get(ctx context.Context, key string) (string, error) {
	db, err := r.store.DB(ctx)
	if err != nil {
		return "", err
	}

	var record entity.Setting
	if err := db.Where("key = ?", key).Take(&record).Error; err != nil {
		return "", err
	}

	return record.Value, nil
}

func (r *settingRepository) Set(ctx context.Context, key, value string) error {
	db, err := r.store.DB(ctx)
	if err != nil {
		return err
	}

	return db.Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&entity.Setting{Key: key, Value: value}).Error
}
