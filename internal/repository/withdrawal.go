package repository

import (
	"context"

	"gorm.io/gorm/clause"

	"github.com/airdroplab/backend/internal/database"
	"github.com/airdroplab/backend/internal/entity"
)

type WithdrawalFilter struct {
	// UserID restricts the result to one user when non-empty.
	UserID string
}

type WithdrawalRepository interface {
	Save(ctx context.Context, data *entity.Withdrawal) error
	GetList(ctx context.Context, filter WithdrawalFilter) ([]entity.Withdrawal, error)
	GetByID(ctx context.Context, id string) (*entity.Withdrawal, error)
	Update(ctx context.Context, id string, updates map[string]any) error
	DeleteByID(ctx context.Context, id string) error
}

type withdrawalRepository struct {
	store *database.Database
}

func NewWithdrawalRepository(store *database.Database) WithdrawalRepository {
	return &withdrawalRepository{store: store}
}

func (r *withdrawalRepository) Save(ctx context.Context, data *entity.Withdrawal) error {
	db, err := r.store.DB(ctx)
	if err != nil {
		return err
	}

	return db.Clauses(clause.OnConflict{UpdateAll: true}).Create(data).Error
}

func (r *withdrawalRepository) GetList(
	ctx context.Context, filter WithdrawalFilter,
) ([]entity.Withdrawal, error) {
	db, err := r.store.DB(ctx)
	if err != nil {
		return nil, err
	}

	tx := db.Order("timestamp DESC")
	if filter.UserID != "" {
		tx = tx.Where("user_id = ?", filter.UserID)
	}

	result := []entity.Withdrawal{}
	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *withdrawalRepository) GetByID(ctx context.Context, id string) (*entity.Withdrawal, error) {
	db, err := r.store.DB(ctx)
	if err != nil {
		return nil, err
	}

	var result entity.Withdrawal
	if err := db.Where("id = ?", id).Take(&result).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

// Update patches only the supplied columns.
func (r *withdrawalRepository) Update(ctx context.Context, id string, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}

	db, err := r.store.DB(ctx)
	if err != nil {
		return err
	}

	return db.Model(&entity.Withdrawal{}).Where("id = ?", id).Updates(updates).Error
}

func (r *withdrawalRepository) DeleteByID(ctx context.Context, id string) error {
	db, err := r.store.DB(ctx)
	if err != nil {
		return err
	}

	return db.Where("id = ?", id).Delete(&entity.Withdrawal{}).Error
}
