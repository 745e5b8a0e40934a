package repository

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm/clause"

	"github.com/airdroplab/backend/internal/database"
	"github.com/airdroplab/backend/internal/entity"
)

type UserRepository interface {
	Save(ctx context.Context, data *entity.User) error
	GetAll(ctx context.Context) ([]entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	DeleteByID(ctx context.Context, id string) error
}

type userRepository struct {
	store *database.Database
}

func NewUserRepository(store *database.Database) UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) Save(ctx context.Context, data *entity.User) error {
	db, err := r.store.DB(ctx)
	if err != nil {
		return err
	}

	return db.Clauses(clause.OnConflict{UpdateAll: true}).Create(data).Error
}

type userRow struct {
	ID             string
	WalletAddress  string
	Telegram       string
	Twitter        string
	Discord        string
	CompletedTasks string
	TotalPoints    int64
	IsConnected    bool
	Balance        string
	Wallet         string
	JoinedAt       time.Time
	LastActive     time.Time
}

func (r *userRepository) GetAll(ctx context.Context) ([]entity.User, error) {
	db, err := r.store.DB(ctx)
	if err != nil {
		return nil, err
	}

	var rows []userRow
	if err := db.Model(&entity.User{}).Find(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]entity.User, 0, len(rows))
	for _, row := range rows {
		user, err := row.toEntity()
		if err != nil {
			r.store.Logger().Warnf("Skipping corrupt user row %s: %v", row.ID, err)
			continue
		}

		result = append(result, user)
	}

	return result, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	db, err := r.store.DB(ctx)
	if err != nil {
		return nil, err
	}

	var row userRow
	if err := db.Model(&entity.User{}).Where("id = ?", id).Take(&row).Error; err != nil {
		return nil, err
	}

	user, err := row.toEntity()
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) DeleteByID(ctx context.Context, id string) error {
	db, err := r.store.DB(ctx)
	if err != nil {
		return err
	}

	return db.Where("id = ?", id).Delete(&entity.User{}).Error
}

func (row userRow) toEntity() (entity.User, error) {
	user := entity.User{
		ID:             row.ID,
		WalletAddress:  row.WalletAddress,
		Telegram:       row.Telegram,
		Twitter:        row.Twitter,
		Discord:        row.Discord,
		CompletedTasks: entity.StringArrayMap{},
		TotalPoints:    row.TotalPoints,
		IsConnected:    row.IsConnected,
		Balance:        row.Balance,
		Wallet:         row.Wallet,
		JoinedAt:       row.JoinedAt,
		LastActive:     row.LastActive,
	}

	if row.CompletedTasks != "" {
		if err := json.Unmarshal([]byte(row.CompletedTasks), &user.CompletedTasks); err != nil {
			return entity.User{}, err
		}
	}

	return user, nil
}
