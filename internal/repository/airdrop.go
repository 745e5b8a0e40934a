package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/airdroplab/backend/internal/database"
	"github.com/airdroplab/backend/internal/entity"
)

type AirdropRepository interface {
	Save(ctx context.Context, data *entity.Airdrop) error
	GetAll(ctx context.Context) ([]entity.Airdrop, error)
	GetByID(ctx context.Context, id string) (*entity.Airdrop, error)
	DeleteByID(ctx context.Context, id string) error
}

type airdropRepository struct {
	store *database.Database
}

func NewAirdropRepository(store *database.Database) AirdropRepository {
	return &airdropRepository{store: store}
}

func (r *airdropRepository) Save(ctx context.Context, data *entity.Airdrop) error {
	db, err := r.store.DB(ctx)
	if err != nil {
		return err
	}

	if data.CreatedAt.IsZero() {
		data.CreatedAt = time.Now()
	}

	return db.Clauses(clause.OnConflict{UpdateAll: true}).Create(data).Error
}

// airdropRow keeps the JSON columns raw so a corrupt row can be skipped
// instead of failing the whole query.
type airdropRow struct {
	ID              string
	Title           string
	Description     string
	Logo            string
	Reward          string
	TotalReward     string
	Participants    int64
	MaxParticipants int64
	StartDate       time.Time
	EndDate         time.Time
	Status          string
	Category        string
	Blockchain      string
	Tasks           string
	Requirements    string
	CreatedAt       time.Time
}

func (r *airdropRepository) GetAll(ctx context.Context) ([]entity.Airdrop, error) {
	db, err := r.store.DB(ctx)
	if err != nil {
		return nil, err
	}

	var rows []airdropRow
	if err := db.Model(&entity.Airdrop{}).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]entity.Airdrop, 0, len(rows))
	for _, row := range rows {
		airdrop, err := row.toEntity()
		if err != nil {
			r.store.Logger().Warnf("Skipping corrupt airdrop row %s: %v", row.ID, err)
			continue
		}

		result = append(result, airdrop)
	}

	return result, nil
}

func (r *airdropRepository) GetByID(ctx context.Context, id string) (*entity.Airdrop, error) {
	db, err := r.store.DB(ctx)
	if err != nil {
		return nil, err
	}

	var row airdropRow
	if err := db.Model(&entity.Airdrop{}).Where("id = ?", id).Take(&row).Error; err != nil {
		return nil, err
	}

	airdrop, err := row.toEntity()
	if err != nil {
		return nil, err
	}

	return &airdrop, nil
}

func (r *airdropRepository) DeleteByID(ctx context.Context, id string) error {
	db, err := r.store.DB(ctx)
	if err != nil {
		return err
	}

	// Deleting an id that does not exist is a no-op, not an error.
	return db.Where("id = ?", id).Delete(&entity.Airdrop{}).Error
}

func (row airdropRow) toEntity() (entity.Airdrop, error) {
	airdrop := entity.Airdrop{
		ID:              row.ID,
		Title:           row.Title,
		Description:     row.Description,
		Logo:            row.Logo,
		Reward:          row.Reward,
		TotalReward:     row.TotalReward,
		Participants:    row.Participants,
		MaxParticipants: row.MaxParticipants,
		StartDate:       row.StartDate,
		EndDate:         row.EndDate,
		Status:          entity.AirdropStatus(row.Status),
		Category:        row.Category,
		Blockchain:      row.Blockchain,
		CreatedAt:       row.CreatedAt,
	}

	if row.Tasks != "" {
		if err := json.Unmarshal([]byte(row.Tasks), &airdrop.Tasks); err != nil {
			return entity.Airdrop{}, err
		}
	}

	if row.Requirements != "" {
		if err := json.Unmarshal([]byte(row.Requirements), &airdrop.Requirements); err != nil {
			return entity.Airdrop{}, err
		}
	}

	return airdrop, nil
}

// IsNotFound reports whether err means the requested row does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
