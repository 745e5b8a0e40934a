// Package testutil provides shared helpers for tests: an opened in-memory
// database, a throwaway key-value store, and sample entity builders whose
// zero fields are randomized.
package testutil

import (
	"context"
	"os"
	"reflect"
	"time"

	"github.com/google/uuid"

	"github.com/airdroplab/backend/config"
	"github.com/airdroplab/backend/internal/database"
	"github.com/airdroplab/backend/internal/entity"
	"github.com/airdroplab/backend/internal/kv"
	"github.com/airdroplab/backend/pkg/logger"
)

func NewLogger() logger.Logger {
	return logger.NewLogger(logger.SILENCE)
}

// NewDatabase returns a ready in-memory database.
func NewDatabase(ctx context.Context) *database.Database {
	db := database.New(config.DatabaseConfigs{
		Path:      ":memory:",
		ExportDir: os.TempDir(),
	}, NewLogger())

	if err := db.Open(ctx); err != nil {
		panic(err)
	}

	return db
}

// NewClosedDatabase returns a database that was never opened, for exercising
// not-ready behavior.
func NewClosedDatabase() *database.Database {
	return database.New(config.DatabaseConfigs{Path: ":memory:"}, NewLogger())
}

func NewKVStore(dir string) *kv.Store {
	store, err := kv.NewStore(dir, NewLogger())
	if err != nil {
		panic(err)
	}

	return store
}

// SampleAirdrop returns an airdrop with randomized identity fields. Non-zero
// fields of init overwrite the sample.
func SampleAirdrop(init *entity.Airdrop) entity.Airdrop {
	now := time.Now()
	sample := entity.Airdrop{
		ID:              uuid.NewString(),
		Title:           uuid.NewString(),
		Description:     "sample airdrop",
		Logo:            "🎁",
		Reward:          "100 TOKENS",
		TotalReward:     "1,000,000 TOKENS",
		Participants:    10,
		MaxParticipants: 100,
		StartDate:       now.Add(-24 * time.Hour),
		EndDate:         now.Add(24 * time.Hour),
		Status:          entity.AirdropActive,
		Category:        "DeFi",
		Blockchain:      "Ethereum",
		Tasks:           entity.Array[entity.Task]{},
		Requirements:    entity.Array[string]{},
		CreatedAt:       now,
	}

	if init != nil {
		overwriteFields(&sample, *init)
	}

	return sample
}

// SampleUser returns a user with a randomized id. Non-zero fields of init
// overwrite the sample.
func SampleUser(init *entity.User) entity.User {
	now := time.Now()
	sample := entity.User{
		ID:             uuid.NewString(),
		CompletedTasks: entity.StringArrayMap{},
		Balance:        "0",
		JoinedAt:       now,
		LastActive:     now,
	}

	if init != nil {
		overwriteFields(&sample, *init)
	}

	return sample
}

// SampleWithdrawal returns a pending withdrawal with a randomized id.
// Non-zero fields of init overwrite the sample.
func SampleWithdrawal(init *entity.Withdrawal) entity.Withdrawal {
	sample := entity.Withdrawal{
		ID:         uuid.NewString(),
		UserID:     uuid.NewString(),
		Username:   "User #sample",
		Amount:     100,
		USDCAmount: 1,
		Timestamp:  time.Now(),
		Status:     entity.WithdrawalPending,
	}

	if init != nil {
		overwriteFields(&sample, *init)
	}

	return sample
}

func overwriteFields[T any](origin *T, overwrite T) {
	originValue := reflect.ValueOf(origin).Elem()
	overwriteValue := reflect.ValueOf(overwrite)

	for i := 0; i < overwriteValue.NumField(); i++ {
		overwriteField := overwriteValue.Field(i)
		if !overwriteField.IsZero() {
			originValue.Field(i).Set(overwriteField)
		}
	}
}
