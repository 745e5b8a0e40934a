// Package domain holds the application's single state orchestrator. Every
// mutation of airdrops, users, and withdrawals goes through the App service,
// which owns the canonical in-memory collections and writes them through to
// the key-value mirror immediately and to the relational store once it is
// ready.
package domain

import (
	"context"
	"sync"
	"time"

	"github.com/airdroplab/backend/config"
	"github.com/airdroplab/backend/internal/database"
	"github.com/airdroplab/backend/internal/entity"
	"github.com/airdroplab/backend/internal/fixture"
	"github.com/airdroplab/backend/internal/kv"
	"github.com/airdroplab/backend/internal/repository"
	"github.com/airdroplab/backend/internal/wallet"
	"github.com/airdroplab/backend/pkg/logger"
)

type App struct {
	cfg    config.Configs
	logger logger.Logger

	store  *kv.Store
	db     *database.Database
	wallet *wallet.Adapter

	airdropRepo    repository.AirdropRepository
	userRepo       repository.UserRepository
	withdrawalRepo repository.WithdrawalRepository
	settingRepo    repository.SettingRepository

	// mu guards the canonical in-memory collections. Every mutation derives
	// the next state from the state read under the same lock, never from a
	// copy captured earlier.
	mu             sync.Mutex
	airdrops       []entity.Airdrop
	user           entity.User
	connectedUsers []entity.User
}

func NewApp(
	cfg config.Configs,
	logger logger.Logger,
	store *kv.Store,
	db *database.Database,
	walletAdapter *wallet.Adapter,
	airdropRepo repository.AirdropRepository,
	userRepo repository.UserRepository,
	withdrawalRepo repository.WithdrawalRepository,
	settingRepo repository.SettingRepository,
) *App {
	return &App{
		cfg:            cfg,
		logger:         logger,
		store:          store,
		db:             db,
		wallet:         walletAdapter,
		airdropRepo:    airdropRepo,
		userRepo:       userRepo,
		withdrawalRepo: withdrawalRepo,
		settingRepo:    settingRepo,
	}
}

// Bootstrap loads state from the key-value mirror (falling back to the seed
// catalog) and subscribes to wallet changes. Call it once before serving; it
// does not require the relational store to be ready.
func (a *App) Bootstrap(ctx context.Context) {
	a.mu.Lock()
	a.airdrops = kv.Get(a.store, kv.KeyAirdrops, fixture.Airdrops())
	a.connectedUsers = kv.Get(a.store, kv.KeyConnectedUsers, []entity.User{})
	a.user = kv.Get(a.store, kv.KeyUser, newInitialUser(""))
	a.mu.Unlock()

	if a.wallet != nil {
		a.wallet.OnChange(func(state wallet.State) {
			a.handleWalletChange(ctx, state)
		})
	}
}

// SyncWithStore merges the relational store into memory once it is ready.
// Loaded store contents win when non-empty; otherwise the current in-memory
// catalog (the fixtures on first start) seeds the store.
func (a *App) SyncWithStore(ctx context.Context) {
	if !a.db.Ready() {
		return
	}

	dbAirdrops, err := a.airdropRepo.GetAll(ctx)
	if err != nil {
		a.logger.Errorf("Cannot load airdrops from store: %v", err)
		return
	}

	dbUsers, err := a.userRepo.GetAll(ctx)
	if err != nil {
		a.logger.Errorf("Cannot load users from store: %v", err)
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if len(dbAirdrops) > 0 {
		a.airdrops = dbAirdrops
		kv.Set(a.store, kv.KeyAirdrops, a.airdrops)
	} else {
		for i := range a.airdrops {
			if err := a.airdropRepo.Save(ctx, &a.airdrops[i]); err != nil {
				a.logger.Errorf("Cannot seed airdrop %s: %v", a.airdrops[i].ID, err)
			}
		}
	}

	if len(dbUsers) > 0 {
		a.connectedUsers = dbUsers
		kv.Set(a.store, kv.KeyConnectedUsers, a.connectedUsers)
	}
}

func newInitialUser(walletAddress string) entity.User {
	id := walletAddress
	if id == "" {
		id = entity.GuestUserID
	}

	now := time.Now()
	return entity.User{
		ID:             id,
		WalletAddress:  walletAddress,
		CompletedTasks: entity.StringArrayMap{},
		IsConnected:    walletAddress != "",
		Balance:        "0",
		Wallet:         walletAddress,
		JoinedAt:       now,
		LastActive:     now,
	}
}

func cloneUser(u entity.User) entity.User {
	tasks := make(entity.StringArrayMap, len(u.CompletedTasks))
	for airdropID, taskIDs := range u.CompletedTasks {
		tasks[airdropID] = append([]string(nil), taskIDs...)
	}

	u.CompletedTasks = tasks
	return u
}
