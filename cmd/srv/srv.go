package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"github.com/airdroplab/backend/api"
	"github.com/airdroplab/backend/config"
	"github.com/airdroplab/backend/internal/database"
	"github.com/airdroplab/backend/internal/domain"
	"github.com/airdroplab/backend/internal/kv"
	"github.com/airdroplab/backend/internal/repository"
	"github.com/airdroplab/backend/internal/wallet"
	"github.com/airdroplab/backend/pkg/logger"
)

type srv struct {
	configs config.Configs
	logger  logger.Logger

	store         *kv.Store
	db            *database.Database
	walletAdapter *wallet.Adapter

	airdropRepo    repository.AirdropRepository
	userRepo       repository.UserRepository
	withdrawalRepo repository.WithdrawalRepository
	settingRepo    repository.SettingRepository

	app    *domain.App
	worker *domain.SettlementWorker

	router *api.Router
	server *http.Server
}

func (s *srv) run(ctx context.Context, configPath string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := s.loadConfig(configPath); err != nil {
		return err
	}

	if err := s.loadStores(ctx); err != nil {
		return err
	}

	s.loadWallet(ctx)
	s.loadRepos()
	s.loadDomains(ctx)
	s.loadEndpoints()

	return s.startServer(ctx, cancel)
}

func (s *srv) loadConfig(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	s.configs = cfg
	s.logger = logger.NewLogger(cfg.LogLevel)
	return nil
}

// loadStores opens the key-value mirror synchronously and the relational
// store in the background. The service starts serving from the mirror while
// the database initializes; domain operations catch up via SyncWithStore.
func (s *srv) loadStores(ctx context.Context) error {
	store, err := kv.NewStore(s.configs.KVStore.Dir, s.logger)
	if err != nil {
		return err
	}

	s.store = store
	s.db = database.New(s.configs.Database, s.logger)
	return nil
}

func (s *srv) loadWallet(ctx context.Context) {
	var provider wallet.Provider
	if s.configs.Wallet.RPC != "" {
		p, err := wallet.NewRPCProvider(ctx, s.configs.Wallet.RPC)
		if err != nil {
			s.logger.Warnf("Cannot connect wallet provider: %v", err)
		} else {
			provider = p
		}
	}

	s.walletAdapter = wallet.NewAdapter(provider, s.store, s.logger)
}

func (s *srv) loadRepos() {
	s.airdropRepo = repository.NewAirdropRepository(s.db)
	s.userRepo = repository.NewUserRepository(s.db)
	s.withdrawalRepo = repository.NewWithdrawalRepository(s.db)
	s.settingRepo = repository.NewSettingRepository(s.db)
}

func (s *srv) loadDomains(ctx context.Context) {
	s.app = domain.NewApp(
		s.configs,
		s.logger,
		s.store,
		s.db,
		s.walletAdapter,
		s.airdropRepo,
		s.userRepo,
		s.withdrawalRepo,
		s.settingRepo,
	)
	s.app.Bootstrap(ctx)

	s.worker = domain.NewSettlementWorker(
		s.configs.Withdraw, s.logger, s.db, s.withdrawalRepo, nil)
}

func (s *srv) startServer(ctx context.Context, cancel context.CancelFunc) error {
	// The relational store opens in the background; the service serves from
	// the key-value mirror until it catches up.
	go func() {
		if err := s.db.Open(ctx); err != nil {
			s.logger.Errorf("Cannot open database: %v", err)
			return
		}

		s.app.SyncWithStore(ctx)
	}()

	go s.worker.Run(ctx)
	go s.walletAdapter.Listen(ctx)

	handler := cors.New(cors.Options{
		AllowedOrigins:   s.configs.ApiServer.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowCredentials: true,
	}).Handler(s.router.Mux)

	s.server = &http.Server{
		Addr:    s.configs.ApiServer.Address(),
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("Server listening on %s", s.server.Addr)
		errCh <- s.server.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err

	case sig := <-sigCh:
		s.logger.Infof("Received %s, shutting down", sig)
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return s.server.Shutdown(shutdownCtx)
	}
}
