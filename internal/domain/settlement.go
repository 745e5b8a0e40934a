package domain

import (
	"context"
	"sync"
	"time"

	"github.com/airdroplab/backend/config"
	"github.com/airdroplab/backend/internal/database"
	"github.com/airdroplab/backend/internal/entity"
	"github.com/airdroplab/backend/internal/repository"
	"github.com/airdroplab/backend/pkg/crypto"
	"github.com/airdroplab/backend/pkg/logger"
)

// Clock abstracts time for the settlement worker so tests can drive virtual
// time instead of sleeping.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// SettlementWorker completes pending withdrawals. A withdrawal that has been
// pending for at least SettleAfter is picked up, held for a randomized extra
// delay, then flipped to completed with a fabricated transaction hash. There
// is no real on-chain transfer behind it.
type SettlementWorker struct {
	cfg    config.WithdrawConfigs
	logger logger.Logger
	db     *database.Database
	repo   repository.WithdrawalRepository
	clock  Clock

	mu         sync.Mutex
	processing map[string]bool
}

// NewSettlementWorker wires a worker; a nil clock means wall-clock time.
func NewSettlementWorker(
	cfg config.WithdrawConfigs,
	logger logger.Logger,
	db *database.Database,
	repo repository.WithdrawalRepository,
	clock Clock,
) *SettlementWorker {
	if clock == nil {
		clock = realClock{}
	}

	return &SettlementWorker{
		cfg:        cfg,
		logger:     logger,
		db:         db,
		repo:       repo,
		clock:      clock,
		processing: map[string]bool{},
	}
}

// Run polls for settleable withdrawals until ctx is done.
func (w *SettlementWorker) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case <-w.clock.After(w.cfg.PollInterval):
			w.SettleOnce(ctx)
		}
	}
}

// SettleOnce scans for pending withdrawals past the settle threshold and
// schedules settlement for each. Already-scheduled ids are skipped.
func (w *SettlementWorker) SettleOnce(ctx context.Context) {
	if !w.db.Ready() {
		return
	}

	withdrawals, err := w.repo.GetList(ctx, repository.WithdrawalFilter{})
	if err != nil {
		w.logger.Errorf("Cannot list withdrawals for settlement: %v", err)
		return
	}

	now := w.clock.Now()
	for _, withdrawal := range withdrawals {
		if withdrawal.Status != entity.WithdrawalPending {
			continue
		}

		if now.Sub(withdrawal.Timestamp) < w.cfg.SettleAfter {
			continue
		}

		if !w.claim(withdrawal.ID) {
			continue
		}

		go w.settle(ctx, withdrawal.ID)
	}
}

func (w *SettlementWorker) settle(ctx context.Context, id string) {
	defer w.release(id)

	select {
	case <-ctx.Done():
		return

	case <-w.clock.After(w.jitter()):
	}

	txHash := "0x" + crypto.GenerateRandomHex(64)
	err := w.repo.Update(ctx, id, map[string]any{
		"status":  string(entity.WithdrawalCompleted),
		"tx_hash": txHash,
	})
	if err != nil {
		w.logger.Errorf("Cannot settle withdrawal %s: %v", id, err)
		return
	}

	w.logger.Infof("Withdrawal %s settled with tx %s", id, txHash)
}

func (w *SettlementWorker) claim(id string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.processing[id] {
		return false
	}

	w.processing[id] = true
	return true
}

func (w *SettlementWorker) release(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.processing, id)
}

func (w *SettlementWorker) jitter() time.Duration {
	span := w.cfg.SettleJitterMax - w.cfg.SettleJitterMin
	if span <= 0 {
		return w.cfg.SettleJitterMin
	}

	return w.cfg.SettleJitterMin + time.Duration(crypto.RandIntn(int(span)))
}
