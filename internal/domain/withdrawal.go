package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/airdroplab/backend/internal/entity"
	"github.com/airdroplab/backend/internal/model"
	"github.com/airdroplab/backend/internal/repository"
	"github.com/airdroplab/backend/internal/wallet"
	"github.com/airdroplab/backend/pkg/enum"
	"github.com/airdroplab/backend/pkg/errorx"
	"github.com/airdroplab/backend/pkg/idutil"
)

// withdrawalColumns maps patchable request fields to store columns. Fields
// outside this map are silently ignored.
var withdrawalColumns = map[string]string{
	"status":     "status",
	"txHash":     "tx_hash",
	"username":   "username",
	"amount":     "amount",
	"usdcAmount": "usdc_amount",
	"userId":     "user_id",
}

// Withdraw converts points of the current user into a pending withdrawal.
// Amount limits and the balance check live here; the points ledger itself
// does not enforce a floor.
func (a *App) Withdraw(
	ctx context.Context, req *model.WithdrawRequest,
) (*model.WithdrawResponse, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	settings := a.systemSettingsLocked()
	if req.Amount < settings.MinWithdrawal {
		return nil, errorx.New(errorx.BadRequest,
			"Minimum withdrawal is %d points", settings.MinWithdrawal)
	}

	if settings.MaxWithdrawal > 0 && req.Amount > settings.MaxWithdrawal {
		return nil, errorx.New(errorx.BadRequest,
			"Maximum withdrawal is %d points", settings.MaxWithdrawal)
	}

	if req.Amount > a.user.TotalPoints {
		return nil, errorx.New(errorx.BadRequest, "Insufficient points")
	}

	withdrawal := entity.Withdrawal{
		ID:         idutil.New(),
		UserID:     a.user.ID,
		Username:   a.usernameSnapshotLocked(),
		Amount:     req.Amount,
		USDCAmount: float64(req.Amount) / float64(settings.PointsToUSDCRate),
		Timestamp:  time.Now(),
		Status:     entity.WithdrawalPending,
	}

	user := cloneUser(a.user)
	user.TotalPoints -= req.Amount
	a.updateUserLocked(ctx, user)

	a.saveWithdrawalToStore(ctx, withdrawal)
	return &model.WithdrawResponse{Withdrawal: withdrawal}, nil
}

// GetWithdrawals lists withdrawals most recent first, optionally restricted
// to one user. It reports an empty list before the store is ready and never
// fails the caller.
func (a *App) GetWithdrawals(
	ctx context.Context, req *model.GetWithdrawalsRequest,
) (*model.GetWithdrawalsResponse, error) {
	if !a.db.Ready() {
		return &model.GetWithdrawalsResponse{Withdrawals: []entity.Withdrawal{}}, nil
	}

	withdrawals, err := a.withdrawalRepo.GetList(ctx, repository.WithdrawalFilter{
		UserID: req.UserID,
	})
	if err != nil {
		a.logger.Errorf("Cannot list withdrawals: %v", err)
		return &model.GetWithdrawalsResponse{Withdrawals: []entity.Withdrawal{}}, nil
	}

	return &model.GetWithdrawalsResponse{Withdrawals: withdrawals}, nil
}

// CreateWithdrawal records a withdrawal supplied by the admin surface. The
// store is authoritative for withdrawals; before it is ready this is a silent
// no-op.
func (a *App) CreateWithdrawal(
	ctx context.Context, req *model.CreateWithdrawalRequest,
) (*model.CreateWithdrawalResponse, error) {
	withdrawal := req.Withdrawal
	if withdrawal.ID == "" {
		withdrawal.ID = idutil.New()
	}
	if withdrawal.Timestamp.IsZero() {
		withdrawal.Timestamp = time.Now()
	}
	if withdrawal.Status == "" {
		withdrawal.Status = entity.WithdrawalPending
	}

	if _, err := enum.ToEnum[entity.WithdrawalStatus](string(withdrawal.Status)); err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid status %s", withdrawal.Status)
	}

	a.saveWithdrawalToStore(ctx, withdrawal)
	return &model.CreateWithdrawalResponse{ID: withdrawal.ID}, nil
}

// UpdateWithdrawal patches only the supplied columns of a stored withdrawal.
func (a *App) UpdateWithdrawal(
	ctx context.Context, req *model.UpdateWithdrawalRequest,
) (*model.UpdateWithdrawalResponse, error) {
	if !a.db.Ready() {
		return &model.UpdateWithdrawalResponse{}, nil
	}

	updates := map[string]any{}
	for field, value := range req.Updates {
		column, ok := withdrawalColumns[field]
		if !ok {
			continue
		}

		if field == "status" {
			status, _ := value.(string)
			if _, err := enum.ToEnum[entity.WithdrawalStatus](status); err != nil {
				return nil, errorx.New(errorx.BadRequest, "Invalid status %v", value)
			}
		}

		updates[column] = value
	}

	if err := a.withdrawalRepo.Update(ctx, req.ID, updates); err != nil {
		a.logger.Errorf("Cannot update withdrawal %s: %v", req.ID, err)
		return nil, errorx.Unknown
	}

	return &model.UpdateWithdrawalResponse{}, nil
}

// DeleteWithdrawal removes a stored withdrawal. Unknown ids and a not-ready
// store are both no-ops.
func (a *App) DeleteWithdrawal(
	ctx context.Context, req *model.DeleteWithdrawalRequest,
) (*model.DeleteWithdrawalResponse, error) {
	if !a.db.Ready() {
		return &model.DeleteWithdrawalResponse{}, nil
	}

	if err := a.withdrawalRepo.DeleteByID(ctx, req.ID); err != nil {
		a.logger.Errorf("Cannot delete withdrawal %s: %v", req.ID, err)
		return nil, errorx.Unknown
	}

	return &model.DeleteWithdrawalResponse{}, nil
}

func (a *App) saveWithdrawalToStore(ctx context.Context, withdrawal entity.Withdrawal) {
	if !a.db.Ready() {
		return
	}

	if err := a.withdrawalRepo.Save(ctx, &withdrawal); err != nil {
		a.logger.Errorf("Cannot save withdrawal %s: %v", withdrawal.ID, err)
	}
}

// usernameSnapshotLocked captures a display name at withdrawal time: the
// truncated wallet address when one is known, otherwise a short id handle.
func (a *App) usernameSnapshotLocked() string {
	if a.user.WalletAddress != "" {
		return wallet.FormatAddress(a.user.WalletAddress)
	}

	id := a.user.ID
	if len(id) > 8 {
		id = id[:8]
	}

	return fmt.Sprintf("User #%s", id)
}
