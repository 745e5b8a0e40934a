package domain

import (
	"context"

	"github.com/airdroplab/backend/internal/kv"
	"github.com/airdroplab/backend/internal/model"
	"github.com/airdroplab/backend/internal/wallet"
	"github.com/airdroplab/backend/pkg/errorx"
)

// ConnectWallet connects the wallet provider and returns the resulting
// state. The user re-key happens through the adapter's change notification,
// so by the time this returns the current user reflects the new address.
func (a *App) ConnectWallet(
	ctx context.Context, req *model.ConnectWalletRequest,
) (*model.ConnectWalletResponse, error) {
	if a.wallet == nil {
		return nil, errorx.New(errorx.WalletNotAvailable,
			"No wallet provider is available. Install a Web3 wallet to continue")
	}

	state, err := a.wallet.Connect(ctx)
	if err != nil {
		return nil, err
	}

	return &model.ConnectWalletResponse{State: state}, nil
}

func (a *App) DisconnectWallet(
	ctx context.Context, req *model.DisconnectWalletRequest,
) (*model.DisconnectWalletResponse, error) {
	if a.wallet != nil {
		a.wallet.Disconnect()
	}

	return &model.DisconnectWalletResponse{}, nil
}

// handleWalletChange reconciles the current user with the wallet state. A
// newly connected address becomes the user's identity: the record is re-keyed
// in place, keeping accumulated points and completed tasks, and the old id
// leaves the connected-users collection so one person never appears twice.
func (a *App) handleWalletChange(ctx context.Context, state wallet.State) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !state.IsConnected {
		user := cloneUser(a.user)
		user.IsConnected = false
		a.updateUserLocked(ctx, user)
		return
	}

	user := cloneUser(a.user)
	oldID := user.ID

	user.ID = state.Address
	user.WalletAddress = state.Address
	user.Wallet = state.Address
	user.IsConnected = true
	user.Balance = state.Balance

	if oldID != state.Address {
		kept := a.connectedUsers[:0]
		for _, u := range a.connectedUsers {
			if u.ID != oldID {
				kept = append(kept, u)
			}
		}
		a.connectedUsers = kept

		a.user = user
		kv.Set(a.store, kv.KeyUser, a.user)
	}

	a.updateUserLocked(ctx, user)
}
