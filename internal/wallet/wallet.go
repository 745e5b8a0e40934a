package wallet

import (
	"context"
	"errors"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/params"

	"github.com/airdroplab/backend/internal/kv"
	"github.com/airdroplab/backend/pkg/errorx"
	"github.com/airdroplab/backend/pkg/logger"
)

type State struct {
	IsConnected bool   `json:"isConnected"`
	Address     string `json:"address"`
	Balance     string `json:"balance"`
	ChainID     int64  `json:"chainId"`
}

// Adapter bridges a Web3 provider to the application's notion of a connected
// user. A nil provider models the no-wallet-installed environment.
type Adapter struct {
	provider Provider
	store    *kv.Store
	logger   logger.Logger

	mu       sync.Mutex
	state    State
	onChange []func(State)
}

func NewAdapter(provider Provider, store *kv.Store, logger logger.Logger) *Adapter {
	return &Adapter{
		provider: provider,
		store:    store,
		logger:   logger,
	}
}

// Connect requests account access and populates address, balance, and chain
// id. It distinguishes a missing provider from a user rejection by error
// code.
func (a *Adapter) Connect(ctx context.Context) (State, error) {
	if a.provider == nil {
		return State{}, errorx.New(errorx.WalletNotAvailable,
			"No wallet provider is available. Install a Web3 wallet to continue")
	}

	accounts, err := a.provider.RequestAccounts(ctx)
	if err != nil {
		var provErr *ProviderError
		if errors.As(err, &provErr) && provErr.Code == CodeUserRejected {
			return State{}, errorx.New(errorx.WalletRejected,
				"Connection request was rejected. Try again when ready to connect")
		}

		a.logger.Errorf("Cannot request accounts: %v", err)
		return State{}, errorx.New(errorx.Unavailable, "Failed to connect wallet")
	}

	if len(accounts) == 0 {
		return State{}, errorx.New(errorx.Unavailable, "Failed to connect wallet")
	}

	return a.refresh(ctx, accounts[0])
}

// CheckConnection restores an authorized session without prompting. Errors
// are logged, never surfaced; an unauthorized provider simply leaves the
// adapter disconnected.
func (a *Adapter) CheckConnection(ctx context.Context) {
	if a.provider == nil {
		return
	}

	accounts, err := a.provider.Accounts(ctx)
	if err != nil {
		a.logger.Warnf("Cannot check wallet connection: %v", err)
		return
	}

	if len(accounts) > 0 {
		if _, err := a.refresh(ctx, accounts[0]); err != nil {
			a.logger.Warnf("Cannot restore wallet session: %v", err)
		}
	}
}

// Disconnect clears local connection state and the persisted connected flag.
// It cannot force-disconnect the provider itself.
func (a *Adapter) Disconnect() {
	a.mu.Lock()
	a.state = State{}
	a.mu.Unlock()

	a.store.Delete(kv.KeyWalletConnected)
	a.notify()
}

func (a *Adapter) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// OnChange registers a callback invoked after every state change.
func (a *Adapter) OnChange(fn func(State)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onChange = append(a.onChange, fn)
}

// Listen consumes provider events until ctx is done. An account change with
// zero accounts is a disconnect. A chain change resets the whole state and
// reconnects from scratch; there is no in-place re-sync, matching the
// original full-reload behavior.
func (a *Adapter) Listen(ctx context.Context) {
	if a.provider == nil {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-a.provider.Events():
			if !ok {
				return
			}

			switch event.Type {
			case EventAccountsChanged:
				if len(event.Accounts) == 0 {
					a.Disconnect()
				} else if _, err := a.refresh(ctx, event.Accounts[0]); err != nil {
					a.logger.Warnf("Cannot handle account change: %v", err)
				}

			case EventChainChanged:
				a.Disconnect()
				a.CheckConnection(ctx)

			case EventDisconnected:
				a.Disconnect()
			}
		}
	}
}

func (a *Adapter) refresh(ctx context.Context, address string) (State, error) {
	balance, err := a.provider.BalanceAt(ctx, address)
	if err != nil {
		a.logger.Errorf("Cannot get balance of %s: %v", address, err)
		return State{}, errorx.New(errorx.Unavailable, "Failed to retrieve wallet information")
	}

	chainID, err := a.provider.ChainID(ctx)
	if err != nil {
		a.logger.Errorf("Cannot get chain id: %v", err)
		return State{}, errorx.New(errorx.Unavailable, "Failed to retrieve wallet information")
	}

	state := State{
		IsConnected: true,
		Address:     address,
		Balance:     formatEther(balance),
		ChainID:     chainID,
	}

	a.mu.Lock()
	a.state = state
	a.mu.Unlock()

	kv.Set(a.store, kv.KeyWalletConnected, true)
	a.notify()

	return state, nil
}

func (a *Adapter) notify() {
	a.mu.Lock()
	state := a.state
	callbacks := make([]func(State), len(a.onChange))
	copy(callbacks, a.onChange)
	a.mu.Unlock()

	for _, fn := range callbacks {
		fn(state)
	}
}

// FormatAddress truncates an address to its first 6 and last 4 characters.
// Inputs shorter than 10 characters are returned unchanged.
func FormatAddress(address string) string {
	if len(address) < 10 {
		return address
	}

	return address[:6] + "..." + address[len(address)-4:]
}

func formatEther(wei *big.Int) string {
	if wei == nil {
		return "0"
	}

	ether := new(big.Float).Quo(new(big.Float).SetInt(wei), big.NewFloat(params.Ether))
	return ether.Text('f', 6)
}
