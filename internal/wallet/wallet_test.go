package wallet

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/airdroplab/backend/internal/kv"
	"github.com/airdroplab/backend/internal/testutil"
	"github.com/airdroplab/backend/pkg/errorx"
)

type mockProvider struct {
	RequestAccountsFunc func(ctx context.Context) ([]string, error)
	AccountsFunc        func(ctx context.Context) ([]string, error)
	BalanceAtFunc       func(ctx context.Context, address string) (*big.Int, error)
	ChainIDFunc         func(ctx context.Context) (int64, error)
	events              chan Event
}

func newMockProvider() *mockProvider {
	return &mockProvider{events: make(chan Event, 4)}
}

func (p *mockProvider) RequestAccounts(ctx context.Context) ([]string, error) {
	if p.RequestAccountsFunc != nil {
		return p.RequestAccountsFunc(ctx)
	}

	return []string{"0x1234567890abcdef1234567890abcdef12345678"}, nil
}

func (p *mockProvider) Accounts(ctx context.Context) ([]string, error) {
	if p.AccountsFunc != nil {
		return p.AccountsFunc(ctx)
	}

	return nil, nil
}

func (p *mockProvider) BalanceAt(ctx context.Context, address string) (*big.Int, error) {
	if p.BalanceAtFunc != nil {
		return p.BalanceAtFunc(ctx, address)
	}

	// 1 ETH
	return new(big.Int).Mul(big.NewInt(1), big.NewInt(1e18)), nil
}

func (p *mockProvider) ChainID(ctx context.Context) (int64, error) {
	if p.ChainIDFunc != nil {
		return p.ChainIDFunc(ctx)
	}

	return 1, nil
}

func (p *mockProvider) Events() <-chan Event { return p.events }

func (p *mockProvider) Close() {}

func TestConnectWithoutProvider(t *testing.T) {
	adapter := NewAdapter(nil, testutil.NewKVStore(t.TempDir()), testutil.NewLogger())

	_, err := adapter.Connect(context.Background())
	require.True(t, errorx.HasCode(err, errorx.WalletNotAvailable))
}

func TestConnectUserRejected(t *testing.T) {
	provider := newMockProvider()
	provider.RequestAccountsFunc = func(ctx context.Context) ([]string, error) {
		return nil, &ProviderError{Code: CodeUserRejected, Message: "User rejected the request"}
	}

	adapter := NewAdapter(provider, testutil.NewKVStore(t.TempDir()), testutil.NewLogger())

	_, err := adapter.Connect(context.Background())
	require.True(t, errorx.HasCode(err, errorx.WalletRejected))
	require.False(t, adapter.State().IsConnected)
}

func TestConnectSuccess(t *testing.T) {
	store := testutil.NewKVStore(t.TempDir())
	adapter := NewAdapter(newMockProvider(), store, testutil.NewLogger())

	state, err := adapter.Connect(context.Background())
	require.NoError(t, err)
	require.True(t, state.IsConnected)
	require.Equal(t, "0x1234567890abcdef1234567890abcdef12345678", state.Address)
	require.Equal(t, "1.000000", state.Balance)
	require.Equal(t, int64(1), state.ChainID)
	require.True(t, kv.Get(store, kv.KeyWalletConnected, false))
}

func TestDisconnectClearsState(t *testing.T) {
	store := testutil.NewKVStore(t.TempDir())
	adapter := NewAdapter(newMockProvider(), store, testutil.NewLogger())

	_, err := adapter.Connect(context.Background())
	require.NoError(t, err)

	adapter.Disconnect()
	require.False(t, adapter.State().IsConnected)
	require.False(t, kv.Get(store, kv.KeyWalletConnected, false))
}

func TestListenZeroAccountsDisconnects(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	provider := newMockProvider()
	store := testutil.NewKVStore(t.TempDir())
	adapter := NewAdapter(provider, store, testutil.NewLogger())

	_, err := adapter.Connect(ctx)
	require.NoError(t, err)

	disconnected := make(chan State, 1)
	adapter.OnChange(func(state State) {
		if !state.IsConnected {
			disconnected <- state
		}
	})

	go adapter.Listen(ctx)
	provider.events <- Event{Type: EventAccountsChanged, Accounts: nil}

	select {
	case state := <-disconnected:
		require.False(t, state.IsConnected)
	case <-time.After(time.Second):
		t.Fatal("adapter never disconnected")
	}
}

func TestFormatAddress(t *testing.T) {
	require.Equal(t, "0x1234...5678",
		FormatAddress("0x1234567890abcdef1234567890abcdef12345678"))
	require.Equal(t, "guest", FormatAddress("guest"))
	require.Equal(t, "", FormatAddress(""))
	require.Equal(t, "0x1234567", FormatAddress("0x1234567"))
	require.Equal(t, "0x1234...5678", FormatAddress("0x12345678"))
}
