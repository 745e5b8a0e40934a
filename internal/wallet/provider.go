package wallet

import (
	"context"
	"fmt"
	"math/big"
)

// Provider codes follow EIP-1193; 4001 is a user rejection.
const CodeUserRejected = 4001

type ProviderError struct {
	Code    int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error %d: %s", e.Code, e.Message)
}

type EventType int

const (
	EventAccountsChanged EventType = iota
	EventChainChanged
	EventDisconnected
)

type Event struct {
	Type     EventType
	Accounts []string
	ChainID  int64
}

// Provider is the injected Web3 surface the adapter bridges to. It is an
// external collaborator, not designed here.
type Provider interface {
	// RequestAccounts asks the provider for account access. It returns a
	// *ProviderError with CodeUserRejected when the user declines.
	RequestAccounts(ctx context.Context) ([]string, error)

	// Accounts returns the already-authorized accounts without prompting.
	Accounts(ctx context.Context) ([]string, error)

	BalanceAt(ctx context.Context, address string) (*big.Int, error)
	ChainID(ctx context.Context) (int64, error)

	// Events delivers account-change, chain-change, and disconnect events
	// for the adapter's lifetime.
	Events() <-chan Event

	Close()
}
