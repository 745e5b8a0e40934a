package wallet

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
)

// rpcProvider talks to an Ethereum node over JSON-RPC. Node RPC does not
// push injected-provider events, so Events never fires; account and chain
// changes are only observed on the next explicit refresh.
type rpcProvider struct {
	rpc *rpc.Client
	eth *ethclient.Client

	events chan Event
}

func NewRPCProvider(ctx context.Context, url string) (Provider, error) {
	client, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, err
	}

	return &rpcProvider{
		rpc:    client,
		eth:    ethclient.NewClient(client),
		events: make(chan Event),
	}, nil
}

func (p *rpcProvider) RequestAccounts(ctx context.Context) ([]string, error) {
	var accounts []string
	if err := p.rpc.CallContext(ctx, &accounts, "eth_requestAccounts"); err != nil {
		return nil, err
	}

	return accounts, nil
}

func (p *rpcProvider) Accounts(ctx context.Context) ([]string, error) {
	var accounts []string
	if err := p.rpc.CallContext(ctx, &accounts, "eth_accounts"); err != nil {
		return nil, err
	}

	return accounts, nil
}

func (p *rpcProvider) BalanceAt(ctx context.Context, address string) (*big.Int, error) {
	return p.eth.BalanceAt(ctx, common.HexToAddress(address), nil)
}

func (p *rpcProvider) ChainID(ctx context.Context) (int64, error) {
	id, err := p.eth.ChainID(ctx)
	if err != nil {
		return 0, err
	}

	return id.Int64(), nil
}

func (p *rpcProvider) Events() <-chan Event {
	return p.events
}

func (p *rpcProvider) Close() {
	close(p.events)
	p.rpc.Close()
}
