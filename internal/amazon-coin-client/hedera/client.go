package hedera

import (
	"context"
	"math/big"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/quantumauth-io/quantum-go-utils/log"
)

const (
	NetworkTestnet    = "testnet"
	NetworkMainnet    = "mainnet"
	NetworkPreviewnet = "previewnet"

	StatusSuccess = "SUCCESS"
)

// ContractCall is a ContractExecuteTransaction: Params holds the
// ABI-encoded arguments without the selector.
type ContractCall struct {
	ContractID      ContractID
	Function        string
	Params          []byte
	Gas             uint64
	PayableTinybars *big.Int
}

type Receipt struct {
	TransactionID string
	Status        string
	Result        []byte
}

func (r Receipt) Succeeded() bool { return r.Status == StatusSuccess }

type Balance struct {
	Account  AccountID
	Tinybars *big.Int
	Tokens   map[string]*big.Int
}

// Client is the native Hedera surface used for purchases.
type Client interface {
	ExecuteContract(ctx context.Context, call ContractCall) (Receipt, error)
	QueryBalance(ctx context.Context, account AccountID) (Balance, error)
}

type ClientFactory func(ctx context.Context, network string) (Client, error)

// NativeClientRegistry caches one Client per Hedera network name.
type NativeClientRegistry struct {
	factory ClientFactory

	mu      sync.Mutex
	clients map[string]Client
}

func NewNativeClientRegistry(factory ClientFactory) *NativeClientRegistry {
	return &NativeClientRegistry{
		factory: factory,
		clients: map[string]Client{},
	}
}

func NormalizeNetwork(network string) (string, error) {
	switch n := strings.ToLower(strings.TrimSpace(network)); n {
	case NetworkTestnet, NetworkMainnet, NetworkPreviewnet:
		return n, nil
	default:
		return "", errors.Newf("unsupported hedera network: %q", network)
	}
}

func (r *NativeClientRegistry) ClientFor(ctx context.Context, network string) (Client, error) {
	name, err := NormalizeNetwork(network)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	if c, ok := r.clients[name]; ok {
		r.mu.Unlock()
		return c, nil
	}
	r.mu.Unlock()

	if r.factory == nil {
		return nil, errors.Newf("no hedera client configured for %s", name)
	}
	c, err := r.factory(ctx, name)
	if err != nil {
		return nil, errors.Wrapf(err, "init hedera %s client", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.clients[name]; ok {
		return existing, nil
	}
	r.clients[name] = c
	log.Info("hedera client initialized", "network", name)
	return c, nil
}

func (r *NativeClientRegistry) Register(network string, c Client) error {
	name, err := NormalizeNetwork(network)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.clients[name] = c
	r.mu.Unlock()
	return nil
}
