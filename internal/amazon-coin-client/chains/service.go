package chains

import (
	"context"
	"math/big"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

// Client is the RPC surface the router, verifier and balance reader need.
// *ethclient.Client satisfies it.
type Client interface {
	bind.ContractBackend
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	ChainID(ctx context.Context) (*big.Int, error)
}

type DialFunc func(ctx context.Context, url string) (Client, error)

type ChainConfig struct {
	Chains           *AllChainsConfig
	PreferredRPCName string
	// Dial defaults to ethclient.DialContext.
	Dial DialFunc
}

type ResolvedChain struct {
	NetworkName string
	ChainID     uint64
	ChainIDHex  string
	Explorer    string

	RPCName string
	URL     string
	WSS     string
}

// ClientRegistry hands out one cached RPC client per chain id. Clients for
// different chains coexist; there is no process-wide "current" chain.
type ClientRegistry struct {
	cfg          ChainConfig
	mu           sync.Mutex
	clientsByID  map[uint64]Client
	networksByID map[uint64]string
}

func NewClientRegistry(cfg ChainConfig) (*ClientRegistry, error) {
	if cfg.Chains == nil {
		return nil, errors.New("chains config is nil")
	}
	if cfg.Dial == nil {
		cfg.Dial = dialEthClient
	}

	byID := make(map[uint64]string, len(cfg.Chains.Networks))
	for name, network := range cfg.Chains.Networks {
		if network.ChainID == 0 {
			return nil, errors.Newf("network %q has chainId 0", name)
		}
		if existing, dup := byID[network.ChainID]; dup {
			return nil, errors.Newf("chainId %d configured twice (%q, %q)", network.ChainID, existing, name)
		}
		byID[network.ChainID] = name
	}

	return &ClientRegistry{
		cfg:          cfg,
		clientsByID:  make(map[uint64]Client),
		networksByID: byID,
	}, nil
}

// ClientFor returns (and caches) the client for chainID.
func (r *ClientRegistry) ClientFor(ctx context.Context, chainID uint64) (Client, error) {
	r.mu.Lock()
	if existing := r.clientsByID[chainID]; existing != nil {
		r.mu.Unlock()
		return existing, nil
	}
	r.mu.Unlock()

	resolved, err := r.ResolveByChainID(chainID)
	if err != nil {
		return nil, err
	}

	// Dial outside the lock (avoid blocking concurrent readers)
	dialed, err := r.cfg.Dial(ctx, resolved.URL)
	if err != nil {
		return nil, errors.Wrapf(err, "dial %q (chain %d)", resolved.NetworkName, chainID)
	}

	r.mu.Lock()
	if existing := r.clientsByID[chainID]; existing != nil {
		r.mu.Unlock()
		// We raced; close what we just dialed and return existing
		safeClose(dialed)
		return existing, nil
	}
	r.clientsByID[chainID] = dialed
	r.mu.Unlock()

	return dialed, nil
}

// Register installs a pre-built client for chainID, replacing any cached one.
func (r *ClientRegistry) Register(chainID uint64, client Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev := r.clientsByID[chainID]; prev != nil && prev != client {
		safeClose(prev)
	}
	r.clientsByID[chainID] = client
}

// Close closes all cached clients (call on shutdown).
func (r *ClientRegistry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, client := range r.clientsByID {
		safeClose(client)
		delete(r.clientsByID, id)
	}
	return nil
}

func (r *ClientRegistry) ResolveByChainID(chainID uint64) (ResolvedChain, error) {
	if chainID == 0 {
		return ResolvedChain{}, errors.New("chainID is 0")
	}
	name, ok := r.networksByID[chainID]
	if !ok {
		return ResolvedChain{}, errors.Newf("unknown chainID %d", chainID)
	}
	return r.resolveFromNetworkConfig(name, r.cfg.Chains.Networks[name])
}

func (r *ClientRegistry) ResolveByChainIDHex(chainIDHex string) (ResolvedChain, error) {
	chainIDHex = strings.TrimSpace(strings.ToLower(chainIDHex))
	if chainIDHex == "" {
		return ResolvedChain{}, errors.New("chainIdHex is empty")
	}

	for name, network := range r.cfg.Chains.Networks {
		if strings.ToLower(strings.TrimSpace(network.ChainIDHex)) != chainIDHex {
			continue
		}
		return r.resolveFromNetworkConfig(name, network)
	}
	return ResolvedChain{}, errors.Newf("unknown chainIdHex %q", chainIDHex)
}

func (r *ClientRegistry) resolveFromNetworkConfig(networkName string, network NetworkConfig) (ResolvedChain, error) {
	// pick RPC by preferred name; otherwise first
	var selected *RPC

	if preferred := strings.TrimSpace(r.cfg.PreferredRPCName); preferred != "" {
		for i := range network.RPCs {
			if strings.EqualFold(strings.TrimSpace(network.RPCs[i].Name), preferred) {
				selected = &network.RPCs[i]
				break
			}
		}
	}
	if selected == nil {
		if len(network.RPCs) == 0 {
			return ResolvedChain{}, errors.Newf("network %q has no RPCs configured", networkName)
		}
		selected = &network.RPCs[0]
	}
	if strings.TrimSpace(selected.URL) == "" {
		return ResolvedChain{}, errors.Newf("network %q rpc %q url is empty", networkName, selected.Name)
	}

	return ResolvedChain{
		NetworkName: networkName,
		ChainID:     network.ChainID,
		ChainIDHex:  network.ChainIDHex,
		Explorer:    network.Explorer,
		RPCName:     selected.Name,
		URL:         selected.URL,
		WSS:         selected.WSS,
	}, nil
}

func dialEthClient(ctx context.Context, url string) (Client, error) {
	client, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func safeClose(c Client) {
	if closer, ok := c.(interface{ Close() }); ok {
		closer.Close()
	}
}
