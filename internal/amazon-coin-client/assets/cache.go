package assets

import (
	"context"
	"math/big"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"

	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/constants"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/networks"
)

type BalanceReader interface {
	BalanceOf(ctx context.Context, chainID uint64, token common.Address, owner common.Address) (*big.Int, error)
}

// Balances is the last known token and native balance of an account.
type Balances struct {
	ChainID   uint64
	Account   common.Address
	Token     *big.Int
	Native    *big.Int
	UpdatedAt time.Time
}

type cacheKey struct {
	chainID uint64
	account common.Address
}

// Cache keeps the last successful Balances per (chain, account). A failed
// refresh leaves the previous value in place.
type Cache struct {
	reader BalanceReader
	now    func() time.Time

	mu      sync.RWMutex
	entries map[cacheKey]Balances
}

func NewCache(reader BalanceReader) *Cache {
	return &Cache{
		reader:  reader,
		now:     time.Now,
		entries: map[cacheKey]Balances{},
	}
}

func (c *Cache) Get(chainID uint64, account common.Address) (Balances, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	b, ok := c.entries[cacheKey{chainID, account}]
	return b, ok
}

func (c *Cache) Refresh(ctx context.Context, entry networks.Entry, account common.Address) (Balances, error) {
	native, err := c.reader.BalanceOf(ctx, entry.ChainID, common.HexToAddress(constants.NativeAddr), account)
	if err != nil {
		return Balances{}, errors.Wrapf(err, "refresh native balance on chain %d", entry.ChainID)
	}

	token := new(big.Int)
	if entry.IsDeployed() {
		token, err = c.reader.BalanceOf(ctx, entry.ChainID, entry.Contract, account)
		if err != nil {
			return Balances{}, errors.Wrapf(err, "refresh token balance on chain %d", entry.ChainID)
		}
	}

	b := Balances{
		ChainID:   entry.ChainID,
		Account:   account,
		Token:     token,
		Native:    native,
		UpdatedAt: c.now(),
	}
	c.mu.Lock()
	c.entries[cacheKey{entry.ChainID, account}] = b
	c.mu.Unlock()
	return b, nil
}
