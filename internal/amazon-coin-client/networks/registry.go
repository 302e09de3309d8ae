// Package networks resolves a chain id to the token deployment, pricing and
// explorer of that network. A Registry is built once at startup and never
// mutated afterwards.
package networks

import (
	"math/big"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/chains"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/constants"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/deployments"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/utils"
)

type Class string

const (
	ClassEVM    Class = chains.ClassEVM
	ClassHedera Class = chains.ClassHedera
)

func (c Class) IsEVM() bool    { return c == ClassEVM }
func (c Class) IsHedera() bool { return c == ClassHedera }

type Entry struct {
	ChainID       uint64
	Name          string
	DisplayName   string
	Class         Class
	HederaNetwork string
	Contract      common.Address
	NativeSymbol  string
	// TokenPrice is the cost of one whole token in whole native units.
	TokenPrice decimal.Decimal
	Explorer   string

	Deployment *deployments.Record
}

func (e Entry) IsDeployed() bool {
	return e.Contract != common.HexToAddress(constants.SentinelAddr)
}

// PriceInBaseUnits is the on-chain exchange rate: price scaled by 10^18.
func (e Entry) PriceInBaseUnits() (*big.Int, error) {
	rate, err := utils.DecimalToBaseUnits(e.TokenPrice, constants.TokenDecimals)
	if err != nil {
		return nil, errors.Wrapf(err, "price for chain %d", e.ChainID)
	}
	return rate, nil
}

type Config struct {
	Entries         []Entry
	FallbackChainID uint64
}

type Registry struct {
	byID     map[uint64]Entry
	ids      []uint64
	fallback uint64
}

func NewRegistry(cfg Config) (*Registry, error) {
	if len(cfg.Entries) == 0 {
		return nil, errors.New("network registry needs at least one entry")
	}
	fallback := cfg.FallbackChainID
	if fallback == 0 {
		fallback = constants.DefaultFallbackChainID
	}

	r := &Registry{
		byID:     make(map[uint64]Entry, len(cfg.Entries)),
		fallback: fallback,
	}
	for _, e := range cfg.Entries {
		if e.ChainID == 0 {
			return nil, errors.Newf("network %q: chainId is 0", e.Name)
		}
		if _, dup := r.byID[e.ChainID]; dup {
			return nil, errors.Newf("chainId %d registered twice", e.ChainID)
		}
		if !e.Class.IsEVM() && !e.Class.IsHedera() {
			return nil, errors.Newf("network %q: unknown class %q", e.Name, e.Class)
		}
		r.byID[e.ChainID] = e
		r.ids = append(r.ids, e.ChainID)
	}
	sort.Slice(r.ids, func(i, j int) bool { return r.ids[i] < r.ids[j] })

	if _, ok := r.byID[fallback]; !ok {
		return nil, errors.Newf("fallback chainId %d is not registered", fallback)
	}
	return r, nil
}

// Resolve returns the entry for chainID, or the fallback entry when the id
// is unknown. The bool reports whether the fallback was used.
func (r *Registry) Resolve(chainID uint64) (Entry, bool) {
	if e, ok := r.byID[chainID]; ok {
		return e, false
	}
	return r.byID[r.fallback], true
}

func (r *Registry) Lookup(chainID uint64) (Entry, bool) {
	e, ok := r.byID[chainID]
	return e, ok
}

func (r *Registry) Fallback() Entry { return r.byID[r.fallback] }

func (r *Registry) List() []Entry {
	out := make([]Entry, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, r.byID[id])
	}
	return out
}

func (r *Registry) Deployed() []Entry {
	var out []Entry
	for _, id := range r.ids {
		if e := r.byID[id]; e.IsDeployed() {
			out = append(out, e)
		}
	}
	return out
}
