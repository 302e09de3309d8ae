package networks

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/quantumauth-io/quantum-go-utils/log"
	"github.com/shopspring/decimal"

	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/chains"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/constants"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/deployments"
)

// FromConfig builds the registry from configured networks and merges in
// deployment records. Records match by network name first, then by chain
// id. A record only fills an entry whose configured address is the
// sentinel; configured addresses win.
func FromConfig(cfg *chains.AllChainsConfig, records map[string]deployments.Record) (*Registry, error) {
	if cfg == nil || len(cfg.Networks) == 0 {
		return nil, errors.New("no networks configured")
	}

	byName := make(map[string]deployments.Record, len(records))
	byChain := make(map[uint64]deployments.Record, len(records))
	for key, rec := range records {
		byName[normalizeKey(key)] = rec
		if rec.Network != "" {
			byName[normalizeKey(rec.Network)] = rec
		}
		if rec.ChainID != 0 {
			byChain[rec.ChainID] = rec
		}
	}

	keys := make([]string, 0, len(cfg.Networks))
	for k := range cfg.Networks {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]Entry, 0, len(keys))
	for _, key := range keys {
		n := cfg.Networks[key]
		e, err := entryFromConfig(key, n)
		if err != nil {
			return nil, err
		}

		rec, ok := byName[normalizeKey(key)]
		if !ok {
			rec, ok = byChain[n.ChainID]
		}
		if ok {
			if rec.ChainID != 0 && rec.ChainID != e.ChainID {
				log.Warn("deployment record chain mismatch", "network", key, "config_chain_id", e.ChainID, "record_chain_id", rec.ChainID)
			} else {
				r := rec
				e.Deployment = &r
				if !e.IsDeployed() && rec.IsDeployed() {
					e.Contract = rec.Address()
				}
			}
		}
		entries = append(entries, e)
	}

	return NewRegistry(Config{Entries: entries, FallbackChainID: cfg.FallbackChainID})
}

func entryFromConfig(key string, n chains.NetworkConfig) (Entry, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(n.TokenPrice))
	if err != nil {
		return Entry{}, errors.Wrapf(err, "network %q: token price", key)
	}

	contract := common.HexToAddress(constants.SentinelAddr)
	if c := strings.TrimSpace(n.Contract); c != "" {
		if !common.IsHexAddress(c) {
			return Entry{}, errors.Newf("network %q: invalid contract address %q", key, c)
		}
		contract = common.HexToAddress(c)
	}

	name := n.Name
	if name == "" {
		name = normalizeKey(key)
	}
	display := n.DisplayName
	if display == "" {
		display = key
	}

	return Entry{
		ChainID:       n.ChainID,
		Name:          name,
		DisplayName:   display,
		Class:         Class(strings.ToLower(n.Class)),
		HederaNetwork: n.HederaNetwork,
		Contract:      contract,
		NativeSymbol:  n.NativeSymbol,
		TokenPrice:    price,
		Explorer:      strings.TrimRight(n.Explorer, "/"),
	}, nil
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
