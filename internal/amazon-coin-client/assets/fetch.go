package assets

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/constants"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/contracts/bindings/go/amazoncoin"
)

type Asset struct {
	Address  string `json:"address"`
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
	Name     string `json:"name"`
}

// FetchAsset reads token metadata. The native sentinel resolves to the
// network's own currency without an RPC call.
func (r *Reader) FetchAsset(ctx context.Context, chainID uint64, nativeSymbol string, addr common.Address) (Asset, error) {
	native := common.HexToAddress(constants.NativeAddr).Hex()
	if strings.EqualFold(addr.Hex(), native) {
		return Asset{
			Address:  native,
			Symbol:   nativeSymbol,
			Decimals: 18,
			Name:     nativeSymbol,
		}, nil
	}

	client, err := r.clients.ClientFor(ctx, chainID)
	if err != nil {
		return Asset{}, errors.Wrapf(err, "get client for chain %d", chainID)
	}

	token, err := amazoncoin.NewAmazonCoinCaller(addr, client)
	if err != nil {
		return Asset{}, errors.Wrap(err, "amazoncoin bind")
	}
	opts := &bind.CallOpts{Context: ctx}

	symbol, err := token.Symbol(opts)
	if err != nil {
		return Asset{}, errors.Wrap(err, "symbol")
	}
	decimals, err := token.Decimals(opts)
	if err != nil {
		return Asset{}, errors.Wrap(err, "decimals")
	}

	name := ""
	if n, err := token.Name(opts); err == nil {
		name = n
	}

	return Asset{
		Address:  addr.Hex(),
		Symbol:   symbol,
		Decimals: decimals,
		Name:     name,
	}, nil
}
