package assets

import (
	"context"
	"math/big"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/chains"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/constants"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/contracts/bindings/go/amazoncoin"
)

type ClientSource interface {
	ClientFor(ctx context.Context, chainID uint64) (chains.Client, error)
}

// Reader reads token and native balances over a chain's RPC client.
type Reader struct {
	clients ClientSource
}

func NewReader(clients ClientSource) *Reader {
	return &Reader{clients: clients}
}

// BalanceOf returns the balance for `owner`.
// - If token == NativeAddr (0x000..0): returns the native balance (wei / weibar)
// - Else: returns the token balance (raw units)
func (r *Reader) BalanceOf(ctx context.Context, chainID uint64, token common.Address, owner common.Address) (*big.Int, error) {
	if owner == (common.Address{}) {
		return big.NewInt(0), nil
	}

	client, err := r.clients.ClientFor(ctx, chainID)
	if err != nil {
		return nil, errors.Wrap(err, "assets: eth client not initialized")
	}

	native := common.HexToAddress(constants.NativeAddr)
	if strings.EqualFold(token.Hex(), native.Hex()) {
		wei, err := client.BalanceAt(ctx, owner, nil)
		if err != nil {
			return nil, errors.Wrap(err, "assets: native balance")
		}
		return wei, nil
	}

	coin, err := amazoncoin.NewAmazonCoinCaller(token, client)
	if err != nil {
		return nil, errors.Wrap(err, "assets: bind token")
	}

	bal, err := coin.BalanceOf(&bind.CallOpts{Context: ctx}, owner)
	if err != nil {
		return nil, errors.Wrap(err, "assets: token balanceOf")
	}
	return bal, nil
}
