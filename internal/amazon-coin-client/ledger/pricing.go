package ledger

import (
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/holiman/uint256"
)

// OneToken is 10^18, the scale of both token amounts and the exchange rate.
var OneToken = new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(18))

// EtherCost returns amount * rate / 10^18, truncating.
func EtherCost(amount, rate *uint256.Int) (*uint256.Int, error) {
	product, overflow := new(uint256.Int).MulOverflow(amount, rate)
	if overflow {
		return nil, ErrOverflow
	}
	return product.Div(product, OneToken), nil
}

// TokenAmount returns native * 10^18 / rate, truncating. It is the inverse of
// EtherCost up to one truncation: TokenAmount(EtherCost(x)) <= x.
func TokenAmount(native, rate *uint256.Int) (*uint256.Int, error) {
	if rate.IsZero() {
		return nil, ErrZeroExchangeRate
	}
	product, overflow := new(uint256.Int).MulOverflow(native, OneToken)
	if overflow {
		return nil, ErrOverflow
	}
	return product.Div(product, rate), nil
}

// EtherCostBig is EtherCost for callers holding big.Int values (RPC bindings).
func EtherCostBig(amount, rate *big.Int) (*big.Int, error) {
	a, r, err := toUint256Pair(amount, rate)
	if err != nil {
		return nil, err
	}
	cost, err := EtherCost(a, r)
	if err != nil {
		return nil, err
	}
	return cost.ToBig(), nil
}

// TokenAmountBig is TokenAmount for big.Int values.
func TokenAmountBig(native, rate *big.Int) (*big.Int, error) {
	n, r, err := toUint256Pair(native, rate)
	if err != nil {
		return nil, err
	}
	tokens, err := TokenAmount(n, r)
	if err != nil {
		return nil, err
	}
	return tokens.ToBig(), nil
}

func toUint256Pair(x, y *big.Int) (*uint256.Int, *uint256.Int, error) {
	if x == nil || y == nil {
		return nil, nil, errors.New("nil operand")
	}
	if x.Sign() < 0 || y.Sign() < 0 {
		return nil, nil, errors.New("negative operand")
	}
	a, overflow := uint256.FromBig(x)
	if overflow {
		return nil, nil, ErrOverflow
	}
	b, overflow := uint256.FromBig(y)
	if overflow {
		return nil, nil, ErrOverflow
	}
	return a, b, nil
}
