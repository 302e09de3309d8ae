package hedera

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/constants"
)

var (
	weibarsPerTinybar = big.NewInt(constants.WeibarsPerTinybar)
	tinybarsPerHbar   = big.NewInt(constants.TinybarsPerHbar)
)

// TinybarsFromBaseUnits converts an 18-decimal native amount to tinybars,
// truncating anything below one tinybar.
func TinybarsFromBaseUnits(amount *big.Int) *big.Int {
	if amount == nil || amount.Sign() <= 0 {
		return new(big.Int)
	}
	return new(big.Int).Quo(amount, weibarsPerTinybar)
}

// BaseUnitsFromTinybars is the inverse of TinybarsFromBaseUnits.
func BaseUnitsFromTinybars(tinybars *big.Int) *big.Int {
	if tinybars == nil {
		return new(big.Int)
	}
	return new(big.Int).Mul(tinybars, weibarsPerTinybar)
}

func TinybarsFromHbar(hbar decimal.Decimal) *big.Int {
	return hbar.Mul(decimal.NewFromBigInt(tinybarsPerHbar, 0)).Truncate(0).BigInt()
}

func HbarString(tinybars *big.Int) string {
	if tinybars == nil {
		return "0"
	}
	return decimal.NewFromBigInt(tinybars, -8).String()
}
