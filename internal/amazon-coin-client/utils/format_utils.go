package utils

import (
	"math/big"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
)

// FormatUnits converts a base-unit amount to a human string:
// - divides by 10^decimals
// - truncates to maxFrac decimal places (maxFrac < 0 keeps all)
// - removes trailing zeros
//
// Examples:
//
//	amount=1234500000000000000, decimals=18 -> "1.2345"
//	amount=1000000000000000000, decimals=18 -> "1"
//	amount=1, decimals=18, maxFrac=4      -> "0"
func FormatUnits(amount *big.Int, decimals int32, maxFrac int32) string {
	if amount == nil || amount.Sign() == 0 {
		return "0"
	}
	d := decimal.NewFromBigInt(amount, -decimals)
	if maxFrac >= 0 {
		d = d.Truncate(maxFrac)
	}
	return d.String()
}

// ParseUnits converts a human decimal string ("1000", "0.5") to base units.
// More fractional digits than decimals is an error, as is a negative value.
func ParseUnits(s string, decimals int32) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("amount is empty")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, errors.Wrapf(err, "parse amount %q", s)
	}
	if d.IsNegative() {
		return nil, errors.Newf("amount %q is negative", s)
	}
	scaled := d.Shift(decimals)
	if !scaled.Equal(scaled.Truncate(0)) {
		return nil, errors.Newf("amount %q has more than %d decimal places", s, decimals)
	}
	return scaled.BigInt(), nil
}

// DecimalToBaseUnits is ParseUnits for an already parsed decimal.
func DecimalToBaseUnits(d decimal.Decimal, decimals int32) (*big.Int, error) {
	return ParseUnits(d.String(), decimals)
}
