package ledger_test

import (
	"math/big"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/ledger"
)

func TestEtherCostTruncates(t *testing.T) {
	rate := uint256.MustFromDecimal("100000000000000")

	tests := []struct {
		amount string
		want   string
	}{
		{"1000000000000000000000", "100000000000000000"},
		{"1", "0"},
		{"9999", "0"},
		{"10000", "1"},
		{"19999", "1"},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			got, err := ledger.EtherCost(uint256.MustFromDecimal(tt.amount), rate)
			require.NoError(t, err)
			require.Equal(t, tt.want, got.Dec())
		})
	}
}

func TestPricingRoundTrip(t *testing.T) {
	rates := []string{"100000000000000", "200000000000000", "1000000000000000000", "3"}
	amounts := []string{"10000", "1000000000000000000", "123450000", "1000000000000000000000000000"}

	for _, r := range rates {
		rate := uint256.MustFromDecimal(r)
		for _, a := range amounts {
			x := uint256.MustFromDecimal(a)
			cost, err := ledger.EtherCost(x, rate)
			require.NoError(t, err)
			back, err := ledger.TokenAmount(cost, rate)
			require.NoError(t, err)

			// truncation happens once, in the forward direction
			require.False(t, back.Gt(x), "rate=%s amount=%s", r, a)
			step, err := ledger.TokenAmount(uint256.NewInt(1), rate)
			require.NoError(t, err)
			gap := new(uint256.Int).Sub(x, back)
			require.False(t, gap.Gt(new(uint256.Int).AddUint64(step, 1)), "rate=%s amount=%s gap=%s", r, a, gap.Dec())

			// amounts priced without remainder come back exactly
			rem := new(uint256.Int).MulMod(x, rate, ledger.OneToken)
			if rem.IsZero() {
				require.Equal(t, x, back, "rate=%s amount=%s", r, a)
			}
		}
	}
}

func TestPricingOverflowAndZeroRate(t *testing.T) {
	huge := new(uint256.Int).SetAllOne()
	_, err := ledger.EtherCost(huge, uint256.NewInt(2))
	require.ErrorIs(t, err, ledger.ErrOverflow)

	_, err = ledger.TokenAmount(uint256.NewInt(1), new(uint256.Int))
	require.ErrorIs(t, err, ledger.ErrZeroExchangeRate)
}

func TestBigWrappers(t *testing.T) {
	amount, _ := new(big.Int).SetString("1000000000000000000000", 10)
	rate := big.NewInt(100000000000000)

	cost, err := ledger.EtherCostBig(amount, rate)
	require.NoError(t, err)
	require.Equal(t, "100000000000000000", cost.String())

	back, err := ledger.TokenAmountBig(cost, rate)
	require.NoError(t, err)
	require.Equal(t, 0, back.Cmp(amount))

	_, err = ledger.EtherCostBig(big.NewInt(-1), rate)
	require.Error(t, err)
	_, err = ledger.EtherCostBig(nil, rate)
	require.Error(t, err)
}
