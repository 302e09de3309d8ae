package utils

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestFormatUnits(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		maxFrac int32
		want    string
	}{
		{"whole token", "1000000000000000000", 6, "1"},
		{"fractional", "1234500000000000000", 6, "1.2345"},
		{"truncated", "1234567890000000000", 3, "1.234"},
		{"dust keeps all", "1", -1, "0.000000000000000001"},
		{"dust truncated", "1", 4, "0"},
		{"zero", "0", 4, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, ok := new(big.Int).SetString(tt.amount, 10)
			require.True(t, ok)
			require.Equal(t, tt.want, FormatUnits(amount, 18, tt.maxFrac))
		})
	}
	require.Equal(t, "0", FormatUnits(nil, 18, 2))
}

func TestParseUnits(t *testing.T) {
	got, err := ParseUnits("1000", 18)
	require.NoError(t, err)
	require.Equal(t, "1000000000000000000000", got.String())

	got, err = ParseUnits(" 0.0001 ", 18)
	require.NoError(t, err)
	require.Equal(t, "100000000000000", got.String())

	_, err = ParseUnits("0.0000000000000000001", 18)
	require.Error(t, err)
	_, err = ParseUnits("-1", 18)
	require.Error(t, err)
	_, err = ParseUnits("abc", 18)
	require.Error(t, err)
	_, err = ParseUnits("", 18)
	require.Error(t, err)

	got, err = DecimalToBaseUnits(decimal.RequireFromString("0.1"), 18)
	require.NoError(t, err)
	require.Equal(t, "100000000000000000", got.String())
}
