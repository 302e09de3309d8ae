package amazoncoin

import (
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/require"
)

func TestABISelectors(t *testing.T) {
	parsed, err := AmazonCoinMetaData.GetAbi()
	require.NoError(t, err)

	methods := map[string]string{
		"purchaseTokens":     "0x7b97008d",
		"calculateEtherCost": "0xc50822da",
		"MAX_SUPPLY":         "0x32cb6b0c",
		"mintingEnabled":     "0x9fd6db12",
		"transfer":           "0xa9059cbb",
	}
	for name, id := range methods {
		m, ok := parsed.Methods[name]
		require.True(t, ok, name)
		require.Equal(t, id, hexutil.Encode(m.ID), name)
	}
	require.True(t, parsed.Methods["purchaseTokens"].IsPayable())
	require.True(t, parsed.HasReceive())

	ev, ok := parsed.Events["TokensPurchased"]
	require.True(t, ok)
	require.Equal(t, "0x8fafebcaf9d154343dad25669bfa277f4fbacd7ac6b0c4fed522580e040a0f33", ev.ID.Hex())
}
