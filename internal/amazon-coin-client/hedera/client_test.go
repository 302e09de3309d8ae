package hedera

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

type stubClient struct{ network string }

func (s *stubClient) ExecuteContract(ctx context.Context, call ContractCall) (Receipt, error) {
	return Receipt{Status: StatusSuccess}, nil
}

func (s *stubClient) QueryBalance(ctx context.Context, account AccountID) (Balance, error) {
	return Balance{Account: account}, nil
}

func TestNativeClientRegistryCachesPerNetwork(t *testing.T) {
	var created atomic.Int32
	reg := NewNativeClientRegistry(func(ctx context.Context, network string) (Client, error) {
		created.Add(1)
		return &stubClient{network: network}, nil
	})
	ctx := context.Background()

	a, err := reg.ClientFor(ctx, "Testnet")
	require.NoError(t, err)
	b, err := reg.ClientFor(ctx, "testnet")
	require.NoError(t, err)
	require.Same(t, a, b)

	m, err := reg.ClientFor(ctx, "mainnet")
	require.NoError(t, err)
	require.Equal(t, "mainnet", m.(*stubClient).network)
	require.Equal(t, int32(2), created.Load())

	_, err = reg.ClientFor(ctx, "devnet")
	require.ErrorContains(t, err, "unsupported hedera network")
}

func TestNativeClientRegistryFactoryError(t *testing.T) {
	reg := NewNativeClientRegistry(func(ctx context.Context, network string) (Client, error) {
		return nil, errors.New("operator key missing")
	})
	_, err := reg.ClientFor(context.Background(), "testnet")
	require.ErrorContains(t, err, "operator key missing")

	empty := NewNativeClientRegistry(nil)
	require.NoError(t, empty.Register("previewnet", &stubClient{}))
	_, err = empty.ClientFor(context.Background(), "previewnet")
	require.NoError(t, err)
	_, err = empty.ClientFor(context.Background(), "testnet")
	require.Error(t, err)
}

func TestReceiptSucceeded(t *testing.T) {
	require.True(t, Receipt{Status: StatusSuccess}.Succeeded())
	require.False(t, Receipt{Status: StatusContractReverted}.Succeeded())
}
