package chains

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	Client
	url    string
	closed atomic.Bool
}

func (f *fakeClient) Close() { f.closed.Store(true) }

func testChains() *AllChainsConfig {
	cfg := &AllChainsConfig{
		Networks: map[string]NetworkConfig{
			"Sepolia": {
				ChainID: 11155111,
				Class:   ClassEVM,
				RPCs: []RPC{
					{Name: "Infura", URL: "https://sepolia.infura.io/v3/key"},
					{Name: "Public", URL: "https://rpc.sepolia.org"},
				},
			},
			"hederaTestnet": {
				ChainID: 296,
				Class:   ClassHedera,
				RPCs:    []RPC{{Name: "Hashio", URL: "https://testnet.hashio.io/api"}},
			},
			"empty": {ChainID: 31337, Class: ClassEVM},
		},
	}
	cfg.Normalize()
	return cfg
}

func TestNormalize(t *testing.T) {
	cfg := testChains()
	n := cfg.Networks["Sepolia"]
	require.Equal(t, "sepolia", n.Name)
	require.Equal(t, "0xaa36a7", n.ChainIDHex)
	require.Equal(t, "0x128", cfg.Networks["hederaTestnet"].ChainIDHex)
}

func TestResolvePrefersNamedRPC(t *testing.T) {
	reg, err := NewClientRegistry(ChainConfig{Chains: testChains(), PreferredRPCName: "public"})
	require.NoError(t, err)

	resolved, err := reg.ResolveByChainID(11155111)
	require.NoError(t, err)
	require.Equal(t, "Public", resolved.RPCName)
	require.Equal(t, "https://rpc.sepolia.org", resolved.URL)

	resolved, err = reg.ResolveByChainIDHex("0x128")
	require.NoError(t, err)
	require.Equal(t, "Hashio", resolved.RPCName)

	_, err = reg.ResolveByChainID(31337)
	require.ErrorContains(t, err, "no RPCs configured")
	_, err = reg.ResolveByChainID(5)
	require.ErrorContains(t, err, "unknown chainID 5")
	_, err = reg.ResolveByChainID(0)
	require.Error(t, err)
}

func TestNewClientRegistryRejectsDuplicateChainIDs(t *testing.T) {
	cfg := testChains()
	cfg.Networks["other"] = NetworkConfig{ChainID: 296}
	_, err := NewClientRegistry(ChainConfig{Chains: cfg})
	require.ErrorContains(t, err, "configured twice")

	_, err = NewClientRegistry(ChainConfig{})
	require.Error(t, err)
}

func TestClientForCachesPerChain(t *testing.T) {
	var dials atomic.Int32
	reg, err := NewClientRegistry(ChainConfig{
		Chains: testChains(),
		Dial: func(ctx context.Context, url string) (Client, error) {
			dials.Add(1)
			return &fakeClient{url: url}, nil
		},
	})
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]Client, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := reg.ClientFor(context.Background(), 296)
			assert.NoError(t, err)
			results[i] = c
		}(i)
	}
	wg.Wait()

	for _, c := range results {
		require.Same(t, results[0], c)
	}
	// racing dialers are closed, never handed out
	require.GreaterOrEqual(t, dials.Load(), int32(1))

	sepolia, err := reg.ClientFor(context.Background(), 11155111)
	require.NoError(t, err)
	require.NotSame(t, results[0], sepolia)
	require.Equal(t, "https://sepolia.infura.io/v3/key", sepolia.(*fakeClient).url)

	require.NoError(t, reg.Close())
	require.True(t, sepolia.(*fakeClient).closed.Load())
	require.True(t, results[0].(*fakeClient).closed.Load())
}

func TestClientForDialError(t *testing.T) {
	reg, err := NewClientRegistry(ChainConfig{
		Chains: testChains(),
		Dial: func(ctx context.Context, url string) (Client, error) {
			return nil, errors.New("connection refused")
		},
	})
	require.NoError(t, err)

	_, err = reg.ClientFor(context.Background(), 296)
	require.ErrorContains(t, err, "connection refused")
	require.ErrorContains(t, err, "hederaTestnet")
}

func TestRegisterReplacesClient(t *testing.T) {
	reg, err := NewClientRegistry(ChainConfig{Chains: testChains()})
	require.NoError(t, err)

	first := &fakeClient{}
	second := &fakeClient{}
	reg.Register(31337, first)
	reg.Register(31337, second)
	require.True(t, first.closed.Load())

	got, err := reg.ClientFor(context.Background(), 31337)
	require.NoError(t, err)
	require.Same(t, second, got)
}
