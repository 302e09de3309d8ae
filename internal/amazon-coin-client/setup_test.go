package amazon_coin_client

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/amazoncoin-io/amazon-coin-client/cmd/amazon-coin-client/config"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/chains"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/chains/localchain"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/constants"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/history"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/ledger"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/purchase"
)

var hardhatContract = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")

func offline(ctx context.Context, url string) (chains.Client, error) {
	return nil, errors.Newf("offline: %s", url)
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := fmt.Sprintf("app:\n  deploymentsDir: %q\nverifier:\n  readTimeoutSeconds: 1\n  retryInitialDelayMs: 1\n  retryMaxDelayMs: 5\n", filepath.Join(dir, "deployments"))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	return cfg
}

func TestAppPurchasesOnLocalChain(t *testing.T) {
	ctx := context.Background()
	owner := common.HexToAddress("0x00000000000000000000000000000000000000aa")

	chain, err := localchain.New(constants.ChainIDHardhat)
	require.NoError(t, err)
	led, err := ledger.New(ledger.DefaultConfig(owner))
	require.NoError(t, err)
	chain.Deploy(hardhatContract, led)

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	buyer := crypto.PubkeyToAddress(key.PublicKey)
	chain.Fund(buyer, big.NewInt(1e18))

	app, err := NewApp(ctx, testConfig(t), Options{
		Signer:  key,
		Dial:    offline,
		Clients: map[uint64]chains.Client{constants.ChainIDHardhat: chain},
		History: history.NewMemoryStore(),
	})
	require.NoError(t, err)
	defer func() { require.NoError(t, app.Close()) }()
	require.Equal(t, buyer, app.Buyer())

	amount := new(big.Int).Mul(big.NewInt(1000), big.NewInt(1e18))
	attempt, err := app.Router.Purchase(ctx, purchase.Request{ChainID: constants.ChainIDHardhat, Amount: amount, Buyer: buyer})
	require.NoError(t, err)
	require.Equal(t, purchase.StateSucceeded, attempt.State())
	require.Equal(t, amount.String(), led.BalanceOf(buyer).Dec())

	recs, err := app.History.List(ctx, history.Filter{Buyer: buyer})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, history.StatusSuccess, recs[0].Status)
}

func TestAppVerifiesReachableNetworks(t *testing.T) {
	ctx := context.Background()
	chain, err := localchain.New(constants.ChainIDHardhat)
	require.NoError(t, err)
	led, err := ledger.New(ledger.DefaultConfig(common.HexToAddress("0x00000000000000000000000000000000000000aa")))
	require.NoError(t, err)
	chain.Deploy(hardhatContract, led)

	app, err := NewApp(ctx, testConfig(t), Options{
		Dial:    offline,
		Clients: map[uint64]chains.Client{constants.ChainIDHardhat: chain},
		History: history.NewMemoryStore(),
	})
	require.NoError(t, err)
	defer func() { require.NoError(t, app.Close()) }()

	report := app.Verifier.VerifyAll(ctx)
	require.Equal(t, 5, report.Summary.TotalNetworks)
	require.Equal(t, 1, report.Summary.DeployedContracts)
	// sepolia and hedera testnet are unreachable
	require.Equal(t, 2, report.Summary.FailedVerifications)
	require.Len(t, report.Skipped, 2)

	for _, n := range report.Networks {
		if n.ChainID == constants.ChainIDHardhat {
			require.True(t, n.Verified())
			continue
		}
		require.Contains(t, n.Error, "offline")
	}
}

func TestAppWithoutSignerCannotBuy(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig(t), Options{Dial: offline, History: history.NewMemoryStore()})
	require.NoError(t, err)
	defer func() { require.NoError(t, app.Close()) }()

	_, err = app.relayClient(context.Background(), "testnet")
	require.ErrorContains(t, err, "no signer configured")
}
