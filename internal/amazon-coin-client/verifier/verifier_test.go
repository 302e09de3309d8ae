package verifier

import (
	"context"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/chains"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/chains/localchain"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/constants"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/deployments"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/ledger"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/networks"
)

var (
	owner     = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	simulator = common.HexToAddress("0x00000000000000000000000000000000000000cc")
)

type clientMap map[uint64]chains.Client

func (m clientMap) ClientFor(ctx context.Context, chainID uint64) (chains.Client, error) {
	c, ok := m[chainID]
	if !ok {
		return nil, errors.Newf("no client for chain %d", chainID)
	}
	return c, nil
}

type recorder struct {
	mu     sync.Mutex
	counts map[string]int
}

func (r *recorder) IncCounter(name string, labels map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.counts == nil {
		r.counts = map[string]int{}
	}
	r.counts[name+"/"+labels["result"]+"/"+labels["network"]]++
}

func (r *recorder) ObserveLatency(string, time.Duration, map[string]string) {}

func (r *recorder) count(key string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[key]
}

// once runs fn a single time so injected failures stay failures.
func once(ctx context.Context, _ string, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func entries(names ...string) []networks.Entry {
	var out []networks.Entry
	for _, e := range networks.DefaultEntries() {
		for _, n := range names {
			if e.Name == n {
				out = append(out, e)
			}
		}
	}
	return out
}

type env struct {
	registry *networks.Registry
	chains   map[uint64]*localchain.Chain
	ledgers  map[uint64]*ledger.Ledger
	metrics  *recorder
	verifier *Verifier
}

// newEnv deploys a ledger for every deployed entry except those listed in
// empty, which get a chain without code.
func newEnv(t *testing.T, cfg Config, empty ...uint64) env {
	t.Helper()
	reg, err := networks.NewRegistry(networks.Config{
		Entries:         entries("mainnet", "sepolia", "hardhat"),
		FallbackChainID: constants.ChainIDHardhat,
	})
	require.NoError(t, err)

	e := env{registry: reg, chains: map[uint64]*localchain.Chain{}, ledgers: map[uint64]*ledger.Ledger{}, metrics: &recorder{}}
	clients := clientMap{}
	for _, entry := range reg.Deployed() {
		chain, err := localchain.New(entry.ChainID)
		require.NoError(t, err)
		chain.Fund(simulator, big.NewInt(1e18))
		e.chains[entry.ChainID] = chain
		clients[entry.ChainID] = chain

		skip := false
		for _, id := range empty {
			skip = skip || id == entry.ChainID
		}
		if skip {
			continue
		}
		led, err := ledger.New(ledger.DefaultConfig(owner))
		require.NoError(t, err)
		chain.Deploy(entry.Contract, led)
		e.ledgers[entry.ChainID] = led
	}

	cfg.SimulateFrom = simulator
	e.verifier, err = New(cfg, Deps{Registry: reg, Clients: clients, Metrics: e.metrics})
	require.NoError(t, err)
	return e
}

func TestVerifyAllHealthy(t *testing.T) {
	e := newEnv(t, Config{})
	report := e.verifier.VerifyAll(context.Background())

	require.Equal(t, Summary{TotalNetworks: 3, DeployedContracts: 2, FailedVerifications: 0, OverallStatus: StatusHealthy}, report.Summary)
	require.Empty(t, report.Recommendations)
	require.Equal(t, []Skipped{{ChainID: constants.ChainIDEthereumMainnet, Network: "mainnet", Reason: "contract not deployed"}}, report.Skipped)

	require.Len(t, report.Networks, 2)
	hardhat := report.Networks[0]
	require.Equal(t, "hardhat", hardhat.Network)
	require.True(t, hardhat.Verified())
	require.Empty(t, hardhat.Mismatches)
	require.Nil(t, hardhat.Simulation)
	require.Equal(t, "http://localhost:8545/address/0x5FbDB2315678afecb367f032d93F642f64180aa3", hardhat.Explorer)

	want := map[string]string{
		FieldName:           "Amazon Coin",
		FieldSymbol:         "AC",
		FieldDecimals:       "18",
		FieldTotalSupply:    "100000000",
		FieldMaxSupply:      "1000000000",
		FieldExchangeRate:   "100000000000000",
		FieldMintingEnabled: "true",
	}
	for field, value := range want {
		assert.Equal(t, FieldResult{OK: true, Value: value}, hardhat.Fields[field], field)
	}
	require.True(t, hardhat.State.MintingEnabled)
	require.Equal(t, 1, e.metrics.count("verifications/verified/hardhat"))
	require.Equal(t, 1, e.metrics.count("verifications/verified/sepolia"))
}

type panicClients struct{ t *testing.T }

func (p panicClients) ClientFor(context.Context, uint64) (chains.Client, error) {
	p.t.Fatal("sentinel entries must not be read")
	return nil, nil
}

func TestSentinelEntryMakesNoReads(t *testing.T) {
	reg := networks.DefaultRegistry()
	rec := &recorder{}
	v, err := New(Config{}, Deps{Registry: reg, Clients: panicClients{t: t}, Metrics: rec})
	require.NoError(t, err)

	mainnet, ok := reg.Lookup(constants.ChainIDEthereumMainnet)
	require.True(t, ok)
	res := v.VerifyNetwork(context.Background(), mainnet)

	require.False(t, res.IsDeployed)
	require.Equal(t, "contract not deployed", res.Error)
	require.Nil(t, res.Fields)
	require.False(t, res.Verified())
	require.Equal(t, 1, rec.count("verifications/skipped/mainnet"))
}

func TestMissingCodeFailsVerification(t *testing.T) {
	e := newEnv(t, Config{}, constants.ChainIDSepolia)
	report := e.verifier.VerifyAll(context.Background())

	sepolia := report.Networks[1]
	require.Equal(t, "sepolia", sepolia.Network)
	require.True(t, sepolia.IsDeployed)
	require.False(t, sepolia.HasCode)
	require.Equal(t, "contract not found at address", sepolia.Error)
	require.Nil(t, sepolia.Fields)

	require.Equal(t, Summary{TotalNetworks: 3, DeployedContracts: 1, FailedVerifications: 1, OverallStatus: StatusIssuesDetected}, report.Summary)
	require.Equal(t, []string{"Some contracts failed verification. Check network connectivity and contract addresses."}, report.Recommendations)
	require.Equal(t, 1, e.metrics.count("verifications/failed/sepolia"))
}

func TestPartialFieldFailureIsIsolated(t *testing.T) {
	e := newEnv(t, Config{Retrier: once})
	e.chains[constants.ChainIDHardhat].FailMethod("symbol", errors.New("rpc unavailable"))
	e.chains[constants.ChainIDHardhat].FailMethod("MAX_SUPPLY", errors.New("rpc unavailable"))

	hardhat, _ := e.registry.Lookup(constants.ChainIDHardhat)
	res := e.verifier.VerifyNetwork(context.Background(), hardhat)

	require.True(t, res.HasCode)
	require.Empty(t, res.Error)
	require.False(t, res.Verified())
	require.Equal(t, []string{FieldSymbol, FieldMaxSupply}, res.FailedFields())

	symbol := res.Fields[FieldSymbol]
	require.False(t, symbol.OK)
	require.Equal(t, "Failed", symbol.Value)
	require.Contains(t, symbol.Error, "rpc unavailable")
	require.Equal(t, "0", res.Fields[FieldMaxSupply].Value)

	require.Equal(t, FieldResult{OK: true, Value: "Amazon Coin"}, res.Fields[FieldName])
	require.True(t, res.Fields[FieldMintingEnabled].OK)
	// a failed symbol read is not a mismatch
	require.Empty(t, res.Mismatches)
}

func TestMismatchAndMintingRecommendations(t *testing.T) {
	e := newEnv(t, Config{})
	led := e.ledgers[constants.ChainIDSepolia]
	require.NoError(t, led.SetMintingEnabled(owner, false))
	require.NoError(t, led.SetExchangeRate(owner, uint256.NewInt(2e14)))

	report := e.verifier.VerifyAll(context.Background())
	require.Equal(t, StatusIssuesDetected, report.Summary.OverallStatus)
	require.Equal(t, 2, report.Summary.DeployedContracts)
	require.Equal(t, []string{
		"Minting is disabled on 1 network(s). Enable minting if needed.",
		"Configuration mismatch on 1 network(s). Check exchange rate and token metadata.",
	}, report.Recommendations)

	sepolia := report.Networks[1]
	require.Equal(t, "sepolia", sepolia.Network)
	require.Equal(t, []Mismatch{{Field: FieldExchangeRate, Expected: "100000000000000", Actual: "200000000000000"}}, sepolia.Mismatches)
	require.Equal(t, FieldResult{OK: true, Value: "false"}, sepolia.Fields[FieldMintingEnabled])
	require.Equal(t, 1, e.metrics.count("verifications/mismatch/sepolia"))
}

func TestExpectedMetadataMismatch(t *testing.T) {
	e := newEnv(t, Config{Expected: Expected{Name: "Other Coin", Symbol: "AC", Decimals: 6}})
	hardhat, _ := e.registry.Lookup(constants.ChainIDHardhat)

	res := e.verifier.VerifyNetwork(context.Background(), hardhat)
	require.Equal(t, []Mismatch{
		{Field: FieldName, Expected: "Other Coin", Actual: "Amazon Coin"},
		{Field: FieldDecimals, Expected: "6", Actual: "18"},
	}, res.Mismatches)
}

func TestSimulateMintNeverMutates(t *testing.T) {
	e := newEnv(t, Config{SimulateMint: true})
	hardhat, _ := e.registry.Lookup(constants.ChainIDHardhat)
	led := e.ledgers[constants.ChainIDHardhat]
	supply := led.TotalSupply().Dec()

	res := e.verifier.VerifyNetwork(context.Background(), hardhat)
	require.NotNil(t, res.Simulation)
	require.True(t, res.Simulation.OK, res.Simulation.Error)
	require.Equal(t, "1", res.Simulation.Amount)
	require.Equal(t, "0.0001", res.Simulation.Cost)
	require.NotZero(t, res.Simulation.GasEstimate)

	require.Equal(t, supply, led.TotalSupply().Dec())
	require.True(t, led.TotalNativeCollected().IsZero())
}

func TestSimulateMintCostMatchesLedgerPricing(t *testing.T) {
	e := newEnv(t, Config{})
	hardhat, _ := e.registry.Lookup(constants.ChainIDHardhat)
	rate, err := hardhat.PriceInBaseUnits()
	require.NoError(t, err)

	// not a whole number of cost units, so the division truncates
	amount, ok := new(big.Int).SetString("12345678901234567", 10)
	require.True(t, ok)
	want, err := ledger.EtherCostBig(amount, rate)
	require.NoError(t, err)
	require.Equal(t, "1234567890123", want.String())

	sim := e.verifier.SimulateMint(context.Background(), hardhat, amount)
	require.True(t, sim.OK, sim.Error)
	require.Equal(t, "0.000001234567890123", sim.Cost)
}

func TestSimulateMintReportsRevert(t *testing.T) {
	e := newEnv(t, Config{})
	hardhat, _ := e.registry.Lookup(constants.ChainIDHardhat)
	require.NoError(t, e.ledgers[constants.ChainIDHardhat].SetMintingEnabled(owner, false))

	sim := e.verifier.SimulateMint(context.Background(), hardhat, big.NewInt(1e18))
	require.False(t, sim.OK)
	require.Contains(t, sim.Error, ledger.ErrMintingDisabled.Error())

	mainnet, _ := e.registry.Lookup(constants.ChainIDEthereumMainnet)
	sim = e.verifier.SimulateMint(context.Background(), mainnet, big.NewInt(1e18))
	require.Equal(t, "contract not deployed", sim.Error)

	sim = e.verifier.SimulateMint(context.Background(), hardhat, big.NewInt(0))
	require.Equal(t, "amount must be positive", sim.Error)
}

func TestBackoffRetrierRecovers(t *testing.T) {
	retrier := BackoffRetrier(time.Millisecond, 5*time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	calls := 0
	err := retrier(ctx, "flaky read", func(ctx context.Context) error {
		calls++
		if calls == 1 {
			return errors.New("connection reset")
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 2, calls)
}

func TestNewRequiresDeps(t *testing.T) {
	_, err := New(Config{}, Deps{Clients: clientMap{}})
	require.ErrorContains(t, err, "registry is required")
	_, err = New(Config{}, Deps{Registry: networks.DefaultRegistry()})
	require.ErrorContains(t, err, "client source is required")
}

func TestValidateDeployments(t *testing.T) {
	e := newEnv(t, Config{})
	other := common.HexToAddress("0x00000000000000000000000000000000000000dd")
	info := &deployments.ContractInfo{Name: "Amazon Coin", Symbol: "AC", Decimals: 18}
	records := map[string]deployments.Record{
		"hardhat": {
			Network:         "hardhat",
			ChainID:         constants.ChainIDHardhat,
			ContractAddress: "0x5FbDB2315678afecb367f032d93F642f64180aa3",
			ContractInfo:    info,
		},
		"sepolia": {
			Network:         "sepolia",
			ChainID:         constants.ChainIDHardhat,
			ContractAddress: other.Hex(),
		},
	}

	issues := e.verifier.ValidateDeployments(records)
	require.Equal(t, []DeploymentIssue{
		{Network: "sepolia", Problem: "record chain id does not match the network"},
		{Network: "sepolia", Problem: "record address " + other.Hex() + " differs from configured 0x1412D9A28bAAC801777581C28060B2C821e61823"},
		{Network: "sepolia", Problem: "record has no contract info"},
	}, issues)

	delete(records, "hardhat")
	issues = e.verifier.ValidateDeployments(records)
	require.Contains(t, issues, DeploymentIssue{Network: "hardhat", Problem: "no deployment record"})
}
