package purchase

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/assets"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/chains"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/chains/localchain"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/hedera"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/history"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/ledger"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/networks"
)

const hardhat = 31337

var (
	owner       = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	hardhatAddr = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
)

func tokens(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), big.NewInt(1e18))
}

type singleChain struct {
	client chains.Client
}

func (s singleChain) ClientFor(ctx context.Context, chainID uint64) (chains.Client, error) {
	if chainID != hardhat {
		return nil, errors.Newf("unknown chainID %d", chainID)
	}
	return s.client, nil
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
	r.counts[name+"/"+labels["state"]+"/"+labels["network"]]++
}

func (r *recorder) ObserveLatency(string, time.Duration, map[string]string) {}

func (r *recorder) count(key string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[key]
}

type localEnv struct {
	chain   *localchain.Chain
	led     *ledger.Ledger
	key     *ecdsa.PrivateKey
	buyer   common.Address
	history *history.MemoryStore
	cache   *assets.Cache
	metrics *recorder
	router  *Router
}

func newLocalEnv(t *testing.T, cfg Config, ledgerCfg ledger.Config) localEnv {
	t.Helper()
	chain, err := localchain.New(hardhat)
	require.NoError(t, err)
	led, err := ledger.New(ledgerCfg)
	require.NoError(t, err)
	chain.Deploy(hardhatAddr, led)

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	buyer := crypto.PubkeyToAddress(key.PublicKey)
	chain.Fund(buyer, tokens(1))

	clients := singleChain{client: chain}
	env := localEnv{
		chain:   chain,
		led:     led,
		key:     key,
		buyer:   buyer,
		history: history.NewMemoryStore(),
		cache:   assets.NewCache(assets.NewReader(clients)),
		metrics: &recorder{},
	}
	env.router, err = NewRouter(cfg, Deps{
		Registry: networks.DefaultRegistry(),
		EVM:      NewEVMSubmitter(clients, KeyTransactor(key)),
		History:  env.history,
		Balances: env.cache,
		Metrics:  env.metrics,
	})
	require.NoError(t, err)
	return env
}

func TestPurchaseSucceedsOnEVM(t *testing.T) {
	env := newLocalEnv(t, Config{}, ledger.DefaultConfig(owner))
	ctx := context.Background()

	a, err := env.router.Purchase(ctx, Request{
		ChainID:       hardhat,
		Amount:        tokens(1000),
		Buyer:         env.buyer,
		WalletChainID: hardhat,
	})
	require.NoError(t, err)
	require.Equal(t, StateSucceeded, a.State())
	require.Equal(t,
		[]State{StateIdle, StateValidating, StateSubmitting, StateConfirming, StateSucceeded},
		a.States(),
	)
	require.Equal(t, DispatchEVM, a.Dispatch().Kind())
	require.Equal(t, "100000000000000000", a.Payment().String())
	require.NotNil(t, a.Receipt())
	require.Equal(t, tokens(1000).String(), a.Receipt().Minted.String())

	require.Equal(t, tokens(1000).String(), env.led.BalanceOf(env.buyer).Dec())
	require.Equal(t, "100000000000000000", env.led.TotalNativeCollected().Dec())

	rec, err := env.history.Get(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, history.StatusSuccess, rec.Status)
	require.Equal(t, string(StateSucceeded), rec.State)
	require.Equal(t, a.TxID(), rec.TxID)
	require.Equal(t, "evm", rec.Dispatch)
	require.Equal(t, tokens(1000).String(), rec.Minted.String())

	bal, ok := env.cache.Get(hardhat, env.buyer)
	require.True(t, ok)
	require.Equal(t, tokens(1000).String(), bal.Token.String())
	require.Equal(t, "900000000000000000", bal.Native.String())

	require.Equal(t, 1, env.metrics.count("purchases/succeeded/hardhat"))
}

func TestOnChainRepriceRejectsStalePayment(t *testing.T) {
	env := newLocalEnv(t, Config{}, ledger.DefaultConfig(owner))
	ctx := context.Background()
	req := Request{ChainID: hardhat, Amount: tokens(1000), Buyer: env.buyer}

	first, err := env.router.Purchase(ctx, req)
	require.NoError(t, err)

	// the registry still prices at the configured rate, so the doubled
	// on-chain rate rejects the client-side payment
	require.NoError(t, env.led.SetExchangeRate(owner, uint256.NewInt(2e14)))
	second, err := env.router.Purchase(ctx, req)
	require.ErrorContains(t, err, ledger.ErrIncorrectPayment.Error())
	require.Equal(t, StateFailed, second.State())
	require.Equal(t, first.Payment().String(), second.Payment().String())
	require.Equal(t, tokens(1000).String(), env.led.BalanceOf(env.buyer).Dec())
}

func TestPurchaseValidationFailures(t *testing.T) {
	unpriced := networks.DefaultEntries()
	for i := range unpriced {
		if unpriced[i].ChainID == hardhat {
			unpriced[i].TokenPrice = decimal.Zero
		}
	}
	unpricedRegistry, err := networks.NewRegistry(networks.Config{Entries: unpriced})
	require.NoError(t, err)

	tests := []struct {
		name     string
		registry Resolver
		req      Request
		want     error
		kind     Kind
	}{
		{"missing amount", networks.DefaultRegistry(), Request{ChainID: hardhat}, ErrInvalidAmount, KindInvalidAmount},
		{"zero amount", networks.DefaultRegistry(), Request{ChainID: hardhat, Amount: new(big.Int)}, ErrInvalidAmount, KindInvalidAmount},
		{"negative amount", networks.DefaultRegistry(), Request{ChainID: hardhat, Amount: big.NewInt(-1)}, ErrInvalidAmount, KindInvalidAmount},
		{"wallet on other chain", networks.DefaultRegistry(), Request{ChainID: hardhat, Amount: tokens(1), WalletChainID: 1}, ErrWrongNetwork, KindWrongNetwork},
		{"sentinel contract", networks.DefaultRegistry(), Request{ChainID: 295, Amount: tokens(1)}, ErrContractNotDeployed, KindNotDeployed},
		{"missing pricing", unpricedRegistry, Request{ChainID: hardhat, Amount: tokens(1)}, ErrPricingUnavailable, KindPricingUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evm := &fakeSubmitter{}
			store := history.NewMemoryStore()
			r, err := NewRouter(Config{}, Deps{Registry: tt.registry, EVM: evm, History: store})
			require.NoError(t, err)

			a, err := r.Purchase(context.Background(), tt.req)
			require.ErrorIs(t, err, tt.want)
			require.Equal(t, tt.kind, Classify(err))
			require.Equal(t, []State{StateIdle, StateValidating, StateFailed}, a.States())
			require.Equal(t, err, a.Err())
			require.Zero(t, evm.submits)

			recs, err := store.List(context.Background(), history.Filter{})
			require.NoError(t, err)
			require.Empty(t, recs)
		})
	}
}

type fakeBalances struct {
	native    *big.Int
	refreshes int
}

func (f *fakeBalances) Get(chainID uint64, account common.Address) (assets.Balances, bool) {
	return assets.Balances{ChainID: chainID, Account: account, Native: f.native}, true
}

func (f *fakeBalances) Refresh(ctx context.Context, entry networks.Entry, account common.Address) (assets.Balances, error) {
	f.refreshes++
	return assets.Balances{}, errors.New("rpc down")
}

func TestPrecheckRejectsShortBalance(t *testing.T) {
	evm := &fakeSubmitter{}
	r, err := NewRouter(Config{PrecheckBalance: true}, Deps{
		Registry: networks.DefaultRegistry(),
		EVM:      evm,
		Balances: &fakeBalances{native: big.NewInt(1)},
	})
	require.NoError(t, err)

	a, err := r.Purchase(context.Background(), Request{ChainID: hardhat, Amount: tokens(1000), Buyer: owner})
	require.ErrorIs(t, err, ErrInsufficientFunds)
	require.ErrorContains(t, err, "insufficient funds: need 0.1 ETH")
	require.Equal(t, StateFailed, a.State())
	require.Zero(t, evm.submits)
}

func TestRefreshFailureDoesNotFailPurchase(t *testing.T) {
	balances := &fakeBalances{native: tokens(10)}
	r, err := NewRouter(Config{PrecheckBalance: true}, Deps{
		Registry: networks.DefaultRegistry(),
		EVM:      &fakeSubmitter{},
		Balances: balances,
	})
	require.NoError(t, err)

	a, err := r.Purchase(context.Background(), Request{ChainID: hardhat, Amount: tokens(1000), Buyer: owner})
	require.NoError(t, err)
	require.Equal(t, StateSucceeded, a.State())
	require.Equal(t, 1, balances.refreshes)
}

func TestConfirmationTimeoutFailsWithoutResubmitting(t *testing.T) {
	env := newLocalEnv(t, Config{ConfirmationTimeout: 50 * time.Millisecond}, ledger.DefaultConfig(owner))
	env.chain.HoldReceipts(true)
	ctx := context.Background()

	a, err := env.router.Purchase(ctx, Request{ChainID: hardhat, Amount: tokens(1000), Buyer: env.buyer})
	require.ErrorIs(t, err, ErrConfirmationTimeout)
	require.EqualError(t, err, "confirmation timed out; transaction "+a.TxID()+" may still complete")
	require.Equal(t, KindConfirmationTimeout, Classify(err))
	require.Equal(t,
		[]State{StateIdle, StateValidating, StateSubmitting, StateConfirming, StateFailed},
		a.States(),
	)

	nonce, err := env.chain.PendingNonceAt(ctx, env.buyer)
	require.NoError(t, err)
	require.Equal(t, uint64(1), nonce)

	rec, err := env.history.Get(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, history.StatusFailed, rec.Status)
	require.Equal(t, a.TxID(), rec.TxID)
	require.Contains(t, rec.Error, "may still complete")

	_, cached := env.cache.Get(hardhat, env.buyer)
	require.False(t, cached)
	require.Equal(t, 1, env.metrics.count("purchases/failed/hardhat"))
}

func TestContractRejectionSurfacesReason(t *testing.T) {
	env := newLocalEnv(t, Config{}, ledger.DefaultConfig(owner))
	require.NoError(t, env.led.SetMintingEnabled(owner, false))
	ctx := context.Background()

	a, purchaseErr := env.router.Purchase(ctx, Request{ChainID: hardhat, Amount: tokens(1000), Buyer: env.buyer})
	require.ErrorContains(t, purchaseErr, ledger.ErrMintingDisabled.Error())
	require.Equal(t, KindRejected, Classify(purchaseErr))
	require.Equal(t, []State{StateIdle, StateValidating, StateSubmitting, StateFailed}, a.States())

	rec, err := env.history.Get(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, history.StatusFailed, rec.Status)
	require.Empty(t, rec.TxID)
	require.Equal(t, purchaseErr.Error(), rec.Error)
}

func TestSupplyCapIsClassified(t *testing.T) {
	cfg := ledger.DefaultConfig(owner)
	cfg.MaxSupply = uint256.MustFromBig(tokens(1100))
	env := newLocalEnv(t, Config{}, cfg)

	_, err := env.router.Purchase(context.Background(), Request{ChainID: hardhat, Amount: tokens(1000), Buyer: env.buyer})
	require.ErrorIs(t, err, ErrExceedsSupplyCap)
	require.Equal(t, KindExceedsSupplyCap, Classify(err))
}

func TestInsufficientFundsFromNode(t *testing.T) {
	env := newLocalEnv(t, Config{}, ledger.DefaultConfig(owner))

	_, err := env.router.Purchase(context.Background(), Request{ChainID: hardhat, Amount: tokens(20_000), Buyer: env.buyer})
	require.ErrorIs(t, err, ErrInsufficientFunds)
}

func TestQuote(t *testing.T) {
	r, err := NewRouter(Config{}, Deps{Registry: networks.DefaultRegistry()})
	require.NoError(t, err)

	q, err := r.Quote(296, tokens(1000))
	require.NoError(t, err)
	require.False(t, q.FellBack)
	require.Equal(t, tokens(100).String(), q.Cost.String())
	require.Equal(t, "100 HBAR", q.Display)

	q, err = r.Quote(5, tokens(1000))
	require.NoError(t, err)
	require.True(t, q.FellBack)
	require.Equal(t, uint64(296), q.Entry.ChainID)

	q, err = r.Quote(hardhat, big.NewInt(1))
	require.NoError(t, err)
	require.Equal(t, "0", q.Cost.String())

	_, err = r.Quote(hardhat, nil)
	require.ErrorIs(t, err, ErrInvalidAmount)
}

func TestConcurrentPurchasesProceedIndependently(t *testing.T) {
	led, err := ledger.New(ledger.DefaultConfig(owner))
	require.NoError(t, err)
	buyer := common.HexToAddress("0x00000000000000000000000000000000000000b1")
	r, err := NewRouter(Config{}, Deps{
		Registry: networks.DefaultRegistry(),
		EVM:      NewLocalSubmitter(buyer, map[uint64]*ledger.Ledger{hardhat: led}),
	})
	require.NoError(t, err)

	var wg sync.WaitGroup
	txs := make([]string, 8)
	for i := range txs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			a, err := r.Purchase(context.Background(), Request{ChainID: hardhat, Amount: tokens(1000), Buyer: buyer})
			assert.NoError(t, err)
			txs[i] = a.TxID()
		}(i)
	}
	wg.Wait()

	require.Equal(t, tokens(8000).String(), led.BalanceOf(buyer).Dec())
	seen := map[string]bool{}
	for _, tx := range txs {
		require.NotEmpty(t, tx)
		require.False(t, seen[tx])
		seen[tx] = true
	}
}

type fakeSubmitter struct {
	mu      sync.Mutex
	submits int
	last    Dispatch
	err     error
}

func (f *fakeSubmitter) Submit(ctx context.Context, d Dispatch) (Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submits++
	f.last = d
	if f.err != nil {
		return Submission{}, f.err
	}
	return Submission{TxID: "0xfeed"}, nil
}

func (f *fakeSubmitter) Confirm(ctx context.Context, s Submission) (Confirmation, error) {
	return Confirmation{TxID: s.TxID}, nil
}

type fakeHedera struct {
	calls   []hedera.ContractCall
	receipt hedera.Receipt
}

func (f *fakeHedera) ExecuteContract(ctx context.Context, call hedera.ContractCall) (hedera.Receipt, error) {
	f.calls = append(f.calls, call)
	return f.receipt, nil
}

func (f *fakeHedera) QueryBalance(ctx context.Context, account hedera.AccountID) (hedera.Balance, error) {
	return hedera.Balance{Account: account, Tinybars: new(big.Int)}, nil
}

type fixedContracts struct {
	id hedera.ContractID
}

func (f fixedContracts) ContractIDForEVMAddress(ctx context.Context, addr common.Address) (hedera.ContractID, error) {
	return f.id, nil
}

func newNativeRouter(t *testing.T, client *fakeHedera, evm Submitter) *Router {
	t.Helper()
	reg := hedera.NewNativeClientRegistry(nil)
	require.NoError(t, reg.Register(hedera.NetworkTestnet, client))
	native, err := NewNativeSubmitter(reg)
	require.NoError(t, err)

	r, err := NewRouter(Config{}, Deps{
		Registry:  networks.DefaultRegistry(),
		EVM:       evm,
		Native:    native,
		Contracts: fixedContracts{id: hedera.ContractID{Num: 5_432_101}},
	})
	require.NoError(t, err)
	return r
}

func TestNativeDispatchOnHedera(t *testing.T) {
	client := &fakeHedera{receipt: hedera.Receipt{TransactionID: "0.0.1234@1700000000.000000001", Status: hedera.StatusSuccess}}
	evm := &fakeSubmitter{}
	r := newNativeRouter(t, client, evm)

	a, err := r.Purchase(context.Background(), Request{ChainID: 296, Amount: tokens(1000), PreferNative: true})
	require.NoError(t, err)
	require.Equal(t, StateSucceeded, a.State())
	require.Equal(t, "0.0.1234@1700000000.000000001", a.TxID())
	require.Zero(t, evm.submits)

	nd, ok := a.Dispatch().(NativeDispatch)
	require.True(t, ok)
	require.Equal(t, "testnet", nd.Network)
	require.Equal(t, "0.0.5432101", nd.ContractID.String())

	require.Len(t, client.calls, 1)
	call := client.calls[0]
	require.Equal(t, "purchaseTokens", call.Function)
	require.Equal(t, uint64(300_000), call.Gas)
	require.Equal(t, "10000000000", call.PayableTinybars.String())
	require.Len(t, call.Params, 32)
	require.Equal(t, tokens(1000).String(), new(big.Int).SetBytes(call.Params).String())
}

func TestNativeFailureStatus(t *testing.T) {
	client := &fakeHedera{receipt: hedera.Receipt{TransactionID: "0.0.1234@1700000000.000000002", Status: hedera.StatusContractReverted}}
	r := newNativeRouter(t, client, &fakeSubmitter{})

	a, err := r.Purchase(context.Background(), Request{ChainID: 296, Amount: tokens(1000), PreferNative: true})
	require.EqualError(t, err, "hedera transaction 0.0.1234@1700000000.000000002 failed with status CONTRACT_REVERT_EXECUTED")
	require.Equal(t, KindRejected, Classify(err))
	require.Equal(t, StateFailed, a.State())
}

func TestHederaWithoutNativePreferenceUsesEVM(t *testing.T) {
	client := &fakeHedera{}
	evm := &fakeSubmitter{}
	r := newNativeRouter(t, client, evm)

	_, err := r.Purchase(context.Background(), Request{ChainID: 296, Amount: tokens(1000)})
	require.NoError(t, err)
	require.Equal(t, 1, evm.submits)
	require.Empty(t, client.calls)

	ed, ok := evm.last.(EvmDispatch)
	require.True(t, ok)
	require.Equal(t, tokens(100).String(), ed.Value.String())
}

func TestNativeRejectsFractionalTinybars(t *testing.T) {
	r := newNativeRouter(t, &fakeHedera{}, &fakeSubmitter{})

	_, err := r.Purchase(context.Background(), Request{ChainID: 296, Amount: big.NewInt(1_000_000_001), PreferNative: true})
	require.ErrorContains(t, err, "not a whole number of tinybars")
}
