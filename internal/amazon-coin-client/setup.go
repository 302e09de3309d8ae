// setup.go
package amazon_coin_client

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/quantumauth-io/quantum-go-utils/log"

	"github.com/amazoncoin-io/amazon-coin-client/cmd/amazon-coin-client/config"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/assets"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/chains"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/contracts/bindings/go/amazoncoin"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/deployments"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/hedera"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/history"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/metrics"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/networks"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/purchase"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/verifier"
)

const mirrorTimeout = 10 * time.Second

type BuildInfo struct {
	Version   string
	Commit    string
	BuildDate string
}

type Options struct {
	// Signer is required only for purchases.
	Signer  *ecdsa.PrivateKey
	Metrics metrics.Recorder
	// Dial overrides ethclient dialing.
	Dial chains.DialFunc
	// Clients are registered before anything dials, keyed by chain id.
	Clients map[uint64]chains.Client
	// History overrides the LevelDB store opened from config.
	History history.Store
}

type App struct {
	Config      *config.Config
	Registry    *networks.Registry
	Records     map[string]deployments.Record
	Deployments *deployments.Store
	Clients     *chains.ClientRegistry
	Native      *hedera.NativeClientRegistry
	Mirrors     map[string]*hedera.MirrorClient
	History     history.Store
	Assets      *assets.Reader
	Balances    *assets.Cache
	Router      *purchase.Router
	Verifier    *verifier.Verifier
	Metrics     metrics.Recorder

	signer *ecdsa.PrivateKey
}

func NewApp(ctx context.Context, cfg *config.Config, opts Options) (_ *App, err error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	app := &App{Config: cfg, Metrics: opts.Metrics, signer: opts.Signer}
	defer func() {
		if err != nil {
			_ = app.Close()
		}
	}()
	if app.Metrics == nil {
		app.Metrics = metrics.NoopRecorder{}
	}

	// ---- Deployment records + registry
	store, err := deployments.NewStore(cfg.App.DeploymentsDir)
	if err != nil {
		return nil, err
	}
	records, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	app.Deployments, app.Records = store, records

	app.Registry, err = networks.FromConfig(&cfg.AllChainsConfig, records)
	if err != nil {
		return nil, errors.Wrap(err, "network registry")
	}

	// ---- RPC clients
	app.Clients, err = chains.NewClientRegistry(chains.ChainConfig{
		Chains:           &cfg.AllChainsConfig,
		PreferredRPCName: cfg.PreferredRPC,
		Dial:             opts.Dial,
	})
	if err != nil {
		return nil, err
	}
	for id, c := range opts.Clients {
		app.Clients.Register(id, c)
	}

	// ---- Hedera
	app.Mirrors = make(map[string]*hedera.MirrorClient, len(cfg.Hedera.MirrorNodes))
	for network, url := range cfg.Hedera.MirrorNodes {
		app.Mirrors[network] = hedera.NewMirrorClient(url, &http.Client{Timeout: mirrorTimeout})
	}
	app.Native = hedera.NewNativeClientRegistry(app.relayClient)

	// ---- History
	app.History = opts.History
	if app.History == nil {
		path, err := cfg.ResolvedHistoryPath()
		if err != nil {
			return nil, err
		}
		db, err := history.OpenLevelDB(path)
		if err != nil {
			return nil, err
		}
		app.History = db
	}

	app.Assets = assets.NewReader(app.Clients)
	app.Balances = assets.NewCache(app.Assets)

	// ---- Purchase router
	var transactor purchase.TransactorFunc
	if opts.Signer != nil {
		transactor = purchase.KeyTransactor(opts.Signer)
	}
	native, err := purchase.NewNativeSubmitter(app.Native)
	if err != nil {
		return nil, err
	}
	app.Router, err = purchase.NewRouter(purchase.Config{
		ConfirmationTimeout: cfg.ConfirmationTimeout(),
		HederaGas:           cfg.Purchase.HederaGas,
		PrecheckBalance:     cfg.Purchase.PrecheckBalance,
	}, purchase.Deps{
		Registry:  app.Registry,
		EVM:       purchase.NewEVMSubmitter(app.Clients, transactor),
		Native:    native,
		Contracts: mirrorContracts(app.Mirrors),
		History:   app.History,
		Balances:  app.Balances,
		Metrics:   app.Metrics,
	})
	if err != nil {
		return nil, err
	}

	// ---- Verifier
	app.Verifier, err = verifier.New(verifier.Config{
		ReadTimeout:       time.Duration(cfg.Verifier.ReadTimeoutSeconds) * time.Second,
		RetryInitialDelay: time.Duration(cfg.Verifier.RetryInitialDelayMs) * time.Millisecond,
		RetryMaxDelay:     time.Duration(cfg.Verifier.RetryMaxDelayMs) * time.Millisecond,
		SimulateMint:      cfg.Verifier.SimulateMint,
		SimulateFrom:      common.HexToAddress(cfg.Verifier.SimulateFrom),
	}, verifier.Deps{
		Registry: app.Registry,
		Clients:  app.Clients,
		Metrics:  app.Metrics,
	})
	if err != nil {
		return nil, err
	}

	log.Info("app initialized",
		"networks", len(app.Registry.List()),
		"deployed", len(app.Registry.Deployed()),
		"records", len(records),
		"signer", opts.Signer != nil)
	return app, nil
}

// Buyer is the signer's address, or the zero address without a signer.
func (a *App) Buyer() common.Address {
	if a.signer == nil {
		return common.Address{}
	}
	return crypto.PubkeyToAddress(a.signer.PublicKey)
}

func (a *App) Close() error {
	var errs error
	if a.History != nil {
		if err := a.History.Close(); err != nil {
			errs = errors.CombineErrors(errs, errors.Wrap(err, "close history"))
		}
	}
	if a.Clients != nil {
		if err := a.Clients.Close(); err != nil {
			errs = errors.CombineErrors(errs, err)
		}
	}
	return errs
}

// relayClient builds the native client for a Hedera network: contract calls
// go through the JSON-RPC relay of the matching chain, balances through the
// mirror node.
func (a *App) relayClient(ctx context.Context, network string) (hedera.Client, error) {
	if a.signer == nil {
		return nil, errors.New("no signer configured")
	}
	var entry networks.Entry
	found := false
	for _, e := range a.Registry.List() {
		if e.Class.IsHedera() && e.HederaNetwork == network {
			entry, found = e, true
			break
		}
	}
	if !found {
		return nil, errors.Newf("no hedera network %q in registry", network)
	}

	backend, err := a.Clients.ClientFor(ctx, entry.ChainID)
	if err != nil {
		return nil, err
	}
	auth, err := bind.NewKeyedTransactorWithChainID(a.signer, new(big.Int).SetUint64(entry.ChainID))
	if err != nil {
		return nil, errors.Wrap(err, "relay signer")
	}
	parsed, err := amazoncoin.AmazonCoinMetaData.GetAbi()
	if err != nil {
		return nil, errors.Wrap(err, "parse amazoncoin abi")
	}

	var balances hedera.BalanceQuerier
	if m, ok := a.Mirrors[network]; ok {
		balances = m
	}
	return hedera.NewRelayClient(backend, auth, *parsed, balances)
}

type mirrorContracts map[string]*hedera.MirrorClient

// ContractIDForEVMAddress asks each configured mirror node in turn.
func (m mirrorContracts) ContractIDForEVMAddress(ctx context.Context, addr common.Address) (hedera.ContractID, error) {
	var errs error
	for network, mirror := range m {
		id, err := mirror.ContractIDForEVMAddress(ctx, addr)
		if err == nil {
			return id, nil
		}
		errs = errors.CombineErrors(errs, errors.Wrapf(err, "mirror %s", network))
	}
	if errs == nil {
		return hedera.ContractID{}, errors.New("no hedera mirror node configured")
	}
	return hedera.ContractID{}, errs
}
