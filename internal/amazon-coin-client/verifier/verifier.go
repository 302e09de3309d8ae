// Package verifier audits the deployed token on every registered network.
// It only reads chain state: field reads go through eth_call and the mint
// simulation never broadcasts a transaction.
package verifier

import (
	"context"
	"math/big"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/quantumauth-io/quantum-go-utils/log"
	"github.com/quantumauth-io/quantum-go-utils/retry"
	"golang.org/x/sync/errgroup"

	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/chains"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/constants"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/contracts/bindings/go/amazoncoin"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/metrics"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/networks"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/utils"
)

const (
	DefaultReadTimeout       = 10 * time.Second
	DefaultRetryInitialDelay = 200 * time.Millisecond
	DefaultRetryMaxDelay     = 2 * time.Second

	// failed is the display value of a metadata field that could not be read.
	failed = "Failed"
)

// Field names, in report order.
const (
	FieldName           = "name"
	FieldSymbol         = "symbol"
	FieldDecimals       = "decimals"
	FieldTotalSupply    = "totalSupply"
	FieldMaxSupply      = "maxSupply"
	FieldExchangeRate   = "exchangeRate"
	FieldMintingEnabled = "mintingEnabled"
)

var Fields = []string{
	FieldName, FieldSymbol, FieldDecimals, FieldTotalSupply,
	FieldMaxSupply, FieldExchangeRate, FieldMintingEnabled,
}

var (
	ErrNotDeployed  = errors.New("contract not deployed")
	ErrCodeNotFound = errors.New("contract not found at address")
)

type Registry interface {
	List() []networks.Entry
}

type ClientSource interface {
	ClientFor(ctx context.Context, chainID uint64) (chains.Client, error)
}

// Retrier runs fn until it succeeds or ctx is done.
type Retrier func(ctx context.Context, desc string, fn func(ctx context.Context) error) error

// BackoffRetrier retries with exponential backoff between initial and max.
func BackoffRetrier(initial, max time.Duration) Retrier {
	return func(ctx context.Context, desc string, fn func(ctx context.Context) error) error {
		cfg := retry.DefaultConfig()
		cfg.InitialDelayBeforeRetrying = initial
		cfg.MaxDelayBeforeRetrying = max

		var lastErr error
		succeeded := false
		_, err := retry.Retry(ctx, cfg,
			func(ctx context.Context) ([]interface{}, error) {
				if lastErr = fn(ctx); lastErr != nil {
					return nil, lastErr
				}
				succeeded = true
				return nil, nil
			},
			nil, // always retry
			desc)
		switch {
		case succeeded:
			return nil
		case lastErr != nil:
			return lastErr
		case err != nil:
			return err
		}
		return errors.Wrap(ctx.Err(), desc)
	}
}

type Expected struct {
	Name     string
	Symbol   string
	Decimals uint8
}

func DefaultExpected() Expected {
	return Expected{Name: constants.TokenName, Symbol: constants.TokenSymbol, Decimals: constants.TokenDecimals}
}

type Config struct {
	ReadTimeout       time.Duration
	RetryInitialDelay time.Duration
	RetryMaxDelay     time.Duration
	SimulateMint      bool
	// SimulateAmount is the token amount (base units) used by the mint
	// simulation. Defaults to one whole token.
	SimulateAmount *big.Int
	// SimulateFrom is the eth_call sender. EstimateGas checks its balance
	// against the payment, so it should hold a little native currency.
	SimulateFrom common.Address
	Expected     Expected
	Retrier      Retrier
}

type Deps struct {
	Registry Registry
	Clients  ClientSource
	Metrics  metrics.Recorder
}

type Verifier struct {
	cfg  Config
	deps Deps
}

func New(cfg Config, deps Deps) (*Verifier, error) {
	if deps.Registry == nil {
		return nil, errors.New("verifier: registry is required")
	}
	if deps.Clients == nil {
		return nil, errors.New("verifier: client source is required")
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.NoopRecorder{}
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = DefaultReadTimeout
	}
	if cfg.RetryInitialDelay <= 0 {
		cfg.RetryInitialDelay = DefaultRetryInitialDelay
	}
	if cfg.RetryMaxDelay <= 0 {
		cfg.RetryMaxDelay = DefaultRetryMaxDelay
	}
	if cfg.SimulateAmount == nil || cfg.SimulateAmount.Sign() <= 0 {
		cfg.SimulateAmount = new(big.Int).Exp(big.NewInt(10), big.NewInt(constants.TokenDecimals), nil)
	}
	if cfg.Expected == (Expected{}) {
		cfg.Expected = DefaultExpected()
	}
	if cfg.Retrier == nil {
		cfg.Retrier = BackoffRetrier(cfg.RetryInitialDelay, cfg.RetryMaxDelay)
	}
	return &Verifier{cfg: cfg, deps: deps}, nil
}

type FieldResult struct {
	OK    bool   `json:"ok"`
	Value string `json:"value"`
	Error string `json:"error,omitempty"`
}

type Mismatch struct {
	Field    string `json:"field"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
}

// State holds the decoded reads. Fields that failed keep their zero value.
type State struct {
	Name           string
	Symbol         string
	Decimals       uint8
	TotalSupply    *big.Int
	MaxSupply      *big.Int
	ExchangeRate   *big.Int
	MintingEnabled bool
}

type NetworkResult struct {
	ChainID     uint64                 `json:"chainId"`
	Network     string                 `json:"network"`
	DisplayName string                 `json:"displayName"`
	Address     string                 `json:"address"`
	Explorer    string                 `json:"explorer,omitempty"`
	IsDeployed  bool                   `json:"isDeployed"`
	HasCode     bool                   `json:"hasCode"`
	Fields      map[string]FieldResult `json:"fields,omitempty"`
	State       State                  `json:"-"`
	Mismatches  []Mismatch             `json:"mismatches,omitempty"`
	Simulation  *MintSimulation        `json:"simulation,omitempty"`
	Error       string                 `json:"error,omitempty"`
	Duration    time.Duration          `json:"duration"`
}

// Verified reports whether the contract has code and every field read.
func (r NetworkResult) Verified() bool {
	if !r.IsDeployed || !r.HasCode || r.Error != "" {
		return false
	}
	for _, name := range Fields {
		if !r.Fields[name].OK {
			return false
		}
	}
	return true
}

func (r NetworkResult) FailedFields() []string {
	var out []string
	for _, name := range Fields {
		if f, ok := r.Fields[name]; ok && !f.OK {
			out = append(out, name)
		}
	}
	return out
}

// VerifyNetwork checks one registry entry. Transport failures end up in the
// result; they are never returned.
func (v *Verifier) VerifyNetwork(ctx context.Context, entry networks.Entry) NetworkResult {
	start := time.Now()
	res := NetworkResult{
		ChainID:     entry.ChainID,
		Network:     entry.Name,
		DisplayName: entry.DisplayName,
		Address:     entry.Contract.Hex(),
		Explorer:    entry.AddressURL(entry.Contract.Hex()),
		IsDeployed:  entry.IsDeployed(),
	}
	defer func() {
		res.Duration = time.Since(start)
		v.record(entry.Name, res, start)
	}()

	if !res.IsDeployed {
		res.Error = ErrNotDeployed.Error()
		return res
	}

	client, err := v.deps.Clients.ClientFor(ctx, entry.ChainID)
	if err != nil {
		res.Error = errors.Wrapf(err, "client for chain %d", entry.ChainID).Error()
		return res
	}

	var code []byte
	err = v.read(ctx, "code at "+entry.Name, func(ctx context.Context) error {
		var cerr error
		code, cerr = client.CodeAt(ctx, entry.Contract, nil)
		return cerr
	})
	if err != nil {
		res.Error = errors.Wrap(err, "code lookup").Error()
		return res
	}
	if len(code) == 0 {
		res.Error = ErrCodeNotFound.Error()
		return res
	}
	res.HasCode = true

	caller, err := amazoncoin.NewAmazonCoinCaller(entry.Contract, client)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.State, res.Fields = v.readFields(ctx, entry.Name, caller)
	res.Mismatches = v.mismatches(entry, res)

	if v.cfg.SimulateMint {
		sim := v.simulate(ctx, entry, client, v.cfg.SimulateAmount)
		res.Simulation = &sim
	}

	log.Info("network verified",
		"network", entry.Name,
		"chain_id", entry.ChainID,
		"failed_fields", len(res.FailedFields()),
		"mismatches", len(res.Mismatches))
	return res
}

// readFields issues every field read concurrently. A failed read only
// affects its own FieldResult.
func (v *Verifier) readFields(ctx context.Context, network string, caller *amazoncoin.AmazonCoinCaller) (State, map[string]FieldResult) {
	var (
		state   State
		results = make([]FieldResult, len(Fields))
	)
	readers := []func(opts *bind.CallOpts) (string, error){
		func(opts *bind.CallOpts) (string, error) {
			name, err := caller.Name(opts)
			state.Name = name
			return name, err
		},
		func(opts *bind.CallOpts) (string, error) {
			symbol, err := caller.Symbol(opts)
			state.Symbol = symbol
			return symbol, err
		},
		func(opts *bind.CallOpts) (string, error) {
			decimals, err := caller.Decimals(opts)
			state.Decimals = decimals
			return strconv.Itoa(int(decimals)), err
		},
		func(opts *bind.CallOpts) (string, error) {
			supply, err := caller.TotalSupply(opts)
			state.TotalSupply = supply
			return utils.FormatUnits(supply, constants.TokenDecimals, -1), err
		},
		func(opts *bind.CallOpts) (string, error) {
			supply, err := caller.MAXSUPPLY(opts)
			state.MaxSupply = supply
			return utils.FormatUnits(supply, constants.TokenDecimals, -1), err
		},
		func(opts *bind.CallOpts) (string, error) {
			rate, err := caller.ExchangeRate(opts)
			state.ExchangeRate = rate
			if rate == nil {
				return "0", err
			}
			return rate.String(), err
		},
		func(opts *bind.CallOpts) (string, error) {
			enabled, err := caller.MintingEnabled(opts)
			state.MintingEnabled = enabled
			return strconv.FormatBool(enabled), err
		},
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := range readers {
		g.Go(func() error {
			var value string
			err := v.read(gctx, Fields[i]+" on "+network, func(ctx context.Context) error {
				var rerr error
				value, rerr = readers[i](&bind.CallOpts{Context: ctx})
				return rerr
			})
			if err != nil {
				results[i] = FieldResult{Value: defaultValue(Fields[i]), Error: err.Error()}
				log.Warn("field read failed", "network", network, "field", Fields[i], "error", err.Error())
				return nil
			}
			results[i] = FieldResult{OK: true, Value: value}
			return nil
		})
	}
	_ = g.Wait()

	out := make(map[string]FieldResult, len(Fields))
	for i, name := range Fields {
		out[name] = results[i]
	}
	if !out[FieldName].OK {
		state.Name = ""
	}
	if !out[FieldSymbol].OK {
		state.Symbol = ""
	}
	if !out[FieldDecimals].OK {
		state.Decimals = 0
	}
	if !out[FieldMintingEnabled].OK {
		state.MintingEnabled = false
	}
	return state, out
}

func defaultValue(field string) string {
	switch field {
	case FieldName, FieldSymbol, FieldDecimals:
		return failed
	case FieldMintingEnabled:
		return "false"
	}
	return "0"
}

func (v *Verifier) mismatches(entry networks.Entry, res NetworkResult) []Mismatch {
	var out []Mismatch
	check := func(field, want, got string) {
		if res.Fields[field].OK && want != got {
			out = append(out, Mismatch{Field: field, Expected: want, Actual: got})
		}
	}
	check(FieldName, v.cfg.Expected.Name, res.State.Name)
	check(FieldSymbol, v.cfg.Expected.Symbol, res.State.Symbol)
	check(FieldDecimals, strconv.Itoa(int(v.cfg.Expected.Decimals)), strconv.Itoa(int(res.State.Decimals)))

	if rate, err := entry.PriceInBaseUnits(); err == nil && res.State.ExchangeRate != nil {
		check(FieldExchangeRate, rate.String(), res.State.ExchangeRate.String())
	}
	return out
}

// read bounds one RPC by ReadTimeout and retries it inside that window.
func (v *Verifier) read(ctx context.Context, desc string, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, v.cfg.ReadTimeout)
	defer cancel()
	return v.cfg.Retrier(ctx, desc, fn)
}

func (v *Verifier) record(network string, res NetworkResult, start time.Time) {
	result := "verified"
	switch {
	case !res.IsDeployed:
		result = "skipped"
	case !res.Verified():
		result = "failed"
	case len(res.Mismatches) > 0:
		result = "mismatch"
	}
	v.deps.Metrics.IncCounter(metrics.Verifications, map[string]string{
		metrics.LabelResult:  result,
		metrics.LabelNetwork: network,
	})
	metrics.Since(v.deps.Metrics, "verify", network, start)
}
