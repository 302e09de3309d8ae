package purchase

import (
	"context"
	"math/big"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/quantumauth-io/quantum-go-utils/log"

	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/assets"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/constants"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/hedera"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/history"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/ledger"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/metrics"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/networks"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/utils"
)

const (
	DefaultConfirmationTimeout = 2 * time.Minute
	purchaseFunction           = "purchaseTokens"
)

type Resolver interface {
	Resolve(chainID uint64) (networks.Entry, bool)
}

type Balances interface {
	Get(chainID uint64, account common.Address) (assets.Balances, bool)
	Refresh(ctx context.Context, entry networks.Entry, account common.Address) (assets.Balances, error)
}

// ContractResolver maps an EVM address to its Hedera contract id when the
// address is not in long-zero form.
type ContractResolver interface {
	ContractIDForEVMAddress(ctx context.Context, addr common.Address) (hedera.ContractID, error)
}

type Config struct {
	ConfirmationTimeout time.Duration
	HederaGas           uint64
	// PrecheckBalance rejects a purchase when the cached native balance is
	// below the payment. Accounts without a cached balance are not checked.
	PrecheckBalance bool
}

type Deps struct {
	Registry  Resolver
	EVM       Submitter
	Native    Submitter
	Contracts ContractResolver
	History   history.Store
	Balances  Balances
	Metrics   metrics.Recorder
}

type Request struct {
	ChainID uint64
	// Amount is the token amount in base units.
	Amount *big.Int
	Buyer  common.Address
	// WalletChainID is the chain the wallet is connected to; 0 skips the check.
	WalletChainID uint64
	PreferNative  bool
}

type Quote struct {
	Entry    networks.Entry
	FellBack bool
	Amount   *big.Int
	Rate     *big.Int
	Cost     *big.Int
	Display  string
	Currency string
}

type Router struct {
	cfg  Config
	deps Deps
	now  func() time.Time
}

func NewRouter(cfg Config, deps Deps) (*Router, error) {
	if deps.Registry == nil {
		return nil, errors.New("purchase router requires a network registry")
	}
	if cfg.ConfirmationTimeout <= 0 {
		cfg.ConfirmationTimeout = DefaultConfirmationTimeout
	}
	if cfg.HederaGas == 0 {
		cfg.HederaGas = constants.HederaDefaultGas
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.NoopRecorder{}
	}
	return &Router{cfg: cfg, deps: deps, now: time.Now}, nil
}

// Quote prices amount on the network resolved from chainID.
func (r *Router) Quote(chainID uint64, amount *big.Int) (Quote, error) {
	if amount == nil || amount.Sign() <= 0 {
		return Quote{}, ErrInvalidAmount
	}
	entry, fellBack := r.deps.Registry.Resolve(chainID)
	return quoteFor(entry, fellBack, amount)
}

func quoteFor(entry networks.Entry, fellBack bool, amount *big.Int) (Quote, error) {
	rate, err := entry.PriceInBaseUnits()
	if err != nil || rate.Sign() <= 0 {
		return Quote{}, ErrPricingUnavailable
	}
	cost, err := ledger.EtherCostBig(amount, rate)
	if err != nil {
		return Quote{}, errors.Wrap(err, "price purchase")
	}
	return Quote{
		Entry:    entry,
		FellBack: fellBack,
		Amount:   new(big.Int).Set(amount),
		Rate:     rate,
		Cost:     cost,
		Display:  utils.FormatUnits(cost, constants.TokenDecimals, 8) + " " + entry.NativeSymbol,
		Currency: entry.NativeSymbol,
	}, nil
}

// Purchase runs one attempt to completion. The returned attempt is never nil;
// the error is the attempt's failure, surfaced verbatim.
func (r *Router) Purchase(ctx context.Context, req Request) (*Attempt, error) {
	a := newAttempt(req, r.now())
	a.advance(StateValidating)

	entry, dispatch, payment, err := r.validate(ctx, req)
	a.mu.Lock()
	a.entry, a.dispatch, a.payment = entry, dispatch, payment
	a.mu.Unlock()
	if err != nil {
		return r.fail(ctx, a, err)
	}

	submitter := r.deps.EVM
	if dispatch.Kind() == DispatchNative {
		submitter = r.deps.Native
	}
	if submitter == nil {
		return r.fail(ctx, a, errors.Newf("no %s submitter configured", dispatch.Kind()))
	}

	a.advance(StateSubmitting)
	r.record(ctx, a, history.StatusPending)
	sub, err := submitter.Submit(ctx, dispatch)
	if err != nil {
		return r.fail(ctx, a, mark(err))
	}

	a.mu.Lock()
	a.txID = sub.TxID
	a.mu.Unlock()
	log.Info("purchase submitted",
		"attempt", a.ID.String(),
		"network", entry.Name,
		"dispatch", string(dispatch.Kind()),
		"tx", sub.TxID,
	)
	a.advance(StateConfirming)
	r.record(ctx, a, history.StatusPending)

	conf, err := r.confirm(ctx, submitter, sub)
	if err != nil {
		return r.fail(ctx, a, err)
	}

	a.mu.Lock()
	a.confirmation = &conf
	a.mu.Unlock()
	a.advance(StateSucceeded)
	r.record(ctx, a, history.StatusSuccess)
	r.observe(a)

	if r.deps.Balances != nil && req.Buyer != (common.Address{}) {
		if _, err := r.deps.Balances.Refresh(ctx, entry, req.Buyer); err != nil {
			log.Warn("balance refresh failed", "network", entry.Name, "account", req.Buyer.Hex(), "error", err.Error())
		}
	}
	log.Info("purchase confirmed", "attempt", a.ID.String(), "tx", sub.TxID, "block", conf.BlockNumber)
	return a, nil
}

func (r *Router) validate(ctx context.Context, req Request) (networks.Entry, Dispatch, *big.Int, error) {
	if req.Amount == nil || req.Amount.Sign() <= 0 {
		return networks.Entry{}, nil, nil, ErrInvalidAmount
	}

	entry, fellBack := r.deps.Registry.Resolve(req.ChainID)
	if fellBack {
		log.Warn("unknown chain, using fallback network", "chain_id", req.ChainID, "fallback", entry.ChainID)
	}
	if req.WalletChainID != 0 && req.WalletChainID != entry.ChainID {
		return entry, nil, nil, tag(
			errors.Newf("wrong network: wallet is on chain %d, switch to %s (chain %d)", req.WalletChainID, entry.DisplayName, entry.ChainID),
			ErrWrongNetwork,
		)
	}
	if !entry.IsDeployed() {
		return entry, nil, nil, ErrContractNotDeployed
	}

	q, err := quoteFor(entry, fellBack, req.Amount)
	if err != nil {
		return entry, nil, nil, err
	}

	if r.cfg.PrecheckBalance && r.deps.Balances != nil {
		if b, ok := r.deps.Balances.Get(entry.ChainID, req.Buyer); ok && b.Native != nil && b.Native.Cmp(q.Cost) < 0 {
			return entry, nil, q.Cost, tag(
				errors.Newf("insufficient funds: need %s, have %s %s", q.Display, utils.FormatUnits(b.Native, constants.TokenDecimals, 8), q.Currency),
				ErrInsufficientFunds,
			)
		}
	}

	if !entry.Class.IsHedera() || !req.PreferNative {
		return entry, EvmDispatch{
			ChainID:  entry.ChainID,
			Contract: entry.Contract,
			Amount:   new(big.Int).Set(req.Amount),
			Value:    q.Cost,
		}, q.Cost, nil
	}

	id, err := r.contractID(ctx, entry.Contract)
	if err != nil {
		return entry, nil, q.Cost, err
	}
	tinybars := hedera.TinybarsFromBaseUnits(q.Cost)
	if hedera.BaseUnitsFromTinybars(tinybars).Cmp(q.Cost) != 0 {
		return entry, nil, q.Cost, errors.Newf("payment %s is not a whole number of tinybars", q.Cost)
	}
	return entry, NativeDispatch{
		Network:         entry.HederaNetwork,
		ContractID:      id,
		Function:        purchaseFunction,
		Amount:          new(big.Int).Set(req.Amount),
		Gas:             r.cfg.HederaGas,
		PayableTinybars: tinybars,
	}, q.Cost, nil
}

func (r *Router) contractID(ctx context.Context, addr common.Address) (hedera.ContractID, error) {
	if id, ok := hedera.ContractIDFromEVMAddress(addr); ok {
		return id, nil
	}
	if r.deps.Contracts == nil {
		return hedera.ContractID{}, errors.Newf("no hedera contract id known for %s", addr.Hex())
	}
	id, err := r.deps.Contracts.ContractIDForEVMAddress(ctx, addr)
	if err != nil {
		return hedera.ContractID{}, errors.Wrapf(err, "resolve hedera contract id for %s", addr.Hex())
	}
	return id, nil
}

// confirm waits under ConfirmationTimeout. An expired or abandoned wait fails
// the attempt without resubmitting.
func (r *Router) confirm(ctx context.Context, s Submitter, sub Submission) (Confirmation, error) {
	cctx, cancel := context.WithTimeout(ctx, r.cfg.ConfirmationTimeout)
	defer cancel()

	conf, err := s.Confirm(cctx, sub)
	switch {
	case err == nil:
		return conf, nil
	case errors.Is(err, context.DeadlineExceeded):
		return Confirmation{}, tag(
			errors.Newf("confirmation timed out; transaction %s may still complete", sub.TxID),
			ErrConfirmationTimeout,
		)
	case errors.Is(err, context.Canceled):
		return Confirmation{}, tag(
			errors.Newf("confirmation abandoned; transaction %s may still complete", sub.TxID),
			ErrConfirmationAbandoned,
		)
	}
	return Confirmation{}, mark(err)
}

func (r *Router) fail(ctx context.Context, a *Attempt, err error) (*Attempt, error) {
	a.mu.Lock()
	a.err = err
	a.mu.Unlock()
	a.advance(StateFailed)
	r.record(ctx, a, history.StatusFailed)
	r.observe(a)

	log.Warn("purchase failed",
		"attempt", a.ID.String(),
		"chain_id", a.Request.ChainID,
		"kind", string(Classify(err)),
		"error", err.Error(),
	)
	return a, err
}

// record writes the attempt to history once it has reached submitting.
// History is advisory, so write failures are only logged.
func (r *Router) record(ctx context.Context, a *Attempt, status history.Status) {
	if r.deps.History == nil {
		return
	}
	a.mu.Lock()
	if !a.recorded && a.state != StateSubmitting {
		a.mu.Unlock()
		return
	}
	a.recorded = true
	rec := history.Record{
		ID:        a.ID,
		ChainID:   a.entry.ChainID,
		Network:   a.entry.Name,
		Buyer:     a.Request.Buyer,
		Amount:    a.Request.Amount,
		Payment:   a.payment,
		TxID:      a.txID,
		Status:    status,
		State:     string(a.state),
		Timestamp: a.Started,
	}
	if a.dispatch != nil {
		rec.Dispatch = string(a.dispatch.Kind())
	}
	if a.err != nil {
		rec.Error = a.err.Error()
	}
	if a.confirmation != nil {
		rec.Minted = a.confirmation.Minted
	}
	a.mu.Unlock()

	if err := r.deps.History.Put(ctx, rec); err != nil {
		log.Warn("history write failed", "attempt", a.ID.String(), "error", err.Error())
	}
}

func (r *Router) observe(a *Attempt) {
	network := a.Entry().Name
	if network == "" {
		network = "unknown"
	}
	r.deps.Metrics.IncCounter(metrics.Purchases, map[string]string{
		metrics.LabelState:   string(a.State()),
		metrics.LabelNetwork: network,
	})
	metrics.Since(r.deps.Metrics, "purchase", network, a.Started)
}
