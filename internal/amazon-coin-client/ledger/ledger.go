// Package ledger implements the Amazon Coin token contract as a deterministic
// state machine: balances, a hard supply cap, exchange-rate priced minting,
// pause gating and owner-controlled withdrawal of collected native currency.
//
// Every exported mutating call either applies all of its effects or returns a
// labeled rejection and leaves the state untouched.
package ledger

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
	"github.com/holiman/uint256"

	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/constants"
)

// BurnPolicy decides whether Burn is gated by the pause flag.
type BurnPolicy int

const (
	BurnAllowedWhilePaused BurnPolicy = iota
	BurnBlockedWhilePaused
)

func (p BurnPolicy) String() string {
	switch p {
	case BurnAllowedWhilePaused:
		return "allowed-while-paused"
	case BurnBlockedWhilePaused:
		return "blocked-while-paused"
	default:
		return "unknown"
	}
}

type Config struct {
	Owner                common.Address
	MaxSupply            *uint256.Int
	InitialSupplyPercent uint64
	InitialExchangeRate  *uint256.Int
	BurnPolicy           BurnPolicy
}

// DefaultConfig returns the deployment parameters of the production contract.
func DefaultConfig(owner common.Address) Config {
	return Config{
		Owner:                owner,
		MaxSupply:            new(uint256.Int).Mul(uint256.NewInt(constants.MaxSupplyTokens), OneToken),
		InitialSupplyPercent: constants.InitialSupplyPercent,
		InitialExchangeRate:  uint256.MustFromDecimal(constants.InitialExchangeRateWei),
		BurnPolicy:           BurnAllowedWhilePaused,
	}
}

type Ledger struct {
	mu     sync.Mutex
	sendMu sync.Mutex

	owner               common.Address
	maxSupply           *uint256.Int
	initialExchangeRate *uint256.Int
	burnPolicy          BurnPolicy

	totalSupply          *uint256.Int
	exchangeRate         *uint256.Int
	totalNativeCollected *uint256.Int
	custody              *uint256.Int
	mintingEnabled       bool
	paused               bool

	balances map[common.Address]*uint256.Int
	payouts  map[common.Address]*uint256.Int

	log  []Event
	feed event.Feed
}

// New deploys a ledger and mints InitialSupplyPercent of MaxSupply to the owner.
func New(cfg Config) (*Ledger, error) {
	if cfg.Owner == (common.Address{}) {
		return nil, ErrZeroOwner
	}
	if cfg.MaxSupply == nil || cfg.MaxSupply.IsZero() {
		return nil, errors.New("max supply must be greater than zero")
	}
	if cfg.InitialExchangeRate == nil || cfg.InitialExchangeRate.IsZero() {
		return nil, ErrZeroExchangeRate
	}
	if cfg.InitialSupplyPercent > 100 {
		return nil, errors.Newf("initial supply percent %d exceeds 100", cfg.InitialSupplyPercent)
	}

	initial := new(uint256.Int).Mul(cfg.MaxSupply, uint256.NewInt(cfg.InitialSupplyPercent))
	initial.Div(initial, uint256.NewInt(100))

	l := &Ledger{
		owner:                cfg.Owner,
		maxSupply:            cfg.MaxSupply.Clone(),
		initialExchangeRate:  cfg.InitialExchangeRate.Clone(),
		burnPolicy:           cfg.BurnPolicy,
		totalSupply:          initial.Clone(),
		exchangeRate:         cfg.InitialExchangeRate.Clone(),
		totalNativeCollected: new(uint256.Int),
		custody:              new(uint256.Int),
		mintingEnabled:       true,
		balances:             map[common.Address]*uint256.Int{cfg.Owner: initial},
		payouts:              map[common.Address]*uint256.Int{},
	}
	l.log = append(l.log, transferEvent(common.Address{}, cfg.Owner, initial))
	return l, nil
}

// SubscribeEvents delivers every event emitted after the call to ch.
func (l *Ledger) SubscribeEvents(ch chan<- Event) event.Subscription {
	return l.feed.Subscribe(ch)
}

// Events returns a copy of the event log, oldest first.
func (l *Ledger) Events() []Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Event, len(l.log))
	copy(out, l.log)
	return out
}

// ---- Purchase paths

// PurchaseTokens mints amount to caller against an exact payment of
// EtherCost(amount) at the current rate.
func (l *Ledger) PurchaseTokens(caller common.Address, amount, payment *uint256.Int) error {
	l.mu.Lock()
	if l.paused {
		l.mu.Unlock()
		return ErrPaused
	}
	if amount == nil || amount.IsZero() {
		l.mu.Unlock()
		return ErrZeroAmount
	}
	if !l.mintingEnabled {
		l.mu.Unlock()
		return ErrMintingDisabled
	}
	cost, err := EtherCost(amount, l.exchangeRate)
	if err != nil {
		l.mu.Unlock()
		return err
	}
	if payment == nil || !cost.Eq(payment) {
		l.mu.Unlock()
		return ErrIncorrectPayment
	}
	newSupply, err := l.checkedSupply(amount)
	if err != nil {
		l.mu.Unlock()
		return err
	}
	newCollected, overflowA := new(uint256.Int).AddOverflow(l.totalNativeCollected, payment)
	newCustody, overflowB := new(uint256.Int).AddOverflow(l.custody, payment)
	if overflowA || overflowB {
		l.mu.Unlock()
		return ErrOverflow
	}

	l.credit(caller, amount)
	l.totalSupply = newSupply
	l.totalNativeCollected = newCollected
	l.custody = newCustody
	l.emitLocked(transferEvent(common.Address{}, caller, amount), purchasedEvent(caller, amount, payment))
	return nil
}

// Receive handles native currency sent without a function call: the token
// amount is derived from payment by TokenAmount and the full payment is kept.
func (l *Ledger) Receive(caller common.Address, payment *uint256.Int) (*uint256.Int, error) {
	l.mu.Lock()
	if l.paused {
		l.mu.Unlock()
		return nil, ErrReceiveWhilePaused
	}
	if payment == nil || payment.IsZero() {
		l.mu.Unlock()
		return nil, ErrZeroAmount
	}
	amount, err := TokenAmount(payment, l.exchangeRate)
	if err != nil {
		l.mu.Unlock()
		return nil, err
	}
	if amount.IsZero() {
		l.mu.Unlock()
		return nil, ErrZeroAmount
	}
	if !l.mintingEnabled {
		l.mu.Unlock()
		return nil, ErrMintingDisabled
	}
	newSupply, err := l.checkedSupply(amount)
	if err != nil {
		l.mu.Unlock()
		return nil, err
	}
	newCollected, overflowA := new(uint256.Int).AddOverflow(l.totalNativeCollected, payment)
	newCustody, overflowB := new(uint256.Int).AddOverflow(l.custody, payment)
	if overflowA || overflowB {
		l.mu.Unlock()
		return nil, ErrOverflow
	}

	l.credit(caller, amount)
	l.totalSupply = newSupply
	l.totalNativeCollected = newCollected
	l.custody = newCustody
	l.emitLocked(transferEvent(common.Address{}, caller, amount), purchasedEvent(caller, amount, payment))
	return amount.Clone(), nil
}

// Mint grants amount to `to` without payment. Owner only.
func (l *Ledger) Mint(caller, to common.Address, amount *uint256.Int) error {
	l.mu.Lock()
	if caller != l.owner {
		l.mu.Unlock()
		return ErrNotOwner
	}
	if l.paused {
		l.mu.Unlock()
		return ErrPaused
	}
	if to == (common.Address{}) {
		l.mu.Unlock()
		return ErrMintToZero
	}
	if amount == nil || amount.IsZero() {
		l.mu.Unlock()
		return ErrZeroAmount
	}
	if !l.mintingEnabled {
		l.mu.Unlock()
		return ErrMintingDisabled
	}
	newSupply, err := l.checkedSupply(amount)
	if err != nil {
		l.mu.Unlock()
		return err
	}

	l.credit(to, amount)
	l.totalSupply = newSupply
	l.emitLocked(transferEvent(common.Address{}, to, amount), purchasedEvent(to, amount, new(uint256.Int)))
	return nil
}

// ---- Holder operations

func (l *Ledger) Burn(caller common.Address, amount *uint256.Int) error {
	l.mu.Lock()
	if l.paused && l.burnPolicy == BurnBlockedWhilePaused {
		l.mu.Unlock()
		return ErrPaused
	}
	if amount == nil {
		l.mu.Unlock()
		return ErrZeroAmount
	}
	balance := l.balanceLocked(caller)
	if balance.Lt(amount) {
		l.mu.Unlock()
		return ErrBurnExceeds
	}

	l.balances[caller] = new(uint256.Int).Sub(balance, amount)
	l.totalSupply = new(uint256.Int).Sub(l.totalSupply, amount)
	l.emitLocked(transferEvent(caller, common.Address{}, amount))
	return nil
}

func (l *Ledger) Transfer(caller, to common.Address, amount *uint256.Int) error {
	l.mu.Lock()
	if l.paused {
		l.mu.Unlock()
		return ErrPaused
	}
	if to == (common.Address{}) {
		l.mu.Unlock()
		return ErrTransferToZero
	}
	if amount == nil {
		l.mu.Unlock()
		return ErrZeroAmount
	}
	balance := l.balanceLocked(caller)
	if balance.Lt(amount) {
		l.mu.Unlock()
		return ErrTransferExceeds
	}

	l.balances[caller] = new(uint256.Int).Sub(balance, amount)
	l.credit(to, amount)
	l.emitLocked(transferEvent(caller, to, amount))
	return nil
}

// ---- Owner administration

func (l *Ledger) SetExchangeRate(caller common.Address, rate *uint256.Int) error {
	l.mu.Lock()
	if caller != l.owner {
		l.mu.Unlock()
		return ErrNotOwner
	}
	if rate == nil || rate.IsZero() {
		l.mu.Unlock()
		return ErrZeroExchangeRate
	}

	old := l.exchangeRate
	l.exchangeRate = rate.Clone()
	l.emitLocked(Event{Name: EventExchangeRateUpdated, OldRate: old.Clone(), NewRate: rate.Clone()})
	return nil
}

func (l *Ledger) SetMintingEnabled(caller common.Address, enabled bool) error {
	l.mu.Lock()
	if caller != l.owner {
		l.mu.Unlock()
		return ErrNotOwner
	}

	l.mintingEnabled = enabled
	l.emitLocked(Event{Name: EventMintingStatusChanged, Enabled: enabled})
	return nil
}

func (l *Ledger) Pause(caller common.Address) error {
	l.mu.Lock()
	if caller != l.owner {
		l.mu.Unlock()
		return ErrNotOwner
	}
	if l.paused {
		l.mu.Unlock()
		return ErrPaused
	}

	l.paused = true
	l.emitLocked(Event{Name: EventPaused, From: caller})
	return nil
}

func (l *Ledger) Unpause(caller common.Address) error {
	l.mu.Lock()
	if caller != l.owner {
		l.mu.Unlock()
		return ErrNotOwner
	}
	if !l.paused {
		l.mu.Unlock()
		return ErrNotPaused
	}

	l.paused = false
	l.emitLocked(Event{Name: EventUnpaused, From: caller})
	return nil
}

// WithdrawEther pays amount of the held native currency to the owner.
// totalNativeCollected is a lifetime counter and is not reduced.
func (l *Ledger) WithdrawEther(caller common.Address, amount *uint256.Int) error {
	l.mu.Lock()
	if caller != l.owner {
		l.mu.Unlock()
		return ErrNotOwner
	}
	if l.paused {
		l.mu.Unlock()
		return ErrPaused
	}
	if amount == nil || amount.IsZero() {
		l.mu.Unlock()
		return ErrZeroAmount
	}
	if l.custody.Lt(amount) {
		l.mu.Unlock()
		return ErrInsufficientCustody
	}

	l.custody = new(uint256.Int).Sub(l.custody, amount)
	l.pay(l.owner, amount)
	l.emitLocked(Event{Name: EventEtherWithdrawn, To: l.owner, Amount: amount.Clone()})
	return nil
}

// EmergencyWithdrawAll drains custody to the owner and resets
// totalNativeCollected. It is available while paused.
func (l *Ledger) EmergencyWithdrawAll(caller common.Address) error {
	l.mu.Lock()
	if caller != l.owner {
		l.mu.Unlock()
		return ErrNotOwner
	}
	if l.custody.IsZero() {
		l.mu.Unlock()
		return ErrNothingToWithdraw
	}

	amount := l.custody
	l.custody = new(uint256.Int)
	l.totalNativeCollected = new(uint256.Int)
	l.pay(l.owner, amount)
	l.emitLocked(Event{Name: EventEmergencyWithdrawal, To: l.owner, Amount: amount.Clone()})
	return nil
}

func (l *Ledger) TransferOwnership(caller, newOwner common.Address) error {
	l.mu.Lock()
	if caller != l.owner {
		l.mu.Unlock()
		return ErrNotOwner
	}
	if newOwner == (common.Address{}) {
		l.mu.Unlock()
		return ErrZeroOwner
	}

	previous := l.owner
	l.owner = newOwner
	l.emitLocked(Event{Name: EventOwnershipTransferred, From: previous, To: newOwner})
	return nil
}

// ---- Views

func (l *Ledger) Name() string   { return constants.TokenName }
func (l *Ledger) Symbol() string { return constants.TokenSymbol }
func (l *Ledger) Decimals() uint8 {
	return constants.TokenDecimals
}

func (l *Ledger) BalanceOf(account common.Address) *uint256.Int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balanceLocked(account).Clone()
}

// NativeBalance is the native currency paid out to account by withdrawals.
func (l *Ledger) NativeBalance(account common.Address) *uint256.Int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if v, ok := l.payouts[account]; ok {
		return v.Clone()
	}
	return new(uint256.Int)
}

func (l *Ledger) CalculateEtherCost(amount *uint256.Int) (*uint256.Int, error) {
	l.mu.Lock()
	rate := l.exchangeRate.Clone()
	l.mu.Unlock()
	return EtherCost(amount, rate)
}

func (l *Ledger) CalculateTokenAmount(native *uint256.Int) (*uint256.Int, error) {
	l.mu.Lock()
	rate := l.exchangeRate.Clone()
	l.mu.Unlock()
	return TokenAmount(native, rate)
}

func (l *Ledger) GetRemainingSupply() *uint256.Int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return new(uint256.Int).Sub(l.maxSupply, l.totalSupply)
}

func (l *Ledger) TotalSupply() *uint256.Int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.totalSupply.Clone()
}

func (l *Ledger) MaxSupply() *uint256.Int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.maxSupply.Clone()
}

func (l *Ledger) ExchangeRate() *uint256.Int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.exchangeRate.Clone()
}

func (l *Ledger) InitialExchangeRate() *uint256.Int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.initialExchangeRate.Clone()
}

func (l *Ledger) MintingEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.mintingEnabled
}

func (l *Ledger) Paused() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.paused
}

func (l *Ledger) TotalNativeCollected() *uint256.Int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.totalNativeCollected.Clone()
}

func (l *Ledger) Owner() common.Address {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.owner
}

// Clone returns an independent copy of the state without the event log or
// subscribers. Calls against the clone never affect l.
func (l *Ledger) Clone() *Ledger {
	l.mu.Lock()
	defer l.mu.Unlock()

	c := &Ledger{
		owner:                l.owner,
		maxSupply:            l.maxSupply.Clone(),
		initialExchangeRate:  l.initialExchangeRate.Clone(),
		burnPolicy:           l.burnPolicy,
		totalSupply:          l.totalSupply.Clone(),
		exchangeRate:         l.exchangeRate.Clone(),
		totalNativeCollected: l.totalNativeCollected.Clone(),
		custody:              l.custody.Clone(),
		mintingEnabled:       l.mintingEnabled,
		paused:               l.paused,
		balances:             make(map[common.Address]*uint256.Int, len(l.balances)),
		payouts:              make(map[common.Address]*uint256.Int, len(l.payouts)),
	}
	for k, v := range l.balances {
		c.balances[k] = v.Clone()
	}
	for k, v := range l.payouts {
		c.payouts[k] = v.Clone()
	}
	return c
}

// Snapshot is a point-in-time copy of the ledger state.
type Snapshot struct {
	Owner                common.Address
	TotalSupply          *uint256.Int
	MaxSupply            *uint256.Int
	ExchangeRate         *uint256.Int
	InitialExchangeRate  *uint256.Int
	TotalNativeCollected *uint256.Int
	Custody              *uint256.Int
	MintingEnabled       bool
	Paused               bool
	BurnPolicy           BurnPolicy
	Balances             map[common.Address]*uint256.Int
}

func (l *Ledger) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	balances := make(map[common.Address]*uint256.Int, len(l.balances))
	for addr, v := range l.balances {
		if v.IsZero() {
			continue
		}
		balances[addr] = v.Clone()
	}
	return Snapshot{
		Owner:                l.owner,
		TotalSupply:          l.totalSupply.Clone(),
		MaxSupply:            l.maxSupply.Clone(),
		ExchangeRate:         l.exchangeRate.Clone(),
		InitialExchangeRate:  l.initialExchangeRate.Clone(),
		TotalNativeCollected: l.totalNativeCollected.Clone(),
		Custody:              l.custody.Clone(),
		MintingEnabled:       l.mintingEnabled,
		Paused:               l.paused,
		BurnPolicy:           l.burnPolicy,
		Balances:             balances,
	}
}

// ---- internals (callers hold l.mu)

func (l *Ledger) checkedSupply(amount *uint256.Int) (*uint256.Int, error) {
	next, overflow := new(uint256.Int).AddOverflow(l.totalSupply, amount)
	if overflow || next.Gt(l.maxSupply) {
		return nil, ErrExceedsMaxSupply
	}
	return next, nil
}

func (l *Ledger) balanceLocked(account common.Address) *uint256.Int {
	if v, ok := l.balances[account]; ok {
		return v
	}
	return new(uint256.Int)
}

// credit cannot overflow: every balance is bounded by totalSupply <= maxSupply.
func (l *Ledger) credit(account common.Address, amount *uint256.Int) {
	l.balances[account] = new(uint256.Int).Add(l.balanceLocked(account), amount)
}

func (l *Ledger) pay(account common.Address, amount *uint256.Int) {
	prev, ok := l.payouts[account]
	if !ok {
		prev = new(uint256.Int)
	}
	l.payouts[account] = new(uint256.Int).Add(prev, amount)
}

// emitLocked appends evs to the log, releases l.mu and delivers evs to
// subscribers in log order.
func (l *Ledger) emitLocked(evs ...Event) {
	l.log = append(l.log, evs...)
	l.sendMu.Lock()
	l.mu.Unlock()
	defer l.sendMu.Unlock()
	for _, ev := range evs {
		l.feed.Send(ev)
	}
}
