package purchase

import (
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/networks"
)

type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
	StateConfirming State = "confirming"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

var transitions = map[State][]State{
	StateIdle:       {StateValidating},
	StateValidating: {StateSubmitting, StateFailed},
	StateSubmitting: {StateConfirming, StateFailed},
	StateConfirming: {StateSucceeded, StateFailed},
}

func (s State) CanTransition(to State) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

func (s State) Terminal() bool {
	return s == StateSucceeded || s == StateFailed
}

type Transition struct {
	From State
	To   State
	At   time.Time
}

// Attempt is one run of the purchase state machine.
type Attempt struct {
	ID      uuid.UUID
	Request Request
	Started time.Time

	mu           sync.Mutex
	state        State
	transitions  []Transition
	entry        networks.Entry
	dispatch     Dispatch
	payment      *big.Int
	txID         string
	confirmation *Confirmation
	err          error
	recorded     bool
}

func newAttempt(req Request, now time.Time) *Attempt {
	return &Attempt{
		ID:      uuid.New(),
		Request: req,
		Started: now,
		state:   StateIdle,
	}
}

// advance moves the attempt to `to`. An illegal transition is a programming
// error and panics.
func (a *Attempt) advance(to State) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.state.CanTransition(to) {
		panic(fmt.Sprintf("purchase %s: illegal transition %s -> %s", a.ID, a.state, to))
	}
	a.transitions = append(a.transitions, Transition{From: a.state, To: to, At: time.Now()})
	a.state = to
}

func (a *Attempt) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

func (a *Attempt) Transitions() []Transition {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Transition, len(a.transitions))
	copy(out, a.transitions)
	return out
}

// States lists the visited states, starting at idle.
func (a *Attempt) States() []State {
	ts := a.Transitions()
	out := []State{StateIdle}
	for _, t := range ts {
		out = append(out, t.To)
	}
	return out
}

func (a *Attempt) Entry() networks.Entry {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.entry
}

func (a *Attempt) Dispatch() Dispatch {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.dispatch
}

func (a *Attempt) Payment() *big.Int {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.payment == nil {
		return nil
	}
	return new(big.Int).Set(a.payment)
}

func (a *Attempt) TxID() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.txID
}

// Receipt is the confirmation of a succeeded attempt, or nil.
func (a *Attempt) Receipt() *Confirmation {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.confirmation
}

func (a *Attempt) Err() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.err
}
