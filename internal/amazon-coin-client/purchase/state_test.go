package purchase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStateTransitions(t *testing.T) {
	tests := []struct {
		from, to State
		ok       bool
	}{
		{StateIdle, StateValidating, true},
		{StateValidating, StateSubmitting, true},
		{StateValidating, StateFailed, true},
		{StateSubmitting, StateConfirming, true},
		{StateSubmitting, StateFailed, true},
		{StateConfirming, StateSucceeded, true},
		{StateConfirming, StateFailed, true},
		{StateIdle, StateSubmitting, false},
		{StateValidating, StateSucceeded, false},
		{StateSucceeded, StateFailed, false},
		{StateFailed, StateValidating, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			require.Equal(t, tt.ok, tt.from.CanTransition(tt.to))
		})
	}
	require.True(t, StateFailed.Terminal())
	require.False(t, StateConfirming.Terminal())
}

func TestAttemptPanicsOnIllegalTransition(t *testing.T) {
	a := newAttempt(Request{}, time.Now())
	a.advance(StateValidating)
	require.Panics(t, func() { a.advance(StateSucceeded) })
	require.Equal(t, StateValidating, a.State())

	a.advance(StateFailed)
	require.Equal(t, []State{StateIdle, StateValidating, StateFailed}, a.States())
	require.Panics(t, func() { a.advance(StateSubmitting) })
}
