package system

import (
	"errors"
	"testing"
)

func TestStateNext(t *testing.T) {
	legal := []struct {
		from State
		on   Event
		to   State
	}{
		{StateReady, EventLoaded, StatePlaying},
		{StatePlaying, EventPortal, StateClear},
		{StateClear, EventLoaded, StatePlaying},
		{StateClear, EventExhausted, StateComplete},
		{StateComplete, EventRestart, StateReady},
	}
	allowed := make(map[[2]int]State)
	for _, tc := range legal {
		allowed[[2]int{int(tc.from), int(tc.on)}] = tc.to
	}

	states := []State{StateReady, StatePlaying, StateClear, StateComplete}
	events := []Event{EventLoaded, EventPortal, EventExhausted, EventRestart}
	for _, s := range states {
		for _, e := range events {
			t.Run(s.String()+"/"+e.String(), func(t *testing.T) {
				got, err := s.Next(e)
				want, ok := allowed[[2]int{int(s), int(e)}]
				if ok {
					if err != nil || got != want {
						t.Fatalf("Next = (%s, %v), want %s", got, err, want)
					}
					return
				}
				if !errors.Is(err, ErrIllegalTransition) {
					t.Fatalf("err = %v, want ErrIllegalTransition", err)
				}
				if got != s {
					t.Fatalf("illegal transition moved state to %s", got)
				}
			})
		}
	}
}

func TestStateString(t *testing.T) {
	if StateClear.String() != "CLEAR" || State(42).String() != "State(42)" {
		t.Fatalf("unexpected names %q %q", StateClear, State(42))
	}
}
