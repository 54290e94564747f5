package system

import (
	"errors"
	"fmt"
)

var ErrIllegalTransition = errors.New("system: illegal state transition")

// State is the game session phase.
type State int

const (
	StateReady State = iota
	StatePlaying
	StateClear
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "READY"
	case StatePlaying:
		return "PLAYING"
	case StateClear:
		return "CLEAR"
	case StateComplete:
		return "COMPLETE"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Event drives state transitions.
type Event int

const (
	// EventLoaded fires after a stage finished loading.
	EventLoaded Event = iota
	// EventPortal fires when the player reaches the portal.
	EventPortal
	// EventExhausted fires when a cleared stage has no successor.
	EventExhausted
	EventRestart
)

func (e Event) String() string {
	switch e {
	case EventLoaded:
		return "loaded"
	case EventPortal:
		return "portal"
	case EventExhausted:
		return "exhausted"
	case EventRestart:
		return "restart"
	default:
		return fmt.Sprintf("Event(%d)", int(e))
	}
}

// Next returns the state reached from s on e:
//
//	READY    --loaded-->    PLAYING
//	PLAYING  --portal-->    CLEAR
//	CLEAR    --loaded-->    PLAYING
//	CLEAR    --exhausted--> COMPLETE
//	COMPLETE --restart-->   READY
//
// Any other pair returns ErrIllegalTransition.
func (s State) Next(e Event) (State, error) {
	switch {
	case s == StateReady && e == EventLoaded:
		return StatePlaying, nil
	case s == StatePlaying && e == EventPortal:
		return StateClear, nil
	case s == StateClear && e == EventLoaded:
		return StatePlaying, nil
	case s == StateClear && e == EventExhausted:
		return StateComplete, nil
	case s == StateComplete && e == EventRestart:
		return StateReady, nil
	}
	return s, fmt.Errorf("%w: %s on %s", ErrIllegalTransition, s, e)
}
