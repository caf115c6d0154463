package transfer

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// State is a step of a transfer attempt.
type State string

const (
	StateIdle              State = "idle"
	StateValidating        State = "validating"
	StateBuilding          State = "building"
	StateAwaitingSignature State = "awaiting_signature"
	StateBroadcasting      State = "broadcasting"
	StateConfirming        State = "confirming"
	StateRecording         State = "recording"
	StateDone              State = "done"
	StateFailed            State = "failed"
)

// Terminal reports whether no transition leaves s.
func (s State) Terminal() bool {
	return s == StateDone || s == StateFailed
}

var transitions = map[State][]State{
	StateIdle:              {StateValidating},
	StateValidating:        {StateBuilding},
	StateBuilding:          {StateAwaitingSignature},
	StateAwaitingSignature: {StateBroadcasting},
	// Broadcasting returns to Building when a rejected submission is rebuilt
	StateBroadcasting: {StateConfirming, StateBuilding},
	StateConfirming:   {StateRecording},
	StateRecording:    {StateDone},
}

func canTransition(from, to State) bool {
	if to == StateFailed {
		return !from.Terminal()
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition is one recorded state change.
type Transition struct {
	From State     `json:"from"`
	To   State     `json:"to"`
	At   time.Time `json:"at"`
}

// Observer is notified of every transition of an attempt.
type Observer interface {
	OnTransition(attemptID uuid.UUID, t Transition, err error)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(attemptID uuid.UUID, t Transition, err error)

func (f ObserverFunc) OnTransition(attemptID uuid.UUID, t Transition, err error) {
	f(attemptID, t, err)
}

// Attempt tracks one run of the transfer flow. It is not safe for concurrent use.
type Attempt struct {
	ID      uuid.UUID
	Request Request

	state    State
	failure  *Error
	history  []Transition
	observer Observer
	now      func() time.Time
}

func newAttempt(req Request, observer Observer, now func() time.Time) *Attempt {
	return &Attempt{
		ID:       uuid.New(),
		Request:  req,
		state:    StateIdle,
		observer: observer,
		now:      now,
	}
}

// State returns the current state.
func (a *Attempt) State() State { return a.state }

// Failure returns the terminal failure, if any.
func (a *Attempt) Failure() *Error { return a.failure }

// History returns the transitions so far.
func (a *Attempt) History() []Transition {
	out := make([]Transition, len(a.history))
	copy(out, a.history)
	return out
}

func (a *Attempt) advance(to State) {
	a.move(to, nil)
}

// fail moves the attempt to Failed and returns the typed error.
func (a *Attempt) fail(reason, cause error) *Error {
	e := &Error{Reason: reason, State: a.state, Err: cause}
	a.failure = e
	a.move(StateFailed, e)
	return e
}

func (a *Attempt) failWith(e *Error) *Error {
	e.State = a.state
	a.failure = e
	a.move(StateFailed, e)
	return e
}

func (a *Attempt) move(to State, err error) {
	if !canTransition(a.state, to) {
		panic(fmt.Sprintf("transfer: illegal transition %s -> %s", a.state, to))
	}
	t := Transition{From: a.state, To: to, At: a.now()}
	a.history = append(a.history, t)
	a.state = to
	if a.observer != nil {
		a.observer.OnTransition(a.ID, t, err)
	}
}
