// internal/state/state.go
package state

import (
	"github.com/sirupsen/logrus"

	"go-hex-defense/internal/app"
	"go-hex-defense/internal/logging"
	"go-hex-defense/internal/restart"
)

// AppState identifies an application state.
type AppState int

const (
	Starting AppState = iota
	Playing
)

func (s AppState) String() string {
	switch s {
	case Starting:
		return "starting"
	case Playing:
		return "playing"
	default:
		return "unknown"
	}
}

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Exit()
	Kind() AppState
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
	pending State
	log     logrus.FieldLogger
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine(log logrus.FieldLogger) *StateMachine {
	return &StateMachine{log: logging.OrDiscard(log)}
}

// SetState switches immediately, running Exit on the old state and Enter
// on the new one.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.log.WithField("state", sm.current.Kind()).Info("state entered")
		sm.current.Enter()
	}
}

// RequestState schedules a switch for the start of the next Update.
// Requests made before that replace one another.
func (sm *StateMachine) RequestState(next State) {
	sm.pending = next
}

// PollRestart drains every queued restart token and, if there was at least
// one, requests a fresh Starting state. It returns the number of tokens.
func (sm *StateMachine) PollRestart(ch <-chan string, next func() State) int {
	n := restart.Drain(ch)
	if n > 0 {
		sm.log.WithField("tokens", n).Info("restart requested")
		sm.RequestState(next())
	}
	return n
}

// Update applies a pending switch, then updates the current state.
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.pending != nil {
		next := sm.pending
		sm.pending = nil
		sm.SetState(next)
	}
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *StateMachine) Current() State {
	return sm.current
}

// Game returns the running game, or nil outside the Playing state.
func (sm *StateMachine) Game() *app.Game {
	if p, ok := sm.current.(*PlayingState); ok {
		return p.game
	}
	return nil
}
