// internal/state/starting_state.go
package state

import "go-hex-defense/internal/app"

// GameFactory builds a fresh game for every run.
type GameFactory func() *app.Game

// StartingState builds a new game on entry and hands it to PlayingState on
// its first update.
type StartingState struct {
	sm      *StateMachine
	factory GameFactory
	game    *app.Game
}

func NewStartingState(sm *StateMachine, factory GameFactory) *StartingState {
	return &StartingState{sm: sm, factory: factory}
}

func (s *StartingState) Enter() {
	s.game = s.factory()
}

func (s *StartingState) Update(deltaTime float64) {
	s.sm.SetState(NewPlayingState(s.sm, s.game))
}

func (s *StartingState) Exit() {}

func (s *StartingState) Kind() AppState { return Starting }
