// internal/state/playing_state.go
package state

import "go-hex-defense/internal/app"

// PlayingState — состояние игры
type PlayingState struct {
	sm   *StateMachine
	game *app.Game
}

func NewPlayingState(sm *StateMachine, game *app.Game) *PlayingState {
	return &PlayingState{sm: sm, game: game}
}

func (p *PlayingState) Enter() {}

func (p *PlayingState) Update(deltaTime float64) {
	if p.game != nil {
		p.game.Update(deltaTime)
	}
}

func (p *PlayingState) Exit() {}

func (p *PlayingState) Kind() AppState { return Playing }
