// internal/state/state.go
package state

import (
	"go-tower-grid/internal/defs"
	"go-tower-grid/internal/level"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// State - интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Shared holds what every state needs and outlives any single level.
type Shared struct {
	Catalog  *defs.Catalog
	Campaign *level.Campaign
	Face     font.Face
}

// StateMachine - структура для управления состояниями
type StateMachine struct {
	current State
	Shared  *Shared
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine(shared *Shared) *StateMachine {
	if shared == nil || shared.Catalog == nil || shared.Campaign == nil || shared.Face == nil {
		panic("state: shared catalog, campaign and font are required")
	}
	return &StateMachine{Shared: shared}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current returns the active state.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
