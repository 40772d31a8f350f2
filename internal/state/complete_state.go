// internal/state/complete_state.go
package state

import (
	"fmt"

	"go-tower-grid/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

var _ State = (*CompleteState)(nil)

// CompleteState - экран завершения уровня.
type CompleteState struct {
	sm        *StateMachine
	levelName string
}

func NewCompleteState(sm *StateMachine, levelName string) *CompleteState {
	return &CompleteState{sm: sm, levelName: levelName}
}

func (s *CompleteState) Enter() {}

func (s *CompleteState) Update(deltaTime float64) {
	if !inpututil.IsKeyJustPressed(ebiten.KeySpace) && !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	campaign := s.sm.Shared.Campaign
	if campaign.HasNext() {
		s.sm.SetState(NewLevelState(s.sm, campaign.Current()+1))
		return
	}
	s.sm.SetState(NewMenuState(s.sm))
}

func (s *CompleteState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	lines := []string{fmt.Sprintf("%s complete!", s.levelName)}
	if s.sm.Shared.Campaign.HasNext() {
		lines = append(lines, "Press Space for the next level")
	} else {
		lines = append(lines, "Campaign finished. Press Space to return to the menu")
	}
	y := config.ScreenHeight / 2
	for _, line := range lines {
		x := (config.ScreenWidth - len(line)*config.TextCharWidth) / 2
		text.Draw(screen, line, s.sm.Shared.Face, x, y, config.TextLightColor)
		y += 24
	}
}

func (s *CompleteState) Exit() {}
