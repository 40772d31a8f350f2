// internal/state/menu_state.go
package state

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"go-tower-grid/internal/config"
	"go-tower-grid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// MenuState - выбор уровня кампании.
type MenuState struct {
	sm      *StateMachine
	buttons []*ui.Button
}

func NewMenuState(sm *StateMachine) *MenuState {
	return &MenuState{sm: sm}
}

func (m *MenuState) Enter() {
	m.buttons = m.buttons[:0]
	n := m.sm.Shared.Campaign.Len()
	left := (config.ScreenWidth - config.MenuButtonWidth) / 2
	top := (config.ScreenHeight - n*(config.MenuButtonHeight+config.MenuButtonGap)) / 2
	for i := 0; i < n; i++ {
		y := top + i*(config.MenuButtonHeight+config.MenuButtonGap)
		rect := image.Rect(left, y, left+config.MenuButtonWidth, y+config.MenuButtonHeight)
		m.buttons = append(m.buttons, ui.NewButton(rect, m.levelTitle(i)))
	}
}

func (m *MenuState) levelTitle(i int) string {
	file := filepath.Base(m.sm.Shared.Campaign.File(i))
	return fmt.Sprintf("%d. %s", i+1, strings.TrimSuffix(file, filepath.Ext(file)))
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(NewLevelState(m.sm, 0))
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	x, y := ebiten.CursorPosition()
	for i, b := range m.buttons {
		if b.Contains(x, y) {
			m.sm.SetState(NewLevelState(m.sm, i))
			return
		}
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := m.sm.Shared.Face
	title := "Select a level (Space starts the first)"
	text.Draw(screen, title, face, (config.ScreenWidth-len(title)*config.TextCharWidth)/2, config.ScreenHeight/4, config.TextLightColor)

	x, y := ebiten.CursorPosition()
	for _, b := range m.buttons {
		b.Draw(screen, face, b.Contains(x, y))
	}
}

func (m *MenuState) Exit() {}
