// internal/ui/building_bar.go
package ui

import (
	"fmt"
	"image"

	"go-tower-grid/internal/config"
	"go-tower-grid/internal/defs"
	"go-tower-grid/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// BuildingBar - панель выбора зданий внизу экрана. Клик по доступному
// зданию отправляет BuildingTypeSelected.
type BuildingBar struct {
	defs       []*defs.BuildingDefinition
	buttons    []*Button
	dispatcher *event.Dispatcher
}

// NewBuildingBar lays the buttons out left to right along the bottom edge.
func NewBuildingBar(list []*defs.BuildingDefinition, dispatcher *event.Dispatcher) *BuildingBar {
	bar := &BuildingBar{defs: list, dispatcher: dispatcher}
	top := config.ScreenHeight - config.BarHeight + config.BarPadding
	bottom := config.ScreenHeight - config.BarPadding
	for i, def := range list {
		left := config.BarPadding + i*(config.BarButtonWidth+config.BarPadding)
		rect := image.Rect(left, top, left+config.BarButtonWidth, bottom)
		bar.buttons = append(bar.buttons, NewButton(rect, fmt.Sprintf("%d %s (%d)", i+1, def.Name, def.Cost)))
	}
	dispatcher.Subscribe(event.AvailableResourcesChanged, bar)
	dispatcher.Subscribe(event.BuildingTypeSelected, bar)
	return bar
}

// OnEvent keeps affordability and selection in sync.
func (bar *BuildingBar) OnEvent(e event.Event) {
	switch e.Type {
	case event.AvailableResourcesChanged:
		if n, ok := e.Data.(int); ok {
			for i, def := range bar.defs {
				bar.buttons[i].Disabled = def.Cost > n
			}
		}
	case event.BuildingTypeSelected:
		selected, _ := e.Data.(*defs.BuildingDefinition)
		for i, def := range bar.defs {
			bar.buttons[i].Selected = def == selected
		}
	}
}

// ClearSelection drops the highlighted entry.
func (bar *BuildingBar) ClearSelection() {
	for _, b := range bar.buttons {
		b.Selected = false
	}
}

// Select dispatches the selection for the entry at index.
func (bar *BuildingBar) Select(index int) bool {
	if index < 0 || index >= len(bar.defs) || bar.buttons[index].Disabled {
		return false
	}
	bar.dispatcher.Dispatch(event.Event{Type: event.BuildingTypeSelected, Data: bar.defs[index]})
	return true
}

// HandleClick returns true if the click landed on the bar.
func (bar *BuildingBar) HandleClick(x, y int) bool {
	if y < config.ScreenHeight-config.BarHeight {
		return false
	}
	for i, b := range bar.buttons {
		if b.Contains(x, y) {
			bar.Select(i)
			break
		}
	}
	return true
}

// Draw отрисовывает панель.
func (bar *BuildingBar) Draw(screen *ebiten.Image, face font.Face, cursorX, cursorY int) {
	for _, b := range bar.buttons {
		b.Draw(screen, face, b.Contains(cursorX, cursorY))
	}
}
