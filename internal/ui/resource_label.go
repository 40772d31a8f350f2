// internal/ui/resource_label.go
package ui

import (
	"fmt"

	"go-tower-grid/internal/config"
	"go-tower-grid/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// ResourceLabel показывает доступные ресурсы.
type ResourceLabel struct {
	X, Y      int
	available int
}

func NewResourceLabel(x, y int, dispatcher *event.Dispatcher) *ResourceLabel {
	l := &ResourceLabel{X: x, Y: y}
	dispatcher.Subscribe(event.AvailableResourcesChanged, l)
	return l
}

func (l *ResourceLabel) OnEvent(e event.Event) {
	if n, ok := e.Data.(int); ok && e.Type == event.AvailableResourcesChanged {
		l.available = n
	}
}

func (l *ResourceLabel) Text() string {
	return fmt.Sprintf("Wood: %d", l.available)
}

func (l *ResourceLabel) Draw(screen *ebiten.Image, face font.Face) {
	text.Draw(screen, l.Text(), face, l.X, l.Y+config.TextOffsetY*3, config.TextLightColor)
}
