// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"go-tower-grid/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button - прямоугольная кнопка с подписью.
type Button struct {
	Rect     image.Rectangle
	Text     string
	Disabled bool
	Selected bool
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string) *Button {
	return &Button{Rect: rect, Text: label}
}

// Contains reports whether the screen point lies on the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку; hovered подсвечивает её под курсором.
func (b *Button) Draw(screen *ebiten.Image, face font.Face, hovered bool) {
	var bg color.Color = config.ButtonColor
	switch {
	case b.Disabled:
		bg = config.ButtonDisabledColor
	case b.Selected:
		bg = config.ButtonSelectedColor
	case hovered:
		bg = config.ButtonHoverColor
	}

	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, config.StrokeWidth, config.TextLightColor, true)

	bounds := text.BoundString(face, b.Text)
	textX := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	textY := b.Rect.Min.Y + (b.Rect.Dy()+bounds.Dy())/2 - config.TextOffsetY/2
	text.Draw(screen, b.Text, face, textX, textY, config.TextLightColor)
}
