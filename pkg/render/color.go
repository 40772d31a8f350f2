// pkg/render/color.go
package render

import (
	"image/color"

	"go-tower-grid/internal/config"
	"go-tower-grid/internal/defs"
)

// BuildingColor returns the fill colour of a building type. Definitions
// without a colour fall back to the default grey.
func BuildingColor(def *defs.BuildingDefinition) color.RGBA {
	if def == nil || def.Visuals.Color.A == 0 {
		return config.DefaultBuildingColor
	}
	return def.Visuals.Color
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
