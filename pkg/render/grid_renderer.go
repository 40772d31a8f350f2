// pkg/render/grid_renderer.go
package render

import (
	"image/color"

	"go-tower-grid/internal/component"
	"go-tower-grid/internal/config"
	"go-tower-grid/internal/grid"
	"go-tower-grid/internal/placement"
	"go-tower-grid/pkg/tilemap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FlagSource resolves a tile flag through the layer priority order.
type FlagSource interface {
	TileFlag(c tilemap.Cell, name string) (*tilemap.Node, bool)
}

// Scene is everything that changes between frames.
type Scene struct {
	Buildings  []*component.Building
	Ghost      *component.Ghost
	Highlights placement.Highlights
	Hovered    tilemap.Area
	Goal       tilemap.Cell
	HasGoal    bool
}

// GridRenderer draws the terrain once into an offscreen image and the
// dynamic layers on top each frame.
type GridRenderer struct {
	flags     FlagSource
	elevation *grid.ElevationResolver
	tileSize  float64
	area      tilemap.Area
	mapImage  *ebiten.Image // предрендеренная местность
}

func NewGridRenderer(terrain *tilemap.Terrain, flags FlagSource, elevation *grid.ElevationResolver, tileSize float64) *GridRenderer {
	r := &GridRenderer{
		flags:     flags,
		elevation: elevation,
		tileSize:  tileSize,
		area:      terrain.UsedArea(),
	}
	r.prerender()
	return r
}

// TerrainBounds returns the map size in pixels.
func (r *GridRenderer) TerrainBounds() (x, y, w, h float64) {
	return float64(r.area.Position.X) * r.tileSize, float64(r.area.Position.Y) * r.tileSize,
		float64(r.area.Size.X) * r.tileSize, float64(r.area.Size.Y) * r.tileSize
}

func (r *GridRenderer) prerender() {
	if r.area.Empty() {
		return
	}
	size := int(r.tileSize)
	r.mapImage = ebiten.NewImage(r.area.Size.X*size, r.area.Size.Y*size)
	for _, c := range r.area.Cells() {
		layer, buildable := r.flags.TileFlag(c, tilemap.FlagBuildable)
		if layer == nil {
			continue
		}
		_, wood := r.flags.TileFlag(c, tilemap.FlagWood)

		fill := config.BlockedColor
		switch {
		case wood:
			fill = config.WoodColor
		case buildable:
			fill = config.GroundColor
		}
		x := float32(c.X-r.area.Position.X) * float32(r.tileSize)
		y := float32(c.Y-r.area.Position.Y) * float32(r.tileSize)
		ts := float32(r.tileSize)
		vector.DrawFilledRect(r.mapImage, x, y, ts, ts, fill, false)
		if r.elevation.Group(layer) != nil {
			vector.DrawFilledRect(r.mapImage, x, y, ts, ts, config.HillTint, false)
		}
		vector.StrokeRect(r.mapImage, x, y, ts, ts, 1, DarkenColor(fill), false)
	}
}

// Draw renders the map with the camera at (camX, camY) in world pixels.
func (r *GridRenderer) Draw(screen *ebiten.Image, scene Scene, camX, camY float64) {
	if r.mapImage != nil {
		op := &ebiten.DrawImageOptions{}
		ox, oy, _, _ := r.TerrainBounds()
		op.GeoM.Translate(ox-camX, oy-camY)
		screen.DrawImage(r.mapImage, op)
	}

	h := scene.Highlights
	r.fillCells(screen, h.Buildable, config.BuildableOverlay, camX, camY)
	r.fillCells(screen, h.Expanded, config.ExpandedOverlay, camX, camY)
	r.fillCells(screen, h.Danger, config.DangerOverlay, camX, camY)
	r.fillCells(screen, h.Resource, config.ResourceOverlay, camX, camY)

	if scene.HasGoal {
		x, y := r.toScreen(scene.Goal, camX, camY)
		ts := float32(r.tileSize)
		vector.StrokeRect(screen, x+2, y+2, ts-4, ts-4, config.StrokeWidth*1.5, config.GoalColor, true)
	}

	for _, b := range scene.Buildings {
		fill := BuildingColor(b.Def)
		x, y, w, hh := r.areaRect(b.Area(), camX, camY)
		vector.DrawFilledRect(screen, x+1, y+1, w-2, hh-2, fill, true)
		vector.StrokeRect(screen, x+1, y+1, w-2, hh-2, config.StrokeWidth, DarkenColor(fill), true)
	}

	if g := scene.Ghost; g != nil {
		var tint color.Color = config.GhostInvalidColor
		if g.Valid {
			tint = config.GhostValidColor
		}
		x, y, w, hh := r.areaRect(g.Area, camX, camY)
		vector.DrawFilledRect(screen, x, y, w, hh, tint, true)
		vector.StrokeRect(screen, x, y, w, hh, config.StrokeWidth, config.BuildingStrokeColor, true)
		return
	}

	x, y, w, hh := r.areaRect(scene.Hovered, camX, camY)
	vector.DrawFilledRect(screen, x, y, w, hh, config.HoverOverlay, false)
}

func (r *GridRenderer) fillCells(screen *ebiten.Image, cells grid.CellSet, clr color.Color, camX, camY float64) {
	ts := float32(r.tileSize)
	for c := range cells {
		x, y := r.toScreen(c, camX, camY)
		vector.DrawFilledRect(screen, x, y, ts, ts, clr, false)
	}
}

func (r *GridRenderer) toScreen(c tilemap.Cell, camX, camY float64) (float32, float32) {
	return float32(float64(c.X)*r.tileSize - camX), float32(float64(c.Y)*r.tileSize - camY)
}

func (r *GridRenderer) areaRect(a tilemap.Area, camX, camY float64) (x, y, w, h float32) {
	x, y = r.toScreen(a.Position, camX, camY)
	return x, y, float32(float64(max(a.Size.X, 1)) * r.tileSize), float32(float64(max(a.Size.Y, 1)) * r.tileSize)
}
