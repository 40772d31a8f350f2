// internal/grid/radius.go
package grid

import (
	"go-tower-grid/pkg/tilemap"
	"math"
)

// CellFilter decides whether a tile is kept by a radius query.
type CellFilter func(tilemap.Cell) bool

// AnyCell accepts every tile.
func AnyCell(tilemap.Cell) bool { return true }

// TilesInRadius returns the tiles around area whose centers fall inside a
// circle of radius + max(w, h)/2 around the area center, filtered by keep.
// Non-positive dimensions are treated as 1 so the footprint tile itself is
// always a candidate.
func TilesInRadius(area tilemap.Area, radius int, keep CellFilter) []tilemap.Cell {
	if area.Size.X < 1 {
		area.Size.X = 1
	}
	if area.Size.Y < 1 {
		area.Size.Y = 1
	}
	if radius < 0 {
		radius = 0
	}
	if keep == nil {
		keep = AnyCell
	}

	center := area.Center()
	reach := float64(radius) + math.Max(float64(area.Size.X), float64(area.Size.Y))/2
	end := area.End()

	var result []tilemap.Cell
	for x := area.Position.X - radius; x <= end.X+radius; x++ {
		for y := area.Position.Y - radius; y <= end.Y+radius; y++ {
			c := tilemap.Cell{X: x, Y: y}
			if !isTileInsideCircle(center, c, reach) || !keep(c) {
				continue
			}
			result = append(result, c)
		}
	}
	return result
}

// isTileInsideCircle tests the tile's center point.
func isTileInsideCircle(center tilemap.Point, c tilemap.Cell, radius float64) bool {
	dx := center.X - (float64(c.X) + .5)
	dy := center.Y - (float64(c.Y) + .5)
	return dx*dx+dy*dy <= radius*radius
}
