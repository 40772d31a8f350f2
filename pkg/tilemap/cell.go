// pkg/tilemap/cell.go
package tilemap

import "math"

// Cell - целочисленная координата тайла.
type Cell struct {
	X, Y int
}

// Add returns the sum of two cells.
func (c Cell) Add(other Cell) Cell {
	return Cell{X: c.X + other.X, Y: c.Y + other.Y}
}

// Point is a continuous position measured in tiles.
type Point struct {
	X, Y float64
}

// WorldToPoint converts world pixels into tile units.
func WorldToPoint(x, y, tileSize float64) Point {
	return Point{X: x / tileSize, Y: y / tileSize}
}

// Floor returns the cell containing the point.
func (p Point) Floor() Cell {
	return Cell{X: int(math.Floor(p.X)), Y: int(math.Floor(p.Y))}
}

// Round returns the nearest cell corner to the point.
func (p Point) Round() Cell {
	return Cell{X: int(math.Round(p.X)), Y: int(math.Round(p.Y))}
}

// Area - прямоугольник тайлов. End() не входит в область.
type Area struct {
	Position Cell
	Size     Cell
}

// NewArea builds an area from a root cell and dimensions.
func NewArea(root Cell, w, h int) Area {
	return Area{Position: root, Size: Cell{X: w, Y: h}}
}

// End returns the exclusive bottom-right corner.
func (a Area) End() Cell {
	return a.Position.Add(a.Size)
}

// Empty reports whether the area has no tiles.
func (a Area) Empty() bool {
	return a.Size.X <= 0 || a.Size.Y <= 0
}

// Cells lists the tiles of the area row by row.
func (a Area) Cells() []Cell {
	if a.Empty() {
		return nil
	}
	cells := make([]Cell, 0, a.Size.X*a.Size.Y)
	for y := a.Position.Y; y < a.Position.Y+a.Size.Y; y++ {
		for x := a.Position.X; x < a.Position.X+a.Size.X; x++ {
			cells = append(cells, Cell{X: x, Y: y})
		}
	}
	return cells
}

// Contains reports whether cell lies inside the area.
func (a Area) Contains(c Cell) bool {
	end := a.End()
	return c.X >= a.Position.X && c.X < end.X && c.Y >= a.Position.Y && c.Y < end.Y
}

// Center returns the geometric center of the area in tile units.
func (a Area) Center() Point {
	return Point{
		X: float64(a.Position.X) + float64(a.Size.X)/2,
		Y: float64(a.Position.Y) + float64(a.Size.Y)/2,
	}
}
