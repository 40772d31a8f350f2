// internal/component/building.go
package component

import (
	"go-tower-grid/internal/defs"
	"go-tower-grid/internal/types"
	"go-tower-grid/pkg/tilemap"
)

// Building - размещённое здание.
type Building struct {
	ID   types.EntityID
	Def  *defs.BuildingDefinition
	Root tilemap.Cell // верхний левый тайл
}

// Area returns the footprint.
func (b *Building) Area() tilemap.Area {
	return tilemap.Area{Position: b.Root, Size: b.Def.Size()}
}

// OccupiedCells lists every footprint tile.
func (b *Building) OccupiedCells() []tilemap.Cell {
	return b.Area().Cells()
}

// ContainsCell reports whether cell is part of the footprint.
func (b *Building) ContainsCell(c tilemap.Cell) bool {
	return b.Area().Contains(c)
}
