// internal/component/ghost.go
package component

import (
	"go-tower-grid/internal/defs"
	"go-tower-grid/pkg/tilemap"
)

// Ghost is the uncommitted preview of a building being placed.
type Ghost struct {
	Def   *defs.BuildingDefinition
	Area  tilemap.Area
	Valid bool
	Hops  int // сколько раз призрак перемещался, для анимации
}
