// internal/defs/buildings.go
package defs

import (
	"go-tower-grid/pkg/tilemap"
	"image/color"
)

// BuildingDefinition holds all the static data for a specific type of building.
type BuildingDefinition struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Cost            int        `json:"cost"`
	Dimensions      Dimensions `json:"dimensions"`
	BuildableRadius int        `json:"buildable_radius"`
	ResourceRadius  int        `json:"resource_radius"`
	DangerRadius    int        `json:"danger_radius"`
	Deletable       bool       `json:"deletable"`
	Selectable      bool       `json:"selectable"` // показывать в панели строительства
	Visuals         Visuals    `json:"visuals"`
}

// Dimensions is the footprint size in tiles.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Visuals is opaque to the grid core; only the renderer reads it.
type Visuals struct {
	Sprite string     `json:"sprite"`
	Color  color.RGBA `json:"color"`
}

// Size returns the footprint as a cell vector.
func (d *BuildingDefinition) Size() tilemap.Cell {
	return tilemap.Cell{X: d.Dimensions.Width, Y: d.Dimensions.Height}
}

// Catalog is the library of building definitions in file order.
type Catalog struct {
	order []*BuildingDefinition
	byID  map[string]*BuildingDefinition
}

// NewCatalog builds a catalog from definitions. Later duplicates are ignored.
func NewCatalog(list []BuildingDefinition) *Catalog {
	c := &Catalog{byID: make(map[string]*BuildingDefinition, len(list))}
	for i := range list {
		def := list[i]
		if _, exists := c.byID[def.ID]; exists {
			continue
		}
		c.byID[def.ID] = &def
		c.order = append(c.order, &def)
	}
	return c
}

// Get looks a definition up by ID.
func (c *Catalog) Get(id string) (*BuildingDefinition, bool) {
	def, ok := c.byID[id]
	return def, ok
}

// All returns every definition in file order.
func (c *Catalog) All() []*BuildingDefinition {
	return c.order
}

// Selectable returns definitions the player may build.
func (c *Catalog) Selectable() []*BuildingDefinition {
	var result []*BuildingDefinition
	for _, def := range c.order {
		if def.Selectable {
			result = append(result, def)
		}
	}
	return result
}
