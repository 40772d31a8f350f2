// internal/defs/levels.go
package defs

import (
	"fmt"
	"go-tower-grid/pkg/tilemap"
	"unicode/utf8"
)

// Terrain node kinds as written in level files.
const (
	NodeKindTiles     = "tiles"
	NodeKindElevation = "elevation"
	NodeKindGroup     = "group"
)

// LevelDefinition is the static configuration of one level.
type LevelDefinition struct {
	Name              string              `yaml:"name"`
	StartingResources int                 `yaml:"starting_resources"`
	Goal              []int               `yaml:"goal,omitempty"` // клетка золотой шахты
	Legend            map[string][]string `yaml:"legend"`
	Terrain           NodeSpec            `yaml:"terrain"`
	Buildings         []PlacementSpec     `yaml:"buildings"`
}

// NodeSpec describes one terrain node. Rows are read top to bottom starting
// at Origin; a space means "no tile in this layer".
type NodeSpec struct {
	Name     string     `yaml:"name"`
	Kind     string     `yaml:"kind"`
	Origin   []int      `yaml:"origin,omitempty"`
	Rows     []string   `yaml:"rows,omitempty"`
	Children []NodeSpec `yaml:"children,omitempty"`
}

// PlacementSpec is a building present when the level starts.
type PlacementSpec struct {
	Building string `yaml:"building"`
	At       []int  `yaml:"at"`
}

// Cell converts the placement position.
func (p PlacementSpec) Cell() tilemap.Cell {
	return tilemap.Cell{X: p.At[0], Y: p.At[1]}
}

// GoalCell returns the goal tile, if the level has one.
func (l *LevelDefinition) GoalCell() (tilemap.Cell, bool) {
	if len(l.Goal) != 2 {
		return tilemap.Cell{}, false
	}
	return tilemap.Cell{X: l.Goal[0], Y: l.Goal[1]}, true
}

// Validate checks the references inside the definition.
func (l *LevelDefinition) Validate(catalog *Catalog) error {
	if l.Name == "" {
		return fmt.Errorf("level has no name")
	}
	if l.StartingResources < 0 {
		return fmt.Errorf("level %q: negative starting resources", l.Name)
	}
	if l.Goal != nil && len(l.Goal) != 2 {
		return fmt.Errorf("level %q: goal must be [x, y]", l.Name)
	}
	for key := range l.Legend {
		if utf8.RuneCountInString(key) != 1 || key == " " {
			return fmt.Errorf("level %q: legend key %q must be a single non-space rune", l.Name, key)
		}
	}
	if err := validateNode(l.Terrain, l.Legend); err != nil {
		return fmt.Errorf("level %q: %w", l.Name, err)
	}
	for i, p := range l.Buildings {
		if len(p.At) != 2 {
			return fmt.Errorf("level %q: building %d: position must be [x, y]", l.Name, i)
		}
		if catalog != nil {
			if _, ok := catalog.Get(p.Building); !ok {
				return fmt.Errorf("level %q: unknown building %q", l.Name, p.Building)
			}
		}
	}
	return nil
}

func validateNode(n NodeSpec, legend map[string][]string) error {
	switch n.Kind {
	case "", NodeKindTiles:
		if n.Origin != nil && len(n.Origin) != 2 {
			return fmt.Errorf("node %q: origin must be [x, y]", n.Name)
		}
		for y, row := range n.Rows {
			for _, r := range row {
				if r == ' ' {
					continue
				}
				if _, ok := legend[string(r)]; !ok {
					return fmt.Errorf("node %q row %d: rune %q not in legend", n.Name, y, r)
				}
			}
		}
	case NodeKindElevation, NodeKindGroup:
		if len(n.Rows) > 0 {
			return fmt.Errorf("node %q: %s nodes cannot hold tiles", n.Name, n.Kind)
		}
	default:
		return fmt.Errorf("node %q: unknown kind %q", n.Name, n.Kind)
	}
	for _, child := range n.Children {
		if err := validateNode(child, legend); err != nil {
			return err
		}
	}
	return nil
}

// BuildTerrain turns the node specs into a terrain tree. Call Validate first.
func (l *LevelDefinition) BuildTerrain() *tilemap.Terrain {
	legend := make(map[rune]tilemap.Flags, len(l.Legend))
	for key, names := range l.Legend {
		r, _ := utf8.DecodeRuneInString(key)
		flags := make(tilemap.Flags, len(names))
		for _, name := range names {
			flags[name] = true
		}
		legend[r] = flags
	}
	return tilemap.NewTerrain(buildNode(l.Terrain, legend))
}

func buildNode(spec NodeSpec, legend map[rune]tilemap.Flags) *tilemap.Node {
	var node *tilemap.Node
	switch spec.Kind {
	case NodeKindElevation:
		node = tilemap.NewNode(spec.Name, tilemap.KindElevation)
	case NodeKindGroup:
		node = tilemap.NewNode(spec.Name, tilemap.KindGroup)
	default:
		node = tilemap.NewNode(spec.Name, tilemap.KindTiles)
		origin := tilemap.Cell{}
		if len(spec.Origin) == 2 {
			origin = tilemap.Cell{X: spec.Origin[0], Y: spec.Origin[1]}
		}
		for y, row := range spec.Rows {
			x := 0
			for _, r := range row {
				if r != ' ' {
					node.SetCell(origin.Add(tilemap.Cell{X: x, Y: y}), legend[r])
				}
				x++
			}
		}
	}
	for _, child := range spec.Children {
		node.AddChild(buildNode(child, legend))
	}
	return node
}

// CampaignDefinition lists the levels in play order.
type CampaignDefinition struct {
	Levels []CampaignEntry `yaml:"levels"`
}

// CampaignEntry points at one level file, relative to the campaign file.
type CampaignEntry struct {
	File string `yaml:"file"`
}
