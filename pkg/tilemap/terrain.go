// pkg/tilemap/terrain.go
package tilemap

// Reserved per-tile flag names.
const (
	FlagBuildable = "is_buildable"
	FlagWood      = "is_wood"
	FlagIgnored   = "is_ignored" // the layer does not answer for this tile
)

// Kind describes what a terrain node is.
type Kind int

const (
	KindTiles     Kind = iota // слой с тайлами
	KindElevation             // контейнер уровня высоты
	KindGroup                 // просто группа
)

// Flags holds the named metadata of one tile.
type Flags map[string]bool

// Get returns the flag value, false when absent.
func (f Flags) Get(name string) bool {
	return f[name]
}

// Node is one element of the terrain tree.
type Node struct {
	Name     string
	Kind     Kind
	Cells    map[Cell]Flags
	Children []*Node
	parent   *Node
}

// NewNode creates a detached node.
func NewNode(name string, kind Kind) *Node {
	n := &Node{Name: name, Kind: kind}
	if kind == KindTiles {
		n.Cells = make(map[Cell]Flags)
	}
	return n
}

// AddChild attaches child under n and returns the child.
func (n *Node) AddChild(child *Node) *Node {
	child.parent = n
	n.Children = append(n.Children, child)
	return child
}

// Parent returns the enclosing node or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// SetCell stores tile metadata. Only tile layers hold cells.
func (n *Node) SetCell(c Cell, flags Flags) {
	if n.Kind != KindTiles {
		return
	}
	n.Cells[c] = flags
}

// Terrain is the static tile data of a level. Layers are kept in lookup
// priority order.
type Terrain struct {
	root   *Node
	layers []*Node
}

// NewTerrain indexes the tile layers under root.
func NewTerrain(root *Node) *Terrain {
	t := &Terrain{root: root}
	if root != nil {
		t.layers = collectLayers(root)
	}
	return t
}

// collectLayers: последние дети рисуются сверху, поэтому идут первыми;
// сам узел проверяется после своих потомков.
func collectLayers(n *Node) []*Node {
	var result []*Node
	for i := len(n.Children) - 1; i >= 0; i-- {
		result = append(result, collectLayers(n.Children[i])...)
	}
	if n.Kind == KindTiles {
		result = append(result, n)
	}
	return result
}

// Root returns the root node.
func (t *Terrain) Root() *Node {
	return t.root
}

// Layers returns tile layers in priority order.
func (t *Terrain) Layers() []*Node {
	return t.layers
}

// Lookup returns the metadata of cell in layer.
func (t *Terrain) Lookup(layer *Node, c Cell) (Flags, bool) {
	if layer == nil || layer.Cells == nil {
		return nil, false
	}
	flags, ok := layer.Cells[c]
	return flags, ok
}

// UsedArea returns the bounding rectangle of every tile in every layer.
func (t *Terrain) UsedArea() Area {
	first := true
	var minX, minY, maxX, maxY int
	for _, layer := range t.layers {
		for c := range layer.Cells {
			if first {
				minX, maxX, minY, maxY = c.X, c.X, c.Y, c.Y
				first = false
				continue
			}
			minX = min(minX, c.X)
			maxX = max(maxX, c.X)
			minY = min(minY, c.Y)
			maxY = max(maxY, c.Y)
		}
	}
	if first {
		return Area{}
	}
	return Area{Position: Cell{X: minX, Y: minY}, Size: Cell{X: maxX - minX + 1, Y: maxY - minY + 1}}
}
