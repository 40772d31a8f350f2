// internal/grid/elevation.go
package grid

import "go-tower-grid/pkg/tilemap"

// ElevationResolver maps each tile layer to its nearest enclosing elevation
// container. The table is built once; nil means the top-level ground.
type ElevationResolver struct {
	groups map[*tilemap.Node]*tilemap.Node
}

// NewElevationResolver walks the terrain tree under root.
func NewElevationResolver(root *tilemap.Node) *ElevationResolver {
	r := &ElevationResolver{groups: make(map[*tilemap.Node]*tilemap.Node)}
	if root != nil {
		r.walk(root, nil)
	}
	return r
}

// walk передаёт вниз ближайший контейнер высоты. Сам узел своим контейнером
// не считается: поиск начинается с родителя.
func (r *ElevationResolver) walk(n *tilemap.Node, enclosing *tilemap.Node) {
	if n.Kind == tilemap.KindTiles {
		r.groups[n] = enclosing
	}
	next := enclosing
	if n.Kind == tilemap.KindElevation {
		next = n
	}
	for _, child := range n.Children {
		r.walk(child, next)
	}
}

// Group returns the elevation group of layer, or nil.
func (r *ElevationResolver) Group(layer *tilemap.Node) *tilemap.Node {
	if layer == nil {
		return nil
	}
	return r.groups[layer]
}
