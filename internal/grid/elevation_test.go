package grid

import (
	"testing"

	"go-tower-grid/pkg/tilemap"
)

func TestElevationResolverNearestGroup(t *testing.T) {
	root := tilemap.NewNode("base", tilemap.KindTiles)
	decor := root.AddChild(tilemap.NewNode("decor", tilemap.KindGroup))
	props := decor.AddChild(tilemap.NewNode("props", tilemap.KindTiles))
	hills := root.AddChild(tilemap.NewNode("hills", tilemap.KindElevation))
	hillGround := hills.AddChild(tilemap.NewNode("hill-ground", tilemap.KindTiles))
	wrapper := hills.AddChild(tilemap.NewNode("wrapper", tilemap.KindGroup))
	cliffs := wrapper.AddChild(tilemap.NewNode("cliffs", tilemap.KindElevation))
	cliffTop := cliffs.AddChild(tilemap.NewNode("cliff-top", tilemap.KindTiles))

	r := NewElevationResolver(root)
	tests := []struct {
		layer *tilemap.Node
		want  *tilemap.Node
	}{
		{root, nil},
		{props, nil},
		{hillGround, hills},
		{cliffTop, cliffs},
		{nil, nil},
		{tilemap.NewNode("stranger", tilemap.KindTiles), nil},
	}
	for _, tt := range tests {
		if got := r.Group(tt.layer); got != tt.want {
			t.Errorf("Group(%v) = %v, want %v", tt.layer, got, tt.want)
		}
	}
}
