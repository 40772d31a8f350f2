package tilemap

import "testing"

func TestAreaCellsAndContains(t *testing.T) {
	a := NewArea(Cell{X: 1, Y: 2}, 2, 3)
	cells := a.Cells()
	if len(cells) != 6 {
		t.Fatalf("expected 6 cells, got %d", len(cells))
	}
	if cells[0] != (Cell{X: 1, Y: 2}) || cells[1] != (Cell{X: 2, Y: 2}) {
		t.Errorf("cells not row-major: %v", cells[:2])
	}
	for _, c := range cells {
		if !a.Contains(c) {
			t.Errorf("area should contain %v", c)
		}
	}
	if a.Contains(a.End()) {
		t.Errorf("end %v must be exclusive", a.End())
	}
	if got := (Area{}).Cells(); got != nil {
		t.Errorf("empty area produced cells: %v", got)
	}
}

func TestPointConversions(t *testing.T) {
	p := WorldToPoint(-10, 130, 64)
	if got := p.Floor(); got != (Cell{X: -1, Y: 2}) {
		t.Errorf("floor = %v", got)
	}
	if got := (Point{X: 2.6, Y: -0.4}).Round(); got != (Cell{X: 3, Y: 0}) {
		t.Errorf("round = %v", got)
	}
}

func TestLayerPriorityOrder(t *testing.T) {
	root := NewNode("base", KindTiles)
	low := root.AddChild(NewNode("low", KindTiles))
	hills := root.AddChild(NewNode("hills", KindElevation))
	hillGround := hills.AddChild(NewNode("hill-ground", KindTiles))
	hillTrees := hills.AddChild(NewNode("hill-trees", KindTiles))

	terrain := NewTerrain(root)
	want := []*Node{hillTrees, hillGround, low, root}
	got := terrain.Layers()
	if len(got) != len(want) {
		t.Fatalf("expected %d layers, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("layer %d: got %s, want %s", i, got[i].Name, want[i].Name)
		}
	}
	if hillGround.Parent() != hills {
		t.Errorf("parent not recorded")
	}
}

func TestUsedArea(t *testing.T) {
	root := NewNode("base", KindTiles)
	root.SetCell(Cell{X: -1, Y: 0}, Flags{FlagBuildable: true})
	child := root.AddChild(NewNode("top", KindTiles))
	child.SetCell(Cell{X: 3, Y: 4}, Flags{})

	area := NewTerrain(root).UsedArea()
	want := Area{Position: Cell{X: -1, Y: 0}, Size: Cell{X: 5, Y: 5}}
	if area != want {
		t.Errorf("used area = %+v, want %+v", area, want)
	}
}
