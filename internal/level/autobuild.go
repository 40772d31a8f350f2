// internal/level/autobuild.go
package level

import "go-tower-grid/internal/utils"

// AutoBuild makes up to attempts random placements of selectable buildings,
// cheaper types being more likely. Each attempt goes through Place, so the
// usual rules and costs apply. Returns the number of buildings placed.
func (l *Level) AutoBuild(rng *utils.PRNGService, attempts int) int {
	choices := l.Catalog.Selectable()
	area := l.Terrain.UsedArea()
	if len(choices) == 0 || area.Empty() {
		return 0
	}

	maxCost := 0
	for _, def := range choices {
		maxCost = max(maxCost, def.Cost)
	}
	weights := make([]int, len(choices))
	for i, def := range choices {
		weights[i] = 1 + maxCost - def.Cost
	}

	placed := 0
	for i := 0; i < attempts; i++ {
		def := choices[rng.ChooseWeighted(weights)]
		if def.Cost > l.Ledger.Available() {
			continue
		}
		if err := l.Place(def.ID, rng.CellIn(area)); err == nil {
			placed++
		}
	}
	return placed
}
