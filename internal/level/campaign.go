// internal/level/campaign.go
package level

import (
	"fmt"
	"log"

	"go-tower-grid/internal/defs"
)

// Campaign walks an ordered list of level files.
type Campaign struct {
	def     *defs.CampaignDefinition
	catalog *defs.Catalog
	current int
}

func NewCampaign(def *defs.CampaignDefinition, catalog *defs.Catalog) *Campaign {
	return &Campaign{def: def, catalog: catalog, current: -1}
}

// LoadCampaign reads a campaign file.
func LoadCampaign(path string, catalog *defs.Catalog) (*Campaign, error) {
	def, err := defs.LoadCampaign(path)
	if err != nil {
		return nil, err
	}
	return NewCampaign(def, catalog), nil
}

// Len returns the number of levels.
func (c *Campaign) Len() int {
	return len(c.def.Levels)
}

// File returns the path of the level file at index.
func (c *Campaign) File(index int) string {
	if index < 0 || index >= c.Len() {
		return ""
	}
	return c.def.Levels[index].File
}

// Current returns the index of the last loaded level, or -1.
func (c *Campaign) Current() int {
	return c.current
}

// Load builds the level at index and makes it current.
func (c *Campaign) Load(index int, opts ...Option) (*Level, error) {
	if index < 0 || index >= c.Len() {
		return nil, fmt.Errorf("level index %d out of range [0, %d)", index, c.Len())
	}
	def, err := defs.LoadLevel(c.def.Levels[index].File, c.catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to load level %d: %w", index, err)
	}
	l, err := New(def, c.catalog, opts...)
	if err != nil {
		return nil, err
	}
	c.current = index
	log.Printf("Level %d/%d loaded: %s", index+1, c.Len(), def.Name)
	return l, nil
}

// HasNext reports whether a level follows the current one.
func (c *Campaign) HasNext() bool {
	return c.current+1 < c.Len()
}

// Next loads the level after the current one.
func (c *Campaign) Next(opts ...Option) (*Level, error) {
	if !c.HasNext() {
		return nil, fmt.Errorf("campaign finished")
	}
	return c.Load(c.current+1, opts...)
}
