// internal/defs/loader.go
package defs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed buildings.schema.json
var buildingsSchemaSource string

var buildingsSchema = jsonschema.MustCompileString("buildings.schema.json", buildingsSchemaSource)

// ParseCatalog validates raw JSON against the building schema and decodes it.
func ParseCatalog(data []byte) (*Catalog, error) {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse building definitions: %w", err)
	}
	if err := buildingsSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("invalid building definitions: %w", err)
	}

	var list []BuildingDefinition
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal building definitions: %w", err)
	}

	seen := make(map[string]bool, len(list))
	for _, def := range list {
		if seen[def.ID] {
			return nil, fmt.Errorf("duplicate building id %q", def.ID)
		}
		seen[def.ID] = true
	}
	return NewCatalog(list), nil
}

// LoadCatalog reads the building definitions file.
func LoadCatalog(path string) (*Catalog, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read building definitions file: %w", err)
	}
	catalog, err := ParseCatalog(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("Loaded %d building definitions", len(catalog.All()))
	return catalog, nil
}

// ParseLevel decodes and validates a level definition.
func ParseLevel(data []byte, catalog *Catalog) (*LevelDefinition, error) {
	var level LevelDefinition
	if err := yaml.Unmarshal(data, &level); err != nil {
		return nil, fmt.Errorf("failed to unmarshal level: %w", err)
	}
	if err := level.Validate(catalog); err != nil {
		return nil, err
	}
	return &level, nil
}

// LoadLevel reads a level definition file.
func LoadLevel(path string, catalog *Catalog) (*LevelDefinition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file: %w", err)
	}
	level, err := ParseLevel(raw, catalog)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return level, nil
}

// LoadCampaign reads the campaign file and resolves level paths against its
// directory.
func LoadCampaign(path string) (*CampaignDefinition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read campaign file: %w", err)
	}
	var campaign CampaignDefinition
	if err := yaml.Unmarshal(raw, &campaign); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(campaign.Levels) == 0 {
		return nil, fmt.Errorf("%s: campaign has no levels", path)
	}
	dir := filepath.Dir(path)
	for i, entry := range campaign.Levels {
		if !filepath.IsAbs(entry.File) {
			campaign.Levels[i].File = filepath.Join(dir, entry.File)
		}
	}
	log.Printf("Loaded campaign with %d levels", len(campaign.Levels))
	return &campaign, nil
}
