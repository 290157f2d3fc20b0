package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gamecast-service/internal/domain"
)

// teamsFile is the YAML shape of an external team directory.
type teamsFile struct {
	Teams []domain.CanonicalTeam `yaml:"teams"`
}

// LoadTeams reads a YAML team directory. The file replaces the built-in
// defaults wholesale; there is no merging.
func LoadTeams(path string) ([]domain.CanonicalTeam, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read teams file: %w", err)
	}

	var parsed teamsFile
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("config: parse teams file: %w", err)
	}
	if len(parsed.Teams) == 0 {
		return nil, fmt.Errorf("config: teams file %s contains no teams", path)
	}

	for i, t := range parsed.Teams {
		if t.ID == "" || t.Code == "" || t.FullName == "" {
			return nil, fmt.Errorf("config: team entry %d is missing id, code, or fullName", i)
		}
	}
	return parsed.Teams, nil
}

// possessionFile is the YAML shape of the canonical->external id table for
// the possession feed.
type possessionFile struct {
	Mappings map[string]string `yaml:"mappings"`
}

// LoadPossessionPairs reads the possession id mapping. Bijectivity is
// enforced later by possession.NewIDMap; this only parses.
func LoadPossessionPairs(path string) (map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read possession map: %w", err)
	}

	var parsed possessionFile
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("config: parse possession map: %w", err)
	}
	if len(parsed.Mappings) == 0 {
		return nil, fmt.Errorf("config: possession map %s contains no mappings", path)
	}
	return parsed.Mappings, nil
}
