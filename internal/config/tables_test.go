package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadTeams(t *testing.T) {
	path := writeFile(t, "teams.yaml", `
teams:
  - id: "2"
    code: BOS
    fullName: Boston Celtics
    aliases: [Celtics]
    league: basketball
  - id: "14"
    code: LAL
    fullName: Los Angeles Lakers
    league: basketball
`)

	teams, err := LoadTeams(path)
	if err != nil {
		t.Fatalf("LoadTeams returned error: %v", err)
	}
	if len(teams) != 2 {
		t.Fatalf("got %d teams, want 2", len(teams))
	}
	if teams[0].Code != "BOS" || teams[0].Aliases[0] != "Celtics" {
		t.Errorf("team 0 = %+v", teams[0])
	}
	if teams[1].League != "basketball" {
		t.Errorf("league = %q", teams[1].League)
	}
}

func TestLoadTeamsRejectsIncompleteEntry(t *testing.T) {
	path := writeFile(t, "teams.yaml", `
teams:
  - id: "2"
    fullName: Boston Celtics
`)

	if _, err := LoadTeams(path); err == nil {
		t.Fatal("expected error for entry without code")
	}
}

func TestLoadTeamsRejectsEmptyFile(t *testing.T) {
	path := writeFile(t, "teams.yaml", "teams: []\n")
	if _, err := LoadTeams(path); err == nil {
		t.Fatal("expected error for empty team list")
	}
}

func TestLoadPossessionPairs(t *testing.T) {
	path := writeFile(t, "possession.yaml", `
mappings:
  "101": "12"
  "103": "2"
`)

	pairs, err := LoadPossessionPairs(path)
	if err != nil {
		t.Fatalf("LoadPossessionPairs returned error: %v", err)
	}
	if pairs["101"] != "12" || pairs["103"] != "2" {
		t.Errorf("pairs = %v", pairs)
	}
}

func TestLoadPossessionPairsMissingFile(t *testing.T) {
	if _, err := LoadPossessionPairs(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
