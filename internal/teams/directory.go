package teams

import (
	"strings"

	"gamecast-service/internal/domain"
)

// Directory is the static registry of canonical teams. It is built once at
// startup and never mutated afterwards; all lookups are pure.
type Directory struct {
	teams      []domain.CanonicalTeam
	byID       map[string]domain.CanonicalTeam
	byCode     map[string]domain.CanonicalTeam
	byFullName map[string]domain.CanonicalTeam
	byAlias    map[string]domain.CanonicalTeam
}

// NewDirectory indexes the given teams. Later entries win on duplicate keys,
// matching load order from configuration.
func NewDirectory(teams []domain.CanonicalTeam) *Directory {
	d := &Directory{
		teams:      make([]domain.CanonicalTeam, len(teams)),
		byID:       make(map[string]domain.CanonicalTeam, len(teams)),
		byCode:     make(map[string]domain.CanonicalTeam, len(teams)),
		byFullName: make(map[string]domain.CanonicalTeam, len(teams)),
		byAlias:    make(map[string]domain.CanonicalTeam),
	}
	copy(d.teams, teams)

	for _, t := range d.teams {
		d.byID[t.ID] = t
		d.byCode[t.Code] = t
		d.byFullName[t.FullName] = t
		for _, alias := range t.Aliases {
			d.byAlias[strings.ToLower(alias)] = t
		}
	}
	return d
}

// Team returns the canonical team for an id.
func (d *Directory) Team(id string) (domain.CanonicalTeam, bool) {
	t, ok := d.byID[id]
	return t, ok
}

// Teams returns a copy of every registered team.
func (d *Directory) Teams() []domain.CanonicalTeam {
	out := make([]domain.CanonicalTeam, len(d.teams))
	copy(out, d.teams)
	return out
}

// Len reports how many teams are registered.
func (d *Directory) Len() int {
	return len(d.teams)
}
