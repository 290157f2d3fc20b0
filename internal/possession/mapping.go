package possession

import "fmt"

// IDMap is the static bijection between canonical team ids and the possession
// feed's external ids. It is an explicit external coupling maintained
// out-of-band: the table ships as injectable configuration (see
// internal/config) and is validated for bijectivity at load, never
// auto-reconciled at runtime.
type IDMap struct {
	toExternal  map[string]string
	toCanonical map[string]string
}

// NewIDMap validates and indexes canonical->external pairs. A duplicate
// external id breaks the inversion and is rejected.
func NewIDMap(pairs map[string]string) (*IDMap, error) {
	m := &IDMap{
		toExternal:  make(map[string]string, len(pairs)),
		toCanonical: make(map[string]string, len(pairs)),
	}
	for canonical, external := range pairs {
		if canonical == "" || external == "" {
			return nil, fmt.Errorf("possession: empty id in mapping %q->%q", canonical, external)
		}
		if existing, ok := m.toCanonical[external]; ok {
			return nil, fmt.Errorf("possession: external id %q mapped to both %q and %q", external, existing, canonical)
		}
		m.toExternal[canonical] = external
		m.toCanonical[external] = canonical
	}
	return m, nil
}

// External maps a canonical team id to the feed's id.
func (m *IDMap) External(canonicalID string) (string, bool) {
	ext, ok := m.toExternal[canonicalID]
	return ext, ok
}

// Canonical inverts the mapping.
func (m *IDMap) Canonical(externalID string) (string, bool) {
	id, ok := m.toCanonical[externalID]
	return id, ok
}

// CanonicalIDs returns every mapped canonical id.
func (m *IDMap) CanonicalIDs() []string {
	ids := make([]string, 0, len(m.toExternal))
	for id := range m.toExternal {
		ids = append(ids, id)
	}
	return ids
}

// Len reports how many teams are mapped.
func (m *IDMap) Len() int {
	return len(m.toExternal)
}

// DefaultFootballPairs maps the built-in football teams to the possession
// feed's team ids.
func DefaultFootballPairs() map[string]string {
	return map[string]string{
		"101": "12", // Kansas City Chiefs
		"102": "25", // San Francisco 49ers
		"103": "2",  // Buffalo Bills
		"104": "21", // Philadelphia Eagles
		"105": "8",  // Detroit Lions
		"106": "33", // Baltimore Ravens
		"107": "9",  // Green Bay Packers
		"108": "26", // Seattle Seahawks
	}
}
