package teams

import (
	"strings"

	"gamecast-service/internal/domain"
)

// Resolve maps a free-form team reference to its canonical team. Precedence,
// first match wins: exact code, exact full name, exact alias, then a
// case-insensitive substring containment (in either direction) against full
// names and codes. The substring stage must land on exactly one team;
// multiple remaining candidates produce an AmbiguousReferenceError instead of
// silently picking the first. No fuzzy or edit-distance matching.
func (d *Directory) Resolve(reference string) (domain.CanonicalTeam, error) {
	ref := strings.TrimSpace(reference)
	if ref == "" {
		return domain.CanonicalTeam{}, domain.ErrNotFound
	}

	if t, ok := d.byCode[ref]; ok {
		return t, nil
	}
	if t, ok := d.byFullName[ref]; ok {
		return t, nil
	}
	if t, ok := d.byAlias[strings.ToLower(ref)]; ok {
		return t, nil
	}

	return d.resolveBySubstring(ref)
}

func (d *Directory) resolveBySubstring(ref string) (domain.CanonicalTeam, error) {
	lowered := strings.ToLower(ref)

	var candidates []domain.CanonicalTeam
	for _, t := range d.teams {
		if containsEitherDirection(lowered, strings.ToLower(t.FullName)) ||
			containsEitherDirection(lowered, strings.ToLower(t.Code)) {
			candidates = append(candidates, t)
		}
	}

	switch len(candidates) {
	case 0:
		return domain.CanonicalTeam{}, domain.ErrNotFound
	case 1:
		return candidates[0], nil
	}

	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		names = append(names, c.FullName)
	}
	return domain.CanonicalTeam{}, &domain.AmbiguousReferenceError{Reference: ref, Candidates: names}
}

func containsEitherDirection(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
