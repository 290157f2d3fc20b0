package teams

import (
	"testing"

	"gamecast-service/internal/domain"
)

func TestResolveAliasesAgreeOnOneTeam(t *testing.T) {
	d := DefaultDirectory()

	refs := []string{"LAL", "Los Angeles Lakers", "Lakers", "LA Lakers"}
	var ids []string
	for _, ref := range refs {
		team, err := d.Resolve(ref)
		if err != nil {
			t.Fatalf("Resolve(%q): unexpected error %v", ref, err)
		}
		ids = append(ids, team.ID)
	}
	for i, id := range ids {
		if id != "14" {
			t.Fatalf("Resolve(%q): expected id 14, got %s", refs[i], id)
		}
	}
}

func TestResolvePrecedenceCodeBeforeSubstring(t *testing.T) {
	d := NewDirectory([]domain.CanonicalTeam{
		{ID: "1", Code: "MIA", FullName: "Miami Heat", League: domain.LeagueBasketball},
		{ID: "2", Code: "MIAD", FullName: "Miami Dolphins", League: domain.LeagueFootball},
	})

	// "MIA" substring-matches both full names, but the exact code wins first.
	team, err := d.Resolve("MIA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if team.ID != "1" {
		t.Fatalf("expected exact code match to win, got id %s", team.ID)
	}
}

func TestResolveSubstringBothDirections(t *testing.T) {
	d := DefaultDirectory()

	// Reference longer than the stored name.
	team, err := d.Resolve("the Denver Nuggets franchise")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if team.Code != "DEN" {
		t.Fatalf("expected DEN, got %s", team.Code)
	}

	// Reference shorter than the stored name.
	team, err = d.Resolve("Seahawks")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if team.Code != "SEA" {
		t.Fatalf("expected SEA, got %s", team.Code)
	}
}

func TestResolveAmbiguousReference(t *testing.T) {
	d := DefaultDirectory()

	// Both Los Angeles teams substring-match; the resolver must refuse to guess.
	_, err := d.Resolve("Los Angeles")
	ambErr, ok := domain.AsAmbiguousReferenceError(err)
	if !ok {
		t.Fatalf("expected AmbiguousReferenceError, got %v", err)
	}
	if len(ambErr.Candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %v", ambErr.Candidates)
	}
}

func TestResolveNotFound(t *testing.T) {
	d := DefaultDirectory()
	if _, err := d.Resolve("Springfield Isotopes"); !domain.IsNotFound(err) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := d.Resolve("   "); !domain.IsNotFound(err) {
		t.Fatalf("expected ErrNotFound for blank reference, got %v", err)
	}
}

func TestResolveNoFuzzyMatching(t *testing.T) {
	d := DefaultDirectory()
	// One-character typo must not resolve: containment only, no edit distance.
	if _, err := d.Resolve("Lakres"); !domain.IsNotFound(err) {
		t.Fatalf("expected ErrNotFound for typo, got %v", err)
	}
}

func TestDirectoryLookupByID(t *testing.T) {
	d := DefaultDirectory()
	team, ok := d.Team("101")
	if !ok || team.Code != "KC" {
		t.Fatalf("expected Chiefs for id 101, got %+v ok=%v", team, ok)
	}
	if _, ok := d.Team("999"); ok {
		t.Fatal("expected miss for unknown id")
	}
}
