package salarycap

import (
	"slices"
	"testing"
)

func TestToggleRoundTrip(t *testing.T) {
	e := NewExclusions()

	if !e.Toggle(1, "p1") {
		t.Fatalf("first toggle should exclude")
	}
	if !e.Excluded(1, "p1") || e.Count(1) != 1 {
		t.Fatalf("p1 should be excluded on team 1")
	}
	if e.Excluded(2, "p1") {
		t.Errorf("exclusions must be per team")
	}

	if e.Toggle(1, "p1") {
		t.Fatalf("second toggle should include again")
	}
	if e.Excluded(1, "p1") || e.Count(1) != 0 {
		t.Errorf("p1 should no longer be excluded")
	}
	if len(e.byTeam) != 0 {
		t.Errorf("empty team sets should be dropped, got %v", e.byTeam)
	}
}

func TestTeamReturnsCopy(t *testing.T) {
	e := NewExclusions()
	e.Toggle(1, "p1")

	set := e.Team(1)
	set["p2"] = struct{}{}

	if e.Excluded(1, "p2") {
		t.Errorf("mutating the returned set leaked into exclusions")
	}
	if got := e.Team(9); got.Len() != 0 {
		t.Errorf("unknown team: want empty set, got %v", got)
	}
}

func TestAllIsUnion(t *testing.T) {
	e := NewExclusions()
	e.Toggle(1, "p1")
	e.Toggle(1, "p2")
	e.Toggle(2, "p3")

	want := []string{"p1", "p2", "p3"}
	if got := e.All().IDs(); !slices.Equal(got, want) {
		t.Errorf("want %v, got %v", want, got)
	}

	e.Toggle(1, "p2")
	want = []string{"p1", "p3"}
	if got := e.All().IDs(); !slices.Equal(got, want) {
		t.Errorf("after toggle back: want %v, got %v", want, got)
	}
}

func TestNilSet(t *testing.T) {
	var s Set
	if s.Has("x") || s.Len() != 0 || len(s.IDs()) != 0 {
		t.Errorf("nil set should behave as empty")
	}
}
