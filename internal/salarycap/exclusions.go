package salarycap

import "sort"

// Set is a set of player IDs. A nil Set is empty.
type Set map[string]struct{}

func NewSet(ids ...string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

// IDs returns the members in ascending order.
func (s Set) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Exclusions holds, per fantasy team, the players currently left out of that
// team's cap pool. It starts empty and lives for one session only.
type Exclusions struct {
	byTeam map[int]Set
}

func NewExclusions() *Exclusions {
	return &Exclusions{byTeam: make(map[int]Set)}
}

// Toggle flips playerID in teamID's set and reports whether it is now
// excluded.
func (e *Exclusions) Toggle(teamID int, playerID string) bool {
	set := e.byTeam[teamID]
	if set.Has(playerID) {
		delete(set, playerID)
		if len(set) == 0 {
			delete(e.byTeam, teamID)
		}
		return false
	}
	if set == nil {
		set = make(Set)
		e.byTeam[teamID] = set
	}
	set[playerID] = struct{}{}
	return true
}

func (e *Exclusions) Excluded(teamID int, playerID string) bool {
	return e.byTeam[teamID].Has(playerID)
}

func (e *Exclusions) Count(teamID int) int {
	return len(e.byTeam[teamID])
}

// Team returns a copy of teamID's set.
func (e *Exclusions) Team(teamID int) Set {
	out := make(Set, len(e.byTeam[teamID]))
	for id := range e.byTeam[teamID] {
		out[id] = struct{}{}
	}
	return out
}

// All returns the union of every team's set. It is rebuilt on each call.
func (e *Exclusions) All() Set {
	out := make(Set)
	for _, set := range e.byTeam {
		for id := range set {
			out[id] = struct{}{}
		}
	}
	return out
}
