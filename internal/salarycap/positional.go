package salarycap

import (
	"slices"

	"github.com/omarshaarawi/capbot/internal/models"
)

type Slot string

const (
	SlotQB   Slot = "QB"
	SlotRB   Slot = "RB"
	SlotWR   Slot = "WR"
	SlotTE   Slot = "TE"
	SlotFlex Slot = "Flex"
)

// SlotRule is one lineup slot: how many players a team starts there and which
// positions may fill it.
type SlotRule struct {
	Slot      Slot
	Count     int
	Positions []string
}

// StandardLineup is two each of QB, RB, WR and TE plus four flex spots open
// to WR, RB and TE. Flex is filled last from the players left over.
var StandardLineup = []SlotRule{
	{Slot: SlotQB, Count: 2, Positions: []string{"QB"}},
	{Slot: SlotRB, Count: 2, Positions: []string{"RB"}},
	{Slot: SlotWR, Count: 2, Positions: []string{"WR"}},
	{Slot: SlotTE, Count: 2, Positions: []string{"TE"}},
	{Slot: SlotFlex, Count: 4, Positions: []string{"WR", "RB", "TE"}},
}

type SlotResult struct {
	Slot    Slot
	Count   int
	Average float64
	Players []*models.Player
}

type PositionalResult struct {
	Cap   float64
	Slots []SlotResult
}

// Slot returns the result for s.
func (r PositionalResult) Slot(s Slot) (SlotResult, bool) {
	for _, sr := range r.Slots {
		if sr.Slot == s {
			return sr, true
		}
	}
	return SlotResult{}, false
}

// Positional fills each lineup slot, in order, with the best paid eligible
// players, Count × teamCount of them, using every player at most once.
//
// For a single team the cap is the salary of the players actually picked, so
// an underfilled slot counts only the players the team has. Across several
// teams each slot adds its average salary times Count, the share of one
// team; an empty slot adds nothing.
func Positional(pool []*models.Player, lineup []SlotRule, teamCount int, excluded Set) PositionalResult {
	teamCount = max(teamCount, 1)
	ranked := byActual(eligiblePlayers(pool, excluded))
	used := make(Set, len(ranked))

	var res PositionalResult
	for _, rule := range lineup {
		want := rule.Count * teamCount
		var picked []*models.Player
		for _, p := range ranked {
			if len(picked) >= want {
				break
			}
			if used.Has(p.ID) || !slices.Contains(rule.Positions, p.Position) {
				continue
			}
			used[p.ID] = struct{}{}
			picked = append(picked, p)
		}

		avg := average(picked, actualSalary)
		res.Slots = append(res.Slots, SlotResult{
			Slot:    rule.Slot,
			Count:   rule.Count,
			Average: avg,
			Players: picked,
		})
		if teamCount == 1 {
			res.Cap += total(picked, actualSalary)
		} else {
			res.Cap += avg * float64(rule.Count)
		}
	}
	return res
}
