// Package salarycap derives salary cap figures from the highest paid players
// of a pool. The calculations are pure functions of the pool, the subset size
// and the excluded player IDs; Session layers cached per-team and
// league-wide results and the exclusion toggles on top.
package salarycap

import (
	"math"
	"sort"
	"strings"

	"github.com/omarshaarawi/capbot/internal/models"
	"github.com/omarshaarawi/capbot/internal/roster"
)

// DefaultTeamSize is used when neither configuration nor the league document
// sets a salary-relevant team size.
const DefaultTeamSize = 20

// TeamSize returns the first positive size, or DefaultTeamSize.
func TeamSize(sizes ...int) int {
	for _, n := range sizes {
		if n > 0 {
			return n
		}
	}
	return DefaultTeamSize
}

type Result struct {
	Cap                 float64
	CapProjected        float64
	TopPlayers          []*models.Player
	TopPlayersProjected []*models.Player
}

// Compute takes the n best paid players of pool that are not excluded and
// returns average salary times subset size, for actual and projected salary
// independently. When fewer than n players remain the subset shrinks; an
// empty subset yields zero caps.
func Compute(pool []*models.Player, n int, excluded Set) Result {
	eligible := eligiblePlayers(pool, excluded)
	k := min(max(n, 0), len(eligible))

	top := byActual(eligible)[:k]
	topProjected := byProjected(eligible)[:k]

	return Result{
		Cap:                 average(top, actualSalary) * float64(k),
		CapProjected:        average(topProjected, projectedSalary) * float64(k),
		TopPlayers:          top,
		TopPlayersProjected: topProjected,
	}
}

// League averages over the n × teamCount best paid players of the whole
// league and scales the average to one team of n players.
func League(pool []*models.Player, n, teamCount int, excluded Set) Result {
	n = max(n, 0)
	teamCount = max(teamCount, 1)

	eligible := eligiblePlayers(pool, excluded)
	k := min(n*teamCount, len(eligible))

	top := byActual(eligible)[:k]
	topProjected := byProjected(eligible)[:k]

	return Result{
		Cap:                 average(top, actualSalary) * float64(n),
		CapProjected:        average(topProjected, projectedSalary) * float64(n),
		TopPlayers:          top,
		TopPlayersProjected: topProjected,
	}
}

// IsInRelevantSubset reports whether player is among the top
// n + excludedCount players of teamRoster by actual salary. Every exclusion
// widens the window by one so the next candidate moves in.
func IsInRelevantSubset(player *models.Player, teamRoster []*models.Player, n, excludedCount int) bool {
	window := max(n, 0) + max(excludedCount, 0)
	for i, p := range byActual(teamRoster) {
		if i >= window {
			return false
		}
		if p.ID == player.ID {
			return true
		}
	}
	return false
}

// Ranked returns a copy of players in the order caps are taken from: actual
// salary, then projected salary, both descending.
func Ranked(players []*models.Player) []*models.Player {
	return byActual(players)
}

func eligiblePlayers(pool []*models.Player, excluded Set) []*models.Player {
	out := make([]*models.Player, 0, len(pool))
	for _, p := range pool {
		if excluded.Has(p.ID) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// byActual returns a copy ordered by actual salary, then projected salary,
// both descending.
func byActual(players []*models.Player) []*models.Player {
	return sortedBy(players, actualSalary, projectedSalary)
}

// byProjected returns a copy ordered by projected salary, then actual salary.
func byProjected(players []*models.Player) []*models.Player {
	return sortedBy(players, projectedSalary, actualSalary)
}

func sortedBy(players []*models.Player, primary, secondary func(*models.Player) float64) []*models.Player {
	sorted := make([]*models.Player, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if c := roster.CompareDesc(primary(a), primary(b)); c != 0 {
			return c < 0
		}
		if c := roster.CompareDesc(secondary(a), secondary(b)); c != 0 {
			return c < 0
		}
		return strings.Compare(a.ID, b.ID) < 0
	})
	return sorted
}

func actualSalary(p *models.Player) float64    { return p.SalaryDollars }
func projectedSalary(p *models.Player) float64 { return p.SalaryDollarsProjected }

// total and average treat a missing (NaN) salary as zero.
func total(players []*models.Player, value func(*models.Player) float64) float64 {
	var sum float64
	for _, p := range players {
		if v := value(p); !math.IsNaN(v) {
			sum += v
		}
	}
	return sum
}

func average(players []*models.Player, value func(*models.Player) float64) float64 {
	if len(players) == 0 {
		return 0
	}
	return total(players, value) / float64(len(players))
}
