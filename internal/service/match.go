package service

import (
	"sort"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/omarshaarawi/capbot/internal/models"
)

const (
	playerThreshold = 0.7
	teamThreshold   = 0.6
)

// bestMatch picks the candidate closest to query. An exact case-insensitive
// match wins, then the tightest fuzzy containment match, then the highest
// Levenshtein similarity above threshold. It returns -1 when nothing is
// close enough.
func bestMatch(query string, candidates []string, threshold float64) int {
	query = strings.TrimSpace(query)
	if query == "" {
		return -1
	}

	for i, c := range candidates {
		if strings.EqualFold(c, query) {
			return i
		}
	}

	if len([]rune(query)) >= 3 {
		ranks := fuzzy.RankFindNormalizedFold(query, candidates)
		if len(ranks) > 0 {
			sort.Stable(ranks)
			return ranks[0].OriginalIndex
		}
	}

	best := -1
	bestScore := 0.0
	lowerQuery := strings.ToLower(query)
	for i, c := range candidates {
		candidate := strings.ToLower(c)
		maxLen := float64(max(len(lowerQuery), len(candidate)))
		if maxLen == 0 {
			continue
		}
		distance := fuzzy.LevenshteinDistance(lowerQuery, candidate)
		similarity := 1 - float64(distance)/maxLen

		if similarity > threshold && similarity > bestScore {
			bestScore = similarity
			best = i
		}
	}
	return best
}

// findTeam resolves a team by ID, team name or owner name.
func findTeam(teams []*models.FantasyTeam, query string) (*models.FantasyTeam, bool) {
	if id, err := strconv.Atoi(strings.TrimSpace(query)); err == nil {
		for _, t := range teams {
			if t.TeamID == id {
				return t, true
			}
		}
	}

	names := make([]string, 0, 2*len(teams))
	for _, t := range teams {
		names = append(names, t.Team, t.Owner)
	}
	i := bestMatch(query, names, teamThreshold)
	if i < 0 {
		return nil, false
	}
	return teams[i/2], true
}

// findPlayer resolves a player by ID or name.
func findPlayer(players []*models.Player, query string) (*models.Player, bool) {
	query = strings.TrimSpace(query)
	for _, p := range players {
		if p.ID == query {
			return p, true
		}
	}

	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name
	}
	i := bestMatch(query, names, playerThreshold)
	if i < 0 {
		return nil, false
	}
	return players[i], true
}
