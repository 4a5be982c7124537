// Package league turns the raw league, player and NFL team documents into a
// cross-referenced graph.
package league

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/omarshaarawi/capbot/internal/format"
	"github.com/omarshaarawi/capbot/internal/models"
	"github.com/omarshaarawi/capbot/internal/roster"
)

const DefaultAvatar = "assets/default-team-avatar.png"

// Graph is one load of the league data.
type Graph struct {
	League *models.League
	// Players is the league-wide listing in comparator order.
	Players []*models.Player
	// Teams is ordered by standing.
	Teams  []*models.FantasyTeam
	Issues Issues
}

// Issues collects references that did not resolve. None of them stop a build.
type Issues struct {
	// UnresolvedNFLTeams lists player IDs whose NFL team was not found.
	UnresolvedNFLTeams []string
	// DanglingRosterIDs maps a fantasy team ID to roster IDs with no player.
	DanglingRosterIDs map[int][]string
	// DuplicateRosterIDs maps a fantasy team ID to roster IDs already claimed
	// by an earlier roster entry.
	DuplicateRosterIDs map[int][]string
	DuplicatePlayerIDs []string
	// InvalidSeason holds the season label when it is not a year.
	InvalidSeason string
}

func (i Issues) Empty() bool {
	return len(i.UnresolvedNFLTeams) == 0 &&
		len(i.DanglingRosterIDs) == 0 &&
		len(i.DuplicateRosterIDs) == 0 &&
		len(i.DuplicatePlayerIDs) == 0 &&
		i.InvalidSeason == ""
}

// Player looks up a player by ID.
func (g *Graph) Player(id string) (*models.Player, bool) {
	for _, p := range g.Players {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// Build enriches the raw documents. Players are ordered with keys; team
// rosters keep their source order.
func Build(raw models.RawLeague, rawPlayers []models.RawPlayer, rawNFLTeams []models.RawNFLTeam, keys ...roster.SortKey) *Graph {
	if len(keys) == 0 {
		keys = roster.DefaultKeys
	}

	g := &Graph{
		Issues: Issues{
			DanglingRosterIDs:  make(map[int][]string),
			DuplicateRosterIDs: make(map[int][]string),
		},
	}

	lg := &models.League{
		LeagueID:               raw.LeagueID,
		Name:                   raw.Name,
		Season:                 raw.Season,
		SalaryCap:              models.Amount(raw.SalaryCapFantasy),
		SalaryCapProjected:     models.Amount(raw.SalaryCapProjectedFantasy),
		SalaryCapNFL:           models.Amount(raw.SalaryCap),
		SalaryCapProjectedNFL:  models.Amount(raw.SalaryCapProjected),
		SalaryRelevantTeamSize: raw.SalaryRelevantTeamSize,
	}
	lg.SalaryCapDisplay = format.Cap(lg.SalaryCap)
	lg.SalaryCapProjectedDisplay = format.Cap(lg.SalaryCapProjected)

	seasonYear, known := lg.SeasonYear()
	if !known {
		g.Issues.InvalidSeason = raw.Season
	}

	lg.Teams = make([]*models.FantasyTeam, 0, len(raw.Teams))
	for _, rt := range raw.Teams {
		lg.Teams = append(lg.Teams, newFantasyTeam(rt))
	}

	nflTeams := make(map[string]*models.NFLTeam, len(rawNFLTeams))
	for _, rt := range rawNFLTeams {
		if _, ok := nflTeams[rt.ID]; ok {
			continue
		}
		nflTeams[rt.ID] = &models.NFLTeam{ID: rt.ID, Name: rt.Name, Abv: rt.Abv, Logo: rt.Logo}
	}

	players := make([]*models.Player, 0, len(rawPlayers))
	byID := make(map[string]*models.Player, len(rawPlayers))
	for _, rp := range rawPlayers {
		p := newPlayer(rp, seasonYear, known)
		if nfl, ok := nflTeams[rp.TeamID]; ok {
			p.TeamNFL = nfl
		} else {
			g.Issues.UnresolvedNFLTeams = append(g.Issues.UnresolvedNFLTeams, p.ID)
		}
		if _, dup := byID[p.ID]; dup {
			g.Issues.DuplicatePlayerIDs = append(g.Issues.DuplicatePlayerIDs, p.ID)
		} else {
			byID[p.ID] = p
		}
		players = append(players, p)
	}

	for i, team := range lg.Teams {
		for _, id := range raw.Teams[i].Roster {
			p, ok := byID[id]
			if !ok {
				g.Issues.DanglingRosterIDs[team.TeamID] = append(g.Issues.DanglingRosterIDs[team.TeamID], id)
				continue
			}
			// A player belongs to at most one roster; the first claim wins.
			if p.TeamFantasy != nil {
				g.Issues.DuplicateRosterIDs[team.TeamID] = append(g.Issues.DuplicateRosterIDs[team.TeamID], id)
				continue
			}
			p.TeamFantasy = team
			team.Roster = append(team.Roster, p)
		}
	}

	g.League = lg
	g.Teams = RankStandings(lg.Teams)
	g.Players = roster.Sort(players, keys...)
	return g
}

func newFantasyTeam(rt models.RawFantasyTeam) *models.FantasyTeam {
	name := rt.Team
	if strings.TrimSpace(name) == "" {
		name = "Team " + rt.Owner
	}
	return &models.FantasyTeam{
		TeamID:        rt.TeamID,
		Owner:         rt.Owner,
		Team:          name,
		Avatar:        firstNonEmpty(rt.TeamAvatar, rt.OwnerAvatar, DefaultAvatar),
		Wins:          rt.Wins,
		Losses:        rt.Losses,
		Ties:          rt.Ties,
		Points:        rt.Points,
		PointsAgainst: rt.PointsAgainst,
		Record:        rt.Record,
		Streak:        rt.Streak,
		Roster:        []*models.Player{},
	}
}

func newPlayer(rp models.RawPlayer, seasonYear int, seasonKnown bool) *models.Player {
	p := &models.Player{
		ID:          rp.ID,
		Name:        rp.Name,
		NameFirst:   rp.NameFirst,
		NameLast:    rp.NameLast,
		NameShort:   rp.NameShort,
		Position:    rp.Position,
		Age:         rp.Age,
		Year:        rp.Year,
		Picture:     rp.Picture,
		Number:      rp.Number,
		FantasyPros: rp.FantasyPros,
		ESPN:        rp.ESPN,
		College:     rp.College,
		HighSchool:  rp.HighSchool,

		SalaryDollars:             models.Amount(rp.SalaryDollarsFantasy),
		SalaryDollarsProjected:    models.Amount(rp.SalaryDollarsProjectedFantasy),
		SalaryDollarsNFL:          models.Amount(rp.SalaryDollars),
		SalaryDollarsProjectedNFL: models.Amount(rp.SalaryDollarsProjected),

		Injured:       rp.Injured,
		InjuryDetails: normalizeInjury(rp.InjuryDetails),
		TeamNFLID:     rp.TeamID,

		Stats: models.PlayerStats{
			GamesPlayed:                   rp.GamesPlayed,
			GamesPotential:                rp.GamesPotential,
			SnapsTotal:                    rp.SnapsTotal,
			AttemptsTotal:                 rp.AttemptsTotal,
			TouchdownsTotal:               rp.TouchdownsTotal,
			TouchdownsPassing:             rp.TouchdownsPassing,
			TouchdownsReceiving:           rp.TouchdownsReceiving,
			TouchdownsRushing:             rp.TouchdownsRushing,
			FantasyPointsTotal:            rp.FantasyPointsTotal,
			FantasyPointsAvgGame:          rp.FantasyPointsAvgGame,
			FantasyPointsAvgPotentialGame: rp.FantasyPointsAvgPotentialGame,
			FantasyPointsAvgSnap:          rp.FantasyPointsAvgSnap,
			FantasyPointsAvgAttempt:       rp.FantasyPointsAvgAttempt,
			Ranking:                       append([]models.RankingEntry(nil), rp.Ranking...),
			PointHistory:                  SeasonHistory(rp.PointHistory, seasonYear, seasonKnown),
		},
	}
	p.SalaryDollarsDisplay = format.Salary(p.SalaryDollars)
	p.SalaryDollarsProjectedDisplay = format.Salary(p.SalaryDollarsProjected)
	if p.NameShort == "" {
		p.NameShort = shortName(rp.NameFirst, rp.NameLast)
	}
	return p
}

func shortName(first, last string) string {
	r, size := utf8.DecodeRuneInString(first)
	if size == 0 {
		return last
	}
	return string(r) + ". " + last
}

// RankStandings returns teams ordered best first and sets each Standing to
// its 1-based position: wins, then ties, then points, each descending, then
// fewer points against. Full ties keep their input order.
func RankStandings(teams []*models.FantasyTeam) []*models.FantasyTeam {
	ranked := make([]*models.FantasyTeam, len(teams))
	copy(ranked, teams)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.Ties != b.Ties {
			return a.Ties > b.Ties
		}
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		return a.PointsAgainst < b.PointsAgainst
	})

	for i, t := range ranked {
		t.Standing = i + 1
	}
	return ranked
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
