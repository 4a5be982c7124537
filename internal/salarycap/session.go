package salarycap

import (
	"errors"
	"fmt"

	"github.com/omarshaarawi/capbot/internal/league"
	"github.com/omarshaarawi/capbot/internal/models"
)

var (
	ErrUnknownTeam       = errors.New("unknown fantasy team")
	ErrPlayerNotOnRoster = errors.New("player is not on the team roster")
)

// Session owns the exclusions for one loaded graph and the cap figures
// derived from them. Refreshes are two-tier: RefreshTeam recomputes a single
// team from its roster, RefreshLeague recomputes the league-wide figures from
// the union of all exclusions. Toggling an exclusion refreshes only the
// team. A Session is not safe for concurrent use.
type Session struct {
	graph      *league.Graph
	teamSize   int
	exclusions *Exclusions

	teams          map[int]Result
	teamPositional map[int]PositionalResult
	league         Result
	leagueTopN     Result
	positional     PositionalResult
}

// NewSession computes every team and the league once. teamSize overrides
// the league's salary-relevant team size when positive.
func NewSession(g *league.Graph, teamSize int) *Session {
	s := &Session{
		graph:          g,
		teamSize:       TeamSize(teamSize, g.League.SalaryRelevantTeamSize),
		exclusions:     NewExclusions(),
		teams:          make(map[int]Result, len(g.Teams)),
		teamPositional: make(map[int]PositionalResult, len(g.Teams)),
	}
	for _, team := range g.League.Teams {
		s.refreshTeam(team)
	}
	s.RefreshLeague()
	return s
}

func (s *Session) Graph() *league.Graph {
	return s.graph
}

func (s *Session) TeamSize() int {
	return s.teamSize
}

// RefreshTeam recomputes teamID's caps from its roster and own exclusions
// and stores them on the team.
func (s *Session) RefreshTeam(teamID int) (Result, error) {
	team, ok := s.graph.League.Team(teamID)
	if !ok {
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownTeam, teamID)
	}
	return s.refreshTeam(team), nil
}

func (s *Session) refreshTeam(team *models.FantasyTeam) Result {
	excluded := s.exclusions.Team(team.TeamID)
	res := Compute(team.Roster, s.teamSize, excluded)
	team.Salary = res.Cap
	team.SalaryProjected = res.CapProjected
	s.teams[team.TeamID] = res
	s.teamPositional[team.TeamID] = Positional(team.Roster, StandardLineup, 1, excluded)
	return res
}

// RefreshLeague recomputes the league-wide caps over all players, leaving
// out every team's exclusions. Besides the per-team figure it keeps the
// plain top-n cap of the whole pool.
func (s *Session) RefreshLeague() Result {
	all := s.exclusions.All()
	teamCount := len(s.graph.League.Teams)
	s.league = League(s.graph.Players, s.teamSize, teamCount, all)
	s.leagueTopN = Compute(s.graph.Players, s.teamSize, all)
	s.positional = Positional(s.graph.Players, StandardLineup, teamCount, all)
	return s.league
}

// ToggleExclusion flips playerID in teamID's exclusions and refreshes that
// team. It reports whether the player is now excluded. The league-wide
// figures are left as they are until RefreshLeague.
func (s *Session) ToggleExclusion(teamID int, playerID string) (bool, Result, error) {
	team, ok := s.graph.League.Team(teamID)
	if !ok {
		return false, Result{}, fmt.Errorf("%w: %d", ErrUnknownTeam, teamID)
	}
	if !team.HasPlayer(playerID) {
		return false, Result{}, fmt.Errorf("%w: %s on team %d", ErrPlayerNotOnRoster, playerID, teamID)
	}
	excluded := s.exclusions.Toggle(teamID, playerID)
	return excluded, s.refreshTeam(team), nil
}

// TeamCap returns the last computed result for teamID.
func (s *Session) TeamCap(teamID int) (Result, bool) {
	res, ok := s.teams[teamID]
	return res, ok
}

func (s *Session) TeamPositional(teamID int) (PositionalResult, bool) {
	res, ok := s.teamPositional[teamID]
	return res, ok
}

// LeagueCap returns the league-wide result as of the last RefreshLeague.
func (s *Session) LeagueCap() Result {
	return s.league
}

// LeagueTopN returns Compute over every player as of the last RefreshLeague.
func (s *Session) LeagueTopN() Result {
	return s.leagueTopN
}

func (s *Session) LeaguePositional() PositionalResult {
	return s.positional
}

func (s *Session) Excluded(teamID int, playerID string) bool {
	return s.exclusions.Excluded(teamID, playerID)
}

// ExcludedIDs lists teamID's excluded players.
func (s *Session) ExcludedIDs(teamID int) []string {
	return s.exclusions.Team(teamID).IDs()
}

// IsRelevant reports whether player falls in the team's relevant window.
func (s *Session) IsRelevant(teamID int, player *models.Player) bool {
	team, ok := s.graph.League.Team(teamID)
	if !ok {
		return false
	}
	return IsInRelevantSubset(player, team.Roster, s.teamSize, s.exclusions.Count(teamID))
}
