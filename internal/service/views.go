package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/omarshaarawi/capbot/internal/format"
	"github.com/omarshaarawi/capbot/internal/models"
	"github.com/omarshaarawi/capbot/internal/roster"
	"github.com/omarshaarawi/capbot/internal/salarycap"
)

// CapFigures amounts are nil when the value is missing.
type CapFigures struct {
	Cap                 *float64 `json:"cap"`
	CapProjected        *float64 `json:"cap_projected"`
	CapDisplay          string   `json:"cap_display"`
	CapProjectedDisplay string   `json:"cap_projected_display"`
}

type TeamStanding struct {
	Standing      int        `json:"standing"`
	TeamID        int        `json:"team_id"`
	Team          string     `json:"team"`
	Owner         string     `json:"owner"`
	Wins          int        `json:"wins"`
	Losses        int        `json:"losses"`
	Ties          int        `json:"ties"`
	Points        float64    `json:"points"`
	PointsAgainst float64    `json:"points_against"`
	Streak        string     `json:"streak,omitempty"`
	Salary        CapFigures `json:"salary"`
}

type PlayerView struct {
	ID                     string                `json:"id"`
	Name                   string                `json:"name"`
	Position               string                `json:"position"`
	TeamNFL                string                `json:"team_nfl,omitempty"`
	TeamFantasy            string                `json:"team_fantasy,omitempty"`
	TeamFantasyID          int                   `json:"team_fantasy_id,omitempty"`
	SalaryDollars          *float64              `json:"salary_dollars"`
	SalaryDollarsProjected *float64              `json:"salary_dollars_projected"`
	SalaryDisplay          string                `json:"salary_display"`
	SalaryProjectedDisplay string                `json:"salary_projected_display"`
	FantasyPoints          float64               `json:"fantasy_points"`
	FantasyPointsAvgGame   float64               `json:"fantasy_points_avg_game"`
	Rankings               []models.RankingEntry `json:"rankings,omitempty"`
	// PointHistory lists the prior seasons present, most recent first.
	PointHistory []models.PointHistorySeason `json:"point_history,omitempty"`
	Injured                bool                  `json:"injured"`
	Injury                 *models.InjuryDetails `json:"injury,omitempty"`
	Relevant               bool                  `json:"relevant,omitempty"`
	Excluded               bool                  `json:"excluded,omitempty"`
}

type SlotView struct {
	Slot           string   `json:"slot"`
	Count          int      `json:"count"`
	Average        float64  `json:"average"`
	AverageDisplay string   `json:"average_display"`
	Players        []string `json:"players"`
}

type PositionalView struct {
	Cap        float64    `json:"cap"`
	CapDisplay string     `json:"cap_display"`
	Slots      []SlotView `json:"slots"`
}

type LeagueCapReport struct {
	League     string         `json:"league"`
	Season     string         `json:"season"`
	TeamSize   int            `json:"team_size"`
	TeamCount  int            `json:"team_count"`
	Published  CapFigures     `json:"published"`
	Computed   CapFigures     `json:"computed"`
	// TopN is the n best paid players of the whole league, summed.
	TopN       CapFigures     `json:"top_n"`
	Positional PositionalView `json:"positional"`
}

type TeamCapReport struct {
	TeamID     int            `json:"team_id"`
	Team       string         `json:"team"`
	Owner      string         `json:"owner"`
	TeamSize   int            `json:"team_size"`
	Computed   CapFigures     `json:"computed"`
	Positional PositionalView `json:"positional"`
	Excluded   []string       `json:"excluded"`
	// Players is the roster by actual salary, highest first.
	Players []PlayerView `json:"players"`
}

type ExclusionResult struct {
	TeamID       int        `json:"team_id"`
	Team         string     `json:"team"`
	Player       PlayerView `json:"player"`
	Excluded     bool       `json:"excluded"`
	Before       CapFigures `json:"before"`
	After        CapFigures `json:"after"`
	Delta        float64    `json:"delta"`
	DeltaDisplay string     `json:"delta_display"`
}

type TeamInjuries struct {
	Team    string       `json:"team"`
	Players []PlayerView `json:"players"`
}

var rankingOrder = []models.RankingType{
	models.RankingTotal,
	models.RankingPerGame,
	models.RankingCombined,
	models.RankingTotalPos,
	models.RankingPerGamePos,
	models.RankingCombinedPos,
}

func amount(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

func capFigures(actual, projected float64) CapFigures {
	return CapFigures{
		Cap:                 amount(actual),
		CapProjected:        amount(projected),
		CapDisplay:          format.Cap(actual),
		CapProjectedDisplay: format.Cap(projected),
	}
}

func playerView(p *models.Player) PlayerView {
	v := PlayerView{
		ID:                     p.ID,
		Name:                   p.Name,
		Position:               p.Position,
		TeamNFL:                p.TeamNFLID,
		SalaryDollars:          amount(p.SalaryDollars),
		SalaryDollarsProjected: amount(p.SalaryDollarsProjected),
		SalaryDisplay:          p.SalaryDollarsDisplay,
		SalaryProjectedDisplay: p.SalaryDollarsProjectedDisplay,
		FantasyPoints:          p.Stats.FantasyPointsTotal,
		FantasyPointsAvgGame:   p.Stats.FantasyPointsAvgGame,
		PointHistory:           p.Stats.PointHistory.Seasons(),
		Injured:                p.Injured,
		Injury:                 p.InjuryDetails,
	}
	for _, t := range rankingOrder {
		if value, ok := p.Ranking(t); ok {
			v.Rankings = append(v.Rankings, models.RankingEntry{Type: t, Value: value})
		}
	}
	if team, ok := p.NFLTeam(); ok {
		v.TeamNFL = team.Abv
	}
	if p.TeamFantasy != nil {
		v.TeamFantasy = p.TeamFantasy.Team
		v.TeamFantasyID = p.TeamFantasy.TeamID
	}
	return v
}

func positionalView(res salarycap.PositionalResult) PositionalView {
	v := PositionalView{Cap: res.Cap, CapDisplay: format.Cap(res.Cap)}
	for _, sr := range res.Slots {
		names := make([]string, len(sr.Players))
		for i, p := range sr.Players {
			names[i] = p.Name
		}
		v.Slots = append(v.Slots, SlotView{
			Slot:           string(sr.Slot),
			Count:          sr.Count,
			Average:        sr.Average,
			AverageDisplay: format.Cap(sr.Average),
			Players:        names,
		})
	}
	return v
}

// Standings lists the teams in standing order with their current caps.
func (s *CapService) Standings() ([]TeamStanding, error) {
	var out []TeamStanding
	err := s.withSession(func(sess *salarycap.Session) error {
		for _, t := range sess.Graph().Teams {
			out = append(out, TeamStanding{
				Standing:      t.Standing,
				TeamID:        t.TeamID,
				Team:          t.Team,
				Owner:         t.Owner,
				Wins:          t.Wins,
				Losses:        t.Losses,
				Ties:          t.Ties,
				Points:        t.Points,
				PointsAgainst: t.PointsAgainst,
				Streak:        t.Streak,
				Salary:        capFigures(t.Salary, t.SalaryProjected),
			})
		}
		return nil
	})
	return out, err
}

// LeagueCap returns the league-wide figures as of the last league refresh.
func (s *CapService) LeagueCap() (LeagueCapReport, error) {
	var out LeagueCapReport
	err := s.withSession(func(sess *salarycap.Session) error {
		out = leagueCapReport(sess)
		return nil
	})
	return out, err
}

// RefreshLeagueCap recomputes the league-wide figures with every team's
// current exclusions.
func (s *CapService) RefreshLeagueCap() (LeagueCapReport, error) {
	var out LeagueCapReport
	err := s.withSession(func(sess *salarycap.Session) error {
		sess.RefreshLeague()
		out = leagueCapReport(sess)
		return nil
	})
	return out, err
}

func leagueCapReport(sess *salarycap.Session) LeagueCapReport {
	lg := sess.Graph().League
	res := sess.LeagueCap()
	topN := sess.LeagueTopN()
	return LeagueCapReport{
		League:     lg.Name,
		Season:     lg.Season,
		TeamSize:   sess.TeamSize(),
		TeamCount:  len(lg.Teams),
		Published:  capFigures(lg.SalaryCap, lg.SalaryCapProjected),
		Computed:   capFigures(res.Cap, res.CapProjected),
		TopN:       capFigures(topN.Cap, topN.CapProjected),
		Positional: positionalView(sess.LeaguePositional()),
	}
}

// TeamCap resolves query to a team and returns its cap breakdown.
func (s *CapService) TeamCap(query string) (TeamCapReport, error) {
	var out TeamCapReport
	err := s.withSession(func(sess *salarycap.Session) error {
		team, ok := findTeam(sess.Graph().League.Teams, query)
		if !ok {
			return fmt.Errorf("%w: team %q", ErrNoMatch, query)
		}
		out = teamCapReport(sess, team)
		return nil
	})
	return out, err
}

func teamCapReport(sess *salarycap.Session, team *models.FantasyTeam) TeamCapReport {
	res, _ := sess.TeamCap(team.TeamID)
	positional, _ := sess.TeamPositional(team.TeamID)

	ranked := salarycap.Ranked(team.Roster)
	players := make([]PlayerView, len(ranked))
	for i, p := range ranked {
		players[i] = playerView(p)
		players[i].Excluded = sess.Excluded(team.TeamID, p.ID)
		players[i].Relevant = !players[i].Excluded && sess.IsRelevant(team.TeamID, p)
	}

	return TeamCapReport{
		TeamID:     team.TeamID,
		Team:       team.Team,
		Owner:      team.Owner,
		TeamSize:   sess.TeamSize(),
		Computed:   capFigures(res.Cap, res.CapProjected),
		Positional: positionalView(positional),
		Excluded:   sess.ExcludedIDs(team.TeamID),
		Players:    players,
	}
}

// ToggleExclusion flips a player on a team's exclusion list. Both the team
// and the player are resolved by name; the player must be on that team.
func (s *CapService) ToggleExclusion(teamQuery, playerQuery string) (ExclusionResult, error) {
	var out ExclusionResult
	err := s.withSession(func(sess *salarycap.Session) error {
		team, ok := findTeam(sess.Graph().League.Teams, teamQuery)
		if !ok {
			return fmt.Errorf("%w: team %q", ErrNoMatch, teamQuery)
		}
		player, ok := findPlayer(team.Roster, playerQuery)
		if !ok {
			return fmt.Errorf("%w: player %q on %s", ErrNoMatch, playerQuery, team.Team)
		}

		before, _ := sess.TeamCap(team.TeamID)
		excluded, after, err := sess.ToggleExclusion(team.TeamID, player.ID)
		if err != nil {
			return err
		}

		delta := after.Cap - before.Cap
		out = ExclusionResult{
			TeamID:       team.TeamID,
			Team:         team.Team,
			Player:       playerView(player),
			Excluded:     excluded,
			Before:       capFigures(before.Cap, before.CapProjected),
			After:        capFigures(after.Cap, after.CapProjected),
			Delta:        delta,
			DeltaDisplay: format.Delta(delta),
		}
		out.Player.Excluded = excluded
		return nil
	})
	return out, err
}

// PlayerLookup resolves query against every player in the league.
func (s *CapService) PlayerLookup(query string) (PlayerView, error) {
	var out PlayerView
	err := s.withSession(func(sess *salarycap.Session) error {
		p, ok := sess.Graph().Player(strings.TrimSpace(query))
		if !ok {
			p, ok = findPlayer(sess.Graph().Players, query)
		}
		if !ok {
			return fmt.Errorf("%w: player %q", ErrNoMatch, query)
		}
		out = playerView(p)
		if p.TeamFantasy != nil {
			out.Excluded = sess.Excluded(p.TeamFantasy.TeamID, p.ID)
			out.Relevant = !out.Excluded && sess.IsRelevant(p.TeamFantasy.TeamID, p)
		}
		return nil
	})
	return out, err
}

// Players lists every player ordered by the comma-separated sort keys, or
// by the configured keys when sortKeys is blank.
func (s *CapService) Players(sortKeys string) ([]PlayerView, error) {
	keys := s.keys
	if strings.TrimSpace(sortKeys) != "" {
		parsed, err := roster.ParseSortKeys(sortKeys)
		if err != nil {
			return nil, err
		}
		keys = parsed
	}

	var out []PlayerView
	err := s.withSession(func(sess *salarycap.Session) error {
		for _, p := range roster.Sort(sess.Graph().Players, keys...) {
			out = append(out, playerView(p))
		}
		return nil
	})
	return out, err
}

// Injuries lists injured rostered players per team in standing order.
func (s *CapService) Injuries() ([]TeamInjuries, error) {
	var out []TeamInjuries
	err := s.withSession(func(sess *salarycap.Session) error {
		for _, t := range sess.Graph().Teams {
			var injured []PlayerView
			for _, p := range roster.Sort(t.Roster, roster.KeyPosition, roster.KeyNameLast) {
				if p.Injured {
					injured = append(injured, playerView(p))
				}
			}
			if len(injured) > 0 {
				out = append(out, TeamInjuries{Team: t.Team, Players: injured})
			}
		}
		return nil
	})
	return out, err
}
