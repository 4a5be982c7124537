package models

import (
	"strconv"
	"strings"
)

type League struct {
	LeagueID                  string
	Name                      string
	Season                    string
	SalaryCap                 float64
	SalaryCapProjected        float64
	SalaryCapNFL              float64
	SalaryCapProjectedNFL     float64
	SalaryCapDisplay          string
	SalaryCapProjectedDisplay string
	SalaryRelevantTeamSize    int
	// Teams keeps source order; standings order lives on Graph.Teams.
	Teams []*FantasyTeam
}

// SeasonYear parses the season label ("2025") as a year.
func (l *League) SeasonYear() (int, bool) {
	year, err := strconv.Atoi(strings.TrimSpace(l.Season))
	if err != nil {
		return 0, false
	}
	return year, true
}

// Team returns the fantasy team with the given id.
func (l *League) Team(teamID int) (*FantasyTeam, bool) {
	for _, t := range l.Teams {
		if t.TeamID == teamID {
			return t, true
		}
	}
	return nil, false
}

type FantasyTeam struct {
	TeamID        int
	Owner         string
	Team          string
	Avatar        string
	Wins          int
	Losses        int
	Ties          int
	Points        float64
	PointsAgainst float64
	Record        string
	Streak        string
	Standing      int
	Roster        []*Player

	// Cap figures for the team's current exclusions, written by the
	// salary cap session.
	Salary          float64
	SalaryProjected float64
}

func (t *FantasyTeam) HasPlayer(playerID string) bool {
	for _, p := range t.Roster {
		if p.ID == playerID {
			return true
		}
	}
	return false
}

type NFLTeam struct {
	ID   string
	Name string
	Abv  string
	Logo string
}

type InjuryDetails struct {
	Date        string `json:"Date"`
	ReturnDate  string `json:"ReturnDate"`
	Description string `json:"Description"`
	Designation string `json:"Designation"`
}

type RankingType string

const (
	RankingTotal       RankingType = "Total"
	RankingPerGame     RankingType = "PerGame"
	RankingCombined    RankingType = "Combined"
	RankingTotalPos    RankingType = "Total_Pos"
	RankingPerGamePos  RankingType = "PerGame_Pos"
	RankingCombinedPos RankingType = "Combined_Pos"
)

type RankingEntry struct {
	Type  RankingType `json:"Type"`
	Value float64     `json:"Value"`
}

type PointHistorySeason struct {
	// Season is the absolute year, derived from the league season. Zero when
	// the league season label could not be parsed.
	Season           int     `json:"Season"`
	Total            float64 `json:"Total"`
	AvgGame          float64 `json:"AvgGame"`
	AvgPotentialGame float64 `json:"AvgPotentialGame"`
	GamesPlayed      int     `json:"GamesPlayed"`
	PotentialGames   int     `json:"PotentialGames"`
}

type PointHistory struct {
	SeasonMinus1 *PointHistorySeason `json:"SeasonMinus1"`
	SeasonMinus2 *PointHistorySeason `json:"SeasonMinus2"`
	SeasonMinus3 *PointHistorySeason `json:"SeasonMinus3"`
}

// Seasons lists the slots that exist, most recent first.
func (h PointHistory) Seasons() []PointHistorySeason {
	var seasons []PointHistorySeason
	for _, s := range []*PointHistorySeason{h.SeasonMinus1, h.SeasonMinus2, h.SeasonMinus3} {
		if s != nil {
			seasons = append(seasons, *s)
		}
	}
	return seasons
}

type PlayerStats struct {
	GamesPlayed                   int
	GamesPotential                int
	SnapsTotal                    int
	AttemptsTotal                 int
	TouchdownsTotal               int
	TouchdownsPassing             int
	TouchdownsReceiving           int
	TouchdownsRushing             int
	FantasyPointsTotal            float64
	FantasyPointsAvgGame          float64
	FantasyPointsAvgPotentialGame float64
	FantasyPointsAvgSnap          float64
	FantasyPointsAvgAttempt       float64
	Ranking                       []RankingEntry
	PointHistory                  PointHistory
}

type Player struct {
	ID          string
	Name        string
	NameFirst   string
	NameLast    string
	NameShort   string
	Position    string
	Age         int
	Year        int
	Picture     string
	Number      string
	FantasyPros string
	ESPN        string
	College     string
	HighSchool  string

	// SalaryDollars and SalaryDollarsProjected are the fantasy-adjusted
	// values every cap calculation uses.
	SalaryDollars                 float64
	SalaryDollarsProjected        float64
	SalaryDollarsDisplay          string
	SalaryDollarsProjectedDisplay string
	SalaryDollarsNFL              float64
	SalaryDollarsProjectedNFL     float64

	Injured       bool
	InjuryDetails *InjuryDetails

	// TeamNFLID is the source reference; TeamNFL is nil when it did not
	// resolve against the team catalog.
	TeamNFLID   string
	TeamNFL     *NFLTeam
	TeamFantasy *FantasyTeam

	Stats PlayerStats
}

// NFLTeam reports whether the player's team reference resolved.
func (p *Player) NFLTeam() (*NFLTeam, bool) {
	return p.TeamNFL, p.TeamNFL != nil
}

// Ranking returns the ranking value of the given type.
func (p *Player) Ranking(t RankingType) (float64, bool) {
	for _, r := range p.Stats.Ranking {
		if r.Type == t {
			return r.Value, true
		}
	}
	return 0, false
}
