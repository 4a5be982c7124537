package models

import "math"

// Timestamps is the freshness document published next to the data files.
type Timestamps struct {
	League  string `json:"League"`
	Players string `json:"Players"`
	Teams   string `json:"Teams"`
}

// Latest returns the newest of the three timestamps. ISO-8601 strings order
// lexically, so no parsing is needed.
func (t Timestamps) Latest() string {
	latest := ""
	for _, ts := range []string{t.League, t.Players, t.Teams} {
		if ts > latest {
			latest = ts
		}
	}
	return latest
}

type RawLeague struct {
	LeagueID                  string           `json:"LeagueID"`
	Name                      string           `json:"Name"`
	Season                    string           `json:"Season"`
	SalaryCap                 *float64         `json:"SalaryCap"`
	SalaryCapFantasy          *float64         `json:"SalaryCapFantasy"`
	SalaryCapProjected        *float64         `json:"SalaryCapProjected"`
	SalaryCapProjectedFantasy *float64         `json:"SalaryCapProjectedFantasy"`
	SalaryRelevantTeamSize    int              `json:"SalaryRelevantTeamSize"`
	Teams                     []RawFantasyTeam `json:"Teams"`
}

type RawFantasyTeam struct {
	Owner         string   `json:"Owner"`
	Team          string   `json:"Team"`
	TeamID        int      `json:"TeamID"`
	Roster        []string `json:"Roster"`
	TeamAvatar    string   `json:"TeamAvatar"`
	OwnerAvatar   string   `json:"OwnerAvatar"`
	Points        float64  `json:"Points"`
	PointsAgainst float64  `json:"PointsAgainst"`
	Wins          int      `json:"Wins"`
	Losses        int      `json:"Losses"`
	Ties          int      `json:"Ties"`
	Record        string   `json:"Record"`
	Streak        string   `json:"Streak"`
}

type RawPlayer struct {
	ID                            string         `json:"ID"`
	Name                          string         `json:"Name"`
	NameFirst                     string         `json:"NameFirst"`
	NameLast                      string         `json:"NameLast"`
	NameShort                     string         `json:"NameShort"`
	Position                      string         `json:"Position"`
	SalaryDollars                 *float64       `json:"SalaryDollars"`
	SalaryDollarsFantasy          *float64       `json:"SalaryDollarsFantasy"`
	SalaryDollarsProjected        *float64       `json:"SalaryDollarsProjected"`
	SalaryDollarsProjectedFantasy *float64       `json:"SalaryDollarsProjectedFantasy"`
	Age                           int            `json:"Age"`
	Year                          int            `json:"Year"`
	Picture                       string         `json:"Picture"`
	Number                        string         `json:"Number"`
	FantasyPros                   string         `json:"FantasyPros"`
	ESPN                          string         `json:"ESPN"`
	College                       string         `json:"College"`
	HighSchool                    string         `json:"HighSchool"`
	Injured                       bool           `json:"Injured"`
	InjuryDetails                 *InjuryDetails `json:"InjuryDetails"`
	TeamID                        string         `json:"TeamID"`
	GamesPlayed                   int            `json:"GamesPlayed"`
	GamesPotential                int            `json:"GamesPotential"`
	SnapsTotal                    int            `json:"SnapsTotal"`
	AttemptsTotal                 int            `json:"AttemptsTotal"`
	FantasyPointsTotal            float64        `json:"FantasyPointsTotal"`
	FantasyPointsAvgGame          float64        `json:"FantasyPointsAvgGame"`
	FantasyPointsAvgPotentialGame float64        `json:"FantasyPointsAvgPotentialGame"`
	FantasyPointsAvgSnap          float64        `json:"FantasyPointsAvgSnap"`
	FantasyPointsAvgAttempt       float64        `json:"FantasyPointsAvgAttempt"`
	TouchdownsTotal               int            `json:"TouchdownsTotal"`
	TouchdownsPassing             int            `json:"TouchdownsPassing"`
	TouchdownsReceiving           int            `json:"TouchdownsReceiving"`
	TouchdownsRushing             int            `json:"TouchdownsRushing"`
	Ranking                       []RankingEntry `json:"Ranking"`
	PointHistory                  *PointHistory  `json:"PointHistory"`
}

type RawNFLTeam struct {
	ID   string `json:"ID"`
	Name string `json:"Name"`
	Abv  string `json:"Abv"`
	Logo string `json:"Logo"`
}

// Amount dereferences a decoded monetary field. Missing values become NaN so
// they stay visible downstream instead of silently reading as zero.
func Amount(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}
