package fantasy

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/omarshaarawi/capbot/internal/api/data"
	"github.com/omarshaarawi/capbot/internal/league"
	"github.com/omarshaarawi/capbot/internal/models"
	"github.com/omarshaarawi/capbot/internal/roster"
)

// Source is where the raw documents come from.
type Source interface {
	GetDocuments(ctx context.Context) (*data.Documents, error)
	GetTimestamps(ctx context.Context) (models.Timestamps, error)
}

type API struct {
	source Source
	keys   []roster.SortKey
}

// NewAPI returns a loader whose league-wide player listing is ordered by keys.
func NewAPI(source Source, keys ...roster.SortKey) *API {
	return &API{source: source, keys: keys}
}

// LoadLeague fetches the three documents and builds the graph. Data issues
// are logged and kept on the graph; only fetch failures are errors.
func (a *API) LoadLeague(ctx context.Context) (*league.Graph, error) {
	docs, err := a.source.GetDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading league: %w", err)
	}

	g := league.Build(docs.League, docs.Players, docs.NFLTeams, a.keys...)
	logIssues(g.Issues)

	slog.Info("League loaded",
		"league", g.League.Name,
		"season", g.League.Season,
		"teams", len(g.Teams),
		"players", len(g.Players))
	return g, nil
}

// LatestTimestamp returns the newest of the published data timestamps.
func (a *API) LatestTimestamp(ctx context.Context) (string, error) {
	ts, err := a.source.GetTimestamps(ctx)
	if err != nil {
		return "", err
	}
	return ts.Latest(), nil
}

func logIssues(issues league.Issues) {
	if issues.Empty() {
		return
	}
	if len(issues.UnresolvedNFLTeams) > 0 {
		slog.Warn("Players with unknown NFL team", "players", issues.UnresolvedNFLTeams)
	}
	for _, teamID := range sortedTeamIDs(issues.DanglingRosterIDs) {
		slog.Warn("Roster references unknown players", "team", teamID, "players", issues.DanglingRosterIDs[teamID])
	}
	for _, teamID := range sortedTeamIDs(issues.DuplicateRosterIDs) {
		slog.Warn("Roster references players owned by another team", "team", teamID, "players", issues.DuplicateRosterIDs[teamID])
	}
	if len(issues.DuplicatePlayerIDs) > 0 {
		slog.Warn("Duplicate player IDs, first entry kept", "players", issues.DuplicatePlayerIDs)
	}
	if issues.InvalidSeason != "" {
		slog.Warn("Season is not a year, point history seasons left at 0", "season", issues.InvalidSeason)
	}
}

func sortedTeamIDs(m map[int][]string) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
