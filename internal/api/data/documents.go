package data

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/omarshaarawi/capbot/internal/models"
)

// Documents is one consistent set of the three graph inputs.
type Documents struct {
	League   models.RawLeague
	Players  []models.RawPlayer
	NFLTeams []models.RawNFLTeam
}

type API struct {
	client *Client
}

func NewAPI(client *Client) *API {
	return &API{client: client}
}

func (a *API) GetLeague(ctx context.Context) (models.RawLeague, error) {
	var league models.RawLeague
	if err := a.client.Get(ctx, LeagueDocument, &league); err != nil {
		return models.RawLeague{}, fmt.Errorf("fetching league: %w", err)
	}
	return league, nil
}

func (a *API) GetPlayers(ctx context.Context) ([]models.RawPlayer, error) {
	var players []models.RawPlayer
	if err := a.client.Get(ctx, PlayersDocument, &players); err != nil {
		return nil, fmt.Errorf("fetching players: %w", err)
	}
	return players, nil
}

func (a *API) GetNFLTeams(ctx context.Context) ([]models.RawNFLTeam, error) {
	var teams []models.RawNFLTeam
	if err := a.client.Get(ctx, TeamsDocument, &teams); err != nil {
		return nil, fmt.Errorf("fetching nfl teams: %w", err)
	}
	return teams, nil
}

func (a *API) GetTimestamps(ctx context.Context) (models.Timestamps, error) {
	var ts models.Timestamps
	if err := a.client.Get(ctx, TimestampsDocument, &ts); err != nil {
		return models.Timestamps{}, fmt.Errorf("fetching timestamps: %w", err)
	}
	return ts, nil
}

// GetDocuments fetches the league, players and NFL team documents
// concurrently. Either all three arrive or an error is returned; the first
// failure cancels the remaining requests.
func (a *API) GetDocuments(ctx context.Context) (*Documents, error) {
	var docs Documents
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		league, err := a.GetLeague(ctx)
		docs.League = league
		return err
	})
	g.Go(func() error {
		players, err := a.GetPlayers(ctx)
		docs.Players = players
		return err
	})
	g.Go(func() error {
		teams, err := a.GetNFLTeams(ctx)
		docs.NFLTeams = teams
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &docs, nil
}
