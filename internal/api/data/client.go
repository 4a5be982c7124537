package data

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/omarshaarawi/capbot/internal/config"
)

const (
	LeagueDocument     = "League.json"
	PlayersDocument    = "Players.json"
	TeamsDocument      = "Teams.json"
	TimestampsDocument = "Timestamps.json"
)

type Client struct {
	httpClient *http.Client
	Config     config.DataAPI
}

func NewClient(cfg config.DataAPI) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		Config:     cfg,
	}
}

// Get fetches the named document below the configured base URL and decodes
// it into result.
func (c *Client) Get(ctx context.Context, document string, result any) error {
	u, err := c.documentURL(document)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code for %s: %d", document, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("error decoding %s: %w", document, err)
	}

	return nil
}

func (c *Client) documentURL(document string) (string, error) {
	base, err := url.Parse(strings.TrimRight(c.Config.BaseURL, "/") + "/")
	if err != nil {
		return "", fmt.Errorf("invalid base url %q: %w", c.Config.BaseURL, err)
	}
	return base.JoinPath(document).String(), nil
}
