package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/omarshaarawi/capbot/internal/league"
	"github.com/omarshaarawi/capbot/internal/repository/memory"
	"github.com/omarshaarawi/capbot/internal/roster"
	"github.com/omarshaarawi/capbot/internal/salarycap"
)

var (
	ErrNotLoaded = errors.New("league data not loaded yet")
	ErrNoMatch   = errors.New("no match")
)

// Loader fetches and builds the league graph.
type Loader interface {
	LoadLeague(ctx context.Context) (*league.Graph, error)
	LatestTimestamp(ctx context.Context) (string, error)
}

// CapService owns the loaded league and its salary cap session. All access
// to the session and the graph it mutates goes through mu.
type CapService struct {
	api      Loader
	repo     *memory.Repository
	teamSize int
	keys     []roster.SortKey

	refreshMu sync.Mutex
	mu        sync.Mutex
	session   *salarycap.Session
}

// NewCapService returns a service with nothing loaded. teamSize overrides the
// league's salary-relevant team size when positive; keys order the player
// listing when a caller gives none.
func NewCapService(api Loader, repo *memory.Repository, teamSize int, keys []roster.SortKey) *CapService {
	if len(keys) == 0 {
		keys = roster.DefaultKeys
	}
	return &CapService{
		api:      api,
		repo:     repo,
		teamSize: teamSize,
		keys:     keys,
	}
}

// Refresh reloads the league when the published data changed since the last
// load, or always when force is set. A reload starts a new session, so every
// exclusion is dropped. It reports whether a reload happened.
func (s *CapService) Refresh(ctx context.Context, force bool) (bool, error) {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	latest, err := s.api.LatestTimestamp(ctx)
	if err != nil {
		if !force && s.repo.GetSnapshot() != nil {
			return false, err
		}
		slog.Warn("Timestamps unavailable, loading anyway", "error", err)
		latest = ""
	}

	if !force && !s.repo.IsStale(latest) {
		return false, nil
	}

	g, err := s.api.LoadLeague(ctx)
	if err != nil {
		return false, err
	}
	s.repo.SaveSnapshot(g, latest)

	session := salarycap.NewSession(g, s.teamSize)

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	slog.Info("Salary cap session started", "timestamp", latest, "team_size", session.TeamSize())
	return true, nil
}

// Status describes the loaded data.
type Status struct {
	Loaded        bool      `json:"loaded"`
	League        string    `json:"league,omitempty"`
	Season        string    `json:"season,omitempty"`
	DataTimestamp string    `json:"data_timestamp,omitempty"`
	LastUpdated   time.Time `json:"last_updated,omitempty"`
}

func (s *CapService) Status() Status {
	snap := s.repo.GetSnapshot()
	if snap == nil {
		return Status{}
	}
	return Status{
		Loaded:        true,
		League:        snap.Graph.League.Name,
		Season:        snap.Graph.League.Season,
		DataTimestamp: snap.DataTimestamp,
		LastUpdated:   snap.LastUpdated,
	}
}

func (s *CapService) withSession(fn func(*salarycap.Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return ErrNotLoaded
	}
	return fn(s.session)
}
