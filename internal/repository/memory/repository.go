package memory

import (
	"sync"
	"time"

	"github.com/omarshaarawi/capbot/internal/league"
)

// Snapshot is one loaded graph together with the data timestamp it was
// built from.
type Snapshot struct {
	Graph         *league.Graph
	DataTimestamp string
	LastUpdated   time.Time
}

type Repository struct {
	snapshot *Snapshot
	mu       sync.RWMutex
}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) SaveSnapshot(g *league.Graph, dataTimestamp string) *Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshot = &Snapshot{
		Graph:         g,
		DataTimestamp: dataTimestamp,
		LastUpdated:   time.Now(),
	}
	return r.snapshot
}

// GetSnapshot returns the current snapshot, or nil before the first load.
func (r *Repository) GetSnapshot() *Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot
}

// IsStale reports whether latest differs from the stored data timestamp or
// nothing has been loaded yet.
func (r *Repository) IsStale(latest string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot == nil || r.snapshot.DataTimestamp != latest
}
