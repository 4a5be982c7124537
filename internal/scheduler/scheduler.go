package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/omarshaarawi/capbot/internal/config"
)

// CapService is what the scheduled jobs need from the salary cap service.
type CapService interface {
	Refresh(ctx context.Context, force bool) (bool, error)
	GetCapReport() (string, error)
}

type Scheduler struct {
	s           gocron.Scheduler
	capService  CapService
	sendMessage func(string) error
	cfg         config.Scheduler
}

func NewScheduler(capService CapService, sendMessage func(string) error, cfg config.Scheduler) (*Scheduler, error) {
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load location %q: %w", cfg.Timezone, err)
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(location),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:           s,
		capService:  capService,
		sendMessage: sendMessage,
		cfg:         cfg,
	}, nil
}

// Start registers the jobs and starts the scheduler. ctx bounds every data
// refresh the scheduler runs.
func (s *Scheduler) Start(ctx context.Context) error {
	var err error

	// Data refresh - reloads only when Timestamps.json changed
	_, err = s.s.NewJob(
		gocron.DurationJob(s.cfg.RefreshInterval),
		gocron.NewTask(func() { s.refreshData(ctx) }),
		gocron.WithName("refresh"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to create refresh job: %w", err)
	}

	// Weekly cap report - Tuesday 7:30 by default
	if s.sendMessage != nil {
		_, err = s.s.NewJob(
			gocron.CronJob(s.cfg.ReportCron, false),
			gocron.NewTask(s.sendCapReport),
			gocron.WithName("cap report"),
		)
		if err != nil {
			return fmt.Errorf("failed to create cap report job: %w", err)
		}
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) refreshData(ctx context.Context) {
	reloaded, err := s.capService.Refresh(ctx, false)
	if err != nil {
		slog.Error("Failed to refresh league data", "error", err)
		return
	}
	if reloaded {
		slog.Info("League data reloaded by scheduler")
	}
}

func (s *Scheduler) sendCapReport() {
	report, err := s.capService.GetCapReport()
	if err != nil {
		slog.Error("Failed to get cap report", "error", err)
		return
	}
	if err := s.sendMessage(report); err != nil {
		slog.Error("Failed to send cap report", "error", err)
	}
}
