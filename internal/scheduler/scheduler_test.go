package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/omarshaarawi/capbot/internal/config"
)

type fakeCapService struct {
	refreshes int
	reloaded  bool
	err       error
	report    string
}

func (f *fakeCapService) Refresh(context.Context, bool) (bool, error) {
	f.refreshes++
	return f.reloaded, f.err
}

func (f *fakeCapService) GetCapReport() (string, error) {
	return f.report, f.err
}

func testConfig() config.Scheduler {
	return config.Scheduler{
		RefreshInterval: time.Hour,
		ReportCron:      "30 7 * * 2",
		Timezone:        "America/Chicago",
	}
}

func TestNewSchedulerRejectsBadTimezone(t *testing.T) {
	cfg := testConfig()
	cfg.Timezone = "Mars/Olympus"

	if _, err := NewScheduler(&fakeCapService{}, nil, cfg); err == nil {
		t.Fatal("want error for unknown timezone")
	}
}

func TestStartRejectsBadCron(t *testing.T) {
	cfg := testConfig()
	cfg.ReportCron = "every tuesday"

	s, err := NewScheduler(&fakeCapService{}, func(string) error { return nil }, cfg)
	if err != nil {
		t.Fatalf("NewScheduler: %v", err)
	}
	defer s.Stop()

	if err := s.Start(context.Background()); err == nil {
		t.Fatal("want error for invalid cron expression")
	}
}

func TestStartRegistersJobs(t *testing.T) {
	svc := &fakeCapService{}
	s, err := NewScheduler(svc, func(string) error { return nil }, testConfig())
	if err != nil {
		t.Fatalf("NewScheduler: %v", err)
	}
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if got := len(s.s.Jobs()); got != 2 {
		t.Errorf("want 2 jobs, got %d", got)
	}
	if err := s.Stop(); err != nil {
		t.Errorf("Stop: %v", err)
	}
}

func TestStartWithoutSenderSkipsReport(t *testing.T) {
	s, err := NewScheduler(&fakeCapService{}, nil, testConfig())
	if err != nil {
		t.Fatalf("NewScheduler: %v", err)
	}
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer s.Stop()

	if got := len(s.s.Jobs()); got != 1 {
		t.Errorf("want only the refresh job, got %d", got)
	}
}

func TestSendCapReport(t *testing.T) {
	var sent []string
	svc := &fakeCapService{report: "cap report"}
	s, err := NewScheduler(svc, func(text string) error {
		sent = append(sent, text)
		return nil
	}, testConfig())
	if err != nil {
		t.Fatalf("NewScheduler: %v", err)
	}

	s.sendCapReport()
	if len(sent) != 1 || sent[0] != "cap report" {
		t.Errorf("want one cap report sent, got %v", sent)
	}

	svc.err = errors.New("not loaded")
	s.sendCapReport()
	if len(sent) != 1 {
		t.Errorf("failed report should not be sent, got %v", sent)
	}
}

func TestRefreshData(t *testing.T) {
	svc := &fakeCapService{reloaded: true}
	s, err := NewScheduler(svc, nil, testConfig())
	if err != nil {
		t.Fatalf("NewScheduler: %v", err)
	}

	s.refreshData(context.Background())
	svc.err = errors.New("offline")
	s.refreshData(context.Background())

	if svc.refreshes != 2 {
		t.Errorf("want 2 refreshes, got %d", svc.refreshes)
	}
}
