package bot

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeCapService struct {
	calls []string
	err   error
}

func (f *fakeCapService) record(call string) (string, error) {
	f.calls = append(f.calls, call)
	return "ok:" + call, f.err
}

func (f *fakeCapService) GetStandings() (string, error)          { return f.record("standings") }
func (f *fakeCapService) GetLeagueCap() (string, error)          { return f.record("cap") }
func (f *fakeCapService) GetRefreshedLeagueCap() (string, error) { return f.record("cap refresh") }
func (f *fakeCapService) GetTeamCap(q string) (string, error)    { return f.record("team " + q) }
func (f *fakeCapService) ExcludePlayer(a string) (string, error) { return f.record("exclude " + a) }
func (f *fakeCapService) WhoHas(q string) (string, error)        { return f.record("whohas " + q) }
func (f *fakeCapService) GetPlayers(k string) (string, error)    { return f.record("players " + k) }
func (f *fakeCapService) GetInjuries() (string, error)           { return f.record("injuries") }
func (f *fakeCapService) ForceRefresh(context.Context) (string, error) {
	return f.record("refresh")
}

func TestReplyRoutesCommands(t *testing.T) {
	tests := []struct {
		command string
		args    string
		want    string
	}{
		{"standings", "", "ok:standings"},
		{"cap", "", "ok:cap"},
		{"cap", " Refresh ", "ok:cap refresh"},
		{"team", "gurus", "ok:team gurus"},
		{"exclude", "ann | mahomes", "ok:exclude ann | mahomes"},
		{"whohas", "josh allen", "ok:whohas josh allen"},
		{"players", "", "ok:players "},
		{"players", "SalaryDollars", "ok:players SalaryDollars"},
		{"injuries", "", "ok:injuries"},
		{"refresh", "", "ok:refresh"},
		{"STANDINGS", "", "ok:standings"},
	}
	for _, tt := range tests {
		h := NewHandler(&fakeCapService{})
		if got := h.Reply(context.Background(), tt.command, tt.args); got != tt.want {
			t.Errorf("/%s %s: want %q, got %q", tt.command, tt.args, tt.want, got)
		}
	}
}

func TestReplyUsage(t *testing.T) {
	svc := &fakeCapService{}
	h := NewHandler(svc)

	for _, command := range []string{"team", "exclude", "whohas"} {
		got := h.Reply(context.Background(), command, "  ")
		if !strings.HasPrefix(got, "Please provide") {
			t.Errorf("/%s without args: want usage, got %q", command, got)
		}
	}
	if len(svc.calls) != 0 {
		t.Errorf("usage replies should not call the service, got %v", svc.calls)
	}

	if got := h.Reply(context.Background(), "help", ""); !strings.Contains(got, "/exclude <team> | <player>") {
		t.Errorf("help should list /exclude, got %q", got)
	}
	if got := h.Reply(context.Background(), "nope", ""); !strings.HasPrefix(got, "Unknown command") {
		t.Errorf("unknown command: got %q", got)
	}
}

func TestReplyErrors(t *testing.T) {
	h := NewHandler(&fakeCapService{err: errors.New("boom")})

	got := h.Reply(context.Background(), "standings", "")
	if got != "Error fetching standings: boom" {
		t.Errorf("want error text, got %q", got)
	}
}
