package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/omarshaarawi/capbot/internal/repository/memory"
)

func assertContains(t *testing.T, text string, parts ...string) {
	t.Helper()
	for _, part := range parts {
		if !strings.Contains(text, part) {
			t.Errorf("want %q in:\n%s", part, text)
		}
	}
}

func TestGetStandings(t *testing.T) {
	s, _ := loadedService(t)

	text, err := s.GetStandings()
	if err != nil {
		t.Fatalf("GetStandings: %v", err)
	}
	assertContains(t, text,
		"🏆 *Current Standings*",
		"1. *Bench Mob* (bob)",
		"Record: 5-0-0 (W2)",
		"2. *Gridiron Gurus* (ann)",
		"Cap: $6.0 Mio.",
	)
	if strings.Index(text, "Bench Mob") > strings.Index(text, "Gridiron Gurus") {
		t.Errorf("standings out of order:\n%s", text)
	}
}

func TestGetTeamCapMarkers(t *testing.T) {
	s, _ := loadedService(t)

	if _, err := s.ExcludePlayer("gurus | kelce"); err != nil {
		t.Fatalf("ExcludePlayer: %v", err)
	}
	text, err := s.GetTeamCap("gurus")
	if err != nil {
		t.Fatalf("GetTeamCap: %v", err)
	}
	assertContains(t, text,
		"📋 *Gridiron Gurus* (ann)",
		"Cap: $6.0 Mio.",
		"Top 2 of 3 players, 1 excluded",
		"✅ QB Patrick Mahomes - $5.0 Mio.",
		"❌ TE Travis Kelce - $3.0 Mio.",
		"✅ QB Joe Backup - $1.0 Mio.",
	)
}

func TestExcludePlayerMessages(t *testing.T) {
	s, _ := loadedService(t)

	text, err := s.ExcludePlayer("ann | mahomes")
	if err != nil {
		t.Fatalf("ExcludePlayer: %v", err)
	}
	assertContains(t, text,
		"🚫 *Patrick Mahomes* excluded from *Gridiron Gurus*",
		"Cap: $8.0 Mio. → $4.0 Mio. (-$4.0 Mio.)",
	)

	text, err = s.ExcludePlayer("ann | mahomes")
	if err != nil {
		t.Fatalf("ExcludePlayer: %v", err)
	}
	assertContains(t, text, "✅ *Patrick Mahomes* counts for *Gridiron Gurus* again")

	text, err = s.ExcludePlayer("ann | backup")
	if err != nil {
		t.Fatalf("ExcludePlayer: %v", err)
	}
	assertContains(t, text, "Cap: $8.0 Mio. → $8.0 Mio. ($0)")
	if strings.Contains(text, "Rookie") {
		t.Errorf("zero delta rendered as Rookie:\n%s", text)
	}

	for _, args := range []string{"", "ann", "ann |", "| mahomes"} {
		if _, err := s.ExcludePlayer(args); !errors.Is(err, errExcludeUsage) {
			t.Errorf("ExcludePlayer(%q): want usage error, got %v", args, err)
		}
	}
}

func TestWhoHas(t *testing.T) {
	s, _ := loadedService(t)

	text, err := s.WhoHas("diggs")
	if err != nil {
		t.Fatalf("WhoHas: %v", err)
	}
	assertContains(t, text, "*Stefon Diggs* (WR - BUF)", "*Bench Mob*", "Counts toward cap", "Salary: $2.0 Mio.")

	text, err = s.WhoHas("mahomes")
	if err != nil {
		t.Fatalf("WhoHas: %v", err)
	}
	assertContains(t, text,
		"24.50 per game",
		"Rank: Total #3, Position #1",
		"*History:*",
		"2024: 22.50 pts/game (17/17 games)",
		"2022: 20.00 pts/game (15/17 games)",
	)

	text, _ = s.WhoHas("Free Wheeler")
	assertContains(t, text, "Free Agent", "Salary: $500k")

	text, err = s.WhoHas("qqqqqqqq")
	if err != nil {
		t.Fatalf("no match should not be an error: %v", err)
	}
	assertContains(t, text, "No player found matching 'qqqqqqqq'")
}

func TestGetPlayers(t *testing.T) {
	s, _ := loadedService(t)

	text, err := s.GetPlayers("SalaryDollars")
	if err != nil {
		t.Fatalf("GetPlayers: %v", err)
	}
	assertContains(t, text,
		"📊 *Players* by SalaryDollars",
		"1. QB Patrick Mahomes (KC, Gridiron Gurus) - $5.0 Mio.",
		"6. WR Free Wheeler (BUF, FA) - $500k",
	)

	text, err = s.GetPlayers("")
	if err != nil {
		t.Fatalf("GetPlayers: %v", err)
	}
	assertContains(t, text, "by NameLast")

	text, err = s.GetPlayers("Shoe")
	if err != nil {
		t.Fatalf("unknown key should not be an error: %v", err)
	}
	assertContains(t, text, "Unknown sort key", "SalaryDollars")
}

func TestGetInjuries(t *testing.T) {
	s, _ := loadedService(t)

	text, err := s.GetInjuries()
	if err != nil {
		t.Fatalf("GetInjuries: %v", err)
	}
	assertContains(t, text, "*Bench Mob:*", "QB Josh Allen - Questionable (Ankle)")
}

func TestGetCapReport(t *testing.T) {
	s, _ := loadedService(t)

	text, err := s.GetCapReport()
	if err != nil {
		t.Fatalf("GetCapReport: %v", err)
	}
	assertContains(t, text,
		"💰 *League Salary Cap*",
		"Top 2 players × 2 teams",
		"Cap: $7.0 Mio.",
		"Published: $100.0 Mio. (projected n/a)",
		"Top 2 overall: $9.0 Mio. (projected $4.5 Mio.)",
		"QB ×2",
		"1. Bench Mob - $6.0 Mio.",
		"2. Gridiron Gurus - $8.0 Mio.",
	)
}

func TestForceRefresh(t *testing.T) {
	s, loader := loadedService(t)

	text, err := s.ForceRefresh(context.Background())
	if err != nil {
		t.Fatalf("ForceRefresh: %v", err)
	}
	assertContains(t, text, "*Cap League* reloaded", "Data from 2025-09-01T00:00:00Z", "exclusions were reset")
	if loader.loads != 2 {
		t.Errorf("loads: want 2, got %d", loader.loads)
	}
}

func TestReportsBeforeLoad(t *testing.T) {
	s := NewCapService(&fakeLoader{}, memory.NewRepository(), 0, nil)

	if _, err := s.GetLeagueCap(); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("want ErrNotLoaded, got %v", err)
	}
	if _, err := s.GetStandings(); err == nil || err.Error() != ErrNotLoaded.Error() {
		t.Errorf("want the bare not loaded error, got %v", err)
	}
	if _, err := s.WhoHas("anyone"); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("want ErrNotLoaded, got %v", err)
	}
}
