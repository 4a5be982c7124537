package config

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/omarshaarawi/capbot/internal/roster"
)

func setRequired(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("CHAT_ID", "42")
	t.Setenv("DATA_BASE_URL", "https://example.test/data")
}

func TestNewDefaults(t *testing.T) {
	setRequired(t)

	c, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.TelegramBot.ChatID != 42 {
		t.Errorf("chat id: want 42, got %d", c.TelegramBot.ChatID)
	}
	if c.DataAPI.Timeout != 10*time.Second {
		t.Errorf("timeout: want 10s, got %s", c.DataAPI.Timeout)
	}
	if c.Scheduler.RefreshInterval != 15*time.Minute {
		t.Errorf("refresh interval: want 15m, got %s", c.Scheduler.RefreshInterval)
	}
	if c.Scheduler.ReportCron != "30 7 * * 2" {
		t.Errorf("report cron: want default, got %q", c.Scheduler.ReportCron)
	}
	if got := c.SalaryCap.Keys(); !slices.Equal(got, roster.DefaultKeys) {
		t.Errorf("sort keys: want %v, got %v", roster.DefaultKeys, got)
	}
	if c.MCP.Addr != ":8080" || c.MCP.Transport != "http" {
		t.Errorf("mcp: want :8080/http, got %s/%s", c.MCP.Addr, c.MCP.Transport)
	}
}

func TestNewMissingRequired(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("CHAT_ID", "42")
	t.Setenv("DATA_BASE_URL", "")

	if _, err := New(); err == nil {
		t.Fatalf("want error for missing DATA_BASE_URL")
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad cron", "REPORT_CRON", "every tuesday"},
		{"bad sort key", "SORT_KEYS", "NameLast,Shoe"},
		{"negative team size", "SALARY_TEAM_SIZE", "-1"},
		{"zero interval", "REFRESH_INTERVAL", "0s"},
		{"bad timezone", "TIMEZONE", "Mars/Olympus"},
		{"bad transport", "MCP_TRANSPORT", "carrier-pigeon"},
		{"zero mcp interval", "MCP_REFRESH_INTERVAL", "-1m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.key, tt.value)

			if _, err := New(); err == nil {
				t.Errorf("%s=%q: want error", tt.key, tt.value)
			}
		})
	}
}

func TestSortKeysParsed(t *testing.T) {
	setRequired(t)
	t.Setenv("SORT_KEYS", "salarydollars, NameLast")

	c, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	want := []roster.SortKey{roster.KeySalary, roster.KeyNameLast}
	if got := c.SalaryCap.Keys(); !slices.Equal(got, want) {
		t.Errorf("want %v, got %v", want, got)
	}
}

func TestNewMCPIgnoresTelegram(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "")
	t.Setenv("CHAT_ID", "")
	t.Setenv("DATA_BASE_URL", "https://example.test/data")
	t.Setenv("MCP_TRANSPORT", "stdio")

	c, err := NewMCP()
	if err != nil {
		t.Fatalf("NewMCP: %v", err)
	}
	if c.MCP.Transport != "stdio" {
		t.Errorf("transport: want stdio, got %s", c.MCP.Transport)
	}
	if c.MCP.RefreshInterval != 15*time.Minute {
		t.Errorf("mcp refresh interval: want 15m, got %s", c.MCP.RefreshInterval)
	}

	t.Setenv("SORT_KEYS", "Bogus")
	if _, err := NewMCP(); !errors.Is(err, roster.ErrUnknownSortKey) {
		t.Errorf("want ErrUnknownSortKey, got %v", err)
	}
}
