package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/kelseyhightower/envconfig"
	"github.com/robfig/cron/v3"

	"github.com/omarshaarawi/capbot/internal/roster"
)

type Config struct {
	TelegramBot TelegramBot
	DataAPI     DataAPI
	SalaryCap   SalaryCap
	Scheduler   Scheduler
	MCP         MCP
}

type TelegramBot struct {
	Token  string `envconfig:"TELEGRAM_TOKEN" required:"true"`
	ChatID int64  `envconfig:"CHAT_ID" required:"true"`
}

type DataAPI struct {
	BaseURL string        `envconfig:"DATA_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"DATA_TIMEOUT" default:"10s"`
}

type SalaryCap struct {
	SortKeys string `envconfig:"SORT_KEYS" default:"NameLast"`
	// TeamSize overrides the league's salary-relevant team size when positive.
	TeamSize int `envconfig:"SALARY_TEAM_SIZE" default:"0"`
}

type Scheduler struct {
	RefreshInterval time.Duration `envconfig:"REFRESH_INTERVAL" default:"15m"`
	ReportCron      string        `envconfig:"REPORT_CRON" default:"30 7 * * 2"`
	Timezone        string        `envconfig:"TIMEZONE" default:"America/Chicago"`
}

type MCP struct {
	Addr            string        `envconfig:"MCP_ADDR" default:":8080"`
	Transport       string        `envconfig:"MCP_TRANSPORT" default:"http"`
	RefreshInterval time.Duration `envconfig:"MCP_REFRESH_INTERVAL" default:"15m"`
}

// Keys returns the parsed sort keys.
func (c SalaryCap) Keys() []roster.SortKey {
	keys, err := roster.ParseSortKeys(c.SortKeys)
	if err != nil {
		return roster.DefaultKeys
	}
	return keys
}

// New loads the full configuration used by the Telegram bot.
func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// NewMCP loads the configuration for the MCP server, which has no use for
// the Telegram or scheduler settings.
func NewMCP() (*Config, error) {
	var c Config
	for _, spec := range []any{&c.DataAPI, &c.SalaryCap, &c.MCP} {
		if err := envconfig.Process("", spec); err != nil {
			return nil, err
		}
	}
	if err := c.validateCommon(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	if err := c.validateCommon(); err != nil {
		return err
	}
	if _, err := cron.ParseStandard(c.Scheduler.ReportCron); err != nil {
		return fmt.Errorf("invalid REPORT_CRON %q: %w", c.Scheduler.ReportCron, err)
	}
	if c.Scheduler.RefreshInterval <= 0 {
		return fmt.Errorf("REFRESH_INTERVAL must be positive, got %s", c.Scheduler.RefreshInterval)
	}
	if _, err := time.LoadLocation(c.Scheduler.Timezone); err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", c.Scheduler.Timezone, err)
	}
	return nil
}

func (c *Config) validateCommon() error {
	if strings.TrimSpace(c.DataAPI.BaseURL) == "" {
		return fmt.Errorf("DATA_BASE_URL must not be empty")
	}
	if _, err := roster.ParseSortKeys(c.SalaryCap.SortKeys); err != nil {
		return fmt.Errorf("invalid SORT_KEYS: %w", err)
	}
	if c.SalaryCap.TeamSize < 0 {
		return fmt.Errorf("SALARY_TEAM_SIZE must not be negative, got %d", c.SalaryCap.TeamSize)
	}
	switch strings.ToLower(c.MCP.Transport) {
	case "http", "stdio":
	default:
		return fmt.Errorf("invalid MCP_TRANSPORT %q: want http or stdio", c.MCP.Transport)
	}
	if c.MCP.RefreshInterval <= 0 {
		return fmt.Errorf("MCP_REFRESH_INTERVAL must be positive, got %s", c.MCP.RefreshInterval)
	}
	return nil
}
