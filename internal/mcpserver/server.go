// Package mcpserver exposes the salary cap service as MCP tools.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/omarshaarawi/capbot/internal/service"
)

// CapService is what the tools need from the salary cap service.
type CapService interface {
	Status() service.Status
	Standings() ([]service.TeamStanding, error)
	LeagueCap() (service.LeagueCapReport, error)
	RefreshLeagueCap() (service.LeagueCapReport, error)
	TeamCap(query string) (service.TeamCapReport, error)
	ToggleExclusion(teamQuery, playerQuery string) (service.ExclusionResult, error)
	PlayerLookup(query string) (service.PlayerView, error)
	Players(sortKeys string) ([]service.PlayerView, error)
	Injuries() ([]service.TeamInjuries, error)
	Refresh(ctx context.Context, force bool) (bool, error)
}

type NoArgs struct{}

type TeamArgs struct {
	Team string `json:"team" jsonschema:"Team name, owner name or team id (required)"`
}

type ExclusionArgs struct {
	Team   string `json:"team" jsonschema:"Team name, owner name or team id (required)"`
	Player string `json:"player" jsonschema:"Player name or id on that team (required)"`
}

type PlayerArgs struct {
	Player string `json:"player" jsonschema:"Player name or id (required)"`
}

type PlayersArgs struct {
	SortKeys string `json:"sort_keys,omitempty" jsonschema:"Comma-separated sort keys, e.g. SalaryDollars,NameLast"`
	Limit    int    `json:"limit,omitempty" jsonschema:"Maximum number of players (0 = all)"`
}

type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Server wraps the MCP server and the list of tools registered on it.
type Server struct {
	*mcp.Server
	Tools []ToolInfo
}

func NewServer(capService CapService, version string) *Server {
	server := &Server{
		Server: mcp.NewServer(
			&mcp.Implementation{
				Name:    "capbot-mcp",
				Version: version,
			},
			nil,
		),
	}

	addTool(server, &mcp.Tool{
		Name:        "status",
		Description: "Which league is loaded and when its data was published",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args NoArgs) (*mcp.CallToolResult, any, error) {
		return toolJSON(capService.Status(), nil)
	})

	addTool(server, &mcp.Tool{
		Name:        "standings",
		Description: "League standings with each team's computed salary cap",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args NoArgs) (*mcp.CallToolResult, any, error) {
		return toolJSON(capService.Standings())
	})

	addTool(server, &mcp.Tool{
		Name:        "league_cap",
		Description: "League-wide salary cap, published and computed, with the positional breakdown",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args NoArgs) (*mcp.CallToolResult, any, error) {
		return toolJSON(capService.LeagueCap())
	})

	addTool(server, &mcp.Tool{
		Name:        "refresh_league_cap",
		Description: "Recompute the league-wide cap honoring every team's exclusions",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args NoArgs) (*mcp.CallToolResult, any, error) {
		return toolJSON(capService.RefreshLeagueCap())
	})

	addTool(server, &mcp.Tool{
		Name:        "team_cap",
		Description: "A team's salary cap and its roster marked relevant or excluded",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args TeamArgs) (*mcp.CallToolResult, any, error) {
		if strings.TrimSpace(args.Team) == "" {
			return toolError(fmt.Errorf("team is required")), nil, nil
		}
		return toolJSON(capService.TeamCap(args.Team))
	})

	addTool(server, &mcp.Tool{
		Name:        "toggle_exclusion",
		Description: "Exclude a player from (or restore a player to) their team's cap calculation",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args ExclusionArgs) (*mcp.CallToolResult, any, error) {
		if strings.TrimSpace(args.Team) == "" || strings.TrimSpace(args.Player) == "" {
			return toolError(fmt.Errorf("team and player are required")), nil, nil
		}
		return toolJSON(capService.ToggleExclusion(args.Team, args.Player))
	})

	addTool(server, &mcp.Tool{
		Name:        "player_lookup",
		Description: "Find a player by name or id: fantasy team, salary, rankings and point history of past seasons",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args PlayerArgs) (*mcp.CallToolResult, any, error) {
		if strings.TrimSpace(args.Player) == "" {
			return toolError(fmt.Errorf("player is required")), nil, nil
		}
		return toolJSON(capService.PlayerLookup(args.Player))
	})

	addTool(server, &mcp.Tool{
		Name:        "players",
		Description: "Every player in the league ordered by the given sort keys",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args PlayersArgs) (*mcp.CallToolResult, any, error) {
		players, err := capService.Players(args.SortKeys)
		if err == nil && args.Limit > 0 && len(players) > args.Limit {
			players = players[:args.Limit]
		}
		return toolJSON(players, err)
	})

	addTool(server, &mcp.Tool{
		Name:        "injuries",
		Description: "Injured rostered players grouped by team",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args NoArgs) (*mcp.CallToolResult, any, error) {
		return toolJSON(capService.Injuries())
	})

	addTool(server, &mcp.Tool{
		Name:        "reload",
		Description: "Reload league data from the source; resets every exclusion",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args NoArgs) (*mcp.CallToolResult, any, error) {
		if _, err := capService.Refresh(ctx, true); err != nil {
			return toolError(err), nil, nil
		}
		return toolJSON(capService.Status(), nil)
	})

	return server
}

func addTool[T any](server *Server, tool *mcp.Tool, handler func(context.Context, *mcp.CallToolRequest, T) (*mcp.CallToolResult, any, error)) {
	server.Tools = append(server.Tools, ToolInfo{Name: tool.Name, Description: tool.Description})
	mcp.AddTool(server.Server, tool, handler)
}

func toolJSON(v any, err error) (*mcp.CallToolResult, any, error) {
	if err != nil {
		return toolError(err), nil, nil
	}
	res, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError(err), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(res)},
		},
	}, nil, nil
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}
