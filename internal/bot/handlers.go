package bot

import (
	"context"
	"fmt"
	"strings"
)

const helpText = "Available commands:\n" +
	"/standings - League standings with team caps\n" +
	"/cap - League-wide salary cap\n" +
	"/cap refresh - Recompute the league cap with all exclusions\n" +
	"/team <team> - Team cap and its top players\n" +
	"/exclude <team> | <player> - Toggle a player's exclusion from the team cap\n" +
	"/whohas <player> - Find which team has a player\n" +
	"/players [keys] - List players, e.g. /players SalaryDollars,NameLast\n" +
	"/injuries - Injured rostered players\n" +
	"/refresh - Reload league data (resets exclusions)"

// CapService is what the handler needs from the salary cap service.
type CapService interface {
	GetStandings() (string, error)
	GetLeagueCap() (string, error)
	GetRefreshedLeagueCap() (string, error)
	GetTeamCap(query string) (string, error)
	ExcludePlayer(args string) (string, error)
	WhoHas(query string) (string, error)
	GetPlayers(sortKeys string) (string, error)
	GetInjuries() (string, error)
	ForceRefresh(ctx context.Context) (string, error)
}

type Handler struct {
	capService CapService
}

func NewHandler(capService CapService) *Handler {
	return &Handler{capService: capService}
}

// Reply renders the answer to one command.
func (h *Handler) Reply(ctx context.Context, command, args string) string {
	args = strings.TrimSpace(args)

	switch strings.ToLower(command) {
	case "start":
		return "Welcome to CapBot! Use /help to see available commands."
	case "help":
		return helpText
	case "standings":
		return reply(h.capService.GetStandings())("fetching standings")
	case "cap":
		if strings.EqualFold(args, "refresh") {
			return reply(h.capService.GetRefreshedLeagueCap())("refreshing league cap")
		}
		return reply(h.capService.GetLeagueCap())("fetching league cap")
	case "team":
		if args == "" {
			return "Please provide a team name. Usage: /team <team name>"
		}
		return reply(h.capService.GetTeamCap(args))("getting team cap")
	case "exclude":
		if args == "" {
			return "Please provide a team and a player. Usage: /exclude <team> | <player>"
		}
		return reply(h.capService.ExcludePlayer(args))("toggling exclusion")
	case "whohas":
		if args == "" {
			return "Please provide a player name. Usage: /whohas <player name>"
		}
		return reply(h.capService.WhoHas(args))("checking who has player")
	case "players":
		return reply(h.capService.GetPlayers(args))("listing players")
	case "injuries":
		return reply(h.capService.GetInjuries())("fetching injuries")
	case "refresh":
		return reply(h.capService.ForceRefresh(ctx))("reloading league")
	default:
		return "Unknown command. Use /help to see available commands."
	}
}

func reply(text string, err error) func(action string) string {
	return func(action string) string {
		if err != nil {
			return fmt.Sprintf("Error %s: %v", action, err)
		}
		return text
	}
}
