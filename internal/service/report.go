package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/omarshaarawi/capbot/internal/models"
	"github.com/omarshaarawi/capbot/internal/roster"
)

// maxListedPlayers keeps the player listing under the Telegram message limit.
const maxListedPlayers = 30

var errExcludeUsage = errors.New("usage: /exclude <team> | <player>")

// whoHasRankings are the rankings /whohas shows, with their labels.
var whoHasRankings = map[models.RankingType]string{
	models.RankingTotal:       "Total",
	models.RankingCombined:    "Combined",
	models.RankingCombinedPos: "Position",
}

func (s *CapService) GetStandings() (string, error) {
	standings, err := s.Standings()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("🏆 *Current Standings*\n\n")
	for _, team := range standings {
		sb.WriteString(fmt.Sprintf("%d. *%s* (%s)\n", team.Standing, team.Team, team.Owner))
		sb.WriteString(fmt.Sprintf("   Record: %d-%d-%d", team.Wins, team.Losses, team.Ties))
		if team.Streak != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", team.Streak))
		}
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("   Points For: %.2f\n", team.Points))
		sb.WriteString(fmt.Sprintf("   Points Against: %.2f\n", team.PointsAgainst))
		sb.WriteString(fmt.Sprintf("   Cap: %s\n\n", team.Salary.CapDisplay))
	}

	return sb.String(), nil
}

func (s *CapService) GetLeagueCap() (string, error) {
	report, err := s.LeagueCap()
	if err != nil {
		return "", err
	}
	return formatLeagueCap("💰 *League Salary Cap*", report), nil
}

// GetRefreshedLeagueCap applies every team's exclusions to the league-wide
// figures before rendering them.
func (s *CapService) GetRefreshedLeagueCap() (string, error) {
	report, err := s.RefreshLeagueCap()
	if err != nil {
		return "", err
	}
	return formatLeagueCap("💰 *League Salary Cap* (refreshed)", report), nil
}

func formatLeagueCap(title string, report LeagueCapReport) string {
	var sb strings.Builder
	sb.WriteString(title + "\n\n")
	sb.WriteString(fmt.Sprintf("*%s* %s\n", report.League, report.Season))
	sb.WriteString(fmt.Sprintf("Top %d players × %d teams\n\n", report.TeamSize, report.TeamCount))
	sb.WriteString(fmt.Sprintf("Cap: %s\n", report.Computed.CapDisplay))
	sb.WriteString(fmt.Sprintf("Projected: %s\n", report.Computed.CapProjectedDisplay))
	sb.WriteString(fmt.Sprintf("Published: %s (projected %s)\n", report.Published.CapDisplay, report.Published.CapProjectedDisplay))
	sb.WriteString(fmt.Sprintf("Top %d overall: %s (projected %s)\n", report.TeamSize, report.TopN.CapDisplay, report.TopN.CapProjectedDisplay))

	sb.WriteString("\n*Positional Cap:*\n")
	for _, slot := range report.Positional.Slots {
		sb.WriteString(fmt.Sprintf("  • %s ×%d: avg %s\n", slot.Slot, slot.Count, slot.AverageDisplay))
	}
	sb.WriteString(fmt.Sprintf("Total: %s\n", report.Positional.CapDisplay))
	return sb.String()
}

func (s *CapService) GetTeamCap(query string) (string, error) {
	report, err := s.TeamCap(query)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📋 *%s* (%s)\n\n", report.Team, report.Owner))
	sb.WriteString(fmt.Sprintf("Cap: %s\n", report.Computed.CapDisplay))
	sb.WriteString(fmt.Sprintf("Projected: %s\n", report.Computed.CapProjectedDisplay))
	sb.WriteString(fmt.Sprintf("Positional: %s\n", report.Positional.CapDisplay))
	sb.WriteString(fmt.Sprintf("Top %d of %d players", report.TeamSize, len(report.Players)))
	if n := len(report.Excluded); n > 0 {
		sb.WriteString(fmt.Sprintf(", %d excluded", n))
	}
	sb.WriteString("\n\n")

	for _, p := range report.Players {
		marker := "▫️"
		switch {
		case p.Excluded:
			marker = "❌"
		case p.Relevant:
			marker = "✅"
		}
		sb.WriteString(fmt.Sprintf("%s %s %s - %s\n", marker, p.Position, p.Name, p.SalaryDisplay))
	}

	return sb.String(), nil
}

// ExcludePlayer parses "<team> | <player>" and toggles the exclusion.
func (s *CapService) ExcludePlayer(args string) (string, error) {
	teamQuery, playerQuery, ok := strings.Cut(args, "|")
	teamQuery, playerQuery = strings.TrimSpace(teamQuery), strings.TrimSpace(playerQuery)
	if !ok || teamQuery == "" || playerQuery == "" {
		return "", errExcludeUsage
	}

	res, err := s.ToggleExclusion(teamQuery, playerQuery)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if res.Excluded {
		sb.WriteString(fmt.Sprintf("🚫 *%s* excluded from *%s*\n", res.Player.Name, res.Team))
	} else {
		sb.WriteString(fmt.Sprintf("✅ *%s* counts for *%s* again\n", res.Player.Name, res.Team))
	}
	sb.WriteString(fmt.Sprintf("Cap: %s → %s (%s)\n", res.Before.CapDisplay, res.After.CapDisplay, res.DeltaDisplay))
	sb.WriteString(fmt.Sprintf("Projected: %s → %s\n", res.Before.CapProjectedDisplay, res.After.CapProjectedDisplay))
	sb.WriteString("League cap is unchanged until /cap refresh.")

	return sb.String(), nil
}

func (s *CapService) WhoHas(query string) (string, error) {
	p, err := s.PlayerLookup(query)
	if errors.Is(err, ErrNoMatch) {
		return fmt.Sprintf("🔍 No player found matching '%s'.", query), nil
	}
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("*%s* (%s - %s)\n", p.Name, p.Position, p.TeamNFL))
	sb.WriteString("━━━━━━━━━━━━━━━━\n")

	if p.TeamFantasy != "" {
		sb.WriteString(fmt.Sprintf("*%s*\n", p.TeamFantasy))
		switch {
		case p.Excluded:
			sb.WriteString("Excluded from cap\n")
		case p.Relevant:
			sb.WriteString("Counts toward cap\n")
		default:
			sb.WriteString("Outside cap window\n")
		}
	} else {
		sb.WriteString("Free Agent\n")
	}

	sb.WriteString(fmt.Sprintf("\nSalary: %s", p.SalaryDisplay))
	sb.WriteString(fmt.Sprintf("\nProjected: %s", p.SalaryProjectedDisplay))
	sb.WriteString(fmt.Sprintf("\n%.2f pts (%.2f per game)", p.FantasyPoints, p.FantasyPointsAvgGame))

	var ranks []string
	for _, r := range p.Rankings {
		if label, ok := whoHasRankings[r.Type]; ok {
			ranks = append(ranks, fmt.Sprintf("%s #%g", label, r.Value))
		}
	}
	if len(ranks) > 0 {
		sb.WriteString("\nRank: " + strings.Join(ranks, ", "))
	}

	if len(p.PointHistory) > 0 {
		sb.WriteString("\n\n*History:*")
		for _, season := range p.PointHistory {
			label := "n/a"
			if season.Season > 0 {
				label = fmt.Sprintf("%d", season.Season)
			}
			sb.WriteString(fmt.Sprintf("\n  %s: %.2f pts/game (%d/%d games)", label, season.AvgGame, season.GamesPlayed, season.PotentialGames))
		}
	}

	return sb.String(), nil
}

func (s *CapService) GetPlayers(sortKeys string) (string, error) {
	players, err := s.Players(sortKeys)
	if errors.Is(err, roster.ErrUnknownSortKey) {
		return fmt.Sprintf("Unknown sort key. Available: %s", strings.Join(roster.KeyNames(), ", ")), nil
	}
	if err != nil {
		return "", err
	}

	keys := strings.TrimSpace(sortKeys)
	if keys == "" {
		keys = roster.JoinKeys(s.keys)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📊 *Players* by %s\n\n", keys))
	for i, p := range players {
		if i == maxListedPlayers {
			sb.WriteString(fmt.Sprintf("...and %d more\n", len(players)-maxListedPlayers))
			break
		}
		team := p.TeamFantasy
		if team == "" {
			team = "FA"
		}
		sb.WriteString(fmt.Sprintf("%d. %s %s (%s, %s) - %s\n", i+1, p.Position, p.Name, p.TeamNFL, team, p.SalaryDisplay))
	}

	return sb.String(), nil
}

func (s *CapService) GetInjuries() (string, error) {
	report, err := s.Injuries()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("🚑 *Injury Report*\n\n")

	if len(report) == 0 {
		sb.WriteString("No injured players on any roster.")
		return sb.String(), nil
	}

	for _, team := range report {
		sb.WriteString(fmt.Sprintf("*%s:*\n", team.Team))
		for _, p := range team.Players {
			sb.WriteString(fmt.Sprintf("  • %s %s", p.Position, p.Name))
			if d := p.Injury; d != nil {
				if d.Designation != "" {
					sb.WriteString(" - " + d.Designation)
				}
				if d.Description != "" {
					sb.WriteString(fmt.Sprintf(" (%s)", d.Description))
				}
				if d.ReturnDate != "" {
					sb.WriteString(", back " + d.ReturnDate)
				}
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// GetCapReport is the scheduled summary: the league cap and each team's cap
// in standing order.
func (s *CapService) GetCapReport() (string, error) {
	leagueCap, err := s.GetLeagueCap()
	if err != nil {
		return "", err
	}
	standings, err := s.Standings()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(leagueCap)
	sb.WriteString("\n*Team Caps:*\n")
	for _, team := range standings {
		sb.WriteString(fmt.Sprintf("%d. %s - %s\n", team.Standing, team.Team, team.Salary.CapDisplay))
	}
	return sb.String(), nil
}

// ForceRefresh reloads the league regardless of the data timestamp.
func (s *CapService) ForceRefresh(ctx context.Context) (string, error) {
	if _, err := s.Refresh(ctx, true); err != nil {
		return "", err
	}

	status := s.Status()
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🔄 *%s* reloaded\n", status.League))
	if status.DataTimestamp != "" {
		sb.WriteString(fmt.Sprintf("Data from %s\n", status.DataTimestamp))
	}
	sb.WriteString("All exclusions were reset.")
	return sb.String(), nil
}
