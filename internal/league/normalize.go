package league

import "github.com/omarshaarawi/capbot/internal/models"

// NormalizeInjuryDate rewrites a compact "20251004" date as "2025-10-04".
// Anything that is not exactly eight digits is returned unchanged.
func NormalizeInjuryDate(s string) string {
	if len(s) != 8 {
		return s
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return s
		}
	}
	return s[0:4] + "-" + s[4:6] + "-" + s[6:8]
}

func normalizeInjury(d *models.InjuryDetails) *models.InjuryDetails {
	if d == nil {
		return nil
	}
	out := *d
	out.Date = NormalizeInjuryDate(d.Date)
	out.ReturnDate = NormalizeInjuryDate(d.ReturnDate)
	return &out
}

// SeasonHistory copies the present history slots and tags each with its
// absolute season, seasonYear minus the slot offset. Absent slots stay nil.
// With known false the Season fields are left at zero.
func SeasonHistory(h *models.PointHistory, seasonYear int, known bool) models.PointHistory {
	if h == nil {
		return models.PointHistory{}
	}
	tag := func(s *models.PointHistorySeason, offset int) *models.PointHistorySeason {
		if s == nil {
			return nil
		}
		out := *s
		out.Season = 0
		if known {
			out.Season = seasonYear - offset
		}
		return &out
	}
	return models.PointHistory{
		SeasonMinus1: tag(h.SeasonMinus1, 1),
		SeasonMinus2: tag(h.SeasonMinus2, 2),
		SeasonMinus3: tag(h.SeasonMinus3, 3),
	}
}
