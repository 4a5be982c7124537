// Package roster orders player collections. League-wide listings and team
// rosters go through the same comparator so they agree on relative order.
package roster

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/omarshaarawi/capbot/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var ErrUnknownSortKey = errors.New("unknown sort key")

type SortKey string

const (
	KeyID              SortKey = "ID"
	KeyName            SortKey = "Name"
	KeyNameFirst       SortKey = "NameFirst"
	KeyNameLast        SortKey = "NameLast"
	KeyNameShort       SortKey = "NameShort"
	KeyPosition        SortKey = "Position"
	KeyNumber          SortKey = "Number"
	KeyCollege         SortKey = "College"
	KeyTeamNFL         SortKey = "TeamNFL"
	KeyTeamFantasy     SortKey = "TeamFantasy"
	KeySalary          SortKey = "SalaryDollars"
	KeySalaryProjected SortKey = "SalaryDollarsProjected"
	KeyAge             SortKey = "Age"
	KeyYear            SortKey = "Year"
)

// DefaultKeys sorts by last name.
var DefaultKeys = []SortKey{KeyNameLast}

var knownKeys = []SortKey{
	KeyID, KeyName, KeyNameFirst, KeyNameLast, KeyNameShort, KeyPosition,
	KeyNumber, KeyCollege, KeyTeamNFL, KeyTeamFantasy,
	KeySalary, KeySalaryProjected, KeyAge, KeyYear,
}

// Numeric reports whether key compares numerically, larger first.
func (k SortKey) Numeric() bool {
	switch k {
	case KeySalary, KeySalaryProjected, KeyAge, KeyYear:
		return true
	}
	return false
}

// ParseSortKeys parses a comma separated key list such as
// "SalaryDollars,NameLast". Matching is case-insensitive. An empty list
// yields DefaultKeys.
func ParseSortKeys(s string) ([]SortKey, error) {
	var keys []SortKey
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, ok := lookupKey(part)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSortKey, part)
		}
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return DefaultKeys, nil
	}
	return keys, nil
}

// KeyNames lists every accepted sort key.
func KeyNames() []string {
	names := make([]string, len(knownKeys))
	for i, k := range knownKeys {
		names[i] = string(k)
	}
	return names
}

// JoinKeys renders keys in the form ParseSortKeys accepts.
func JoinKeys(keys []SortKey) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = string(k)
	}
	return strings.Join(names, ",")
}

func lookupKey(name string) (SortKey, bool) {
	for _, k := range knownKeys {
		if strings.EqualFold(string(k), name) {
			return k, true
		}
	}
	return "", false
}

// Comparator is a total order over players for an ordered key list. It is
// not safe for concurrent use.
type Comparator struct {
	keys []SortKey
	coll *collate.Collator
}

func NewComparator(keys ...SortKey) *Comparator {
	return &Comparator{
		keys: keys,
		coll: collate.New(language.English, collate.Loose),
	}
}

// Compare returns a negative number when a sorts before b. Keys are tried in
// order; a full tie falls back to the player ID.
func (c *Comparator) Compare(a, b *models.Player) int {
	for _, key := range c.keys {
		var cmp int
		if key.Numeric() {
			cmp = CompareDesc(numericField(a, key), numericField(b, key))
		} else {
			cmp = c.coll.CompareString(textField(a, key), textField(b, key))
		}
		if cmp != 0 {
			return cmp
		}
	}
	return strings.Compare(a.ID, b.ID)
}

// Sort returns a sorted copy of players. The input slice is left untouched.
func Sort(players []*models.Player, keys ...SortKey) []*models.Player {
	sorted := make([]*models.Player, len(players))
	copy(sorted, players)

	c := NewComparator(keys...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return c.Compare(sorted[i], sorted[j]) < 0
	})
	return sorted
}

// CompareDesc orders larger values first. NaN sorts after every number so the
// order stays total when source amounts are missing.
func CompareDesc(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	case a > b:
		return -1
	case a < b:
		return 1
	}
	return 0
}

func numericField(p *models.Player, key SortKey) float64 {
	switch key {
	case KeySalary:
		return p.SalaryDollars
	case KeySalaryProjected:
		return p.SalaryDollarsProjected
	case KeyAge:
		return float64(p.Age)
	case KeyYear:
		return float64(p.Year)
	}
	return 0
}

func textField(p *models.Player, key SortKey) string {
	switch key {
	case KeyID:
		return p.ID
	case KeyName:
		return p.Name
	case KeyNameFirst:
		return p.NameFirst
	case KeyNameLast:
		return p.NameLast
	case KeyNameShort:
		return p.NameShort
	case KeyPosition:
		return p.Position
	case KeyNumber:
		return p.Number
	case KeyCollege:
		return p.College
	case KeyTeamNFL:
		if p.TeamNFL != nil {
			return p.TeamNFL.Abv
		}
	case KeyTeamFantasy:
		if p.TeamFantasy != nil {
			return p.TeamFantasy.Team
		}
	}
	return ""
}
