package fixture

import (
	"sort"
	"time"
)

// AllowedLeagueIDs restricts date fixtures to the big five domestic leagues,
// the three continental club competitions and the national-team competitions.
var AllowedLeagueIDs = map[int]struct{}{
	39:  {}, // Premier League
	140: {}, // La Liga
	78:  {}, // Bundesliga
	135: {}, // Serie A
	61:  {}, // Ligue 1
	2:   {}, // UEFA Champions League
	3:   {}, // UEFA Europa League
	848: {}, // UEFA Europa Conference League
	1:   {}, // World Cup
	4:   {}, // Euro Championship
	5:   {}, // UEFA Nations League
}

func IsAllowedLeague(leagueID int) bool {
	_, ok := AllowedLeagueIDs[leagueID]
	return ok
}

// FilterAllowed keeps matches from allow-listed leagues, preserving order.
func FilterAllowed(items []Match) []Match {
	out := make([]Match, 0, len(items))
	for _, item := range items {
		if IsAllowedLeague(item.League.ID) {
			out = append(out, item)
		}
	}
	return out
}

func ParseKickoff(value string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// SortByKickoff orders matches by kickoff ascending. Unparseable kickoffs sort
// last and keep their relative order.
func SortByKickoff(items []Match) {
	sort.SliceStable(items, func(i, j int) bool {
		left, leftOK := ParseKickoff(items[i].KickoffTime)
		right, rightOK := ParseKickoff(items[j].KickoffTime)
		switch {
		case leftOK && rightOK:
			return left.Before(right)
		case leftOK:
			return true
		default:
			return false
		}
	})
}

// GroupByLeague buckets matches by league name, keeping input order per bucket.
func GroupByLeague(items []Match) map[string][]Match {
	out := make(map[string][]Match)
	for _, item := range items {
		out[item.League.Name] = append(out[item.League.Name], item)
	}
	return out
}

// LeagueKeys returns the group names in ascending lexical order.
func LeagueKeys(groups map[string][]Match) []string {
	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// DistinctLeagueIDs returns each league id once, in first-seen order.
func DistinctLeagueIDs(items []Match) []int {
	seen := make(map[int]struct{}, len(items))
	out := make([]int, 0)
	for _, item := range items {
		if _, ok := seen[item.League.ID]; ok {
			continue
		}
		seen[item.League.ID] = struct{}{}
		out = append(out, item.League.ID)
	}
	return out
}
