package leaguestanding

import "sort"

// Flatten concatenates standings groups and sorts the result by rank.
// Rows with equal rank keep their input order.
func Flatten(groups [][]TeamStanding) []TeamStanding {
	total := 0
	for _, group := range groups {
		total += len(group)
	}

	out := make([]TeamStanding, 0, total)
	for _, group := range groups {
		out = append(out, group...)
	}
	SortByRank(out)
	return out
}

func SortByRank(items []TeamStanding) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Rank < items[j].Rank
	})
}

// MergeByTeam appends incoming rows whose team is not yet in current, then
// re-sorts by rank. Existing rows are never overwritten, so applying the same
// batches in any order or more than once yields the same table.
func MergeByTeam(current, incoming []TeamStanding) []TeamStanding {
	seen := make(map[int]struct{}, len(current)+len(incoming))
	out := make([]TeamStanding, 0, len(current)+len(incoming))
	for _, item := range current {
		seen[item.Team.ID] = struct{}{}
		out = append(out, item)
	}
	for _, item := range incoming {
		if _, ok := seen[item.Team.ID]; ok {
			continue
		}
		seen[item.Team.ID] = struct{}{}
		out = append(out, item)
	}
	SortByRank(out)
	return out
}

// FindByTeam returns the row for teamID, if present.
func FindByTeam(items []TeamStanding, teamID int) (TeamStanding, bool) {
	for _, item := range items {
		if item.Team.ID == teamID {
			return item, true
		}
	}
	return TeamStanding{}, false
}
