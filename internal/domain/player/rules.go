package player

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Canonical position categories shown to users.
const (
	PositionGoalkeeper = "Portero"
	PositionDefender   = "Defensa"
	PositionMidfielder = "Centrocampista"
	PositionForward    = "Delantero"
)

type positionRule struct {
	tokens   []string
	category string
}

// Rules are checked in order; the first token hit wins.
var positionRules = []positionRule{
	{tokens: []string{"goal", "keeper"}, category: PositionGoalkeeper},
	{tokens: []string{"def", "back"}, category: PositionDefender},
	{tokens: []string{"mid"}, category: PositionMidfielder},
	{tokens: []string{"att", "forward", "striker"}, category: PositionForward},
}

// TranslatePosition maps a free-text position to a canonical category using
// case-insensitive substring matching. Unmatched text is returned title-cased.
func TranslatePosition(position string) string {
	lower := strings.ToLower(position)
	for _, rule := range positionRules {
		for _, token := range rule.tokens {
			if strings.Contains(lower, token) {
				return rule.category
			}
		}
	}
	return cases.Title(language.Und).String(lower)
}

// PositionRank orders categories goalkeeper, defender, midfielder, forward,
// then anything else.
func PositionRank(position *string) int {
	if position == nil {
		return 4
	}
	switch strings.ToLower(*position) {
	case strings.ToLower(PositionGoalkeeper):
		return 0
	case strings.ToLower(PositionDefender):
		return 1
	case strings.ToLower(PositionMidfielder):
		return 2
	case strings.ToLower(PositionForward):
		return 3
	default:
		return 4
	}
}

// DeriveAppearances recomputes appearances as max(1, minutes/90) when minutes
// is known and positive. Otherwise the input is returned untouched.
func DeriveAppearances(perf *Performance) *Performance {
	if perf == nil || perf.Minutes == nil || *perf.Minutes <= 0 {
		return perf
	}

	matches := max(1, *perf.Minutes/90)
	out := *perf
	out.Appearances = &matches
	return &out
}

// PerformanceFrom summarises a statistics split. A rating that is not a
// number is dropped.
func PerformanceFrom(stats *Statistics) *Performance {
	perf := &Performance{}
	if stats == nil {
		return perf
	}

	perf.Appearances = stats.Appearances
	perf.Minutes = stats.Minutes
	perf.Goals = stats.Goals
	perf.Assists = stats.Assists
	perf.YellowCards = stats.YellowCards
	perf.RedCards = stats.RedCards
	if stats.Rating != nil {
		if rating, err := strconv.ParseFloat(strings.TrimSpace(*stats.Rating), 64); err == nil {
			perf.Rating = &rating
		}
	}
	return perf
}

// FromRecord builds a player from its first statistics split only; later
// splits (e.g. after a mid-season transfer) are ignored. The statistics
// position is preferred over the biographical one. ok is false when the
// record carries no player.
func FromRecord(rec Record) (Info, bool) {
	if rec.Player == nil {
		return Info{}, false
	}

	var first *Statistics
	if len(rec.Statistics) > 0 {
		first = &rec.Statistics[0]
	}

	out := *rec.Player
	if first != nil && first.Position != nil {
		position := *first.Position
		out.Position = &position
	}
	out.Performance = PerformanceFrom(first)
	return out, true
}

// Normalize translates the position and derives appearances.
func Normalize(p Info) Info {
	if p.Position != nil {
		translated := TranslatePosition(*p.Position)
		p.Position = &translated
	}
	p.Performance = DeriveAppearances(p.Performance)
	return p
}

// SortRoster orders players by position category, then by case-insensitive
// display name.
func SortRoster(items []Info) {
	sort.SliceStable(items, func(i, j int) bool {
		left, right := PositionRank(items[i].Position), PositionRank(items[j].Position)
		if left != right {
			return left < right
		}
		return strings.ToLower(items[i].DisplayName()) < strings.ToLower(items[j].DisplayName())
	})
}
