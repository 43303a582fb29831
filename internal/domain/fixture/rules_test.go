package fixture

import (
	"testing"

	"github.com/riskibarqy/matchvision/internal/domain/league"
)

func TestAllowedLeagueIDs_HasElevenCompetitions(t *testing.T) {
	t.Parallel()

	if len(AllowedLeagueIDs) != 11 {
		t.Fatalf("expected 11 allowed leagues, got=%d", len(AllowedLeagueIDs))
	}
	for _, id := range []int{39, 140, 78, 135, 61, 2, 3, 848, 1, 4, 5} {
		if !IsAllowedLeague(id) {
			t.Fatalf("expected league %d to be allowed", id)
		}
	}
}

func TestFilterAllowed(t *testing.T) {
	t.Parallel()

	items := []Match{
		{ID: 1, League: league.League{ID: 39}},
		{ID: 2, League: league.League{ID: 999}},
	}

	got := FilterAllowed(items)
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("expected only the league 39 fixture, got %+v", got)
	}
}

func TestSortByKickoff_UnparseableLast(t *testing.T) {
	t.Parallel()

	items := []Match{
		{ID: 1, KickoffTime: "not-a-date"},
		{ID: 2, KickoffTime: "2024-03-02T15:00:00+00:00"},
		{ID: 3, KickoffTime: ""},
		{ID: 4, KickoffTime: "2024-03-01T20:00:00+00:00"},
	}

	SortByKickoff(items)

	want := []int{4, 2, 1, 3}
	for i, id := range want {
		if items[i].ID != id {
			t.Fatalf("position %d: expected id=%d, got=%d", i, id, items[i].ID)
		}
	}
}

func TestGroupByLeague_SortedKeys(t *testing.T) {
	t.Parallel()

	items := []Match{
		{ID: 1, League: league.League{ID: 140, Name: "La Liga"}},
		{ID: 2, League: league.League{ID: 39, Name: "Premier League"}},
		{ID: 3, League: league.League{ID: 78, Name: "Bundesliga"}},
		{ID: 4, League: league.League{ID: 140, Name: "La Liga"}},
	}

	groups := GroupByLeague(items)
	keys := LeagueKeys(groups)
	want := []string{"Bundesliga", "La Liga", "Premier League"}
	if len(keys) != len(want) {
		t.Fatalf("unexpected keys: %v", keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("key %d: expected %s, got %s", i, want[i], keys[i])
		}
	}
	if len(groups["La Liga"]) != 2 || groups["La Liga"][0].ID != 1 {
		t.Fatalf("unexpected La Liga group: %+v", groups["La Liga"])
	}

	ids := DistinctLeagueIDs(items)
	if len(ids) != 3 || ids[0] != 140 || ids[1] != 39 || ids[2] != 78 {
		t.Fatalf("unexpected distinct league ids: %v", ids)
	}
}

func TestStatusHelpers(t *testing.T) {
	t.Parallel()

	if !IsLiveStatus("ht") {
		t.Fatalf("expected HT to be live")
	}
	if !IsFinishedStatus("PEN") {
		t.Fatalf("expected PEN to be finished")
	}
	if !IsCancelledLikeStatus("pst") {
		t.Fatalf("expected PST to be cancelled-like")
	}
	if NormalizeStatus("") != StatusNotStarted {
		t.Fatalf("expected empty status to normalize to NS")
	}
}

func TestPhaseOf(t *testing.T) {
	t.Parallel()

	cases := map[string]Phase{
		StatusNotStarted: PhaseScheduled,
		StatusTBD:        PhaseScheduled,
		"":               PhaseScheduled,
		"1h":             PhaseLive,
		StatusHalfTime:   PhaseLive,
		"ET":             PhaseLive,
		StatusFinished:   PhaseFinished,
		"AET":            PhaseFinished,
		StatusPostponed:  PhaseCancelled,
		" canc ":         PhaseCancelled,
		"XYZ":            PhaseScheduled,
	}
	for status, want := range cases {
		if got := PhaseOf(status); got != want {
			t.Fatalf("PhaseOf(%q): expected %s, got %s", status, want, got)
		}
	}
}
