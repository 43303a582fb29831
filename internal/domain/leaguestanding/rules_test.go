package leaguestanding

import (
	"testing"

	"github.com/riskibarqy/matchvision/internal/domain/fixture"
)

func row(rank, teamID int) TeamStanding {
	return TeamStanding{Rank: rank, Team: fixture.TeamInfo{ID: teamID}}
}

func TestFlatten_PreservesCountAndOrdersByRank(t *testing.T) {
	t.Parallel()

	groups := [][]TeamStanding{
		{row(2, 10), row(1, 11), row(3, 12)},
		{row(1, 20), row(2, 21)},
		{},
		{row(2, 30)},
	}

	got := Flatten(groups)
	if len(got) != 6 {
		t.Fatalf("expected 6 rows, got=%d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Rank < got[i-1].Rank {
			t.Fatalf("rank decreased at %d: %d < %d", i, got[i].Rank, got[i-1].Rank)
		}
	}

	// ties keep their input order
	wantTeams := []int{11, 20, 10, 21, 30, 12}
	for i, id := range wantTeams {
		if got[i].Team.ID != id {
			t.Fatalf("position %d: expected team=%d, got=%d", i, id, got[i].Team.ID)
		}
	}
}

func TestFlatten_Empty(t *testing.T) {
	t.Parallel()

	if got := Flatten(nil); len(got) != 0 {
		t.Fatalf("expected empty result, got=%d", len(got))
	}
}

func TestMergeByTeam_DedupsAndIsOrderIndependent(t *testing.T) {
	t.Parallel()

	premier := []TeamStanding{row(1, 42), row(2, 33)}
	laliga := []TeamStanding{row(1, 529), row(2, 541)}
	overlap := []TeamStanding{{Rank: 9, Team: fixture.TeamInfo{ID: 42, Name: "late"}}}

	forward := MergeByTeam(MergeByTeam(MergeByTeam(nil, premier), laliga), overlap)
	backward := MergeByTeam(MergeByTeam(MergeByTeam(nil, laliga), premier), premier)

	if len(forward) != 4 || len(backward) != 4 {
		t.Fatalf("expected 4 unique teams, got forward=%d backward=%d", len(forward), len(backward))
	}

	got, ok := FindByTeam(forward, 42)
	if !ok || got.Rank != 1 || got.Team.Name == "late" {
		t.Fatalf("expected first arrival to be kept for team 42, got %+v", got)
	}

	for _, items := range [][]TeamStanding{forward, backward} {
		for i := 1; i < len(items); i++ {
			if items[i].Rank < items[i-1].Rank {
				t.Fatalf("merged standings not sorted: %+v", items)
			}
		}
	}
}

func TestFindByTeam_Missing(t *testing.T) {
	t.Parallel()

	if _, ok := FindByTeam([]TeamStanding{row(1, 1)}, 2); ok {
		t.Fatalf("expected team 2 to be missing")
	}
}
