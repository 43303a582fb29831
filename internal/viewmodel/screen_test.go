package viewmodel

import (
	"testing"
	"time"

	"github.com/riskibarqy/matchvision/internal/domain/fixture"
	"github.com/riskibarqy/matchvision/internal/domain/league"
	"github.com/riskibarqy/matchvision/internal/domain/leaguestanding"
	"github.com/riskibarqy/matchvision/internal/platform/dispatch"
	"github.com/riskibarqy/matchvision/internal/platform/logging"
)

func newTestQueue(t *testing.T) *dispatch.Queue {
	t.Helper()
	q, err := dispatch.NewQueue(logging.NewNop())
	if err != nil {
		t.Fatalf("new queue: %v", err)
	}
	t.Cleanup(func() { _ = q.Release(time.Second) })
	return q
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func testMatch(id, leagueID int, leagueName, kickoff string) fixture.Match {
	return fixture.Match{
		ID:          id,
		KickoffTime: kickoff,
		StatusCode:  fixture.StatusNotStarted,
		League:      league.League{ID: leagueID, Name: leagueName},
	}
}

func standingRow(rank, teamID int) leaguestanding.TeamStanding {
	return leaguestanding.TeamStanding{Rank: rank, Team: fixture.TeamInfo{ID: teamID}}
}
