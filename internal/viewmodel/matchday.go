package viewmodel

import (
	"context"
	"slices"
	"time"

	"github.com/riskibarqy/matchvision/internal/domain/fixture"
	"github.com/riskibarqy/matchvision/internal/domain/leaguestanding"
	"github.com/riskibarqy/matchvision/internal/platform/dispatch"
	"github.com/riskibarqy/matchvision/internal/platform/logging"
)

// MatchDayStandingsSeason is the season used for the standings shown next to
// a day's fixtures.
const MatchDayStandingsSeason = 2023

type MatchDayState struct {
	Status
	Date      string                        `json:"date"`
	Matches   []fixture.Match               `json:"matches"`
	Live      int                           `json:"live"`
	Standings []leaguestanding.TeamStanding `json:"standings"`
}

// MatchDay lists the fixtures of one date together with the standings of
// every league playing that day.
type MatchDay struct {
	*screen[MatchDayState]
	fixtures  fixture.Repository
	standings leaguestanding.Repository
}

func NewMatchDay(ctx context.Context, queue *dispatch.Queue, fixtures fixture.Repository, standings leaguestanding.Repository, logger *logging.Logger) *MatchDay {
	return &MatchDay{
		screen:    newScreen[MatchDayState](ctx, "viewmodel.matchday", queue, logger),
		fixtures:  fixtures,
		standings: standings,
	}
}

// Load replaces the screen with the fixtures of date. Standings of each
// league found are fetched in parallel and merged as they arrive; a failed
// league is logged and skipped.
func (m *MatchDay) Load(date time.Time) {
	t := m.begin(mainSlot, func(s *MatchDayState) {
		s.start()
		s.Date = date.Format(time.DateOnly)
		s.Matches = nil
		s.Live = 0
		s.Standings = nil
	})

	launch(m.screen, t, "fetch_matches",
		func(ctx context.Context) ([]fixture.Match, error) {
			return m.fixtures.FetchMatches(ctx, date)
		},
		func(s *MatchDayState, matches []fixture.Match, err error) {
			s.finish(err)
			if err != nil {
				return
			}
			fixture.SortByKickoff(matches)
			s.Matches = matches
			s.Live = countLive(matches)
			for _, leagueID := range fixture.DistinctLeagueIDs(matches) {
				m.loadStandings(t, leagueID)
			}
		},
	)
}

func (m *MatchDay) loadStandings(t ticket, leagueID int) {
	launch(m.screen, t, "fetch_standings",
		func(ctx context.Context) ([]leaguestanding.TeamStanding, error) {
			return m.standings.GetLeagueStats(ctx, leagueID, MatchDayStandingsSeason)
		},
		func(s *MatchDayState, rows []leaguestanding.TeamStanding, err error) {
			if err != nil {
				return
			}
			s.Standings = leaguestanding.MergeByTeam(s.Standings, rows)
		},
	)
}

func (m *MatchDay) Snapshot() MatchDayState {
	var out MatchDayState
	m.read(func(s MatchDayState) {
		out = s
		out.Matches = slices.Clone(s.Matches)
		out.Standings = slices.Clone(s.Standings)
	})
	return out
}

// Grouped buckets the loaded fixtures by league name.
func (m *MatchDay) Grouped() map[string][]fixture.Match {
	return fixture.GroupByLeague(m.Snapshot().Matches)
}

// LeagueKeys returns the league names of Grouped in ascending order.
func (m *MatchDay) LeagueKeys() []string {
	return fixture.LeagueKeys(m.Grouped())
}

func (m *MatchDay) StandingFor(teamID int) (leaguestanding.TeamStanding, bool) {
	return leaguestanding.FindByTeam(m.Snapshot().Standings, teamID)
}

func countLive(matches []fixture.Match) int {
	n := 0
	for _, match := range matches {
		if fixture.PhaseOf(match.StatusCode) == fixture.PhaseLive {
			n++
		}
	}
	return n
}
