package viewmodel

import (
	"context"
	"slices"

	"github.com/riskibarqy/matchvision/internal/domain/leaguestanding"
	"github.com/riskibarqy/matchvision/internal/platform/dispatch"
	"github.com/riskibarqy/matchvision/internal/platform/logging"
)

const DefaultStandingsSeason = 2024

type StandingsState struct {
	Status
	LeagueID int                           `json:"leagueId"`
	Season   int                           `json:"season"`
	Rows     []leaguestanding.TeamStanding `json:"rows"`
}

type Standings struct {
	*screen[StandingsState]
	repo leaguestanding.Repository
}

func NewStandings(ctx context.Context, queue *dispatch.Queue, repo leaguestanding.Repository, logger *logging.Logger) *Standings {
	return &Standings{
		screen: newScreen[StandingsState](ctx, "viewmodel.standings", queue, logger),
		repo:   repo,
	}
}

// Load fetches one league table. A non-positive season uses
// DefaultStandingsSeason.
func (v *Standings) Load(leagueID, season int) {
	if season <= 0 {
		season = DefaultStandingsSeason
	}
	t := v.begin(mainSlot, func(s *StandingsState) {
		s.start()
		s.LeagueID = leagueID
		s.Season = season
		s.Rows = nil
	})

	launch(v.screen, t, "fetch_standings",
		func(ctx context.Context) ([]leaguestanding.TeamStanding, error) {
			return v.repo.GetLeagueStats(ctx, leagueID, season)
		},
		func(s *StandingsState, rows []leaguestanding.TeamStanding, err error) {
			s.finish(err)
			if err != nil {
				return
			}
			rows = slices.Clone(rows)
			leaguestanding.SortByRank(rows)
			s.Rows = rows
		},
	)
}

func (v *Standings) Snapshot() StandingsState {
	var out StandingsState
	v.read(func(s StandingsState) {
		out = s
		out.Rows = slices.Clone(s.Rows)
	})
	return out
}
