package viewmodel

import (
	"context"
	"slices"

	"github.com/riskibarqy/matchvision/internal/domain/fixture"
	"github.com/riskibarqy/matchvision/internal/platform/dispatch"
	"github.com/riskibarqy/matchvision/internal/platform/logging"
)

type UpcomingState struct {
	Status
	TeamID  int             `json:"teamId"`
	Matches []fixture.Match `json:"matches"`
}

// Upcoming lists the not-yet-started fixtures of one team.
type Upcoming struct {
	*screen[UpcomingState]
	repo   fixture.Repository
	teamID int
}

func NewUpcoming(ctx context.Context, queue *dispatch.Queue, repo fixture.Repository, teamID int, logger *logging.Logger) *Upcoming {
	return &Upcoming{
		screen: newScreen[UpcomingState](ctx, "viewmodel.upcoming", queue, logger),
		repo:   repo,
		teamID: teamID,
	}
}

func (v *Upcoming) Load() {
	t := v.begin(mainSlot, func(s *UpcomingState) {
		s.start()
		s.TeamID = v.teamID
		s.Matches = nil
	})

	launch(v.screen, t, "fetch_upcoming",
		func(ctx context.Context) ([]fixture.Match, error) {
			return v.repo.FetchUpcomingMatches(ctx, v.teamID)
		},
		func(s *UpcomingState, matches []fixture.Match, err error) {
			s.finish(err)
			if err != nil {
				return
			}
			fixture.SortByKickoff(matches)
			s.Matches = matches
		},
	)
}

func (v *Upcoming) Snapshot() UpcomingState {
	var out UpcomingState
	v.read(func(s UpcomingState) {
		out = s
		out.Matches = slices.Clone(s.Matches)
	})
	return out
}
