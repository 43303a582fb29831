package viewmodel

import (
	"context"
	"slices"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/riskibarqy/matchvision/internal/domain/player"
	"github.com/riskibarqy/matchvision/internal/platform/dispatch"
	"github.com/riskibarqy/matchvision/internal/platform/logging"
)

const DefaultRosterSeason = 2023

type RosterState struct {
	Status
	TeamID  int           `json:"teamId"`
	Season  int           `json:"season"`
	Players []player.Info `json:"players"`
}

type Roster struct {
	*screen[RosterState]
	players player.Repository
	teamID  int
	season  int
}

// NewRoster builds the squad screen of teamID. A non-positive season uses
// DefaultRosterSeason.
func NewRoster(ctx context.Context, queue *dispatch.Queue, players player.Repository, teamID, season int, logger *logging.Logger) *Roster {
	if season <= 0 {
		season = DefaultRosterSeason
	}
	return &Roster{
		screen:  newScreen[RosterState](ctx, "viewmodel.roster", queue, logger),
		players: players,
		teamID:  teamID,
		season:  season,
	}
}

func (r *Roster) Load() {
	t := r.begin(mainSlot, func(s *RosterState) {
		s.start()
		s.TeamID = r.teamID
		s.Season = r.season
		s.Players = nil
	})

	launch(r.screen, t, "fetch_players",
		func(ctx context.Context) ([]player.Info, error) {
			records, err := r.players.FetchPlayersFull(ctx, r.teamID, r.season)
			if err != nil {
				return nil, err
			}
			return buildRoster(records), nil
		},
		func(s *RosterState, players []player.Info, err error) {
			s.finish(err)
			if err == nil {
				s.Players = players
			}
		},
	)
}

// Reload is the retry action; it is a full Load.
func (r *Roster) Reload() {
	r.Load()
}

func buildRoster(records []player.Record) []player.Info {
	out := make([]player.Info, 0, len(records))
	for _, rec := range records {
		info, ok := player.FromRecord(rec)
		if !ok {
			continue
		}
		out = append(out, player.Normalize(info))
	}
	player.SortRoster(out)
	return out
}

func (r *Roster) Snapshot() RosterState {
	var out RosterState
	r.read(func(s RosterState) {
		out = s
		out.Players = slices.Clone(s.Players)
	})
	return out
}

// Search keeps the players whose display name fuzzily contains query, in
// roster order. A blank query returns the whole roster.
func (r *Roster) Search(query string) []player.Info {
	players := r.Snapshot().Players
	query = strings.TrimSpace(query)
	if query == "" {
		return players
	}

	out := make([]player.Info, 0, len(players))
	for _, p := range players {
		if fuzzy.MatchNormalizedFold(query, p.DisplayName()) {
			out = append(out, p)
		}
	}
	return out
}
