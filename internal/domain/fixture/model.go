package fixture

import (
	"strings"

	"github.com/riskibarqy/matchvision/internal/domain/league"
)

// Short status codes used by the provider.
const (
	StatusNotStarted = "NS"
	StatusTBD        = "TBD"
	StatusFirstHalf  = "1H"
	StatusHalfTime   = "HT"
	StatusSecondHalf = "2H"
	StatusFinished   = "FT"
	StatusPostponed  = "PST"
	StatusCancelled  = "CANC"
)

// TeamInfo is the basic identity of a club or national team.
type TeamInfo struct {
	ID   int     `json:"id"`
	Name string  `json:"name"`
	Logo *string `json:"logo,omitempty"`
}

// Match is one fixture. KickoffTime is kept as the provider's ISO-8601 text.
type Match struct {
	ID             int           `json:"id"`
	KickoffTime    string        `json:"kickoffTime"`
	StatusCode     string        `json:"statusCode"`
	ElapsedMinutes *int          `json:"elapsedMinutes,omitempty"`
	League         league.League `json:"league"`
	Home           TeamInfo      `json:"home"`
	Away           TeamInfo      `json:"away"`
	HomeGoals      *int          `json:"homeGoals,omitempty"`
	AwayGoals      *int          `json:"awayGoals,omitempty"`
	Phase          Phase         `json:"phase"`
}

// Phase groups the provider's many short status codes.
type Phase string

const (
	PhaseScheduled Phase = "scheduled"
	PhaseLive      Phase = "live"
	PhaseFinished  Phase = "finished"
	PhaseCancelled Phase = "cancelled"
)

// PhaseOf classifies a status code. Unknown codes count as scheduled.
func PhaseOf(status string) Phase {
	switch {
	case IsLiveStatus(status):
		return PhaseLive
	case IsFinishedStatus(status):
		return PhaseFinished
	case IsCancelledLikeStatus(status):
		return PhaseCancelled
	default:
		return PhaseScheduled
	}
}

// NormalizeStatus upper-cases a status code; an empty code means not started.
func NormalizeStatus(value string) string {
	status := strings.ToUpper(strings.TrimSpace(value))
	if status == "" {
		return StatusNotStarted
	}
	return status
}

func IsLiveStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusFirstHalf, StatusHalfTime, StatusSecondHalf, "ET", "BT", "P", "INT", "LIVE", "SUSP":
		return true
	default:
		return false
	}
}

func IsFinishedStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusFinished, "AET", "PEN":
		return true
	default:
		return false
	}
}

func IsCancelledLikeStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusPostponed, StatusCancelled, "ABD", "AWD", "WO":
		return true
	default:
		return false
	}
}
