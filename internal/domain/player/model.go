package player

import "strings"

const fallbackDisplayName = "Jugador"

// Performance is a display-ready summary of one statistics entry.
// Appearances is derived from minutes, see DeriveAppearances.
type Performance struct {
	Appearances *int     `json:"appearances,omitempty"`
	Minutes     *int     `json:"minutes,omitempty"`
	Goals       *int     `json:"goals,omitempty"`
	Assists     *int     `json:"assists,omitempty"`
	YellowCards *int     `json:"yellowCards,omitempty"`
	RedCards    *int     `json:"redCards,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
}

// Info is a player scoped to one team and season query.
type Info struct {
	ID             int          `json:"id"`
	Name           *string      `json:"name,omitempty"`
	FirstName      *string      `json:"firstName,omitempty"`
	LastName       *string      `json:"lastName,omitempty"`
	FirstNameLocal *string      `json:"firstNameLocal,omitempty"`
	LastNameLocal  *string      `json:"lastNameLocal,omitempty"`
	Age            *int         `json:"age,omitempty"`
	Nationality    *string      `json:"nationality,omitempty"`
	Height         *string      `json:"height,omitempty"`
	Weight         *string      `json:"weight,omitempty"`
	Photo          *string      `json:"photo,omitempty"`
	Position       *string      `json:"position,omitempty"`
	Performance    *Performance `json:"performance,omitempty"`
}

// DisplayName prefers the full name, then "first last", then a placeholder.
func (p Info) DisplayName() string {
	if p.Name != nil {
		return *p.Name
	}

	parts := make([]string, 0, 2)
	if p.FirstName != nil {
		parts = append(parts, *p.FirstName)
	}
	if p.LastName != nil {
		parts = append(parts, *p.LastName)
	}
	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}
	return fallbackDisplayName
}

// Statistics is one team/competition split of a player's season numbers.
type Statistics struct {
	TeamID      *int
	TeamName    *string
	LeagueID    *int
	Position    *string
	Appearances *int
	Minutes     *int
	Rating      *string
	Goals       *int
	Assists     *int
	YellowCards *int
	RedCards    *int
}

// Record pairs a player with the statistics splits returned next to it.
// Player is nil when the provider omitted the player object.
type Record struct {
	Player     *Info
	Statistics []Statistics
}
