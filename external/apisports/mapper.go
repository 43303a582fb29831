package apisports

import (
	"github.com/riskibarqy/matchvision/internal/domain/fixture"
	"github.com/riskibarqy/matchvision/internal/domain/league"
	"github.com/riskibarqy/matchvision/internal/domain/leaguestanding"
	"github.com/riskibarqy/matchvision/internal/domain/player"
)

func mapLeague(ref leagueRef) league.League {
	return league.League{ID: ref.ID, Name: ref.Name, Logo: ref.Logo}
}

func mapTeam(ref teamRef) fixture.TeamInfo {
	return fixture.TeamInfo{ID: ref.ID, Name: ref.Name, Logo: ref.Logo}
}

func mapMatch(item fixtureItem) fixture.Match {
	return fixture.Match{
		ID:             item.Fixture.ID,
		KickoffTime:    item.Fixture.Date,
		StatusCode:     fixture.NormalizeStatus(item.Fixture.Status.Short),
		ElapsedMinutes: item.Fixture.Status.Elapsed,
		League:         mapLeague(item.League),
		Home:           mapTeam(item.Teams.Home),
		Away:           mapTeam(item.Teams.Away),
		HomeGoals:      item.Goals.Home,
		AwayGoals:      item.Goals.Away,
		Phase:          fixture.PhaseOf(item.Fixture.Status.Short),
	}
}

func mapMatches(items []fixtureItem) []fixture.Match {
	out := make([]fixture.Match, 0, len(items))
	for _, item := range items {
		out = append(out, mapMatch(item))
	}
	return out
}

func mapSplit(split *recordSplit) *leaguestanding.MatchStats {
	if split == nil {
		return nil
	}
	out := &leaguestanding.MatchStats{
		Played: split.Played,
		Win:    split.Win,
		Draw:   split.Draw,
		Lose:   split.Lose,
	}
	if split.Goals != nil {
		out.GoalsFor = split.Goals.For
		out.GoalsAgainst = split.Goals.Against
	}
	return out
}

func mapStanding(row standingRow) leaguestanding.TeamStanding {
	return leaguestanding.TeamStanding{
		Rank:        row.Rank,
		Team:        mapTeam(row.Team),
		Points:      row.Points,
		GoalDiff:    row.GoalsDiff,
		Group:       row.Group,
		Status:      row.Status,
		Form:        row.Form,
		Description: row.Description,
		UpdatedAt:   row.Update,
		Overall:     mapSplit(row.All),
		Home:        mapSplit(row.Home),
		Away:        mapSplit(row.Away),
	}
}

func mapStandingGroups(groups [][]standingRow) [][]leaguestanding.TeamStanding {
	out := make([][]leaguestanding.TeamStanding, 0, len(groups))
	for _, group := range groups {
		rows := make([]leaguestanding.TeamStanding, 0, len(group))
		for _, row := range group {
			rows = append(rows, mapStanding(row))
		}
		out = append(out, rows)
	}
	return out
}

func mapPlayerBio(bio *playerBio) *player.Info {
	if bio == nil {
		return nil
	}
	return &player.Info{
		ID:             bio.ID,
		Name:           bio.Name,
		FirstName:      bio.Firstname,
		LastName:       bio.Lastname,
		FirstNameLocal: bio.FirstnameLocal,
		LastNameLocal:  bio.LastnameLocal,
		Age:            bio.Age,
		Nationality:    bio.Nationality,
		Height:         bio.Height,
		Weight:         bio.Weight,
		Photo:          bio.Photo,
		Position:       bio.Position,
	}
}

func mapPlayerSplit(split playerSplits) player.Statistics {
	var out player.Statistics
	if split.Team != nil {
		out.TeamID = split.Team.ID
		out.TeamName = split.Team.Name
	}
	if split.League != nil {
		out.LeagueID = split.League.ID
	}
	if split.Games != nil {
		out.Position = split.Games.Position
		out.Appearances = split.Games.Appearences
		if out.Appearances == nil {
			out.Appearances = split.Games.Appearances
		}
		out.Minutes = split.Games.Minutes
		out.Rating = split.Games.Rating
	}
	if split.Goals != nil {
		out.Goals = split.Goals.Total
		out.Assists = split.Goals.Assists
	}
	if split.Cards != nil {
		out.YellowCards = split.Cards.Yellow
		out.RedCards = split.Cards.Red
	}
	return out
}

func mapPlayerRecord(item playerItem) player.Record {
	stats := make([]player.Statistics, 0, len(item.Statistics))
	for _, split := range item.Statistics {
		stats = append(stats, mapPlayerSplit(split))
	}
	return player.Record{Player: mapPlayerBio(item.Player), Statistics: stats}
}
