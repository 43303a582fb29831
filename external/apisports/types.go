package apisports

// Wire shapes of the api-sports v3 football API. Only decoded fields are listed.

type envelope[T any] struct {
	Get      string  `json:"get"`
	Results  int     `json:"results"`
	Paging   *paging `json:"paging"`
	Response []T     `json:"response"`
}

type paging struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

type teamRef struct {
	ID   int     `json:"id"`
	Name string  `json:"name"`
	Logo *string `json:"logo"`
}

type leagueRef struct {
	ID   int     `json:"id"`
	Name string  `json:"name"`
	Logo *string `json:"logo"`
}

type leagueItem struct {
	League leagueRef `json:"league"`
}

type fixtureItem struct {
	Fixture struct {
		ID     int    `json:"id"`
		Date   string `json:"date"`
		Status struct {
			Short   string `json:"short"`
			Elapsed *int   `json:"elapsed"`
		} `json:"status"`
	} `json:"fixture"`
	League leagueRef `json:"league"`
	Teams  struct {
		Home teamRef `json:"home"`
		Away teamRef `json:"away"`
	} `json:"teams"`
	Goals struct {
		Home *int `json:"home"`
		Away *int `json:"away"`
	} `json:"goals"`
}

type standingsItem struct {
	League struct {
		ID        int             `json:"id"`
		Name      string          `json:"name"`
		Season    *int            `json:"season"`
		Standings [][]standingRow `json:"standings"`
	} `json:"league"`
}

type standingRow struct {
	Rank        int          `json:"rank"`
	Team        teamRef      `json:"team"`
	Points      int          `json:"points"`
	GoalsDiff   *int         `json:"goalsDiff"`
	Group       *string      `json:"group"`
	Form        *string      `json:"form"`
	Status      *string      `json:"status"`
	Description *string      `json:"description"`
	All         *recordSplit `json:"all"`
	Home        *recordSplit `json:"home"`
	Away        *recordSplit `json:"away"`
	Update      *string      `json:"update"`
}

type recordSplit struct {
	Played *int `json:"played"`
	Win    *int `json:"win"`
	Draw   *int `json:"draw"`
	Lose   *int `json:"lose"`
	Goals  *struct {
		For     *int `json:"for"`
		Against *int `json:"against"`
	} `json:"goals"`
}

type playerItem struct {
	Player     *playerBio     `json:"player"`
	Statistics []playerSplits `json:"statistics"`
}

type playerBio struct {
	ID             int     `json:"id"`
	Name           *string `json:"name"`
	Firstname      *string `json:"firstname"`
	Lastname       *string `json:"lastname"`
	FirstnameLocal *string `json:"firstnameLocal"`
	LastnameLocal  *string `json:"lastnameLocal"`
	Age            *int    `json:"age"`
	Nationality    *string `json:"nationality"`
	Height         *string `json:"height"`
	Weight         *string `json:"weight"`
	Photo          *string `json:"photo"`
	Position       *string `json:"position"`
}

type playerSplits struct {
	Team *struct {
		ID   *int    `json:"id"`
		Name *string `json:"name"`
	} `json:"team"`
	League *struct {
		ID *int `json:"id"`
	} `json:"league"`
	Games *struct {
		Position *string `json:"position"`
		// The provider spells it "appearences"; both spellings are accepted.
		Appearences *int    `json:"appearences"`
		Appearances *int    `json:"appearances"`
		Minutes     *int    `json:"minutes"`
		Rating      *string `json:"rating"`
	} `json:"games"`
	Goals *struct {
		Total   *int `json:"total"`
		Assists *int `json:"assists"`
	} `json:"goals"`
	Cards *struct {
		Yellow *int `json:"yellow"`
		Red    *int `json:"red"`
	} `json:"cards"`
}

type teamItem struct {
	Team teamRef `json:"team"`
}
