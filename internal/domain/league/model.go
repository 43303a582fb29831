package league

// League is a competition as returned by the sports-data provider.
type League struct {
	ID   int     `json:"id"`
	Name string  `json:"name"`
	Logo *string `json:"logo,omitempty"`
}

// TopLeagueNames are the domestic leagues promoted on the home screen.
var TopLeagueNames = []string{
	"Premier League",
	"La Liga",
	"Bundesliga",
	"Serie A",
	"Ligue 1",
}

const TopLeagueLimit = 6

// FilterTop keeps leagues whose name is one of TopLeagueNames, in input
// order, capped at TopLeagueLimit entries.
func FilterTop(items []League) []League {
	allowed := make(map[string]struct{}, len(TopLeagueNames))
	for _, name := range TopLeagueNames {
		allowed[name] = struct{}{}
	}

	out := make([]League, 0, TopLeagueLimit)
	for _, item := range items {
		if _, ok := allowed[item.Name]; !ok {
			continue
		}
		out = append(out, item)
		if len(out) == TopLeagueLimit {
			break
		}
	}
	return out
}
