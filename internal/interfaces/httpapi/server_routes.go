package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerFootballRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/home", handler.GetHome)
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/standings", handler.GetLeagueStandings)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/teams/{teamID}/players", handler.ListTeamPlayers)
	mux.HandleFunc("GET /v1/teams/{teamID}/upcoming", handler.ListTeamUpcoming)
	mux.HandleFunc("GET /v1/news", handler.ListNews)
}

func registerSessionRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/session", handler.GetSession)
	mux.HandleFunc("POST /v1/session/sign-in", handler.SignIn)
	mux.HandleFunc("POST /v1/session/sign-up", handler.SignUp)
	mux.HandleFunc("POST /v1/session/sign-out", handler.SignOut)
	mux.HandleFunc("GET /v1/profile", handler.GetProfile)
	mux.HandleFunc("PUT /v1/profile/favorite-team", handler.SetFavoriteTeam)
}
