package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/riskibarqy/matchvision/internal/domain/league"
	"github.com/riskibarqy/matchvision/internal/viewmodel"
)

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	q := matchesQuery{Date: strings.TrimSpace(r.URL.Query().Get("date"))}
	if err := h.validate(q); err != nil {
		writeError(w, err)
		return
	}
	date := h.now().UTC().Truncate(24 * time.Hour)
	if q.Date != "" {
		date, _ = time.Parse(time.DateOnly, q.Date)
	}

	vm := viewmodel.NewMatchDay(ctx, h.queue, h.fixtures, h.standings, h.logger)
	defer vm.Close()
	vm.Load(date)

	state := settle[viewmodel.MatchDayState](vm)
	if err := state.Cause(); err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "date", state.Date, "error", err)
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, state)
}

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	q := leaguesQuery{Top: strings.TrimSpace(r.URL.Query().Get("top"))}
	if err := h.validate(q); err != nil {
		writeError(w, err)
		return
	}

	items, err := h.leagues.FetchLeagues(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list leagues failed", "error", err)
		writeError(w, err)
		return
	}
	if q.Top == "true" {
		items = league.FilterTop(items)
	}
	writeSuccess(w, http.StatusOK, items)
}

func (h *Handler) GetLeagueStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueStandings")
	defer span.End()

	leagueID, err := pathID(r, "leagueID")
	if err != nil {
		writeError(w, err)
		return
	}
	season, err := queryInt(r, "season")
	if err == nil {
		err = h.validate(seasonQuery{Season: season})
	}
	if err != nil {
		writeError(w, err)
		return
	}

	vm := viewmodel.NewStandings(ctx, h.queue, h.standings, h.logger)
	defer vm.Close()
	vm.Load(leagueID, season)

	state := settle[viewmodel.StandingsState](vm)
	if err := state.Cause(); err != nil {
		h.logger.WarnContext(ctx, "get standings failed", "league_id", leagueID, "season", state.Season, "error", err)
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, state)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(w, err)
		return
	}

	team, err := h.fixtures.FetchTeam(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "team_id", teamID, "error", err)
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, team)
}

func (h *Handler) ListTeamPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamPlayers")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(w, err)
		return
	}
	season, err := queryInt(r, "season")
	if err != nil {
		writeError(w, err)
		return
	}
	q := playersQuery{Season: season, Query: strings.TrimSpace(r.URL.Query().Get("q"))}
	if err := h.validate(q); err != nil {
		writeError(w, err)
		return
	}

	vm := viewmodel.NewRoster(ctx, h.queue, h.players, teamID, q.Season, h.logger)
	defer vm.Close()
	vm.Load()

	state := settle[viewmodel.RosterState](vm)
	if err := state.Cause(); err != nil {
		h.logger.WarnContext(ctx, "list team players failed", "team_id", teamID, "season", state.Season, "error", err)
		writeError(w, err)
		return
	}
	if q.Query != "" {
		state.Players = vm.Search(q.Query)
	}
	writeSuccess(w, http.StatusOK, state)
}

func (h *Handler) ListTeamUpcoming(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamUpcoming")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(w, err)
		return
	}

	vm := viewmodel.NewUpcoming(ctx, h.queue, h.fixtures, teamID, h.logger)
	defer vm.Close()
	vm.Load()

	state := settle[viewmodel.UpcomingState](vm)
	if err := state.Cause(); err != nil {
		h.logger.WarnContext(ctx, "list upcoming matches failed", "team_id", teamID, "error", err)
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, state)
}

// GetHome always answers 200; each section carries its own status. The
// article list never repeats the featured article.
func (h *Handler) GetHome(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetHome")
	defer span.End()

	vm := viewmodel.NewHome(ctx, h.queue, h.leagues, h.news, h.logger)
	defer vm.Close()
	vm.Load()

	state := settle[viewmodel.HomeState](vm)
	state.Articles = vm.ArticlesForList()
	writeSuccess(w, http.StatusOK, state)
}

func (h *Handler) ListNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListNews")
	defer span.End()

	q := newsQuery{
		Language: strings.ToLower(strings.TrimSpace(r.URL.Query().Get("language"))),
		Country:  strings.ToLower(strings.TrimSpace(r.URL.Query().Get("country"))),
	}
	if err := h.validate(q); err != nil {
		writeError(w, err)
		return
	}

	vm := viewmodel.NewNews(ctx, h.queue, h.news, h.logger)
	defer vm.Close()
	vm.Load(q.Language, optionalString(q.Country))

	state := settle[viewmodel.NewsState](vm)
	if err := state.Cause(); err != nil {
		h.logger.WarnContext(ctx, "list news failed", "language", state.Language, "error", err)
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, state)
}
