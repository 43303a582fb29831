package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/matchvision/internal/domain/user"
	"github.com/riskibarqy/matchvision/internal/usecase"
	"github.com/riskibarqy/matchvision/internal/viewmodel"
)

func decodeBody(r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	_, span := startSpan(r.Context(), "httpapi.Handler.GetSession")
	defer span.End()

	h.sessionMu.Lock()
	defer h.sessionMu.Unlock()
	writeSuccess(w, http.StatusOK, h.session.Snapshot())
}

func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	_, span := startSpan(r.Context(), "httpapi.Handler.SignIn")
	defer span.End()

	var req signInRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validate(req); err != nil {
		writeError(w, err)
		return
	}

	h.runSessionAction(w, r, "sign in", func(s *viewmodel.Session) error {
		return s.SignIn(req.Email, req.Password)
	})
}

func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	_, span := startSpan(r.Context(), "httpapi.Handler.SignUp")
	defer span.End()

	var req signUpRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validate(req); err != nil {
		writeError(w, err)
		return
	}

	h.runSessionAction(w, r, "sign up", func(s *viewmodel.Session) error {
		return s.SignUp(user.Registration{
			Name:            req.Name,
			Email:           req.Email,
			ConfirmEmail:    req.ConfirmEmail,
			Password:        req.Password,
			ConfirmPassword: req.ConfirmPassword,
		})
	})
}

func (h *Handler) SignOut(w http.ResponseWriter, r *http.Request) {
	_, span := startSpan(r.Context(), "httpapi.Handler.SignOut")
	defer span.End()

	h.runSessionAction(w, r, "sign out", func(s *viewmodel.Session) error {
		s.SignOut()
		return nil
	})
}

// runSessionAction starts action on the shared session, waits for it and
// renders the resulting state.
func (h *Handler) runSessionAction(w http.ResponseWriter, r *http.Request, name string, action func(*viewmodel.Session) error) {
	h.sessionMu.Lock()
	defer h.sessionMu.Unlock()

	if err := action(h.session); err != nil {
		writeError(w, err)
		return
	}

	state := settle[viewmodel.SessionState](h.session)
	if err := state.Cause(); err != nil {
		h.logger.WarnContext(r.Context(), name+" failed", "error", err)
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, state)
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetProfile")
	defer span.End()

	vm := viewmodel.NewProfile(ctx, h.queue, h.identity, h.profiles, h.logger)
	defer vm.Close()
	vm.Load()

	state := settle[viewmodel.ProfileState](vm)
	if !state.SignedIn {
		writeError(w, fmt.Errorf("%w: no signed-in user", usecase.ErrUnauthorized))
		return
	}
	if err := state.Cause(); err != nil {
		h.logger.WarnContext(ctx, "get profile failed", "error", err)
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, state)
}

func (h *Handler) SetFavoriteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetFavoriteTeam")
	defer span.End()

	var req favoriteTeamRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validate(req); err != nil {
		writeError(w, err)
		return
	}

	team, err := h.fixtures.FetchTeam(ctx, req.TeamID)
	if err != nil {
		h.logger.WarnContext(ctx, "fetch favorite team failed", "team_id", req.TeamID, "error", err)
		writeError(w, err)
		return
	}

	vm := viewmodel.NewProfile(ctx, h.queue, h.identity, h.profiles, h.logger)
	defer vm.Close()
	vm.Load()
	if state := settle[viewmodel.ProfileState](vm); state.Cause() != nil {
		writeError(w, state.Cause())
		return
	}

	if err := vm.SetFavoriteTeam(team); err != nil {
		writeError(w, err)
		return
	}
	state := settle[viewmodel.ProfileState](vm)
	if err := state.Cause(); err != nil {
		h.logger.WarnContext(ctx, "set favorite team failed", "team_id", team.ID, "error", err)
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, state)
}
