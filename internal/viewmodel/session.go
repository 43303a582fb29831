package viewmodel

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/matchvision/internal/domain/user"
	"github.com/riskibarqy/matchvision/internal/platform/dispatch"
	"github.com/riskibarqy/matchvision/internal/platform/logging"
	"github.com/riskibarqy/matchvision/internal/usecase"
)

const authSlot = "auth"

type SessionState struct {
	Status
	SignedIn bool       `json:"signedIn"`
	User     *user.User `json:"user,omitempty"`
	// Registered is set after a successful sign-up; the user still has to
	// sign in.
	Registered bool `json:"registered"`
}

// Session follows the identity's auth-state stream and runs the sign-in,
// sign-up and sign-out actions.
type Session struct {
	*screen[SessionState]
	identity    user.Identity
	profiles    user.ProfileStore
	unsubscribe func()
}

func NewSession(ctx context.Context, queue *dispatch.Queue, identity user.Identity, profiles user.ProfileStore, logger *logging.Logger) *Session {
	s := &Session{
		screen:   newScreen[SessionState](ctx, "viewmodel.session", queue, logger),
		identity: identity,
		profiles: profiles,
	}

	t := s.begin(authSlot, nil)
	s.unsubscribe = identity.Subscribe(func(state user.AuthState) {
		s.post(t, func(st *SessionState) {
			st.SignedIn = state.SignedIn
			st.User = state.User
		})
	})
	return s
}

// SignIn starts a sign-in when the credentials pass user.CanSignIn.
func (s *Session) SignIn(email, password string) error {
	if !user.CanSignIn(email, password) {
		return fmt.Errorf("%w: email or password not acceptable", usecase.ErrInvalidInput)
	}

	t := s.begin(mainSlot, func(st *SessionState) {
		st.start()
		st.Registered = false
	})
	launch(s.screen, t, "sign_in",
		func(ctx context.Context) (user.User, error) {
			return s.identity.SignIn(ctx, strings.TrimSpace(email), password)
		},
		func(st *SessionState, _ user.User, err error) {
			st.finish(err)
		},
	)
	return nil
}

// SignUp creates the account, writes the initial profile document and signs
// out again.
func (s *Session) SignUp(reg user.Registration) error {
	if !reg.CanSignUp() {
		return fmt.Errorf("%w: registration form incomplete", usecase.ErrInvalidInput)
	}

	t := s.begin(mainSlot, func(st *SessionState) {
		st.start()
		st.Registered = false
	})
	launch(s.screen, t, "sign_up",
		func(ctx context.Context) (user.User, error) {
			return s.register(ctx, reg)
		},
		func(st *SessionState, _ user.User, err error) {
			st.finish(err)
			st.Registered = err == nil
		},
	)
	return nil
}

func (s *Session) register(ctx context.Context, reg user.Registration) (user.User, error) {
	email := strings.TrimSpace(reg.Email)
	created, err := s.identity.SignUp(ctx, email, reg.Password)
	if err != nil {
		return user.User{}, err
	}

	name := strings.TrimSpace(reg.Name)
	patch := user.ProfilePatch{Name: &name, Email: &email}
	if err := s.profiles.MergeProfile(ctx, created.ID, patch); err != nil {
		_ = s.identity.SignOut(ctx)
		return user.User{}, fmt.Errorf("write initial profile: %w", err)
	}

	if err := s.identity.SignOut(ctx); err != nil {
		return user.User{}, fmt.Errorf("sign out after registration: %w", err)
	}
	return created, nil
}

func (s *Session) SignOut() {
	t := s.begin(mainSlot, func(st *SessionState) {
		st.start()
	})
	launch(s.screen, t, "sign_out",
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.identity.SignOut(ctx)
		},
		func(st *SessionState, _ struct{}, err error) {
			st.finish(err)
		},
	)
}

func (s *Session) Snapshot() SessionState {
	var out SessionState
	s.read(func(st SessionState) {
		out = st
		if st.User != nil {
			u := *st.User
			out.User = &u
		}
	})
	return out
}

func (s *Session) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
	s.screen.Close()
}
