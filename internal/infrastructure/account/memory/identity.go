// Package memory provides an in-process identity service for local runs and
// tests. Credentials live only as long as the process.
package memory

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"sync"

	"github.com/riskibarqy/matchvision/internal/domain/user"
	"github.com/riskibarqy/matchvision/internal/platform/id"
	"github.com/riskibarqy/matchvision/internal/usecase"
)

type account struct {
	user     user.User
	password string
}

type Identity struct {
	ids id.Generator

	mu          sync.Mutex
	accounts    map[string]account
	current     *user.User
	subscribers map[int]func(user.AuthState)
	nextSubID   int
}

func NewIdentity(ids id.Generator) *Identity {
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	return &Identity{
		ids:         ids,
		accounts:    make(map[string]account),
		subscribers: make(map[int]func(user.AuthState)),
	}
}

func (s *Identity) SignUp(_ context.Context, email, password string) (user.User, error) {
	key := normalizeEmail(email)
	if key == "" || password == "" {
		return user.User{}, fmt.Errorf("%w: email and password are required", usecase.ErrInvalidInput)
	}

	s.mu.Lock()
	if _, exists := s.accounts[key]; exists {
		s.mu.Unlock()
		return user.User{}, fmt.Errorf("%w: user already registered", usecase.ErrUnauthorized)
	}
	userID, err := s.ids.NewID()
	if err != nil {
		s.mu.Unlock()
		return user.User{}, fmt.Errorf("generate user id: %w", err)
	}
	u := user.User{ID: userID, Email: key}
	s.accounts[key] = account{user: u, password: password}
	s.mu.Unlock()

	s.setCurrent(&u)
	return u, nil
}

func (s *Identity) SignIn(_ context.Context, email, password string) (user.User, error) {
	s.mu.Lock()
	acc, ok := s.accounts[normalizeEmail(email)]
	s.mu.Unlock()

	if !ok || subtle.ConstantTimeCompare([]byte(acc.password), []byte(password)) != 1 {
		return user.User{}, fmt.Errorf("%w: invalid login credentials", usecase.ErrUnauthorized)
	}

	u := acc.user
	s.setCurrent(&u)
	return u, nil
}

func (s *Identity) SignOut(context.Context) error {
	s.setCurrent(nil)
	return nil
}

func (s *Identity) CurrentUser() (user.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return user.User{}, false
	}
	return *s.current, true
}

func (s *Identity) Subscribe(fn func(user.AuthState)) (cancel func()) {
	s.mu.Lock()
	subID := s.nextSubID
	s.nextSubID++
	s.subscribers[subID] = fn
	state := authState(s.current)
	s.mu.Unlock()

	fn(state)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers, subID)
			s.mu.Unlock()
		})
	}
}

func (s *Identity) setCurrent(u *user.User) {
	s.mu.Lock()
	s.current = u
	state := authState(u)
	listeners := make([]func(user.AuthState), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(state)
	}
}

func authState(u *user.User) user.AuthState {
	if u == nil {
		return user.AuthState{}
	}
	cp := *u
	return user.AuthState{User: &cp, SignedIn: true}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
