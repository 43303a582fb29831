package user

import "context"

// Identity is the credential service.
type Identity interface {
	SignIn(ctx context.Context, email, password string) (User, error)
	SignUp(ctx context.Context, email, password string) (User, error)
	SignOut(ctx context.Context) error
	CurrentUser() (User, bool)
	// Subscribe delivers the current state immediately, then every change,
	// until cancel is called.
	Subscribe(fn func(AuthState)) (cancel func())
}

// ProfileStore keeps one profile document per user.
type ProfileStore interface {
	GetProfile(ctx context.Context, userID string) (Profile, bool, error)
	MergeProfile(ctx context.Context, userID string, patch ProfilePatch) error
}
