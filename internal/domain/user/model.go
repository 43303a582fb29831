package user

import (
	"strings"
	"time"
)

// User is the authenticated identity as reported by the identity provider.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
}

// AuthState is delivered on every sign-in or sign-out.
type AuthState struct {
	User     *User
	SignedIn bool
}

// Profile is the per-user document kept next to the identity.
type Profile struct {
	UserID           string
	Name             string
	Email            string
	FavoriteTeamID   *int
	FavoriteTeamName *string
	FavoriteTeamLogo *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ProfilePatch is a partial merge-write; nil fields keep their stored value.
type ProfilePatch struct {
	Name             *string
	Email            *string
	FavoriteTeamID   *int
	FavoriteTeamName *string
	FavoriteTeamLogo *string
}

func (p ProfilePatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.FavoriteTeamID == nil &&
		p.FavoriteTeamName == nil && p.FavoriteTeamLogo == nil
}

// Apply merges the patch into profile and returns the result.
func (p ProfilePatch) Apply(profile Profile) Profile {
	if p.Name != nil {
		profile.Name = *p.Name
	}
	if p.Email != nil {
		profile.Email = *p.Email
	}
	if p.FavoriteTeamID != nil {
		v := *p.FavoriteTeamID
		profile.FavoriteTeamID = &v
	}
	if p.FavoriteTeamName != nil {
		v := *p.FavoriteTeamName
		profile.FavoriteTeamName = &v
	}
	if p.FavoriteTeamLogo != nil {
		v := *p.FavoriteTeamLogo
		profile.FavoriteTeamLogo = &v
	}
	return profile
}

const minPasswordLength = 6

// CanSignIn gates the sign-in action.
func CanSignIn(email, password string) bool {
	return strings.Contains(email, ".") && len(password) >= minPasswordLength
}

// Registration is the sign-up form.
type Registration struct {
	Name            string
	Email           string
	ConfirmEmail    string
	Password        string
	ConfirmPassword string
}

// CanSignUp gates the sign-up action.
func (r Registration) CanSignUp() bool {
	return r.Name != "" &&
		strings.Contains(r.Email, "@") &&
		strings.Contains(r.Email, ".") &&
		r.Email == r.ConfirmEmail &&
		r.Password == r.ConfirmPassword &&
		len(r.Password) >= minPasswordLength
}
