package viewmodel

import (
	"context"
	"fmt"

	"github.com/riskibarqy/matchvision/internal/domain/fixture"
	"github.com/riskibarqy/matchvision/internal/domain/user"
	"github.com/riskibarqy/matchvision/internal/platform/dispatch"
	"github.com/riskibarqy/matchvision/internal/platform/logging"
	"github.com/riskibarqy/matchvision/internal/usecase"
)

const (
	DefaultProfileName  = "Sin nombre"
	DefaultFavoriteTeam = "Sin equipo"

	favoriteSlot = "favorite"
)

type ProfileView struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	FavoriteTeamID   *int   `json:"favoriteTeamId,omitempty"`
	FavoriteTeamName string `json:"favoriteTeamName"`
	FavoriteTeamLogo string `json:"favoriteTeamLogo"`
}

type ProfileState struct {
	Status
	SignedIn bool        `json:"signedIn"`
	Profile  ProfileView `json:"profile"`
}

type Profile struct {
	*screen[ProfileState]
	identity user.Identity
	profiles user.ProfileStore
}

func NewProfile(ctx context.Context, queue *dispatch.Queue, identity user.Identity, profiles user.ProfileStore, logger *logging.Logger) *Profile {
	return &Profile{
		screen:   newScreen[ProfileState](ctx, "viewmodel.profile", queue, logger),
		identity: identity,
		profiles: profiles,
	}
}

type profileResult struct {
	profile user.Profile
	found   bool
}

// Load reads the signed-in user's profile document. Without a signed-in user
// the screen stays empty.
func (p *Profile) Load() {
	current, signedIn := p.identity.CurrentUser()
	t := p.begin(mainSlot, func(s *ProfileState) {
		s.start()
		s.SignedIn = signedIn
		s.Profile = ProfileView{Email: current.Email}
		if !signedIn {
			s.Loading = false
		}
	})
	if !signedIn {
		return
	}

	launch(p.screen, t, "get_profile",
		func(ctx context.Context) (profileResult, error) {
			profile, found, err := p.profiles.GetProfile(ctx, current.ID)
			if err != nil {
				return profileResult{}, fmt.Errorf("Error al cargar perfil: %w", err)
			}
			return profileResult{profile: profile, found: found}, nil
		},
		func(s *ProfileState, res profileResult, err error) {
			s.finish(err)
			if err != nil || !res.found {
				return
			}
			s.Profile = profileView(res.profile, current.Email)
		},
	)
}

func profileView(profile user.Profile, email string) ProfileView {
	view := ProfileView{
		Name:             DefaultProfileName,
		Email:            email,
		FavoriteTeamID:   profile.FavoriteTeamID,
		FavoriteTeamName: DefaultFavoriteTeam,
	}
	if profile.Name != "" {
		view.Name = profile.Name
	}
	if profile.FavoriteTeamName != nil {
		view.FavoriteTeamName = *profile.FavoriteTeamName
	}
	if profile.FavoriteTeamLogo != nil {
		view.FavoriteTeamLogo = *profile.FavoriteTeamLogo
	}
	return view
}

// SetFavoriteTeam merge-writes the team id, name and logo into the profile
// document. Other profile fields are left as stored.
func (p *Profile) SetFavoriteTeam(team fixture.TeamInfo) error {
	current, signedIn := p.identity.CurrentUser()
	if !signedIn {
		return usecase.ErrUnauthorized
	}

	teamID := team.ID
	teamName := team.Name
	logo := ""
	if team.Logo != nil {
		logo = *team.Logo
	}
	patch := user.ProfilePatch{FavoriteTeamID: &teamID, FavoriteTeamName: &teamName, FavoriteTeamLogo: &logo}

	t := p.begin(favoriteSlot, func(s *ProfileState) {
		s.start()
	})
	launch(p.screen, t, "set_favorite_team",
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, p.profiles.MergeProfile(ctx, current.ID, patch)
		},
		func(s *ProfileState, _ struct{}, err error) {
			s.finish(err)
			if err != nil {
				return
			}
			s.Profile.FavoriteTeamID = &teamID
			s.Profile.FavoriteTeamName = teamName
			s.Profile.FavoriteTeamLogo = logo
		},
	)
	return nil
}

func (p *Profile) Snapshot() ProfileState {
	var out ProfileState
	p.read(func(s ProfileState) {
		out = s
		if s.Profile.FavoriteTeamID != nil {
			id := *s.Profile.FavoriteTeamID
			out.Profile.FavoriteTeamID = &id
		}
	})
	return out
}
