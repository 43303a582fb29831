package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/matchvision/internal/domain/user"
	"github.com/riskibarqy/matchvision/internal/usecase"
)

const getProfileQuery = `SELECT user_id, name, email, favorite_team_id, favorite_team_name, favorite_team_logo, created_at, updated_at
FROM user_profiles
WHERE user_id = $1
LIMIT 1`

// Columns left NULL in the merge keep their stored value.
const mergeProfileQuery = `INSERT INTO user_profiles (user_id, name, email, favorite_team_id, favorite_team_name, favorite_team_logo)
VALUES (:user_id, :name, :email, :favorite_team_id, :favorite_team_name, :favorite_team_logo)
ON CONFLICT (user_id)
DO UPDATE SET
    name = COALESCE(EXCLUDED.name, user_profiles.name),
    email = COALESCE(EXCLUDED.email, user_profiles.email),
    favorite_team_id = COALESCE(EXCLUDED.favorite_team_id, user_profiles.favorite_team_id),
    favorite_team_name = COALESCE(EXCLUDED.favorite_team_name, user_profiles.favorite_team_name),
    favorite_team_logo = COALESCE(EXCLUDED.favorite_team_logo, user_profiles.favorite_team_logo),
    updated_at = NOW()`

type ProfileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) GetProfile(ctx context.Context, userID string) (user.Profile, bool, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return user.Profile{}, false, fmt.Errorf("%w: user id is required", usecase.ErrInvalidInput)
	}

	var row userProfileTableModel
	if err := r.db.GetContext(ctx, &row, getProfileQuery, userID); err != nil {
		if isNotFound(err) {
			return user.Profile{}, false, nil
		}
		return user.Profile{}, false, fmt.Errorf("get user profile: %w", err)
	}

	return profileFromRow(row), true, nil
}

func (r *ProfileRepository) MergeProfile(ctx context.Context, userID string, patch user.ProfilePatch) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return fmt.Errorf("%w: user id is required", usecase.ErrInvalidInput)
	}
	if patch.IsEmpty() {
		return nil
	}

	model := userProfileMergeModel{
		UserID:           userID,
		Name:             patch.Name,
		Email:            patch.Email,
		FavoriteTeamName: patch.FavoriteTeamName,
		FavoriteTeamLogo: patch.FavoriteTeamLogo,
	}
	if patch.FavoriteTeamID != nil {
		v := int64(*patch.FavoriteTeamID)
		model.FavoriteTeamID = &v
	}

	if _, err := r.db.NamedExecContext(ctx, mergeProfileQuery, model); err != nil {
		return fmt.Errorf("merge user profile: %w", err)
	}
	return nil
}

func profileFromRow(row userProfileTableModel) user.Profile {
	profile := user.Profile{
		UserID:           row.UserID,
		Name:             row.Name.String,
		Email:            row.Email.String,
		FavoriteTeamName: nullStringPtr(row.FavoriteTeamName),
		FavoriteTeamLogo: nullStringPtr(row.FavoriteTeamLogo),
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
	if row.FavoriteTeamID.Valid {
		v := int(row.FavoriteTeamID.Int64)
		profile.FavoriteTeamID = &v
	}
	return profile
}
