package postgres

import (
	"database/sql"
	"time"
)

type userProfileTableModel struct {
	UserID           string         `db:"user_id"`
	Name             sql.NullString `db:"name"`
	Email            sql.NullString `db:"email"`
	FavoriteTeamID   sql.NullInt64  `db:"favorite_team_id"`
	FavoriteTeamName sql.NullString `db:"favorite_team_name"`
	FavoriteTeamLogo sql.NullString `db:"favorite_team_logo"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

type userProfileMergeModel struct {
	UserID           string  `db:"user_id"`
	Name             *string `db:"name"`
	Email            *string `db:"email"`
	FavoriteTeamID   *int64  `db:"favorite_team_id"`
	FavoriteTeamName *string `db:"favorite_team_name"`
	FavoriteTeamLogo *string `db:"favorite_team_logo"`
}
