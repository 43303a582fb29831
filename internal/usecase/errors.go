package usecase

import (
	"errors"

	crerr "github.com/cockroachdb/errors"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")

	// ErrEmptyStandings and ErrTeamNotFound also match ErrNotFound.
	ErrEmptyStandings = crerr.Wrap(ErrNotFound, "standings empty")
	ErrTeamNotFound   = crerr.Wrap(ErrNotFound, "team not found")
)
