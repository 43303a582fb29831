package usecase

import (
	"errors"

	"github.com/riskibarqy/matchvision/internal/platform/httpclient"
)

// Describe turns an error into the message shown on a screen.
func Describe(err error) string {
	if err == nil {
		return ""
	}

	var statusErr *httpclient.StatusError
	switch {
	case errors.Is(err, ErrEmptyStandings):
		return "Standings vacíos"
	case errors.Is(err, ErrTeamNotFound):
		return "Equipo no encontrado"
	case errors.Is(err, ErrDependencyUnavailable):
		return "Servicio no disponible temporalmente"
	case errors.As(err, &statusErr):
		return statusErr.Error()
	case errors.Is(err, httpclient.ErrEmptyBody):
		return "No data"
	case errors.Is(err, httpclient.ErrInvalidURL):
		return "URL inválida"
	default:
		return err.Error()
	}
}
