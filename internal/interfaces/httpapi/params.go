package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/matchvision/internal/usecase"
)

type matchesQuery struct {
	Date string `validate:"omitempty,datetime=2006-01-02"`
}

type leaguesQuery struct {
	Top string `validate:"omitempty,oneof=true false"`
}

type seasonQuery struct {
	Season int `validate:"omitempty,gte=1900,lte=2100"`
}

type playersQuery struct {
	Season int    `validate:"omitempty,gte=1900,lte=2100"`
	Query  string `validate:"max=64"`
}

type newsQuery struct {
	Language string `validate:"omitempty,len=2,alpha"`
	Country  string `validate:"omitempty,len=2,alpha"`
}

type signInRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type signUpRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required"`
	ConfirmEmail    string `json:"confirmEmail" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

type favoriteTeamRequest struct {
	TeamID int `json:"teamId" validate:"required,gt=0"`
}

func (h *Handler) validate(v any) error {
	if err := h.validator.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func pathID(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}

func queryInt(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, name)
	}
	return v, nil
}

func optionalString(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
