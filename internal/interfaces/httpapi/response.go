package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/matchvision/external/apisports"
	"github.com/riskibarqy/matchvision/internal/platform/httpclient"
	"github.com/riskibarqy/matchvision/internal/usecase"
	"github.com/riskibarqy/matchvision/internal/viewmodel"
)

const (
	googleAPIVersion = "2.0"
	errorDomain      = "matchvision"
)

type googleResponseEnvelope struct {
	APIVersion string           `json:"apiVersion"`
	Data       any              `json:"data,omitempty"`
	Error      *googleErrorBody `json:"error,omitempty"`
}

type googleErrorBody struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Status  string            `json:"status"`
	Errors  []googleErrorItem `json:"errors,omitempty"`
}

type googleErrorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type mappedError struct {
	HTTPStatus int
	Reason     string
	Status     string
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Data:       data,
	})
}

// writeError renders err with the user-facing message the screens show and
// keeps the raw chain in the error item.
func writeError(w http.ResponseWriter, err error) {
	mapped := mapError(err)
	writeJSON(w, mapped.HTTPStatus, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &googleErrorBody{
			Code:    mapped.HTTPStatus,
			Message: usecase.Describe(err),
			Status:  mapped.Status,
			Errors: []googleErrorItem{
				{
					Domain:  errorDomain,
					Reason:  mapped.Reason,
					Message: err.Error(),
				},
			},
		},
	})
}

func writeInternalError(w http.ResponseWriter) {
	const msg = "internal server error"

	writeJSON(w, http.StatusInternalServerError, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &googleErrorBody{
			Code:    http.StatusInternalServerError,
			Message: msg,
			Status:  "INTERNAL",
			Errors: []googleErrorItem{
				{Domain: errorDomain, Reason: "internalError", Message: msg},
			},
		},
	})
}

func mapError(err error) mappedError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return mappedError{HTTPStatus: http.StatusBadRequest, Reason: "invalidInput", Status: "INVALID_ARGUMENT"}
	case errors.Is(err, usecase.ErrNotFound), errors.Is(err, viewmodel.ErrNoNews):
		return mappedError{HTTPStatus: http.StatusNotFound, Reason: "notFound", Status: "NOT_FOUND"}
	case errors.Is(err, usecase.ErrUnauthorized):
		return mappedError{HTTPStatus: http.StatusUnauthorized, Reason: "unauthorized", Status: "UNAUTHENTICATED"}
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return mappedError{HTTPStatus: http.StatusServiceUnavailable, Reason: "dependencyUnavailable", Status: "UNAVAILABLE"}
	case errors.Is(err, context.DeadlineExceeded):
		return mappedError{HTTPStatus: http.StatusGatewayTimeout, Reason: "upstreamTimeout", Status: "DEADLINE_EXCEEDED"}
	case errors.Is(err, apisports.ErrProviderRejected),
		errors.Is(err, httpclient.ErrStatus),
		errors.Is(err, httpclient.ErrTransport),
		errors.Is(err, httpclient.ErrEmptyBody),
		errors.Is(err, httpclient.ErrBodyTooLarge),
		errors.Is(err, httpclient.ErrDecode):
		return mappedError{HTTPStatus: http.StatusBadGateway, Reason: "upstreamError", Status: "UNAVAILABLE"}
	default:
		return mappedError{HTTPStatus: http.StatusInternalServerError, Reason: "internalError", Status: "INTERNAL"}
	}
}
