// Package rest serves the JSON HTTP API.
package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ronrahal/athar-syria-s-hope/internal/domain"
)

const maxJSONBody = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// validationResponse lists per-field problems next to the summary message.
type validationResponse struct {
	Error  string           `json:"error"`
	Fields []fieldErrorView `json:"fields,omitempty"`
}

type fieldErrorView struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// MapError translates a service error into an HTTP status and a message that
// is safe to show to the caller. Unknown errors map to 500.
func MapError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return http.StatusBadRequest, ve.Error()
		}
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, domain.ErrInvalidStatus):
		return http.StatusBadRequest, "invalid status"
	case errors.Is(err, domain.ErrInvalidLanguage):
		return http.StatusBadRequest, "invalid language"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict, "already exists"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// respondError writes err using MapError. 500s are logged with the cause and
// answered with fallback, which replaces the generic message when non-empty.
func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, fallback string) {
	status, msg := MapError(err)
	if status == http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		if fallback != "" {
			msg = fallback
		}
		writeError(w, status, msg)
		return
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) && len(ve.Errors) > 0 {
		resp := validationResponse{Error: msg}
		for _, fe := range ve.Errors {
			resp.Fields = append(resp.Fields, fieldErrorView{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, status, resp)
		return
	}
	writeError(w, status, msg)
}

// decodeJSON reads a bounded JSON body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
