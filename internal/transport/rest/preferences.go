package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/ronrahal/athar-syria-s-hope/internal/domain"
	"github.com/ronrahal/athar-syria-s-hope/pkg/ctxutil"
)

type localeService interface {
	Set(ctx context.Context, clientID uuid.UUID, raw string) (domain.Language, error)
}

// PreferencesHandler serves the anonymous client's language preference.
type PreferencesHandler struct {
	svc localeService
	log *slog.Logger
}

// NewPreferencesHandler creates a PreferencesHandler.
func NewPreferencesHandler(svc localeService, logger *slog.Logger) *PreferencesHandler {
	return &PreferencesHandler{svc: svc, log: logger.With("handler", "preferences")}
}

type languageRequest struct {
	Language string `json:"language"`
}

type languageResponse struct {
	Language string `json:"language"`
	Dir      string `json:"dir"`
}

// GetLanguage handles GET /api/preferences/language. It reports the language
// already resolved for this request.
func (h *PreferencesHandler) GetLanguage(w http.ResponseWriter, r *http.Request) {
	lang := ctxutil.LanguageFromCtx(r.Context())
	writeJSON(w, http.StatusOK, languageResponse{Language: lang.String(), Dir: lang.Dir()})
}

// SetLanguage handles PUT /api/preferences/language.
func (h *PreferencesHandler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	var req languageRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	clientID, _ := ctxutil.ClientIDFromCtx(r.Context())
	lang, err := h.svc.Set(r.Context(), clientID, req.Language)
	if err != nil {
		respondError(w, r, h.log, err, "")
		return
	}

	w.Header().Set("Content-Language", lang.String())
	writeJSON(w, http.StatusOK, languageResponse{Language: lang.String(), Dir: lang.Dir()})
}
