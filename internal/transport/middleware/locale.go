package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/ronrahal/athar-syria-s-hope/internal/domain"
	"github.com/ronrahal/athar-syria-s-hope/pkg/ctxutil"
)

// ClientCookie identifies an anonymous browser across requests.
const ClientCookie = "athar_client"

const clientCookieMaxAge = 365 * 24 * time.Hour

// PreferenceLookup returns the stored language of a client, if any.
type PreferenceLookup interface {
	Lookup(ctx context.Context, clientID uuid.UUID) (domain.Language, bool, error)
}

// supported is ordered so that English wins ties and unknown tags.
var (
	supported = []language.Tag{language.English, language.Arabic}
	matcher   = language.NewMatcher(supported)
)

// Locale assigns every request a client id and a display language.
//
// The language comes from the ?lang= query parameter, then the client's
// stored preference, then Accept-Language, then English.
func Locale(prefs PreferenceLookup, secureCookie bool, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			clientID, ok := clientFromCookie(r)
			if !ok {
				clientID = uuid.New()
				http.SetCookie(w, &http.Cookie{
					Name:     ClientCookie,
					Value:    clientID.String(),
					Path:     "/",
					MaxAge:   int(clientCookieMaxAge.Seconds()),
					HttpOnly: true,
					Secure:   secureCookie,
					SameSite: http.SameSiteLaxMode,
				})
			}

			lang, err := resolveLanguage(ctx, r, prefs, clientID, ok)
			if err != nil {
				logger.WarnContext(ctx, "language preference lookup failed",
					slog.String("client_id", clientID.String()),
					slog.String("error", err.Error()),
				)
			}

			w.Header().Set("Content-Language", lang.String())
			w.Header().Add("Vary", "Accept-Language")

			ctx = ctxutil.WithClientID(ctx, clientID)
			ctx = ctxutil.WithLanguage(ctx, lang)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// resolveLanguage never fails the request: a lookup error falls through to
// the header and is returned for logging only.
func resolveLanguage(ctx context.Context, r *http.Request, prefs PreferenceLookup, clientID uuid.UUID, known bool) (domain.Language, error) {
	if raw := r.URL.Query().Get("lang"); raw != "" {
		if lang, err := domain.ParseLanguage(raw); err == nil {
			return lang, nil
		}
	}

	var lookupErr error
	if known {
		lang, ok, err := prefs.Lookup(ctx, clientID)
		if err != nil {
			lookupErr = err
		} else if ok {
			return lang, nil
		}
	}

	return FromAcceptLanguage(r.Header.Get("Accept-Language")), lookupErr
}

// FromAcceptLanguage picks English or Arabic for an Accept-Language header.
func FromAcceptLanguage(header string) domain.Language {
	if header == "" {
		return domain.DefaultLanguage
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return domain.DefaultLanguage
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return domain.DefaultLanguage
	}
	if supported[idx] == language.Arabic {
		return domain.LanguageArabic
	}
	return domain.LanguageEnglish
}

func clientFromCookie(r *http.Request) (uuid.UUID, bool) {
	c, err := r.Cookie(ClientCookie)
	if err != nil {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(c.Value)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
