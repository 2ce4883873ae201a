// Package locale stores the display language chosen by anonymous clients and
// notifies listeners when it changes.
package locale

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ronrahal/athar-syria-s-hope/internal/domain"
)

type preferenceStore interface {
	Get(ctx context.Context, clientID uuid.UUID) (domain.LanguagePreference, error)
	Save(ctx context.Context, p domain.LanguagePreference) error
}

// LanguageChanged is emitted after a client switches language.
type LanguageChanged struct {
	ClientID uuid.UUID
	From     domain.Language
	To       domain.Language
	At       time.Time
}

// Listener receives LanguageChanged events synchronously, after the
// preference is stored.
type Listener func(ctx context.Context, ev LanguageChanged)

// Service implements language preference operations.
type Service struct {
	log   *slog.Logger
	store preferenceStore
	now   func() time.Time

	mu        sync.RWMutex
	listeners []Listener
}

// NewService creates a new locale service.
func NewService(logger *slog.Logger, store preferenceStore) *Service {
	return &Service{
		log:   logger.With("service", "locale"),
		store: store,
		now:   time.Now,
	}
}

// OnChange registers l for LanguageChanged events.
func (s *Service) OnChange(l Listener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, l)
	s.mu.Unlock()
}

// Lookup returns the stored language of clientID. ok is false when the client
// never chose one.
func (s *Service) Lookup(ctx context.Context, clientID uuid.UUID) (lang domain.Language, ok bool, err error) {
	p, err := s.store.Get(ctx, clientID)
	if errors.Is(err, domain.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("locale.Lookup: %w", err)
	}
	return p.Language, true, nil
}

// Get returns the stored language of clientID, or domain.DefaultLanguage when
// the client never chose one.
func (s *Service) Get(ctx context.Context, clientID uuid.UUID) (domain.Language, error) {
	lang, ok, err := s.Lookup(ctx, clientID)
	if err != nil {
		return "", err
	}
	if !ok {
		return domain.DefaultLanguage, nil
	}
	return lang, nil
}

// Set stores the language of clientID. Listeners are notified only when the
// language actually changes.
func (s *Service) Set(ctx context.Context, clientID uuid.UUID, raw string) (domain.Language, error) {
	if clientID == uuid.Nil {
		return "", domain.NewValidationError("client", "required")
	}
	lang, err := domain.ParseLanguage(raw)
	if err != nil {
		return "", domain.NewValidationError("language", "must be en or ar")
	}

	prev, err := s.Get(ctx, clientID)
	if err != nil {
		return "", err
	}

	now := s.now()
	if err := s.store.Save(ctx, domain.LanguagePreference{
		ClientID:  clientID,
		Language:  lang,
		UpdatedAt: now,
	}); err != nil {
		return "", fmt.Errorf("locale.Set: %w", err)
	}

	if prev != lang {
		s.emit(ctx, LanguageChanged{ClientID: clientID, From: prev, To: lang, At: now})
	}
	return lang, nil
}

func (s *Service) emit(ctx context.Context, ev LanguageChanged) {
	s.mu.RLock()
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.RUnlock()

	for _, l := range listeners {
		l(ctx, ev)
	}
}

// LogListener returns a Listener that records changes at debug level.
func LogListener(logger *slog.Logger) Listener {
	return func(ctx context.Context, ev LanguageChanged) {
		logger.DebugContext(ctx, "language changed",
			slog.String("client_id", ev.ClientID.String()),
			slog.String("from", ev.From.String()),
			slog.String("to", ev.To.String()),
		)
	}
}
