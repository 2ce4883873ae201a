// Package preference stores per-client display language choices.
package preference

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/ronrahal/athar-syria-s-hope/internal/adapter/postgres"
	"github.com/ronrahal/athar-syria-s-hope/internal/domain"
)

// Repo provides language preference persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new preference repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Get returns the stored preference for clientID or domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, clientID uuid.UUID) (domain.LanguagePreference, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		p    = domain.LanguagePreference{ClientID: clientID}
		lang string
	)
	err := q.QueryRow(ctx,
		`SELECT language, updated_at FROM language_preferences WHERE client_id = $1`,
		clientID,
	).Scan(&lang, &p.UpdatedAt)
	if err != nil {
		return domain.LanguagePreference{}, postgres.MapError(err, "language_preference", clientID)
	}
	p.Language = domain.Language(lang)
	return p, nil
}

// Save inserts or replaces the preference for p.ClientID.
func (r *Repo) Save(ctx context.Context, p domain.LanguagePreference) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Insert("language_preferences").
		Columns("client_id", "language", "updated_at").
		Values(p.ClientID, string(p.Language), p.UpdatedAt).
		Suffix("ON CONFLICT (client_id) DO UPDATE SET language = EXCLUDED.language, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build save preference query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "language_preference", p.ClientID)
	}
	return nil
}
