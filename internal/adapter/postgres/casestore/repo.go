// Package casestore implements case persistence using PostgreSQL.
package casestore

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/ronrahal/athar-syria-s-hope/internal/adapter/postgres"
	"github.com/ronrahal/athar-syria-s-hope/internal/domain"
)

const (
	tableCases    = "cases"
	tableTimeline = "case_timeline_events"
)

var caseColumns = []string{
	"id", "case_number",
	"first_name", "last_name", "first_name_ar", "last_name_ar",
	"age", "gender",
	"last_seen_location", "last_seen_location_ar", "date_missing",
	"description_en", "description_ar",
	"status", "is_urgent", "is_featured",
	"photo", "evidence", "contact",
	"created_at", "updated_at", "published_at",
}

var timelineColumns = []string{
	"id", "case_id", "event_date", "title_en", "title_ar", "description_en", "description_ar",
}

// Repo provides case persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	tx   *postgres.TxManager
}

// New creates a new case repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool, tx: postgres.NewTxManager(pool)}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns cases newest first, each with its timeline.
func (r *Repo) List(ctx context.Context, f domain.CaseListFilter) ([]domain.Case, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder.
		Select(caseColumns...).
		From(tableCases).
		OrderBy("created_at DESC", "case_number ASC")

	if f.Status != "" && f.Status != domain.StatusFilterAll {
		query = query.Where(sq.Eq{"status": string(f.Status)})
	}
	if f.PublishedOnly {
		query = query.Where(sq.NotEq{"published_at": nil})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list cases query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	cases, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Case, error) {
		return scanCase(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan cases: %w", err)
	}

	if err := r.attachTimelines(ctx, q, cases); err != nil {
		return nil, err
	}
	return cases, nil
}

// GetByCaseNumber returns a single case with its timeline.
func (r *Repo) GetByCaseNumber(ctx context.Context, caseNumber string) (*domain.Case, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select(caseColumns...).
		From(tableCases).
		Where(sq.Eq{"case_number": caseNumber}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get case query: %w", err)
	}

	return r.queryOne(ctx, q, caseNumber, sql, args...)
}

// nonBlankPattern matches any rune outside unicode.IsSpace, so a text column
// matching it survives strings.TrimSpace.
const nonBlankPattern = `[^\t\n\v\f\r \u0085\u00a0\u1680\u2000-\u200a\u2028\u2029\u202f\u205f\u3000]`

// Stats aggregates the dashboard counters in one query. The well-formed
// predicate mirrors domain.Case.Validate for the columns a row can violate.
func (r *Repo) Stats(ctx context.Context, publishedOnly bool) (domain.CaseStats, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	valid := fmt.Sprintf(`(first_name ~ '%[1]s' AND last_name ~ '%[1]s' AND last_seen_location ~ '%[1]s'
		AND description_en <> '' AND description_ar <> '')`, nonBlankPattern)

	query := postgres.Builder.
		Select(
			"count(*) FILTER (WHERE "+valid+")",
			"count(*) FILTER (WHERE "+valid+" AND status <> 'returned')",
			"count(*) FILTER (WHERE "+valid+" AND status = 'returned')",
			"count(*) FILTER (WHERE "+valid+" AND is_urgent)",
			"count(*) FILTER (WHERE NOT "+valid+")",
		).
		From(tableCases)
	if publishedOnly {
		query = query.Where(sq.NotEq{"published_at": nil})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return domain.CaseStats{}, fmt.Errorf("build stats query: %w", err)
	}

	var total, active, resolved, urgent, skipped int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&total, &active, &resolved, &urgent, &skipped); err != nil {
		return domain.CaseStats{}, fmt.Errorf("case stats: %w", err)
	}

	return domain.CaseStats{
		Total:    int(total),
		Active:   int(active),
		Resolved: int(resolved),
		Urgent:   int(urgent),
		Skipped:  int(skipped),
	}, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a case and its timeline atomically, joining the caller's
// transaction when there is one. A duplicate case number maps to
// domain.ErrAlreadyExists so callers can regenerate and retry.
func (r *Repo) Create(ctx context.Context, c *domain.Case) (*domain.Case, error) {
	var created *domain.Case
	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = r.create(ctx, c)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *Repo) create(ctx context.Context, c *domain.Case) (*domain.Case, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	evidence := c.Evidence
	if evidence == nil {
		evidence = []string{}
	}

	sql, args, err := postgres.Builder.
		Insert(tableCases).
		Columns(caseColumns...).
		Values(
			c.ID, c.CaseNumber,
			c.FirstName, c.LastName, c.FirstNameAr, c.LastNameAr,
			c.Age, string(c.Gender),
			c.LastSeenLocation, c.LastSeenLocationAr, c.DateMissing,
			c.DescriptionEn, c.DescriptionAr,
			string(c.Status), c.IsUrgent, c.IsFeatured,
			c.Photo, evidence, c.Contact,
			c.CreatedAt, c.UpdatedAt, c.PublishedAt,
		).
		Suffix("RETURNING " + joinColumns(caseColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert case query: %w", err)
	}

	created, err := scanCase(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "case", c.CaseNumber)
	}

	for _, ev := range c.Timeline {
		stored, err := r.insertTimelineEvent(ctx, q, created.ID, ev)
		if err != nil {
			return nil, err
		}
		created.Timeline = append(created.Timeline, stored)
	}
	return &created, nil
}

// UpdateStatus sets the status of a case.
func (r *Repo) UpdateStatus(ctx context.Context, caseNumber string, status domain.CaseStatus) (*domain.Case, error) {
	return r.update(ctx, caseNumber, sq.Eq{"status": string(status)})
}

// SetFlags updates the urgent and featured flags that are set in f.
func (r *Repo) SetFlags(ctx context.Context, caseNumber string, f domain.CaseFlags) (*domain.Case, error) {
	set := sq.Eq{}
	if f.Urgent != nil {
		set["is_urgent"] = *f.Urgent
	}
	if f.Featured != nil {
		set["is_featured"] = *f.Featured
	}
	return r.update(ctx, caseNumber, set)
}

// AppendEvidence adds an evidence URL to the end of the list.
func (r *Repo) AppendEvidence(ctx context.Context, caseNumber, url string) (*domain.Case, error) {
	return r.update(ctx, caseNumber, sq.Eq{"evidence": sq.Expr("array_append(evidence, ?)", url)})
}

// Publish stamps published_at. Publishing twice keeps the first timestamp.
func (r *Repo) Publish(ctx context.Context, caseNumber string, at time.Time) (*domain.Case, error) {
	return r.update(ctx, caseNumber, sq.Eq{"published_at": sq.Expr("COALESCE(published_at, ?)", at)})
}

// AppendTimelineEvent adds an event after the existing ones.
func (r *Repo) AppendTimelineEvent(ctx context.Context, caseID uuid.UUID, ev domain.TimelineEvent) (domain.TimelineEvent, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stored, err := r.insertTimelineEvent(ctx, q, caseID, ev)
	if err != nil {
		return domain.TimelineEvent{}, err
	}

	touch, args, err := postgres.Builder.
		Update(tableCases).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": caseID}).
		ToSql()
	if err != nil {
		return domain.TimelineEvent{}, fmt.Errorf("build touch case query: %w", err)
	}
	if _, err := q.Exec(ctx, touch, args...); err != nil {
		return domain.TimelineEvent{}, postgres.MapError(err, "case", caseID)
	}
	return stored, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) update(ctx context.Context, caseNumber string, set sq.Eq) (*domain.Case, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder.
		Update(tableCases).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"case_number": caseNumber}).
		Suffix("RETURNING " + joinColumns(caseColumns))
	for col, val := range set {
		query = query.Set(col, val)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update case query: %w", err)
	}
	return r.queryOne(ctx, q, caseNumber, sql, args...)
}

func (r *Repo) queryOne(ctx context.Context, q postgres.Querier, caseNumber, sql string, args ...any) (*domain.Case, error) {
	c, err := scanCase(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "case", caseNumber)
	}

	one := []domain.Case{c}
	if err := r.attachTimelines(ctx, q, one); err != nil {
		return nil, err
	}
	return &one[0], nil
}

func (r *Repo) insertTimelineEvent(ctx context.Context, q postgres.Querier, caseID uuid.UUID, ev domain.TimelineEvent) (domain.TimelineEvent, error) {
	if ev.ID == uuid.Nil {
		ev.ID = uuid.New()
	}

	sql, args, err := postgres.Builder.
		Insert(tableTimeline).
		Columns("id", "case_id", "position", "event_date", "title_en", "title_ar", "description_en", "description_ar").
		Values(
			ev.ID, caseID,
			sq.Expr("(SELECT COALESCE(max(position) + 1, 0) FROM "+tableTimeline+" WHERE case_id = ?)", caseID),
			ev.Date, ev.TitleEn, ev.TitleAr, ev.DescriptionEn, ev.DescriptionAr,
		).
		ToSql()
	if err != nil {
		return domain.TimelineEvent{}, fmt.Errorf("build insert timeline query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return domain.TimelineEvent{}, postgres.MapError(err, "timeline_event", ev.ID)
	}
	return ev, nil
}

// attachTimelines loads events for all cases in one query, keeping
// insertion order per case.
func (r *Repo) attachTimelines(ctx context.Context, q postgres.Querier, cases []domain.Case) error {
	if len(cases) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(cases))
	index := make(map[uuid.UUID]int, len(cases))
	for i := range cases {
		ids[i] = cases[i].ID
		index[cases[i].ID] = i
	}

	sql, args, err := postgres.Builder.
		Select(timelineColumns...).
		From(tableTimeline).
		Where(sq.Eq{"case_id": ids}).
		OrderBy("case_id", "position").
		ToSql()
	if err != nil {
		return fmt.Errorf("build timeline query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("list timeline events: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			ev     domain.TimelineEvent
			caseID uuid.UUID
		)
		if err := rows.Scan(&ev.ID, &caseID, &ev.Date, &ev.TitleEn, &ev.TitleAr, &ev.DescriptionEn, &ev.DescriptionAr); err != nil {
			return fmt.Errorf("scan timeline event: %w", err)
		}
		if i, ok := index[caseID]; ok {
			cases[i].Timeline = append(cases[i].Timeline, ev)
		}
	}
	return rows.Err()
}

func scanCase(row pgx.Row) (domain.Case, error) {
	var (
		c              domain.Case
		gender, status string
	)
	err := row.Scan(
		&c.ID, &c.CaseNumber,
		&c.FirstName, &c.LastName, &c.FirstNameAr, &c.LastNameAr,
		&c.Age, &gender,
		&c.LastSeenLocation, &c.LastSeenLocationAr, &c.DateMissing,
		&c.DescriptionEn, &c.DescriptionAr,
		&status, &c.IsUrgent, &c.IsFeatured,
		&c.Photo, &c.Evidence, &c.Contact,
		&c.CreatedAt, &c.UpdatedAt, &c.PublishedAt,
	)
	if err != nil {
		return domain.Case{}, err
	}
	c.Gender = domain.Gender(gender)
	c.Status = domain.CaseStatus(status)
	if c.Evidence == nil {
		c.Evidence = []string{}
	}
	return c, nil
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}
