// Package cases implements browsing, public submission and curation of
// missing-person cases.
package cases

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ronrahal/athar-syria-s-hope/internal/config"
	"github.com/ronrahal/athar-syria-s-hope/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type caseStore interface {
	List(ctx context.Context, f domain.CaseListFilter) ([]domain.Case, error)
	GetByCaseNumber(ctx context.Context, caseNumber string) (*domain.Case, error)
	Stats(ctx context.Context, publishedOnly bool) (domain.CaseStats, error)
	Create(ctx context.Context, c *domain.Case) (*domain.Case, error)
	UpdateStatus(ctx context.Context, caseNumber string, status domain.CaseStatus) (*domain.Case, error)
	SetFlags(ctx context.Context, caseNumber string, f domain.CaseFlags) (*domain.Case, error)
	AppendEvidence(ctx context.Context, caseNumber, url string) (*domain.Case, error)
	Publish(ctx context.Context, caseNumber string, at time.Time) (*domain.Case, error)
	AppendTimelineEvent(ctx context.Context, caseID uuid.UUID, ev domain.TimelineEvent) (domain.TimelineEvent, error)
}

type auditRepo interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type blobStore interface {
	Upload(ctx context.Context, name, contentType string, r io.Reader) (string, error)
	Delete(ctx context.Context, name string) error
}

type caseNumberGenerator interface {
	Next() (string, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the case use cases.
type Service struct {
	log     *slog.Logger
	cases   caseStore
	audit   auditRepo
	tx      txManager
	blobs   blobStore
	numbers caseNumberGenerator
	cfg     config.SubmissionConfig
	now     func() time.Time
}

// NewService creates a new cases service.
func NewService(
	logger *slog.Logger,
	cases caseStore,
	audit auditRepo,
	tx txManager,
	blobs blobStore,
	cfg config.SubmissionConfig,
) *Service {
	return &Service{
		log:     logger.With("service", "cases"),
		cases:   cases,
		audit:   audit,
		tx:      tx,
		blobs:   blobs,
		numbers: domain.NewCaseNumberGenerator(),
		cfg:     cfg,
		now:     time.Now,
	}
}
