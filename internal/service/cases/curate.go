package cases

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/ronrahal/athar-syria-s-hope/internal/domain"
	"github.com/ronrahal/athar-syria-s-hope/pkg/ctxutil"
)

// UpdateStatus changes the status of a case (admin only).
func (s *Service) UpdateStatus(ctx context.Context, caseNumber, rawStatus string) (*domain.Case, error) {
	userID, err := requireCurator(ctx)
	if err != nil {
		return nil, err
	}
	status, err := domain.ParseCaseStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	return s.mutate(ctx, userID, caseNumber, "status updated", func(txCtx context.Context, old *domain.Case) (*domain.Case, map[string]any, error) {
		if old.Status == status {
			return old, nil, nil
		}
		updated, err := s.cases.UpdateStatus(txCtx, caseNumber, status)
		if err != nil {
			return nil, nil, fmt.Errorf("update status: %w", err)
		}
		return updated, map[string]any{"status": change(old.Status, updated.Status)}, nil
	})
}

// SetFlags updates the urgent and featured flags (admin only).
func (s *Service) SetFlags(ctx context.Context, caseNumber string, flags domain.CaseFlags) (*domain.Case, error) {
	userID, err := requireCurator(ctx)
	if err != nil {
		return nil, err
	}
	if flags.IsEmpty() {
		return nil, domain.NewValidationError("flags", "at least one of urgent or featured is required")
	}

	return s.mutate(ctx, userID, caseNumber, "flags updated", func(txCtx context.Context, old *domain.Case) (*domain.Case, map[string]any, error) {
		updated, err := s.cases.SetFlags(txCtx, caseNumber, flags)
		if err != nil {
			return nil, nil, fmt.Errorf("set flags: %w", err)
		}
		changes := map[string]any{}
		if old.IsUrgent != updated.IsUrgent {
			changes["isUrgent"] = change(old.IsUrgent, updated.IsUrgent)
		}
		if old.IsFeatured != updated.IsFeatured {
			changes["isFeatured"] = change(old.IsFeatured, updated.IsFeatured)
		}
		return updated, changes, nil
	})
}

// AddEvidence appends an evidence URL to a case (admin only).
func (s *Service) AddEvidence(ctx context.Context, caseNumber, rawURL string) (*domain.Case, error) {
	userID, err := requireCurator(ctx)
	if err != nil {
		return nil, err
	}
	rawURL = strings.TrimSpace(rawURL)
	if err := validateEvidenceURL(rawURL); err != nil {
		return nil, err
	}

	return s.mutate(ctx, userID, caseNumber, "evidence added", func(txCtx context.Context, _ *domain.Case) (*domain.Case, map[string]any, error) {
		updated, err := s.cases.AppendEvidence(txCtx, caseNumber, rawURL)
		if err != nil {
			return nil, nil, fmt.Errorf("append evidence: %w", err)
		}
		return updated, map[string]any{"evidence": map[string]any{"added": rawURL}}, nil
	})
}

// Publish makes a case visible on public endpoints (admin only). Publishing
// an already published case is a no-op.
func (s *Service) Publish(ctx context.Context, caseNumber string) (*domain.Case, error) {
	userID, err := requireCurator(ctx)
	if err != nil {
		return nil, err
	}

	return s.mutate(ctx, userID, caseNumber, "case published", func(txCtx context.Context, old *domain.Case) (*domain.Case, map[string]any, error) {
		if old.IsPublished() {
			return old, nil, nil
		}
		updated, err := s.cases.Publish(txCtx, caseNumber, s.now())
		if err != nil {
			return nil, nil, fmt.Errorf("publish: %w", err)
		}
		return updated, map[string]any{"publishedAt": change(nil, updated.PublishedAt)}, nil
	})
}

// AddTimelineEvent appends a dated event to a case timeline (admin only).
// Events keep the order in which they were added.
func (s *Service) AddTimelineEvent(ctx context.Context, caseNumber string, input TimelineEventInput) (*domain.Case, error) {
	userID, err := requireCurator(ctx)
	if err != nil {
		return nil, err
	}

	input.TitleEn = strings.TrimSpace(input.TitleEn)
	input.TitleAr = strings.TrimSpace(input.TitleAr)
	input.DescriptionEn = trimOptional(input.DescriptionEn)
	input.DescriptionAr = trimOptional(input.DescriptionAr)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Case
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.cases.GetByCaseNumber(txCtx, caseNumber)
		if err != nil {
			return fmt.Errorf("get case: %w", err)
		}

		ev, err := s.cases.AppendTimelineEvent(txCtx, c.ID, domain.TimelineEvent{
			ID:            uuid.New(),
			Date:          input.Date,
			TitleEn:       input.TitleEn,
			TitleAr:       input.TitleAr,
			DescriptionEn: input.DescriptionEn,
			DescriptionAr: input.DescriptionAr,
		})
		if err != nil {
			return fmt.Errorf("append timeline event: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeTimeline,
			EntityID:   &ev.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"caseNumber": caseNumber,
				"date":       ev.Date.Format("2006-01-02"),
				"titleEn":    ev.TitleEn,
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		c.Timeline = append(c.Timeline, ev)
		updated = c
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cases.AddTimelineEvent: %w", err)
	}

	s.log.InfoContext(ctx, "timeline event added",
		slog.String("user_id", userID.String()),
		slog.String("case_number", caseNumber),
	)
	return updated, nil
}

// mutateFunc applies one change to old and returns the new state with the
// audit diff. A nil diff skips the audit record.
type mutateFunc func(txCtx context.Context, old *domain.Case) (*domain.Case, map[string]any, error)

// mutate loads the case, applies fn and writes the audit record in one
// transaction.
func (s *Service) mutate(ctx context.Context, userID uuid.UUID, caseNumber, msg string, fn mutateFunc) (*domain.Case, error) {
	var updated *domain.Case
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.cases.GetByCaseNumber(txCtx, caseNumber)
		if err != nil {
			return fmt.Errorf("get case: %w", err)
		}

		var changes map[string]any
		updated, changes, err = fn(txCtx, old)
		if err != nil {
			return err
		}
		if len(changes) == 0 {
			return nil
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeCase,
			EntityID:   &updated.ID,
			Action:     domain.AuditActionUpdate,
			Changes:    changes,
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cases: %s: %w", msg, err)
	}

	s.log.InfoContext(ctx, msg,
		slog.String("user_id", userID.String()),
		slog.String("case_number", caseNumber),
	)
	return updated, nil
}

func requireCurator(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return uuid.Nil, domain.ErrForbidden
	}
	return userID, nil
}

func change(old, updated any) map[string]any {
	return map[string]any{"old": old, "new": updated}
}
