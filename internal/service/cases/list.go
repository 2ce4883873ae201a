package cases

import (
	"context"
	"fmt"

	"github.com/ronrahal/athar-syria-s-hope/internal/domain"
	"github.com/ronrahal/athar-syria-s-hope/pkg/ctxutil"
)

// List returns the cases matching the search query and status filter.
// Anonymous callers only see published cases.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Case, error) {
	status, err := domain.ParseStatusFilter(input.Status)
	if err != nil {
		return nil, err
	}
	sortBy, order, err := domain.ParseSort(input.SortBy, input.SortOrder)
	if err != nil {
		return nil, err
	}

	includeUnpublished := input.IncludeUnpublished && ctxutil.IsAdminCtx(ctx)

	all, err := s.cases.List(ctx, domain.CaseListFilter{
		Status:        status,
		PublishedOnly: !includeUnpublished,
	})
	if err != nil {
		return nil, fmt.Errorf("cases.List: %w", err)
	}

	matched, err := domain.FilterCases(all, input.Query, status)
	if err != nil {
		return nil, err
	}
	return domain.SortCases(matched, sortBy, order), nil
}

// Get returns a case by its case number. Unpublished cases are only visible
// to curators; everyone else gets ErrNotFound.
func (s *Service) Get(ctx context.Context, caseNumber string) (*domain.Case, error) {
	if !domain.IsValidCaseNumber(caseNumber) {
		return nil, domain.ErrNotFound
	}

	c, err := s.cases.GetByCaseNumber(ctx, caseNumber)
	if err != nil {
		return nil, fmt.Errorf("cases.Get: %w", err)
	}
	if !c.IsPublished() && !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// Featured returns up to limit featured published cases, newest first.
// A non-positive limit means domain.DefaultFeaturedLimit.
func (s *Service) Featured(ctx context.Context, limit int) ([]domain.Case, error) {
	if limit <= 0 {
		limit = domain.DefaultFeaturedLimit
	}

	published, err := s.cases.List(ctx, domain.CaseListFilter{
		Status:        domain.StatusFilterAll,
		PublishedOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("cases.Featured: %w", err)
	}
	return domain.FeaturedCases(published, limit), nil
}

// Stats returns the dashboard counters over the whole collection, including
// submissions still waiting for review.
func (s *Service) Stats(ctx context.Context) (domain.CaseStats, error) {
	st, err := s.cases.Stats(ctx, false)
	if err != nil {
		return domain.CaseStats{}, fmt.Errorf("cases.Stats: %w", err)
	}
	return st, nil
}
