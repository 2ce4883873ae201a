package domain

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// FilterCases returns the cases that pass both the status predicate and the
// search predicate, in input order.
//
// The search is a plain substring test. Latin fields (case number, first and
// last name, last-seen location) are compared lower-cased on both sides.
// Arabic name fields are compared against the raw query without case folding.
// An empty query matches every case. The query is not trimmed.
//
// FilterCases is pure and safe for concurrent use on shared input.
func FilterCases(cases []Case, query string, status StatusFilter) ([]Case, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("filter cases: %w: %q", ErrInvalidStatus, status)
	}

	lower := strings.ToLower(query)
	out := make([]Case, 0, len(cases))
	for i := range cases {
		c := &cases[i]
		if !status.Matches(c.Status) {
			continue
		}
		if !matchesQuery(c, query, lower) {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func matchesQuery(c *Case, raw, lower string) bool {
	if raw == "" {
		return true
	}
	if strings.Contains(strings.ToLower(c.CaseNumber), lower) ||
		strings.Contains(strings.ToLower(c.FirstName), lower) ||
		strings.Contains(strings.ToLower(c.LastName), lower) ||
		strings.Contains(strings.ToLower(c.LastSeenLocation), lower) {
		return true
	}
	if c.FirstNameAr != nil && strings.Contains(*c.FirstNameAr, raw) {
		return true
	}
	if c.LastNameAr != nil && strings.Contains(*c.LastNameAr, raw) {
		return true
	}
	return false
}

// SortBy names the optional ordering of a case listing.
type SortBy string

const (
	SortByNone       SortBy = ""
	SortByDate       SortBy = "date"
	SortByName       SortBy = "name"
	SortByCaseNumber SortBy = "caseNumber"
)

// SortOrder is the direction of SortBy.
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// ParseSort validates sort parameters. Empty sortBy means "keep source order";
// empty order defaults to ascending.
func ParseSort(sortBy, order string) (SortBy, SortOrder, error) {
	by := SortBy(sortBy)
	switch by {
	case SortByNone, SortByDate, SortByName, SortByCaseNumber:
	default:
		return "", "", NewValidationError("sort", "must be one of date, name, caseNumber")
	}

	o := SortOrder(strings.ToLower(order))
	switch o {
	case "":
		o = SortOrderAsc
	case SortOrderAsc, SortOrderDesc:
	default:
		return "", "", NewValidationError("order", "must be asc or desc")
	}
	return by, o, nil
}

// SortCases returns a sorted copy of cases. Sorting is stable, so ties keep
// their input order. SortByNone returns an unmodified copy.
func SortCases(cases []Case, by SortBy, order SortOrder) []Case {
	out := slices.Clone(cases)
	if by == SortByNone {
		return out
	}

	compare := func(a, b Case) int {
		switch by {
		case SortByDate:
			return a.DateMissing.Compare(b.DateMissing)
		case SortByName:
			return cmp.Compare(sortName(&a), sortName(&b))
		default:
			return cmp.Compare(a.CaseNumber, b.CaseNumber)
		}
	}
	if order == SortOrderDesc {
		asc := compare
		compare = func(a, b Case) int { return -asc(a, b) }
	}

	slices.SortStableFunc(out, compare)
	return out
}

func sortName(c *Case) string {
	return strings.ToLower(c.FirstName + " " + c.LastName)
}

// DefaultFeaturedLimit is how many featured cases the landing page shows.
const DefaultFeaturedLimit = 3

// FeaturedCases returns the first limit featured cases in input order.
func FeaturedCases(cases []Case, limit int) []Case {
	if limit <= 0 {
		return []Case{}
	}
	out := make([]Case, 0, limit)
	for i := range cases {
		if len(out) >= limit {
			break
		}
		if cases[i].IsFeatured {
			out = append(out, cases[i])
		}
	}
	return out
}

// CaseListFilter narrows the rows a store loads for a listing. Text search is
// applied in memory by FilterCases.
type CaseListFilter struct {
	Status        StatusFilter
	PublishedOnly bool
}

// CaseFlags is a partial update of the curator flags. Nil leaves a flag
// unchanged.
type CaseFlags struct {
	Urgent   *bool
	Featured *bool
}

// IsEmpty reports whether the update changes nothing.
func (f CaseFlags) IsEmpty() bool {
	return f.Urgent == nil && f.Featured == nil
}
