package domain

import (
	"fmt"
	"strings"
)

// CaseStatus is the curated lifecycle code of a case. The set is closed.
type CaseStatus string

const (
	CaseStatusKidnapped     CaseStatus = "kidnapped"
	CaseStatusRansom        CaseStatus = "ransom"
	CaseStatusKilled        CaseStatus = "killed"
	CaseStatusReturned      CaseStatus = "returned"
	CaseStatusMissing       CaseStatus = "missing"
	CaseStatusInvestigation CaseStatus = "investigation"
)

// DefaultSubmissionStatus is assigned to publicly submitted cases until a
// curator reviews them.
const DefaultSubmissionStatus = CaseStatusInvestigation

// AllCaseStatuses returns the closed status set in display order.
func AllCaseStatuses() []CaseStatus {
	return []CaseStatus{
		CaseStatusKidnapped,
		CaseStatusRansom,
		CaseStatusKilled,
		CaseStatusReturned,
		CaseStatusMissing,
		CaseStatusInvestigation,
	}
}

func (s CaseStatus) String() string { return string(s) }

func (s CaseStatus) IsValid() bool {
	switch s {
	case CaseStatusKidnapped, CaseStatusRansom, CaseStatusKilled,
		CaseStatusReturned, CaseStatusMissing, CaseStatusInvestigation:
		return true
	}
	return false
}

// IsResolved reports whether the status is a positive resolution.
// Only "returned" qualifies.
func (s CaseStatus) IsResolved() bool {
	return s == CaseStatusReturned
}

// ParseCaseStatus converts raw input into a CaseStatus.
// No coercion is applied: unknown values return ErrInvalidStatus.
func ParseCaseStatus(raw string) (CaseStatus, error) {
	s := CaseStatus(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return s, nil
}

// StatusFilter selects one status or every status (StatusFilterAll).
type StatusFilter string

// StatusFilterAll disables the status predicate.
const StatusFilterAll StatusFilter = "all"

func (f StatusFilter) String() string { return string(f) }

func (f StatusFilter) IsValid() bool {
	return f == StatusFilterAll || CaseStatus(f).IsValid()
}

// Matches reports whether a case with status s passes the filter.
func (f StatusFilter) Matches(s CaseStatus) bool {
	return f == StatusFilterAll || CaseStatus(f) == s
}

// ParseStatusFilter converts raw input into a StatusFilter.
// An empty string means "all".
func ParseStatusFilter(raw string) (StatusFilter, error) {
	if raw == "" {
		return StatusFilterAll, nil
	}
	f := StatusFilter(raw)
	if !f.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return f, nil
}

// Gender of the missing person.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) String() string { return string(g) }

func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

// Language is a display locale. English is the default-locale source for
// every localized field.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"
)

// DefaultLanguage is used when no preference can be resolved.
const DefaultLanguage = LanguageEnglish

func (l Language) String() string { return string(l) }

func (l Language) IsValid() bool {
	return l == LanguageEnglish || l == LanguageArabic
}

// Dir returns the text direction for the language: "rtl" or "ltr".
func (l Language) Dir() string {
	if l == LanguageArabic {
		return "rtl"
	}
	return "ltr"
}

// ParseLanguage accepts "en" or "ar" in any letter case.
func ParseLanguage(raw string) (Language, error) {
	l := Language(strings.ToLower(strings.TrimSpace(raw)))
	if !l.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidLanguage, raw)
	}
	return l, nil
}

// UserRole represents the authorization level of a user.
// Curators are the only authenticated actors, so one role exists.
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	return r == UserRoleAdmin
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeCase     EntityType = "CASE"
	EntityTypeTimeline EntityType = "TIMELINE_EVENT"
)

func (e EntityType) String() string { return string(e) }

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
)

func (a AuditAction) String() string { return string(a) }
