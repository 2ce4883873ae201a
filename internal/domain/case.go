package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Case is a documented missing-person report.
//
// English fields are the default-locale source. Arabic fields are optional;
// display accessors fall back to the English value per field.
type Case struct {
	ID         uuid.UUID
	CaseNumber string

	FirstName   string
	LastName    string
	FirstNameAr *string
	LastNameAr  *string

	Age    int
	Gender Gender

	LastSeenLocation   string
	LastSeenLocationAr *string
	DateMissing        time.Time

	DescriptionEn string
	DescriptionAr string

	Status     CaseStatus
	IsUrgent   bool
	IsFeatured bool

	Photo    *string
	Evidence []string
	Timeline []TimelineEvent

	// Contact is the optional reporter contact collected by the submission
	// form. It is never exposed on public endpoints.
	Contact *string

	CreatedAt   time.Time
	UpdatedAt   time.Time
	PublishedAt *time.Time
}

// TimelineEvent is a dated narrative entry. Order is caller-supplied.
type TimelineEvent struct {
	ID            uuid.UUID
	Date          time.Time
	TitleEn       string
	TitleAr       string
	DescriptionEn *string
	DescriptionAr *string
}

// IsPublished returns true once a curator has published the case.
func (c *Case) IsPublished() bool {
	return c.PublishedAt != nil
}

// DisplayName returns "first last" in the requested language.
func (c *Case) DisplayName(lang Language) string {
	first := localized(lang, c.FirstName, c.FirstNameAr)
	last := localized(lang, c.LastName, c.LastNameAr)
	return strings.TrimSpace(first + " " + last)
}

// DisplayLocation returns the last-seen location in the requested language.
func (c *Case) DisplayLocation(lang Language) string {
	return localized(lang, c.LastSeenLocation, c.LastSeenLocationAr)
}

// Description returns the narrative in the requested language.
func (c *Case) Description(lang Language) string {
	if lang == LanguageArabic && c.DescriptionAr != "" {
		return c.DescriptionAr
	}
	return c.DescriptionEn
}

// Title returns the event title in the requested language.
func (e *TimelineEvent) Title(lang Language) string {
	if lang == LanguageArabic && e.TitleAr != "" {
		return e.TitleAr
	}
	return e.TitleEn
}

// Body returns the event description in the requested language, or "" when
// neither language has one.
func (e *TimelineEvent) Body(lang Language) string {
	if lang == LanguageArabic && e.DescriptionAr != nil && *e.DescriptionAr != "" {
		return *e.DescriptionAr
	}
	if e.DescriptionEn != nil {
		return *e.DescriptionEn
	}
	if e.DescriptionAr != nil {
		return *e.DescriptionAr
	}
	return ""
}

// Validate checks the required fields of a stored case.
// Returns *MalformedCaseError naming every offending field.
func (c *Case) Validate() error {
	var bad []string

	if !IsValidCaseNumber(c.CaseNumber) {
		bad = append(bad, "caseNumber")
	}
	if strings.TrimSpace(c.FirstName) == "" {
		bad = append(bad, "firstName")
	}
	if strings.TrimSpace(c.LastName) == "" {
		bad = append(bad, "lastName")
	}
	if c.Age < 0 {
		bad = append(bad, "age")
	}
	if !c.Gender.IsValid() {
		bad = append(bad, "gender")
	}
	if strings.TrimSpace(c.LastSeenLocation) == "" {
		bad = append(bad, "lastSeenLocation")
	}
	if c.DateMissing.IsZero() {
		bad = append(bad, "dateMissing")
	}
	if c.DescriptionEn == "" {
		bad = append(bad, "descriptionEn")
	}
	if c.DescriptionAr == "" {
		bad = append(bad, "descriptionAr")
	}
	if !c.Status.IsValid() {
		bad = append(bad, "status")
	}

	if len(bad) > 0 {
		return &MalformedCaseError{CaseNumber: c.CaseNumber, Fields: bad}
	}
	return nil
}

func localized(lang Language, base string, ar *string) string {
	if lang == LanguageArabic && ar != nil && *ar != "" {
		return *ar
	}
	return base
}
