package cases

import (
	"io"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ronrahal/athar-syria-s-hope/internal/domain"
)

const (
	maxNameLength        = 100
	maxLocationLength    = 200
	maxDescriptionLength = 5000
	maxContactLength     = 200
	maxTitleLength       = 200
	maxURLLength         = 2048
	maxAge               = 150
)

// ListInput holds the query parameters of a case listing.
type ListInput struct {
	Query     string
	Status    string
	SortBy    string
	SortOrder string

	// IncludeUnpublished is honored for curators only.
	IncludeUnpublished bool
}

// PhotoInput is the uploaded photo of a submission.
type PhotoInput struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// SubmitInput holds the fields of the public submission form.
type SubmitInput struct {
	FirstName          string
	LastName           string
	FirstNameAr        *string
	LastNameAr         *string
	Age                int
	Gender             string
	LastSeenLocation   string
	LastSeenLocationAr *string
	DateMissing        time.Time
	DescriptionEn      string
	DescriptionAr      string
	Contact            *string
	Photo              *PhotoInput
}

// Validate validates the submission fields. A missing photo and its content
// type are checked separately by Submit.
func (i SubmitInput) Validate(maxPhotoBytes int64, now time.Time) error {
	var errs []domain.FieldError

	errs = requireText(errs, "firstName", i.FirstName, maxNameLength)
	errs = requireText(errs, "lastName", i.LastName, maxNameLength)
	errs = optionalText(errs, "firstNameAr", i.FirstNameAr, maxNameLength)
	errs = optionalText(errs, "lastNameAr", i.LastNameAr, maxNameLength)

	if i.Age < 0 || i.Age > maxAge {
		errs = append(errs, domain.FieldError{Field: "age", Message: "must be between 0 and 150"})
	}
	if !domain.Gender(i.Gender).IsValid() {
		errs = append(errs, domain.FieldError{Field: "gender", Message: "must be male or female"})
	}

	errs = requireText(errs, "lastSeenLocation", i.LastSeenLocation, maxLocationLength)
	errs = optionalText(errs, "lastSeenLocationAr", i.LastSeenLocationAr, maxLocationLength)

	switch {
	case i.DateMissing.IsZero():
		errs = append(errs, domain.FieldError{Field: "dateMissing", Message: "required"})
	case i.DateMissing.After(now):
		errs = append(errs, domain.FieldError{Field: "dateMissing", Message: "must not be in the future"})
	}

	if strings.TrimSpace(i.DescriptionEn) == "" && strings.TrimSpace(i.DescriptionAr) == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}
	if utf8.RuneCountInString(i.DescriptionEn) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "descriptionEn", Message: "too long"})
	}
	if utf8.RuneCountInString(i.DescriptionAr) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "descriptionAr", Message: "too long"})
	}
	errs = optionalText(errs, "contact", i.Contact, maxContactLength)

	if i.Photo != nil && i.Photo.Size > maxPhotoBytes {
		errs = append(errs, domain.FieldError{Field: "photo", Message: "file too large"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// TimelineEventInput holds a curator-authored timeline entry.
type TimelineEventInput struct {
	Date          time.Time
	TitleEn       string
	TitleAr       string
	DescriptionEn *string
	DescriptionAr *string
}

// Validate validates the timeline event input.
func (i TimelineEventInput) Validate() error {
	var errs []domain.FieldError

	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	errs = requireText(errs, "titleEn", i.TitleEn, maxTitleLength)
	errs = requireText(errs, "titleAr", i.TitleAr, maxTitleLength)
	errs = optionalText(errs, "descriptionEn", i.DescriptionEn, maxDescriptionLength)
	errs = optionalText(errs, "descriptionAr", i.DescriptionAr, maxDescriptionLength)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateEvidenceURL(raw string) error {
	if raw == "" {
		return domain.NewValidationError("url", "required")
	}
	if len(raw) > maxURLLength {
		return domain.NewValidationError("url", "too long")
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return domain.NewValidationError("url", "must be an absolute http(s) URL")
	}
	return nil
}

func requireText(errs []domain.FieldError, field, value string, maxLen int) []domain.FieldError {
	if strings.TrimSpace(value) == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if utf8.RuneCountInString(value) > maxLen {
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}

func optionalText(errs []domain.FieldError, field string, value *string, maxLen int) []domain.FieldError {
	if value != nil && utf8.RuneCountInString(*value) > maxLen {
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}
