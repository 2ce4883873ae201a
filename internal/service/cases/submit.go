package cases

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/ronrahal/athar-syria-s-hope/internal/domain"
)

// ErrPhotoRequired is returned by Submit when no photo, or an empty file, was
// sent. Handlers report it as a server-side submission failure.
var ErrPhotoRequired = errors.New("photo is required")

// maxCaseNumberAttempts bounds regeneration after a case number collision.
const maxCaseNumberAttempts = 5

// sniffLen is how many bytes http.DetectContentType looks at.
const sniffLen = 512

// Submit records a publicly reported case. The case starts unpublished with
// status domain.DefaultSubmissionStatus until a curator reviews it.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*domain.Case, error) {
	input = normalizeSubmit(input)

	now := s.now()
	if err := input.Validate(s.cfg.MaxPhotoBytes, now); err != nil {
		return nil, err
	}
	if input.Photo == nil || input.Photo.Content == nil {
		return nil, ErrPhotoRequired
	}

	photo, contentType, err := sniffPhoto(input.Photo.Content)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	photoURL, err := s.blobs.Upload(ctx, id.String(), contentType, photo)
	if err != nil {
		return nil, fmt.Errorf("cases.Submit upload photo: %w", err)
	}

	c := &domain.Case{
		ID:                 id,
		FirstName:          input.FirstName,
		LastName:           input.LastName,
		FirstNameAr:        input.FirstNameAr,
		LastNameAr:         input.LastNameAr,
		Age:                input.Age,
		Gender:             domain.Gender(input.Gender),
		LastSeenLocation:   input.LastSeenLocation,
		LastSeenLocationAr: input.LastSeenLocationAr,
		DateMissing:        input.DateMissing,
		DescriptionEn:      input.DescriptionEn,
		DescriptionAr:      input.DescriptionAr,
		Status:             domain.DefaultSubmissionStatus,
		Photo:              &photoURL,
		Evidence:           []string{},
		Contact:            input.Contact,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	created, err := s.createWithCaseNumber(ctx, c)
	if err != nil {
		s.discardPhoto(ctx, id.String(), photoURL)
		return nil, err
	}

	s.log.InfoContext(ctx, "case submitted",
		slog.String("case_id", created.ID.String()),
		slog.String("case_number", created.CaseNumber),
	)
	return created, nil
}

// createWithCaseNumber assigns a fresh case number and inserts c, retrying on
// a unique collision.
func (s *Service) createWithCaseNumber(ctx context.Context, c *domain.Case) (*domain.Case, error) {
	var lastErr error
	for attempt := 1; attempt <= maxCaseNumberAttempts; attempt++ {
		number, err := s.numbers.Next()
		if err != nil {
			return nil, fmt.Errorf("cases.Submit generate case number: %w", err)
		}
		c.CaseNumber = number

		created, err := s.cases.Create(ctx, c)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("cases.Submit create: %w", err)
		}

		s.log.WarnContext(ctx, "case number collision",
			slog.String("case_number", number),
			slog.Int("attempt", attempt),
		)
		lastErr = err
	}
	return nil, fmt.Errorf("cases.Submit: no free case number after %d attempts: %w", maxCaseNumberAttempts, lastErr)
}

// discardPhoto removes an uploaded photo whose case was never stored. Failures
// are logged with the URL so the blob can be cleaned up by hand.
func (s *Service) discardPhoto(ctx context.Context, name, url string) {
	if err := s.blobs.Delete(context.WithoutCancel(ctx), name); err != nil {
		s.log.WarnContext(ctx, "orphaned case photo",
			slog.String("photo_url", url),
			slog.String("error", err.Error()),
		)
	}
}

// sniffPhoto checks that r starts with image bytes and returns a reader that
// replays the sniffed prefix.
func sniffPhoto(r io.Reader) (io.Reader, string, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, "", fmt.Errorf("read photo: %w", err)
	}
	head = head[:n]
	if n == 0 {
		return nil, "", ErrPhotoRequired
	}

	contentType := http.DetectContentType(head)
	if !strings.HasPrefix(contentType, "image/") {
		return nil, "", domain.NewValidationError("photo", "must be an image")
	}
	return io.MultiReader(bytes.NewReader(head), r), contentType, nil
}

func normalizeSubmit(in SubmitInput) SubmitInput {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.FirstNameAr = trimOptional(in.FirstNameAr)
	in.LastNameAr = trimOptional(in.LastNameAr)
	in.Gender = strings.ToLower(strings.TrimSpace(in.Gender))
	in.LastSeenLocation = strings.TrimSpace(in.LastSeenLocation)
	in.LastSeenLocationAr = trimOptional(in.LastSeenLocationAr)
	in.DescriptionEn = strings.TrimSpace(in.DescriptionEn)
	in.DescriptionAr = strings.TrimSpace(in.DescriptionAr)
	in.Contact = trimOptional(in.Contact)

	// The form has one description box; copy it into the missing language so
	// both localized fields are populated.
	if in.DescriptionEn == "" {
		in.DescriptionEn = in.DescriptionAr
	}
	if in.DescriptionAr == "" {
		in.DescriptionAr = in.DescriptionEn
	}
	return in
}

// trimOptional trims s and returns nil for blank values.
func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
