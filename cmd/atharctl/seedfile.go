package main

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/ronrahal/athar-syria-s-hope/internal/domain"
)

// seedFile is the YAML layout accepted by import-cases.
type seedFile struct {
	Cases []seedCase `yaml:"cases"`
}

type seedCase struct {
	CaseNumber         string         `yaml:"caseNumber"`
	FirstName          string         `yaml:"firstName"`
	LastName           string         `yaml:"lastName"`
	FirstNameAr        *string        `yaml:"firstNameAr"`
	LastNameAr         *string        `yaml:"lastNameAr"`
	Age                int            `yaml:"age"`
	Gender             string         `yaml:"gender"`
	Photo              *string        `yaml:"photo"`
	DateMissing        string         `yaml:"dateMissing"`
	LastSeenLocation   string         `yaml:"lastSeenLocation"`
	LastSeenLocationAr *string        `yaml:"lastSeenLocationAr"`
	DescriptionEn      string         `yaml:"descriptionEn"`
	DescriptionAr      string         `yaml:"descriptionAr"`
	Status             string         `yaml:"status"`
	IsUrgent           bool           `yaml:"isUrgent"`
	IsFeatured         bool           `yaml:"isFeatured"`
	Evidence           []string       `yaml:"evidence"`
	Timeline           []seedTimeline `yaml:"timeline"`
	Publish            *bool          `yaml:"publish"`
}

type seedTimeline struct {
	Date          string  `yaml:"date"`
	TitleEn       string  `yaml:"titleEn"`
	TitleAr       string  `yaml:"titleAr"`
	DescriptionEn *string `yaml:"descriptionEn"`
	DescriptionAr *string `yaml:"descriptionAr"`
}

// parseSeedFile decodes r into cases stamped with now. Cases without a case
// number get a generated one and seeded cases are published unless
// publish: false is set. A missing Arabic description falls back to the
// English one. Every malformed entry is reported, not just the
// first.
func parseSeedFile(r io.Reader, now time.Time, numbers func() (string, error)) ([]domain.Case, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f seedFile
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}

	var (
		out  []domain.Case
		errs []error
	)
	for i, sc := range f.Cases {
		c, err := sc.toCase(now, numbers)
		if err != nil {
			errs = append(errs, fmt.Errorf("cases[%d]: %w", i, err))
			continue
		}
		out = append(out, c)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, nil
}

func (sc seedCase) toCase(now time.Time, numbers func() (string, error)) (domain.Case, error) {
	number := strings.TrimSpace(sc.CaseNumber)
	if number == "" {
		n, err := numbers()
		if err != nil {
			return domain.Case{}, err
		}
		number = n
	}

	status := domain.DefaultSubmissionStatus
	if sc.Status != "" {
		status = domain.CaseStatus(strings.TrimSpace(sc.Status))
	}

	c := domain.Case{
		ID:                 uuid.New(),
		CaseNumber:         number,
		FirstName:          strings.TrimSpace(sc.FirstName),
		LastName:           strings.TrimSpace(sc.LastName),
		FirstNameAr:        sc.FirstNameAr,
		LastNameAr:         sc.LastNameAr,
		Age:                sc.Age,
		Gender:             domain.Gender(strings.ToLower(strings.TrimSpace(sc.Gender))),
		Photo:              sc.Photo,
		LastSeenLocation:   strings.TrimSpace(sc.LastSeenLocation),
		LastSeenLocationAr: sc.LastSeenLocationAr,
		DescriptionEn:      strings.TrimSpace(sc.DescriptionEn),
		DescriptionAr:      cmp.Or(strings.TrimSpace(sc.DescriptionAr), strings.TrimSpace(sc.DescriptionEn)),
		Status:             status,
		IsUrgent:           sc.IsUrgent,
		IsFeatured:         sc.IsFeatured,
		Evidence:           sc.Evidence,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if c.Evidence == nil {
		c.Evidence = []string{}
	}
	if sc.Publish == nil || *sc.Publish {
		c.PublishedAt = &now
	}

	if sc.DateMissing != "" {
		d, err := time.Parse(time.DateOnly, sc.DateMissing)
		if err != nil {
			return domain.Case{}, fmt.Errorf("%s: dateMissing %q: want YYYY-MM-DD", number, sc.DateMissing)
		}
		c.DateMissing = d
	}

	for j, st := range sc.Timeline {
		d, err := time.Parse(time.DateOnly, st.Date)
		if err != nil {
			return domain.Case{}, fmt.Errorf("%s: timeline[%d].date %q: want YYYY-MM-DD", number, j, st.Date)
		}
		if strings.TrimSpace(st.TitleEn) == "" {
			return domain.Case{}, fmt.Errorf("%s: timeline[%d].titleEn is required", number, j)
		}
		c.Timeline = append(c.Timeline, domain.TimelineEvent{
			Date:          d,
			TitleEn:       st.TitleEn,
			TitleAr:       st.TitleAr,
			DescriptionEn: st.DescriptionEn,
			DescriptionAr: st.DescriptionAr,
		})
	}

	if err := c.Validate(); err != nil {
		return domain.Case{}, err
	}
	return c, nil
}
