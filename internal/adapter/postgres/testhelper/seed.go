package testhelper

import (
	"context"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ronrahal/athar-syria-s-hope/internal/domain"
)

func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueCaseNumber returns a well-formed case number unlikely to collide
// with other tests sharing the container.
func UniqueCaseNumber() string {
	return fmt.Sprintf("ATH-%04d-%04d", 1000+rand.IntN(9000), 1000+rand.IntN(9000))
}

// SeedAdmin inserts a curator with a placeholder password hash.
func SeedAdmin(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	u := domain.User{
		ID:           uuid.New(),
		Email:        "curator-" + uniqueSuffix() + "@example.org",
		Name:         "Curator",
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholderplacehold",
		Role:         domain.UserRoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.Email, u.Name, u.PasswordHash, string(u.Role), u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAdmin: %v", err)
	}
	return u
}

// NewCase returns an unsaved well-formed case with a unique case number.
func NewCase(first, last string, status domain.CaseStatus) domain.Case {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return domain.Case{
		ID:               uuid.New(),
		CaseNumber:       UniqueCaseNumber(),
		FirstName:        first,
		LastName:         last,
		Age:              27,
		Gender:           domain.GenderMale,
		LastSeenLocation: "Aleppo",
		DateMissing:      time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
		DescriptionEn:    "Last seen leaving work.",
		DescriptionAr:    "شوهد آخر مرة وهو يغادر العمل.",
		Status:           status,
		Evidence:         []string{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// SeedCase inserts c directly, bypassing the repository under test.
func SeedCase(t *testing.T, pool *pgxpool.Pool, c domain.Case) domain.Case {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO cases (id, case_number, first_name, last_name, age, gender, last_seen_location,
		                    date_missing, description_en, description_ar, status, is_urgent, is_featured,
		                    evidence, created_at, updated_at, published_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		c.ID, c.CaseNumber, c.FirstName, c.LastName, c.Age, string(c.Gender), c.LastSeenLocation,
		c.DateMissing, c.DescriptionEn, c.DescriptionAr, string(c.Status), c.IsUrgent, c.IsFeatured,
		c.Evidence, c.CreatedAt, c.UpdatedAt, c.PublishedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCase %s: %v", c.CaseNumber, err)
	}
	return c
}
