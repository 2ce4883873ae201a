package domain

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"time"
)

var caseNumberRe = regexp.MustCompile(`^ATH-\d{4}-\d{4}$`)

// IsValidCaseNumber reports whether s has the form ATH-<year>-<4 digits>.
func IsValidCaseNumber(s string) bool {
	return caseNumberRe.MatchString(s)
}

// CaseNumberGenerator issues human-readable case numbers.
// Uniqueness is enforced by the store; callers regenerate on collision
// before the case is created, never after.
type CaseNumberGenerator struct {
	now func() time.Time
}

// NewCaseNumberGenerator creates a generator using the wall clock.
func NewCaseNumberGenerator() *CaseNumberGenerator {
	return &CaseNumberGenerator{now: time.Now}
}

// Next returns a case number for the current year with a random
// 4-digit suffix in [1000, 9999].
func (g *CaseNumberGenerator) Next() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", fmt.Errorf("generate case number: %w", err)
	}
	return fmt.Sprintf("ATH-%d-%04d", g.now().UTC().Year(), 1000+n.Int64()), nil
}
