package auth

import (
	"time"

	"github.com/ronrahal/athar-syria-s-hope/internal/domain"
)

// AuthResult is returned by Login.
type AuthResult struct {
	AccessToken string
	ExpiresIn   time.Duration
	User        *domain.User
}
