package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("auth.bcrypt_cost must be in [4, 31] (got %d)", c.Auth.BcryptCost)
	}

	if err := c.Blob.validate(); err != nil {
		return fmt.Errorf("blob: %w", err)
	}
	if err := c.Submission.validate(); err != nil {
		return fmt.Errorf("submission: %w", err)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (b *BlobConfig) validate() error {
	switch b.Provider {
	case BlobProviderCloudinary:
		if b.CloudinaryURL == "" {
			return fmt.Errorf("cloudinary_url is required for provider %q", b.Provider)
		}
	case BlobProviderDisk:
		if b.DiskDir == "" {
			return fmt.Errorf("disk_dir is required for provider %q", b.Provider)
		}
	default:
		return fmt.Errorf("unknown provider %q", b.Provider)
	}
	return nil
}

func (s *SubmissionConfig) validate() error {
	if s.MaxPhotoBytes <= 0 {
		return fmt.Errorf("max_photo_bytes must be > 0 (got %d)", s.MaxPhotoBytes)
	}
	if s.RateLimit <= 0 {
		return fmt.Errorf("rate_limit must be > 0 (got %d)", s.RateLimit)
	}
	if s.RateWindow <= 0 {
		return fmt.Errorf("rate_window must be > 0 (got %v)", s.RateWindow)
	}
	if s.LoginRateLimit <= 0 {
		return fmt.Errorf("login_rate_limit must be > 0 (got %d)", s.LoginRateLimit)
	}
	return nil
}
