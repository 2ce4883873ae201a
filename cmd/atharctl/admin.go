package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ronrahal/athar-syria-s-hope/internal/adapter/postgres/user"
	jwtauth "github.com/ronrahal/athar-syria-s-hope/internal/auth"
	"github.com/ronrahal/athar-syria-s-hope/internal/domain"
	authsvc "github.com/ronrahal/athar-syria-s-hope/internal/service/auth"
)

// passwordEnv is read when --password is not given, so the secret stays out
// of shell history.
const passwordEnv = "ATHAR_ADMIN_PASSWORD"

var (
	adminEmail    string
	adminName     string
	adminPassword string
)

var seedAdminCmd = &cobra.Command{
	Use:   "seed-admin",
	Short: "Create or update a curator account",
	Long: `Create a curator account with the admin role, or update the name,
password and role of an existing account with the same email.

The password is taken from --password or the ATHAR_ADMIN_PASSWORD
environment variable.`,
	Args: cobra.NoArgs,
	RunE: withEnv(func(ctx context.Context, e *env, cmd *cobra.Command, _ []string) error {
		password, err := resolvePassword()
		if err != nil {
			return err
		}
		u, err := newAuthService(e).SeedAdmin(ctx, authsvc.AdminInput{
			Email:    adminEmail,
			Name:     adminName,
			Password: password,
		})
		if err != nil {
			return err
		}
		cmd.Printf("curator %s (%s) is ready\n", u.Email, u.ID)
		return nil
	}),
}

var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password",
	Short: "Set a new password for an existing curator",
	Args:  cobra.NoArgs,
	RunE: withEnv(func(ctx context.Context, e *env, cmd *cobra.Command, _ []string) error {
		password, err := resolvePassword()
		if err != nil {
			return err
		}
		err = newAuthService(e).ResetPassword(ctx, adminEmail, password)
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no curator with email %q", adminEmail)
		}
		if err != nil {
			return err
		}
		cmd.Printf("password updated for %s\n", adminEmail)
		return nil
	}),
}

func init() {
	for _, c := range []*cobra.Command{seedAdminCmd, resetPasswordCmd} {
		c.Flags().StringVar(&adminEmail, "email", "", "curator email")
		c.Flags().StringVar(&adminPassword, "password", "", "new password (default: $"+passwordEnv+")")
		_ = c.MarkFlagRequired("email")
	}
	seedAdminCmd.Flags().StringVar(&adminName, "name", "Administrator", "display name")
}

func resolvePassword() (string, error) {
	if adminPassword != "" {
		return adminPassword, nil
	}
	if p := os.Getenv(passwordEnv); p != "" {
		return p, nil
	}
	return "", fmt.Errorf("password required: pass --password or set %s", passwordEnv)
}

func newAuthService(e *env) *authsvc.Service {
	jwt := jwtauth.NewJWTManager(e.cfg.Auth.JWTSecret, e.cfg.Auth.JWTIssuer, e.cfg.Auth.AccessTokenTTL)
	return authsvc.NewService(e.logger, user.New(e.pool), jwt, e.cfg.Auth)
}
