package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ronrahal/athar-syria-s-hope/internal/adapter/postgres"
	"github.com/ronrahal/athar-syria-s-hope/internal/adapter/postgres/casestore"
	"github.com/ronrahal/athar-syria-s-hope/internal/domain"
)

var importDryRun bool

var importCasesCmd = &cobra.Command{
	Use:   "import-cases <file.yaml>",
	Short: "Load cases from a YAML seed file",
	Long: `Insert the cases listed in a YAML seed file.

Each case is inserted with its timeline in one transaction. Cases whose
case number already exists are skipped, so the command can be re-run.`,
	Args: cobra.ExactArgs(1),
	RunE: withEnv(func(ctx context.Context, e *env, cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		gen := domain.NewCaseNumberGenerator()
		seed, err := parseSeedFile(f, time.Now().UTC(), gen.Next)
		if err != nil {
			return err
		}
		if importDryRun {
			cmd.Printf("%d cases are valid\n", len(seed))
			return nil
		}

		res, err := importCases(ctx, e.logger, casestore.New(e.pool), postgres.NewTxManager(e.pool), seed)
		if err != nil {
			return err
		}
		cmd.Printf("imported %d cases, skipped %d existing\n", res.created, res.skipped)
		return nil
	}),
}

func init() {
	importCasesCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "validate the file without writing")
}

type caseCreator interface {
	Create(ctx context.Context, c *domain.Case) (*domain.Case, error)
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type importResult struct {
	created int
	skipped int
}

func importCases(ctx context.Context, logger *slog.Logger, store caseCreator, tx txRunner, seed []domain.Case) (importResult, error) {
	var res importResult
	for i := range seed {
		c := &seed[i]
		err := tx.RunInTx(ctx, func(ctx context.Context) error {
			_, err := store.Create(ctx, c)
			return err
		})
		switch {
		case errors.Is(err, domain.ErrAlreadyExists):
			res.skipped++
			logger.InfoContext(ctx, "case exists, skipping", slog.String("case_number", c.CaseNumber))
		case err != nil:
			return res, fmt.Errorf("import %s: %w", c.CaseNumber, err)
		default:
			res.created++
		}
	}
	return res, nil
}
