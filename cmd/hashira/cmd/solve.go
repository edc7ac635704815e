package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Amanking2425/catalog-placement-hashira/internal/config"
	"github.com/Amanking2425/catalog-placement-hashira/internal/secret"
	"github.com/Amanking2425/catalog-placement-hashira/internal/testcase"
)

func solveCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "solve [files...]",
		Short: "Recover the secret of each test-case file",
		Long: `Recover the secret of each test-case file (.json, .yaml/.yml or .toml).
Without arguments the files listed in the config are solved, which default
to testcase1.json and testcase2.json. The first failing file stops the run.`,
		RunE: func(c *cobra.Command, args []string) error {
			files := args
			if len(files) == 0 {
				files = e.cfg.Files
			}
			return solveFiles(c.OutOrStdout(), e, files)
		},
	}
}

type solution struct {
	File   string `json:"file"`
	Secret string `json:"secret"`
}

func solveFiles(w io.Writer, e *env, files []string) error {
	solver := secret.NewSolver(e.log)
	enc := json.NewEncoder(w)

	for _, file := range files {
		s, err := solveForSecret(e.log, solver, file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}

		if e.cfg.Output == config.JSONOutput {
			if err := enc.Encode(solution{File: file, Secret: s.String()}); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintf(w, "Secret for %s: %s\n", file, s)
	}
	return nil
}

// solveForSecret reads a test case file, decodes the points and returns
// the polynomial's constant term.
func solveForSecret(log *zap.Logger, solver *secret.Solver, file string) (*big.Int, error) {
	tc, err := testcase.Load(file)
	if err != nil {
		return nil, err
	}
	points, err := tc.Points()
	if err != nil {
		return nil, err
	}

	log.Info("solving",
		zap.String("file", file),
		zap.Int("n", tc.N),
		zap.Int("k", tc.K),
		zap.Int("samples", len(points)),
	)
	if len(points) < tc.N {
		log.Warn("fewer samples than declared",
			zap.String("file", file),
			zap.Int("declared", tc.N),
			zap.Int("present", len(points)),
		)
	}

	return solver.Recover(points, tc.K)
}
