package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Amanking2425/catalog-placement-hashira/internal/config"
	"github.com/Amanking2425/catalog-placement-hashira/internal/logging"
)

// env is what PersistentPreRunE resolves for the subcommands.
type env struct {
	cfg *config.Config
	log *zap.Logger
}

func NewRootCommand() *cobra.Command {
	e := &env{log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "hashira",
		Short: "Recover a polynomial's constant term from encoded sample points",
		Long: `hashira reads test cases of (x, y) points whose y values are written in
bases 2 to 36, takes the k points with the smallest x, and evaluates their
Lagrange interpolating polynomial at x = 0 with exact rational arithmetic.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			cfg, err := config.Load(c.Flags())
			if err != nil {
				return usageError{err}
			}
			log, err := logging.New(cfg.Log, c.ErrOrStderr())
			if err != nil {
				return usageError{err}
			}
			e.cfg = cfg
			e.log = log
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = e.log.Sync()
		},
	}
	config.AddFlags(root.PersistentFlags())
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	root.AddCommand(
		solveCommand(e),
		decodeCommand(),
		encodeCommand(),
		versionCommand(),
	)
	return root
}

func Execute() error {
	return NewRootCommand().Execute()
}
