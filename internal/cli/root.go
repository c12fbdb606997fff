// Package cli defines the eventadmin command tree.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mrlokans/eventadmin/internal/config"
	"github.com/mrlokans/eventadmin/internal/logging"
)

// state is filled by the root command before any subcommand runs.
type state struct {
	envFile string
	cfg     *config.Config
	log     *zap.Logger
}

// NewRootCommand builds the CLI. Running it without a subcommand starts the
// server.
func NewRootCommand(version string) *cobra.Command {
	s := &state{}

	root := &cobra.Command{
		Use:           "eventadmin",
		Short:         "Event admin console backend with bulk CSV imports",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(s.envFile)
			if err != nil {
				return err
			}
			log, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
			if err != nil {
				return err
			}
			s.cfg, s.log = cfg, log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if s.log != nil {
				_ = s.log.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&s.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	serve := newServeCommand(s, version)
	root.RunE = serve.RunE
	root.AddCommand(serve, newImportCommand(s), newTemplateCommand())

	return root
}
