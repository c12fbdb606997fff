package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrlokans/eventadmin/internal/entrypoint"
)

func newServeCommand(s *state, version string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server, task workers and cleanup scheduler",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return entrypoint.Run(s.cfg, version, s.log)
		},
	}
}
