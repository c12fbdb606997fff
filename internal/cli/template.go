package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrlokans/eventadmin/internal/entities"
	"github.com/mrlokans/eventadmin/internal/importers"
)

func newTemplateCommand() *cobra.Command {
	var kind, out string

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Write the example CSV for an import kind",
		Args:  cobra.NoArgs,
		// Templates need neither config nor a database.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			k, ok := entities.ParseImportKind(kind)
			if !ok {
				return fmt.Errorf("unknown import kind %q", kind)
			}
			body, err := importers.Template(k)
			if err != nil {
				return err
			}

			if out == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), body)
				return err
			}
			if out == "." {
				out = importers.TemplateFilename(k)
			}
			if err := os.WriteFile(out, []byte(body), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "import kind")
	cmd.Flags().StringVar(&out, "out", "", "output path; \".\" uses the default file name, empty prints to stdout")
	_ = cmd.MarkFlagRequired("kind")

	return cmd
}
