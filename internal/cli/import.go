package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mrlokans/eventadmin/internal/entities"
	"github.com/mrlokans/eventadmin/internal/entrypoint"
	"github.com/mrlokans/eventadmin/internal/importers"
	"github.com/mrlokans/eventadmin/internal/services"
)

type importOptions struct {
	eventID     uint
	createEvent string
	kind        string
	file        string
	maxErrors   int
}

func newImportCommand(s *state) *cobra.Command {
	opts := &importOptions{}

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a CSV or XLSX file into an event",
		Long: `Runs one bulk import synchronously and prints the number of records
created followed by the row-level errors.

Row errors do not change the exit status; only unreadable files, unknown
kinds and missing events do.

Examples:
  eventadmin import --event 3 --kind speakers --file speakers.csv
  eventadmin import --create-event "Cardio Summit" --kind sessions --file agenda.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, s, opts)
		},
	}

	cmd.Flags().UintVar(&opts.eventID, "event", 0, "ID of the event to import into")
	cmd.Flags().StringVar(&opts.createEvent, "create-event", "", "create an event with this name and import into it")
	cmd.Flags().StringVar(&opts.kind, "kind", "", "speakers, sessions, exhibitors, sponsors, groups or attendees")
	cmd.Flags().StringVar(&opts.file, "file", "", "path to a .csv or .xlsx file")
	cmd.Flags().IntVar(&opts.maxErrors, "max-errors", 0, "errors to print (default IMPORT_MAX_ERRORS_SHOWN)")
	_ = cmd.MarkFlagRequired("kind")
	_ = cmd.MarkFlagRequired("file")
	cmd.MarkFlagsMutuallyExclusive("event", "create-event")

	return cmd
}

func runImport(cmd *cobra.Command, s *state, opts *importOptions) error {
	kind, ok := entities.ParseImportKind(opts.kind)
	if !ok {
		return fmt.Errorf("unknown import kind %q", opts.kind)
	}
	if opts.eventID == 0 && opts.createEvent == "" {
		return errors.New("either --event or --create-event is required")
	}

	content, err := os.ReadFile(opts.file)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", opts.file, err)
	}
	text, err := importers.DecodeUpload(opts.file, content)
	if err != nil {
		return err
	}

	// A one-shot import never needs background workers.
	cfg := *s.cfg
	cfg.Tasks.Enabled = false

	app, err := entrypoint.Build(&cfg, s.log)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := cmd.Context()
	eventID := opts.eventID
	if opts.createEvent != "" {
		event := &entities.Event{Name: opts.createEvent}
		if err := app.Events.CreateEvent(ctx, event); err != nil {
			return fmt.Errorf("failed to create event: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created event %d (%s)\n", event.ID, event.Slug)
		eventID = event.ID
	}

	session, result, err := app.Imports.Run(ctx, services.ImportRequest{
		EventID:  eventID,
		Kind:     kind,
		FileName: filepath.Base(opts.file),
		Content:  text,
	})
	if err != nil {
		return err
	}

	maxErrors := opts.maxErrors
	if maxErrors <= 0 {
		maxErrors = s.cfg.Import.MaxErrorsShown
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Imported %d %s from %d rows (run %s)\n", result.Created, kind, result.Rows, session.RunID)
	if result.HasErrors() {
		fmt.Fprintf(out, "%d error(s):\n", len(result.Errors))
		for _, msg := range result.Summary(maxErrors) {
			fmt.Fprintf(out, "  %s\n", msg)
		}
	}
	return nil
}
