package importers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/mrlokans/eventadmin/internal/entities"
)

// Importer runs bulk CSV imports. Rows are processed strictly in file
// order so that a row may reference a group created by an earlier row of
// the same file.
type Importer struct {
	stores Stores
	log    *zap.Logger
}

func NewImporter(stores Stores, log *zap.Logger) *Importer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Importer{stores: stores, log: log}
}

// Import tokenizes text and imports every row into the event. Row-level
// problems never abort the call; they are collected in Result.Errors.
func (i *Importer) Import(ctx context.Context, eventID uint, kind entities.ImportKind, text string) Result {
	return i.ImportRows(ctx, eventID, kind, Tokenize(text))
}

// ImportRows imports already tokenized rows.
func (i *Importer) ImportRows(ctx context.Context, eventID uint, kind entities.ImportKind, rows []RawRow) Result {
	result := newResult()
	result.Rows = len(rows)

	run, err := i.runner(kind)
	if err != nil {
		result.addError("%s", err.Error())
		return result
	}
	if len(rows) == 0 {
		result.addError(NoRowsMessage)
		return result
	}

	if err := run(ctx, eventID, rows, &result); err != nil {
		result.addError("%s", err.Error())
	}

	i.log.Info("import finished",
		zap.Uint("event_id", eventID),
		zap.String("kind", string(kind)),
		zap.Int("rows", result.Rows),
		zap.Int("created", result.Created),
		zap.Int("errors", len(result.Errors)),
	)
	return result
}

type kindRunner func(ctx context.Context, eventID uint, rows []RawRow, result *Result) error

func (i *Importer) runner(kind entities.ImportKind) (kindRunner, error) {
	var (
		run        kindRunner
		configured bool
	)
	switch kind {
	case entities.ImportKindSpeakers:
		run, configured = i.importSpeakers, i.stores.Speakers != nil
	case entities.ImportKindSessions:
		run, configured = i.importSessions, i.stores.Sessions != nil && i.stores.Speakers != nil && i.stores.Groups != nil
	case entities.ImportKindExhibitors:
		run, configured = i.importExhibitors, i.stores.Exhibitors != nil
	case entities.ImportKindSponsors:
		run, configured = i.importSponsors, i.stores.Sponsors != nil
	case entities.ImportKindGroups:
		run, configured = i.importGroups, i.stores.Groups != nil
	case entities.ImportKindAttendees:
		run, configured = i.importAttendees, i.stores.Attendees != nil && i.stores.Groups != nil
	default:
		return nil, fmt.Errorf("Unsupported import kind %q", kind)
	}
	if !configured {
		return nil, fmt.Errorf("Import of %s is not configured", kind)
	}
	return run, nil
}

// rowNumber converts a data row index to its spreadsheet row, counting the
// header as row 1.
func rowNumber(index int) int {
	return index + 2
}

func (i *Importer) missing(result *Result, index int, identifier string, fields ...string) {
	label := fmt.Sprintf("Row %d", rowNumber(index))
	if identifier != "" {
		label += fmt.Sprintf(" (%q)", identifier)
	}
	result.addError("%s: missing required field(s): %s", label, strings.Join(fields, ", "))
}

// created records the outcome of a main-entity create and reports whether
// the row was persisted.
func (i *Importer) created(result *Result, identifier, uniqueField string, err error) bool {
	switch {
	case err == nil:
		result.Created++
		return true
	case errors.Is(err, entities.ErrDuplicate):
		result.addError("Skipped %q: duplicate %s", identifier, uniqueField)
	default:
		result.addError("Failed to import %q: %v", identifier, err)
	}
	i.log.Debug("row rejected", zap.String("row", identifier), zap.Error(err))
	return false
}

func (i *Importer) referenceErrors(result *Result, parent, title, refKind string, errs []ReferenceError) {
	for _, e := range errs {
		if errors.Is(e.Err, ErrReferenceNotFound) {
			result.addError("%s %q: %s %q not found", parent, title, refKind, e.Name)
			continue
		}
		result.addError("%s %q: could not create %s %q: %v", parent, title, refKind, e.Name, e.Err)
	}
}

// groupCreator auto-creates referenced groups. GetOrCreateGroup absorbs a
// concurrent import creating the same group first.
func (i *Importer) groupCreator(eventID uint) CreateFunc {
	return func(ctx context.Context, name string) (uint, error) {
		group, err := i.stores.Groups.GetOrCreateGroup(ctx, eventID, name)
		if err != nil {
			return 0, err
		}
		i.log.Debug("group created from reference", zap.Uint("event_id", eventID), zap.String("group", name))
		return group.ID, nil
	}
}

func (i *Importer) groupResolver(ctx context.Context, eventID uint) (*Resolver, error) {
	groups, err := i.stores.Groups.ListGroups(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("Failed to load existing groups: %v", err)
	}
	index := NewNameIndex(groups, func(g entities.Group) (string, uint) { return g.Name, g.ID })
	return NewResolver(index, i.groupCreator(eventID)), nil
}
