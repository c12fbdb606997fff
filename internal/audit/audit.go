package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mrlokans/eventadmin/internal/utils"
)

// Archiver writes import reports as JSON files, one per run. It keeps the
// complete error list, which the database copy truncates.
type Archiver struct {
	Dir string
	log *zap.Logger
}

func NewArchiver(dir string, log *zap.Logger) *Archiver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Archiver{Dir: dir, log: log}
}

// SaveJSON saves data as <name>.json inside Dir. The name is sanitized to a
// single path element; an empty name gets a random UUID.
func (a *Archiver) SaveJSON(name string, data any) (string, error) {
	if err := os.MkdirAll(a.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	if name == "" {
		name = uuid.NewString()
	}
	filename := utils.SanitizeFilename(name) + ".json"
	path := filepath.Join(a.Dir, filename)

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal data to JSON: %w", err)
	}

	if err := os.WriteFile(path, jsonData, 0o644); err != nil {
		return "", fmt.Errorf("failed to write archive file: %w", err)
	}

	a.log.Debug("archived import report", zap.String("path", path))
	return filename, nil
}
