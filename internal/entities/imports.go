package entities

import (
	"strings"
	"time"
)

// ImportKind names one importable entity kind.
type ImportKind string

const (
	ImportKindSpeakers   ImportKind = "speakers"
	ImportKindSessions   ImportKind = "sessions"
	ImportKindExhibitors ImportKind = "exhibitors"
	ImportKindSponsors   ImportKind = "sponsors"
	ImportKindGroups     ImportKind = "groups"
	ImportKindAttendees  ImportKind = "attendees"
)

// ImportKinds lists every supported kind in display order.
var ImportKinds = []ImportKind{
	ImportKindSpeakers,
	ImportKindSessions,
	ImportKindExhibitors,
	ImportKindSponsors,
	ImportKindGroups,
	ImportKindAttendees,
}

// ParseImportKind accepts singular and plural spellings ("speaker", "Speakers").
func ParseImportKind(s string) (ImportKind, bool) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for _, k := range ImportKinds {
		if normalized == string(k) || normalized+"s" == string(k) {
			return k, true
		}
	}
	return "", false
}

type ImportStatus string

const (
	ImportStatusQueued    ImportStatus = "queued"
	ImportStatusRunning   ImportStatus = "running"
	ImportStatusCompleted ImportStatus = "completed"
	ImportStatusFailed    ImportStatus = "failed"
)

// ImportSession records one bulk import run. Errors holds a JSON array of
// the first few error messages; ErrorCount is the full count.
type ImportSession struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	RunID       string       `gorm:"size:36;uniqueIndex" json:"run_id"`
	EventID     uint         `gorm:"not null;index" json:"event_id"`
	Kind        ImportKind   `gorm:"size:20;not null" json:"kind"`
	FileName    string       `gorm:"size:255" json:"file_name"`
	Status      ImportStatus `gorm:"size:20;not null;index" json:"status"`
	RowCount    int          `json:"row_count"`
	Created     int          `json:"created"`
	ErrorCount  int          `json:"error_count"`
	Errors      string       `gorm:"type:text" json:"-"`
	TaskID      string       `gorm:"size:64" json:"task_id,omitempty"`
	StartedAt   time.Time    `json:"started_at"`
	CompletedAt *time.Time   `json:"completed_at,omitempty"`
}

func (ImportSession) TableName() string {
	return "import_sessions"
}
