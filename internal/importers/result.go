package importers

import "fmt"

// NoRowsMessage is the single error reported for a file without data rows.
const NoRowsMessage = "No valid rows found in CSV"

// Result is the outcome of one import call. Created counts persisted main
// entities only; Errors is in file order. A row may be created and still
// contribute reference errors, so Created+len(Errors) need not equal Rows.
type Result struct {
	Rows    int      `json:"rows"`
	Created int      `json:"created"`
	Errors  []string `json:"errors"`
}

func newResult() Result {
	return Result{Errors: []string{}}
}

func (r *Result) addError(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// HasErrors reports whether any row or reference failed.
func (r Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// Summary returns at most max errors, followed by "…and K more" when the
// list was truncated. A non-positive max returns every error.
func (r Result) Summary(max int) []string {
	if max <= 0 || len(r.Errors) <= max {
		return r.Errors
	}
	summary := make([]string, 0, max+1)
	summary = append(summary, r.Errors[:max]...)
	return append(summary, fmt.Sprintf("…and %d more", len(r.Errors)-max))
}
