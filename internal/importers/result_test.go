package importers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_Summary(t *testing.T) {
	r := Result{Errors: []string{"a", "b", "c", "d", "e"}}

	assert.Equal(t, []string{"a", "b", "…and 3 more"}, r.Summary(2))
	assert.Equal(t, r.Errors, r.Summary(5))
	assert.Equal(t, r.Errors, r.Summary(0))
}

func TestResult_HasErrors(t *testing.T) {
	assert.False(t, newResult().HasErrors())

	r := newResult()
	r.addError("Row %d: broken", 2)
	assert.True(t, r.HasErrors())
	assert.Equal(t, []string{"Row 2: broken"}, r.Errors)
}
