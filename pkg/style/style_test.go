package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderFileStatus(t *testing.T) {
	line := RenderFileStatus(LabelClean, "data/a.txt")
	assert.Contains(t, line, "clean")
	assert.Contains(t, line, "data/a.txt")
}

func TestRenderFileStatusUnknownLabel(t *testing.T) {
	line := RenderFileStatus("whatever", "a.txt")
	assert.Contains(t, line, "whatever")
}

func TestRenderSummary(t *testing.T) {
	assert.Equal(t, "Summary: 2 clean, 1 modified, 0 missing", RenderSummary(2, 1, 0))
}
