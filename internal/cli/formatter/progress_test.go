package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgress_Bounds(t *testing.T) {
	full := RenderProgress(1.0, 10)
	assert.Contains(t, full, strings.Repeat(filledBlock, 10))
	assert.Contains(t, full, "100%")

	zero := RenderProgress(0, 10)
	assert.Contains(t, zero, strings.Repeat(emptyBlock, 10))
	assert.Contains(t, zero, "0%")

	// Out-of-range inputs are clamped rather than panicking.
	assert.Contains(t, RenderProgress(1.7, 10), "100%")
	assert.Contains(t, RenderProgress(-0.5, 10), "0%")
}

func TestRenderProgress_Partial(t *testing.T) {
	out := RenderProgress(0.5, 10)
	assert.Contains(t, out, strings.Repeat(filledBlock, 5)+strings.Repeat(emptyBlock, 5))
	assert.Contains(t, out, " 50%")
}

func TestFormatCount_ZeroTotal(t *testing.T) {
	assert.Contains(t, FormatCount(0, 0), "0/0")
}
