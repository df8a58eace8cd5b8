package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	p, err := ParsePath("2.1.3")
	require.NoError(t, err)
	assert.Equal(t, Path{1, 0, 2}, p)
	assert.Equal(t, "2.1.3", p.String())
}

func TestParsePath_TrimsWhitespace(t *testing.T) {
	p, err := ParsePath(" 1.2 ")
	require.NoError(t, err)
	assert.Equal(t, Path{0, 1}, p)
}

func TestParsePath_Invalid(t *testing.T) {
	for _, s := range []string{"", "1", "a.b", "1.0", "1.-2", "1..2"} {
		_, err := ParsePath(s)
		assert.Error(t, err, "input %q", s)
	}
}
