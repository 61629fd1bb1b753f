package concat

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRenderTree(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.txt":     "hello",
		"sub/b.txt": "world",
	})

	filter, err := NewFilter(nil, nil)
	require.NoError(t, err)

	got, err := RenderTree([]string{root}, filter, zap.NewNop())
	require.NoError(t, err)

	want := root + "/\n" +
		"├── sub/\n" +
		"│   └── b.txt\n" +
		"└── a.txt\n"
	assert.Equal(t, want, got)
}

func TestRenderTreeAppliesFilter(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.txt":    "hello",
		"notes.md": "scratch",
	})

	filter, err := NewFilter([]string{`\.txt$`}, nil)
	require.NoError(t, err)

	got, err := RenderTree([]string{root}, filter, zap.NewNop())
	require.NoError(t, err)

	assert.Contains(t, got, "a.txt")
	assert.NotContains(t, got, "notes.md")
}

func TestRenderTreeSkipsMissingRoot(t *testing.T) {
	filter, err := NewFilter(nil, nil)
	require.NoError(t, err)

	got, err := RenderTree([]string{filepath.Join(t.TempDir(), "gone")}, filter, zap.NewNop())
	require.NoError(t, err)
	assert.Empty(t, got)
}
