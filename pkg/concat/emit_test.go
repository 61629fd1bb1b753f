package concat

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEmitterHeaderAndContent(t *testing.T) {
	root := writeTree(t, map[string]string{"a.txt": "hello"})

	var out bytes.Buffer
	e := NewEmitter(&out, false, zap.NewNop())

	ok, err := e.Emit(Entry{Path: filepath.Join(root, "a.txt"), RelPath: "a.txt"})
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, e.Flush())

	assert.Equal(t, "---- File Name: \"a.txt\" ----\nhello\n", out.String())
	assert.Equal(t, 1, e.Files())
	assert.Equal(t, int64(len("hello")+1), e.Bytes())
}

func TestEmitterNoHeader(t *testing.T) {
	root := writeTree(t, map[string]string{"a.txt": "hello"})

	var out bytes.Buffer
	e := NewEmitter(&out, true, zap.NewNop())

	_, err := e.Emit(Entry{Path: filepath.Join(root, "a.txt"), RelPath: "a.txt"})
	require.NoError(t, err)
	require.NoError(t, e.Flush())

	assert.Equal(t, "hello\n", out.String())
}

func TestEmitterHeaderQuotesPathVerbatim(t *testing.T) {
	root := writeTree(t, map[string]string{"sub/b.txt": "world"})

	var out bytes.Buffer
	e := NewEmitter(&out, false, zap.NewNop())

	_, err := e.Emit(Entry{Path: filepath.Join(root, "sub", "b.txt"), RelPath: "sub/b.txt"})
	require.NoError(t, err)
	require.NoError(t, e.Flush())

	assert.Equal(t, "---- File Name: \"sub/b.txt\" ----\nworld\n", out.String())
}

func TestEmitterReadFailureLeavesDanglingHeader(t *testing.T) {
	// A directory fails os.ReadFile, standing in for any per-file read error.
	root := writeTree(t, nil)
	require.NoError(t, os.Mkdir(filepath.Join(root, "dir"), 0755))

	var out bytes.Buffer
	e := NewEmitter(&out, false, zap.NewNop())

	ok, err := e.Emit(Entry{Path: filepath.Join(root, "dir"), RelPath: "dir"})
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, e.Flush())

	// The header was written before the read attempt and stays behind.
	assert.Equal(t, "---- File Name: \"dir\" ----\n", out.String())
	assert.Zero(t, e.Files())
}

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want string
	}{
		{
			name: "valid utf-8 passes through",
			raw:  []byte("héllo ✓"),
			want: "héllo ✓",
		},
		{
			name: "empty input",
			raw:  nil,
			want: "",
		},
		{
			name: "invalid byte becomes replacement rune",
			raw:  []byte{'a', 0xff, 'b'},
			want: "a�b",
		},
		{
			name: "truncated multibyte sequence",
			raw:  []byte{0xe2, 0x9c},
			want: "�",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeText(tt.raw))
		})
	}
}
