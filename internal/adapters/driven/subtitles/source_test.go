package subtitles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petzku/qc2md/internal/core/domain"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// TestLoad_ASS dispatches on the .ass extension
func TestLoad_ASS(t *testing.T) {
	path := writeFile(t, "ep01.ass", sampleASS)

	lines, err := New().Load(path)
	require.NoError(t, err)
	assert.Len(t, lines, 3)
}

// TestLoad_SRT dispatches on the .srt extension
func TestLoad_SRT(t *testing.T) {
	path := writeFile(t, "ep01.srt", sampleSRT)

	lines, err := New().Load(path)
	require.NoError(t, err)
	assert.Len(t, lines, 2)
}

// TestLoad_BOM strips a UTF-8 byte order mark before parsing
func TestLoad_BOM(t *testing.T) {
	path := writeFile(t, "ep01.ass", "\ufeff"+sampleASS)

	lines, err := New().Load(path)
	require.NoError(t, err)
	assert.Len(t, lines, 3)
}

// TestLoad_UnsupportedExtension is an error
func TestLoad_UnsupportedExtension(t *testing.T) {
	path := writeFile(t, "ep01.sub", "whatever")

	_, err := New().Load(path)
	assert.ErrorIs(t, err, domain.ErrUnsupportedSubtitle)
}

// TestLoad_MissingFile is an error the caller treats as degraded data
func TestLoad_MissingFile(t *testing.T) {
	_, err := New().Load(filepath.Join(t.TempDir(), "missing.ass"))
	assert.Error(t, err)
}
