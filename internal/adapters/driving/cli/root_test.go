package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleReport = `[FILE]
date      : 2024-05-12 20:31:04
generator : mpvQC 0.8.0
nick      : petzku
path      : /mnt/media/release/Show - 03 [1080p].mkv

[DATA]
[00:02:18] [Phrasing] this reads awkwardly
[00:04:01] [Timing] scene bleed
# total lines: 2
`

// resetFlags restores the package-level flag state between runs. The
// command object is shared, so tests must not leak values into each other.
func resetFlags(t *testing.T) {
	t.Helper()
	refsFlag = false
	chronoFlag = false
	dialogueFlag = ""
	refFormatFlag = "full"
	pickRefsFlag = true
	verboseFlag = false
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
}

// TestRootCommand_Flags registers every flag with its default
func TestRootCommand_Flags(t *testing.T) {
	flags := rootCmd.Flags()

	for _, tc := range []struct {
		name     string
		fallback string
	}{
		{"refs", "false"},
		{"chrono", "false"},
		{"dialogue", ""},
		{"ref-format", "full"},
		{"pick-refs", "true"},
		{"verbose", "false"},
	} {
		f := flags.Lookup(tc.name)
		require.NotNil(t, f, tc.name)
		assert.Equal(t, tc.fallback, f.DefValue, tc.name)
	}
}

// TestExecute_WritesMarkdown converts a report end to end
func TestExecute_WritesMarkdown(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	resetFlags(t)

	dir := t.TempDir()
	reportPath := filepath.Join(dir, "Show - 03.txt")
	require.NoError(t, os.WriteFile(reportPath, []byte(sampleReport), 0644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{reportPath})

	require.NoError(t, rootCmd.Execute())

	outPath := filepath.Join(dir, "Show - 03.md")
	assert.Contains(t, out.String(), outPath)

	document, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(document), "Using artifact `Show - 03 [1080p].mkv`")
	assert.Contains(t, string(document), "## Phrasing")
	assert.Contains(t, string(document), "- [ ] [`00:02:18`]: this reads awkwardly")
}

// TestExecute_BadRefFormat rejects unknown formats
func TestExecute_BadRefFormat(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	resetFlags(t)

	dir := t.TempDir()
	reportPath := filepath.Join(dir, "report.txt")
	require.NoError(t, os.WriteFile(reportPath, []byte(sampleReport), 0644))

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"--ref-format", "fancy", reportPath})

	assert.Error(t, rootCmd.Execute())
}

// TestExecute_MissingReport surfaces the loader error
func TestExecute_MissingReport(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	resetFlags(t)

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.txt")})

	assert.Error(t, rootCmd.Execute())
}

// TestExecute_ConfigDefaults applies saved defaults when flags are unset
func TestExecute_ConfigDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	resetFlags(t)

	confDir := filepath.Join(home, ".qc2md")
	require.NoError(t, os.MkdirAll(confDir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(confDir, "config.toml"), []byte("chrono = true\n"), 0600))

	dir := t.TempDir()
	reportPath := filepath.Join(dir, "report.txt")
	require.NoError(t, os.WriteFile(reportPath, []byte(sampleReport), 0644))

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetArgs([]string{reportPath})

	require.NoError(t, rootCmd.Execute())

	document, err := os.ReadFile(filepath.Join(dir, "report.md"))
	require.NoError(t, err)
	// Phrasing collapses into the shared group; Timing stays standalone.
	assert.Contains(t, string(document), "## Script")
	assert.Contains(t, string(document), "- [ ] [`00:02:18` - **Phrasing**]: this reads awkwardly")
	assert.Contains(t, string(document), "## Timing")
}
