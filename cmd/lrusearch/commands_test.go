package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer

	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestQueryPrintsHighlightedResults(t *testing.T) {
	out, _, err := run(t, "", "query", "redux saga")
	require.NoError(t, err)

	assert.Contains(t, out, "> redux saga")
	assert.Contains(t, out, " 44  **Redux Saga**")
	assert.Contains(t, out, `cached terms (oldest first): ["redux saga"]`)
}

func TestQueryNoResults(t *testing.T) {
	out, _, err := run(t, "", "query", "cobol")
	require.NoError(t, err)
	assert.Contains(t, out, "no results found")
}

func TestQuerySharesNormalizedEntries(t *testing.T) {
	out, errOut, err := run(t, "", "--log-level", "debug", "query", "React", "react", "REACT")
	require.NoError(t, err)

	assert.Contains(t, out, `cached terms (oldest first): ["react"]`)
	assert.Equal(t, 1, strings.Count(errOut, "cached new results"))
	assert.Equal(t, 2, strings.Count(errOut, "using cached results"))
}

func TestQueryEvictsWithCapacityFlag(t *testing.T) {
	out, errOut, err := run(t, "", "--capacity", "2", "--log-level", "debug", "query", "redux", "node", "redux", "tailwind")
	require.NoError(t, err)

	assert.Contains(t, out, `cached terms (oldest first): ["redux", "tailwind"]`)
	assert.Contains(t, errOut, "evicted least recently used entry")
}

func TestQueryRequiresTerm(t *testing.T) {
	_, _, err := run(t, "", "query")
	assert.Error(t, err)
}

func TestRejectsZeroCapacity(t *testing.T) {
	_, _, err := run(t, "", "--capacity", "0", "query", "react")
	assert.ErrorContains(t, err, "capacity must be positive")
}

func TestConfigFileAndFlagOverride(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "items.json")
	require.NoError(t, os.WriteFile(data, []byte(`[{"id":1,"name":"Go Generics"},{"id":2,"name":"Go Modules"},{"id":3,"name":"Rust Traits"}]`), 0o644))

	cfgPath := filepath.Join(dir, "lrusearch.toml")
	cfg := "capacity = 1\ndata_file = \"" + filepath.ToSlash(data) + "\"\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	out, _, err := run(t, "", "--config", cfgPath, "query", "go", "rust")
	require.NoError(t, err)
	assert.Contains(t, out, "  1  **Go** Generics")
	assert.Contains(t, out, "  3  **Rust** Traits")
	assert.Contains(t, out, `cached terms (oldest first): ["rust"]`)

	out, _, err = run(t, "", "--config", cfgPath, "--capacity", "5", "query", "go", "rust")
	require.NoError(t, err)
	assert.Contains(t, out, `cached terms (oldest first): ["go", "rust"]`)
}

func TestMissingDataFile(t *testing.T) {
	_, _, err := run(t, "", "--data", filepath.Join(t.TempDir(), "nope.json"), "query", "go")
	assert.ErrorContains(t, err, "open data file")
}

func TestRepl(t *testing.T) {
	input := strings.Join([]string{
		"tutorial",
		"",
		"Tutorial",
		":keys",
		":stats",
		":clear",
		":keys",
		":quit",
		"react",
	}, "\n")

	out, _, err := run(t, input, "repl")
	require.NoError(t, err)

	assert.Contains(t, out, "  6  React **Tutorial**")
	assert.Contains(t, out, `cached terms (oldest first): ["tutorial"]`)
	assert.Contains(t, out, "size 1/10, hits 1, misses 1, evictions 0, hit rate 50%")
	assert.Contains(t, out, "cache cleared")
	assert.Contains(t, out, "cached terms (oldest first): []")
	assert.NotContains(t, out, "React Query", "input after :quit must be ignored")
}

func TestReplAcceptsLongLines(t *testing.T) {
	long := strings.Repeat("x", 200*1024)
	out, _, err := run(t, long+"\nredux saga\n", "repl")
	require.NoError(t, err)
	assert.Contains(t, out, "no results found")
	assert.Contains(t, out, " 44  **Redux Saga**")
}

func TestReplRejectsOversizedLine(t *testing.T) {
	_, _, err := run(t, strings.Repeat("x", maxLineBytes+1)+"\n", "repl")
	assert.ErrorContains(t, err, "read input")
}

func TestReplEndOfInput(t *testing.T) {
	out, _, err := run(t, "redux thunk\n", "repl")
	require.NoError(t, err)
	assert.Contains(t, out, " 43  **Redux Thunk**")
}
