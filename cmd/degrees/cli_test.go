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

const smallDir = "../../testdata/small"

// execute runs one command tree with the given stdin and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestSearch_Flags(t *testing.T) {
	out, _, err := execute(t, "", smallDir, "--color", "never",
		"--source", "Tom Cruise", "--target", "tom hanks")
	require.NoError(t, err)

	want := "Loading data...\n" +
		"Data loaded.\n" +
		"2 degrees of separation.\n" +
		"1: Tom Cruise and Kevin Bacon starred in A Few Good Men\n" +
		"2: Kevin Bacon and Tom Hanks starred in Apollo 13\n"
	assert.Equal(t, want, out)
}

func TestSearch_Prompted(t *testing.T) {
	out, _, err := execute(t, "Emma Watson\nKevin Bacon\n", smallDir, "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, out, "Name: Name: Not connected.\n")
}

func TestSearch_SamePerson(t *testing.T) {
	out, _, err := execute(t, "", smallDir, "--color", "never", "-s", "Kevin Bacon", "-t", "Kevin Bacon")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "0 degrees of separation.\n"), out)
}

func TestSearch_PersonNotFound(t *testing.T) {
	_, errOut, err := execute(t, "Nobody\n", smallDir, "--color", "never", "--target", "Tom Hanks")
	assert.ErrorIs(t, err, errPersonNotFound)
	assert.Equal(t, "Person not found.\n", errOut)
}

func TestSearch_MaxDepth(t *testing.T) {
	out, _, err := execute(t, "", smallDir, "--color", "never", "--max-depth", "1",
		"--source", "Tom Cruise", "--target", "Tom Hanks")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "Not connected.\n"), out)
}

func TestSearch_Color(t *testing.T) {
	out, _, err := execute(t, "", smallDir, "--color", "always",
		"--source", "Kevin Bacon", "--target", "Tom Hanks")
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "Apollo 13")
}

func TestSearch_MetricsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "degrees.prom")
	_, _, err := execute(t, "", smallDir, "--color", "never", "--metrics-file", path,
		"--source", "Kevin Bacon", "--target", "Tom Hanks")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `degrees_searches_total{outcome="connected"} 1`)
	assert.Contains(t, string(data), `degrees_search_degrees_sum 1`)
	assert.Contains(t, string(data), `degrees_search_explored_people_count 1`)
	assert.NotContains(t, string(data), `degrees_search_explored_people_sum 0`)
}

func TestSearch_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "degrees.yaml")
	yml := "data_dir: " + smallDir + "\noutput:\n  color: never\nsearch:\n  max_depth: 1\n"
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

	out, _, err := execute(t, "", "--config", path, "-s", "Tom Cruise", "-t", "Tom Hanks")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "Not connected.\n"), out)

	// the flag wins over the file
	out, _, err = execute(t, "", "--config", path, "--max-depth", "0", "-s", "Tom Cruise", "-t", "Tom Hanks")
	require.NoError(t, err)
	assert.Contains(t, out, "2 degrees of separation.")
}

func TestSearch_Errors(t *testing.T) {
	_, _, err := execute(t, "", t.TempDir(), "-s", "a", "-t", "b")
	assert.Error(t, err)

	_, _, err = execute(t, "", smallDir, "--color", "sometimes")
	assert.Error(t, err)

	_, _, err = execute(t, "", "a", "b")
	assert.Error(t, err)
}

func TestStats(t *testing.T) {
	out, _, err := execute(t, "", "stats", smallDir, "--color", "never")
	require.NoError(t, err)

	for _, line := range []string{
		"People: 16\n",
		"Distinct names: 16\n",
		"Movies: 5\n",
		"Credits: 20\n",
		"Skipped credits: 0\n",
	} {
		assert.Contains(t, out, line)
	}
}

func TestLogging_Debug(t *testing.T) {
	_, errOut, err := execute(t, "", smallDir, "--color", "never", "--log-level", "debug",
		"-s", "Kevin Bacon", "-t", "Tom Hanks")
	require.NoError(t, err)
	assert.Contains(t, errOut, "msg=\"dataset loaded\"")
	assert.Contains(t, errOut, "msg=\"search finished\"")
}
