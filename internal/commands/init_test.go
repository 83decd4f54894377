package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/audiper-dev/audiper/internal/commands"
)

// runAudiper executes the CLI in-process and returns stdout and stderr.
func runAudiper(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := commands.NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestInit_CreatesStructure(t *testing.T) {
	dir := t.TempDir()
	out, _, err := runAudiper(t, "init", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized audiper project")

	expectedDirs := []string{
		"inbox",
		filepath.Join("inbox", "processed"),
		"reports",
		"logs",
	}
	for _, d := range expectedDirs {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir(), "%s should be a directory", d)
	}
}

func TestInit_Config(t *testing.T) {
	dir := t.TempDir()
	_, _, err := runAudiper(t, "init", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "audiper.yaml"))
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "contra_keywords:")
	assert.Contains(t, contents, "inbox: inbox")
	assert.Contains(t, contents, "audit_log: logs/audit-log.csv")
}

func TestInit_Gitignore(t *testing.T) {
	dir := t.TempDir()
	_, _, err := runAudiper(t, "init", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	contents := string(data)

	for _, pattern := range []string{"inbox/", "reports/", "logs/", ".env"} {
		assert.Contains(t, contents, pattern, ".gitignore should contain %s", pattern)
	}
}

func TestInit_RefusesExistingProject(t *testing.T) {
	dir := t.TempDir()
	_, _, err := runAudiper(t, "init", dir)
	require.NoError(t, err)

	_, _, err = runAudiper(t, "init", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInit_WithDemo(t *testing.T) {
	dir := t.TempDir()
	_, _, err := runAudiper(t, "init", dir, "--with-demo")
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(dir, "inbox", "demo.txt"))
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
