package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const obamaParis = "Barack B-PER\nObama I-PER\nvisited O\nParis B-LOC\n"

func setupDirs(t *testing.T, system, gold map[string]string) (string, string) {
	t.Helper()
	root := t.TempDir()
	sysDir, goldDir := filepath.Join(root, "out"), filepath.Join(root, "gold")
	for dir, files := range map[string]map[string]string{sysDir: system, goldDir: gold} {
		require.NoError(t, os.MkdirAll(dir, 0755))
		for name, content := range files {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
		}
	}
	return sysDir, goldDir
}

func execute(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_WrongArgCount(t *testing.T) {
	for _, args := range [][]string{nil, {"only-one"}, {"a", "b", "c"}} {
		code, stdout, _ := execute(args...)
		assert.NotEqual(t, 0, code, "args %v", args)
		assert.Contains(t, stdout, "Usage:", "args %v", args)
		assert.Contains(t, stdout, "<system-output-dir> <gold-standard-dir>")
	}
}

func TestRun_UnknownFlag(t *testing.T) {
	code, stdout, _ := execute("--bogus", "a", "b")
	assert.NotEqual(t, 0, code)
	assert.Contains(t, stdout, "Usage:")
}

func TestRun_TextReport(t *testing.T) {
	sysDir, goldDir := setupDirs(t,
		map[string]string{"doc1": obamaParis},
		map[string]string{"doc1": obamaParis},
	)

	code, stdout, stderr := execute(sysDir, goldDir)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Number of docs: 1\n")
	assert.Contains(t, stdout, "Number of correct: 2\n")
	assert.Contains(t, stdout, "Type: LOC\n")
	assert.Contains(t, stdout, "Type: PER\n")
	assert.Contains(t, stdout, "F1: 1.0000\n")
}

func TestRun_DiagnosticsOnStderr(t *testing.T) {
	sysDir, goldDir := setupDirs(t,
		map[string]string{"doc1": "Barack B-PER\nObama U-PER\n"},
		map[string]string{"doc1": obamaParis},
	)

	code, stdout, stderr := execute(sysDir, goldDir)
	require.Equal(t, 0, code)
	assert.Contains(t, stderr, filepath.Join(sysDir, "doc1")+":2: invalid label")
	assert.NotContains(t, stdout, "invalid label")
}

func TestRun_MissingGold(t *testing.T) {
	sysDir, goldDir := setupDirs(t,
		map[string]string{"doc1": obamaParis, "doc2": obamaParis},
		map[string]string{"doc1": obamaParis},
	)

	code, stdout, stderr := execute(sysDir, goldDir)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "gold file not found")

	code, stdout, stderr = execute("--skip-missing", sysDir, goldDir)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Number of docs: 1\n")
	assert.Contains(t, stderr, "skipped")
}

func TestRun_JSONFromConfigFile(t *testing.T) {
	sysDir, goldDir := setupDirs(t,
		map[string]string{"doc1": obamaParis},
		map[string]string{"doc1": obamaParis},
	)
	cfgPath := filepath.Join(t.TempDir(), "nerscore.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("format = \"json\"\n"), 0644))

	code, stdout, stderr := execute("--config", cfgPath, sysDir, goldDir)
	require.Equal(t, 0, code, stderr)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, 1.0, got["docs"])

	code, stdout, stderr = execute("--config", cfgPath, "--format", "table", sysDir, goldDir)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Documents: 1")
}

func TestRun_BadConfig(t *testing.T) {
	sysDir, goldDir := setupDirs(t, nil, nil)
	code, _, stderr := execute("--format", "xml", sysDir, goldDir)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "invalid config")
}

func TestRun_MissingSystemDir(t *testing.T) {
	_, goldDir := setupDirs(t, nil, nil)
	code, stdout, stderr := execute(filepath.Join(goldDir, "nope"), goldDir)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "error:")
}
