package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func execute(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestDecode(t *testing.T) {
	path := writeFile(t, "doc", "Barack B-PER\nObama I-PER\nvisited O\n\nParis B-LOC\nrocks X-LOC\n")

	code, stdout, stderr := execute("decode", path)
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "sentence 1:\n  [Barack Obama] PER\nsentence 2:\n  [Paris] LOC\n", stdout)
	assert.Contains(t, stderr, path+":6: invalid label")

	code, stdout, _ = execute("decode", "--all", path)
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "  [visited] None\n")
}

func TestDecode_MissingFile(t *testing.T) {
	code, stdout, stderr := execute("decode", filepath.Join(t.TempDir(), "nope"))
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "error:")
}

func TestAlign(t *testing.T) {
	gold := writeFile(t, "gold", "Barack B-PER\nObama I-PER\nvisited O\nthe B-LOC\nParis I-LOC\n")
	system := writeFile(t, "system", "Barack B-ORG\nObama I-ORG\nvisited O\nthe O\nParis B-LOC\n")

	code, stdout, stderr := execute("align", gold, system)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "type-error [Barack Obama] ORG <> [Barack Obama] PER")
	assert.Contains(t, stdout, "correct    [Paris] LOC <> [the Paris] LOC")
	assert.NotContains(t, stdout, "None")

	code, stdout, _ = execute("align", "--keep-determiner", gold, system)
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "wrong      [Paris] LOC <> [the Paris] LOC")
}

func TestScore(t *testing.T) {
	doc := "Barack B-PER\nObama I-PER\nvisited O\nParis B-LOC\n"
	gold := writeFile(t, "gold", doc)
	system := writeFile(t, "system", doc)

	code, stdout, stderr := execute("score", gold, system)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Number of docs: 1\n")
	assert.Contains(t, stdout, "F1: 1.0000\n")

	code, stdout, _ = execute("score", "-f", "table", gold, system)
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "Documents: 1")
}

func TestScore_Errors(t *testing.T) {
	gold := writeFile(t, "gold", "Paris B-LOC\n")

	code, _, stderr := execute("score", "-f", "xml", gold, gold)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "error:")

	code, _, _ = execute("score", gold)
	assert.Equal(t, 1, code)
}
