package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/bagwalk/internal/config"
)

func writeHCL(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_SingleFile(t *testing.T) {
	// --- Arrange ---
	dir := t.TempDir()
	path := writeHCL(t, dir, "run.hcl", `
puzzle "day7" {
  input        = "input/day7"
  target       = upper(defaults.target)
  workers      = 4
  check_cycles = true
}

puzzle "sample" {
  input = "/abs/sample.txt"
}
`)

	// --- Act ---
	model, err := NewLoader().Load(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, model.Puzzles, 2)

	assert.Equal(t, &config.Puzzle{
		Name:        "day7",
		Input:       filepath.Join(dir, "input", "day7"),
		Target:      "SHINY GOLD",
		Workers:     4,
		CheckCycles: true,
	}, model.Puzzles[0])

	assert.Equal(t, &config.Puzzle{
		Name:   "sample",
		Input:  "/abs/sample.txt",
		Target: config.DefaultTarget,
	}, model.Puzzles[1], "omitted attributes fall back to defaults")
}

func TestLoad_Functions(t *testing.T) {
	dir := t.TempDir()
	path := writeHCL(t, dir, "run.hcl", `
puzzle "fmt" {
  input   = format("input/day%d", 7)
  target  = lower(trimspace("  Dim Tan  "))
  workers = defaults.workers
}
`)

	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, model.Puzzles, 1)

	p := model.Puzzles[0]
	assert.Equal(t, filepath.Join(dir, "input", "day7"), p.Input)
	assert.Equal(t, "dim tan", p.Target)
	assert.Equal(t, 1, p.Workers)
}

func TestLoad_Directory(t *testing.T) {
	dir := t.TempDir()
	writeHCL(t, dir, "a.hcl", `puzzle "a" { input = "a.txt" }`)
	writeHCL(t, dir, "b.hcl", `puzzle "b" { input = "b.txt" }`)
	writeHCL(t, dir, "notes.txt", `not hcl at all {`)

	model, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, model.Puzzles, 2)
	assert.Equal(t, "a", model.Puzzles[0].Name)
	assert.Equal(t, "b", model.Puzzles[1].Name)
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "syntax error", content: `puzzle "a" { input = `, wantErr: "failed to parse HCL file"},
		{name: "missing input", content: `puzzle "a" { target = "x" }`, wantErr: "failed to decode HCL file"},
		{name: "unknown variable", content: `puzzle "a" { input = nope.value }`, wantErr: "failed to decode HCL file"},
		{name: "wrong type", content: `puzzle "a" {
  input   = "x"
  workers = "many"
}`, wantErr: "failed to decode HCL file"},
		{name: "duplicate names", content: `puzzle "a" { input = "x" }
puzzle "a" { input = "y" }`, wantErr: "defined more than once"},
		{name: "no puzzles", content: ``, wantErr: "no puzzles defined"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeHCL(t, t.TempDir(), "run.hcl", tc.content)
			_, err := NewLoader().Load(context.Background(), path)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestLoad_MissingPath(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "absent.hcl"))
	assert.ErrorContains(t, err, "error accessing path")
}
