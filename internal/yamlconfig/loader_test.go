package yamlconfig

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/bagwalk/internal/config"
)

func writeYAML(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, "run.yaml", `
puzzles:
  - name: day7
    input: input/day7
    workers: 3
    check_cycles: true
  - name: sample
    input: /abs/sample
    target: dim tan
`)

	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []*config.Puzzle{
		{Name: "day7", Input: filepath.Join(dir, "input", "day7"), Target: config.DefaultTarget, Workers: 3, CheckCycles: true},
		{Name: "sample", Input: "/abs/sample", Target: "dim tan"},
	}, model.Puzzles)
}

func TestLoad_DirectoryWithBothExtensions(t *testing.T) {
	dir := t.TempDir()
	writeYAML(t, dir, "a.yaml", "puzzles:\n  - {name: a, input: a.txt}\n")
	writeYAML(t, dir, "b.yml", "puzzles:\n  - {name: b, input: b.txt}\n")
	writeYAML(t, dir, "c.hcl", `puzzle "c" { input = "c.txt" }`)

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
		{name: "unknown key", content: "puzzles:\n  - {name: a, input: x, colour: red}\n", wantErr: "failed to decode YAML file"},
		{name: "bad type", content: "puzzles:\n  - {name: a, input: x, workers: lots}\n", wantErr: "failed to decode YAML file"},
		{name: "empty file", content: "", wantErr: "no puzzles defined"},
		{name: "missing input", content: "puzzles:\n  - {name: a}\n", wantErr: "input is required"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeYAML(t, t.TempDir(), "run.yaml", tc.content)
			_, err := NewLoader().Load(context.Background(), path)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}
