package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bst.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 15, cfg.Preset[0])
	assert.Len(t, cfg.Preset, 25)
	assert.Equal(t, "graph", cfg.OutputDir)
	assert.Equal(t, "dot", cfg.DotBinary)
	assert.True(t, cfg.Render)
	assert.Equal(t, "tree", cfg.GraphName)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
preset: [8, 4, 12]
output_dir: /tmp/graphs
render: false
`)

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, []int{8, 4, 12}, cfg.Preset)
	assert.Equal(t, "/tmp/graphs", cfg.OutputDir)
	assert.False(t, cfg.Render)
	assert.Equal(t, "dot", cfg.DotBinary)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		scenario string
		content  string
	}{
		{scenario: "duplicate preset keys", content: "preset: [1, 2, 1]\n"},
		{scenario: "empty preset", content: "preset: []\n"},
		{scenario: "malformed yaml", content: "preset: [1, 2\n"},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, test.content))
			assert.Error(t, err)
		})
	}

	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestBuildTree(t *testing.T) {
	tree, err := buildTree([]int{15, 5, 18, 5, 3})
	require.NoError(t, err)
	assert.Equal(t, 4, tree.Len())
	assert.Equal(t, 15, tree.Key(tree.Root()))

	_, err = buildTree(nil)
	assert.ErrorIs(t, err, errNoKeys)
}

func TestConfigFlagOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, "preset: [2, 1, 3]\noutput_dir: elsewhere\n")

	_, err := runApp(t, "", "--config", path, "--output-dir", dir, "--no-render", "export")
	require.NoError(t, err)

	b, err := os.ReadFile(filepath.Join(dir, "bst_graph.dot"))
	require.NoError(t, err)
	assert.Equal(t, "graph tree{\n\t2--1;\n\t2--3;\n}", string(b))
}
