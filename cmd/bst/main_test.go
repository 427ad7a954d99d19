package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app := newApp()
	app.Reader = strings.NewReader(input)
	app.Writer = &out
	app.ErrWriter = io.Discard

	err := app.Run(append([]string{"bst"}, args...))
	return out.String(), err
}

func TestInteractivePreset(t *testing.T) {
	out, err := runApp(t, "1\n3\n15\n3\n25\n4\n5\n6\n8\n")
	require.NoError(t, err)

	assert.Contains(t, out, "The successor of node 15 is 16")
	assert.Contains(t, out, "The node 25 holds the maximum key, it has no successor")
	assert.Contains(t, out, "The root node of the tree is 15")
	assert.Contains(t, out, "The minimum node of the tree is 1")
	assert.Contains(t, out, "The maximum node of the tree is 25")
	assert.True(t, strings.HasSuffix(out, "Exited\n"))
}

func TestInteractiveCustomTree(t *testing.T) {
	input := strings.Join([]string{
		"2", "10",
		"1", "5",
		"1", "5",
		"2", "10",
		"4",
		"2", "99",
		"3", "42",
		"8",
	}, "\n") + "\n"

	out, err := runApp(t, input, "interactive")
	require.NoError(t, err)

	assert.Contains(t, out, "The tree root with value 10 is created successfully")
	assert.Contains(t, out, "The node 5 has been inserted")
	assert.Contains(t, out, "Unable to insert the key value of 5")
	assert.Contains(t, out, "The node 10 has been deleted")
	assert.Contains(t, out, "The root node of the tree is 5")
	assert.Contains(t, out, "Node with key of 99 does not exist, nothing was deleted")
	assert.Contains(t, out, "Node with key of 42 does not exist, failed to get successor")
}

func TestInteractiveEmptyTree(t *testing.T) {
	out, err := runApp(t, "2\n10\n2\n10\n4\n1\n7\n4\n8\n")
	require.NoError(t, err)

	assert.Contains(t, out, "The tree is empty")
	assert.Contains(t, out, "The node 7 has been inserted")
	assert.Contains(t, out, "The root node of the tree is 7")
}

func TestInteractiveInvalidInput(t *testing.T) {
	out, err := runApp(t, "abc\n9\n3\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Invalid input, please type a number")
	assert.Contains(t, out, "there's no option number 9")
	assert.True(t, strings.HasSuffix(out, "Exited\n"))
}

func TestInteractiveEndOfInput(t *testing.T) {
	out, err := runApp(t, "1\n")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "Exited\n"))
}

func TestInteractiveSaveGraph(t *testing.T) {
	dir := t.TempDir()

	out, err := runApp(t, "2\n15\n1\n5\n7\nBad.dot\nexample\nexample.dot\n8\n",
		"--output-dir", dir, "--no-render")
	require.NoError(t, err)

	assert.Contains(t, out, "Use only lowercase letters, numbers, and underscores")
	assert.Contains(t, out, "Filename must end with .dot")

	b, err := os.ReadFile(filepath.Join(dir, "example.dot"))
	require.NoError(t, err)
	assert.Equal(t, "graph tree{\n\t15--5;\n}", string(b))
}

func TestInteractiveSaveGraphRenderFailure(t *testing.T) {
	dir := t.TempDir()

	out, err := runApp(t, "1\n7\nexample.dot\n8\n",
		"--output-dir", dir, "--dot-binary", filepath.Join(dir, "no-such-dot"))
	require.NoError(t, err)

	assert.Contains(t, out, "The graph has been written to")
	assert.Contains(t, out, "Failed to execute Graphviz")
	assert.FileExists(t, filepath.Join(dir, "example.dot"))
}

func TestExport(t *testing.T) {
	dir := t.TempDir()

	out, err := runApp(t, "", "--output-dir", dir, "--no-render",
		"export", "--keys", "15,5,18", "--delete", "15", "--out", "small.dot")
	require.NoError(t, err)
	assert.Contains(t, out, "graph written to")

	b, err := os.ReadFile(filepath.Join(dir, "small.dot"))
	require.NoError(t, err)
	assert.Equal(t, "graph tree{\n\t18--5;\n}", string(b))
}

func TestExportInvalidFilename(t *testing.T) {
	_, err := runApp(t, "", "--output-dir", t.TempDir(), "export", "--out", "Graph.png")
	assert.Error(t, err)
}

func TestInspect(t *testing.T) {
	out, err := runApp(t, "", "inspect", "--keys", "15,5,18,3,7,17,20", "--delete", "15")
	require.NoError(t, err)

	lower := strings.ToLower(out)
	assert.Contains(t, lower, "nodes")
	assert.Contains(t, lower, "summary")
	assert.Contains(t, lower, "sibling")
	assert.Contains(t, lower, "successor")

	summary := map[string]string{
		"Root":           "17",
		"Minimum":        "3",
		"Maximum":        "20",
		"Height":         "2",
		"Nodes":          "6",
		"Inserts":        "7",
		"Deletes":        "1",
		"Missed deletes": "0",
		"Lookups":        "6",
		"Hits":           "0",
	}
	for label, want := range summary {
		assert.Equal(t, []string{label, want}, tableRow(out, label), label)
	}

	assert.Equal(t, []string{"17", "-", "5", "18", "-", "18"}, tableRow(out, "17"))
	assert.Equal(t, []string{"5", "17", "3", "7", "18", "7"}, tableRow(out, "5"))
	assert.Equal(t, []string{"20", "18", "-", "-", "-", "-"}, tableRow(out, "20"))
}

// tableRow returns the cells of the first table row of out whose first cell is
// first, or nil if there is none.
func tableRow(out, first string) []string {
	for _, line := range strings.Split(out, "\n") {
		var cells []string
		for _, c := range strings.Split(line, "│") {
			if c = strings.TrimSpace(c); c != "" {
				cells = append(cells, c)
			}
		}
		if len(cells) > 1 && cells[0] == first {
			return cells
		}
	}
	return nil
}
