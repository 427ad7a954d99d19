// Package graphviz exports search trees to the DOT graph description language
// and renders them with the Graphviz tools.
package graphviz

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const (
	// DefaultGraphName is the name given to graphs when none is configured.
	DefaultGraphName = "tree"

	// DefaultBinary is the Graphviz program used to render graphs.
	DefaultBinary = "dot"
)

var (
	ErrEmptyFilename = errors.New("filename cannot be empty")
	ErrExtension     = errors.New("filename must end with .dot")
	ErrSpaces        = errors.New("use underscores instead of spaces")
	ErrCharset       = errors.New("use only lowercase letters, numbers, and underscores")
)

// Walker is implemented by trees which can present their parent--child
// relationships. bst.Tree satisfies this interface.
type Walker[K any] interface {
	Walk(func(parent, child K) bool)
}

// Write writes the undirected graph of t to w. Each parent--child relationship
// of the tree is written on its own line, in the order that t presents them.
func Write[K any](w io.Writer, name string, t Walker[K]) error {
	if name == "" {
		name = DefaultGraphName
	}

	b := bufio.NewWriter(w)
	fmt.Fprintf(b, "graph %s{\n", name)
	t.Walk(func(parent, child K) bool {
		fmt.Fprintf(b, "\t%v--%v;\n", parent, child)
		return true
	})
	b.WriteString("}")
	return b.Flush()
}

// WriteFile writes the graph of t to the file at path, creating the parent
// directories if they do not exist.
func WriteFile[K any](path, name string, t Walker[K]) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := Write(f, name, t); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// ValidateFilename checks that name is acceptable as the name of a graph file:
// it must end with .dot and only contain lowercase ASCII letters, digits,
// underscores and dots.
func ValidateFilename(name string) error {
	switch {
	case name == "":
		return ErrEmptyFilename
	case !strings.HasSuffix(name, ".dot"):
		return ErrExtension
	case strings.Contains(name, " "):
		return ErrSpaces
	}
	for _, c := range name {
		if !(c >= 'a' && c <= 'z') && !(c >= '0' && c <= '9') && c != '_' && c != '.' {
			return ErrCharset
		}
	}
	return nil
}

// PNGPath returns the path of the image rendered from the graph file at
// dotPath.
func PNGPath(dotPath string) string {
	return strings.TrimSuffix(dotPath, ".dot") + ".png"
}

// Render runs the Graphviz binary to convert the graph file at dotPath into a
// PNG image written to pngPath.
func Render(ctx context.Context, binary, dotPath, pngPath string) error {
	if binary == "" {
		binary = DefaultBinary
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binary, "-Tpng", dotPath, "-o", pngPath)
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("rendering %s with %s: %w: %s", dotPath, binary, err, msg)
		}
		return fmt.Errorf("rendering %s with %s: %w", dotPath, binary, err)
	}
	return nil
}
