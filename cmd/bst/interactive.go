package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/segmentio/searchtree/container/bst"
	"github.com/segmentio/searchtree/graphviz"
)

var cmdInteractive = &cli.Command{
	Name:   "interactive",
	Usage:  "build and modify a tree from an interactive menu",
	Action: runInteractive,
}

func runInteractive(cctx *cli.Context) error {
	s := &session{
		in:  bufio.NewScanner(cctx.App.Reader),
		out: cctx.App.Writer,
		cfg: configFrom(cctx),
	}
	err := s.run(cctx.Context)
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(s.out, "Exited")
		return nil
	}
	return err
}

const width = 96

// session holds the state of the interactive menu. The tree is only accessed
// from the goroutine running the session.
type session struct {
	in   *bufio.Scanner
	out  io.Writer
	cfg  *config
	tree *bst.Tree[int]
}

func (s *session) run(ctx context.Context) error {
	s.section("Binary Search Tree")
	s.println("- Instruction: Before starting, please choose one of the following options")
	s.println("  1. Use a defined generated graph")
	s.println("  2. Create the graph from the start")
	s.println("  3. Exit the program")

	for s.tree == nil {
		choice, err := s.readInt("")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			if s.tree, err = buildTree(s.cfg.Preset); err != nil {
				return err
			}
		case 2:
			key, err := s.readInt("- Instruction: Please enter a key value of the root node")
			if err != nil {
				return err
			}
			if s.tree, err = buildTree([]int{key}); err != nil {
				return err
			}
			s.section("Info")
			s.printf("- The tree root with value %d is created successfully\n", key)
			s.rule()
		case 3:
			s.println("Exited")
			return nil
		default:
			s.invalidOption(choice)
		}
	}

	return s.menu(ctx)
}

func (s *session) menu(ctx context.Context) error {
	for {
		s.section("Menu")
		s.println("- Instruction: Please choose one of the following options provided by entering its number")
		s.println("  1. Insert a new node")
		s.println("  2. Delete a node")
		s.println("  3. Find the successor of a node")
		s.println("  4. Find the root node of the tree")
		s.println("  5. Find the minimum node of the tree")
		s.println("  6. Find the maximum node of the tree")
		s.println("  7. Save the current graph")
		s.println("  8. Exit the program")

		choice, err := s.readInt("")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = s.insert()
		case 2:
			err = s.delete()
		case 3:
			err = s.successor()
		case 4:
			s.describe("root", s.tree.Root())
		case 5:
			s.describe("minimum", s.tree.Minimum(s.tree.Root()))
		case 6:
			s.describe("maximum", s.tree.Maximum(s.tree.Root()))
		case 7:
			err = s.save(ctx)
		case 8:
			s.println("Exited")
			return nil
		default:
			s.invalidOption(choice)
		}

		if err != nil {
			return err
		}
	}
}

func (s *session) insert() error {
	s.section("Insert")
	key, err := s.readInt("- Instruction: Please enter a key value of the new node")
	if err != nil {
		return err
	}
	s.section("Info")

	if n, found := s.tree.Search(s.tree.Root(), key); found {
		s.printf("- Unable to insert the key value of %d\n", key)
		s.printf("- The node %d already existed\n", s.tree.Key(n))
	} else {
		s.tree.Insert(s.tree.Root(), key)
		s.printf("- The node %d has been inserted\n", key)
	}

	s.rule()
	return nil
}

func (s *session) delete() error {
	s.section("Delete")
	key, err := s.readInt("- Instruction: Please enter a key value of the node to delete")
	if err != nil {
		return err
	}
	s.section("Info")

	if s.tree.Delete(s.tree.Root(), key) {
		s.printf("- The node %d has been deleted\n", key)
	} else {
		s.printf("- Node with key of %d does not exist, nothing was deleted\n", key)
	}

	s.rule()
	return nil
}

func (s *session) successor() error {
	s.section("Find the successor")
	key, err := s.readInt("- Instruction: Please enter a key value of the node in order to find its successor")
	if err != nil {
		return err
	}
	s.section("Info")

	if n, found := s.tree.Search(s.tree.Root(), key); !found {
		s.printf("- Node with key of %d does not exist, failed to get successor\n", key)
	} else if succ, ok := s.tree.Successor(n); ok {
		s.printf("- The successor of node %d is %d\n", key, s.tree.Key(succ))
	} else {
		s.printf("- The node %d holds the maximum key, it has no successor\n", key)
	}

	s.rule()
	return nil
}

func (s *session) describe(what string, n bst.NodeID) {
	s.section("Info")
	if n == bst.Nil {
		s.println("- The tree is empty")
	} else {
		s.printf("- The %s node of the tree is %d\n", what, s.tree.Key(n))
	}
	s.rule()
}

func (s *session) save(ctx context.Context) error {
	s.println("- Instruction: Please define a name for file, along with the extension, for example 'example.dot'")

	var name string
	for {
		if !s.in.Scan() {
			return s.eof()
		}
		name = strings.TrimSpace(s.in.Text())
		if err := graphviz.ValidateFilename(name); err != nil {
			s.printf("- Error: %s\n", capitalize(err.Error()))
			continue
		}
		break
	}

	dotPath := filepath.Join(s.cfg.OutputDir, name)
	pngPath := graphviz.PNGPath(dotPath)
	s.section("Info")

	if err := graphviz.WriteFile[int](dotPath, s.cfg.GraphName, s.tree); err != nil {
		slog.Error("failed to write graph", "path", dotPath, "err", err)
		s.printf("- Error: Failed to write %s\n", dotPath)
		s.rule()
		return nil
	}
	s.printf("- The graph has been written to %s\n", dotPath)

	if s.cfg.Render {
		if err := graphviz.Render(ctx, s.cfg.DotBinary, dotPath, pngPath); err != nil {
			slog.Warn("failed to render graph", "path", dotPath, "err", err)
			s.println("- Error: Failed to execute Graphviz")
		} else {
			s.printf("- Successfully converted to PNG: %s\n", pngPath)
		}
	}

	s.rule()
	return nil
}

// readInt prompts for an integer until a valid one is entered. The returned
// error is io.EOF when the input is exhausted.
func (s *session) readInt(prompt string) (int, error) {
	for {
		s.println(prompt)
		if !s.in.Scan() {
			return 0, s.eof()
		}
		n, err := strconv.Atoi(strings.TrimSpace(s.in.Text()))
		if err == nil {
			return n, nil
		}
		s.println("- Error: Invalid input, please type a number")
	}
}

func (s *session) eof() error {
	if err := s.in.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return io.EOF
}

func (s *session) invalidOption(choice int) {
	s.printf("- Error: Invalid input, there's no option number %d\n", choice)
}

func (s *session) section(title string) {
	title = " " + title + " "
	left := (width - len(title)) / 2
	right := width - len(title) - left
	s.printf("\n%s%s%s\n\n", strings.Repeat("=", left), title, strings.Repeat("=", right))
}

func (s *session) rule() {
	s.printf("\n%s\n\n", strings.Repeat("=", width))
}

func (s *session) println(a ...interface{}) { fmt.Fprintln(s.out, a...) }

func (s *session) printf(format string, a ...interface{}) { fmt.Fprintf(s.out, format, a...) }

func capitalize(msg string) string {
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}
