package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"

	"github.com/segmentio/searchtree/container/bst"
	"github.com/segmentio/searchtree/graphviz"
)

func treeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntSliceFlag{
			Name:    "keys",
			Aliases: []string{"k"},
			Usage:   "keys inserted in order, the first one is the root (defaults to the configured preset)",
		},
		&cli.IntSliceFlag{
			Name:    "delete",
			Aliases: []string{"d"},
			Usage:   "keys deleted after the tree is built",
		},
	}
}

var cmdExport = &cli.Command{
	Name:  "export",
	Usage: "write the graph of a tree to a dot file and render it",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Usage:   "name of the graph file written in the output directory",
			Value:   "bst_graph.dot",
		},
	}, treeFlags()...),
	Action: runExport,
}

var cmdInspect = &cli.Command{
	Name:   "inspect",
	Usage:  "print the nodes of a tree with their links and successors",
	Flags:  treeFlags(),
	Action: runInspect,
}

// treeFromFlags builds the tree described by the --keys and --delete flags.
func treeFromFlags(cctx *cli.Context) (*bst.Tree[int], error) {
	keys := cctx.IntSlice("keys")
	if len(keys) == 0 {
		keys = configFrom(cctx).Preset
	}

	tree, err := buildTree(keys)
	if err != nil {
		return nil, err
	}

	for _, k := range cctx.IntSlice("delete") {
		if tree.Delete(tree.Root(), k) {
			slog.Debug("deleted key", "key", k)
		}
	}
	return tree, nil
}

func runExport(cctx *cli.Context) error {
	cfg := configFrom(cctx)

	name := cctx.String("out")
	if err := graphviz.ValidateFilename(name); err != nil {
		return fmt.Errorf("invalid graph filename %q: %w", name, err)
	}

	tree, err := treeFromFlags(cctx)
	if err != nil {
		return err
	}

	dotPath := filepath.Join(cfg.OutputDir, name)
	if err := graphviz.WriteFile[int](dotPath, cfg.GraphName, tree); err != nil {
		return err
	}
	fmt.Fprintf(cctx.App.Writer, "graph written to %s\n", dotPath)

	if cfg.Render {
		pngPath := graphviz.PNGPath(dotPath)
		if err := graphviz.Render(cctx.Context, cfg.DotBinary, dotPath, pngPath); err != nil {
			return err
		}
		fmt.Fprintf(cctx.App.Writer, "image rendered to %s\n", pngPath)
	}
	return nil
}

func runInspect(cctx *cli.Context) error {
	tree, err := treeFromFlags(cctx)
	if err != nil {
		return err
	}

	key := func(n bst.NodeID) interface{} {
		if n == bst.Nil {
			return "-"
		}
		return tree.Key(n)
	}

	t := table.NewWriter()
	t.SetOutputMirror(cctx.App.Writer)
	t.SetStyle(table.StyleLight)
	t.SetTitle("Nodes")
	t.AppendHeader(table.Row{"Key", "Parent", "Left", "Right", "Sibling", "Successor"})

	nodes := make([]bst.NodeID, 0, tree.Len())
	tree.RangeNodes(func(n bst.NodeID) bool {
		nodes = append(nodes, n)
		return true
	})
	t.AppendRows(lo.Map(nodes, func(n bst.NodeID, _ int) table.Row {
		succ, _ := tree.Successor(n)
		return table.Row{tree.Key(n), key(tree.Parent(n)), key(tree.Left(n)), key(tree.Right(n)), key(tree.Sibling(n)), key(succ)}
	}))
	t.AppendFooter(table.Row{"Total", tree.Len()})
	t.Render()

	root := tree.Root()
	stats := tree.Stats()

	s := table.NewWriter()
	s.SetOutputMirror(cctx.App.Writer)
	s.SetStyle(table.StyleLight)
	s.SetTitle("Summary")
	s.AppendRows([]table.Row{
		{"Root", key(root)},
		{"Minimum", key(tree.Minimum(root))},
		{"Maximum", key(tree.Maximum(root))},
		{"Height", tree.Height()},
		{"Nodes", tree.Len()},
		{"Inserts", stats.Inserts},
		{"Deletes", stats.Deletes},
		{"Missed deletes", stats.Misses},
		{"Lookups", stats.Lookups},
		{"Hits", stats.Hits},
	})
	s.Render()
	return nil
}
