package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/segmentio/searchtree/compare"
	"github.com/segmentio/searchtree/container/bst"
	"github.com/segmentio/searchtree/graphviz"
)

var errNoKeys = errors.New("at least one key is required to build a tree")

// config is the configuration of the program, loaded from a YAML file and
// overridden by command line flags.
type config struct {
	// Keys of the predefined tree, the first one is the root.
	Preset    []int  `yaml:"preset"`
	OutputDir string `yaml:"output_dir"`
	DotBinary string `yaml:"dot_binary"`
	Render    bool   `yaml:"render"`
	GraphName string `yaml:"graph_name"`
}

func defaultConfig() *config {
	return &config{
		Preset: []int{
			15,
			5, 18,
			3, 7, 17, 20,
			2, 4, 6, 10, 16, 19, 25,
			1, 8, 11, 24,
			9, 13, 23,
			12, 14, 22,
			21,
		},
		OutputDir: "graph",
		DotBinary: graphviz.DefaultBinary,
		Render:    true,
		GraphName: graphviz.DefaultGraphName,
	}
}

func loadConfig(path string) (*config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if len(cfg.Preset) == 0 {
		return nil, fmt.Errorf("config %s: preset: %w", path, errNoKeys)
	}
	if dups := lo.FindDuplicates(cfg.Preset); len(dups) != 0 {
		return nil, fmt.Errorf("config %s: preset contains duplicate keys: %v", path, dups)
	}
	if cfg.GraphName == "" {
		cfg.GraphName = graphviz.DefaultGraphName
	}

	slog.Debug("loaded config", "path", path, "preset", len(cfg.Preset), "output_dir", cfg.OutputDir)
	return cfg, nil
}

// buildTree inserts keys in order in a new tree, the first key becomes the
// root. Keys already present in the tree are skipped.
func buildTree(keys []int) (*bst.Tree[int], error) {
	if len(keys) == 0 {
		return nil, errNoKeys
	}

	tree := bst.New(compare.Function[int], keys[0],
		bst.Capacity(len(keys)),
		bst.Logger(slog.Default()),
	)

	for _, k := range keys[1:] {
		if _, found := tree.Search(tree.Root(), k); found {
			slog.Warn("skipping duplicate key", "key", k)
			continue
		}
		tree.Insert(tree.Root(), k)
	}
	return tree, nil
}
