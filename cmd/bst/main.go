package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/carlmjohnson/versioninfo"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "bst",
		Usage:   "build, inspect and export unbalanced binary search trees",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a YAML configuration file",
				EnvVars: []string{"BST_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "output-dir",
				Usage:   "directory where graph files are written",
				EnvVars: []string{"BST_OUTPUT_DIR"},
			},
			&cli.StringFlag{
				Name:    "dot-binary",
				Usage:   "path to the Graphviz dot program",
				EnvVars: []string{"BST_DOT_BINARY"},
			},
			&cli.BoolFlag{
				Name:  "no-render",
				Usage: "only write graph files, do not render them to PNG",
			},
		},
		Before: setup,
		Action: runInteractive,
		Commands: []*cli.Command{
			cmdInteractive,
			cmdExport,
			cmdInspect,
		},
	}
}

func setup(cctx *cli.Context) error {
	logLevel := slog.LevelInfo
	if cctx.Bool("debug") {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(cctx.App.ErrWriter, &slog.HandlerOptions{
		Level: logLevel,
	})))

	cfg, err := loadConfig(cctx.String("config"))
	if err != nil {
		return err
	}

	if cctx.IsSet("output-dir") {
		cfg.OutputDir = cctx.String("output-dir")
	}
	if cctx.IsSet("dot-binary") {
		cfg.DotBinary = cctx.String("dot-binary")
	}
	if cctx.Bool("no-render") {
		cfg.Render = false
	}

	if cctx.App.Metadata == nil {
		cctx.App.Metadata = map[string]interface{}{}
	}
	cctx.App.Metadata["config"] = cfg
	return nil
}

func configFrom(cctx *cli.Context) *config {
	if cfg, ok := cctx.App.Metadata["config"].(*config); ok {
		return cfg
	}
	return defaultConfig()
}
