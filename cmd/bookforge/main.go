package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/jfaraday/bookforge/internal/batch"
	"github.com/jfaraday/bookforge/internal/config"
	"github.com/jfaraday/bookforge/internal/docs"
	"github.com/jfaraday/bookforge/internal/llm"
	"github.com/jfaraday/bookforge/internal/pipeline"
	"github.com/jfaraday/bookforge/internal/scaffold"
	"github.com/jfaraday/bookforge/internal/ux"
	cli "github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:        "bookforge",
		Usage:       "Batch-generated LaTeX textbook pipeline",
		Description: "Run 'bookforge docs' for documentation on configuration, the marker protocol, and the pipeline.",
		Commands: []*cli.Command{
			initCmd(),
			planCmd(),
			generateCmd(),
			statusCmd(),
			docsCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%serror:%s %v\n", ux.Red, ux.Reset, err)
		os.Exit(1)
	}
}

func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Scaffold the LaTeX book skeleton and a starter bookforge.yaml",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			path, created, err := scaffold.EnsureConfig(dir)
			if err != nil {
				return err
			}
			if created {
				ux.ScaffoldCreated(path)
			}
			cfg, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			return scaffold.Init(dir, cfg)
		},
	}
}

func planCmd() *cli.Command {
	return &cli.Command{
		Name:  "plan",
		Usage: "Generate or refresh the per-section plans without running the batch",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			root, cfg, err := loadProject()
			if err != nil {
				return err
			}

			p := &pipeline.Pipeline{Config: cfg, Root: root}
			if client := planClient(cfg); client != nil {
				p.Client = client
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
			defer stop()

			plans, err := p.Plans(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("\n%d of %d section(s) planned\n", len(plans), cfg.SectionCount())
			return nil
		},
	}
}

func generateCmd() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Run the full pipeline: plan, batch-generate examples, assemble chapters",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "offline", Usage: "Use only cached plans and stored round results"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			root, cfg, err := loadProject()
			if err != nil {
				return err
			}

			p := &pipeline.Pipeline{Config: cfg, Root: root}
			if !cmd.Bool("offline") {
				if client := planClient(cfg); client != nil {
					p.Client = client
					p.Transport = &batch.OpenAITransport{
						Client:       client.Batcher(),
						PollInterval: time.Duration(cfg.PollSeconds) * time.Second,
					}
				}
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
			defer stop()

			_, err = p.Run(ctx)
			return err
		},
	}
}

func statusCmd() *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Show plan coverage, batch files, and the last run summary",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			root, cfg, err := loadProject()
			if err != nil {
				return err
			}
			ux.RenderStatus(cfg, filepath.Join(root, "plans"), filepath.Join(root, "batch"))
			return nil
		},
	}
}

func docsCmd() *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "Show documentation",
		ArgsUsage: "[topic]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				fmt.Print("\nAvailable topics:\n\n")
				for _, t := range docs.All() {
					fmt.Printf("  %-14s %s\n", t.Name, t.Summary)
				}
				fmt.Println("\nRun 'bookforge docs <topic>' to read a topic.")
				return nil
			}
			t, err := docs.Get(name)
			if err != nil {
				return err
			}
			fmt.Print(t.Content)
			return nil
		},
	}
}

// planClient returns the live generation client, or nil when no API
// key is configured. A nil client restricts the run to cached
// artifacts; the pipeline reports each skipped section.
func planClient(cfg *config.Config) *llm.OpenAI {
	client, err := llm.NewOpenAI(cfg.Model)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%swarning:%s %v; using cached artifacts only\n", ux.Yellow, ux.Reset, err)
		return nil
	}
	return client
}

func loadProject() (string, *config.Config, error) {
	root, err := findProjectRoot()
	if err != nil {
		return "", nil, err
	}
	cfg, err := config.Load(filepath.Join(root, scaffold.ConfigFile))
	if err != nil {
		return "", nil, fmt.Errorf("loading config: %w", err)
	}
	return root, cfg, nil
}

// findProjectRoot walks up from cwd looking for bookforge.yaml.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, scaffold.ConfigFile)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no bookforge.yaml found (searched from cwd to root)")
		}
		dir = parent
	}
}
