package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/alecthomas/kong"
	"github.com/philipparndt/facestl/internal/config"
	"github.com/philipparndt/facestl/internal/exporter"
	"github.com/philipparndt/facestl/internal/inspect"
	"github.com/philipparndt/facestl/internal/ui"
	"github.com/philipparndt/facestl/version"
)

type CLI struct {
	Export     *ExportCmd     `cmd:"" help:"Export color-classified face groups to STL files"`
	Inspect    *InspectCmd    `cmd:"" help:"Inspect a scene snapshot and preview face groups"`
	Init       *InitCmd       `cmd:"" help:"Print or write a sample job configuration"`
	Completion *CompletionCmd `cmd:"" help:"Generate shell completion scripts"`
	Version    *VersionCmd    `cmd:"" help:"Show version information"`
}

type ExportCmd struct {
	Config    string `arg:"" help:"YAML job configuration file"`
	ExportDir string `help:"Override the configured export directory" short:"o"`
	Format    string `help:"Override the STL format (binary, ascii)"`
	DryRun    bool   `help:"Classify and report without writing files"`
}

// Help adds additional help text with examples
func (c *ExportCmd) Help() string {
	return renderExportHelp()
}

func (c *ExportCmd) Run() error {
	cfg, err := config.NewLoader().Load(c.Config)
	if err != nil {
		return err
	}

	if c.ExportDir != "" {
		cfg.ExportDir = c.ExportDir
	}
	if c.Format != "" {
		cfg.Format = c.Format
	}

	plan, err := exporter.NewPlan(cfg, c.DryRun)
	if err != nil {
		return err
	}

	results, err := plan.Execute()
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Failed() {
			failed++
		}
	}
	if failed > 0 && failed == len(results) {
		return fmt.Errorf("all %d bodies failed", failed)
	}

	return nil
}

type InspectCmd struct {
	Scene  string `arg:"" help:"Scene snapshot file to inspect"`
	Config string `help:"Job configuration for a classification preview" short:"c"`
}

func (c *InspectCmd) Run() error {
	var cfg *config.Config
	if c.Config != "" {
		loaded, err := config.NewLoader().Load(c.Config)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	return inspect.NewInspector().Inspect(c.Scene, cfg)
}

type InitCmd struct {
	Output string `help:"Write the sample configuration to a file instead of stdout" short:"o"`
}

func (c *InitCmd) Run() error {
	if c.Output != "" {
		if _, err := os.Stat(c.Output); err == nil {
			return fmt.Errorf("%s already exists, not overwriting", c.Output)
		}
		if err := os.WriteFile(c.Output, []byte(config.Sample), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", c.Output, err)
		}
		ui.PrintSuccess("Wrote " + c.Output)
		return nil
	}

	// Highlighted for reading in the terminal; fall back to plain text
	if err := quick.Highlight(os.Stdout, config.Sample, "yaml", "terminal256", "monokai"); err != nil {
		fmt.Print(config.Sample)
	}
	return nil
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	info := version.Get()
	fmt.Println(info.String())
	return nil
}

// Parse parses command line arguments and executes the appropriate command
func Parse() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("facestl"),
		kong.Description("Face-color STL exporter for CAD scene snapshots"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	if err != nil {
		ui.PrintError(err.Error())
		os.Exit(1)
	}
}
