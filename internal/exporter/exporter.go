// Package exporter drives the export pipeline: resolve each target body
// in the scene, validate its face/color alignment, classify faces by
// color and write one STL file per non-empty face group.
package exporter

import (
	"fmt"
	"path/filepath"

	"github.com/philipparndt/facestl/internal/classify"
	"github.com/philipparndt/facestl/internal/config"
	"github.com/philipparndt/facestl/internal/mesh"
	"github.com/philipparndt/facestl/internal/preconditions"
	"github.com/philipparndt/facestl/internal/scene"
	"github.com/philipparndt/facestl/internal/stl"
	"github.com/philipparndt/facestl/internal/ui"
)

// ExportedFile records one written STL file
type ExportedFile struct {
	Group     classify.Group
	Path      string
	FaceIDs   []int
	Triangles int
}

// BodyResult captures the outcome for one target label
type BodyResult struct {
	Label  string
	Groups classify.Groups
	Files  []ExportedFile
	Err    error
}

// Failed reports whether the body was skipped
func (r BodyResult) Failed() bool {
	return r.Err != nil
}

// Context holds shared state between pipeline steps
type Context struct {
	Config   *config.Config
	Document *scene.Document
	Mesher   mesh.Mesher
	Writer   *stl.Writer
	DryRun   bool
	Results  []BodyResult
}

// Step is a single stage of the export pipeline
type Step interface {
	Name() string
	Execute(ctx *Context) error
}

// Plan runs the export pipeline for one job configuration
type Plan struct {
	Steps []Step
	ctx   *Context
}

// NewPlan creates an export plan for the given configuration. DryRun
// classifies and reports but writes no files.
func NewPlan(cfg *config.Config, dryRun bool) (*Plan, error) {
	format, err := stl.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	opts := mesh.Options{
		LinearDeflection:  cfg.Mesh.LinearDeflection,
		AngularDeflection: cfg.Mesh.AngularDeflection,
		Relative:          cfg.Mesh.Relative,
	}

	ctx := &Context{
		Config: cfg,
		Mesher: mesh.NewShellMesher(),
		Writer: &stl.Writer{
			Format: format,
			Header: "facestl " + opts.String(),
		},
		DryRun: dryRun,
	}

	plan := &Plan{ctx: ctx}
	if !dryRun {
		plan.Steps = append(plan.Steps, &CheckPreconditionsStep{})
	}
	plan.Steps = append(plan.Steps,
		&LoadSceneStep{},
		&ExportBodiesStep{Options: opts},
		&SummaryStep{},
	)

	return plan, nil
}

// Execute runs all steps and returns the per-body results. An error
// aborts the run; per-body failures do not.
func (p *Plan) Execute() ([]BodyResult, error) {
	if ui.IsVerbose() {
		ui.PrintTitle("Export Plan Execution")
		ui.PrintInfo(fmt.Sprintf("Total steps: %d", len(p.Steps)))
		ui.PrintSeparator()
	}

	for i, step := range p.Steps {
		if ui.IsVerbose() {
			ui.PrintHeader(fmt.Sprintf("Step %d/%d: %s", i+1, len(p.Steps), step.Name()))
		}
		if err := step.Execute(p.ctx); err != nil {
			return p.ctx.Results, err
		}
	}

	return p.ctx.Results, nil
}

// CheckPreconditionsStep verifies the scene file and export directory
type CheckPreconditionsStep struct{}

func (s *CheckPreconditionsStep) Name() string {
	return "Check preconditions"
}

func (s *CheckPreconditionsStep) Execute(ctx *Context) error {
	return preconditions.Check(ctx.Config.Scene, ctx.Config.ExportDir)
}

// LoadSceneStep loads the scene snapshot into the context
type LoadSceneStep struct{}

func (s *LoadSceneStep) Name() string {
	return "Load scene"
}

func (s *LoadSceneStep) Execute(ctx *Context) error {
	doc, err := scene.NewLoader().Load(ctx.Config.Scene)
	if err != nil {
		return err
	}
	ctx.Document = doc

	name := doc.Name
	if name == "" {
		name = filepath.Base(ctx.Config.Scene)
	}
	ui.PrintStep(fmt.Sprintf("Loaded document %s (%d bodies)", name, len(doc.Bodies)))
	return nil
}

// ExportBodiesStep processes each target label in order. Body resolution
// and validation failures are recorded and skipped; meshing and file
// write errors abort the run.
type ExportBodiesStep struct {
	Options mesh.Options
}

func (s *ExportBodiesStep) Name() string {
	return "Export bodies"
}

func (s *ExportBodiesStep) Execute(ctx *Context) error {
	matcher := classify.NewMatcher(ctx.Config.InletColor, ctx.Config.OutletColor, ctx.Config.ColorTolerance)

	for i, label := range ctx.Config.Targets {
		ui.PrintHeader(fmt.Sprintf("Processing %d/%d: %s", i+1, len(ctx.Config.Targets), label))

		result, err := s.exportBody(ctx, matcher, label)
		if err != nil {
			return fmt.Errorf("body %s: %w", label, err)
		}

		if result.Failed() {
			ui.PrintError(fmt.Sprintf("Skipping %s: %v", label, result.Err))
		}
		ctx.Results = append(ctx.Results, result)
	}

	return nil
}

// exportBody processes one label. The returned result carries recoverable
// failures; the error return is reserved for faults that abort the run.
func (s *ExportBodiesStep) exportBody(ctx *Context, matcher *classify.Matcher, label string) (BodyResult, error) {
	result := BodyResult{Label: label}

	body, err := ctx.Document.Body(label)
	if err != nil {
		result.Err = err
		return result, nil
	}

	if body.FaceCount() == 0 {
		result.Err = fmt.Errorf("body has no shape")
		return result, nil
	}

	if len(body.DiffuseColors) != body.FaceCount() {
		result.Err = fmt.Errorf("color count (%d) does not match face count (%d)",
			len(body.DiffuseColors), body.FaceCount())
		return result, nil
	}

	ui.PrintStep(fmt.Sprintf("Face count: %d", body.FaceCount()))

	result.Groups = matcher.Classify(body.DiffuseColors)
	for _, group := range classify.AllGroups {
		ui.PrintItem(fmt.Sprintf("%-6s %v", group.String(), result.Groups.IDs(group)))
	}

	for _, group := range classify.AllGroups {
		ids := result.Groups.IDs(group)
		if len(ids) == 0 {
			ui.PrintInfo(fmt.Sprintf("No %s faces, skipping", group))
			continue
		}

		name := fmt.Sprintf("%s_%s", label, group)
		path := filepath.Join(ctx.Config.ExportDir, name+".stl")

		file := ExportedFile{Group: group, Path: path, FaceIDs: ids}

		if !ctx.DryRun {
			shell, err := ctx.Mesher.Mesh(name, body, ids, s.Options)
			if err != nil {
				return result, fmt.Errorf("meshing %s: %w", name, err)
			}
			if err := ctx.Writer.WriteFile(shell, path); err != nil {
				return result, fmt.Errorf("writing %s: %w", path, err)
			}
			file.Triangles = len(shell.Triangles)
			ui.PrintSuccess("Exported: " + path)
		}

		result.Files = append(result.Files, file)
	}

	return result, nil
}

// SummaryStep prints the run summary in the macro's processed/failed style
type SummaryStep struct{}

func (s *SummaryStep) Name() string {
	return "Summary"
}

func (s *SummaryStep) Execute(ctx *Context) error {
	processed := 0
	var failed []BodyResult
	for _, r := range ctx.Results {
		if r.Failed() {
			failed = append(failed, r)
		} else {
			processed++
		}
	}

	ui.PrintSeparator()
	ui.PrintKeyValue("Processed", fmt.Sprintf("%d/%d", processed, len(ctx.Results)))

	if exported := collectFiles(ctx.Results); len(exported) > 0 {
		ui.PrintTableHeader("Body", "Group", "Faces", "File")
		for _, row := range exported {
			ui.PrintTableRow(row.label, row.file.Group.String(),
				fmt.Sprintf("%d", len(row.file.FaceIDs)), filepath.Base(row.file.Path))
		}
	}

	for _, r := range failed {
		ui.PrintError(fmt.Sprintf("%s: %v", r.Label, r.Err))
	}

	if ctx.DryRun {
		ui.PrintWarning("Dry run, no files written")
	}

	return nil
}

type summaryRow struct {
	label string
	file  ExportedFile
}

func collectFiles(results []BodyResult) []summaryRow {
	var rows []summaryRow
	for _, r := range results {
		for _, f := range r.Files {
			rows = append(rows, summaryRow{label: r.Label, file: f})
		}
	}
	return rows
}
