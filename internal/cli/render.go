package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/archtower/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	pipeline.Options
	formats     string // comma-separated output formats
	output      string // output directory
	noCache     bool   // bypass the artifact cache entirely
	interactive bool   // pick views in a terminal UI
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{output: "."}
	opts.Scale = pipeline.DefaultScale

	cmd := &cobra.Command{
		Use:   "render <workspace>",
		Short: "Render workspace views to DOT, SVG, PNG, PDF or JSON",
		Long: `Render loads a workspace definition and writes one file per view and
format into the output directory, named <view key>.<format>.

PNG and PDF output needs rsvg-convert on the PATH.`,
		Example: `  archtower render workspace.toml
  archtower render workspace.yaml -V factory-context -f svg,png -o diagrams
  archtower render workspace.toml -f dot --direction LR
  archtower render workspace.toml -i`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Source = args[0]
			opts.Formats = parseFormats(opts.formats)
			opts.Logger = c.Logger
			return c.runRender(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringSliceVarP(&opts.Views, "view", "V", nil, "view key to render (repeatable, default: all views)")
	f.StringVarP(&opts.formats, "format", "f", pipeline.FormatSVG, "output formats: dot, svg, png, pdf, json (comma-separated)")
	f.StringVarP(&opts.output, "output", "o", opts.output, "output directory")
	f.StringVar(&opts.Direction, "direction", "", "layout direction: TB, BT, LR or RL (default TB)")
	f.Float64Var(&opts.Scale, "scale", opts.Scale, "PNG scale factor")
	f.BoolVar(&opts.HideDescriptions, "hide-descriptions", false, "omit element descriptions from labels")
	f.BoolVar(&opts.Refresh, "refresh", false, "re-render and overwrite cached artifacts")
	f.BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	f.BoolVarP(&opts.interactive, "interactive", "i", false, "choose the views to render interactively")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, opts renderOpts) error {
	ctx, out := cmd.Context(), newPrinter(cmd.OutOrStdout())
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	ws, err := runner.Load(ctx, opts.Source)
	if err != nil {
		return err
	}
	if opts.interactive && len(opts.Views) == 0 {
		keys, ok, err := pickViews(ctx, ws)
		if err != nil {
			return err
		}
		if !ok {
			out.info("Nothing selected")
			return nil
		}
		opts.Views = keys
	}

	spinner := newSpinner(ctx, cmd.ErrOrStderr(), fmt.Sprintf("Rendering %s...", opts.Source))
	spinner.Start()
	result, err := runner.Run(ctx, ws, opts.Options)
	spinner.Stop()
	if err != nil {
		return err
	}

	paths, err := result.Write(opts.output)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d views", result.Stats.Views))

	// Write emits paths grouped by view in result order.
	for _, vr := range result.Views {
		out.success("%s %s", vr.Title, StyleDim.Render("("+vr.Key+")"))
		out.stats(len(vr.Snapshot.Elements), len(vr.Snapshot.Relationships), vr.CacheHit)
		n := min(len(vr.Artifacts), len(paths))
		for _, p := range paths[:n] {
			out.file(p)
		}
		paths = paths[n:]
	}
	if info := result.CacheInfo; info.Hits+info.Misses > 0 {
		out.detail("cache: %d hits, %d misses", info.Hits, info.Misses)
	}
	return nil
}
