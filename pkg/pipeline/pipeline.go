// Package pipeline provides the load → snapshot → render pipeline behind
// the archtower CLI.
//
// A run loads a workspace definition, materializes the requested views and
// renders every view in the requested formats. Graphviz output is cached by
// the hash of the DOT source, so unchanged views are not laid out again.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Source:  "workspace.toml",
//	    Formats: []string{"svg", "json"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	files, err := result.Write("out")
//
// The stages can also be run separately: [Runner.Load] builds the workspace,
// [Runner.Run] renders an already built one and [Runner.RenderView] renders
// a single snapshot.
package pipeline

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/archtower/pkg/cache"
	"github.com/matzehuels/archtower/pkg/errors"
	"github.com/matzehuels/archtower/pkg/render/dot"
	"github.com/matzehuels/archtower/pkg/view"
	"github.com/matzehuels/archtower/pkg/workspace"
)

// Format constants for output formats.
const (
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// DefaultScale is the PNG scale factor.
const DefaultScale = 2.0

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatDOT:  true,
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// Options configures a pipeline run.
type Options struct {
	// Source is the workspace definition file.
	Source string `json:"source"`

	// Views selects views by key. Empty renders every view.
	Views []string `json:"views,omitempty"`

	Formats          []string `json:"formats,omitempty"`
	Scale            float64  `json:"scale,omitempty"`
	Direction        string   `json:"direction,omitempty"`
	HideDescriptions bool     `json:"hide_descriptions,omitempty"`

	// Refresh ignores cached artifacts but still stores new ones.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	Workspace *workspace.Workspace
	Views     []ViewResult
	Stats     Stats
	CacheInfo CacheInfo
}

// ViewResult holds the artifacts of one view keyed by format.
type ViewResult struct {
	Key       string
	Title     string
	Snapshot  *view.Snapshot
	DOT       string
	Artifacts map[string][]byte
	CacheHit  bool // every Graphviz artifact came from the cache
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Elements      int
	Relationships int
	Views         int
	LoadTime      time.Duration
	RenderTime    time.Duration
}

// CacheInfo counts artifact cache lookups.
type CacheInfo struct {
	Hits   int
	Misses int
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid format: %q (must be one of: dot, svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateDirection checks a Graphviz rank direction.
func ValidateDirection(dir string) error {
	switch dir {
	case "", "TB", "BT", "LR", "RL":
		return nil
	}
	return errors.New(errors.ErrCodeInvalidInput, "invalid direction: %q (must be one of: TB, BT, LR, RL)", dir)
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// Calling it more than once has no further effect.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Source == "" {
		return errors.New(errors.ErrCodeInvalidInput, "source is required")
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForRender applies render defaults and validates formats and
// direction. The source is not required.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	o.Direction = strings.ToUpper(o.Direction)
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %g", o.Scale)
	}
	return ValidateDirection(o.Direction)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// DOTOptions returns the diagram settings of o.
func (o *Options) DOTOptions() dot.Options {
	return dot.Options{Direction: o.Direction, HideDescriptions: o.HideDescriptions}
}

// ArtifactKeyOpts returns cache key options for a Graphviz artifact.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{Format: format}
	if format == FormatPNG {
		opts.Scale = o.Scale
	}
	return opts
}

// String summarizes a result for log output.
func (r *Result) String() string {
	return fmt.Sprintf("%d views, %d elements, %d relationships",
		r.Stats.Views, r.Stats.Elements, r.Stats.Relationships)
}
