package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/archtower/pkg/cache"
	"github.com/matzehuels/archtower/pkg/dsl"
	"github.com/matzehuels/archtower/pkg/observability"
	"github.com/matzehuels/archtower/pkg/workspace"
)

// Runner executes the pipeline with caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute loads opts.Source and renders the selected views.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	start := time.Now()
	ws, err := r.Load(ctx, opts.Source)
	if err != nil {
		return nil, err
	}
	loadTime := time.Since(start)

	result, err := r.Run(ctx, ws, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.LoadTime = loadTime
	return result, nil
}

// Load builds the workspace defined in path.
func (r *Runner) Load(ctx context.Context, path string) (*workspace.Workspace, error) {
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, path)

	start := time.Now()
	ws, err := dsl.Load(path)
	elements := 0
	if ws != nil {
		elements = ws.Model.ElementCount()
	}
	hooks.OnLoadComplete(ctx, path, elements, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	r.Logger.Info("loaded workspace",
		"name", ws.Name,
		"elements", elements,
		"relationships", ws.Model.RelationshipCount(),
		"views", len(ws.Views.Views()),
		"duration", time.Since(start))
	return ws, nil
}

// Run validates ws, snapshots the selected views and renders each of them.
func (r *Runner) Run(ctx context.Context, ws *workspace.Workspace, opts Options) (*Result, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	if err := ws.Validate(); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	snaps, err := ws.Snapshots(opts.Views...)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Workspace: ws,
		Stats: Stats{
			Elements:      ws.Model.ElementCount(),
			Relationships: ws.Model.RelationshipCount(),
			Views:         len(snaps),
		},
	}

	hooks := observability.Pipeline()
	start := time.Now()
	for _, snap := range snaps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		hooks.OnViewComplete(ctx, snap.Key, len(snap.Elements), len(snap.Relationships))

		vr, info, err := r.RenderView(ctx, ws, snap, opts)
		if err != nil {
			return nil, fmt.Errorf("view %s: %w", snap.Key, err)
		}
		result.Views = append(result.Views, vr)
		result.CacheInfo.Hits += info.Hits
		result.CacheInfo.Misses += info.Misses
	}
	result.Stats.RenderTime = time.Since(start)

	r.Logger.Info("rendered views",
		"views", len(result.Views),
		"formats", opts.Formats,
		"cache_hits", result.CacheInfo.Hits,
		"duration", result.Stats.RenderTime)
	return result, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
