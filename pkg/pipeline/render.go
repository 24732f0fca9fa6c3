package pipeline

import (
	"context"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/archtower/pkg/cache"
	"github.com/matzehuels/archtower/pkg/errors"
	"github.com/matzehuels/archtower/pkg/graph"
	"github.com/matzehuels/archtower/pkg/observability"
	"github.com/matzehuels/archtower/pkg/render"
	"github.com/matzehuels/archtower/pkg/render/dot"
	"github.com/matzehuels/archtower/pkg/view"
	"github.com/matzehuels/archtower/pkg/workspace"
)

// RenderView renders one snapshot of ws in every format of opts.
//
// SVG, PNG and PDF artifacts are looked up in the cache first, keyed by the
// hash of the DOT source. PNG and PDF are converted from the SVG, which is
// rendered at most once per call.
func (r *Runner) RenderView(ctx context.Context, ws *workspace.Workspace, snap *view.Snapshot, opts Options) (ViewResult, CacheInfo, error) {
	if err := opts.ValidateForRender(); err != nil {
		return ViewResult{}, CacheInfo{}, err
	}
	r.applyLogger(&opts)

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, snap.Key, opts.Formats)
	start := time.Now()

	src := dot.ToDOT(snap, ws.Views.Styles(), opts.DOTOptions())
	vr := ViewResult{
		Key:       snap.Key,
		Title:     snap.Title,
		Snapshot:  snap,
		DOT:       src,
		Artifacts: make(map[string][]byte, len(opts.Formats)),
	}
	rc := &viewRender{runner: r, opts: opts, dot: src, hash: cache.Hash([]byte(src))}

	var err error
	for _, format := range opts.Formats {
		var data []byte
		switch format {
		case FormatDOT:
			data = []byte(src)
		case FormatJSON:
			data, err = graph.MarshalView(graph.FromSnapshot(snap, ws.Views.Styles()))
		default:
			data, err = rc.artifact(ctx, format)
		}
		if err != nil {
			err = fmt.Errorf("render %s: %w", format, err)
			break
		}
		vr.Artifacts[format] = data
	}
	hooks.OnRenderComplete(ctx, snap.Key, opts.Formats, time.Since(start), err)
	if err != nil {
		return ViewResult{}, rc.info, err
	}

	vr.CacheHit = rc.info.Misses == 0 && rc.info.Hits > 0
	opts.Logger.Debug("rendered view",
		"key", snap.Key,
		"elements", len(snap.Elements),
		"relationships", len(snap.Relationships),
		"cached", vr.CacheHit,
		"duration", time.Since(start))
	return vr, rc.info, nil
}

// viewRender memoizes the SVG of one view across formats.
type viewRender struct {
	runner *Runner
	opts   Options
	dot    string
	hash   string
	svg    []byte
	info   CacheInfo
}

func (v *viewRender) artifact(ctx context.Context, format string) ([]byte, error) {
	r := v.runner
	hooks := observability.Cache()
	key := r.Keyer.ArtifactKey(v.hash, v.opts.ArtifactKeyOpts(format))

	if !v.opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			hooks.OnCacheHit(ctx, format)
			v.info.Hits++
			if format == FormatSVG {
				v.svg = data
			}
			return data, nil
		}
	}
	hooks.OnCacheMiss(ctx, format)
	v.info.Misses++

	data, err := v.render(ctx, format)
	if err != nil {
		return nil, err
	}
	if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
		v.opts.Logger.Warn("cache write failed", "format", format, "error", err)
	} else {
		hooks.OnCacheSet(ctx, format, len(data))
	}
	return data, nil
}

func (v *viewRender) render(ctx context.Context, format string) ([]byte, error) {
	if v.svg == nil {
		svg, err := dot.RenderSVG(ctx, v.dot)
		if err != nil {
			return nil, err
		}
		v.svg = svg
	}
	switch format {
	case FormatSVG:
		return v.svg, nil
	case FormatPNG:
		return render.ToPNG(ctx, v.svg, v.opts.Scale)
	case FormatPDF:
		return render.ToPDF(ctx, v.svg)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// Write stores every artifact of r in dir as <view key>.<format> and returns
// the written paths, ordered by view and then by format name. Keys that map
// to the same file name fail with ErrCodeInvalidView before anything is
// written.
func (r *Result) Write(dir string) ([]string, error) {
	owner := make(map[string]string, len(r.Views))
	for _, vr := range r.Views {
		name := fileName(vr.Key)
		if prev, ok := owner[name]; ok && prev != vr.Key {
			return nil, errors.New(errors.ErrCodeInvalidView,
				"views %q and %q would both be written as %s", prev, vr.Key, name)
		}
		owner[name] = vr.Key
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	var paths []string
	for _, vr := range r.Views {
		for _, format := range slices.Sorted(maps.Keys(vr.Artifacts)) {
			path := filepath.Join(dir, fileName(vr.Key)+"."+format)
			if err := os.WriteFile(path, vr.Artifacts[format], 0o644); err != nil {
				return paths, fmt.Errorf("write %s: %w", path, err)
			}
			paths = append(paths, path)
		}
	}
	return paths, nil
}

// fileName replaces characters of a view key that are unsafe in file names.
func fileName(key string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, key)
}
