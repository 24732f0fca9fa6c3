package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/archtower/pkg/errors"
	"github.com/matzehuels/archtower/pkg/observability"
)

// newLogger creates a logger with timestamps formatted as "HH:MM:SS.ms"
// (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with
// elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, e.g. "Rendered 3 views (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// LogHooks reports pipeline and cache events at debug level.
type LogHooks struct {
	Logger *log.Logger
}

var (
	_ observability.PipelineHooks = LogHooks{}
	_ observability.CacheHooks    = LogHooks{}
)

// Register installs h as the pipeline and cache hooks.
func (h LogHooks) Register() {
	observability.SetPipelineHooks(h)
	observability.SetCacheHooks(h)
}

func (h LogHooks) OnLoadStart(_ context.Context, source string) {
	h.Logger.Debug("loading workspace", "source", source)
}

func (h LogHooks) OnLoadComplete(_ context.Context, source string, elements int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("workspace failed to load", "source", source, "code", errors.GetCode(err), "error", err)
		return
	}
	h.Logger.Debug("workspace loaded", "source", source, "elements", elements, "duration", d)
}

func (h LogHooks) OnViewComplete(_ context.Context, key string, elements, relationships int) {
	h.Logger.Debug("view materialized", "key", key, "elements", elements, "relationships", relationships)
}

func (h LogHooks) OnRenderStart(_ context.Context, key string, formats []string) {
	h.Logger.Debug("rendering view", "key", key, "formats", formats)
}

func (h LogHooks) OnRenderComplete(_ context.Context, key string, _ []string, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("view failed to render", "key", key, "code", errors.GetCode(err), "error", err)
		return
	}
	h.Logger.Debug("view rendered", "key", key, "duration", d)
}

func (h LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.Logger.Debug("cache hit", "type", keyType)
}

func (h LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.Logger.Debug("cache miss", "type", keyType)
}

func (h LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.Logger.Debug("cache set", "type", keyType, "bytes", size)
}
