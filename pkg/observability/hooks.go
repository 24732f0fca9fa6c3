// Package observability lets an embedding application watch the rendering
// pipeline without the library depending on a metrics or tracing backend.
//
// Hooks are plain interfaces with no-op defaults. main registers its own
// implementations once at startup; library code only ever calls through
// the accessors:
//
//	observability.Pipeline().OnLoadStart(ctx, path)
//	ws, err := dsl.Load(path)
//	observability.Pipeline().OnLoadComplete(ctx, path, ws.Model.ElementCount(), time.Since(start), err)
//
// The archtower CLI registers a hook that logs render timings at debug
// level.
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the rendering pipeline.
type PipelineHooks interface {
	// Workspace loading.
	OnLoadStart(ctx context.Context, source string)
	OnLoadComplete(ctx context.Context, source string, elements int, duration time.Duration, err error)

	// View materialization.
	OnViewComplete(ctx context.Context, key string, elements, relationships int)

	// Artifact rendering, once per view.
	OnRenderStart(ctx context.Context, key string, formats []string)
	OnRenderComplete(ctx context.Context, key string, formats []string, duration time.Duration, err error)
}

// CacheHooks receives events from artifact cache lookups.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// NoopPipelineHooks ignores every event.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLoadStart(context.Context, string) {}
func (NoopPipelineHooks) OnLoadComplete(context.Context, string, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnViewComplete(context.Context, string, int, int) {}
func (NoopPipelineHooks) OnRenderStart(context.Context, string, []string)  {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, []string, time.Duration, error) {
}

// NoopCacheHooks ignores every event.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// registry holds one replaceable hook implementation.
type registry[T any] struct {
	mu   sync.RWMutex
	def  T
	hook T
}

func newRegistry[T any](def T) *registry[T] {
	return &registry[T]{def: def, hook: def}
}

func (r *registry[T]) get() T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.hook
}

func (r *registry[T]) set(h T) {
	if any(h) == nil {
		return
	}
	r.mu.Lock()
	r.hook = h
	r.mu.Unlock()
}

func (r *registry[T]) reset() {
	r.mu.Lock()
	r.hook = r.def
	r.mu.Unlock()
}

var (
	pipelineHooks = newRegistry[PipelineHooks](NoopPipelineHooks{})
	cacheHooks    = newRegistry[CacheHooks](NoopCacheHooks{})
)

// SetPipelineHooks registers pipeline hooks. Nil is ignored.
func SetPipelineHooks(h PipelineHooks) { pipelineHooks.set(h) }

// SetCacheHooks registers cache hooks. Nil is ignored.
func SetCacheHooks(h CacheHooks) { cacheHooks.set(h) }

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks { return pipelineHooks.get() }

// Cache returns the registered cache hooks.
func Cache() CacheHooks { return cacheHooks.get() }

// Reset restores the no-op hooks.
func Reset() {
	pipelineHooks.reset()
	cacheHooks.reset()
}

// CacheCounter tallies cache events per key type. It is safe for
// concurrent use.
type CacheCounter struct {
	mu     sync.Mutex
	hits   map[string]int
	misses map[string]int
	bytes  int
}

var _ CacheHooks = (*CacheCounter)(nil)

func (c *CacheCounter) OnCacheHit(_ context.Context, keyType string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.hits == nil {
		c.hits = make(map[string]int)
	}
	c.hits[keyType]++
}

func (c *CacheCounter) OnCacheMiss(_ context.Context, keyType string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.misses == nil {
		c.misses = make(map[string]int)
	}
	c.misses[keyType]++
}

func (c *CacheCounter) OnCacheSet(_ context.Context, _ string, size int) {
	c.mu.Lock()
	c.bytes += size
	c.mu.Unlock()
}

// Counts returns the hits and misses recorded for keyType.
func (c *CacheCounter) Counts(keyType string) (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits[keyType], c.misses[keyType]
}

// BytesWritten returns the total size of all stored entries.
func (c *CacheCounter) BytesWritten() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bytes
}
