package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/matzehuels/linkchart/pkg/cache"
	lcerrors "github.com/matzehuels/linkchart/pkg/errors"
	"github.com/matzehuels/linkchart/pkg/graph"
	"github.com/matzehuels/linkchart/pkg/layout"
	"github.com/matzehuels/linkchart/pkg/observability"
)

// keyTypeLayout labels layout entries in cache hooks.
const keyTypeLayout = "layout"

// Runner encapsulates layout execution with caching.
// Both CLI and server use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	TTL    time.Duration // cache lifetime; zero means cache.TTLLayout
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

// Run lays out g. It validates the options, resolves the strategy, consults
// the cache, computes positions and, when a viewport is given, the fit
// transform.
//
// Run only fails on invalid options, an invalid graph or a cancelled
// context. Cache failures are logged and otherwise ignored.
func (r *Runner) Run(ctx context.Context, g graph.Graph, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger := opts.Logger

	name := opts.Layout
	if !layout.Known(name) {
		logger.Warn("unknown layout, using default", "layout", name, "default", layout.DefaultName)
		name = layout.DefaultName
	}

	result := &Result{
		ID:     uuid.NewString(),
		Layout: name,
		Stats:  Stats{Items: len(g.Items), Links: len(g.Links)},
	}

	graphData, err := json.Marshal(g)
	if err != nil {
		return nil, lcerrors.Wrap(lcerrors.ErrCodeInternal, err, "hash graph")
	}
	result.GraphHash = cache.Hash(graphData)

	cacheable := opts.Cacheable(name)
	cacheKey := r.Keyer.LayoutKey(result.GraphHash, opts.LayoutKeyOpts(name))

	if cacheable && !opts.Refresh {
		if cached, ok := r.lookup(ctx, cacheKey, logger); ok {
			result.Positions = cached.Positions
			result.Transform = cached.Transform
			result.CacheHit = true
			logger.Debug("layout cache hit", "layout", name, "run", result.ID)
			return result, nil
		}
	}

	items, links := g.LayoutItems(), g.LayoutLinks()
	hooks := observability.Layout()
	hooks.OnLayoutStart(ctx, name, len(items), len(links))
	start := time.Now()
	result.Positions = layout.SelectSeeded(name, opts.Seed)(items, links, opts.Config)
	if opts.HasViewport() {
		t := layout.Fit(result.Positions, opts.Width, opts.Height, opts.Config)
		result.Transform = &t
	}
	result.Stats.Duration = time.Since(start)
	hooks.OnLayoutComplete(ctx, name, len(items), result.Stats.Duration, nil)

	logger.Info("computed layout",
		"layout", name,
		"items", result.Stats.Items,
		"links", result.Stats.Links,
		"duration", result.Stats.Duration,
		"run", result.ID)

	if cacheable {
		r.store(ctx, cacheKey, result.Output(), logger)
	}
	return result, nil
}

// lookup returns the cached result under key, treating unreadable entries
// as misses.
func (r *Runner) lookup(ctx context.Context, key string, logger *log.Logger) (graph.Result, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		logger.Warn("cache read failed", "err", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, keyTypeLayout)
		return graph.Result{}, false
	}

	var cached graph.Result
	if err := json.Unmarshal(data, &cached); err != nil {
		logger.Debug("discarding unreadable cache entry", "err", err)
		observability.Cache().OnCacheMiss(ctx, keyTypeLayout)
		return graph.Result{}, false
	}
	observability.Cache().OnCacheHit(ctx, keyTypeLayout)
	return cached, true
}

func (r *Runner) store(ctx context.Context, key string, out graph.Result, logger *log.Logger) {
	data, err := json.Marshal(out)
	if err != nil {
		logger.Warn("cache encode failed", "err", err)
		return
	}
	ttl := r.TTL
	if ttl <= 0 {
		ttl = cache.TTLLayout
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		logger.Warn("cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyTypeLayout, len(data))
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
