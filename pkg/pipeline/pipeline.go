// Package pipeline runs layouts with caching, logging and instrumentation.
//
// This package is the single entry point the CLI and the HTTP server use to
// turn a [graph.Graph] into positions. By centralizing this logic, both
// surfaces share one cache key scheme, one fallback policy for unknown layout
// names and one set of observability events.
//
// # Usage
//
// Create a Runner and run a layout:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Run(ctx, g, pipeline.Options{
//	    Layout: "compactPeacock",
//	    Width:  1280,
//	    Height: 800,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Transform.Zoom)
//
// Results are cached by a content hash of the graph and every option that
// affects placement. An unseeded force layout is never cached, since its
// output changes between runs.
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/linkchart/pkg/cache"
	lcerrors "github.com/matzehuels/linkchart/pkg/errors"
	"github.com/matzehuels/linkchart/pkg/graph"
	"github.com/matzehuels/linkchart/pkg/layout"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultWidth is the default viewport width in pixels.
	DefaultWidth = 1280.0

	// DefaultHeight is the default viewport height in pixels.
	DefaultHeight = 800.0
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a layout run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Layout is the strategy name. Empty selects the default; unknown names
	// fall back to it with a warning.
	Layout string `json:"layout,omitempty"`

	// Config is the node geometry. The zero value means layout.DefaultConfig.
	Config layout.Config `json:"config"`

	// Seed pins the force layout's jitter. Zero means fresh randomness.
	Seed uint64 `json:"seed,omitempty"`

	// Width and Height are the viewport size. When both are positive the
	// result carries a fit transform.
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	// Refresh skips the cache read; the result is still stored.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a layout run.
type Result struct {
	// ID identifies this run in logs and response headers.
	ID string

	// GraphHash is the content hash of the input graph.
	GraphHash string

	// Layout is the strategy that actually ran, after fallback.
	Layout string

	// Positions maps each distinct item id to its position.
	Positions layout.Positions

	// Transform frames the positions in the viewport. Nil when no viewport
	// was given.
	Transform *layout.Transform

	// Stats contains timing and size information.
	Stats Stats

	// CacheHit reports whether the positions came from the cache.
	CacheHit bool
}

// Stats contains layout run statistics.
type Stats struct {
	Items    int
	Links    int
	Duration time.Duration
}

// Output returns the serializable part of the result.
func (r *Result) Output() graph.Result {
	return graph.Result{
		Layout:    r.Layout,
		Positions: r.Positions,
		Transform: r.Transform,
	}
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the options and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if err := o.Config.Validate(); err != nil {
		return err
	}
	if o.Width < 0 || o.Height < 0 {
		return lcerrors.New(lcerrors.ErrCodeInvalidInput, "viewport must not be negative, got %gx%g", o.Width, o.Height)
	}
	o.validated = true
	return nil
}

// SetDefaults fills in the default config, layout name and logger.
func (o *Options) SetDefaults() {
	if o.Config == (layout.Config{}) {
		o.Config = layout.DefaultConfig()
	}
	if o.Layout == "" {
		o.Layout = layout.DefaultName
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// HasViewport reports whether a fit transform should be computed.
func (o *Options) HasViewport() bool {
	return o.Width > 0 && o.Height > 0
}

// Cacheable reports whether the named layout's output may be cached under
// these options.
func (o *Options) Cacheable(name string) bool {
	return layout.Deterministic(name, o.Seed)
}

// LayoutKeyOpts returns cache key options for the named layout.
func (o *Options) LayoutKeyOpts(name string) cache.LayoutKeyOpts {
	opts := cache.LayoutKeyOpts{
		Layout: name,
		Config: o.Config,
		Width:  o.Width,
		Height: o.Height,
	}
	// The seed only changes the force layout's output.
	if name == layout.NameForce {
		opts.Seed = o.Seed
	}
	return opts
}

// Fit validates cfg and the viewport and returns the transform that frames
// p. It backs the standalone fit command and endpoint.
func Fit(p layout.Positions, width, height float64, cfg layout.Config) (layout.Transform, error) {
	if cfg == (layout.Config{}) {
		cfg = layout.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return layout.Transform{}, err
	}
	if width <= 0 || height <= 0 {
		return layout.Transform{}, lcerrors.New(lcerrors.ErrCodeInvalidInput, "viewport must be positive, got %gx%g", width, height)
	}
	return layout.Fit(p, width, height, cfg), nil
}
