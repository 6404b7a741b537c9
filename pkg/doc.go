// Package pkg provides the core libraries for linkchart link-chart layout.
//
// # Overview
//
// Linkchart positions the items of a link-analysis chart (people, accounts,
// vehicles, events) connected by directed links. The pkg directory is
// organized into three areas:
//
//  1. [layout] - Domain logic (strategies, overlap resolution, viewport fit)
//  2. [cache], [config], [observability] - Infrastructure
//  3. [graph], [io], [pipeline] - Serialization and orchestration
//
// # Architecture
//
// The typical data flow through linkchart:
//
//	graph.json / graph.yaml
//	         ↓
//	    [io] package (decode + validate)
//	         ↓
//	    [pipeline] package (cache lookup, strategy selection)
//	         ↓
//	    [layout] package (positions + overlap pass + fit)
//	         ↓
//	    result JSON / YAML
//
// # Quick Start
//
// Lay out a graph file and frame it in a viewport:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/linkchart/pkg/io"
//	    "github.com/matzehuels/linkchart/pkg/pipeline"
//	)
//
//	g, _ := io.ImportGraph("chart.json")
//	runner := pipeline.NewRunner(nil, nil, nil)
//	res, _ := runner.Run(context.Background(), g, pipeline.Options{
//	    Layout: "compactPeacock",
//	    Width:  1280,
//	    Height: 800,
//	})
//	_ = io.WriteResult(os.Stdout, res.Output(), io.FormatJSON)
//
// Or call a strategy directly:
//
//	pos := layout.Select("tree")(items, links, layout.DefaultConfig())
//	t := layout.Fit(pos, 1280, 800, layout.DefaultConfig())
//
// # Main Packages
//
// ## Core Domain Logic
//
// [layout] - Eleven strategies behind one function type, a registry with a
// hierarchy fallback, the shared overlap pass and the fit calculator.
//
// ## Serialization
//
// [graph] - Graph, item and link types as read from disk or HTTP, plus the
// layout result.
//
// [io] - JSON and YAML import and export of graphs and results.
//
// ## Infrastructure
//
// [pipeline] - Validation, caching and hooks around a layout run. Used by
// both the CLI and the HTTP server.
//
// [cache] - Cache interface with file, Redis and no-op backends and the
// keyer that derives layout cache keys.
//
// [config] - TOML configuration for defaults, cache backend and server.
//
// [observability] - Hook interfaces for layout, cache and HTTP events.
//
// [errors] - Coded errors shared by the CLI and the HTTP API.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/layout/...   # Specific package
//	go test -run Example       # Examples only
//
// [layout]: https://pkg.go.dev/github.com/matzehuels/linkchart/pkg/layout
// [cache]: https://pkg.go.dev/github.com/matzehuels/linkchart/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/linkchart/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/linkchart/pkg/observability
// [graph]: https://pkg.go.dev/github.com/matzehuels/linkchart/pkg/graph
// [io]: https://pkg.go.dev/github.com/matzehuels/linkchart/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/linkchart/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/matzehuels/linkchart/pkg/errors
package pkg
