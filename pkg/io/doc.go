// Package io reads link chart graphs from disk and writes layout results.
//
// # Formats
//
// Two encodings are supported, chosen by [FormatFromPath] from the file
// extension:
//
//   - .yaml, .yml: YAML (gopkg.in/yaml.v3)
//   - anything else: JSON (github.com/goccy/go-json)
//
// Both decode the same [graph.Graph] shape, so a chart can be authored by
// hand in YAML and exported from another tool as JSON:
//
//	items:
//	  - id: p1
//	    type: person
//	  - id: 42
//	    type: vehicle
//	links:
//	  - {from: p1, to: 42}
//
// # Errors
//
// A missing input file yields an error with code FILE_NOT_FOUND; malformed
// content yields INVALID_FORMAT; a graph with empty ids yields INVALID_INPUT.
// Use errors.GetCode from pkg/errors to branch on them.
//
// # Output
//
// [WriteResult] and [WriteGraph] indent JSON with two spaces and end with a
// newline. Map keys, and so position ids, come out sorted.
package io
