// Package graph provides the serialization types for link charts and their
// computed layouts.
//
// This package defines the wire format read by the CLI and the HTTP server
// and written back out after a layout runs. It sits between user files and
// the in-memory types of pkg/layout:
//
//   - [Graph], [Item], [Link]: Serialization types (this package)
//   - layout.Item, layout.Link: What the strategies consume
//
// Use [Graph.LayoutItems] and [Graph.LayoutLinks] to convert.
//
// # Graph Format
//
// Graphs use an item/link format:
//
//	{
//	  "items": [
//	    {"id": "p1", "type": "person", "timestamp": "2024-03-01T10:00:00Z"},
//	    {"id": 42, "type": "vehicle"}
//	  ],
//	  "links": [{"from": "p1", "to": 42}]
//	}
//
// Ids may be strings or integers; both decode to the same opaque [ID].
// Items may carry a display label and free-form metadata, neither of which
// affects placement.
//
// # Results
//
// [Result] is what a layout run produces:
//
//	{
//	  "layout": "hierarchy",
//	  "positions": {"42": {"x": 0, "y": 140}, "p1": {"x": 0, "y": 0}},
//	  "transform": {"zoom": 1.5, "pan_x": 380, "pan_y": 440}
//	}
//
// Positions are keyed by id and encoded in sorted key order.
//
// # Concurrency
//
// All functions are safe for concurrent reads but not concurrent writes.
package graph
