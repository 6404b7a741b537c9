package io

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/linkchart/pkg/graph"
)

// WriteResult encodes a layout result to w.
// This format is what the CLI prints and the server returns.
func WriteResult(w io.Writer, r graph.Result, format Format) error {
	return encode(w, r, format)
}

// WriteGraph encodes a graph to w. The output re-imports with [ReadGraph].
func WriteGraph(w io.Writer, g graph.Graph, format Format) error {
	return encode(w, g, format)
}

// ExportResult writes a layout result to a file at path, choosing the
// format from its extension.
func ExportResult(r graph.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteResult(f, r, FormatFromPath(path)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func encode(w io.Writer, v any, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		return nil
	}
}
