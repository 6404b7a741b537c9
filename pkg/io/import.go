package io

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	lcerrors "github.com/matzehuels/linkchart/pkg/errors"
	"github.com/matzehuels/linkchart/pkg/graph"
)

// ReadGraph decodes a graph from r in the given format and validates it.
//
// The input must be an object with "items" and "links" arrays. Each item
// needs an "id"; "type", "label", "timestamp" (RFC 3339) and "meta" are
// optional. Each link needs "from" and "to". Links may reference ids that
// are not items; layouts ignore them.
//
// ReadGraph does not close r.
func ReadGraph(r io.Reader, format Format) (graph.Graph, error) {
	var g graph.Graph
	var err error
	switch format {
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&g)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		err = json.NewDecoder(r).Decode(&g)
	}
	if err != nil {
		return graph.Graph{}, lcerrors.Wrap(lcerrors.ErrCodeInvalidFormat, err, "decode %s graph", format)
	}
	if err := g.Validate(); err != nil {
		return graph.Graph{}, err
	}
	return g, nil
}

// DecodeGraph is ReadGraph over a byte slice.
func DecodeGraph(data []byte, format Format) (graph.Graph, error) {
	var g graph.Graph
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &g)
	default:
		err = json.Unmarshal(data, &g)
	}
	if err != nil {
		return graph.Graph{}, lcerrors.Wrap(lcerrors.ErrCodeInvalidFormat, err, "decode %s graph", format)
	}
	if err := g.Validate(); err != nil {
		return graph.Graph{}, err
	}
	return g, nil
}

// ImportGraph reads the graph file at path, choosing the format from its
// extension. A path of "-" reads JSON from stdin.
func ImportGraph(path string) (graph.Graph, error) {
	if path == "-" {
		return ReadGraph(os.Stdin, FormatJSON)
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return graph.Graph{}, lcerrors.Wrap(lcerrors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return graph.Graph{}, lcerrors.Wrap(lcerrors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return ReadGraph(f, FormatFromPath(path))
}

// ReadResult decodes a layout result, as written by [WriteResult], from r.
func ReadResult(r io.Reader, format Format) (graph.Result, error) {
	var res graph.Result
	var err error
	switch format {
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&res)
	default:
		err = json.NewDecoder(r).Decode(&res)
	}
	if err != nil {
		return graph.Result{}, lcerrors.Wrap(lcerrors.ErrCodeInvalidFormat, err, "decode %s result", format)
	}
	return res, nil
}

// ImportResult reads the result file at path, choosing the format from its
// extension. A path of "-" reads JSON from stdin.
func ImportResult(path string) (graph.Result, error) {
	if path == "-" {
		return ReadResult(os.Stdin, FormatJSON)
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return graph.Result{}, lcerrors.Wrap(lcerrors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return graph.Result{}, lcerrors.Wrap(lcerrors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return ReadResult(f, FormatFromPath(path))
}
