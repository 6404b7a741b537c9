package graph

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	lcerrors "github.com/matzehuels/linkchart/pkg/errors"
	"github.com/matzehuels/linkchart/pkg/layout"
)

// =============================================================================
// Graph - Link Chart Serialization
// =============================================================================

// Graph is the canonical serialization format for link charts.
// Used for input files, API requests and cache keys.
type Graph struct {
	Items []Item `json:"items" yaml:"items" validate:"dive"`
	Links []Link `json:"links" yaml:"links" validate:"dive"`
}

// Item is a chart node as it appears on the wire.
type Item struct {
	ID        ID             `json:"id" yaml:"id" validate:"required"`
	Type      string         `json:"type,omitempty" yaml:"type,omitempty"`
	Label     string         `json:"label,omitempty" yaml:"label,omitempty"` // Display label (defaults to ID)
	Timestamp *time.Time     `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	Meta      map[string]any `json:"meta,omitempty" yaml:"meta,omitempty"`
}

// Link is a directed relationship between two item ids.
type Link struct {
	From ID `json:"from" yaml:"from" validate:"required"`
	To   ID `json:"to" yaml:"to" validate:"required"`
}

// =============================================================================
// ID - Opaque Identifier
// =============================================================================

// ID is an item identifier. It decodes from either a string or an integer so
// that exports from systems with numeric keys load unchanged; the integer 7
// and the string "7" are the same id.
type ID string

// UnmarshalJSON accepts a JSON string or number.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	if _, err := strconv.ParseFloat(string(data), 64); err != nil {
		return fmt.Errorf("id must be a string or number, got %s", data)
	}
	*id = ID(data)
	return nil
}

// UnmarshalYAML accepts any scalar node.
func (id *ID) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: id must be a scalar", node.Line)
	}
	*id = ID(node.Value)
	return nil
}

// =============================================================================
// Conversion
// =============================================================================

// LayoutItems returns the items in input order as layout items.
func (g Graph) LayoutItems() []layout.Item {
	out := make([]layout.Item, len(g.Items))
	for i, it := range g.Items {
		out[i] = layout.Item{ID: layout.ID(it.ID), Type: it.Type, Timestamp: it.Timestamp}
	}
	return out
}

// LayoutLinks returns the links as layout links.
func (g Graph) LayoutLinks() []layout.Link {
	out := make([]layout.Link, len(g.Links))
	for i, l := range g.Links {
		out[i] = layout.Link{From: layout.ID(l.From), To: layout.ID(l.To)}
	}
	return out
}

// =============================================================================
// Validation
// =============================================================================

var validate = validator.New()

// Validate reports empty item ids and links with an empty endpoint.
// Duplicate ids and links to unknown items are not errors; layouts keep the
// first occurrence and skip dangling links.
func (g Graph) Validate() error {
	err := validate.Struct(g)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return lcerrors.Wrap(lcerrors.ErrCodeInvalidInput, err, "validate graph")
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s is required", strings.TrimPrefix(fe.Namespace(), "Graph.")))
	}
	return lcerrors.New(lcerrors.ErrCodeInvalidInput, "invalid graph: %s", strings.Join(msgs, "; "))
}

// Stats returns the item and link counts.
func (g Graph) Stats() (items, links int) {
	return len(g.Items), len(g.Links)
}
