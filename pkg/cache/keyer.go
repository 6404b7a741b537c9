package cache

import "github.com/matzehuels/linkchart/pkg/layout"

// Keyer derives cache keys.
type Keyer interface {
	// LayoutKey returns the key for a layout of the graph with the given
	// content hash.
	LayoutKey(graphHash string, opts LayoutKeyOpts) string
}

// LayoutKeyOpts lists every input besides the graph that changes a layout's
// output. Two runs with equal hashes and equal options produce equal
// results.
type LayoutKeyOpts struct {
	Layout string        `json:"layout"`
	Seed   uint64        `json:"seed,omitempty"`
	Config layout.Config `json:"config"`
	Width  float64       `json:"width,omitempty"`
	Height float64       `json:"height,omitempty"`
}

// DefaultKeyer is the standard Keyer.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard Keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// LayoutKey hashes the graph hash and options under the "layout" prefix.
func (DefaultKeyer) LayoutKey(graphHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", graphHash, opts)
}
