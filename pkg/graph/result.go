package graph

import "github.com/matzehuels/linkchart/pkg/layout"

// Result is the serialized output of a layout run.
type Result struct {
	Layout    string            `json:"layout" yaml:"layout"`
	Positions layout.Positions  `json:"positions" yaml:"positions"`
	Transform *layout.Transform `json:"transform,omitempty" yaml:"transform,omitempty"`
}
