package layout

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	lcerrors "github.com/matzehuels/linkchart/pkg/errors"
)

// ID identifies an item. It is opaque: strategies compare ids for equality
// only and never assume they are numeric.
type ID string

// Item is a node to be placed on the chart.
type Item struct {
	ID        ID
	Type      string     // category label; empty groups as "other"
	Timestamp *time.Time // optional; used by the timeline layout
}

// Link is a directed relationship between two items. Links whose endpoints
// are not in the item set are ignored.
type Link struct {
	From ID
	To   ID
}

// Position is the top-left anchor of a node box.
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Positions maps each item id to its computed position.
type Positions map[ID]Position

// Transform is a zoom and pan pair that frames a layout inside a viewport.
type Transform struct {
	Zoom float64 `json:"zoom" yaml:"zoom"`
	PanX float64 `json:"pan_x" yaml:"pan_x"`
	PanY float64 `json:"pan_y" yaml:"pan_y"`
}

// Config holds node geometry, spacing and zoom bounds. Strategies receive it
// by value and never modify the caller's copy.
type Config struct {
	NodeWidth      float64 `json:"node_width" toml:"node_width" validate:"gt=0"`
	NodeHeight     float64 `json:"node_height" toml:"node_height" validate:"gt=0"`
	NodeSpacingX   float64 `json:"node_spacing_x" toml:"node_spacing_x" validate:"gt=0"`
	NodeSpacingY   float64 `json:"node_spacing_y" toml:"node_spacing_y" validate:"gt=0"`
	MinNodePadding float64 `json:"min_node_padding" toml:"min_node_padding" validate:"gt=0"`
	FitPadding     float64 `json:"fit_padding" toml:"fit_padding" validate:"gt=0"`
	MinZoom        float64 `json:"min_zoom" toml:"min_zoom" validate:"gt=0,ltefield=FitMaxZoom"`
	MaxZoom        float64 `json:"max_zoom" toml:"max_zoom" validate:"gt=0"`
	FitMaxZoom     float64 `json:"fit_max_zoom" toml:"fit_max_zoom" validate:"gt=0,ltefield=MaxZoom"`
}

// DefaultConfig returns the standard chart geometry: 160x80 nodes spaced
// 220 apart horizontally and 140 vertically.
func DefaultConfig() Config {
	return Config{
		NodeWidth:      160,
		NodeHeight:     80,
		NodeSpacingX:   220,
		NodeSpacingY:   140,
		MinNodePadding: 20,
		FitPadding:     100,
		MinZoom:        0.1,
		MaxZoom:        5,
		FitMaxZoom:     1.5,
	}
}

// SpacingFactor normalizes ring and tier radii to the configured spacing.
// The default spacing yields exactly 1.
func (c Config) SpacingFactor() float64 {
	return (c.NodeSpacingX + c.NodeSpacingY) / 2 / 180
}

// withSpacing returns a copy of c with both spacings multiplied by k.
func (c Config) withSpacing(k float64) Config {
	c.NodeSpacingX *= k
	c.NodeSpacingY *= k
	return c
}

var validate = validator.New()

// Validate checks that every dimension is positive and that the zoom bounds
// are ordered MinZoom <= FitMaxZoom <= MaxZoom. The strategies themselves do
// not call it; it exists for the layers that accept configuration from users.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return lcerrors.Wrap(lcerrors.ErrCodeInvalidConfig, err, "validate layout config")
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, formatFieldError(fe))
	}
	return lcerrors.New(lcerrors.ErrCodeInvalidConfig, "%s", strings.Join(msgs, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gt":
		return fmt.Sprintf("%s: must be greater than %s", fe.Field(), fe.Param())
	case "ltefield":
		return fmt.Sprintf("%s: must not exceed %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s: failed %s validation", fe.Field(), fe.Tag())
	}
}
