package io

import (
	"path/filepath"
	"strings"
)

// Format selects an encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath returns FormatYAML for .yaml and .yml files and FormatJSON
// for everything else, including stdin ("-").
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ParseFormat maps a user-supplied name to a Format. Unknown names return
// false.
func ParseFormat(name string) (Format, bool) {
	switch strings.ToLower(name) {
	case "json", "":
		return FormatJSON, true
	case "yaml", "yml":
		return FormatYAML, true
	default:
		return "", false
	}
}
