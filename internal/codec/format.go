// Package codec reads and writes game-state documents as JSON or YAML and
// checks that decoded documents conform to the game-state shape.
package codec

import (
	"path/filepath"
	"strings"

	"github.com/KirkDiggler/rpg-state/internal/errors"
)

// Format is a document encoding
type Format string

// Supported formats
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// String returns the string representation of the format
func (f Format) String() string {
	return string(f)
}

// Formats returns the names of all supported formats
func Formats() []string {
	return []string{FormatJSON.String(), FormatYAML.String()}
}

// ParseFormat converts a name such as "json" or "YAML" to a Format.
// "yml" is accepted as yaml.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", unsupportedFormat(Format(name))
	}
}

func unsupportedFormat(format Format) *errors.Error {
	return errors.InvalidArgumentf("unsupported format %q", format.String()).
		WithMeta("supported", Formats())
}

// FormatFromPath guesses the format from a file extension
func FormatFromPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, true
	case ".yaml", ".yml":
		return FormatYAML, true
	default:
		return "", false
	}
}
