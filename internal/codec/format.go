package codec

import (
	"fmt"
	"strings"
)

// Format is an output encoding for trees.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatCBOR Format = "cbor"
	// FormatEntries writes the leaves as an entry file that build reads back.
	FormatEntries Format = "entries"
)

// Formats lists every supported output format.
var Formats = []Format{FormatJSON, FormatYAML, FormatTOML, FormatCBOR, FormatEntries}

// ParseFormat returns the format with the given name, case-insensitively.
// "yml" is accepted for YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "cbor":
		return FormatCBOR, nil
	case "entries":
		return FormatEntries, nil
	default:
		return "", fmt.Errorf("unknown format %q (want json, yaml, toml, cbor or entries)", name)
	}
}

// IsBinary reports whether the format is not meant for a terminal.
func (f Format) IsBinary() bool {
	return f == FormatCBOR
}
