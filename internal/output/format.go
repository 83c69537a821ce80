// Package output renders results for humans or for programs.
package output

import (
	"errors"
	"fmt"
	"strings"
)

// Format is how results are rendered.
type Format int

const (
	// Text is for humans. It goes through the pretty printer.
	Text Format = iota
	// JSON is indented JSON.
	JSON
	// YAML is a YAML document.
	YAML
)

// ErrUnknownFormat is returned by [ParseFormat] for unsupported names.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat reads the name of a format, ignoring case.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text":
		return Text, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("%w %q (expected text, json, or yaml)", ErrUnknownFormat, name)
	}
}

func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return fmt.Sprintf("<unknown format %d>", int(f))
	}
}
