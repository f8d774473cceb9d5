// Package output provides output formatters for the daily greeting.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jmylchreest/memento/internal/model"
)

// Formatter formats a greeting for output.
type Formatter interface {
	// Format writes the formatted greeting to the writer.
	Format(w io.Writer, g *model.Greeting) error
}

// FormatType represents an output format type.
type FormatType string

const (
	FormatPlain FormatType = "plain"
	FormatJSON  FormatType = "json"
	FormatYAML  FormatType = "yaml"
)

// ParseFormat validates a format name. Empty means plain.
func ParseFormat(s string) (FormatType, error) {
	switch FormatType(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatPlain:
		return FormatPlain, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q (want plain, json or yaml)", s)
	}
}

// FormatterOptions configures formatter behavior.
type FormatterOptions struct {
	Width    int    // Wrap width for plain output (0 = no wrapping)
	Emphasis bool   // Underline the age clause with ANSI codes
	Template string // Custom text/template for plain output
}

// NewFormatter creates a formatter for the specified format type.
// Returns an error if the custom template does not parse.
func NewFormatter(format FormatType, opts FormatterOptions) (Formatter, error) {
	switch format {
	case FormatJSON:
		return NewJSONFormatter(opts), nil
	case FormatYAML:
		return NewYAMLFormatter(opts), nil
	case FormatPlain:
		fallthrough
	default:
		if opts.Template != "" {
			return NewTemplateFormatter(opts)
		}
		return NewPlainFormatter(opts), nil
	}
}
