package output

import (
	"encoding/json"
	"io"

	"github.com/jmylchreest/memento/internal/model"
)

// JSONFormatter formats the greeting as JSON.
type JSONFormatter struct {
	opts FormatterOptions
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(opts FormatterOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Format writes the greeting as an indented JSON object.
func (f *JSONFormatter) Format(w io.Writer, g *model.Greeting) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(g)
}
