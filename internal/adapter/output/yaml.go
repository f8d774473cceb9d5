package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/memento/internal/model"
)

// YAMLFormatter formats the greeting as YAML.
type YAMLFormatter struct {
	opts FormatterOptions
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(opts FormatterOptions) *YAMLFormatter {
	return &YAMLFormatter{opts: opts}
}

// Format writes the greeting as a YAML document.
func (f *YAMLFormatter) Format(w io.Writer, g *model.Greeting) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(g); err != nil {
		return err
	}
	return encoder.Close()
}
