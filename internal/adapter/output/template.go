package output

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/memento/internal/model"
)

// TemplateFormatter renders the greeting with a user-supplied template.
type TemplateFormatter struct {
	opts     FormatterOptions
	template *template.Template
}

// NewTemplateFormatter parses opts.Template.
func NewTemplateFormatter(opts FormatterOptions) (*TemplateFormatter, error) {
	tmpl, err := template.New("greeting").Funcs(templateFuncs()).Parse(opts.Template)
	if err != nil {
		return nil, fmt.Errorf("parse greeting template: %w", err)
	}
	return &TemplateFormatter{opts: opts, template: tmpl}, nil
}

// Format executes the template against the greeting. The result is
// wrapped to opts.Width and terminated with a newline.
func (f *TemplateFormatter) Format(w io.Writer, g *model.Greeting) error {
	var sb strings.Builder
	if err := f.template.Execute(&sb, g); err != nil {
		return fmt.Errorf("render greeting template: %w", err)
	}

	out := wrap(sb.String(), f.opts.Width)
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, err := io.WriteString(w, out)
	return err
}

// templateFuncs returns helper functions available to greeting templates.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"ordinal": humanize.Ordinal,
		"comma": func(n int) string {
			return humanize.Comma(int64(n))
		},
		"date": func(d model.Date, layout string) string {
			return d.Format(layout)
		},
		"message": func(g *model.Greeting) string {
			age, countdown := Message(g, nil)
			return age + "\n" + countdown
		},
	}
}
