package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/jmylchreest/memento/internal/model"
)

// DateLayout is how the plain greeting names today.
const DateLayout = "Monday, January 2"

// PlainFormatter formats the greeting as the two-line human message.
type PlainFormatter struct {
	opts FormatterOptions
}

// NewPlainFormatter creates a new plain text formatter.
func NewPlainFormatter(opts FormatterOptions) *PlainFormatter {
	return &PlainFormatter{opts: opts}
}

// Format writes the greeting surrounded by blank lines.
func (f *PlainFormatter) Format(w io.Writer, g *model.Greeting) error {
	age, countdown := Message(g, f.emphasize(w))

	_, err := fmt.Fprintf(w, "\n%s\n%s\n\n", wrap(age, f.opts.Width), wrap(countdown, f.opts.Width))
	return err
}

// emphasize returns the styling applied to the age clause.
func (f *PlainFormatter) emphasize(w io.Writer) func(string) string {
	if !f.opts.Emphasis {
		return nil
	}

	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI)
	style := r.NewStyle().Underline(true)
	return func(s string) string {
		return style.Render(s)
	}
}

// Message builds the two greeting lines. emphasize, if non-nil, styles
// the age clause.
func Message(g *model.Greeting, emphasize func(string) string) (age, countdown string) {
	var clause string
	if g.IsBirthday {
		clause = fmt.Sprintf("You are exactly %d years old!", g.AgeYears)
	} else {
		clause = fmt.Sprintf("You are %d years and %d days old.", g.AgeYears, g.RemainderDays)
	}
	if emphasize != nil {
		clause = emphasize(clause)
	}

	age = fmt.Sprintf("Today is %s. %s", g.Today.Format(DateLayout), clause)
	countdown = fmt.Sprintf("There are %d days until your next birthday, and %d days left in the year.",
		g.DaysUntilBirthday, g.DaysLeftInYear)
	return age, countdown
}

// wrap word-wraps s to width, leaving ANSI sequences intact.
func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return ansi.Wordwrap(s, width, "")
}
