// Package input provides the interactive first-run prompt.
package input

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/jmylchreest/memento/internal/model"
)

// ErrNoInput is returned when input ends before a valid birthday is read.
var ErrNoInput = errors.New("no birthday entered")

// Prompt messages.
const (
	introText   = "This is memento, the memento-mori shell greeting. Looks like you don't have a config file yet. It's pretty easy. Just enter your birthday in the format YYYY/MM/DD:"
	promptLabel = "Birthday: "
	retryText   = "Sorry, couldn't parse that. Please try again."
	futureText  = "That date hasn't happened yet. Please try again."
)

// Prompter asks the user for their birthday.
type Prompter struct {
	reader *bufio.Reader
	writer io.Writer
	width  int
}

// NewPrompter creates a Prompter reading answers from r and writing
// prompts to w. The intro text is wrapped to width (0 = no wrapping).
func NewPrompter(r io.Reader, w io.Writer, width int) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(r),
		writer: w,
		width:  width,
	}
}

// Prompt asks for a YYYY/MM/DD birthday until a valid date no later than
// today is entered. Returns ErrNoInput if the input ends first.
func (p *Prompter) Prompt(ctx context.Context, today model.Date) (model.Date, error) {
	intro := introText
	if p.width > 0 {
		intro = ansi.Wordwrap(intro, p.width, "")
	}
	if _, err := fmt.Fprintf(p.writer, "\n%s\n\n", intro); err != nil {
		return model.Date{}, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return model.Date{}, err
		}

		if _, err := io.WriteString(p.writer, promptLabel); err != nil {
			return model.Date{}, err
		}

		line, readErr := p.reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return model.Date{}, fmt.Errorf("read birthday: %w", readErr)
		}

		if strings.TrimSpace(line) != "" {
			birthday, err := model.ParseDate(line, model.PromptLayout)
			switch {
			case err != nil:
				fmt.Fprintln(p.writer, retryText)
			case birthday.After(today):
				fmt.Fprintln(p.writer, futureText)
			default:
				return birthday, nil
			}
		} else if readErr == nil {
			fmt.Fprintln(p.writer, retryText)
		}

		if errors.Is(readErr, io.EOF) {
			fmt.Fprintln(p.writer)
			return model.Date{}, ErrNoInput
		}
	}
}
