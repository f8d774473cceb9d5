package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/memento/internal/core"
	"github.com/jmylchreest/memento/internal/model"
	"github.com/jmylchreest/memento/internal/store"
)

var statusOpts struct {
	json bool
}

// StatusReport describes the stored birthday and gate state.
type StatusReport struct {
	Path      string          `json:"path"`
	Birthday  model.Date      `json:"birthday"`
	LastShown time.Time       `json:"last_shown"`
	Due       bool            `json:"due"`
	Greeting  *model.Greeting `json:"greeting"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the stored birthday and when the greeting was last shown",
	Long: `Show the stored birthday, your current age, when the greeting was last
shown and whether it will be shown in the next terminal.

This command never modifies the birthday file.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().BoolVar(&statusOpts.json, "json", false,
		"Output status as JSON")
}

func runStatus(cmd *cobra.Command, args []string) error {
	return writeStatus(os.Stdout, os.Stderr, birthdayFile(), time.Now(), statusOpts.json)
}

// buildStatus reads the birthday file without touching it.
func buildStatus(f *store.BirthdayFile, now time.Time) (*StatusReport, error) {
	lastShown, err := f.LastShown()
	if err != nil {
		return nil, err
	}

	birthday, err := f.LoadAsOf(core.Today(now))
	if err != nil {
		return nil, err
	}

	greeting := core.Compute(birthday, core.Today(now))
	return &StatusReport{
		Path:      f.Path(),
		Birthday:  birthday,
		LastShown: lastShown,
		Due:       core.Due(lastShown, now),
		Greeting:  &greeting,
	}, nil
}

// writeStatus writes the status report as a table or JSON. Advice for a
// malformed birthday file goes to errOut.
func writeStatus(w, errOut io.Writer, f *store.BirthdayFile, now time.Time, asJSON bool) error {
	report, err := buildStatus(f, now)
	switch {
	case errors.Is(err, os.ErrNotExist) || errors.Is(err, store.ErrNoBirthday):
		_, werr := fmt.Fprintf(w, "No birthday stored in %s. Run memento to set one.\n", f.Path())
		return werr
	case errors.Is(err, store.ErrMalformed):
		fmt.Fprint(errOut, store.Remediation(f.Path()))
		return err
	case err != nil:
		return err
	}

	if asJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	}

	g := report.Greeting
	due := "no, already shown today"
	if report.Due {
		due = "yes"
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendRows([]table.Row{
		{"Birthday file", report.Path},
		{"Birthday", report.Birthday.String()},
		{"Age", fmt.Sprintf("%d years, %d days (%s days)", g.AgeYears, g.RemainderDays, humanize.Comma(int64(g.AgeDays)))},
		{"Next birthday", fmt.Sprintf("%s, your %s (in %d days)", g.NextBirthday, humanize.Ordinal(g.NextAge), g.DaysUntilBirthday)},
		{"Last shown", fmt.Sprintf("%s (%s)", report.LastShown.Format("2006-01-02 15:04"), humanize.RelTime(report.LastShown, now, "ago", "from now"))},
		{"Due", due},
	})
	t.SetStyle(table.StyleRounded)
	t.Render()
	return nil
}
