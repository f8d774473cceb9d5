// Package greeter shows the birthday greeting at most once per day.
//
// The birthday file's modification time is the "last shown" marker: the
// greeting is displayed when the file was last modified at or before local
// midnight, and the file is touched when it is. A missing file starts the
// first-run prompt instead.
package greeter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jmylchreest/memento/internal/adapter/output"
	"github.com/jmylchreest/memento/internal/core"
	"github.com/jmylchreest/memento/internal/model"
	"github.com/jmylchreest/memento/internal/store"
)

// Prompter asks the user for their birthday on first run.
type Prompter interface {
	Prompt(ctx context.Context, today model.Date) (model.Date, error)
}

// Options configures a Greeter.
type Options struct {
	File      *store.BirthdayFile
	Prompter  Prompter
	Formatter output.Formatter
	Out       io.Writer // greeting
	ErrOut    io.Writer // remediation advice
	Force     bool      // show even if already shown today
	Now       func() time.Time
	Logger    *slog.Logger
}

// Result reports what a run did.
type Result struct {
	Shown    bool
	FirstRun bool
	Greeting *model.Greeting
}

// Greeter runs the daily greeting.
type Greeter struct {
	file      *store.BirthdayFile
	prompter  Prompter
	formatter output.Formatter
	out       io.Writer
	errOut    io.Writer
	force     bool
	now       func() time.Time
	logger    *slog.Logger
}

// New creates a Greeter. Now defaults to time.Now and Logger to slog.Default.
func New(opts Options) *Greeter {
	g := &Greeter{
		file:      opts.File,
		prompter:  opts.Prompter,
		formatter: opts.Formatter,
		out:       opts.Out,
		errOut:    opts.ErrOut,
		force:     opts.Force,
		now:       opts.Now,
		logger:    opts.Logger,
	}
	if g.now == nil {
		g.now = time.Now
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	if g.errOut == nil {
		g.errOut = io.Discard
	}
	return g
}

// Run shows the greeting if it is due, running the first-run flow when no
// birthday is stored. A malformed birthday file is fatal: advice to delete
// it is written to ErrOut and the error is returned.
func (g *Greeter) Run(ctx context.Context) (Result, error) {
	lastShown, err := g.file.LastShown()
	if err != nil {
		g.logger.Debug("birthday file unavailable, starting first run", "path", g.file.Path(), "error", err)
		return g.firstRun(ctx)
	}

	now := g.now()
	birthday, err := g.file.LoadAsOf(core.Today(now))
	switch {
	case errors.Is(err, store.ErrMalformed):
		g.logger.Error("cannot read birthday file", "path", g.file.Path(), "error", err)
		fmt.Fprint(g.errOut, store.Remediation(g.file.Path()))
		return Result{}, err
	case err != nil:
		g.logger.Debug("no usable birthday stored, starting first run", "path", g.file.Path(), "error", err)
		return g.firstRun(ctx)
	}

	if !g.force && !core.Due(lastShown, now) {
		g.logger.Debug("greeting already shown today", "last_shown", lastShown)
		return Result{}, nil
	}

	if err := g.file.Touch(now); err != nil {
		return Result{}, err
	}

	return g.show(birthday, now, false)
}

// firstRun prompts for a birthday, stores it and shows the greeting.
func (g *Greeter) firstRun(ctx context.Context) (Result, error) {
	now := g.now()

	birthday, err := g.prompter.Prompt(ctx, core.Today(now))
	if err != nil {
		return Result{}, fmt.Errorf("first run: %w", err)
	}

	if err := g.file.Create(birthday); err != nil {
		return Result{}, err
	}
	if err := g.file.Touch(now); err != nil {
		return Result{}, err
	}
	g.logger.Info("stored birthday", "path", g.file.Path(), "birthday", birthday)

	return g.show(birthday, now, true)
}

func (g *Greeter) show(birthday model.Date, now time.Time, firstRun bool) (Result, error) {
	greeting := core.Compute(birthday, core.Today(now))
	if err := g.formatter.Format(g.out, &greeting); err != nil {
		return Result{}, fmt.Errorf("write greeting: %w", err)
	}
	return Result{Shown: true, FirstRun: firstRun, Greeting: &greeting}, nil
}
