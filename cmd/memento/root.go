// Package main provides the CLI entrypoint for memento.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/jmylchreest/memento/internal/adapter/input"
	"github.com/jmylchreest/memento/internal/adapter/output"
	"github.com/jmylchreest/memento/internal/config"
	"github.com/jmylchreest/memento/internal/greeter"
	"github.com/jmylchreest/memento/internal/store"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose      bool
		birthdayFile string
		configPath   string
	}
	greetOpts struct {
		force  bool
		format string
	}
	logger *slog.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "memento",
	Short: "Daily reminder of your age, for your shell startup",
	Long: `memento greets you once per day with your current age and the number of
days until your next birthday.

Add it to your shell startup file (e.g. ~/.bashrc). The first time it runs it
asks for your birthday and stores it in ~/.config/mortality. After that, the
greeting appears in the first terminal of each day and stays quiet otherwise.
The file's modification time records when the greeting was last shown.

Delete the birthday file to enter a different birthday.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Log to stderr until the config says otherwise
		setupLogger(os.Stderr, "")

		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if cfg.Log.File != "" {
			setupLogger(&lumberjack.Logger{
				Filename:   cfg.Log.File,
				MaxSize:    cfg.Log.MaxSizeMB,
				MaxBackups: cfg.Log.MaxBackups,
			}, cfg.Log.Level)
		} else {
			setupLogger(os.Stderr, cfg.Log.Level)
		}

		return nil
	},
	RunE: runGreet,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "memento: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.birthdayFile, "birthday-file", "",
		"Path to birthday file (default: ~/.config/mortality)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/memento/config.toml)")

	rootCmd.Flags().BoolVarP(&greetOpts.force, "force", "f", false,
		"Show the greeting even if it was already shown today")
	rootCmd.Flags().StringVar(&greetOpts.format, "format", "",
		"Output format: plain, json, yaml (default from config)")
}

func runGreet(cmd *cobra.Command, args []string) error {
	format := greetOpts.format
	if format == "" {
		format = cfg.Greeting.Format
	}
	formatType, err := output.ParseFormat(format)
	if err != nil {
		return err
	}

	width := greetingWidth()
	formatter, err := output.NewFormatter(formatType, output.FormatterOptions{
		Width:    width,
		Emphasis: cfg.Greeting.Emphasis && isTerminal(os.Stdout),
		Template: cfg.Greeting.Template,
	})
	if err != nil {
		return err
	}

	g := greeter.New(greeter.Options{
		File:      birthdayFile(),
		Prompter:  input.NewPrompter(os.Stdin, os.Stdout, width),
		Formatter: formatter,
		Out:       os.Stdout,
		ErrOut:    os.Stderr,
		Force:     greetOpts.force,
		Logger:    logger,
	})

	res, err := g.Run(cmd.Context())
	if err != nil {
		return err
	}
	logger.Debug("greeter finished", "shown", res.Shown, "first_run", res.FirstRun)
	return nil
}

// setupLogger configures the global slog logger.
func setupLogger(w io.Writer, levelName string) {
	level := slog.LevelWarn
	switch strings.ToLower(levelName) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr (or a file) so stdout is clean for output
	handler := slog.NewTextHandler(w, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

// birthdayFile returns the birthday file selected by flag or default path.
func birthdayFile() *store.BirthdayFile {
	path := globalOpts.birthdayFile
	if path == "" {
		path = config.BirthdayPath()
	}
	return store.NewBirthdayFile(path)
}

// greetingWidth returns the configured wrap width, else the terminal width.
func greetingWidth() int {
	if cfg.Greeting.Width > 0 {
		return cfg.Greeting.Width
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return config.DefaultWidth
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
