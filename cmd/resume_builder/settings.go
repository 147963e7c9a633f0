package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/config"
	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/observability"
	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/project"
	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/session"
	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/types"
)

var (
	configPath string
	verbose    bool

	settings = config.Defaults()
	logger   = slog.Default()
)

// loadSettings resolves the effective configuration: config file, then
// environment, then flags, then built-in defaults for whatever is still unset.
func loadSettings(cmd *cobra.Command) error {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}
	cfg.ApplyEnv()
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = verbose
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	settings = cfg.MergeWithDefaults(config.Defaults())

	level := slog.LevelWarn
	if settings.Verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	if configPath != "" {
		logger.Debug("loaded config", "path", configPath)
	}
	return nil
}

func openProject(cmd *cobra.Command, path string) (*project.Project, error) {
	p, err := project.LoadFile(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded project", "path", path,
		"sections", len(p.Document.Sections), "entries", p.Document.EntryCount())
	if settings.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintDocumentSummary(p.Document, len(p.IgnoreWords))
	}
	return p, nil
}

func createProject(path string, doc *types.Document, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	return project.SaveFile(path, project.New(doc))
}

// editProject loads path into a session, applies edit and saves the result.
// Nothing is written when edit fails.
func editProject(cmd *cobra.Command, path string, edit func(s *session.Session) error) error {
	p, err := openProject(cmd, path)
	if err != nil {
		return err
	}
	s := session.New(p.Document,
		session.WithLogger(logger),
		session.WithUndoLimit(settings.UndoLimit),
		session.WithIdleInterval(settings.TypingIdle()),
	)
	if err := edit(s); err != nil {
		return err
	}
	s.Commit()
	p.Document = s.Document()
	if err := project.SaveFile(path, p); err != nil {
		return err
	}
	logger.Debug("saved project", "path", path)
	return nil
}

// position converts a 1-based command-line position to an index.
func position(arg, what string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid %s position %q (positions start at 1)", what, arg)
	}
	return n - 1, nil
}
