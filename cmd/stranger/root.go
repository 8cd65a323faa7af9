package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	apppkg "github.com/kk-code-lab/stranger/internal/app"
	"github.com/kk-code-lab/stranger/internal/config"
	"github.com/kk-code-lab/stranger/internal/shellsetup"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// detectShell is the --setup value used when the flag is given bare.
const detectShell = "detect"

type rootOptions struct {
	configPath string
	editor     string
	logLevel   string
	setup      string
}

var parentShellDetector = shellsetup.DetectParentShellName

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "stranger [DIR]",
		Short: "Miller-column terminal file browser",
		Long: `stranger browses directories in three columns (parent, current, child)
and copies, moves, renames, trashes and bookmarks files without leaving the
keyboard.

Run "stranger --setup" and add the output to your shell rc file so that
quitting with "zz" changes the shell to the browsed directory.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("setup") {
				shell := opts.setup
				if shell == detectShell {
					shell = ""
				}
				return shellsetup.PrintSetup(cmd.OutOrStdout(), shell, shellsetup.Config{DetectParent: parentShellDetector})
			}
			dir := ""
			if len(args) == 1 {
				dir = args[0]
			}
			if err := run(opts, dir); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				return err
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config-path", config.DefaultPath, "config file (TOML)")
	flags.StringVar(&opts.editor, "editor", "", "editor command used to open files (overrides config)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	flags.StringVarP(&opts.setup, "setup", "s", "", "print the shell integration snippet and exit (--setup=SHELL to pick the shell)")
	flags.Lookup("setup").NoOptDefVal = detectShell
	return cmd
}

func run(opts *rootOptions, dir string) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logFile := setupLogging(cfg.Log, opts.logLevel)
	if logFile != nil {
		defer logFile.Close()
	}

	hide, err := config.CompileHidePatterns(cfg.Common.HidePatterns)
	if err != nil {
		return err
	}
	editor := cfg.Common.Editor
	if opts.editor != "" {
		editor = opts.editor
	}

	app, err := apppkg.NewApplication(apppkg.Options{
		Dir:        dir,
		Editor:     editor,
		Store:      &config.Store{Path: opts.configPath, Config: cfg},
		Hide:       hide,
		ShowHidden: cfg.Common.ShowHidden,
	})
	if err != nil {
		return fmt.Errorf("initializing application: %w", err)
	}
	defer func() {
		_ = app.Close()
	}()

	if err := app.Run(); err != nil {
		return err
	}

	// Use PID to make filename unique (supports multiple instances)
	resultFile := apppkg.ResultFilePath(os.Getpid())
	if err := apppkg.WriteResult(resultFile, app.GetCurrentPath()); err != nil {
		logrus.WithError(err).Warn("result file not written")
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	return nil
}

// setupLogging sends logs to a file so the terminal UI is never written to.
// The returned file, if any, should be closed on exit.
func setupLogging(cfg config.LogConfig, override string) *os.File {
	level := cfg.Level
	if override != "" {
		level = override
	}
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	path := cfg.File
	if path == "" {
		path = filepath.Join(os.TempDir(), "stranger", "stranger.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		logrus.SetOutput(io.Discard)
		return nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logrus.SetOutput(io.Discard)
		return nil
	}
	logrus.SetOutput(file)
	return file
}
