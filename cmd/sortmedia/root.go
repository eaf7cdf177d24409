package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vmunix/sortmedia/internal/config"
	"github.com/vmunix/sortmedia/internal/media"
	"github.com/vmunix/sortmedia/internal/mover"
)

var errUsage = errors.New("expected exactly one source directory")

// options carries the flag values for one invocation.
type options struct {
	configPath string
	logLevel   string
	jsonOutput bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "sortmedia [flags] <source-directory>",
		Short: "Move images and videos out of a directory",
		Long: `sortmedia - move images and videos into your home directory

Files directly inside <source-directory> are sorted by extension:
  jpg, jpeg, png, webp, gif   -> ~/TestPics
  mp4, mov, webm              -> ~/TestVids
Everything else, including subdirectories, is left in place.

Missing destination directories are created unless [move] create_dirs
is false in the config file.

Exit status is 0 on success, 1 if the run could not start, and 2 if
some files could not be moved.`,
		Example: `  sortmedia ~/Downloads
  sortmedia --json /media/card/DCIM
  sortmedia --config ./sortmedia.toml --log-level debug .`,
		Args:          sourceDirArg,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to config file (default: $SORTMEDIA_CONFIG or "+config.DefaultPath()+")")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the report as JSON")

	cmd.Version = version
	cmd.SetVersionTemplate("sortmedia {{.Version}}\n")
	return cmd
}

func sourceDirArg(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w, got %d arguments", errUsage, len(args))
	}
	return nil
}

func run(stdout, stderr io.Writer, opts *options, source string) error {
	cfg, cfgPath, err := config.Resolve(opts.configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	level := cfg.Log.Level
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	if !isValidLogLevel(level) {
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", level)
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: parseLogLevel(level),
	}))
	if cfgPath != "" {
		logger.Debug("config loaded", "path", cfgPath)
	}

	dir, err := mover.ValidateSourceDir(source)
	if err != nil {
		return err
	}

	home, err := media.HomeDir()
	if err != nil {
		return err
	}

	dests := cfg.MediaDestinations()
	sorter := mover.New(mover.Options{
		HomeDir:      home,
		Destinations: &dests,
		CreateDirs:   cfg.Move.CreateDirs,
		Logger:       logger,
	})

	report, err := sorter.ProcessDirectory(dir)
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		if err := printJSON(stdout, report); err != nil {
			return err
		}
	} else {
		printReport(stdout, report)
	}
	return report.Err()
}

func isValidLogLevel(s string) bool {
	switch strings.ToLower(s) {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
