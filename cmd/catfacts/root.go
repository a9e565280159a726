package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Mr-Dark-debug/catfacts/internal/catalog"
	"github.com/Mr-Dark-debug/catfacts/internal/config"
	"github.com/Mr-Dark-debug/catfacts/internal/logging"
	"github.com/Mr-Dark-debug/catfacts/internal/tui"
)

// pageFlags are the command-line overrides of the config file.
type pageFlags struct {
	interval     time.Duration
	noAnimations bool
	logFile      string
	debug        bool
}

func newRootCmd() *cobra.Command {
	var flags pageFlags

	cmd := &cobra.Command{
		Use:   "catfacts",
		Short: "All About Cats, in your terminal",
		Long: `catfacts shows a rotating gallery of cat pictures above three panels:
an overview, popular breeds with their ratings, and care tips.

Switch panels with 1/2/3 or tab, scroll with the arrow keys, quit with q.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			return runPage(cmd, cfg)
		},
	}

	cmd.PersistentFlags().DurationVar(&flags.interval, "interval", 0, "time each image stays on screen (default 5s)")
	cmd.Flags().BoolVar(&flags.noAnimations, "no-animations", false, "disable fades and reveals")
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "write JSON logs to this file")
	cmd.Flags().BoolVar(&flags.debug, "debug", false, "log at debug level")

	cmd.AddCommand(newSnapshotCmd(&flags))
	return cmd
}

// loadConfig reads config and applies the flags the user set.
func loadConfig(cmd *cobra.Command, flags pageFlags) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, fmt.Errorf("loading config: %w", err)
	}

	if cmd.Flags().Changed("interval") {
		cfg.Carousel.Interval = flags.interval
	}
	if flags.noAnimations {
		cfg.UI.Animations = false
	}
	if flags.logFile != "" {
		cfg.Log.File = flags.logFile
	}
	if flags.debug {
		cfg.Log.Level = "debug"
		if cfg.Log.File == "" {
			cfg.Log.File = filepath.Join(os.TempDir(), "catfacts.log")
		}
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// runPage runs the interactive page until the user quits or a signal
// cancels the command context.
func runPage(cmd *cobra.Command, cfg config.Config) error {
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	content := catalog.Default()
	if err := catalog.Validate(content); err != nil {
		return fmt.Errorf("validating content: %w", err)
	}

	model := tui.NewModel(tui.Options{
		Content:    content,
		Interval:   cfg.Carousel.Interval,
		Animations: cfg.UI.Animations,
		Logger:     logger,
	})

	opts := []tea.ProgramOption{tea.WithContext(cmd.Context())}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	logger.Info("starting catfacts",
		zap.Duration("interval", cfg.Carousel.Interval),
		zap.Bool("animations", cfg.UI.Animations))

	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			logger.Info("interrupted")
			return nil
		}
		return fmt.Errorf("running page: %w", err)
	}

	logger.Info("catfacts exited")
	return nil
}
