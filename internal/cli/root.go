// Package cli wires the picker, parser and formatter into cobra commands.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/stigoleg/timepicker/internal/config"
	"github.com/stigoleg/timepicker/internal/logging"
	"github.com/stigoleg/timepicker/internal/ui"
)

// ErrCancelled is returned when the picker is left without choosing a time.
var ErrCancelled = errors.New("no time selected")

// NewRootCommand builds the command tree. Settings are loaded from the
// environment first so flags can override them.
func NewRootCommand(version string) *cobra.Command {
	settings, loadErr := config.LoadSettings()
	if settings == nil {
		settings = &config.Settings{}
	}

	root := &cobra.Command{
		Use:   "timepicker",
		Short: "Pick a time of day in the terminal",
		Long: `Pick a time of day by typing it or choosing it from lists.

Typed input is flexible: "11PM", "9 am", "23:45:00" and "7" are all accepted.
The chosen time is printed to stdout as "H:MM:SS AM".`,
		Example: `  timepicker
  timepicker --initial "9:30 AM" --minute-step 15
  timepicker parse "11 PM" 23:45 7
  timepicker format 17 30`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if loadErr != nil {
				return loadErr
			}
			_, err := logging.ParseLevel(settings.LogLevel)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := settings.Validate(); err != nil {
				return err
			}
			return runPicker(cmd, settings)
		},
	}
	settings.BindFlags(root.Flags())
	settings.BindLogFlags(root.PersistentFlags())

	_ = root.RegisterFlagCompletionFunc("log-level", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"DEBUG", "INFO", "WARN", "ERROR"}, cobra.ShellCompDirectiveNoFileComp
	})

	root.AddCommand(newParseCommand(settings), newFormatCommand(settings), newVersionCommand(version))
	return root
}

func runPicker(cmd *cobra.Command, settings *config.Settings) error {
	level, _ := logging.ParseLevel(settings.LogLevel)
	logger, closeLog, err := logging.OpenFile(settings.LogFile, level)
	if err != nil {
		return err
	}
	defer closeLog()

	opts := ui.Options{
		MinuteStep: settings.MinuteStep,
		SecondStep: settings.SecondStep,
		Rows:       settings.PanelRows,
		Logger:     logger,
	}
	if t, ok := settings.InitialTime(); ok {
		opts.Initial = &t
	}

	model := ui.New(opts)
	defer model.Close()

	progOpts := []tea.ProgramOption{
		tea.WithContext(cmd.Context()),
		tea.WithMouseCellMotion(),
		tea.WithOutput(cmd.ErrOrStderr()),
	}
	if settings.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}

	logger.Info("picker started", "initial", settings.Initial)
	final, err := tea.NewProgram(model, progOpts...).Run()
	if err != nil {
		if cmd.Context().Err() != nil {
			logger.Info("picker interrupted")
			return ErrCancelled
		}
		logger.Error("picker stopped", "error", err)
		return fmt.Errorf("running picker: %w", err)
	}

	m, ok := final.(ui.Model)
	if !ok {
		return ErrCancelled
	}
	t, ok := m.Result()
	if !ok {
		logger.Info("picker cancelled")
		return ErrCancelled
	}
	logger.Info("picker finished", "value", t.String())
	_, err = fmt.Fprintln(cmd.OutOrStdout(), t)
	return err
}

// commandLogger logs to w at the configured level. The level was checked
// before any command ran.
func commandLogger(w io.Writer, settings *config.Settings) *slog.Logger {
	level, _ := logging.ParseLevel(settings.LogLevel)
	return logging.New(w, level)
}

func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Time Picker Version: %s\n", version)
		},
	}
}
