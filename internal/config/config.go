// Package config loads picker settings from the environment and command-line flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/stigoleg/timepicker/internal/clock"
	"github.com/stigoleg/timepicker/internal/logging"
)

// ErrInvalidSettings wraps every validation failure reported by Validate.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings holds the picker and logging configuration.
type Settings struct {
	Initial    string `env:"TIMEPICKER_INITIAL"`
	MinuteStep int    `env:"TIMEPICKER_MINUTE_STEP" envDefault:"1"`
	SecondStep int    `env:"TIMEPICKER_SECOND_STEP" envDefault:"1"`
	PanelRows  int    `env:"TIMEPICKER_PANEL_ROWS"  envDefault:"7"`
	AltScreen  bool   `env:"TIMEPICKER_ALT_SCREEN"  envDefault:"false"`
	LogLevel   string `env:"TIMEPICKER_LOG_LEVEL"   envDefault:"INFO"`
	LogFile    string `env:"TIMEPICKER_LOG_FILE"    envDefault:"debug.log"`
}

// LoadSettings reads a .env file from the working directory if one exists,
// then the process environment.
func LoadSettings() (*Settings, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			slog.Warn("Error loading .env file", "error", err)
		}
	}

	cfg := Settings{}
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// BindFlags registers the picker flags that override the loaded settings.
func (s *Settings) BindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&s.Initial, "initial", "i", s.Initial, "Initial time (e.g., \"9:30 AM\" or \"21:30\")")
	fs.IntVar(&s.MinuteStep, "minute-step", s.MinuteStep, "Step between entries in the minute list")
	fs.IntVar(&s.SecondStep, "second-step", s.SecondStep, "Step between entries in the second list")
	fs.IntVar(&s.PanelRows, "rows", s.PanelRows, "Visible rows per list")
	fs.BoolVar(&s.AltScreen, "alt-screen", s.AltScreen, "Run in the alternate screen buffer")
}

// BindLogFlags registers the logging flags. They apply to every command.
func (s *Settings) BindLogFlags(fs *pflag.FlagSet) {
	fs.StringVar(&s.LogLevel, "log-level", s.LogLevel, "Log level (DEBUG, INFO, WARN, ERROR)")
	fs.StringVar(&s.LogFile, "log-file", s.LogFile, "File the picker logs to; empty disables logging")
}

// Validate reports every problem with the settings at once.
func (s *Settings) Validate() error {
	var errs []error
	if s.Initial != "" {
		if _, err := clock.Parse(s.Initial); err != nil {
			errs = append(errs, fmt.Errorf("initial time %q is not a valid time", s.Initial))
		}
	}
	if err := validateStep("minute step", s.MinuteStep); err != nil {
		errs = append(errs, err)
	}
	if err := validateStep("second step", s.SecondStep); err != nil {
		errs = append(errs, err)
	}
	if s.PanelRows < 3 || s.PanelRows > 24 {
		errs = append(errs, fmt.Errorf("rows must be between 3 and 24, got %d", s.PanelRows))
	}
	if _, err := logging.ParseLevel(s.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w:\n\n%w", ErrInvalidSettings, errors.Join(errs...))
}

// InitialTime returns the parsed initial time, if one is configured.
func (s *Settings) InitialTime() (clock.Time, bool) {
	if s.Initial == "" {
		return clock.Time{}, false
	}
	t, err := clock.Parse(s.Initial)
	return t, err == nil
}

func validateStep(name string, step int) error {
	if step < 1 || step > 30 || 60%step != 0 {
		return fmt.Errorf("%s must divide 60 and be between 1 and 30, got %d", name, step)
	}
	return nil
}

// FormatError renders err for the terminal. Multi-part errors get a bordered box.
func FormatError(err error) string {
	msg := err.Error()
	parts := strings.SplitN(msg, "\n\n", 2)
	if len(parts) != 2 {
		return errorStyle.Render(msg)
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF4040")).
		Render(parts[0])

	details := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#999999")).
		Render(parts[1])

	return errorBox.Render(fmt.Sprintf("%s\n\n%s", header, details))
}

var (
	errorStyle = lipgloss.NewStyle().
			PaddingLeft(1).
			PaddingRight(1).
			Foreground(lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF4040"})

	errorBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FF4040")).
			Padding(0, 1)
)
