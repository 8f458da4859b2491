package config

import (
	"fmt"
	"math"
	"os"

	"huectl/internal/color"
	"huectl/internal/colorspace"
	"huectl/internal/presenter"
)

// For mocking in tests
var osLookupEnv = os.LookupEnv

const (
	envOutput   = "HUECTL_OUTPUT"
	envOverflow = "HUECTL_OVERFLOW"
	envColor    = "HUECTL_COLOR"
	envTheme    = "HUECTL_THEME"
)

// Theme names the terminal background the output is tuned for.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// DefaultInput is used when no colour argument is given. It has four
// segments and is therefore rejected as a wrong segment count.
const DefaultInput = "0,0,0,0"

// Settings holds everything that shapes a single run.
type Settings struct {
	Input    string
	Scale    float64
	Verbose  bool
	Output   presenter.Format
	Overflow colorspace.Overflow
	Chroma   colorspace.Chroma
	Color    color.Mode
	Theme    Theme
	Copy     bool
	Debug    bool
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Input:    DefaultInput,
		Scale:    1.0,
		Output:   presenter.FormatText,
		Overflow: colorspace.OverflowClamp,
		Chroma:   colorspace.ChromaStandard,
		Color:    color.ModeAuto,
		Theme:    ThemeDark,
	}
}

// ApplyEnv overrides s with any HUECTL_* variables that are set.
func ApplyEnv(s Settings) (Settings, error) {
	if v, ok := osLookupEnv(envOutput); ok {
		f, err := presenter.ParseFormat(v)
		if err != nil {
			return Settings{}, fmt.Errorf("%s: %w", envOutput, err)
		}
		s.Output = f
	}
	if v, ok := osLookupEnv(envOverflow); ok {
		o, err := colorspace.ParseOverflow(v)
		if err != nil {
			return Settings{}, fmt.Errorf("%s: %w", envOverflow, err)
		}
		s.Overflow = o
	}
	if v, ok := osLookupEnv(envColor); ok {
		m, err := color.ParseMode(v)
		if err != nil {
			return Settings{}, fmt.Errorf("%s: %w", envColor, err)
		}
		s.Color = m
	}
	if v, ok := osLookupEnv(envTheme); ok {
		t, err := ParseTheme(v)
		if err != nil {
			return Settings{}, fmt.Errorf("%s: %w", envTheme, err)
		}
		s.Theme = t
	}
	return s, nil
}

// ParseTheme validates a theme name.
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeDark, ThemeLight:
		return Theme(s), nil
	default:
		return "", fmt.Errorf("unknown theme %q (want dark or light)", s)
	}
}

// Validate checks values that flags and environment cannot constrain by type.
func (s Settings) Validate() error {
	if math.IsNaN(s.Scale) || math.IsInf(s.Scale, 0) || s.Scale < 0 {
		return fmt.Errorf("invalid scale %v: must be a finite, non-negative number", s.Scale)
	}
	if _, err := presenter.ParseFormat(string(s.Output)); err != nil {
		return err
	}
	if _, err := colorspace.ParseOverflow(string(s.Overflow)); err != nil {
		return err
	}
	if s.Chroma != colorspace.ChromaStandard && s.Chroma != colorspace.ChromaLegacy {
		return fmt.Errorf("unknown chroma formula %q", s.Chroma)
	}
	if _, err := color.ParseMode(string(s.Color)); err != nil {
		return err
	}
	_, err := ParseTheme(string(s.Theme))
	return err
}

// ConversionOptions returns the HSL→RGB options implied by s.
func (s Settings) ConversionOptions() colorspace.Options {
	return colorspace.Options{Chroma: s.Chroma, Overflow: s.Overflow}
}
