package app

import (
	"io"
	"os"

	"huectl/internal/color"
	"huectl/internal/colorspace"
	"huectl/internal/config"
	"huectl/internal/input"
	"huectl/internal/presenter"
	"huectl/pkg/logging"
)

// Application runs one colour conversion and reports the outcome.
type Application struct {
	settings config.Settings
	stdout   io.Writer
	stderr   io.Writer
	getenv   func(string) string
}

// NewApplication creates a new application instance writing to the given streams
func NewApplication(settings config.Settings, stdout, stderr io.Writer) *Application {
	// Configure logging based on debug flag
	level := logging.LevelWarn
	if settings.Debug {
		level = logging.LevelDebug
	}
	logging.InitForCLI(level, stderr)

	return &Application{
		settings: settings,
		stdout:   stdout,
		stderr:   stderr,
		getenv:   os.Getenv,
	}
}

// Run executes the pipeline and returns the process exit code.
func (a *Application) Run() int {
	report, err := a.buildReport()
	if err != nil {
		return a.handleError(err)
	}

	renderer := color.NewRenderer(a.stdout, a.settings.Color, a.settings.Theme == config.ThemeDark, a.getenv)
	logging.Debug("Presenter", "Rendering %s output with profile %v", a.settings.Output, renderer.Profile())

	p, err := presenter.New(a.settings.Output, a.stdout, a.stderr, renderer)
	if err != nil {
		return a.handleError(err)
	}
	if err := p.Present(report); err != nil {
		return a.handleError(err)
	}

	if a.settings.Copy {
		// stderr keeps OSC 52 out of json/yaml on stdout
		color.NewRenderer(a.stderr, color.ModeAlways, true, a.getenv).Copy(report.Scaled.Hex)
		logging.Info("Clipboard", "Copied %s", report.Scaled.Hex)
	}

	return ExitOK
}

func (a *Application) buildReport() (presenter.Report, error) {
	s := a.settings

	in, original, err := input.ParseString(s.Input)
	if err != nil {
		return presenter.Report{}, err
	}
	logging.Debug("Parser", "Parsed %q as %s: %s", s.Input, in.Mode, original)

	scaled := colorspace.Scale(original, s.Scale, s.Overflow)
	for i, ch := range original.Channels() {
		if float64(ch)*s.Scale <= 255 {
			continue
		}
		if s.Overflow == colorspace.OverflowWrap {
			logging.Warn("Scaler", "Channel %d overflows at factor %v and wraps around", i, s.Scale)
		} else {
			logging.Debug("Scaler", "Channel %d overflows at factor %v, clamping", i, s.Scale)
		}
	}

	report := presenter.Report{
		Input:    s.Input,
		Mode:     string(in.Mode),
		Scale:    s.Scale,
		Original: presenter.NewSwatch(original),
		Scaled:   presenter.NewSwatch(scaled),
	}

	if s.Verbose {
		hsl := colorspace.ToHSL(original)
		report.HSL = &hsl
		report.Palette = presenter.NewPaletteSwatches(colorspace.GeneratePalette(hsl), s.ConversionOptions())
		logging.Debug("Converter", "Derived %s with %d palette entries", hsl, len(report.Palette))
	}

	return report, nil
}
