package color

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"huectl/internal/colorspace"
)

// SwatchGlyph is the text painted in a colour to show it in the terminal.
const SwatchGlyph = "■■"

// Mode selects when escape sequences are emitted.
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeAlways Mode = "always"
	ModeNever  Mode = "never"
)

// ParseMode validates a colour mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeAuto, ModeAlways, ModeNever:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown color mode %q (want auto, always or never)", s)
	}
}

// Subtle is used for headings and table chrome.
var Subtle = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}

// Renderer paints swatches for a single output stream.
type Renderer struct {
	out      io.Writer
	profile  termenv.Profile
	lipgloss *lipgloss.Renderer
	getenv   func(string) string
}

// NewRenderer creates a renderer for w. getenv is consulted for NO_COLOR
// and TERM; pass os.Getenv outside tests.
func NewRenderer(w io.Writer, mode Mode, darkBackground bool, getenv func(string) string) *Renderer {
	profile := DetectProfile(w, mode, getenv)

	lr := lipgloss.NewRenderer(w)
	lr.SetColorProfile(profile)
	lr.SetHasDarkBackground(darkBackground)

	return &Renderer{
		out:      w,
		profile:  profile,
		lipgloss: lr,
		getenv:   getenv,
	}
}

// DetectProfile picks the colour profile for w. In auto mode NO_COLOR and
// non-terminal writers disable colour; otherwise the terminal's advertised
// capabilities are used.
func DetectProfile(w io.Writer, mode Mode, getenv func(string) string) termenv.Profile {
	switch mode {
	case ModeNever:
		return termenv.Ascii
	case ModeAlways:
		return termenv.TrueColor
	}

	if getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return termenv.Ascii
	}
	return termenv.NewOutput(w).EnvColorProfile()
}

// Profile returns the active colour profile.
func (r *Renderer) Profile() termenv.Profile {
	return r.profile
}

// Swatch paints SwatchGlyph in c.
func (r *Renderer) Swatch(c colorspace.RGB) string {
	return r.lipgloss.NewStyle().Foreground(lipgloss.Color(Hex(c))).Render(SwatchGlyph)
}

// Subtle renders s in the subtle theme colour.
func (r *Renderer) Subtle(s string) string {
	return r.lipgloss.NewStyle().Foreground(Subtle).Render(s)
}

// Bold renders s in bold.
func (r *Renderer) Bold(s string) string {
	return r.lipgloss.NewStyle().Bold(true).Render(s)
}

// Copy places text on the terminal clipboard with an OSC 52 sequence
// written to the renderer's output.
func (r *Renderer) Copy(text string) {
	out := termenv.NewOutput(r.out,
		termenv.WithProfile(r.profile),
		termenv.WithEnvironment(environ(r.getenv)),
	)
	out.Copy(text)
}

// Hex returns c as "#rrggbb".
func Hex(c colorspace.RGB) string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

type environ func(string) string

func (e environ) Getenv(key string) string {
	return e(key)
}

func (e environ) Environ() []string {
	return nil
}
