package presenter

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"huectl/internal/color"
)

// Format represents the output format of a report
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates an output format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON, FormatYAML:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", s)
	}
}

// Presenter writes a report to the terminal.
type Presenter interface {
	Present(r Report) error
}

// New returns the presenter for format. The text presenter paints swatches
// with renderer and writes the HSL line to stderr.
func New(format Format, stdout, stderr io.Writer, renderer *color.Renderer) (Presenter, error) {
	switch format {
	case FormatText:
		return &TextPresenter{stdout: stdout, stderr: stderr, renderer: renderer}, nil
	case FormatJSON:
		return &JSONPresenter{out: stdout}, nil
	case FormatYAML:
		return &YAMLPresenter{out: stdout}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// TextPresenter renders swatches followed by decimal and hex values.
type TextPresenter struct {
	stdout   io.Writer
	stderr   io.Writer
	renderer *color.Renderer
}

func (p *TextPresenter) Present(r Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "\n%s Original Value:\n%s | %s\n\n", p.renderer.Swatch(r.Original.RGB), r.Original.RGB, r.Original.Hex)
	fmt.Fprintf(&b, "%s Scaled Value (%s):\n%s | %s\n", p.renderer.Swatch(r.Scaled.RGB), FormatScale(r.Scale), r.Scaled.RGB, r.Scaled.Hex)

	if _, err := io.WriteString(p.stdout, b.String()); err != nil {
		return err
	}

	if r.HSL == nil {
		return nil
	}

	if _, err := fmt.Fprintln(p.stderr, r.HSL.String()); err != nil {
		return err
	}

	b.Reset()
	fmt.Fprintf(&b, "\n%s\n\n", p.renderer.Bold("Effects"))
	b.WriteString(p.paletteTable(r.Palette))
	fmt.Fprintf(&b, "\n%s\n\n", p.renderer.Subtle("---"))

	_, err := io.WriteString(p.stdout, b.String())
	return err
}

func (p *TextPresenter) paletteTable(entries []PaletteSwatch) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Palette", "Variant", "", "RGB", "Hex", "HSL"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AutoMerge: true},
	})

	for _, e := range entries {
		t.AppendRow(table.Row{
			string(e.Group),
			e.Variant,
			p.renderer.Swatch(e.RGB),
			e.RGB.String(),
			e.Hex,
			fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", e.HSL.H, e.HSL.S*100, e.HSL.L*100),
		})
	}
	return t.Render()
}

// JSONPresenter writes the report as indented JSON.
type JSONPresenter struct {
	out io.Writer
}

func (p *JSONPresenter) Present(r Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	_, err = fmt.Fprintln(p.out, string(data))
	return err
}

// YAMLPresenter writes the report as YAML.
type YAMLPresenter struct {
	out io.Writer
}

func (p *YAMLPresenter) Present(r Report) error {
	enc := yaml.NewEncoder(p.out)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to convert to YAML: %w", err)
	}
	return enc.Close()
}

// FormatScale renders a scale factor with the shortest exact representation,
// so 1.0 prints as "1" and 0.5 as "0.5".
func FormatScale(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
