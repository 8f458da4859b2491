// Package color handles terminal colour support for huectl.
//
// It decides whether escape sequences are emitted and paints colour swatches
// through a per-stream lipgloss renderer, so stdout and stderr can use
// different profiles.
//
// # Color Detection
//
// The mode is one of:
//   - always: force TrueColor output
//   - never: plain text, no escape sequences
//   - auto: plain text when NO_COLOR is set or the writer is not a terminal,
//     otherwise the profile advertised by COLORTERM and TERM
//
// # Usage Example
//
//	r := color.NewRenderer(os.Stdout, color.ModeAuto, true, os.Getenv)
//	fmt.Println(r.Swatch(colorspace.RGB{R: 255}), "red")
//
// # Clipboard
//
// Copy writes an OSC 52 sequence to the renderer's stream. Terminals that
// support it place the text on the system clipboard; others ignore it.
package color
