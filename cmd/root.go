package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"huectl/internal/app"
	"huectl/internal/color"
	"huectl/internal/colorspace"
	"huectl/internal/config"
	"huectl/internal/presenter"
)

const versionTemplate = `{{printf "huectl version %s\n" .Version}}`

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

// exitCodeError carries a non-zero exit code chosen by the application.
// The application has already told the user what went wrong.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "huectl [color]",
		Short: "Scale and inspect RGB and hex colors in the terminal",
		Long: `huectl prints a color as a true-color swatch together with its decimal
and hex values, and the same color with every channel multiplied by a scale
factor.

The color is either a hex code or three decimal channels separated by
commas or colons:

  huectl ff3342
  huectl 255,128,64 --scale 0.5
  huectl 255:128:64 --verbose

With --verbose the color is also converted to HSL and a palette of
complementary, monochromatic, analogous and triadic colors is shown.`,
		Args: cobra.MaximumNArgs(1),
		// SilenceUsage is set to true to prevent printing usage message on errors
		// handled by us (e.g. invalid arguments)
		SilenceUsage: true,
		// Errors are printed by Execute so that exit codes chosen by the
		// application are not reported twice.
		SilenceErrors: true,
		RunE:          runRoot,
	}

	cmd.SetVersionTemplate(versionTemplate)

	flags := cmd.Flags()
	flags.Float64P("scale", "s", 1.0, "Multiply every channel by this factor")
	flags.BoolP("verbose", "v", false, "Show HSL values and a derived palette")
	flags.StringP("output", "o", string(presenter.FormatText), "Output format (text, json, yaml)")
	flags.String("overflow", string(colorspace.OverflowClamp), "How out-of-range channels are narrowed (clamp, wrap)")
	flags.Bool("legacy-chroma", false, "Use the legacy chroma formula when converting HSL back to RGB")
	flags.String("color", string(color.ModeAuto), "When to emit color escape sequences (auto, always, never)")
	flags.Bool("copy", false, "Copy the scaled hex code to the clipboard via OSC 52")
	flags.Bool("debug", false, "Enable debug logging on stderr")
	flags.BoolP("version", "V", false, "Print the version number of huectl")

	cmd.AddCommand(newVersionCmd())

	return cmd
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute runs the root command and exits with the code the run produced.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	var exitErr *exitCodeError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.code)
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func runRoot(cmd *cobra.Command, args []string) error {
	settings, err := settingsFromFlags(cmd, args)
	if err != nil {
		return err
	}

	code := app.NewApplication(settings, cmd.OutOrStdout(), cmd.ErrOrStderr()).Run()
	if code != app.ExitOK {
		return &exitCodeError{code: code}
	}
	return nil
}

// settingsFromFlags layers explicitly set flags over the environment and
// built-in defaults.
func settingsFromFlags(cmd *cobra.Command, args []string) (config.Settings, error) {
	settings, err := config.ApplyEnv(config.Defaults())
	if err != nil {
		return config.Settings{}, err
	}

	if len(args) == 1 {
		settings.Input = args[0]
	}

	flags := cmd.Flags()
	if settings.Scale, err = flags.GetFloat64("scale"); err != nil {
		return config.Settings{}, err
	}
	if settings.Verbose, err = flags.GetBool("verbose"); err != nil {
		return config.Settings{}, err
	}
	if settings.Copy, err = flags.GetBool("copy"); err != nil {
		return config.Settings{}, err
	}
	if settings.Debug, err = flags.GetBool("debug"); err != nil {
		return config.Settings{}, err
	}

	legacy, err := flags.GetBool("legacy-chroma")
	if err != nil {
		return config.Settings{}, err
	}
	if legacy {
		settings.Chroma = colorspace.ChromaLegacy
	}

	if flags.Changed("output") {
		v, _ := flags.GetString("output")
		if settings.Output, err = presenter.ParseFormat(v); err != nil {
			return config.Settings{}, err
		}
	}
	if flags.Changed("overflow") {
		v, _ := flags.GetString("overflow")
		if settings.Overflow, err = colorspace.ParseOverflow(v); err != nil {
			return config.Settings{}, err
		}
	}
	if flags.Changed("color") {
		v, _ := flags.GetString("color")
		if settings.Color, err = color.ParseMode(v); err != nil {
			return config.Settings{}, err
		}
	}

	return settings, settings.Validate()
}
