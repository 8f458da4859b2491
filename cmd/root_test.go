package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeRoot runs a fresh root command so flag state never leaks between tests.
func executeRoot(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("HUECTL_COLOR", "never")
	t.Setenv("HUECTL_OUTPUT", "text")

	cmd := newRootCmd()
	cmd.Version = "1.0.0"

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestSetVersion(t *testing.T) {
	testVersion := "1.2.3-test"
	SetVersion(testVersion)

	if rootCmd.Version != testVersion {
		t.Errorf("Expected version to be %s, got %s", testVersion, rootCmd.Version)
	}
}

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "huectl", rootCmd.Name())
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.True(t, rootCmd.SilenceUsage, "Expected SilenceUsage to be true")
}

func TestRootFlags(t *testing.T) {
	cmd := newRootCmd()

	tests := []struct {
		name      string
		shorthand string
		defValue  string
	}{
		{"scale", "s", "1"},
		{"verbose", "v", "false"},
		{"output", "o", "text"},
		{"version", "V", "false"},
		{"overflow", "", "clamp"},
		{"legacy-chroma", "", "false"},
		{"color", "", "auto"},
		{"copy", "", "false"},
		{"debug", "", "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := cmd.Flags().Lookup(tt.name)
			require.NotNil(t, flag, "Expected --%s flag to be defined", tt.name)
			assert.Equal(t, tt.shorthand, flag.Shorthand)
			assert.Equal(t, tt.defValue, flag.DefValue)
		})
	}
}

func TestVersionTemplate(t *testing.T) {
	for _, arg := range []string{"--version", "-V"} {
		t.Run(arg, func(t *testing.T) {
			stdout, _, err := executeRoot(t, arg)
			require.NoError(t, err)
			assert.Equal(t, "huectl version 1.0.0\n", stdout)
		})
	}
}

func TestSubcommands(t *testing.T) {
	found := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		found[c.Name()] = true
	}
	assert.True(t, found["version"], "Expected subcommand version to be registered")
}

func TestRootCommandHelp(t *testing.T) {
	stdout, _, err := executeRoot(t, "--help")
	require.NoError(t, err)

	for _, want := range []string{"huectl", "--scale", "--verbose", "--output", "ff3342"} {
		assert.Contains(t, stdout, want)
	}
}

func TestRunRoot_Triplet(t *testing.T) {
	stdout, stderr, err := executeRoot(t, "200,100,50", "-s", "0.5")
	require.NoError(t, err)

	assert.Equal(t, "\n■■ Original Value:\n200,100,50 | c86432\n\n■■ Scaled Value (0.5):\n100,50,25 | 643219\n", stdout)
	assert.Empty(t, stderr)
}

func TestRunRoot_DefaultInput(t *testing.T) {
	stdout, stderr, err := executeRoot(t)
	require.NoError(t, err, "input errors are soft and exit 0")

	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "got 4")
}

func TestRunRoot_VerboseJSON(t *testing.T) {
	stdout, _, err := executeRoot(t, "ff0000", "-v", "-o", "json")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout, "{"))
	assert.Contains(t, stdout, `"palette"`)
}

func TestRunRoot_FlagErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"negative scale", []string{"1,2,3", "--scale", "-0.5"}, "invalid scale"},
		{"unknown output", []string{"1,2,3", "-o", "xml"}, "unsupported output format"},
		{"unknown overflow", []string{"1,2,3", "--overflow", "saturate"}, "unknown overflow policy"},
		{"unknown color mode", []string{"1,2,3", "--color", "rainbow"}, "unknown color mode"},
		{"too many args", []string{"1,2,3", "4,5,6"}, "accepts at most 1 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeRoot(t, tt.args...)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestSettingsFromFlags_EnvAndFlags(t *testing.T) {
	t.Setenv("HUECTL_OVERFLOW", "wrap")
	t.Setenv("HUECTL_OUTPUT", "yaml")

	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"-o", "json", "--legacy-chroma"}))

	settings, err := settingsFromFlags(cmd, []string{"ff3342"})
	require.NoError(t, err)

	assert.Equal(t, "ff3342", settings.Input)
	assert.Equal(t, "wrap", string(settings.Overflow), "environment applies when the flag is unset")
	assert.Equal(t, "json", string(settings.Output), "flag wins over environment")
	assert.Equal(t, "legacy", string(settings.Chroma))
}

func TestExitCodeError(t *testing.T) {
	var err error = &exitCodeError{code: 1}
	assert.EqualError(t, err, "exit status 1")
}

func TestVersionCommand(t *testing.T) {
	root := &cobra.Command{Use: "huectl", Version: "2.0.0"}
	root.AddCommand(newVersionCmd())

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "huectl version 2.0.0\n", buf.String())
}
