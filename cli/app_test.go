package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/gruntwork-io/listfilter/cli"
	"github.com/gruntwork-io/listfilter/cli/commands"
	"github.com/gruntwork-io/listfilter/cli/commands/parse"
	"github.com/gruntwork-io/listfilter/internal/errors"
	"github.com/gruntwork-io/listfilter/options"
)

func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	opts := options.NewListFilterOptionsWithWriters(&stdout, &stderr)
	opts.WorkingDir = t.TempDir()
	opts.NoConfigDiscovery = true
	opts.NoColor = true

	err := cli.NewApp(opts).RunContext(context.Background(), append([]string{cli.AppName}, args...))

	return stdout.String(), stderr.String(), err
}

func TestFormatCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{input: "package=com.google AND NOT retries<10", expected: "package = com.google AND NOT retries < 10\n"},
		{input: "a   b OR c", expected: "a b OR c\n"},
		{input: "", expected: "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			stdout, stderr, err := runApp(t, "format", tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, stdout)
			assert.Empty(t, stderr)
		})
	}
}

func TestFormatCommand_InvalidFilter(t *testing.T) {
	t.Parallel()

	stdout, stderr, err := runApp(t, "fmt", "a AND")
	require.Error(t, err)

	var invalidErr commands.InvalidFiltersError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, 1, invalidErr.Count)

	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Filter parsing error: Unexpected end of filter")
	assert.Contains(t, stderr, "hint: The filter is incomplete.")
}

func TestFormatCommand_WrongNumberOfArgs(t *testing.T) {
	t.Parallel()

	_, _, err := runApp(t, "format", "a", "=", "1")

	var argsErr commands.WrongNumberOfArgsError
	require.ErrorAs(t, err, &argsErr)
	assert.Equal(t, 3, argsErr.Actual)
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	_, stderr, err := runApp(t, "--max-depth", "1", "format", "((a))")
	require.Error(t, err)
	assert.Contains(t, stderr, "Nesting too deep")

	_, stderr, err = runApp(t, "--allow-function", "geo.*", "format", "regex(a, 'b')")
	require.Error(t, err)
	assert.Contains(t, stderr, `function "regex" is not allowed`)

	stdout, _, err := runApp(t, "--allow-function", "geo.*", "--allow-function", "regex", "format", "regex(a,'b')")
	require.NoError(t, err)
	assert.Equal(t, "regex(a, 'b')\n", stdout)

	_, _, err = runApp(t, "--max-input-length", "3", "format", "abcd")
	require.Error(t, err)

	_, _, err = runApp(t, "--log-level", "loud", "format", "a")
	require.Error(t, err)
}

func TestConfigFlag(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), "lf.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("allowed_functions: [regex]\n"), 0644))

	_, stderr, err := runApp(t, "--config", cfgPath, "format", "geo.distance(a, b)")
	require.Error(t, err)
	assert.Contains(t, stderr, "Unknown function")

	_, _, err = runApp(t, "--config", filepath.Join(t.TempDir(), "missing.hcl"), "format", "a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestTokensCommand(t *testing.T) {
	t.Parallel()

	stdout, _, err := runApp(t, "tokens", "a.b<=-1")
	require.NoError(t, err)

	assert.Equal(t, ""+
		`   0  TEXT            "a"`+"\n"+
		`   1  DOT             "."`+"\n"+
		`   2  TEXT            "b"`+"\n"+
		`   3  LESS_EQUALS     "<="`+"\n"+
		`   5  MINUS           "-"`+"\n"+
		`   6  INTEGER         "1"`+"\n"+
		`   7  EOF             ""`+"\n", stdout)

	_, stderr, err := runApp(t, "tokens", "a & b")
	require.ErrorAs(t, err, new(commands.InvalidFiltersError))
	assert.Contains(t, stderr, "Illegal character")
}

func TestParseCommand(t *testing.T) {
	t.Parallel()

	stdout, _, err := runApp(t, "parse", "--format", "json", "NOT a = 1")
	require.NoError(t, err)

	var tree parse.Node
	require.NoError(t, json.Unmarshal([]byte(stdout), &tree))

	assert.Equal(t, "Filter", tree.Type)
	assert.Equal(t, "NOT a = 1", tree.Text)

	term := tree.Children[0].Children[0].Children[0].Children[0]
	assert.Equal(t, "Term", term.Type)
	assert.Equal(t, "NOT", term.Negation)

	restriction := term.Children[0]
	assert.Equal(t, "=", restriction.Comparator)
	assert.Equal(t, 4, restriction.Position)

	stdout, _, err = runApp(t, "parse", "-f", "yaml", "a:*")
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &raw))
	assert.Equal(t, "Filter", raw["type"])
	assert.Equal(t, "a:*", raw["text"])

	stdout, _, err = runApp(t, "parse", "x")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Filter @0 \"x\"\n")
	assert.Contains(t, stdout, "              TextValue @0 \"x\" \"x\"\n")
}

func TestParseCommand_InvalidFormat(t *testing.T) {
	t.Parallel()

	_, _, err := runApp(t, "parse", "--format", "xml", "a")

	var formatErr commands.InvalidFormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "xml", formatErr.Format)
}

func TestCheckCommand(t *testing.T) {
	t.Parallel()

	stdout, stderr, err := runApp(t, "check", "a OR b", "c = 1")
	require.NoError(t, err)
	assert.Equal(t, "(a OR b) AND (c = 1)\n", stdout)
	assert.Empty(t, stderr)

	stdout, _, err = runApp(t, "check", "--quiet", "a")
	require.NoError(t, err)
	assert.Empty(t, stdout)
}

func TestCheckCommand_ReportsEveryInvalidFilter(t *testing.T) {
	t.Parallel()

	stdout, stderr, err := runApp(t, "check", "a AND", "ok", "b)")
	require.Error(t, err)

	var invalidErr commands.InvalidFiltersError
	require.True(t, errors.As(err, &invalidErr))
	assert.Equal(t, 2, invalidErr.Count)
	assert.Equal(t, 1, invalidErr.ExitCode())

	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "--filter[0] 'a AND'")
	assert.Contains(t, stderr, "--filter[2] 'b)'")
	assert.NotContains(t, stderr, "--filter[1]")
}

func TestCheckCommand_RepeatedFiltersParseOnce(t *testing.T) {
	t.Parallel()

	stdout, stderr, err := runApp(t, "--log-level", "debug", "check", "a OR b", "c", "a OR b")
	require.NoError(t, err)
	assert.Equal(t, "(a OR b) AND (c) AND (a OR b)
", stdout)
	assert.Contains(t, stderr, "Parsed 3 filters (hits=1 misses=2)")
	assert.Contains(t, stderr, "Filter cache miss")
}

func TestCheckCommand_RepeatedInvalidFilter(t *testing.T) {
	t.Parallel()

	_, stderr, err := runApp(t, "check", "a AND", "a AND")

	var invalidErr commands.InvalidFiltersError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, 2, invalidErr.Count)
	assert.Contains(t, stderr, "--filter[0] 'a AND'")
	assert.Contains(t, stderr, "--filter[1] 'a AND'")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, os.ErrClosed
}

func TestCommands_DiagnosticWriteFailure(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{{"check", "a AND"}, {"format", "a AND"}} {
		t.Run(args[0], func(t *testing.T) {
			t.Parallel()

			var stdout bytes.Buffer

			opts := options.NewListFilterOptionsWithWriters(&stdout, failingWriter{})
			opts.WorkingDir = t.TempDir()
			opts.NoConfigDiscovery = true
			opts.NoColor = true

			err := cli.NewApp(opts).RunContext(context.Background(), append([]string{cli.AppName}, args...))
			require.ErrorIs(t, err, os.ErrClosed)
			assert.False(t, errors.As(err, new(commands.InvalidFiltersError)))
		})
	}
}

func TestCheckCommand_NoArgs(t *testing.T) {
	t.Parallel()

	_, _, err := runApp(t, "check")
	require.ErrorAs(t, err, new(commands.MissingArgsError))
}
