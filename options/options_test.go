package options_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gruntwork-io/listfilter/internal/cliconfig"
	"github.com/gruntwork-io/listfilter/internal/filter"
	"github.com/gruntwork-io/listfilter/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOptions(t *testing.T) *options.ListFilterOptions {
	t.Helper()

	opts := options.NewListFilterOptionsWithWriters(&bytes.Buffer{}, &bytes.Buffer{})
	opts.WorkingDir = t.TempDir()
	opts.NoConfigDiscovery = true

	return opts
}

func TestFilterConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := newTestOptions(t).FilterConfig()
	require.NoError(t, err)

	assert.Equal(t, filter.DefaultMaxDepth, cfg.MaxDepth)
	assert.Equal(t, filter.DefaultMaxInputLength, cfg.MaxInputLength)
	assert.Nil(t, cfg.AllowedFunctionNames)
}

func TestFilterConfig_FlagsOverrideFile(t *testing.T) {
	t.Parallel()

	opts := newTestOptions(t)
	opts.ConfigPath = filepath.Join(opts.WorkingDir, "lf.hcl")

	require.NoError(t, os.WriteFile(opts.ConfigPath, []byte(`
max_depth         = 4
max_input_length  = 100
allowed_functions = ["regex"]
`), 0644))

	opts.MaxDepth = 9
	opts.AllowedFunctions = []string{"geo.*"}

	cfg, err := opts.FilterConfig()
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.MaxDepth)
	assert.Equal(t, 100, cfg.MaxInputLength)
	assert.Equal(t, []string{"geo.*"}, cfg.AllowedFunctionNames)
}

func TestFilterConfig_Discovery(t *testing.T) {
	t.Parallel()

	opts := newTestOptions(t)
	opts.NoConfigDiscovery = false

	path := filepath.Join(opts.WorkingDir, cliconfig.DefaultConfigFilename)
	require.NoError(t, os.WriteFile(path, []byte("max_depth = 3\n"), 0644))

	cfg, err := opts.FilterConfig()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.MaxDepth)
}

func TestFilterConfig_Errors(t *testing.T) {
	t.Parallel()

	opts := newTestOptions(t)
	opts.ConfigPath = filepath.Join(opts.WorkingDir, "missing.hcl")

	_, err := opts.FilterConfig()
	require.ErrorAs(t, err, new(*cliconfig.NotFoundError))

	opts = newTestOptions(t)
	opts.AllowedFunctions = []string{"geo.[a"}

	_, err = opts.FilterConfig()
	require.ErrorAs(t, err, new(filter.InvalidConfigError))
}

func TestClone(t *testing.T) {
	t.Parallel()

	opts := newTestOptions(t)
	opts.AllowedFunctions = []string{"regex"}

	clone := opts.Clone()
	clone.AllowedFunctions[0] = "geo.*"
	clone.Telemetry.TraceExporter = "console"

	assert.Equal(t, []string{"regex"}, opts.AllowedFunctions)
	assert.Empty(t, opts.Telemetry.TraceExporter)
}

func TestUseColor(t *testing.T) {
	t.Parallel()

	opts := newTestOptions(t)
	assert.False(t, opts.UseColor(), "a buffer is never a terminal")

	opts.NoColor = true
	opts.ErrWriter = os.Stderr
	assert.False(t, opts.UseColor())
}
