package filter_test

import (
	"context"
	"testing"

	"github.com/gruntwork-io/listfilter/internal/filter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ReturnsNoPartialTree(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"a AND b AND",
		"a = 1 b = (c",
		`a = "unterminated`,
		"a = 99999999999999999999",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			f, err := filter.Parse(input, nil)
			require.Error(t, err)
			assert.Nil(t, f)

			_, ok := filter.AsPositionedError(err)
			assert.True(t, ok, "error should carry a position: %v", err)
		})
	}
}

func TestParse_NilConfigUsesDefaults(t *testing.T) {
	t.Parallel()

	fromNil, err := filter.Parse("a = f(b)", nil)
	require.NoError(t, err)

	fromDefault, err := filter.Parse("a = f(b)", filter.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, fromDefault, fromNil)
}

func TestParse_NonPositiveLimitsUseDefaults(t *testing.T) {
	t.Parallel()

	cfg := &filter.Config{MaxDepth: -1, MaxInputLength: 0}

	_, err := filter.Parse(nested(filter.DefaultMaxDepth), cfg)
	require.NoError(t, err)

	_, err = filter.Parse(nested(filter.DefaultMaxDepth+1), cfg)
	require.ErrorAs(t, err, new(filter.MaxDepthExceededError))
}

func TestParseContext(t *testing.T) {
	t.Parallel()

	f, err := filter.ParseContext(context.Background(), "a = 1", nil)
	require.NoError(t, err)
	assert.Equal(t, "a = 1", f.String())

	f, err = filter.ParseContext(context.Background(), "a =", nil)
	require.Error(t, err)
	assert.Nil(t, f)
}

func TestMustParse(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		filter.MustParse("a = 1")
	})

	assert.Panics(t, func() {
		filter.MustParse("a = ")
	})
}
