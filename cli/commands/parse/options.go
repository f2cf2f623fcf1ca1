package parse

import (
	"slices"

	"github.com/gruntwork-io/listfilter/cli/commands"
	"github.com/gruntwork-io/listfilter/internal/errors"
	"github.com/gruntwork-io/listfilter/options"
)

const (
	// FormatText prints an indented tree.
	FormatText = "text"

	// FormatJSON prints the tree as JSON.
	FormatJSON = "json"

	// FormatYAML prints the tree as YAML.
	FormatYAML = "yaml"
)

var formats = []string{FormatText, FormatJSON, FormatYAML}

type Options struct {
	*options.ListFilterOptions

	// Format determines the format of the output.
	Format string
}

func NewOptions(opts *options.ListFilterOptions) *Options {
	return &Options{
		ListFilterOptions: opts,
		Format:            FormatText,
	}
}

func (o *Options) Validate() error {
	if !slices.Contains(formats, o.Format) {
		return errors.New(commands.InvalidFormatError{Format: o.Format, Allowed: formats})
	}

	return nil
}
