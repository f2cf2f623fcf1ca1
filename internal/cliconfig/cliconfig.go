// Package cliconfig has the types representing and the logic to load the parser limits and
// function allowlist from a configuration file.
package cliconfig

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/gruntwork-io/listfilter/internal/errors"
	"github.com/gruntwork-io/listfilter/internal/filter"
)

// Config is the structure of the configuration file, e.g.
//
//	max_depth         = 16
//	max_input_length  = 1024
//	allowed_functions = ["regex", "geo.*"]
//
// Unset attributes keep the defaults of the filter package.
type Config struct {
	MaxDepth         *int     `hcl:"max_depth,optional" mapstructure:"max_depth"`
	MaxInputLength   *int     `hcl:"max_input_length,optional" mapstructure:"max_input_length"`
	AllowedFunctions []string `hcl:"allowed_functions,optional" mapstructure:"allowed_functions"`
}

// LoadConfig returns the loaded configuration at the specified `path`. The format is chosen by
// extension: `.hcl`, `.json` or `.yaml`/`.yml`.
func LoadConfig(cfgPath string) (*Config, error) {
	data, err := os.ReadFile(cfgPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewNotFoundError(cfgPath)
		}

		return nil, NewFileReadError(cfgPath, err)
	}

	cfg := &Config{}

	switch ext := strings.ToLower(filepath.Ext(cfgPath)); ext {
	case ".hcl", ".json":
		err = cfg.decodeHCL(cfgPath, data, ext == ".json")
	case ".yaml", ".yml":
		err = cfg.decodeYAML(data)
	default:
		return nil, NewUnsupportedFormatError(cfgPath)
	}

	if err != nil {
		return nil, NewDecodeError(cfgPath, err)
	}

	return cfg, nil
}

// DecodeConfig decodes loosely typed settings, e.g. `{"max_depth": "16"}`, into a Config.
// Unknown keys are rejected.
func DecodeConfig(raw map[string]any) (*Config, error) {
	cfg := &Config{}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, errors.New(err)
	}

	if err := decoder.Decode(raw); err != nil {
		return nil, errors.New(err)
	}

	return cfg, nil
}

// FilterConfig converts the file settings into a parser config.
func (cfg *Config) FilterConfig() *filter.Config {
	filterCfg := filter.DefaultConfig()

	if cfg == nil {
		return filterCfg
	}

	if cfg.MaxDepth != nil {
		filterCfg.MaxDepth = *cfg.MaxDepth
	}

	if cfg.MaxInputLength != nil {
		filterCfg.MaxInputLength = *cfg.MaxInputLength
	}

	if cfg.AllowedFunctions != nil {
		filterCfg.AllowedFunctionNames = cfg.AllowedFunctions
	}

	return filterCfg
}

func (cfg *Config) decodeHCL(cfgPath string, data []byte, isJSON bool) error {
	var (
		parser = hclparse.NewParser()
		file   *hcl.File
		diags  hcl.Diagnostics
	)

	if isJSON {
		file, diags = parser.ParseJSON(data, cfgPath)
	} else {
		file, diags = parser.ParseHCL(data, cfgPath)
	}

	if diags.HasErrors() {
		return errors.New(diags)
	}

	if diags := gohcl.DecodeBody(file.Body, nil, cfg); diags.HasErrors() {
		return errors.New(diags)
	}

	return nil
}

func (cfg *Config) decodeYAML(data []byte) error {
	var raw map[string]any

	if err := yaml.Unmarshal(data, &raw); err != nil {
		return errors.New(err)
	}

	decoded, err := DecodeConfig(raw)
	if err != nil {
		return err
	}

	*cfg = *decoded

	return nil
}
