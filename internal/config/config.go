// Package config loads generator settings from flags, environment variables
// and an optional YAML or TOML file.
package config

import (
	"github.com/cockroachdb/errors"

	"pdef-example-generator/internal/naming"
)

// ErrInvalid marks configuration errors. Check with errors.Is.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the generator settings.
type Config struct {
	// Out is the output directory.
	Out string `mapstructure:"out" yaml:"out" toml:"out"`
	// Modules holds module renaming rules, "from:to".
	Modules []string `mapstructure:"modules" yaml:"modules" toml:"modules"`
	// Prefixes holds namespace prefix rules, "namespace:prefix".
	Prefixes []string `mapstructure:"prefixes" yaml:"prefixes" toml:"prefixes"`
	// Workers is the number of artifacts rendered concurrently.
	Workers int `mapstructure:"workers" yaml:"workers" toml:"workers"`
	// Templates is a directory overriding the embedded templates.
	Templates string `mapstructure:"templates" yaml:"templates,omitempty" toml:"templates,omitempty"`
	Verbose   bool   `mapstructure:"verbose" yaml:"verbose" toml:"verbose"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Out:      "out",
		Modules:  []string{},
		Prefixes: []string{},
		Workers:  1,
	}
}

// Validate checks the configuration, including the syntax of every rule.
func (c *Config) Validate() error {
	if c.Out == "" {
		return errors.Mark(errors.WithHint(errors.New("output directory is empty"),
			"set --out or the out key"), ErrInvalid)
	}

	if c.Workers < 1 {
		return errors.Mark(errors.WithHint(errors.Newf("workers must be at least 1, got %d", c.Workers),
			"use 1 for sequential generation"), ErrInvalid)
	}

	_, err := c.Mapper()

	return err
}

// Mapper builds the naming rules of the configuration.
func (c *Config) Mapper() (*naming.Mapper, error) {
	modules, err := naming.ParseModuleRules(c.Modules)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "modules"), ErrInvalid)
	}

	prefixes, err := naming.ParseRules(c.Prefixes)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "prefixes"), ErrInvalid)
	}

	return naming.NewMapper(modules, prefixes), nil
}
