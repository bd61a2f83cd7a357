package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Marshal encodes cfg in the format named by the extension of path:
// .yaml, .yml or .toml.
func Marshal(cfg *Config, path string) ([]byte, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err := yaml.Marshal(cfg)
		return data, errors.Wrap(err, "encoding YAML")
	case ".toml":
		data, err := toml.Marshal(cfg)
		return data, errors.Wrap(err, "encoding TOML")
	default:
		return nil, errors.WithHint(errors.Newf("unsupported config format %q", ext),
			"use a .yaml, .yml or .toml file name")
	}
}

// WriteDefault writes the default configuration to path. An existing file
// is only replaced when force is set.
func WriteDefault(path string, force bool) error {
	data, err := Marshal(Default(), path)
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.WithHint(errors.Newf("%s already exists", path), "use --force to overwrite")
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "creating config directory")
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}

	return nil
}
