package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables, e.g. PDEF_EXAMPLE_OUT.
const EnvPrefix = "PDEF_EXAMPLE"

// DefaultFileName is the config file name looked up in the working directory,
// without extension.
const DefaultFileName = "pdef-example"

// Configuration keys.
const (
	KeyOut       = "out"
	KeyModules   = "modules"
	KeyPrefixes  = "prefixes"
	KeyWorkers   = "workers"
	KeyTemplates = "templates"
	KeyVerbose   = "verbose"
)

// flagNames maps configuration keys to the command line flags bound to them.
var flagNames = map[string]string{
	KeyOut:       "out",
	KeyModules:   "module",
	KeyPrefixes:  "prefix",
	KeyWorkers:   "workers",
	KeyTemplates: "templates",
	KeyVerbose:   "verbose",
}

// Loader merges configuration sources. Precedence, highest first:
// flags set on the command line, environment, config file, defaults.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a Loader with defaults and environment bindings.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	d := Default()
	v.SetDefault(KeyOut, d.Out)
	v.SetDefault(KeyModules, d.Modules)
	v.SetDefault(KeyPrefixes, d.Prefixes)
	v.SetDefault(KeyWorkers, d.Workers)
	v.SetDefault(KeyTemplates, d.Templates)
	v.SetDefault(KeyVerbose, d.Verbose)

	return &Loader{v: v}
}

// BindFlags binds the known flags present in flags. Missing flags are skipped.
func (l *Loader) BindFlags(flags *pflag.FlagSet) error {
	for key, name := range flagNames {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}

		if err := l.v.BindPFlag(key, flag); err != nil {
			return errors.Wrapf(err, "binding flag --%s", name)
		}
	}

	return nil
}

// Load reads configFile, or pdef-example.{yaml,toml} from the working
// directory when configFile is empty, and returns the validated result.
// A missing default file is not an error; a missing explicit file is.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile != "" {
		l.v.SetConfigFile(configFile)
	} else {
		l.v.SetConfigName(DefaultFileName)
		l.v.AddConfigPath(".")
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, errors.WithHint(errors.Wrap(err, "reading config file"),
				"create one with: pdef-example config init")
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "decoding configuration"), ErrInvalid)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ConfigFileUsed returns the config file read by Load, or "".
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}
