// Package config loads tabulate settings from defaults, a YAML file,
// TABULATE_ environment variables and command line flags.
package config

import (
	"os"
	"strings"

	"github.com/Station-Manager/errors"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const (
	EnvPrefix         = "TABULATE_"
	DefaultConfigFile = "tabulate.yaml"
	DefaultFormat     = "table"
	DefaultDriver     = "sqlite"
)

type Config struct {
	Format       string         `koanf:"format"`
	NullText     string         `koanf:"null_text"`
	TimeLayout   string         `koanf:"time_layout"`
	DedupColumns bool           `koanf:"dedup_columns"`
	Verbose      bool           `koanf:"verbose"`
	Database     DatabaseConfig `koanf:"database"`

	// File is the config file that was read, empty when none was found.
	File string `koanf:"-"`
}

type DatabaseConfig struct {
	Driver string `koanf:"driver"`
	DSN    string `koanf:"dsn"`
}

// flagKeys maps flags whose key is not the flag name with dashes replaced.
var flagKeys = map[string]string{
	"driver": "database.driver",
	"dsn":    "database.dsn",
}

// Load reads configuration. Precedence (highest to lowest): flags > env vars > config file > defaults.
// An explicit path must exist; otherwise ./tabulate.yaml is read when present.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	const op errors.Op = "config.Load"
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"format":          DefaultFormat,
		"null_text":       "",
		"time_layout":     "",
		"dedup_columns":   false,
		"verbose":         false,
		"database.driver": DefaultDriver,
		"database.dsn":    "",
	}, "."), nil); err != nil {
		return nil, errors.New(op).Err(err).Msg("failed to load defaults")
	}

	// 2. Config file
	used := path
	if used == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			used = DefaultConfigFile
		}
	}
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, errors.New(op).Err(err).Msg("error reading config file " + used)
		}
	}

	// 3. Environment: TABULATE_DATABASE_DSN -> database.dsn
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.New(op).Err(err).Msg("failed to load env vars")
	}

	// 4. Flags that were explicitly set
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key, ok := flagKeys[f.Name]
			if !ok {
				key = strings.ReplaceAll(f.Name, "-", "_")
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, errors.New(op).Err(err).Msg("failed to load flags")
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.New(op).Err(err).Msg("failed to unmarshal config")
	}
	cfg.File = used
	return &cfg, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if rest, ok := strings.CutPrefix(key, "database_"); ok {
		return "database." + rest
	}
	return key
}
