// Package config holds the barescript CLI configuration.
package config

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	DefaultRootPath     = "."
	DefaultFetchLimit   = 4
	DefaultFetchTimeout = 30 * time.Second
	DefaultDriver       = "sqlite3"
	DefaultLogLevel     = "error"
)

type Configuration struct {
	Version   string `toml:"-"`
	BuildDate string `toml:"-"`
	Commit    string `toml:"-"`

	Debug        bool     `toml:"debug"`
	FetchLimit   int      `toml:"fetch_limit"`
	FetchTimeout Duration `toml:"fetch_timeout"`
	RootPath     string   `toml:"root"`
	URLBase      string   `toml:"url_base"`

	Globals GlobalsConfig `toml:"globals"`
	Log     LogConfig     `toml:"log"`
}

type GlobalsConfig struct {
	Driver string `toml:"driver"`
	DSN    string `toml:"dsn"`
}

type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Duration reads a TOML string such as "10s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func Default() Configuration {
	return Configuration{
		FetchLimit:   DefaultFetchLimit,
		FetchTimeout: Duration{DefaultFetchTimeout},
		RootPath:     DefaultRootPath,
		Globals:      GlobalsConfig{Driver: DefaultDriver},
		Log:          LogConfig{Level: DefaultLogLevel},
	}
}

// Load overlays the TOML file at path onto cfg. Unknown keys are an error.
func Load(path string, cfg *Configuration) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for ix, key := range undecoded {
			keys[ix] = key.String()
		}
		slices.Sort(keys)
		return fmt.Errorf("unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg.Validate()
}

func (c *Configuration) Validate() error {
	if c.FetchLimit < 0 {
		return fmt.Errorf("fetch_limit must not be negative, got %d", c.FetchLimit)
	}
	if c.FetchTimeout.Duration < 0 {
		return fmt.Errorf("fetch_timeout must not be negative, got %s", c.FetchTimeout)
	}
	return nil
}
