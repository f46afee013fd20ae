package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"gem/scanner"
)

// DefaultConfigFile is read from the working directory when no --config flag
// is given.
const DefaultConfigFile = "gem.toml"

// Config holds the command line settings that may come from a TOML file.
type Config struct {
	Scanner ScannerConfig `toml:"scanner"`
	Output  OutputConfig  `toml:"output"`
	Check   CheckConfig   `toml:"check"`
}

type ScannerConfig struct {
	Strict bool `toml:"strict"`
}

type OutputConfig struct {
	Format string `toml:"format"`
}

type CheckConfig struct {
	// Resolve runs name resolution after `gem parse`.
	Resolve bool `toml:"resolve"`
}

const (
	FormatText   = "text"
	FormatPretty = "pretty"
	FormatYAML   = "yaml"
)

var formats = []string{FormatText, FormatPretty, FormatYAML}

func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{Format: FormatText},
	}
}

// LoadConfig reads path over the defaults. An empty path falls back to
// DefaultConfigFile if it exists.
func LoadConfig(path string) (*Config, string, error) {
	cfg := DefaultConfig()
	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err != nil {
			return cfg, "", nil
		}
		path = DefaultConfigFile
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, path, fmt.Errorf("failed to read config file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, path, fmt.Errorf("unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

func (c *Config) Validate() error {
	for _, f := range formats {
		if c.Output.Format == f {
			return nil
		}
	}
	return fmt.Errorf("output.format must be one of %s, got %q", strings.Join(formats, ", "), c.Output.Format)
}

func (c *Config) Mode() scanner.Mode {
	if c.Scanner.Strict {
		return scanner.Strict
	}
	return scanner.Permissive
}
