package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/mvickers/pounce/internal/hint"
	"github.com/mvickers/pounce/internal/input/key"
)

// Config is the root configuration.
type Config struct {
	Hints   Hints   `toml:"hints"`
	Palette Palette `toml:"palette"`
	Log     Log     `toml:"log"`
}

// Hints configures hint navigation.
type Hints struct {
	// Alphabet is the ordered hint character set.
	Alphabet string `toml:"alphabet"`

	// ActivationKey is the key spec that enters hint mode.
	ActivationKey string `toml:"activation_key"`

	// MaxHints caps how many targets receive labels. Zero means no cap.
	MaxHints int `toml:"max_hints"`

	// MinTargetArea excludes targets smaller than this many cells.
	MinTargetArea int `toml:"min_target_area"`
}

// Palette configures the command palette.
type Palette struct {
	// ActivationKey is the key spec that opens the palette.
	ActivationKey string `toml:"activation_key"`

	// Limit is the maximum number of results shown.
	Limit int `toml:"limit"`
}

// Log configures logging.
type Log struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Hints: Hints{
			Alphabet:      hint.DefaultAlphabetString,
			ActivationKey: "f",
			MaxHints:      0,
			MinTargetArea: 0,
		},
		Palette: Palette{
			ActivationKey: "Ctrl+P",
			Limit:         10,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads the TOML file at path, layered over the defaults. A missing
// file is not an error; the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the configuration values are usable.
func (c Config) Validate() error {
	if _, err := hint.NewAlphabet(c.Hints.Alphabet); err != nil {
		return fmt.Errorf("hints.alphabet %q: %w", c.Hints.Alphabet, err)
	}
	if _, err := key.Parse(c.Hints.ActivationKey); err != nil {
		return fmt.Errorf("hints.activation_key %q: %w", c.Hints.ActivationKey, err)
	}
	if _, err := key.Parse(c.Palette.ActivationKey); err != nil {
		return fmt.Errorf("palette.activation_key %q: %w", c.Palette.ActivationKey, err)
	}
	if c.Hints.MaxHints < 0 {
		return fmt.Errorf("hints.max_hints must not be negative, got %d", c.Hints.MaxHints)
	}
	if c.Palette.Limit < 0 {
		return fmt.Errorf("palette.limit must not be negative, got %d", c.Palette.Limit)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	return nil
}
