package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/giru28/drawpoker/domain/poker"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "DRAWPOKER"

type Config struct {
	Players PlayersConfig `mapstructure:"players"`
	Locale  string        `mapstructure:"locale"` // en, ja
	Seed    uint64        `mapstructure:"seed"`   // 0 shuffles from the OS random source
	Log     LogConfig     `mapstructure:"log"`
}

type PlayersConfig struct {
	Min int `mapstructure:"min"`
	Max int `mapstructure:"max"`
}

type LogConfig struct {
	Level string `mapstructure:"level"` // debug, info, warn, error
}

// flag name -> config key
var flagKeys = map[string]string{
	"min-players": "players.min",
	"max-players": "players.max",
	"locale":      "locale",
	"seed":        "seed",
	"log-level":   "log.level",
}

// RegisterFlags adds the command line flags that Load understands.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a YAML config file")
	fs.Int("min-players", 2, "fewest players accepted at the table")
	fs.Int("max-players", poker.MaxPlayers, "most players accepted at the table")
	fs.String("locale", "en", "display language (en, ja)")
	fs.Uint64("seed", 0, "deterministic shuffle seed, 0 for a random deck")
	fs.String("log-level", "info", "log level (debug, info, warn, error)")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("players.min", 2)
	v.SetDefault("players.max", poker.MaxPlayers)
	v.SetDefault("locale", "en")
	v.SetDefault("seed", 0)
	v.SetDefault("log.level", "info")
}

// Load reads the configuration. Sources, lowest priority first: defaults, the
// YAML file at path (skipped when empty), DRAWPOKER_* environment variables,
// then flags that were set explicitly. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every value is in range.
func (c *Config) Validate() error {
	var errs []error
	if c.Players.Min < 1 {
		errs = append(errs, fmt.Errorf("players.min must be at least 1, got %d", c.Players.Min))
	}
	if c.Players.Max > poker.MaxPlayers {
		errs = append(errs, fmt.Errorf("players.max must be at most %d, got %d", poker.MaxPlayers, c.Players.Max))
	}
	if c.Players.Min > c.Players.Max {
		errs = append(errs, fmt.Errorf("players.min (%d) is above players.max (%d)", c.Players.Min, c.Players.Max))
	}
	switch c.Locale {
	case "en", "ja":
	default:
		errs = append(errs, fmt.Errorf("unknown locale %q", c.Locale))
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// SlogLevel parses Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", l.Level, err)
	}
	return level, nil
}
