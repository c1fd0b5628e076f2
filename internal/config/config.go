package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/kolah/oasgate/internal/validate"
)

const (
	DefaultFile = "oasgate.yaml"
	// EnvFile names a config file to use instead of DefaultFile.
	EnvFile = "OASGATE_CONFIG"
)

type Config struct {
	Level                 int           `koanf:"level"`
	Timeout               time.Duration `koanf:"timeout"`
	AllowRemoteReferences bool          `koanf:"allow-remote-references"`
	FailOnInvalid         bool          `koanf:"fail-on-invalid"`
	Log                   LogConfig     `koanf:"log"`
}

type LogConfig struct {
	Format string `koanf:"format"`
	Level  string `koanf:"level"`
}

func defaults() map[string]any {
	return map[string]any{
		"level":                   int(validate.LevelFull),
		"timeout":                 "30s",
		"allow-remote-references": true,
		"fail-on-invalid":         false,
		"log.format":              "text",
		"log.level":               "info",
	}
}

// Load layers defaults, the config file and the level argument, in that
// order. An empty configFile falls back to EnvFile and then DefaultFile. An
// empty level leaves the configured level untouched.
func Load(configFile, level string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if configFile == "" {
		configFile = os.Getenv(EnvFile)
	}
	if configFile == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			configFile = DefaultFile
		}
	}

	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	if level != "" {
		l, err := validate.ParseLevel(level)
		if err != nil {
			return nil, err
		}
		if err := k.Load(confmap.Provider(map[string]any{"level": int(l)}, "."), nil); err != nil {
			return nil, fmt.Errorf("loading level: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if !validate.Level(c.Level).Valid() {
		return fmt.Errorf("%w: %d (valid: 0, 1, 2)", validate.ErrInvalidLevel, c.Level)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("invalid timeout: %s (must not be negative)", c.Timeout)
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[c.Log.Format] {
		return fmt.Errorf("invalid log format: %s (valid: text, json)", c.Log.Format)
	}

	if _, err := c.LogLevel(); err != nil {
		return err
	}

	return nil
}

// ValidationLevel returns Level as a validate.Level.
func (c *Config) ValidationLevel() validate.Level {
	return validate.Level(c.Level)
}

func (c *Config) LogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", c.Log.Level)
	}
	return l, nil
}
