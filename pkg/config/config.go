// Package config loads madlibs settings from an optional app.env file and
// the process environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/viper"
)

// Prefix is shared by every setting key.
const Prefix = "MADLIBS_"

// Config holds the settings of a run.
type Config struct {
	StoriesFile      string `env:"STORIES_FILE"      envDefault:"./data/stories.json"`
	Seed             uint64 `env:"SEED"`
	EchoReplacements bool   `env:"ECHO_REPLACEMENTS" envDefault:"true"`
	GenreAttempts    int    `env:"GENRE_ATTEMPTS"    envDefault:"1"`
	Color            bool   `env:"COLOR"             envDefault:"true"`
	Verbose          bool   `env:"VERBOSE"`
}

// ReadFile looks for app.env in the working directory, then in the user's
// home directory. A missing file is not an error.
func ReadFile(v *viper.Viper) (string, error) {
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return "", nil
		}
		return "", fmt.Errorf("read config file: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// Load builds a Config from the settings viper read and the process
// environment.
func Load(v *viper.Viper) (Config, error) {
	return FromSettings(v.AllSettings(), os.Environ())
}

// FromSettings builds a Config from file settings and KEY=VALUE environment
// entries. Environment entries win over file settings.
func FromSettings(settings map[string]any, environ []string) (Config, error) {
	environment := env.ToMap(environ)
	for key, value := range settings {
		key = strings.ToUpper(key)
		if _, ok := environment[key]; !ok {
			environment[key] = fmt.Sprint(value)
		}
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{
		Prefix:      Prefix,
		Environment: environment,
	}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks settings that env tags cannot express.
func (c Config) Validate() error {
	if strings.TrimSpace(c.StoriesFile) == "" {
		return fmt.Errorf("%sSTORIES_FILE must not be empty", Prefix)
	}
	if c.GenreAttempts < 1 {
		return fmt.Errorf("%sGENRE_ATTEMPTS must be at least 1, got %d", Prefix, c.GenreAttempts)
	}
	return nil
}
