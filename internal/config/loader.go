package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultPath = "./config.yaml"

// Load reads configuration with precedence ENV > YAML > env-default tags,
// normalizes it and validates it.
//
// The YAML path comes from CONFIG_PATH. Without CONFIG_PATH, ./config.yaml
// is read if present, otherwise only ENV and defaults apply. An explicit
// CONFIG_PATH that does not exist is an error.
func Load() (*Config, error) {
	var cfg Config

	path, explicit := resolvePath()

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit || !errors.Is(statErr, fs.ErrNotExist):
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

func resolvePath() (string, bool) {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p, true
	}
	return defaultPath, false
}

// normalize lower-cases collaborator modes and strips trailing slashes from
// base URLs so adapters can join paths directly.
func (c *Config) normalize() {
	c.Fraud.Mode = strings.ToLower(strings.TrimSpace(c.Fraud.Mode))
	c.Oracle.Mode = strings.ToLower(strings.TrimSpace(c.Oracle.Mode))
	c.Notify.Mode = strings.ToLower(strings.TrimSpace(c.Notify.Mode))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))

	c.Fraud.BaseURL = strings.TrimRight(c.Fraud.BaseURL, "/")
	c.Oracle.BaseURL = strings.TrimRight(c.Oracle.BaseURL, "/")
}
