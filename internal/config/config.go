// Package config loads server settings from the environment, with an
// optional YAML file pointed at by INCOME_ENGINE_CONFIG.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port                string `yaml:"port"`
	ReadTimeoutSeconds  int    `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `yaml:"write_timeout_seconds"`
}

func Load() (Config, error) {
	cfg := Config{
		Port:                getenvDefault("PORT", "8080"),
		ReadTimeoutSeconds:  getenvIntDefault("READ_TIMEOUT_SECONDS", 10),
		WriteTimeoutSeconds: getenvIntDefault("WRITE_TIMEOUT_SECONDS", 30),
	}

	if path := os.Getenv("INCOME_ENGINE_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrapf(err, "reading config file %s", path)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "parsing config file %s", path)
		}
	}

	return cfg, nil
}

func (c Config) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

func (c Config) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
