// Package config resolves client configuration from a .diary file,
// environment variables, and defaults.
package config

import (
	"os"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	defaultBaseURL = "http://127.0.0.1:8000/api/"
	defaultTimeout = 10 * time.Second
)

// Config carries the settings the client needs to reach the backend.
type Config struct {
	// BaseURL is the API root, always with a trailing slash.
	BaseURL string `json:"base_url"`
	// Timeout bounds each request round trip.
	Timeout time.Duration `json:"timeout"`
}

// Load reads configuration with viper. Precedence: DIARY_* env vars,
// then a .diary file (DIARY_CONFIG_PATH directory, else cwd, else home),
// then defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("base_url", defaultBaseURL)
	v.SetDefault("timeout", defaultTimeout)
	v.SetConfigName(".diary") // .yaml is implicit
	v.SetEnvPrefix("DIARY")
	v.AutomaticEnv()

	if override := os.Getenv("DIARY_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &Config{
		BaseURL: v.GetString("base_url"),
		Timeout: v.GetDuration("timeout"),
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.BaseURL[len(cfg.BaseURL)-1] != '/' {
		cfg.BaseURL += "/"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return cfg, nil
}
