// Package config resolves where the journal lives and which storage backend
// holds it.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/mstern/zenith/internal/constants"
)

// Config is the resolved application configuration.
type Config struct {
	// Path is the journal location: a directory for the diskv backend, a
	// database file for sqlite.
	Path string

	// Backend selects the key-value store implementation.
	Backend string

	// Debug enables verbose logging to stderr.
	Debug bool
}

// Load reads configuration from a .zenith config file (current directory or
// home), ZENITH_* environment variables, and defaults, in ascending
// precedence of env over file over defaults.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("path", constants.DefaultDataPath)
	v.SetDefault("backend", constants.BackendDiskv)
	v.SetDefault("debug", false)

	v.SetConfigName(".zenith") // .yaml is implicit
	v.SetEnvPrefix("ZENITH")
	v.AutomaticEnv()

	v.AddConfigPath("./")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	cfg := Config{
		Path:    expandHome(v.GetString("path")),
		Backend: strings.ToLower(v.GetString("backend")),
		Debug:   v.GetBool("debug"),
	}
	return cfg, nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
