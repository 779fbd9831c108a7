package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds CLI configuration loaded from the config file and
// environment. Flags override config values per command.
type Config struct {
	// BackendURL is the base URL of the back-office API.
	BackendURL string `toml:"backend_url"`

	// Token is an optional bearer token for the back-office API.
	Token string `toml:"token"`

	// CacheDir overrides the default cache directory.
	CacheDir string `toml:"cache_dir"`

	// RedisAddr enables the shared Redis cache when set, e.g. "localhost:6379".
	RedisAddr string `toml:"redis_addr"`

	// ListenAddr is the default address for the serve command.
	ListenAddr string `toml:"listen_addr"`
}

// defaultConfig is used when no config file exists.
func defaultConfig() Config {
	return Config{
		BackendURL: "http://localhost:8080",
		ListenAddr: ":7420",
	}
}

// LoadConfig reads the config file and applies environment overrides.
// A missing or unreadable file silently yields defaults: the CLI must
// work out of the box against a local back office.
func LoadConfig() Config {
	cfg := defaultConfig()

	if path, err := configPath(); err == nil {
		// Unknown keys are tolerated so older binaries keep working
		// against newer config files.
		_, _ = toml.DecodeFile(path, &cfg)
	}

	if v := os.Getenv("LABELPRESS_BACKEND_URL"); v != "" {
		cfg.BackendURL = v
	}
	if v := os.Getenv("LABELPRESS_TOKEN"); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv("LABELPRESS_REDIS_ADDR"); v != "" {
		cfg.RedisAddr = v
	}

	return cfg
}

// configPath returns the config file path using the XDG standard
// (~/.config/labelpress/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
