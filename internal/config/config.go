package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DebounceWindow time.Duration `mapstructure:"debounce_window"`
	BufferSize     int           `mapstructure:"buffer_size"`
	LogDir         string        `mapstructure:"log_dir"`
}

var Default = Config{
	DebounceWindow: time.Second,
	BufferSize:     100,
}

// Load resolves configuration from defaults and FILEBAK_-prefixed
// environment variables. There is no config file.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home dir: %w", err)
	}

	viper.SetDefault("debounce_window", Default.DebounceWindow)
	viper.SetDefault("buffer_size", Default.BufferSize)
	viper.SetDefault("log_dir", filepath.Join(home, ".filebak"))

	viper.SetEnvPrefix("FILEBAK")
	viper.AutomaticEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
