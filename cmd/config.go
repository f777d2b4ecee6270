package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"
)

// The data folder name the tool has always used; existing data keeps working.
const defaultDataFolder = "data_persediaan_average"

var configOnce sync.Once

// ensureConfig loads the configuration exactly once: defaults, then an
// optional kartu.yaml (working directory or ~/.config/kartu), then KARTU_*
// environment variables.
func ensureConfig() {
	configOnce.Do(func() {
		viper.SetDefault("data", defaultDataFolder)
		viper.SetDefault("currency", "IDR")
		viper.SetDefault("log-level", "info")

		viper.SetConfigName("kartu")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "kartu"))
		}

		var notFound viper.ConfigFileNotFoundError
		if err := viper.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
			warnf("could not read config file: %v", err)
		}

		viper.SetEnvPrefix("kartu")
		viper.AutomaticEnv()

		setupLogger(viper.GetString("log-level"))
	})
}

// defaultDataDir returns the configured data directory, used as the default
// of the -data flag.
func defaultDataDir() string {
	ensureConfig()
	return viper.GetString("data")
}

// currency returns the display currency shared by the whole store.
func currency() string {
	ensureConfig()
	return viper.GetString("currency")
}
