package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Defaults. The cycle constants match the original study-cycle design:
// two plants per session, three minutes on the clock.
const (
	DefaultCycleSeconds   = 180
	DefaultPlantsPerCycle = 2
	DefaultLogLevel       = "info"
)

type Config struct {
	DataDir string `mapstructure:"data_dir"`
	Cycle   struct {
		DurationSeconds int `mapstructure:"duration_seconds"`
		Plants          int `mapstructure:"plants"`
	} `mapstructure:"cycle"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

// Load reads config.yaml from the data directory if present, with VERDURE_*
// environment overrides. A missing file is fine; defaults cover everything.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, err
	}
	dataDir := filepath.Join(home, ".verdure")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(dataDir)

	viper.SetEnvPrefix("VERDURE")
	viper.AutomaticEnv()

	viper.SetDefault("data_dir", dataDir)
	viper.SetDefault("cycle.duration_seconds", DefaultCycleSeconds)
	viper.SetDefault("cycle.plants", DefaultPlantsPerCycle)
	viper.SetDefault("log.level", DefaultLogLevel)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	if cfg.Cycle.DurationSeconds <= 0 {
		cfg.Cycle.DurationSeconds = DefaultCycleSeconds
	}
	if cfg.Cycle.Plants <= 0 {
		cfg.Cycle.Plants = DefaultPlantsPerCycle
	}

	return cfg, nil
}
