// Package config loads benchmark configuration from flags, environment
// variables and an optional YAML file.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Size is a named payload size. The label doubles as the fixture file name
// and the row key in reports.
type Size struct {
	Label string
	Bytes int
}

// Config carries everything a suite run needs. It is an explicit struct
// handed to the orchestrator so tests can run reduced matrices without
// touching globals.
type Config struct {
	DataDir    string
	ResultsDir string
	HistoryDB  string
	Runs       int
	Sizes      []Size
}

// Load initializes the configuration from file and environment variables.
// Precedence follows viper: changed flags, then CIPHERBENCH_* environment
// variables, then the config file, then defaults.
func Load(cfgFile string) (*Config, error) {
	// explicit .env loading; a missing file is fine
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("cipherbench")
	}

	viper.SetEnvPrefix("CIPHERBENCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	viper.SetDefault("data_dir", "data")
	viper.SetDefault("results_dir", "results")
	viper.SetDefault("history_db", "results/history.db")
	viper.SetDefault("runs", 10)
	viper.SetDefault("sizes", []string{"1KB", "1MB", "10MB"})

	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return nil, fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		DataDir:    viper.GetString("data_dir"),
		ResultsDir: viper.GetString("results_dir"),
		HistoryDB:  viper.GetString("history_db"),
		Runs:       viper.GetInt("runs"),
	}
	if cfg.Runs < 1 {
		return nil, fmt.Errorf("runs must be at least 1, got %d", cfg.Runs)
	}

	labels := viper.GetStringSlice("sizes")
	if len(labels) == 0 {
		return nil, fmt.Errorf("at least one payload size is required")
	}
	for _, label := range labels {
		size, err := ParseSize(label)
		if err != nil {
			return nil, err
		}
		cfg.Sizes = append(cfg.Sizes, size)
	}
	return cfg, nil
}

// ParseSize parses labels like "512B", "1KB" or "10MB". Units are binary:
// a 1KB fixture holds 1024 bytes, matching the MiB/s reporting unit.
func ParseSize(label string) (Size, error) {
	s := strings.TrimSpace(label)
	upper := strings.ToUpper(s)

	mult := 1
	digits := upper
	switch {
	case strings.HasSuffix(upper, "GB"):
		mult, digits = 1<<30, upper[:len(upper)-2]
	case strings.HasSuffix(upper, "MB"):
		mult, digits = 1<<20, upper[:len(upper)-2]
	case strings.HasSuffix(upper, "KB"):
		mult, digits = 1<<10, upper[:len(upper)-2]
	case strings.HasSuffix(upper, "B"):
		digits = upper[:len(upper)-1]
	}

	n, err := strconv.Atoi(digits)
	if err != nil || n <= 0 {
		return Size{}, fmt.Errorf("invalid payload size %q", label)
	}
	return Size{Label: s, Bytes: n * mult}, nil
}
