// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the settings of the command line tool.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Output OutputConfig `mapstructure:"output"`
}

// LogConfig configures the diagnostic logger.
type LogConfig struct {
	// debug, info, warn or error.
	Level string `mapstructure:"level"`
	// console or json.
	Format string `mapstructure:"format"`
}

// OutputConfig configures how results are printed.
type OutputConfig struct {
	// Number of decimal places results are rounded to.
	// Negative means no rounding.
	Precision int `mapstructure:"precision"`
}

const envPrefix = "LINEAR"

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
	v.SetDefault("output.precision", -1)
}

// loadConfig reads the configuration from file (if not
// empty), the environment and any flags bound to v.
func loadConfig(v *viper.Viper, file string) (cfg Config, err error) {
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if file != "" {
		v.SetConfigFile(file)
		if err = v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
	}
	if err = v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	return
}
