package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Load loads configuration from multiple sources in priority order:
// 1. Built-in network profile defaults
// 2. Configuration file (xrplview.yaml), optional
// 3. Environment variables (XRPLVIEW_ prefix)
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file does not exist: %s", configPath)
		}
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	v.SetEnvPrefix("XRPLVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// LoadDefault loads configuration with no config file, profiles and
// environment only.
func LoadDefault() (*Config, error) {
	return Load("")
}

func validate(config *Config) error {
	if config.Network == "" {
		return fmt.Errorf("network must be set")
	}
	profile, err := config.Active()
	if err != nil {
		return err
	}
	if profile.NativeAsset == "" {
		return fmt.Errorf("network %q: native_asset must be set", config.Network)
	}
	if profile.BaseFeeDrops <= 0 {
		return fmt.Errorf("network %q: base_fee_drops must be positive", config.Network)
	}
	if profile.OwnerReserveDrops < 0 || profile.BaseReserveDrops < 0 {
		return fmt.Errorf("network %q: reserves must not be negative", config.Network)
	}
	return nil
}
