package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// FileName is looked up in the config directory. The file is optional.
const FileName = "arena3d.cfg"

// WindowConfig holds the debug host window settings.
type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// Config is the host configuration. Gameplay tuning lives in prefabs.
type Config struct {
	LogLevel         string       `mapstructure:"logLevel"`
	PrefabDir        string       `mapstructure:"prefabDir"`
	Arena            string       `mapstructure:"arena"`
	Player           string       `mapstructure:"player"`
	Weapon           string       `mapstructure:"weapon"`
	HotReload        bool         `mapstructure:"hotReload"`
	MaxFrameDelta    float64      `mapstructure:"maxFrameDelta"`
	MouseSensitivity float64      `mapstructure:"mouseSensitivity"`
	Window           WindowConfig `mapstructure:"window"`
}

// Load sets default values and reads arena3d.cfg.yaml from configDir when
// present.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("prefabDir", "prefabs")
	viper.SetDefault("arena", "arena.yaml")
	viper.SetDefault("player", "player.yaml")
	viper.SetDefault("weapon", "weapon.yaml")
	viper.SetDefault("hotReload", false)
	viper.SetDefault("maxFrameDelta", 0.25)
	viper.SetDefault("mouseSensitivity", 0.002)

	viper.SetDefault("window.width", 1280)
	viper.SetDefault("window.height", 720)
	viper.SetDefault("window.title", "arena3d")

	viper.SetConfigName(FileName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", FileName, err)
	}
	return nil
}

// Current decodes the loaded settings.
func Current() (Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	return cfg, nil
}
