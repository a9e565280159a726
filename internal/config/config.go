// Package config loads catfacts settings from defaults, an optional TOML
// file and CATFACTS_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Carousel CarouselConfig `mapstructure:"carousel"`
	UI       UIConfig       `mapstructure:"ui"`
	Log      LogConfig      `mapstructure:"log"`
}

// CarouselConfig holds slideshow settings.
type CarouselConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Animations bool `mapstructure:"animations"`
	AltScreen  bool `mapstructure:"alt_screen"`
	Mouse      bool `mapstructure:"mouse"`
}

// LogConfig holds logger settings. An empty File disables logging.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

var (
	ErrInvalidInterval = errors.New("carousel interval must be positive")
	ErrInvalidLogLevel = errors.New("unknown log level")
)

var logLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Carousel: CarouselConfig{Interval: 5 * time.Second},
		UI:       UIConfig{Animations: true, AltScreen: true, Mouse: true},
		Log:      LogConfig{Level: "info"},
	}
}

// Load reads configuration from file and env. Env var overrides use prefix CATFACTS_.
func Load() (Config, error) {
	def := Default()
	v := viper.New()

	v.SetDefault("carousel.interval", def.Carousel.Interval)
	v.SetDefault("ui.animations", def.UI.Animations)
	v.SetDefault("ui.alt_screen", def.UI.AltScreen)
	v.SetDefault("ui.mouse", def.UI.Mouse)
	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("log.level", def.Log.Level)

	v.SetConfigType("toml")

	if cfgPath := os.Getenv("CATFACTS_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "catfacts"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CATFACTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports settings the program cannot run with.
func (c Config) Validate() error {
	if c.Carousel.Interval <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidInterval, c.Carousel.Interval)
	}
	if !logLevels[c.Log.Level] {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level)
	}
	return nil
}
