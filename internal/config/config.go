package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	UI       UIConfig       `mapstructure:"ui"`
	Log      LogConfig      `mapstructure:"log"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencySymbol string        `mapstructure:"currency_symbol"`
	TickInterval   time.Duration `mapstructure:"tick_interval"`
	Timezone       string        `mapstructure:"timezone"`
}

// LogConfig holds logger settings. Path may be a file or "stderr"/"stdout".
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Path   string `mapstructure:"path"`
	Format string `mapstructure:"format"`
}

// Location resolves the configured timezone, falling back to time.Local.
func (c UIConfig) Location() (*time.Location, error) {
	tz := strings.TrimSpace(c.Timezone)
	if tz == "" || strings.EqualFold(tz, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.Local, fmt.Errorf("load timezone %q: %w", tz, err)
	}
	return loc, nil
}

func dataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "fintrack")
}

// Path is the config file Load reads and Save writes.
func Path() string { return configPath() }

func configPath() string {
	if p := os.Getenv("FINTRACK_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "fintrack", "config.toml")
}

// Load reads configuration from defaults, the config file, a .env file in the
// working directory and the environment. Env var overrides use prefix FINTRACK_.
func Load() (Config, error) {
	// .env only fills variables that are not already set
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()

	v.SetDefault("database.path", filepath.Join(dataDir(), "finance.db"))
	v.SetDefault("ui.currency_symbol", "lei")
	v.SetDefault("ui.tick_interval", "50ms")
	v.SetDefault("ui.timezone", "Local")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", filepath.Join(dataDir(), "fintrack.log"))
	v.SetDefault("log.format", "console")

	v.SetConfigType("toml")
	v.SetConfigFile(configPath())

	v.SetEnvPrefix("FINTRACK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.TickInterval <= 0 {
		return Config{}, fmt.Errorf("ui.tick_interval must be positive, got %s", c.UI.TickInterval)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := configPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("ui.currency_symbol", cfg.UI.CurrencySymbol)
	v.Set("ui.tick_interval", cfg.UI.TickInterval.String())
	v.Set("ui.timezone", cfg.UI.Timezone)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.format", cfg.Log.Format)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
