// Package config loads the share CLI configuration from
// ~/.share/config.toml with SHARE_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	configDirName  = ".share"
	configName     = "config"
	configType     = "toml"
	configFileName = "config.toml"

	envPrefix = "SHARE"

	defaultBaseURL = "http://localhost:8000"
	defaultTimeout = 10 * time.Second
	defaultBackend = "auto"
)

type Config struct {
	API     APIConfig     `mapstructure:"api" validate:"required"`
	Secrets SecretsConfig `mapstructure:"secrets" validate:"required"`
	Log     LogConfig     `mapstructure:"log"`
}

type APIConfig struct {
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type SecretsConfig struct {
	// Backend selects where session tokens are persisted:
	// auto (pass with file fallback), pass, or file.
	Backend string `mapstructure:"backend" validate:"required,oneof=auto pass file"`
	Dir     string `mapstructure:"dir" validate:"required"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
}

// Dir returns the config directory under the user's home.
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(homeDir, configDirName), nil
}

// FilePath returns the path of the config file, whether or not it
// exists yet.
func FilePath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads configuration into cfg with defaults applied; a missing
// config file is not an error. Environment variables win over the
// file: SHARE_API_BASE_URL, SHARE_API_TIMEOUT, SHARE_SECRETS_BACKEND,
// SHARE_SECRETS_DIR, SHARE_LOG_LEVEL.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	dir, err := Dir()
	if err != nil {
		return Config{}, err
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(dir)

	v.SetDefault("api.base_url", defaultBaseURL)
	v.SetDefault("api.timeout", defaultTimeout)
	v.SetDefault("secrets.backend", defaultBackend)
	v.SetDefault("secrets.dir", filepath.Join(dir, "secrets"))
	v.SetDefault("log.level", "warn")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if c.API.Timeout <= 0 {
		return errors.New("invalid configuration: api.timeout must be positive")
	}

	return nil
}
