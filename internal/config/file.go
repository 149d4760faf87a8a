package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	configFileMode  = 0o600
	configDirMode   = 0o700
	tempFilePattern = ".config-*.toml.tmp"
)

// fileSchema is the on-disk layout of config.toml.
type fileSchema struct {
	API     apiSchema     `toml:"api"`
	Secrets secretsSchema `toml:"secrets"`
	Log     logSchema     `toml:"log"`
}

type apiSchema struct {
	BaseURL string `toml:"base_url"`
	Timeout string `toml:"timeout"`
}

type secretsSchema struct {
	Backend string `toml:"backend"`
	Dir     string `toml:"dir"`
}

type logSchema struct {
	Level string `toml:"level"`
}

// Save writes the configuration to path atomically: the new content
// lands in a temp file in the same directory and is renamed over the
// old file, so a crash never leaves a torn config behind.
func Save(cfg Config, path string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	payload, err := toml.Marshal(fileSchema{
		API: apiSchema{
			BaseURL: cfg.API.BaseURL,
			Timeout: cfg.API.Timeout.String(),
		},
		Secrets: secretsSchema{
			Backend: cfg.Secrets.Backend,
			Dir:     cfg.Secrets.Dir,
		},
		Log: logSchema{
			Level: cfg.Log.Level,
		},
	})
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, configDirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}
	tempPath := tempFile.Name()

	_, writeErr := tempFile.Write(payload)
	closeErr := tempFile.Close()
	if err := errors.Join(writeErr, closeErr); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("write temp config file: %w", err)
	}

	if err := os.Chmod(tempPath, configFileMode); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("set config file mode: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("replace config file: %w", err)
	}

	return nil
}

// LoadFile reads a config file directly, without viper or environment
// overrides; missing file yields the zero schema.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, os.ErrNotExist
		}
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	var schema fileSchema
	if err := toml.Unmarshal(data, &schema); err != nil {
		return Config{}, fmt.Errorf("decode config file: %w", err)
	}

	timeout := defaultTimeout
	if schema.API.Timeout != "" {
		parsed, err := time.ParseDuration(schema.API.Timeout)
		if err != nil {
			return Config{}, fmt.Errorf("parse api.timeout: %w", err)
		}
		timeout = parsed
	}

	return Config{
		API: APIConfig{
			BaseURL: schema.API.BaseURL,
			Timeout: timeout,
		},
		Secrets: SecretsConfig{
			Backend: schema.Secrets.Backend,
			Dir:     schema.Secrets.Dir,
		},
		Log: LogConfig{
			Level: schema.Log.Level,
		},
	}, nil
}
