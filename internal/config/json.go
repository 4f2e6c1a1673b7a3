package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/tidwall/jsonc"
)

// fileConfig схема файла конфигурации. Отсутствующие поля не меняют Config.
type fileConfig struct {
	AuthURL      *string   `json:"auth_url"`
	DataURL      *string   `json:"data_url"`
	DBPath       *string   `json:"db"`
	LogLevel     *string   `json:"log_level"`
	LogFormat    *string   `json:"log_format"`
	PasswordFile *string   `json:"password_file"`
	Timeout      *duration `json:"timeout"`
}

// duration принимает "15s" или число секунд
type duration time.Duration

func (d *duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		parsed, err := parseDuration(s)
		if err != nil {
			return err
		}
		*d = duration(parsed)
		return nil
	}

	var seconds float64
	if err := json.Unmarshal(b, &seconds); err != nil {
		return fmt.Errorf("timeout must be a duration string or seconds: %w", err)
	}
	*d = duration(seconds * float64(time.Second))
	return nil
}

// loadFile накладывает значения из JSONC файла
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := json.Unmarshal(jsonc.ToJSON(data), &fc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if fc.AuthURL != nil {
		c.AuthURL = *fc.AuthURL
	}
	if fc.DataURL != nil {
		c.DataURL = *fc.DataURL
	}
	if fc.DBPath != nil {
		c.DBPath = *fc.DBPath
	}
	if fc.LogLevel != nil {
		c.LogLevel = *fc.LogLevel
	}
	if fc.LogFormat != nil {
		c.LogFormat = *fc.LogFormat
	}
	if fc.PasswordFile != nil {
		c.PasswordFile = *fc.PasswordFile
	}
	if fc.Timeout != nil {
		c.Timeout = time.Duration(*fc.Timeout)
	}
	return nil
}
