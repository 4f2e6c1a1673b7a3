package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/iudanet/cloudstore/internal/client/api"
	"github.com/iudanet/cloudstore/internal/logger"
)

// Переменные окружения
const (
	EnvConfig    = "CLOUDSTORE_CONFIG"
	EnvAuthURL   = "CLOUDSTORE_AUTH_URL"
	EnvDataURL   = "CLOUDSTORE_DATA_URL"
	EnvDB        = "CLOUDSTORE_DB"
	EnvTimeout   = "CLOUDSTORE_TIMEOUT"
	EnvLogLevel  = "CLOUDSTORE_LOG_LEVEL"
	EnvLogFormat = "CLOUDSTORE_LOG_FORMAT"
	EnvPassword  = "CLOUDSTORE_PASSWORD"
)

// DefaultDBPath путь к локальной базе по умолчанию
const DefaultDBPath = "cloudstore-client.db"

// Config holds runtime settings for the cloudstore CLI
type Config struct {
	AuthURL      string
	DataURL      string
	DBPath       string
	LogLevel     string
	LogFormat    string
	ConfigPath   string
	Password     string
	PasswordFile string

	// envPassword пароль из CLOUDSTORE_PASSWORD, имеет наивысший приоритет
	envPassword string

	Timeout     time.Duration
	ShowVersion bool
}

// Defaults returns a Config with built-in values
func Defaults() *Config {
	return &Config{
		AuthURL:   api.DefaultAuthURL,
		DataURL:   api.DefaultDataURL,
		DBPath:    DefaultDBPath,
		Timeout:   api.DefaultTimeout,
		LogLevel:  "warn",
		LogFormat: logger.FormatText,
	}
}

// Load builds a Config from defaults, the optional config file, environment
// and flags. It returns the remaining positional arguments (command and its
// arguments).
func Load(args []string, getenv func(string) string) (*Config, []string, error) {
	if getenv == nil {
		getenv = os.Getenv
	}

	cfg := Defaults()

	fs := flag.NewFlagSet("cloudstore", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	flags := cfg.bindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	// Путь к файлу нужен раньше остальных флагов
	configPath := getenv(EnvConfig)
	if flags.configPath != "" {
		configPath = flags.configPath
	}
	if configPath != "" {
		if err := cfg.loadFile(configPath); err != nil {
			return nil, nil, err
		}
		cfg.ConfigPath = configPath
	}

	if err := cfg.loadEnv(getenv); err != nil {
		return nil, nil, err
	}

	// Применяем только явно заданные флаги
	fs.Visit(func(f *flag.Flag) {
		flags.apply(cfg, f.Name)
	})

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	return cfg, fs.Args(), nil
}

// loadEnv applies CLOUDSTORE_* variables. Empty values are ignored.
func (c *Config) loadEnv(getenv func(string) string) error {
	if v := getenv(EnvAuthURL); v != "" {
		c.AuthURL = v
	}
	if v := getenv(EnvDataURL); v != "" {
		c.DataURL = v
	}
	if v := getenv(EnvDB); v != "" {
		c.DBPath = v
	}
	if v := getenv(EnvTimeout); v != "" {
		d, err := parseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvTimeout, err)
		}
		c.Timeout = d
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := getenv(EnvLogFormat); v != "" {
		c.LogFormat = v
	}
	c.envPassword = getenv(EnvPassword)
	return nil
}

// Validate проверяет итоговую конфигурацию
func (c *Config) Validate() error {
	var errs []error

	if err := validateURL(c.AuthURL); err != nil {
		errs = append(errs, fmt.Errorf("auth url: %w", err))
	}
	if err := validateURL(c.DataURL); err != nil {
		errs = append(errs, fmt.Errorf("data url: %w", err))
	}
	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, got %s", c.Timeout))
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.LogFormat) {
	case logger.FormatText, logger.FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("invalid log format %q", c.LogFormat))
	}

	return errors.Join(errs...)
}

// ResolvePassword returns the non-interactive password, if any was configured.
// Priority: CLOUDSTORE_PASSWORD, --password-file, --password.
func (c *Config) ResolvePassword() (string, bool, error) {
	if c.envPassword != "" {
		return c.envPassword, true, nil
	}
	if c.PasswordFile != "" {
		data, err := os.ReadFile(c.PasswordFile)
		if err != nil {
			return "", false, fmt.Errorf("failed to read password file: %w", err)
		}
		password := strings.TrimRight(string(data), "\r\n")
		if password == "" {
			return "", false, fmt.Errorf("password file %s is empty", c.PasswordFile)
		}
		return password, true, nil
	}
	if c.Password != "" {
		return c.Password, true, nil
	}
	return "", false, nil
}

// PersistSession сообщает, нужно ли сохранять сессию на диск
func (c *Config) PersistSession() bool {
	return c.DBPath != ""
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme in %q", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host in %q", raw)
	}
	return nil
}

// parseDuration принимает Go duration ("15s") или число секунд ("15")
func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}
	seconds, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	return time.Duration(seconds * float64(time.Second)), nil
}
