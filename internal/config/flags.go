package config

import (
	"flag"
	"io"
	"time"
)

// flagValues хранит значения флагов до наложения на Config
type flagValues struct {
	authURL      string
	dataURL      string
	dbPath       string
	logLevel     string
	logFormat    string
	configPath   string
	password     string
	passwordFile string
	timeout      time.Duration
	showVersion  bool
}

func (c *Config) bindFlags(fs *flag.FlagSet) *flagValues {
	v := &flagValues{}
	fs.BoolVar(&v.showVersion, "version", false, "Show version information")
	fs.StringVar(&v.configPath, "config", "", "Path to JSON config file (comments allowed)")
	fs.StringVar(&v.authURL, "auth-url", c.AuthURL, "Auth endpoint URL")
	fs.StringVar(&v.dataURL, "data-url", c.DataURL, "Data endpoint URL")
	fs.StringVar(&v.dbPath, "db", c.DBPath, "Path to local session database (empty: do not persist)")
	fs.DurationVar(&v.timeout, "timeout", c.Timeout, "HTTP request timeout")
	fs.StringVar(&v.logLevel, "log-level", c.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&v.logFormat, "log-format", c.LogFormat, "Log format: text, json")
	fs.StringVar(&v.password, "password", "", "Password (prefer CLOUDSTORE_PASSWORD or --password-file)")
	fs.StringVar(&v.passwordFile, "password-file", "", "Read password from file")
	return v
}

// apply переносит значение явно заданного флага в Config
func (v *flagValues) apply(c *Config, name string) {
	switch name {
	case "version":
		c.ShowVersion = v.showVersion
	case "auth-url":
		c.AuthURL = v.authURL
	case "data-url":
		c.DataURL = v.dataURL
	case "db":
		c.DBPath = v.dbPath
	case "timeout":
		c.Timeout = v.timeout
	case "log-level":
		c.LogLevel = v.logLevel
	case "log-format":
		c.LogFormat = v.logFormat
	case "password":
		c.Password = v.password
	case "password-file":
		c.PasswordFile = v.passwordFile
	}
}

// PrintFlags печатает описание глобальных флагов
func PrintFlags(w io.Writer) {
	fs := flag.NewFlagSet("cloudstore", flag.ContinueOnError)
	fs.SetOutput(w)
	Defaults().bindFlags(fs)
	fs.PrintDefaults()
}
