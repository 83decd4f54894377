package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/audiper-dev/audiper/internal/audit"
)

// FileName is the config file looked up in the working directory.
const FileName = "audiper.yaml"

// EnvPrefix prefixes environment overrides, e.g. AUDIPER_LOG_LEVEL.
const EnvPrefix = "AUDIPER"

// Config represents the top-level audiper.yaml configuration.
type Config struct {
	Audit  AuditConfig  `yaml:"audit"`
	Report ReportConfig `yaml:"report"`
	Log    LogConfig    `yaml:"log"`
	Paths  PathsConfig  `yaml:"paths"`
	Server ServerConfig `yaml:"server"`
}

// AuditConfig tunes the reversed-balance check.
type AuditConfig struct {
	ContraKeywords []string `yaml:"contra_keywords" validate:"dive,required"`
	FoldAccents    bool     `yaml:"fold_accents"`
}

// ReportConfig controls terminal output.
type ReportConfig struct {
	Format string `yaml:"format" validate:"oneof=pretty markdown json"`
	Style  string `yaml:"style" validate:"required"` // glamour style name or "auto"
	Width  int    `yaml:"width" validate:"gte=40,lte=400"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// PathsConfig locates the project directories, relative to the project root.
type PathsConfig struct {
	Inbox     string `yaml:"inbox" validate:"required"`
	Processed string `yaml:"processed" validate:"required"`
	Reports   string `yaml:"reports" validate:"required"`
	AuditLog  string `yaml:"audit_log" validate:"required"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Addr        string `yaml:"addr" validate:"required,hostname_port"`
	MaxUploadMB int    `yaml:"max_upload_mb" validate:"gt=0"`
	AuditRate   string `yaml:"audit_rate" validate:"required"` // per client IP, e.g. "60-M"
}

// Rules builds the audit rules this config describes.
func (c *Config) Rules() audit.Rules {
	return audit.NewRules(c.Audit.ContraKeywords, c.Audit.FoldAccents)
}

// Load reads an audiper.yaml file from disk. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		Audit: AuditConfig{
			ContraKeywords: append([]string(nil), audit.DefaultContraKeywords...),
		},
		Report: ReportConfig{
			Format: "pretty",
			Style:  "auto",
			Width:  100,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Paths: PathsConfig{
			Inbox:     "inbox",
			Processed: "inbox/processed",
			Reports:   "reports",
			AuditLog:  "logs/audit-log.csv",
		},
		Server: ServerConfig{
			Addr:        "127.0.0.1:8080",
			MaxUploadMB: 50,
			AuditRate:   "60-M",
		},
	}
}

// Resolve loads path when it exists, falls back to defaults when it does not,
// then applies environment overrides and validates the result.
func Resolve(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err = Default(), nil
	}
	if err != nil {
		return nil, err
	}

	ApplyEnv(cfg)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides cfg from AUDIPER_* environment variables. A .env file in
// the working directory is loaded first; variables already set win over it.
func ApplyEnv(cfg *Config) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	setString := func(key string, dst *string) {
		if s := v.GetString(key); s != "" {
			*dst = s
		}
	}

	if s := v.GetString("contra_keywords"); s != "" {
		var kws []string
		for _, k := range strings.Split(s, ",") {
			if k = strings.TrimSpace(k); k != "" {
				kws = append(kws, k)
			}
		}
		cfg.Audit.ContraKeywords = kws
	}
	if v.IsSet("fold_accents") {
		cfg.Audit.FoldAccents = v.GetBool("fold_accents")
	}

	setString("report_format", &cfg.Report.Format)
	setString("report_style", &cfg.Report.Style)
	if v.IsSet("report_width") {
		cfg.Report.Width = v.GetInt("report_width")
	}

	setString("log_level", &cfg.Log.Level)
	setString("log_format", &cfg.Log.Format)

	setString("inbox", &cfg.Paths.Inbox)
	setString("processed", &cfg.Paths.Processed)
	setString("reports", &cfg.Paths.Reports)
	setString("audit_log", &cfg.Paths.AuditLog)

	setString("addr", &cfg.Server.Addr)
	setString("audit_rate", &cfg.Server.AuditRate)
	if v.IsSet("max_upload_mb") {
		cfg.Server.MaxUploadMB = v.GetInt("max_upload_mb")
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
