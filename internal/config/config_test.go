package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Audit.ContraKeywords = []string{"DEPRECIA", "ESTORNO"}
	cfg.Audit.FoldAccents = true
	cfg.Report.Format = "json"
	cfg.Log.Level = "debug"

	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg, got)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Contains(t, cfg.Audit.ContraKeywords, "DEPRECIA")
	assert.False(t, cfg.Audit.FoldAccents)
	assert.Equal(t, "pretty", cfg.Report.Format)
	assert.Equal(t, "auto", cfg.Report.Style)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "inbox", cfg.Paths.Inbox)
	assert.Equal(t, "logs/audit-log.csv", cfg.Paths.AuditLog)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr)
	require.NoError(t, Validate(cfg))
}

func TestDefaultsDoNotShareKeywords(t *testing.T) {
	a := Default()
	a.Audit.ContraKeywords[0] = "CHANGED"
	assert.NotEqual(t, "CHANGED", Default().Audit.ContraKeywords[0])
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: warn\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "pretty", cfg.Report.Format)
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, Default()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "contra_keywords:")
	assert.Contains(t, contents, "fold_accents: false")
	assert.Contains(t, contents, "format: pretty")
	assert.Contains(t, contents, "audit_log: logs/audit-log.csv")
}

func TestResolve_MissingFileUsesDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Resolve(FileName)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestResolve_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, Save(FileName, Default()))

	t.Setenv("AUDIPER_LOG_LEVEL", "debug")
	t.Setenv("AUDIPER_LOG_FORMAT", "json")
	t.Setenv("AUDIPER_FOLD_ACCENTS", "true")
	t.Setenv("AUDIPER_CONTRA_KEYWORDS", "depreciacao, estorno ,")
	t.Setenv("AUDIPER_REPORT_WIDTH", "120")
	t.Setenv("AUDIPER_ADDR", "0.0.0.0:9090")

	cfg, err := Resolve(FileName)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Audit.FoldAccents)
	assert.Equal(t, []string{"depreciacao", "estorno"}, cfg.Audit.ContraKeywords)
	assert.Equal(t, 120, cfg.Report.Width)
	assert.Equal(t, "0.0.0.0:9090", cfg.Server.Addr)
}

func TestResolve_DotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("AUDIPER_REPORT_FORMAT=markdown\n"), 0o644))
	t.Setenv("AUDIPER_REPORT_FORMAT", "")
	os.Unsetenv("AUDIPER_REPORT_FORMAT")

	cfg, err := Resolve(FileName)
	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.Report.Format)
}

func TestResolve_InvalidEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("AUDIPER_LOG_LEVEL", "loud")

	_, err := Resolve(FileName)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"bad format", func(c *Config) { c.Report.Format = "html" }, "Format"},
		{"narrow width", func(c *Config) { c.Report.Width = 10 }, "Width"},
		{"bad log level", func(c *Config) { c.Log.Level = "trace" }, "Level"},
		{"empty inbox", func(c *Config) { c.Paths.Inbox = "" }, "Inbox"},
		{"blank keyword", func(c *Config) { c.Audit.ContraKeywords = []string{"OK", ""} }, "ContraKeywords[1]"},
		{"bad addr", func(c *Config) { c.Server.Addr = "nope" }, "Addr"},
		{"zero upload", func(c *Config) { c.Server.MaxUploadMB = 0 }, "MaxUploadMB"},
		{"no audit rate", func(c *Config) { c.Server.AuditRate = "" }, "AuditRate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := Validate(cfg)
			require.Error(t, err)

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.field, verrs[0].Field())
		})
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (stand-in for testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
