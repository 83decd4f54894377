package commands_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/audiper-dev/audiper/internal/auditlog"
	"github.com/audiper-dev/audiper/internal/sped"
)

const testdataLedger = "../../testdata/sample_ecd.txt"

func projectConfig(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	_, _, err := runAudiper(t, "init", dir, "--with-demo")
	require.NoError(t, err)
	return dir, filepath.Join(dir, "audiper.yaml")
}

func TestAudit_JSON(t *testing.T) {
	_, cfg := projectConfig(t)

	out, stderr, err := runAudiper(t, "--config", cfg, "audit", testdataLedger, "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, stderr, "audit complete")

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	stats := doc["estatisticas"].(map[string]any)
	assert.Equal(t, float64(2), stats["criticos"])
	assert.Len(t, doc["achados"], 2)
}

func TestAudit_Markdown(t *testing.T) {
	_, cfg := projectConfig(t)

	out, _, err := runAudiper(t, "--config", cfg, "audit", testdataLedger, "--format", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "**Empresa:** COMERCIAL PIAUÍ LTDA")
	assert.Contains(t, out, "| 2 | 1.02 | Equipamentos de Informática |")
}

func TestAudit_WritesAuditLog(t *testing.T) {
	dir, cfg := projectConfig(t)

	_, _, err := runAudiper(t, "--config", cfg, "audit", testdataLedger, "--format", "json")
	require.NoError(t, err)

	entries, err := auditlog.Read(filepath.Join(dir, "logs", "audit-log.csv"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, testdataLedger, entries[0].Source)
	assert.Equal(t, 2, entries[0].Critical)
}

func TestAudit_Incomplete(t *testing.T) {
	_, cfg := projectConfig(t)
	path := filepath.Join(t.TempDir(), "vazio.txt")
	require.NoError(t, os.WriteFile(path, []byte("|0000|LECD|\n"), 0o644))

	out, _, err := runAudiper(t, "--config", cfg, "audit", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incomplete ledger")
	assert.Contains(t, out, sped.StatusNoChart.String())
}

func TestAudit_NoArgs(t *testing.T) {
	_, cfg := projectConfig(t)
	_, _, err := runAudiper(t, "--config", cfg, "audit")
	require.Error(t, err)
}

func TestAudit_MissingFile(t *testing.T) {
	_, cfg := projectConfig(t)
	_, _, err := runAudiper(t, "--config", cfg, "audit", "nope.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestAudit_Inbox(t *testing.T) {
	dir, cfg := projectConfig(t)

	out, _, err := runAudiper(t, "--config", cfg, "audit", "--inbox", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "demo.txt: 3 achado(s)")

	_, err = os.Stat(filepath.Join(dir, "reports", "demo.xlsx"))
	require.NoError(t, err, "xlsx report should exist")
	_, err = os.Stat(filepath.Join(dir, "inbox", "processed", "demo.txt"))
	require.NoError(t, err, "ledger should be moved to processed/")
	_, err = os.Stat(filepath.Join(dir, "inbox", "demo.txt"))
	assert.True(t, os.IsNotExist(err))

	out, _, err = runAudiper(t, "--config", cfg, "audit", "--inbox")
	require.NoError(t, err)
	assert.Contains(t, out, "No ledgers in")
}

func TestAudit_MetricsFile(t *testing.T) {
	_, cfg := projectConfig(t)
	promPath := filepath.Join(t.TempDir(), "audiper.prom")

	_, _, err := runAudiper(t, "--config", cfg, "--metrics-file", promPath, "audit", testdataLedger, "--format", "json")
	require.NoError(t, err)

	data, err := os.ReadFile(promPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `audiper_findings_total{severity="CRÍTICO"} 2`)
}

func TestAudit_LogFormatOverride(t *testing.T) {
	_, cfg := projectConfig(t)

	_, stderr, err := runAudiper(t, "--config", cfg, "--log-format", "json", "audit", testdataLedger, "--format", "json")
	require.NoError(t, err)

	line, _, _ := bytes.Cut([]byte(stderr), []byte("\n"))
	var rec map[string]any
	require.NoError(t, json.Unmarshal(line, &rec))
	assert.Equal(t, "parsed ledger", rec["msg"])
}
