package commands_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/audiper-dev/audiper/internal/sped"
)

func TestDemo_Markdown(t *testing.T) {
	_, cfg := projectConfig(t)

	out, _, err := runAudiper(t, "--config", cfg, "demo", "--format", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "MEGA TELEINFORMÁTICA LTDA")
	assert.Contains(t, out, "| 10 | 1.2.01.004 |")
	assert.Contains(t, out, "| 13 | 2.1.02.002 |")
	assert.Contains(t, out, "| 15 | 2.1.03.001 |")
}

func TestDemo_SPED(t *testing.T) {
	_, cfg := projectConfig(t)

	out, _, err := runAudiper(t, "--config", cfg, "demo", "--sped")
	require.NoError(t, err)

	res, err := sped.ParseReader(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, sped.StatusOK, res.Status)
	assert.Len(t, res.Chart, 48)
}

func TestSummary(t *testing.T) {
	_, cfg := projectConfig(t)

	out, _, err := runAudiper(t, "--config", cfg, "summary", testdataLedger)
	require.NoError(t, err)
	assert.Contains(t, out, "COMERCIAL PIAUÍ LTDA")
	assert.Contains(t, out, "Contas: 10 (9 analíticas)")
	assert.Contains(t, out, "ATIVO")
	assert.Contains(t, out, "R$ 42.500,00")
}

func TestSummary_JSON(t *testing.T) {
	_, cfg := projectConfig(t)

	out, _, err := runAudiper(t, "--config", cfg, "summary", testdataLedger, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"total_contas": 10`)
	assert.Contains(t, out, `"PASSIVO"`)
}

func TestExport_Demo(t *testing.T) {
	_, cfg := projectConfig(t)
	outDir := t.TempDir()
	xlsxPath := filepath.Join(outDir, "demo.xlsx")
	csvPath := filepath.Join(outDir, "achados.csv")

	out, _, err := runAudiper(t, "--config", cfg, "export", "--demo", "--out", xlsxPath, "--findings-csv", csvPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+xlsxPath)

	f, err := excelize.OpenFile(xlsxPath)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Resumo", "Achados", "Balancete"}, f.GetSheetList())

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "1.2.01.004")
}

func TestExport_File(t *testing.T) {
	_, cfg := projectConfig(t)
	csvPath := filepath.Join(t.TempDir(), "balancete.csv")

	_, _, err := runAudiper(t, "--config", cfg, "export", testdataLedger, "--balances-csv", csvPath)
	require.NoError(t, err)

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Equal(t, 11, strings.Count(string(data), "\r\n"), "header and ten balances")
}

func TestExport_NothingToDo(t *testing.T) {
	_, cfg := projectConfig(t)
	_, _, err := runAudiper(t, "--config", cfg, "export", "--demo")
	require.Error(t, err)
}

func TestCheck(t *testing.T) {
	_, cfg := projectConfig(t)

	out, _, err := runAudiper(t, "--config", cfg, "check", testdataLedger)
	require.NoError(t, err)
	assert.Contains(t, out, "Registros: 10 I050, 10 I155, 3 descartados")
	assert.Contains(t, out, "unmatched-balance [9.99]")

	_, _, err = runAudiper(t, "--config", cfg, "check", testdataLedger, "--strict")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, _, err := runAudiper(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "dev")
}
