package metrics

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/audiper-dev/audiper/internal/model"
	"github.com/audiper-dev/audiper/internal/sped"
)

func TestObserveParse(t *testing.T) {
	c := New()

	c.ObserveParse(sped.Result{
		Status:  sped.StatusOK,
		Counts:  map[string]int{sped.TagChart: 10, sped.TagBalance: 8},
		Dropped: 2,
	})
	c.ObserveParse(sped.Result{Status: sped.StatusNoChart})

	assert.InDelta(t, 1, testutil.ToFloat64(c.LedgersParsed.WithLabelValues("ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.LedgersParsed.WithLabelValues("no_chart")), 0)
	assert.InDelta(t, 10, testutil.ToFloat64(c.RecordsAccepted.WithLabelValues(sped.TagChart)), 0)
	assert.InDelta(t, 8, testutil.ToFloat64(c.RecordsAccepted.WithLabelValues(sped.TagBalance)), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(c.RecordsDropped), 0)
}

func TestObserveAudit(t *testing.T) {
	c := New()
	c.ObserveAudit(model.AuditStats{Total: 4, Critical: 3, Info: 1}, 20*time.Millisecond)

	assert.InDelta(t, 3, testutil.ToFloat64(c.Findings.WithLabelValues("CRÍTICO")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(c.Findings.WithLabelValues("ATENÇÃO")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.Findings.WithLabelValues("INFO")), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(c.AuditDuration))
}

func TestCollectorsAreIsolated(t *testing.T) {
	a, b := New(), New()
	a.RecordsDropped.Inc()
	assert.InDelta(t, 0, testutil.ToFloat64(b.RecordsDropped), 0)
}

func TestWriteTextfile(t *testing.T) {
	c := New()
	c.ObserveParse(sped.Result{Status: sped.StatusOK, Dropped: 1})

	path := filepath.Join(t.TempDir(), "audiper.prom")
	require.NoError(t, c.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `audiper_ledgers_parsed_total{status="ok"} 1`)
	assert.Contains(t, string(data), "audiper_records_dropped_total 1")
}

func TestHandler(t *testing.T) {
	c := New()
	c.ObserveRequest("/healthz", http.StatusOK, time.Millisecond)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `audiper_http_requests_total{code="200",route="/healthz"} 1`)
}
