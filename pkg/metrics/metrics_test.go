package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestReportMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewReportMetrics(reg)

	m.Observe("form8", "pdf", time.Now(), nil)
	m.Observe("form8", "pdf", time.Now(), nil)
	m.Observe("form8", "xlsx", time.Now(), errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.generated.WithLabelValues("form8", "pdf")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.generated.WithLabelValues("form8", "xlsx")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.failed.WithLabelValues("form8", "xlsx")))
}

func TestReportMetrics_NilSafe(t *testing.T) {
	var m *ReportMetrics
	assert.NotPanics(t, func() { m.Observe("form8", "pdf", time.Now(), nil) })
}
