package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ReportMetrics считает сформированные отчеты по форматам.
type ReportMetrics struct {
	generated *prometheus.CounterVec
	failed    *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

func NewReportMetrics(reg prometheus.Registerer) *ReportMetrics {
	m := &ReportMetrics{
		generated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "inventory",
			Subsystem: "reports",
			Name:      "generated_total",
			Help:      "Количество успешно сформированных отчетов.",
		}, []string{"report", "format"}),
		failed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "inventory",
			Subsystem: "reports",
			Name:      "failed_total",
			Help:      "Количество отчетов, завершившихся ошибкой.",
		}, []string{"report", "format"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "inventory",
			Subsystem: "reports",
			Name:      "generation_seconds",
			Help:      "Время формирования отчета.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"report", "format"}),
	}
	reg.MustRegister(m.generated, m.failed, m.duration)
	return m
}

// Observe фиксирует результат одного формирования отчета.
func (m *ReportMetrics) Observe(report, format string, started time.Time, err error) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(report, format).Observe(time.Since(started).Seconds())
	if err != nil {
		m.failed.WithLabelValues(report, format).Inc()
		return
	}
	m.generated.WithLabelValues(report, format).Inc()
}
