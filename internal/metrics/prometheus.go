package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// PrometheusSink coleta as métricas em um registry próprio e as grava no formato
// texto do Prometheus (textfile collector do node-exporter).
type PrometheusSink struct {
	registry *prometheus.Registry
	path     string

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	pagesTotal      *prometheus.CounterVec
	recordsEmitted  *prometheus.GaugeVec
	lastRunSuccess  *prometheus.GaugeVec
	lastRunTime     *prometheus.GaugeVec
}

// NewPrometheusSink cria o sink que grava as métricas em path no Flush
func NewPrometheusSink(path string) *PrometheusSink {
	s := &PrometheusSink{
		registry: prometheus.NewRegistry(),
		path:     path,
	}

	s.requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "content_report_provider_requests_total",
		Help: "Total de requisições aos provedores por classe de status.",
	}, []string{"provider", "endpoint", "status_class"})

	s.requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "content_report_provider_request_duration_seconds",
		Help:    "Latência das requisições aos provedores em segundos.",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{"provider", "endpoint"})

	s.pagesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "content_report_pages_fetched_total",
		Help: "Total de páginas obtidas de endpoints paginados.",
	}, []string{"provider"})

	s.recordsEmitted = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "content_report_records",
		Help: "Quantidade de registros emitidos no último relatório.",
	}, []string{"report"})

	s.lastRunSuccess = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "content_report_last_run_success",
		Help: "1 se a última execução terminou sem erro, 0 caso contrário.",
	}, []string{"report"})

	s.lastRunTime = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "content_report_last_run_timestamp_seconds",
		Help: "Horário de término da última execução.",
	}, []string{"report"})

	s.register(s.requestsTotal, "content_report_provider_requests_total")
	s.register(s.requestDuration, "content_report_provider_request_duration_seconds")
	s.register(s.pagesTotal, "content_report_pages_fetched_total")
	s.register(s.recordsEmitted, "content_report_records")
	s.register(s.lastRunSuccess, "content_report_last_run_success")
	s.register(s.lastRunTime, "content_report_last_run_timestamp_seconds")

	return s
}

func (s *PrometheusSink) register(c prometheus.Collector, name string) {
	if err := s.registry.Register(c); err != nil {
		logrus.WithError(err).Warnf("metrics: falha ao registrar %s", name)
	}
}

func (s *PrometheusSink) RequestCompleted(provider, endpoint string, statusCode int, err error, duration time.Duration) {
	s.requestsTotal.WithLabelValues(provider, endpoint, ClassifyStatus(statusCode, err)).Inc()
	s.requestDuration.WithLabelValues(provider, endpoint).Observe(duration.Seconds())
}

func (s *PrometheusSink) PageFetched(provider string) {
	s.pagesTotal.WithLabelValues(provider).Inc()
}

func (s *PrometheusSink) RecordsEmitted(report string, count int) {
	s.recordsEmitted.WithLabelValues(report).Set(float64(count))
}

func (s *PrometheusSink) RunCompleted(report string, err error) {
	success := 1.0
	if err != nil {
		success = 0
	}

	s.lastRunSuccess.WithLabelValues(report).Set(success)
	s.lastRunTime.WithLabelValues(report).SetToCurrentTime()
}

func (s *PrometheusSink) Flush() error {
	return prometheus.WriteToTextfile(s.path, s.registry)
}

// New escolhe o sink conforme o caminho configurado
func New(path string) Sink {
	if path == "" {
		return NewNoopSink()
	}

	return NewPrometheusSink(path)
}
