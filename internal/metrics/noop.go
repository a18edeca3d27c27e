package metrics

import "time"

// NoopSink é usado quando nenhum arquivo de métricas foi configurado
type NoopSink struct{}

func NewNoopSink() *NoopSink {
	return &NoopSink{}
}

func (n *NoopSink) RequestCompleted(provider, endpoint string, statusCode int, err error, d time.Duration) {
}
func (n *NoopSink) PageFetched(provider string)             {}
func (n *NoopSink) RecordsEmitted(report string, count int) {}
func (n *NoopSink) RunCompleted(report string, err error)   {}
func (n *NoopSink) Flush() error                            { return nil }
