package metrics

import (
	"context"
	"errors"
	"net"
	"time"
)

// Sink registra as métricas de uma execução do relatório.
// As implementações nunca devem bloquear nem propagar erros, exceto em Flush.
type Sink interface {
	RequestCompleted(provider, endpoint string, statusCode int, err error, duration time.Duration)
	PageFetched(provider string)
	RecordsEmitted(report string, count int)
	RunCompleted(report string, err error)

	// Flush grava as métricas coletadas no destino configurado
	Flush() error
}

// Provedores
const (
	ProviderThriveCart = "thrivecart"
	ProviderUmami      = "umami"
)

// Classes de status para RequestCompleted
const (
	StatusClass2xx             = "2xx"
	StatusClass4xx             = "4xx"
	StatusClass5xx             = "5xx"
	StatusClassTimeout         = "timeout"
	StatusClassConnectionError = "connection_error"
	StatusClassOtherError      = "other_error"
)

// ClassifyStatus converte um status code e um erro de transporte em uma classe de status
func ClassifyStatus(statusCode int, err error) string {
	if err != nil {
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			return StatusClassTimeout
		}

		var opErr *net.OpError
		var dnsErr *net.DNSError
		if errors.As(err, &opErr) || errors.As(err, &dnsErr) {
			return StatusClassConnectionError
		}

		return StatusClassOtherError
	}

	switch {
	case statusCode >= 200 && statusCode < 300:
		return StatusClass2xx
	case statusCode >= 400 && statusCode < 500:
		return StatusClass4xx
	case statusCode >= 500:
		return StatusClass5xx
	default:
		return StatusClassOtherError
	}
}
