package thrivecartclient

import (
	"context"
	"net/http"

	thrivecartdomain "github.com/vfg2006/monthly-content-report/infrastructure/integrator/thrivecart/domain"
	"github.com/vfg2006/monthly-content-report/internal/config"
	"github.com/vfg2006/monthly-content-report/internal/metrics"
)

//go:generate mockgen -source=client.go -destination=../mocks/mock_client.go -package=mocks

type Client interface {
	GetTransactions(ctx context.Context, params TransactionsParams) (*thrivecartdomain.TransactionsResponse, error)
}

type ThriveCartClient struct {
	httpClient *http.Client
	config     *config.Config
	metrics    metrics.Sink
}

// NewClient cria o cliente da API externa do ThriveCart
func NewClient(cfg *config.Config, sink metrics.Sink) Client {
	if sink == nil {
		sink = metrics.NewNoopSink()
	}

	return &ThriveCartClient{
		httpClient: &http.Client{
			Timeout: cfg.App.HTTPTimeout,
		},
		config:  cfg,
		metrics: sink,
	}
}
