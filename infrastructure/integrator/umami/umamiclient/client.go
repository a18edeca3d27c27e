package umamiclient

import (
	"context"
	"net/http"

	umamidomain "github.com/vfg2006/monthly-content-report/infrastructure/integrator/umami/domain"
	"github.com/vfg2006/monthly-content-report/internal/config"
	"github.com/vfg2006/monthly-content-report/internal/metrics"
)

//go:generate mockgen -source=client.go -destination=../mocks/mock_client.go -package=mocks

type Client interface {
	Login(ctx context.Context) (string, error)
	GetPageviews(ctx context.Context, token string, params PageviewsParams) (*umamidomain.PageviewsResponse, error)
}

type UmamiClient struct {
	httpClient *http.Client
	config     *config.Config
	metrics    metrics.Sink
}

// NewClient cria o cliente da API do Umami
func NewClient(cfg *config.Config, sink metrics.Sink) Client {
	if sink == nil {
		sink = metrics.NewNoopSink()
	}

	return &UmamiClient{
		httpClient: &http.Client{
			Timeout: cfg.App.HTTPTimeout,
		},
		config:  cfg,
		metrics: sink,
	}
}
