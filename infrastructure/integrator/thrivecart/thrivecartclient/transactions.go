package thrivecartclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	thrivecartdomain "github.com/vfg2006/monthly-content-report/infrastructure/integrator/thrivecart/domain"
	"github.com/vfg2006/monthly-content-report/internal/metrics"
	"github.com/vfg2006/monthly-content-report/pkg/utils"
)

const transactionsEndpoint = "transactions"

type TransactionsParams struct {
	ProductID string
	Page      int
}

func (c *ThriveCartClient) GetTransactions(ctx context.Context, params TransactionsParams) (*thrivecartdomain.TransactionsResponse, error) {
	endpoint, err := url.Parse(c.config.ThriveCart.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/api/external/transactions")

	query := endpoint.Query()
	query.Set("product", params.ProductID)
	query.Set("page", strconv.Itoa(params.Page))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.ThriveCart.APIKey)
	req.Header.Set("Accept", "application/json")

	startedAt := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.RequestCompleted(metrics.ProviderThriveCart, transactionsEndpoint, 0, err, time.Since(startedAt))
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	c.metrics.RequestCompleted(metrics.ProviderThriveCart, transactionsEndpoint, resp.StatusCode, nil, time.Since(startedAt))

	if err := utils.CheckResponse(resp); err != nil {
		return nil, fmt.Errorf("ThriveCart API error: %w", err)
	}

	var response thrivecartdomain.TransactionsResponse
	if err := utils.DecodeJSON(resp, &response); err != nil {
		return nil, err
	}

	c.metrics.PageFetched(metrics.ProviderThriveCart)

	return &response, nil
}
