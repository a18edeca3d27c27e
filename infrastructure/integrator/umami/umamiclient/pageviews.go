package umamiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	umamidomain "github.com/vfg2006/monthly-content-report/infrastructure/integrator/umami/domain"
	"github.com/vfg2006/monthly-content-report/internal/metrics"
	"github.com/vfg2006/monthly-content-report/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const pageviewsEndpoint = "pageviews"

// PageviewsParams delimita a consulta de pageviews em milissegundos desde a época
type PageviewsParams struct {
	StartAt  int64
	EndAt    int64
	Timezone string
	Path     string
}

func (c *UmamiClient) GetPageviews(ctx context.Context, token string, params PageviewsParams) (*umamidomain.PageviewsResponse, error) {
	query := url.Values{}
	query.Set("startAt", strconv.FormatInt(params.StartAt, 10))
	query.Set("endAt", strconv.FormatInt(params.EndAt, 10))
	query.Set("unit", "day")
	query.Set("timezone", params.Timezone)
	query.Set("path", "eq."+params.Path)

	endpoint := fmt.Sprintf("%s/api/websites/%s/pageviews?%s",
		c.config.Umami.URL, url.PathEscape(c.config.Umami.WebsiteID), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	startedAt := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.RequestCompleted(metrics.ProviderUmami, pageviewsEndpoint, 0, err, time.Since(startedAt))
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	c.metrics.RequestCompleted(metrics.ProviderUmami, pageviewsEndpoint, resp.StatusCode, nil, time.Since(startedAt))

	if err := utils.CheckResponse(resp); err != nil {
		return nil, fmt.Errorf("Pageviews failed: %w", err)
	}

	var response umamidomain.PageviewsResponse
	if err := utils.DecodeJSON(resp, &response); err != nil {
		return nil, err
	}

	c.metrics.PageFetched(metrics.ProviderUmami)

	return &response, nil
}
