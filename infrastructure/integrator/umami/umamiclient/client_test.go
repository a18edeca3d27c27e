package umamiclient

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	umamidomain "github.com/vfg2006/monthly-content-report/infrastructure/integrator/umami/domain"
	"github.com/vfg2006/monthly-content-report/internal/config"
	"github.com/vfg2006/monthly-content-report/internal/testutil"
)

func newTestClient(server *testutil.UmamiServer, password string) Client {
	return NewClient(&config.Config{
		Umami: config.Umami{
			URL:       server.URL,
			User:      server.Username,
			Password:  password,
			WebsiteID: server.WebsiteID,
		},
	}, nil)
}

func TestUmamiClient_Login(t *testing.T) {
	server := testutil.NewUmamiServer("admin", "secret", "site-1")
	defer server.Close()

	t.Run("Credenciais válidas", func(t *testing.T) {
		token, err := newTestClient(server, "secret").Login(context.Background())
		require.NoError(t, err)
		assert.Equal(t, server.Token, token)
	})

	t.Run("Credenciais inválidas", func(t *testing.T) {
		token, err := newTestClient(server, "wrong").Login(context.Background())
		require.Error(t, err)
		assert.Empty(t, token)
		assert.Contains(t, err.Error(), "Auth failed: 401")
	})
}

func TestUmamiClient_GetPageviews(t *testing.T) {
	server := testutil.NewUmamiServer("admin", "secret", "site-1")
	defer server.Close()
	server.SetPageviews(http.StatusOK, `{
		"pageviews": [{"x": "2024-02-01 00:00:00", "y": 12}],
		"sessions": [{"x": "2024-02-01 00:00:00", "y": 5}]
	}`)

	client := newTestClient(server, "secret")
	params := PageviewsParams{
		StartAt:  1706742000000,
		EndAt:    1709247599000,
		Timezone: "Europe/Madrid",
		Path:     "/cursos/expert/ai",
	}

	resp, err := client.GetPageviews(context.Background(), server.Token, params)
	require.NoError(t, err)
	require.Len(t, resp.Pageviews, 1)
	assert.Equal(t, "2024-02-01", resp.Pageviews[0].X.Date)
	assert.Equal(t, umamidomain.Count(12), resp.Pageviews[0].Y)
	assert.Equal(t, umamidomain.Count(5), resp.Sessions[0].Y)

	requests := server.Recorder.Requests()
	require.Len(t, requests, 1)
	query := requests[0].Query
	assert.Equal(t, "/api/websites/site-1/pageviews", requests[0].Path)
	assert.Equal(t, "1706742000000", query.Get("startAt"))
	assert.Equal(t, "1709247599000", query.Get("endAt"))
	assert.Equal(t, "day", query.Get("unit"))
	assert.Equal(t, "Europe/Madrid", query.Get("timezone"))
	assert.Equal(t, "eq./cursos/expert/ai", query.Get("path"))

	t.Run("Token inválido", func(t *testing.T) {
		_, err := client.GetPageviews(context.Background(), "expired", params)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Pageviews failed: 401")
	})

	t.Run("Erro do provedor", func(t *testing.T) {
		server.SetPageviews(http.StatusBadGateway, "bad gateway")

		_, err := client.GetPageviews(context.Background(), server.Token, params)
		require.Error(t, err)
		assert.Equal(t, "Pageviews failed: 502 bad gateway", err.Error())
	})
}
