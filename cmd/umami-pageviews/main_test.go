package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/monthly-content-report/internal/testutil"
	"github.com/vfg2006/monthly-content-report/internal/usecases/reporting"
	"github.com/vfg2006/monthly-content-report/pkg/log"
)

const pageviewsBody = `{
	"pageviews": [
		{"x": "2024-02-02 00:00:00", "y": 7},
		{"x": "2024-02-01 00:00:00", "y": 120}
	],
	"sessions": [
		{"x": "2024-02-01 00:00:00", "y": 45},
		{"x": "2024-02-03 00:00:00", "y": 2}
	]
}`

var march2024 = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func writeConfig(t *testing.T, section string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	content := fmt.Sprintf(`{"monthly_content_report": %s}`, section)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func clearEnv(t *testing.T) {
	for _, key := range []string{"UMAMI_URL", "UMAMI_USER", "UMAMI_PASS", "UMAMI_WEBSITE_ID", "UMAMI_PATH", "UMAMI_TIMEZONE", "METRICS_TEXTFILE", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func umamiSection(server *testutil.UmamiServer) string {
	return fmt.Sprintf(`{
		"umami_url": %q,
		"umami_user": %q,
		"umami_pass": %q,
		"umami_website_id": %q
	}`, server.URL+"/", server.Username, server.Password, server.WebsiteID)
}

func TestRun(t *testing.T) {
	defer log.SetupTestLogger()
	clearEnv(t)

	server := testutil.NewUmamiServer("admin", "secret", "site-1")
	defer server.Close()
	server.SetPageviews(http.StatusOK, pageviewsBody)

	cfgPath := writeConfig(t, umamiSection(server))

	t.Run("Texto", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, run(context.Background(), cfgPath, nil, &out, march2024))

		want := strings.Join([]string{
			"Pageviews for /cursos/expert/ai from 2024-02-01 to 2024-02-29",
			"Total: 127 pageviews",
			"",
			"Date       | Pageviews | Sessions",
			"-----------|-----------|----------",
			"2024-02-01 |       120 | 45",
			"2024-02-02 |         7 | 0",
			"2024-02-03 |         0 | 2",
			"",
		}, "\n")
		assert.Equal(t, want, out.String())

		pageviews := server.Recorder.Requests()
		last := pageviews[len(pageviews)-1]
		assert.Equal(t, "eq./cursos/expert/ai", last.Query.Get("path"))
		assert.Equal(t, "Europe/Madrid", last.Query.Get("timezone"))
		assert.Equal(t, "1706742000000", last.Query.Get("startAt"))
	})

	t.Run("Valor inválido de outro relatório é ignorado", func(t *testing.T) {
		section := strings.Replace(umamiSection(server), "{", `{"thrivecart_api_key": {"a": 1}, "http_timeout": "soon",`, 1)
		path := writeConfig(t, section)

		var out bytes.Buffer
		require.NoError(t, run(context.Background(), path, nil, &out, march2024))
		assert.Contains(t, out.String(), "Total: 127 pageviews\n")
	})

	t.Run("JSON", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, run(context.Background(), cfgPath, []string{"--json", "--end", "2024-02-02"}, &out, march2024))

		assert.JSONEq(t, `{
			"start": "2024-02-01",
			"end": "2024-02-02",
			"path": "/cursos/expert/ai",
			"total": 127,
			"days": [
				{"date": "2024-02-01", "pageviews": 120, "sessions": 45},
				{"date": "2024-02-02", "pageviews": 7, "sessions": 0},
				{"date": "2024-02-03", "pageviews": 0, "sessions": 2}
			]
		}`, out.String())
	})
}

func TestRun_MalformedPoints(t *testing.T) {
	defer log.SetupTestLogger()
	clearEnv(t)

	server := testutil.NewUmamiServer("admin", "secret", "site-1")
	defer server.Close()
	server.SetPageviews(http.StatusOK, `{
		"pageviews": [
			{"x": "2024-02-01 00:00:00", "y": "10"},
			{"x": null, "y": 2},
			{"x": "ontem", "y": 3},
			{"x": "2024-02-02 00:00:00", "y": 4.0}
		],
		"sessions": [
			{"x": "2024-02-01 00:00:00", "y": 1.9}
		]
	}`)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), writeConfig(t, umamiSection(server)), []string{"--json"}, &out, march2024))

	assert.JSONEq(t, `{
		"start": "2024-02-01",
		"end": "2024-02-29",
		"path": "/cursos/expert/ai",
		"total": 14,
		"days": [
			{"date": "2024-02-01", "pageviews": 10, "sessions": 1},
			{"date": "2024-02-02", "pageviews": 4, "sessions": 0}
		]
	}`, out.String())
}

func TestRun_Errors(t *testing.T) {
	defer log.SetupTestLogger()
	clearEnv(t)

	server := testutil.NewUmamiServer("admin", "secret", "site-1")
	defer server.Close()

	t.Run("Configuração ausente", func(t *testing.T) {
		cfgPath := filepath.Join(t.TempDir(), "missing.json")

		err := run(context.Background(), cfgPath, nil, &bytes.Buffer{}, march2024)
		require.Error(t, err)
		assert.ErrorIs(t, err, reporting.ErrMissingConfig)
		assert.Empty(t, server.Recorder.Requests())
	})

	t.Run("Senha incorreta", func(t *testing.T) {
		cfgPath := writeConfig(t, fmt.Sprintf(`{
			"umami_url": %q, "umami_user": "admin", "umami_pass": "wrong", "umami_website_id": "site-1"
		}`, server.URL))

		var out bytes.Buffer
		err := run(context.Background(), cfgPath, nil, &out, march2024)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Auth failed: 401")
		assert.Empty(t, out.String())
		assert.Zero(t, server.Recorder.Count("/api/websites/site-1/pageviews"))
	})

	t.Run("Erro nos pageviews", func(t *testing.T) {
		server.SetPageviews(http.StatusInternalServerError, "database down")
		cfgPath := writeConfig(t, umamiSection(server))

		var out bytes.Buffer
		err := run(context.Background(), cfgPath, nil, &out, march2024)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Pageviews failed: 500 database down")
		assert.Empty(t, out.String())
	})
}
