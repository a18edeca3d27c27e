package umamiclient

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	umamidomain "github.com/vfg2006/monthly-content-report/infrastructure/integrator/umami/domain"
	"github.com/vfg2006/monthly-content-report/internal/metrics"
	"github.com/vfg2006/monthly-content-report/pkg/log"
	"github.com/vfg2006/monthly-content-report/pkg/utils"
)

const loginEndpoint = "login"

// Login troca usuário e senha por um token de sessão
func (c *UmamiClient) Login(ctx context.Context) (string, error) {
	body, err := json.Marshal(umamidomain.LoginRequest{
		Username: c.config.Umami.User,
		Password: c.config.Umami.Password,
	})
	if err != nil {
		return "", fmt.Errorf("erro ao serializar credenciais: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.Umami.URL+"/api/auth/login", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	startedAt := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.RequestCompleted(metrics.ProviderUmami, loginEndpoint, 0, err, time.Since(startedAt))
		return "", fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	c.metrics.RequestCompleted(metrics.ProviderUmami, loginEndpoint, resp.StatusCode, nil, time.Since(startedAt))

	if err := utils.CheckResponse(resp); err != nil {
		return "", fmt.Errorf("Auth failed: %w", err)
	}

	var loginResp umamidomain.LoginResponse
	if err := utils.DecodeJSON(resp, &loginResp); err != nil {
		return "", err
	}

	if loginResp.Token == "" {
		return "", fmt.Errorf("Auth failed: token vazio na resposta")
	}

	logTokenClaims(ctx, loginResp.Token)

	return loginResp.Token, nil
}

// logTokenClaims registra o dono e a expiração do token quando ele é um JWT.
// A assinatura não é verificada: o token só é repassado ao próprio Umami.
func logTokenClaims(ctx context.Context, token string) {
	logger := log.ForContext(ctx)

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		logger.Debug("umami: token de sessão opaco")
		return
	}

	fields := log.Fields{"subject": claims.Subject}
	if claims.ExpiresAt != nil {
		fields["expires_at"] = claims.ExpiresAt.Time.Format(time.RFC3339)
	}

	logger.WithFields(fields).Debug("umami: token de sessão obtido")
}
