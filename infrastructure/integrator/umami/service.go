package umami

import (
	"context"
	"sort"
	"time"

	umamidomain "github.com/vfg2006/monthly-content-report/infrastructure/integrator/umami/domain"
	"github.com/vfg2006/monthly-content-report/infrastructure/integrator/umami/umamiclient"
	"github.com/vfg2006/monthly-content-report/internal/config"
	"github.com/vfg2006/monthly-content-report/internal/domain"
	"github.com/vfg2006/monthly-content-report/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// DefaultTimezone é o fuso usado para agrupar os dias quando nada é configurado
const DefaultTimezone = "Europe/Madrid"

// queryLocation converte o período em milissegundos com deslocamento fixo de UTC+1
var queryLocation = time.FixedZone("UTC+1", 60*60)

type UmamiIntegrator interface {
	// GetDailyMetrics retorna pageviews e sessões por dia do caminho configurado
	GetDailyMetrics(ctx context.Context, period domain.Period) ([]*domain.DailyMetric, error)
}

type UmamiService struct {
	cfg    *config.Config
	Client umamiclient.Client
}

func New(cfg *config.Config, client umamiclient.Client) UmamiIntegrator {
	return &UmamiService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *UmamiService) GetDailyMetrics(ctx context.Context, period domain.Period) ([]*domain.DailyMetric, error) {
	start, end := period.Bounds(queryLocation)

	timezone := s.cfg.Umami.Timezone
	if timezone == "" {
		timezone = DefaultTimezone
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"website_id": s.cfg.Umami.WebsiteID,
		"path":       s.cfg.Umami.Path,
	})

	token, err := s.Client.Login(ctx)
	if err != nil {
		logger.WithError(err).Error("umami: falha na autenticação")
		return nil, err
	}

	resp, err := s.Client.GetPageviews(ctx, token, umamiclient.PageviewsParams{
		StartAt:  start.UnixMilli(),
		EndAt:    end.UnixMilli(),
		Timezone: timezone,
		Path:     s.cfg.Umami.Path,
	})
	if err != nil {
		logger.WithError(err).Error("umami: falha ao buscar pageviews")
		return nil, err
	}

	days := MergeByDate(resp)

	logger.WithField("days", len(days)).Info("umami: pageviews obtidos")

	return days, nil
}

// MergeByDate junta as séries de pageviews e sessões em um registro por dia,
// em ordem crescente de data. Um dia ausente em uma das séries fica com zero nela.
// Pontos cujo dia não foi reconhecido são descartados.
func MergeByDate(resp *umamidomain.PageviewsResponse) []*domain.DailyMetric {
	byDate := make(map[string]*domain.DailyMetric)

	entry := func(series string, p umamidomain.Point) *domain.DailyMetric {
		if !p.X.Valid() {
			log.L.WithFields(log.Fields{
				"series": series,
				"x":      p.X.Raw,
				"y":      int64(p.Y),
			}).Debug("umami: ponto sem data reconhecível descartado")
			return nil
		}

		day, ok := byDate[p.X.Date]
		if !ok {
			day = &domain.DailyMetric{Date: p.X.Date}
			byDate[p.X.Date] = day
		}
		return day
	}

	if resp != nil {
		for _, p := range resp.Pageviews {
			if day := entry("pageviews", p); day != nil {
				day.Pageviews += int64(p.Y)
			}
		}
		for _, p := range resp.Sessions {
			if day := entry("sessions", p); day != nil {
				day.Sessions += int64(p.Y)
			}
		}
	}

	days := make([]*domain.DailyMetric, 0, len(byDate))
	for _, day := range byDate {
		days = append(days, day)
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})

	return days
}
