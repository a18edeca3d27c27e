package reporting

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/monthly-content-report/infrastructure/integrator/umami"
	"github.com/vfg2006/monthly-content-report/internal/config"
	"github.com/vfg2006/monthly-content-report/internal/domain"
	"github.com/vfg2006/monthly-content-report/internal/metrics"
	"github.com/vfg2006/monthly-content-report/pkg/log"
)

type PageviewService struct {
	cfg     *config.Config
	umami   umami.UmamiIntegrator
	metrics metrics.Sink
}

func NewPageviewService(cfg *config.Config, umami umami.UmamiIntegrator, sink metrics.Sink) PageviewReporter {
	if sink == nil {
		sink = metrics.NewNoopSink()
	}

	return &PageviewService{
		cfg:     cfg,
		umami:   umami,
		metrics: sink,
	}
}

func (s *PageviewService) GetPageviewReport(ctx context.Context, period domain.Period) (report *domain.PageviewReport, err error) {
	defer func() {
		s.metrics.RunCompleted(ReportPageviews, err)
	}()

	if err := s.cfg.Umami.Validate(); err != nil {
		return nil, err
	}

	if err := period.Validate(); err != nil {
		return nil, invalidPeriod(err)
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"start": period.StartDate(),
		"end":   period.EndDate(),
		"path":  s.cfg.Umami.Path,
	})
	logger.Debug("Buscando pageviews do período")

	days, err := s.umami.GetDailyMetrics(ctx, period)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar pageviews no Umami")
	}

	report = domain.NewPageviewReport(period, s.cfg.Umami.Path, days)
	s.metrics.RecordsEmitted(ReportPageviews, len(report.Days))

	logger.WithFields(log.Fields{
		"days":  len(report.Days),
		"total": report.Total,
	}).Info("Relatório de pageviews gerado")

	return report, nil
}
