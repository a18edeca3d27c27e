package reporting

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/monthly-content-report/infrastructure/integrator/thrivecart"
	"github.com/vfg2006/monthly-content-report/internal/config"
	"github.com/vfg2006/monthly-content-report/internal/domain"
	"github.com/vfg2006/monthly-content-report/internal/metrics"
	"github.com/vfg2006/monthly-content-report/pkg/log"
)

type SalesService struct {
	cfg        *config.Config
	thriveCart thrivecart.ThriveCartIntegrator
	metrics    metrics.Sink
}

func NewSalesService(cfg *config.Config, thriveCart thrivecart.ThriveCartIntegrator, sink metrics.Sink) SalesReporter {
	if sink == nil {
		sink = metrics.NewNoopSink()
	}

	return &SalesService{
		cfg:        cfg,
		thriveCart: thriveCart,
		metrics:    sink,
	}
}

func (s *SalesService) GetSalesReport(ctx context.Context, period domain.Period) (report *domain.SalesReport, err error) {
	defer func() {
		s.metrics.RunCompleted(ReportSales, err)
	}()

	if err := s.cfg.ThriveCart.Validate(); err != nil {
		return nil, err
	}

	if err := period.Validate(); err != nil {
		return nil, invalidPeriod(err)
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"start": period.StartDate(),
		"end":   period.EndDate(),
	})
	logger.Debug("Buscando vendas do período")

	sales, err := s.thriveCart.GetFirstCharges(ctx, period)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar vendas no ThriveCart")
	}

	report = domain.NewSalesReport(period, sales)
	s.metrics.RecordsEmitted(ReportSales, report.Count)

	logger.WithFields(log.Fields{
		"count": report.Count,
		"total": report.Total,
	}).Info("Relatório de vendas gerado")

	return report, nil
}
