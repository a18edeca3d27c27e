package reporting

import (
	"context"

	"github.com/vfg2006/monthly-content-report/internal/domain"
)

// Nomes dos relatórios usados nas métricas
const (
	ReportSales     = "sales"
	ReportPageviews = "pageviews"
)

// SalesReporter monta o relatório de primeiras compras do período
type SalesReporter interface {
	GetSalesReport(ctx context.Context, period domain.Period) (*domain.SalesReport, error)
}

// PageviewReporter monta o relatório diário de pageviews do caminho configurado
type PageviewReporter interface {
	GetPageviewReport(ctx context.Context, period domain.Period) (*domain.PageviewReport, error)
}
