package report

import (
	"encoding/json"
	"io"

	"github.com/vfg2006/monthly-content-report/internal/domain"
	"github.com/vfg2006/monthly-content-report/pkg/utils"
)

// Format seleciona a saída do relatório
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

func FormatFor(asJSON bool) Format {
	if asJSON {
		return FormatJSON
	}
	return FormatText
}

type salesDocument struct {
	Start    string      `json:"start"`
	End      string      `json:"end"`
	Count    int         `json:"count"`
	TotalEUR float64     `json:"total_eur"`
	Sales    []saleEntry `json:"sales"`
}

type saleEntry struct {
	Date          string          `json:"date"`
	Email         string          `json:"email"`
	Name          string          `json:"name"`
	PaymentType   string          `json:"payment_type"`
	PricingOption string          `json:"pricing_option"`
	Amount        float64         `json:"amount"`
	OrderID       json.RawMessage `json:"order_id,omitempty"`
}

type pageviewDocument struct {
	Start string                `json:"start"`
	End   string                `json:"end"`
	Path  string                `json:"path"`
	Total int64                 `json:"total"`
	Days  []*domain.DailyMetric `json:"days"`
}

// WriteSales escreve o relatório de vendas no formato escolhido
func WriteSales(w io.Writer, r *domain.SalesReport, format Format) error {
	if format == FormatJSON {
		return utils.WritePrettyJSON(w, newSalesDocument(r))
	}

	return writeSalesText(w, r)
}

// WritePageviews escreve o relatório de pageviews no formato escolhido
func WritePageviews(w io.Writer, r *domain.PageviewReport, format Format) error {
	if format == FormatJSON {
		return utils.WritePrettyJSON(w, newPageviewDocument(r))
	}

	return writePageviewsText(w, r)
}

func newSalesDocument(r *domain.SalesReport) salesDocument {
	doc := salesDocument{
		Start:    r.Period.StartDate(),
		End:      r.Period.EndDate(),
		Count:    r.Count,
		TotalEUR: r.Total,
		Sales:    make([]saleEntry, 0, len(r.Sales)),
	}

	for _, sale := range r.Sales {
		doc.Sales = append(doc.Sales, saleEntry{
			Date:          sale.Date,
			Email:         sale.Email,
			Name:          sale.Name,
			PaymentType:   string(sale.PaymentType),
			PricingOption: sale.PricingOption,
			Amount:        sale.Amount,
			OrderID:       sale.OrderID,
		})
	}

	return doc
}

func newPageviewDocument(r *domain.PageviewReport) pageviewDocument {
	days := r.Days
	if days == nil {
		days = make([]*domain.DailyMetric, 0)
	}

	return pageviewDocument{
		Start: r.Period.StartDate(),
		End:   r.Period.EndDate(),
		Path:  r.Path,
		Total: r.Total,
		Days:  days,
	}
}
