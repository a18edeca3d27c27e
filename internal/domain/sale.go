package domain

import "encoding/json"

type PaymentType string

const (
	// SinglePayment é uma compra paga de uma só vez
	SinglePayment PaymentType = "unico"
	// InstallmentPayment é a primeira cobrança de um plano parcelado
	InstallmentPayment PaymentType = "plazos"
)

// Sale é uma primeira compra (charge) dentro do período do relatório
type Sale struct {
	Date          string          `json:"date"`
	Email         string          `json:"email"`
	Name          string          `json:"name"`
	PaymentType   PaymentType     `json:"payment_type"`
	PricingOption string          `json:"pricing_option"`
	Amount        float64         `json:"amount"`
	OrderID       json.RawMessage `json:"order_id"` // número ou texto, como o provedor enviou
	Timestamp     int64           `json:"-"`
}

// SalesReport é o resultado do relatório de vendas
type SalesReport struct {
	Period Period
	Count  int
	Total  float64
	Sales  []*Sale
}

// NewSalesReport calcula os totais a partir das vendas emitidas
func NewSalesReport(period Period, sales []*Sale) *SalesReport {
	var total float64
	for _, sale := range sales {
		total += sale.Amount
	}

	if sales == nil {
		sales = make([]*Sale, 0)
	}

	return &SalesReport{
		Period: period,
		Count:  len(sales),
		Total:  total,
		Sales:  sales,
	}
}
