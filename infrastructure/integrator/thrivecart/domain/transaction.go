package thrivecartdomain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Tipos de transação retornados pela API
const (
	// ChargeTransaction é a primeira cobrança de uma compra (pagamento único ou primeira parcela)
	ChargeTransaction = "charge"
	// RebillTransaction é uma parcela posterior de um plano existente
	RebillTransaction = "rebill"
)

// DefaultResultsPerPage é usado quando a API não informa meta.results
const DefaultResultsPerPage = 25

type TransactionsResponse struct {
	Meta         Meta          `json:"meta"`
	Transactions []Transaction `json:"transactions"`
}

type Meta struct {
	Total   FlexInt `json:"total"`
	Results FlexInt `json:"results"`
}

type Transaction struct {
	TransactionType       string          `json:"transaction_type"`
	Timestamp             FlexInt         `json:"timestamp"`
	Date                  string          `json:"date"`
	Customer              Customer        `json:"customer"`
	RelatedToRecur        Truthy          `json:"related_to_recur"`
	ItemPricingOptionName string          `json:"item_pricing_option_name"`
	AmountStr             string          `json:"amount_str"`
	OrderID               json.RawMessage `json:"order_id,omitempty"`
}

type Customer struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	FirstName string `json:"first name"`
	LastName  string `json:"last name"`
}

// FullName usa o nome completo e, na falta dele, junta nome e sobrenome
func (c Customer) FullName() string {
	if c.Name != "" {
		return c.Name
	}

	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// TotalPages calcula o número de páginas a partir do total de registros, já que a API
// não retorna a quantidade de páginas.
func (m Meta) TotalPages() int {
	return TotalPages(int(m.Total), int(m.Results))
}

func TotalPages(total, perPage int) int {
	if perPage <= 0 {
		perPage = DefaultResultsPerPage
	}
	if total <= 0 {
		return 0
	}

	return (total + perPage - 1) / perPage
}

// FlexInt aceita número ou texto numérico. Valores que não são números viram 0.
type FlexInt int64

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	raw := string(bytes.Trim(bytes.TrimSpace(data), `"`))

	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*f = FlexInt(n)
		return nil
	}

	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		*f = FlexInt(int64(n))
		return nil
	}

	*f = 0
	return nil
}

// Truthy interpreta o campo como verdadeiro quando ele está presente e não é
// false, 0, texto vazio ou null. O provedor envia tanto booleanos quanto IDs.
type Truthy bool

func (t *Truthy) UnmarshalJSON(data []byte) error {
	switch raw := string(bytes.TrimSpace(data)); raw {
	case "null", "false", "0", `""`, "0.0":
		*t = false
	default:
		*t = true
	}

	return nil
}
