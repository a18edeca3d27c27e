package thrivecart

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	thrivecartdomain "github.com/vfg2006/monthly-content-report/infrastructure/integrator/thrivecart/domain"
	"github.com/vfg2006/monthly-content-report/infrastructure/integrator/thrivecart/thrivecartclient"
	"github.com/vfg2006/monthly-content-report/internal/config"
	"github.com/vfg2006/monthly-content-report/internal/domain"
	"github.com/vfg2006/monthly-content-report/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type ThriveCartIntegrator interface {
	// GetFirstCharges retorna as primeiras compras (charge) do produto configurado dentro do período
	GetFirstCharges(ctx context.Context, period domain.Period) ([]*domain.Sale, error)
}

type ThriveCartService struct {
	cfg      *config.Config
	Client   thrivecartclient.Client
	location *time.Location
}

func New(cfg *config.Config, client thrivecartclient.Client) ThriveCartIntegrator {
	return &ThriveCartService{
		cfg:      cfg,
		Client:   client,
		location: time.Local,
	}
}

// WithLocation define o fuso usado para converter o período em timestamps
func (s *ThriveCartService) WithLocation(loc *time.Location) *ThriveCartService {
	s.location = loc
	return s
}

// GetFirstCharges percorre as páginas de transações, da mais recente para a mais antiga.
// A paginação para quando uma página vem vazia, quando a página contém transações
// anteriores ao início do período ou quando o total de páginas calculado é ultrapassado.
// Qualquer falha descarta o progresso: não existe resultado parcial.
func (s *ThriveCartService) GetFirstCharges(ctx context.Context, period domain.Period) ([]*domain.Sale, error) {
	start, end := period.Bounds(s.location)
	startTs, endTs := start.Unix(), end.Unix()

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"product_id": s.cfg.ThriveCart.ProductID,
		"start_ts":   startTs,
		"end_ts":     endTs,
	})

	sales := make([]*domain.Sale, 0)
	rebills := 0
	totalPages := -1

	for page := 1; ; {
		resp, err := s.Client.GetTransactions(ctx, thrivecartclient.TransactionsParams{
			ProductID: s.cfg.ThriveCart.ProductID,
			Page:      page,
		})
		if err != nil {
			logger.WithError(err).WithField("page", page).Error("thrivecart: falha ao buscar transações")
			return nil, err
		}

		if totalPages < 0 {
			totalPages = resp.Meta.TotalPages()
			logger.WithField("total_pages", totalPages).Debug("thrivecart: total de páginas calculado")
		}

		if len(resp.Transactions) == 0 {
			logger.WithField("page", page).Debug("thrivecart: página vazia, encerrando")
			break
		}

		// Transações sem timestamp não participam do critério de parada
		minTs := int64(math.MaxInt64)
		for _, tx := range resp.Transactions {
			ts := int64(tx.Timestamp)
			if ts > 0 && ts < minTs {
				minTs = ts
			}

			switch tx.TransactionType {
			case thrivecartdomain.ChargeTransaction:
			case thrivecartdomain.RebillTransaction:
				rebills++
				continue
			default:
				continue
			}

			if ts < startTs || ts > endTs {
				continue
			}

			sales = append(sales, toSale(tx))
		}

		// As páginas vêm da mais nova para a mais antiga: nada depois desta pode estar no período
		if minTs < startTs {
			logger.WithField("page", page).Debug("thrivecart: início do período alcançado")
			break
		}

		page++
		if page > totalPages {
			break
		}
	}

	sort.SliceStable(sales, func(i, j int) bool {
		return sales[i].Timestamp < sales[j].Timestamp
	})

	logger.WithFields(log.Fields{
		"sales":           len(sales),
		"ignored_rebills": rebills,
	}).Info("thrivecart: vendas obtidas")

	return sales, nil
}

func toSale(tx thrivecartdomain.Transaction) *domain.Sale {
	paymentType := domain.SinglePayment
	if tx.RelatedToRecur {
		paymentType = domain.InstallmentPayment
	}

	date, _, _ := strings.Cut(tx.Date, " ")

	return &domain.Sale{
		Date:          date,
		Email:         tx.Customer.Email,
		Name:          tx.Customer.FullName(),
		PaymentType:   paymentType,
		PricingOption: tx.ItemPricingOptionName,
		Amount:        parseAmount(tx.AmountStr),
		OrderID:       tx.OrderID,
		Timestamp:     int64(tx.Timestamp),
	}
}

// parseAmount converte o valor textual da transação. Só o prefixo numérico é
// considerado ("49.99 EUR" vale 49.99); sem prefixo numérico o valor é 0.
func parseAmount(amount string) float64 {
	value, err := decimal.NewFromString(numericPrefix(strings.TrimSpace(amount)))
	if err != nil {
		return 0
	}

	return value.InexactFloat64()
}

// numericPrefix devolve o maior prefixo no formato [-]dígitos[.dígitos]
func numericPrefix(s string) string {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}

	digits, dot := 0, false
	for ; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			digits++
		case c == '.' && !dot:
			dot = true
		default:
			return trimDot(s[:i], digits)
		}
	}

	return trimDot(s, digits)
}

func trimDot(s string, digits int) string {
	if digits == 0 {
		return ""
	}
	return strings.TrimSuffix(s, ".")
}
