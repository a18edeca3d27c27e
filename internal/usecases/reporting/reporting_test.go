package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	thrivecartmocks "github.com/vfg2006/monthly-content-report/infrastructure/integrator/thrivecart/mocks"
	umamimocks "github.com/vfg2006/monthly-content-report/infrastructure/integrator/umami/mocks"
	"github.com/vfg2006/monthly-content-report/internal/config"
	"github.com/vfg2006/monthly-content-report/internal/domain"
	"github.com/vfg2006/monthly-content-report/pkg/utils"
	"go.uber.org/mock/gomock"
)

type recordingSink struct {
	records map[string]int
	runs    map[string]error
}

func newRecordingSink() *recordingSink {
	return &recordingSink{records: map[string]int{}, runs: map[string]error{}}
}

func (s *recordingSink) RequestCompleted(string, string, int, error, time.Duration) {}
func (s *recordingSink) PageFetched(string)                                         {}
func (s *recordingSink) RecordsEmitted(report string, count int)                    { s.records[report] = count }
func (s *recordingSink) RunCompleted(report string, err error)                      { s.runs[report] = err }
func (s *recordingSink) Flush() error                                               { return nil }

func february() domain.Period {
	return domain.Period{
		Start: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
	}
}

func validConfig() *config.Config {
	return &config.Config{
		ThriveCart: config.ThriveCart{APIKey: "key", ProductID: "9"},
		Umami: config.Umami{
			URL:       "https://umami.example.com",
			User:      "admin",
			Password:  "secret",
			WebsiteID: "site",
			Path:      "/cursos/expert/ai",
		},
	}
}

func TestSalesService_GetSalesReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := thrivecartmocks.NewMockThriveCartIntegrator(ctrl)

	t.Run("Total é a soma dos valores emitidos", func(t *testing.T) {
		sink := newRecordingSink()
		service := NewSalesService(validConfig(), integrator, sink)

		integrator.EXPECT().GetFirstCharges(gomock.Any(), february()).Return([]*domain.Sale{
			{Date: "2024-02-03", Amount: 49.99, PaymentType: domain.SinglePayment},
			{Date: "2024-02-10", Amount: 100.01, PaymentType: domain.InstallmentPayment},
		}, nil)

		report, err := service.GetSalesReport(context.Background(), february())
		require.NoError(t, err)
		assert.Equal(t, 2, report.Count)
		assert.InDelta(t, 150.0, report.Total, 1e-9)
		assert.Equal(t, 2, sink.records[ReportSales])
		assert.NoError(t, sink.runs[ReportSales])
	})

	t.Run("Sem vendas", func(t *testing.T) {
		service := NewSalesService(validConfig(), integrator, nil)

		integrator.EXPECT().GetFirstCharges(gomock.Any(), february()).Return(nil, nil)

		report, err := service.GetSalesReport(context.Background(), february())
		require.NoError(t, err)
		assert.Equal(t, 0, report.Count)
		assert.NotNil(t, report.Sales)
	})

	t.Run("Configuração ausente não chama o provedor", func(t *testing.T) {
		sink := newRecordingSink()
		cfg := validConfig()
		cfg.ThriveCart.APIKey = ""
		service := NewSalesService(cfg, integrator, sink)

		report, err := service.GetSalesReport(context.Background(), february())
		require.Error(t, err)
		assert.Nil(t, report)
		assert.ErrorIs(t, err, ErrMissingConfig)
		assert.True(t, IsConfigError(err))
		assert.Contains(t, err.Error(), "thrivecart_api_key")
		assert.Error(t, sink.runs[ReportSales])
	})

	t.Run("Período invertido", func(t *testing.T) {
		service := NewSalesService(validConfig(), integrator, nil)
		period := domain.Period{Start: february().End, End: february().Start}

		_, err := service.GetSalesReport(context.Background(), period)
		assert.ErrorIs(t, err, ErrInvalidPeriod)
	})

	t.Run("Erro do provedor mantém status e corpo", func(t *testing.T) {
		service := NewSalesService(validConfig(), integrator, nil)

		integrator.EXPECT().GetFirstCharges(gomock.Any(), february()).
			Return(nil, &utils.StatusError{StatusCode: 401, Body: "invalid key"})

		report, err := service.GetSalesReport(context.Background(), february())
		require.Error(t, err)
		assert.Nil(t, report)
		assert.Contains(t, err.Error(), "401 invalid key")
		assert.False(t, IsConfigError(err))

		var statusErr *utils.StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, 401, statusErr.StatusCode)
	})
}

func TestPageviewService_GetPageviewReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := umamimocks.NewMockUmamiIntegrator(ctrl)

	t.Run("Total é a soma dos pageviews", func(t *testing.T) {
		sink := newRecordingSink()
		service := NewPageviewService(validConfig(), integrator, sink)

		integrator.EXPECT().GetDailyMetrics(gomock.Any(), february()).Return([]*domain.DailyMetric{
			{Date: "2024-02-01", Pageviews: 10, Sessions: 4},
			{Date: "2024-02-02", Pageviews: 7},
		}, nil)

		report, err := service.GetPageviewReport(context.Background(), february())
		require.NoError(t, err)
		assert.Equal(t, int64(17), report.Total)
		assert.Equal(t, "/cursos/expert/ai", report.Path)
		assert.Len(t, report.Days, 2)
		assert.Equal(t, 2, sink.records[ReportPageviews])
	})

	t.Run("Configuração ausente lista as chaves", func(t *testing.T) {
		cfg := validConfig()
		cfg.Umami = config.Umami{}
		service := NewPageviewService(cfg, integrator, nil)

		_, err := service.GetPageviewReport(context.Background(), february())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingConfig)
		assert.Contains(t, err.Error(), "umami_url, umami_user, umami_pass, umami_website_id")
	})

	t.Run("Erro do provedor", func(t *testing.T) {
		service := NewPageviewService(validConfig(), integrator, nil)

		integrator.EXPECT().GetDailyMetrics(gomock.Any(), february()).
			Return(nil, &utils.StatusError{StatusCode: 500, Body: "boom"})

		report, err := service.GetPageviewReport(context.Background(), february())
		require.Error(t, err)
		assert.Nil(t, report)
		assert.Contains(t, err.Error(), "500 boom")
	})
}
