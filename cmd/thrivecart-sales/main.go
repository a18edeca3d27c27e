package main

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/monthly-content-report/infrastructure/integrator/thrivecart"
	"github.com/vfg2006/monthly-content-report/infrastructure/integrator/thrivecart/thrivecartclient"
	"github.com/vfg2006/monthly-content-report/internal/cli"
	"github.com/vfg2006/monthly-content-report/internal/config"
	"github.com/vfg2006/monthly-content-report/internal/metrics"
	"github.com/vfg2006/monthly-content-report/internal/report"
	"github.com/vfg2006/monthly-content-report/internal/usecases/reporting"
	"github.com/vfg2006/monthly-content-report/pkg/log"
)

const program = "thrivecart-sales"

func main() {
	ctx, _ := log.WithRunID(context.Background())

	path, err := config.DefaultPath()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := run(ctx, path, os.Args[1:], os.Stdout, time.Now()); err != nil {
		if errors.Is(err, cli.ErrHelp) {
			return
		}
		logrus.Fatal(err)
	}
}

// run gera o relatório de vendas do período e o escreve em stdout
func run(ctx context.Context, cfgPath string, args []string, stdout io.Writer, now time.Time) error {
	cfg, err := config.NewConfig(cfgPath)
	if err != nil {
		return err
	}

	log.Setup(cfg.App.LogLevel, os.Stderr)

	opts, err := cli.ParseOptions(program, args, os.Stderr)
	if err != nil {
		return err
	}

	period, err := opts.Period(now)
	if err != nil {
		return err
	}

	sink := metrics.New(cfg.Metrics.TextFile)
	defer flushMetrics(ctx, sink)

	client := thrivecartclient.NewClient(cfg, sink)
	service := reporting.NewSalesService(cfg, thrivecart.New(cfg, client), sink)

	sales, err := service.GetSalesReport(ctx, period)
	if err != nil {
		return err
	}

	return report.WriteSales(stdout, sales, report.FormatFor(opts.JSON))
}

func flushMetrics(ctx context.Context, sink metrics.Sink) {
	if err := sink.Flush(); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao gravar o arquivo de métricas")
	}
}
