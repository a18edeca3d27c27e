package main

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/monthly-content-report/infrastructure/integrator/umami"
	"github.com/vfg2006/monthly-content-report/infrastructure/integrator/umami/umamiclient"
	"github.com/vfg2006/monthly-content-report/internal/cli"
	"github.com/vfg2006/monthly-content-report/internal/config"
	"github.com/vfg2006/monthly-content-report/internal/metrics"
	"github.com/vfg2006/monthly-content-report/internal/report"
	"github.com/vfg2006/monthly-content-report/internal/usecases/reporting"
	"github.com/vfg2006/monthly-content-report/pkg/log"
)

const program = "umami-pageviews"

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

// run gera o relatório diário de pageviews do período e o escreve em stdout
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

	client := umamiclient.NewClient(cfg, sink)
	service := reporting.NewPageviewService(cfg, umami.New(cfg, client), sink)

	pageviews, err := service.GetPageviewReport(ctx, period)
	if err != nil {
		return err
	}

	return report.WritePageviews(stdout, pageviews, report.FormatFor(opts.JSON))
}

func flushMetrics(ctx context.Context, sink metrics.Sink) {
	if err := sink.Flush(); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao gravar o arquivo de métricas")
	}
}
