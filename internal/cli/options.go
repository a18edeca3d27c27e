package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/pflag"
	"github.com/vfg2006/monthly-content-report/internal/domain"
	"github.com/vfg2006/monthly-content-report/internal/usecases/reporting"
	"github.com/vfg2006/monthly-content-report/pkg/utils"
)

// ErrHelp é devolvido quando a ajuda foi pedida com -h ou --help
var ErrHelp = pflag.ErrHelp

// Options são as opções de linha de comando comuns aos dois relatórios
type Options struct {
	Start string
	End   string
	JSON  bool
}

// ParseOptions interpreta --start, --end e --json. Flags desconhecidas são ignoradas.
func ParseOptions(program string, args []string, output io.Writer) (*Options, error) {
	opts := &Options{}

	fs := pflag.NewFlagSet(program, pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SortFlags = false

	fs.StringVar(&opts.Start, "start", "", "data inicial no formato YYYY-MM-DD (padrão: primeiro dia do mês anterior)")
	fs.StringVar(&opts.End, "end", "", "data final no formato YYYY-MM-DD (padrão: último dia do mês anterior)")
	fs.BoolVar(&opts.JSON, "json", false, "imprime o relatório em JSON")

	fs.Usage = func() {
		fmt.Fprintf(output, "Usage: %s [--start YYYY-MM-DD] [--end YYYY-MM-DD] [--json]\n", program)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil, ErrHelp
		}
		return nil, fmt.Errorf("%w: %s", reporting.ErrInvalidPeriod, err.Error())
	}

	return opts, nil
}

// Period resolve o intervalo do relatório. Datas não informadas vêm do mês
// anterior a now, e é possível informar só uma das pontas.
func (o *Options) Period(now time.Time) (domain.Period, error) {
	period := domain.PreviousMonth(now)

	start, err := utils.ParseDate(o.Start)
	if err != nil {
		return domain.Period{}, fmt.Errorf("%w: %s", reporting.ErrInvalidPeriod, err.Error())
	}
	if start != nil {
		period.Start = *start
	}

	end, err := utils.ParseDate(o.End)
	if err != nil {
		return domain.Period{}, fmt.Errorf("%w: %s", reporting.ErrInvalidPeriod, err.Error())
	}
	if end != nil {
		period.End = *end
	}

	if err := period.Validate(); err != nil {
		return domain.Period{}, fmt.Errorf("%w: %s", reporting.ErrInvalidPeriod, err.Error())
	}

	return period, nil
}
