package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/vfg2006/monthly-content-report/internal/domain"
)

const (
	nameWidth = 29
	typeWidth = 7
)

func writeSalesText(w io.Writer, r *domain.SalesReport) error {
	out := bufio.NewWriter(w)

	fmt.Fprintf(out, "Ventas AI Expert (primeras compras) del %s al %s\n", r.Period.StartDate(), r.Period.EndDate())
	fmt.Fprintf(out, "Total: %d ventas / %.2f EUR\n", r.Count, r.Total)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Fecha      | Nombre                        | Tipo    | Importe | Email")
	fmt.Fprintln(out, "-----------|-------------------------------|---------|---------|------")

	for _, sale := range r.Sales {
		fmt.Fprintf(out, "%s | %s | %s | %7.2f | %s\n",
			sale.Date,
			fit(sale.Name, nameWidth),
			padRight(string(sale.PaymentType), typeWidth),
			sale.Amount,
			sale.Email,
		)
	}

	return out.Flush()
}

func writePageviewsText(w io.Writer, r *domain.PageviewReport) error {
	out := bufio.NewWriter(w)

	fmt.Fprintf(out, "Pageviews for %s from %s to %s\n", r.Path, r.Period.StartDate(), r.Period.EndDate())
	fmt.Fprintf(out, "Total: %d pageviews\n", r.Total)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Date       | Pageviews | Sessions")
	fmt.Fprintln(out, "-----------|-----------|----------")

	for _, day := range r.Days {
		fmt.Fprintf(out, "%s | %9d | %d\n", day.Date, day.Pageviews, day.Sessions)
	}

	return out.Flush()
}

// fit completa com espaços ou corta o texto para exatamente width caracteres
func fit(s string, width int) string {
	if utf8.RuneCountInString(s) > width {
		return string([]rune(s)[:width])
	}

	return padRight(s, width)
}

func padRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}

	return s
}
