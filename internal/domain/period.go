package domain

import (
	"fmt"
	"time"
)

// Period é um intervalo inclusivo de datas do calendário
type Period struct {
	Start time.Time
	End   time.Time
}

// PreviousMonth retorna o mês anterior completo em relação a now
func PreviousMonth(now time.Time) Period {
	firstOfThisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastOfPreviousMonth := firstOfThisMonth.AddDate(0, 0, -1)
	firstOfPreviousMonth := time.Date(lastOfPreviousMonth.Year(), lastOfPreviousMonth.Month(), 1, 0, 0, 0, 0, now.Location())

	return Period{
		Start: firstOfPreviousMonth,
		End:   lastOfPreviousMonth,
	}
}

func (p Period) StartDate() string {
	return p.Start.Format(time.DateOnly)
}

func (p Period) EndDate() string {
	return p.End.Format(time.DateOnly)
}

// Bounds retorna o primeiro e o último segundo do período no fuso informado
func (p Period) Bounds(loc *time.Location) (time.Time, time.Time) {
	start := time.Date(p.Start.Year(), p.Start.Month(), p.Start.Day(), 0, 0, 0, 0, loc)
	end := time.Date(p.End.Year(), p.End.Month(), p.End.Day(), 23, 59, 59, 0, loc)

	return start, end
}

// Validate garante que o período está em ordem
func (p Period) Validate() error {
	if p.Start.IsZero() || p.End.IsZero() {
		return fmt.Errorf("é necessário informar as datas de início e fim")
	}

	if p.Start.After(p.End) {
		return fmt.Errorf("a data de início (%s) não pode ser posterior à data de fim (%s)", p.StartDate(), p.EndDate())
	}

	return nil
}
