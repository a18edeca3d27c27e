package domain

// DailyMetric agrega pageviews e sessões de um dia do calendário
type DailyMetric struct {
	Date      string `json:"date"`
	Pageviews int64  `json:"pageviews"`
	Sessions  int64  `json:"sessions"`
}

// PageviewReport é o resultado do relatório de pageviews de um caminho
type PageviewReport struct {
	Period Period
	Path   string
	Total  int64
	Days   []*DailyMetric
}

// NewPageviewReport calcula o total de pageviews a partir dos dias emitidos
func NewPageviewReport(period Period, path string, days []*DailyMetric) *PageviewReport {
	var total int64
	for _, day := range days {
		total += day.Pageviews
	}

	if days == nil {
		days = make([]*DailyMetric, 0)
	}

	return &PageviewReport{
		Period: period,
		Path:   path,
		Total:  total,
		Days:   days,
	}
}
