package umamidomain

import (
	"bytes"
	"strconv"
	"strings"
	"time"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// PageviewsResponse traz as duas séries diárias do endpoint de pageviews
type PageviewsResponse struct {
	Pageviews []Point `json:"pageviews"`
	Sessions  []Point `json:"sessions"`
}

// Point é um ponto de uma série: X identifica o dia, Y é o valor
type Point struct {
	X PointTime `json:"x"`
	Y Count     `json:"y"`
}

// Formatos de data aceitos em Point.X quando vem como texto
var pointLayouts = []string{
	time.DateTime,
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// PointTime é a data de um ponto. O provedor envia texto já no fuso pedido ou
// epoch em milissegundos; em ambos os casos guardamos só o dia do calendário.
// Um valor nulo ou ilegível deixa Date vazio e guarda o original em Raw.
type PointTime struct {
	Date string
	Raw  string
}

// Valid indica se o dia do ponto foi reconhecido
func (p PointTime) Valid() bool {
	return p.Date != ""
}

func (p *PointTime) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	p.Date, p.Raw = "", string(raw)

	if len(raw) > 0 && raw[0] == '"' {
		value, err := strconv.Unquote(string(raw))
		if err != nil {
			return nil
		}

		p.Date = parsePointDate(value)
		return nil
	}

	if ms, err := strconv.ParseFloat(string(raw), 64); err == nil {
		p.Date = time.UnixMilli(int64(ms)).UTC().Format(time.DateOnly)
	}

	return nil
}

// parsePointDate mantém o dia escrito pelo provedor, sem converter de fuso
func parsePointDate(value string) string {
	value = strings.TrimSpace(value)

	for _, layout := range pointLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(time.DateOnly)
		}
	}

	return ""
}

// Count aceita número inteiro, fracionário ou texto numérico. Qualquer outro valor vira 0.
type Count int64

func (c *Count) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(strings.Trim(string(bytes.TrimSpace(data)), `"`))

	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*c = Count(n)
		return nil
	}

	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		*c = Count(int64(n))
		return nil
	}

	*c = 0
	return nil
}
