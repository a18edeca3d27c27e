package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingConfig indica que uma credencial ou identificador obrigatório não foi informado
var ErrMissingConfig = errors.New("missing required configuration")

// MissingFieldsError lista as chaves obrigatórias ausentes de um provedor
type MissingFieldsError struct {
	Provider string
	Fields   []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("Missing %s config (%s). Set %s in ~/.config/skills/config.json",
		e.Provider, strings.Join(e.Fields, ", "), Section)
}

func (e *MissingFieldsError) Unwrap() error {
	return ErrMissingConfig
}

// Validate verifica os campos obrigatórios do relatório de vendas
func (t ThriveCart) Validate() error {
	var missing []string
	if t.APIKey == "" {
		missing = append(missing, "thrivecart_api_key")
	}
	if t.ProductID == "" {
		missing = append(missing, "thrivecart_product_id")
	}

	if len(missing) > 0 {
		return &MissingFieldsError{Provider: "ThriveCart", Fields: missing}
	}

	return nil
}

// Validate verifica os campos obrigatórios do relatório de pageviews
func (u Umami) Validate() error {
	var missing []string
	if u.URL == "" {
		missing = append(missing, "umami_url")
	}
	if u.User == "" {
		missing = append(missing, "umami_user")
	}
	if u.Password == "" {
		missing = append(missing, "umami_pass")
	}
	if u.WebsiteID == "" {
		missing = append(missing, "umami_website_id")
	}

	if len(missing) > 0 {
		return &MissingFieldsError{Provider: "Umami", Fields: missing}
	}

	return nil
}
