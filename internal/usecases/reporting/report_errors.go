package reporting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/monthly-content-report/internal/config"
)

// Erros de configuração, detectados antes de qualquer chamada de rede
var (
	ErrMissingConfig = config.ErrMissingConfig
	ErrInvalidPeriod = errors.New("invalid period")
)

// IsConfigError indica se o erro é de configuração e não do provedor
func IsConfigError(err error) bool {
	return errors.Is(err, ErrMissingConfig) || errors.Is(err, ErrInvalidPeriod)
}

func invalidPeriod(err error) error {
	return fmt.Errorf("%w: %s", ErrInvalidPeriod, err.Error())
}
