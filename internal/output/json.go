package output

import (
	"encoding/json"

	"github.com/casamotor/cotizador/internal/domain"
)

// JSONFormatter renders the quote result as indented JSON for machine
// consumers (the storefront renders from the same record).
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(result *domain.QuoteResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
