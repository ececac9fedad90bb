package output

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/casamotor/cotizador/internal/domain"
)

// Formatter renders a quote result into one output format.
type Formatter interface {
	Name() string
	Format(result *domain.QuoteResult) ([]byte, error)
}

var formatters = []Formatter{
	TableFormatter{},
	JSONFormatter{},
	CSVFormatter{},
}

// GetFormatterByName returns the formatter registered under the given name,
// or nil when the name is unknown.
func GetFormatterByName(name string) Formatter {
	for _, f := range formatters {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// FormatterNames lists the registered formatter names for CLI help text.
func FormatterNames() []string {
	names := make([]string, len(formatters))
	for i, f := range formatters {
		names[i] = f.Name()
	}
	return names
}

// FormatCOP renders a peso amount with dot thousands separators, the way the
// storefront displays prices.
func FormatCOP(amount decimal.Decimal) string {
	s := amount.Round(0).StringFixed(0)
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	if negative {
		return "-$" + b.String()
	}
	return "$" + b.String()
}
