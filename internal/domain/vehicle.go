package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// PaymentMethod selects between the cash and credit quoting paths.
type PaymentMethod string

const (
	PaymentCredit PaymentMethod = "credit"
	PaymentCash   PaymentMethod = "cash"
)

// CategoryUrbanWork is the category assumed for vehicles that carry no
// category tags at all.
const CategoryUrbanWork = "URBANO/TRABAJO"

// Vehicle is a read-only snapshot of a catalog item for a single quote.
type Vehicle struct {
	ID                string          `yaml:"id" json:"id"`
	Name              string          `yaml:"name" json:"name"`
	Price             decimal.Decimal `yaml:"price" json:"price"`
	DisplacementCC    int             `yaml:"displacement_cc" json:"displacement_cc"` // 0 means unknown
	Category          string          `yaml:"category,omitempty" json:"category,omitempty"`
	Categories        []string        `yaml:"categories,omitempty" json:"categories,omitempty"`
	SpecialAdjustment decimal.Decimal `yaml:"special_adjustment,omitempty" json:"special_adjustment,omitempty"`
}

// CandidateCategories returns the normalized category tags used for
// registration-matrix lookups. The explicit tag list wins over the single
// category field; a vehicle with neither is treated as urban/work use.
func (v *Vehicle) CandidateCategories() []string {
	if len(v.Categories) > 0 {
		out := make([]string, 0, len(v.Categories))
		for _, c := range v.Categories {
			if n := NormalizeCategory(c); n != "" {
				out = append(out, n)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	if n := NormalizeCategory(v.Category); n != "" {
		return []string{n}
	}
	return []string{CategoryUrbanWork}
}

// NormalizeCategory maps free-text category tags onto the comparable form
// used by matrix rows: trimmed, upper-cased, accents stripped.
func NormalizeCategory(s string) string {
	return strings.ToUpper(stripAccents(strings.TrimSpace(s)))
}

// NormalizePlaceName maps scenario and city names onto the lower-cased,
// accent-free form used for substring matching.
func NormalizePlaceName(s string) string {
	return strings.ToLower(stripAccents(strings.TrimSpace(s)))
}

var accentReplacer = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ñ", "n", "ü", "u",
	"Á", "A", "É", "E", "Í", "I", "Ó", "O", "Ú", "U", "Ñ", "N", "Ü", "U",
)

func stripAccents(s string) string {
	return accentReplacer.Replace(s)
}

// RateBand is one displacement interval of the SOAT premium table.
type RateBand struct {
	MinCC   int             `yaml:"min_cc" json:"min_cc"`
	MaxCC   int             `yaml:"max_cc" json:"max_cc"`
	Premium decimal.Decimal `yaml:"premium" json:"premium"`
}

// Contains reports whether the displacement falls inside the band.
func (b RateBand) Contains(displacementCC int) bool {
	return displacementCC >= b.MinCC && displacementCC <= b.MaxCC
}

// Scenario is the city/financing context a quote is computed for.
type Scenario struct {
	Name string `yaml:"name" json:"name"`
	// DocumentationFee is a flat paperwork charge added to every quote.
	DocumentationFee decimal.Decimal `yaml:"documentation_fee" json:"documentation_fee"`
	// LegacyRegistrationCost is the flat registration fee used when no
	// matrix is configured or no row matches.
	LegacyRegistrationCost decimal.Decimal `yaml:"legacy_registration_cost,omitempty" json:"legacy_registration_cost,omitempty"`
}
