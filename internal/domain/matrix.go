package domain

import "github.com/shopspring/decimal"

// RegistrationColumn identifies which cost column of a MatrixRow a lookup
// should read. Exactly one column is read per resolution.
type RegistrationColumn string

const (
	ColumnCreditGeneral    RegistrationColumn = "credit_general"
	ColumnCreditSantaMarta RegistrationColumn = "credit_santa_marta"
	ColumnCashSantaMarta   RegistrationColumn = "cash_santa_marta"
	ColumnCashCienaga      RegistrationColumn = "cash_cienaga"
	ColumnCashFundacion    RegistrationColumn = "cash_fundacion"
	ColumnCashAracataca    RegistrationColumn = "cash_aracataca"
)

// MatrixRow is one row of the tiered registration cost matrix. A row matches
// either by explicit category (takes priority) or by displacement interval.
type MatrixRow struct {
	Category string `yaml:"category,omitempty" json:"category,omitempty"`
	MinCC    int    `yaml:"min_cc,omitempty" json:"min_cc,omitempty"`
	MaxCC    int    `yaml:"max_cc,omitempty" json:"max_cc,omitempty"`

	CreditGeneral    decimal.Decimal `yaml:"credit_general" json:"credit_general"`
	CreditSantaMarta decimal.Decimal `yaml:"credit_santa_marta" json:"credit_santa_marta"`
	CashSantaMarta   decimal.Decimal `yaml:"cash_santa_marta" json:"cash_santa_marta"`
	CashCienaga      decimal.Decimal `yaml:"cash_cienaga" json:"cash_cienaga"`
	CashFundacion    decimal.Decimal `yaml:"cash_fundacion" json:"cash_fundacion"`
	CashAracataca    decimal.Decimal `yaml:"cash_aracataca" json:"cash_aracataca"`
}

// Amount returns the cost stored in the requested column.
func (r MatrixRow) Amount(col RegistrationColumn) decimal.Decimal {
	switch col {
	case ColumnCreditSantaMarta:
		return r.CreditSantaMarta
	case ColumnCashSantaMarta:
		return r.CashSantaMarta
	case ColumnCashCienaga:
		return r.CashCienaga
	case ColumnCashFundacion:
		return r.CashFundacion
	case ColumnCashAracataca:
		return r.CashAracataca
	default:
		return r.CreditGeneral
	}
}

// MatchesCategory reports whether the row's explicit category equals the
// (already normalized) candidate category.
func (r MatrixRow) MatchesCategory(normalized string) bool {
	return r.Category != "" && NormalizeCategory(r.Category) == normalized
}

// ContainsDisplacement reports whether the row's interval covers the
// displacement. Rows with an explicit category have no usable interval.
func (r MatrixRow) ContainsDisplacement(displacementCC int) bool {
	if r.MinCC == 0 && r.MaxCC == 0 {
		return false
	}
	return displacementCC >= r.MinCC && displacementCC <= r.MaxCC
}
