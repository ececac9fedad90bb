package domain

import "github.com/shopspring/decimal"

// InsuranceMode selects how an insurance cost accrues against the financed
// principal.
type InsuranceMode string

const (
	// InsurancePercentage charges a monthly percentage of the financed principal.
	InsurancePercentage InsuranceMode = "percentage"
	// InsurancePerMillion charges a fixed amount per million financed, rounded up.
	InsurancePerMillion InsuranceMode = "per_million"
	// InsuranceFixed charges a flat monthly amount.
	InsuranceFixed InsuranceMode = "fixed"
)

// FinancialEntity is the parameter set of one financing program. Every rate
// field is optional; zero means the corresponding layer does not apply.
type FinancialEntity struct {
	Name string `yaml:"name" json:"name"`

	// MonthlyInterestRate is the nominal monthly rate in percent. Zero falls
	// back to the house default.
	MonthlyInterestRate decimal.Decimal `yaml:"monthly_interest_rate,omitempty" json:"monthly_interest_rate,omitempty"`

	// GuaranteeFundRate (FNG) in percent of the running base.
	GuaranteeFundRate decimal.Decimal `yaml:"guarantee_fund_rate,omitempty" json:"guarantee_fund_rate,omitempty"`

	// ManagementFeeRate in percent, Brilla-style administration charge.
	ManagementFeeRate decimal.Decimal `yaml:"management_fee_rate,omitempty" json:"management_fee_rate,omitempty"`

	// CoverageFeeRate in percent; the resulting fee is billed across the
	// first twelve installments instead of being amortized.
	CoverageFeeRate decimal.Decimal `yaml:"coverage_fee_rate,omitempty" json:"coverage_fee_rate,omitempty"`

	// FinancesRegistration folds registration and documentation costs into
	// the financed principal. Unset means true.
	FinancesRegistration *bool `yaml:"finances_registration,omitempty" json:"finances_registration,omitempty"`

	LifeInsuranceMode InsuranceMode   `yaml:"life_insurance_mode,omitempty" json:"life_insurance_mode,omitempty"`
	LifeInsuranceRate decimal.Decimal `yaml:"life_insurance_rate,omitempty" json:"life_insurance_rate,omitempty"`

	UnemploymentInsuranceMode InsuranceMode   `yaml:"unemployment_insurance_mode,omitempty" json:"unemployment_insurance_mode,omitempty"`
	UnemploymentInsuranceRate decimal.Decimal `yaml:"unemployment_insurance_rate,omitempty" json:"unemployment_insurance_rate,omitempty"`
}

// FoldsRegistration reports whether registration and documentation costs are
// financed along with the vehicle. Defaults to true when unset.
func (e *FinancialEntity) FoldsRegistration() bool {
	if e == nil || e.FinancesRegistration == nil {
		return true
	}
	return *e.FinancesRegistration
}
