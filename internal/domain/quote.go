package domain

import "github.com/shopspring/decimal"

// QuoteResult is the single output record of a quote calculation. It is
// rebuilt fresh on every calculation and never mutated afterwards; consumers
// must render its fields as-is instead of re-deriving them.
type QuoteResult struct {
	VehicleID   string `json:"vehicle_id"`
	VehicleName string `json:"vehicle_name"`

	VehiclePrice      decimal.Decimal `json:"vehicle_price"`
	RegistrationCost  decimal.Decimal `json:"registration_cost"`
	DocumentationFee  decimal.Decimal `json:"documentation_fee"`
	SpecialAdjustment decimal.Decimal `json:"special_adjustment"`

	// SOATPremium is informational: the mandatory insurance for the
	// vehicle's displacement band. It is displayed alongside the quote but
	// never folded into its totals.
	SOATPremium decimal.Decimal `json:"soat_premium"`

	// Subtotal is the pre-financing sum of price, adjustment, registration
	// and documentation costs.
	Subtotal decimal.Decimal `json:"subtotal"`
	// TotalCost is the projected cost of the whole operation: the subtotal
	// for cash, down payment plus all installments plus the coverage fee for
	// credit.
	TotalCost decimal.Decimal `json:"total_cost"`

	DownPayment decimal.Decimal `json:"down_payment"`
	// LoanAmount is the fully loaded financed principal, insurance risk base
	// included.
	LoanAmount decimal.Decimal `json:"loan_amount"`

	GuaranteeFundCost     decimal.Decimal `json:"guarantee_fund_cost"`
	LifeInsurance         decimal.Decimal `json:"life_insurance"`
	UnemploymentInsurance decimal.Decimal `json:"unemployment_insurance"`
	ManagementFee         decimal.Decimal `json:"management_fee"`
	CoverageFee           decimal.Decimal `json:"coverage_fee"`
	// CoverageMonthly is the portion of the coverage fee billed on each of
	// the first twelve installments. MonthlyPayment includes it; the payment
	// from month 13 on is MonthlyPayment minus CoverageMonthly.
	CoverageMonthly decimal.Decimal `json:"coverage_monthly"`

	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	TermMonths     int             `json:"term_months"`
	// MonthlyRate is the nominal monthly interest rate in percent.
	MonthlyRate     decimal.Decimal `json:"monthly_rate"`
	FinancialEntity string          `json:"financial_entity,omitempty"`
	IsCredit        bool            `json:"is_credit"`
}
