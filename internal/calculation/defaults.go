package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/casamotor/cotizador/internal/domain"
)

var (
	// defaultMonthlyInterestRate is the house nominal monthly rate in
	// percent, used when an entity sets none.
	defaultMonthlyInterestRate = decimal.NewFromFloat(2.5)

	// defaultLifeInsuranceRate is the monthly life-insurance percentage of
	// the financed principal, used when an entity sets none.
	defaultLifeInsuranceRate = decimal.NewFromFloat(0.1126)
)

// entityParams is a FinancialEntity with every optional field resolved to its
// effective value. Resolving once up front keeps the fallback rules in one
// auditable place instead of scattered guards.
type entityParams struct {
	name              string
	monthlyRate       decimal.Decimal // percent
	guaranteeFundRate decimal.Decimal // percent
	managementFeeRate decimal.Decimal // percent
	coverageFeeRate   decimal.Decimal // percent
	foldsRegistration bool
	lifeMode          domain.InsuranceMode
	lifeRate          decimal.Decimal
	unemploymentMode  domain.InsuranceMode
	unemploymentRate  decimal.Decimal
}

// resolveEntity normalizes an optional FinancialEntity. A nil entity behaves
// as an all-defaults program: house interest rate, percentage life insurance,
// no surcharge layers, registration financed.
func resolveEntity(entity *domain.FinancialEntity) entityParams {
	params := entityParams{
		monthlyRate:       defaultMonthlyInterestRate,
		foldsRegistration: true,
		lifeMode:          domain.InsurancePercentage,
		lifeRate:          defaultLifeInsuranceRate,
	}
	if entity == nil {
		return params
	}

	params.name = entity.Name
	if entity.MonthlyInterestRate.IsPositive() {
		params.monthlyRate = entity.MonthlyInterestRate
	}
	params.guaranteeFundRate = entity.GuaranteeFundRate
	params.managementFeeRate = entity.ManagementFeeRate
	params.coverageFeeRate = entity.CoverageFeeRate
	params.foldsRegistration = entity.FoldsRegistration()

	if entity.LifeInsuranceMode != "" {
		params.lifeMode = entity.LifeInsuranceMode
	}
	if entity.LifeInsuranceRate.IsPositive() {
		params.lifeRate = entity.LifeInsuranceRate
	}
	params.unemploymentMode = entity.UnemploymentInsuranceMode
	params.unemploymentRate = entity.UnemploymentInsuranceRate
	return params
}
