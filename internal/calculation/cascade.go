package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/casamotor/cotizador/internal/domain"
)

// CapitalCascade holds the financed principal built layer by layer, with
// every intermediate base kept so each layer's contract can be checked on its
// own. FinancedPrincipal always equals AmortizationPrincipal plus CoverageFee.
type CapitalCascade struct {
	// Base is price plus special adjustment minus down payment, with
	// registration and documentation folded in when the entity finances them.
	Base decimal.Decimal
	// IntermediateBase is Base after the guarantee-fund layer, snapshotted
	// before the management fee.
	IntermediateBase decimal.Decimal
	// PreCoverageBase is IntermediateBase plus the management fee.
	PreCoverageBase decimal.Decimal

	// FinancedPrincipal is the fully loaded loan amount and the risk base
	// for every insurance calculation.
	FinancedPrincipal decimal.Decimal
	// AmortizationPrincipal is the portion the annuity runs on. It excludes
	// the coverage fee, which is billed separately over the first twelve
	// installments.
	AmortizationPrincipal decimal.Decimal

	GuaranteeFundCost decimal.Decimal
	ManagementFee     decimal.Decimal
	CoverageFee       decimal.Decimal
}

// BuildCapitalCascade applies the financing layers in their fixed order:
// down payment, registration fold-in, guarantee fund, management fee,
// coverage fee. Each layer rounds to whole pesos independently and reads only
// the running total left by the previous one. The guarantee fund is computed
// exactly once against the pre-fund base.
func BuildCapitalCascade(vehicle *domain.Vehicle, registrationCost, docFee, downPayment decimal.Decimal, entity *domain.FinancialEntity) CapitalCascade {
	params := resolveEntity(entity)

	base := vehicle.Price.Add(vehicle.SpecialAdjustment).Sub(downPayment)
	if params.foldsRegistration {
		base = base.Add(registrationCost).Add(docFee)
	}

	guaranteeFund := decimal.Zero
	if params.guaranteeFundRate.IsPositive() {
		guaranteeFund = base.Mul(params.guaranteeFundRate).Div(hundred).Round(0)
	}
	intermediate := base.Add(guaranteeFund)

	managementFee := decimal.Zero
	if params.managementFeeRate.IsPositive() {
		managementFee = intermediate.Mul(params.managementFeeRate).Div(hundred).Round(0)
	}
	preCoverage := intermediate.Add(managementFee)

	coverageFee := decimal.Zero
	if params.coverageFeeRate.IsPositive() {
		coverageFee = preCoverage.Mul(params.coverageFeeRate).Div(hundred).Round(0)
	}
	financed := preCoverage.Add(coverageFee)

	amortization := financed
	if coverageFee.IsPositive() {
		amortization = preCoverage
	}

	return CapitalCascade{
		Base:                  base,
		IntermediateBase:      intermediate,
		PreCoverageBase:       preCoverage,
		FinancedPrincipal:     financed,
		AmortizationPrincipal: amortization,
		GuaranteeFundCost:     guaranteeFund,
		ManagementFee:         managementFee,
		CoverageFee:           coverageFee,
	}
}
