package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/casamotor/cotizador/internal/domain"
)

var (
	hundred = decimal.NewFromInt(100)
	million = decimal.NewFromInt(1000000)
	twelve  = decimal.NewFromInt(12)
)

// InstallmentBreakdown is the monthly side of a credit quote: insurance
// costs, the coverage installment component and the blended payment.
type InstallmentBreakdown struct {
	LifeInsurance         decimal.Decimal
	UnemploymentInsurance decimal.Decimal

	// CoverageMonthly is the coverage fee split over the first twelve
	// installments. MonthlyPayment includes it; callers needing the payment
	// from month 13 on subtract it themselves.
	CoverageMonthly decimal.Decimal

	// BasePayment is the unrounded annuity payment on the amortization
	// principal, before insurances.
	BasePayment decimal.Decimal

	// MonthlyPayment is the reported months-1-12 figure: annuity payment
	// plus insurances plus the coverage component, rounded to whole pesos.
	MonthlyPayment decimal.Decimal

	// TotalProjectedCost is down payment plus all installments plus the
	// coverage fee taken once. When the coverage fee is not divisible by
	// twelve this drifts slightly from CoverageMonthly times twelve; that
	// drift is accepted.
	TotalProjectedCost decimal.Decimal
}

// ComputeInstallment prices the insurances against the full financed
// principal, amortizes the coverage-free principal and blends everything into
// the reported monthly payment.
func ComputeInstallment(cascade CapitalCascade, entity *domain.FinancialEntity, termMonths int, downPayment decimal.Decimal) InstallmentBreakdown {
	params := resolveEntity(entity)
	principal := cascade.FinancedPrincipal

	life := lifeInsuranceCost(principal, params)
	unemployment := unemploymentInsuranceCost(principal, params)

	coverageMonthly := decimal.Zero
	if cascade.CoverageFee.IsPositive() {
		coverageMonthly = cascade.CoverageFee.Div(twelve).Round(0)
	}

	basePayment := annuityPayment(cascade.AmortizationPrincipal, params.monthlyRate, termMonths)
	monthly := basePayment.Add(life).Add(unemployment).Add(coverageMonthly).Round(0)

	recurring := basePayment.Add(life).Add(unemployment)
	total := downPayment.
		Add(recurring.Mul(decimal.NewFromInt(int64(termMonths)))).
		Add(cascade.CoverageFee).
		Round(0)

	return InstallmentBreakdown{
		LifeInsurance:         life,
		UnemploymentInsurance: unemployment,
		CoverageMonthly:       coverageMonthly,
		BasePayment:           basePayment,
		MonthlyPayment:        monthly,
		TotalProjectedCost:    total,
	}
}

func lifeInsuranceCost(principal decimal.Decimal, params entityParams) decimal.Decimal {
	if params.lifeMode == domain.InsurancePerMillion {
		return principal.Div(million).Mul(params.lifeRate).Ceil()
	}
	return principal.Mul(params.lifeRate).Div(hundred).Round(0)
}

func unemploymentInsuranceCost(principal decimal.Decimal, params entityParams) decimal.Decimal {
	switch params.unemploymentMode {
	case domain.InsuranceFixed:
		return params.unemploymentRate
	case domain.InsurancePercentage, domain.InsurancePerMillion:
		return principal.Mul(params.unemploymentRate).Div(hundred).Round(0)
	default:
		return decimal.Zero
	}
}

// annuityPayment is the standard fixed-payment amortization formula, with a
// straight-line fallback at zero interest. rate is the monthly percentage.
func annuityPayment(principal, rate decimal.Decimal, termMonths int) decimal.Decimal {
	if termMonths <= 0 {
		return decimal.Zero
	}
	n := decimal.NewFromInt(int64(termMonths))
	if !rate.IsPositive() {
		return principal.Div(n)
	}

	r := rate.Div(hundred)
	factor := decimal.NewFromInt(1).Add(r).Pow(n)
	return principal.Mul(r).Mul(factor).Div(factor.Sub(decimal.NewFromInt(1)))
}
