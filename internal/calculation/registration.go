package calculation

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/casamotor/cotizador/internal/domain"
)

const (
	// defaultDisplacementCC stands in for vehicles whose displacement is
	// unknown. 125cc is the most common class in the catalog and sits just
	// below the stamp-tax threshold.
	defaultDisplacementCC = 125

	// stampTaxDisplacementCC is the displacement above which cash purchases
	// owe the departmental stamp tax.
	stampTaxDisplacementCC = 125
)

// stampTaxAnnualRate is the annual stamp-tax rate, pro-rated by the months
// left in the calendar year.
var stampTaxAnnualRate = decimal.NewFromFloat(0.015)

// stampTaxFixedCharge is the flat administrative charge collected together
// with the stamp tax.
var stampTaxFixedCharge = decimal.NewFromInt(50000)

// cashColumnMatches maps recognized city substrings to cash matrix columns,
// in fixed priority order: the first substring found in the scenario name
// wins.
var cashColumnMatches = []struct {
	substr string
	column domain.RegistrationColumn
}{
	{"santa marta", domain.ColumnCashSantaMarta},
	{"cienaga", domain.ColumnCashCienaga},
	{"fundacion", domain.ColumnCashFundacion},
	{"aracataca", domain.ColumnCashAracataca},
}

// registrationColumn selects which matrix column a lookup reads, from the
// scenario name and payment method. A cash scenario naming none of the known
// cities falls back to the credit-general column; that quirk matches the
// matrices the dealership actually loads, where the credit column doubles as
// the out-of-town cash price.
func registrationColumn(scenarioName string, method domain.PaymentMethod) domain.RegistrationColumn {
	name := domain.NormalizePlaceName(scenarioName)

	if method == domain.PaymentCash {
		for _, m := range cashColumnMatches {
			if strings.Contains(name, m.substr) {
				return m.column
			}
		}
		return domain.ColumnCreditGeneral
	}

	if strings.Contains(name, "santa marta") {
		return domain.ColumnCreditSantaMarta
	}
	return domain.ColumnCreditGeneral
}

// ResolveRegistrationCost resolves the one-time titling cost for a vehicle in
// a given scenario. Matrix rows matching one of the vehicle's categories are
// preferred over rows matching its displacement interval; across all candidate
// categories the highest resolved value wins. When nothing matches, the
// scenario's legacy flat fee applies. Cash purchases above the stamp-tax
// displacement additionally owe the pro-rated stamp tax as of asOf.
func ResolveRegistrationCost(vehicle *domain.Vehicle, scenario *domain.Scenario, method domain.PaymentMethod, matrix []domain.MatrixRow, asOf time.Time) decimal.Decimal {
	if len(matrix) == 0 {
		return scenario.LegacyRegistrationCost
	}

	displacement := vehicle.DisplacementCC
	if displacement <= 0 {
		displacement = defaultDisplacementCC
	}

	column := registrationColumn(scenario.Name, method)

	var best decimal.Decimal
	found := false
	keep := func(amount decimal.Decimal) {
		if !found || amount.GreaterThanOrEqual(best) {
			best = amount
			found = true
		}
	}

	for _, category := range vehicle.CandidateCategories() {
		matchedCategory := false
		for _, row := range matrix {
			if row.MatchesCategory(category) {
				matchedCategory = true
				keep(row.Amount(column))
			}
		}
		if matchedCategory {
			continue
		}
		for _, row := range matrix {
			if row.ContainsDisplacement(displacement) {
				keep(row.Amount(column))
			}
		}
	}

	if !found {
		best = scenario.LegacyRegistrationCost
	}

	if method == domain.PaymentCash && displacement > stampTaxDisplacementCC {
		best = best.Add(stampTaxAddendum(vehicle.Price, asOf))
	}
	return best
}

// stampTaxAddendum pro-rates the annual stamp tax over the months left in the
// calendar year (January counts 11, December 0) and adds the flat charge.
func stampTaxAddendum(price decimal.Decimal, asOf time.Time) decimal.Decimal {
	monthsRemaining := 12 - int(asOf.Month())
	monthly := price.Mul(stampTaxAnnualRate).Div(decimal.NewFromInt(12))
	return monthly.Mul(decimal.NewFromInt(int64(monthsRemaining))).Add(stampTaxFixedCharge)
}
