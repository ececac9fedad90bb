package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/casamotor/cotizador/internal/domain"
)

func boolPtr(b bool) *bool { return &b }

func cascadeVehicle() *domain.Vehicle {
	return &domain.Vehicle{
		ID:             "xtz-150",
		Price:          decimal.NewFromInt(11450000),
		DisplacementCC: 149,
	}
}

func TestBuildCapitalCascade_AllLayersInOrder(t *testing.T) {
	entity := &domain.FinancialEntity{
		Name:              "Brilla",
		GuaranteeFundRate: decimal.NewFromInt(10),
		ManagementFeeRate: decimal.NewFromInt(5),
		CoverageFeeRate:   decimal.NewFromInt(2),
	}
	vehicle := &domain.Vehicle{Price: decimal.NewFromInt(1000000)}

	cascade := BuildCapitalCascade(vehicle, decimal.Zero, decimal.Zero, decimal.Zero, entity)

	// base 1,000,000 -> fund 100,000 (applied once, not compounded)
	assert.True(t, cascade.GuaranteeFundCost.Equal(decimal.NewFromInt(100000)), "fund: %s", cascade.GuaranteeFundCost)
	assert.True(t, cascade.IntermediateBase.Equal(decimal.NewFromInt(1100000)), "intermediate: %s", cascade.IntermediateBase)
	// management on intermediate: 55,000
	assert.True(t, cascade.ManagementFee.Equal(decimal.NewFromInt(55000)), "management: %s", cascade.ManagementFee)
	assert.True(t, cascade.PreCoverageBase.Equal(decimal.NewFromInt(1155000)), "pre-coverage: %s", cascade.PreCoverageBase)
	// coverage on pre-coverage base: 23,100
	assert.True(t, cascade.CoverageFee.Equal(decimal.NewFromInt(23100)), "coverage: %s", cascade.CoverageFee)
	assert.True(t, cascade.FinancedPrincipal.Equal(decimal.NewFromInt(1178100)), "financed: %s", cascade.FinancedPrincipal)
	// coverage is billed separately, so the annuity runs on the pre-coverage base
	assert.True(t, cascade.AmortizationPrincipal.Equal(decimal.NewFromInt(1155000)), "amortization: %s", cascade.AmortizationPrincipal)
}

func TestBuildCapitalCascade_PrincipalInvariant(t *testing.T) {
	entities := []*domain.FinancialEntity{
		nil,
		{GuaranteeFundRate: decimal.NewFromFloat(4.5)},
		{ManagementFeeRate: decimal.NewFromInt(6)},
		{CoverageFeeRate: decimal.NewFromInt(3)},
		{
			GuaranteeFundRate: decimal.NewFromFloat(4.5),
			ManagementFeeRate: decimal.NewFromInt(6),
			CoverageFeeRate:   decimal.NewFromInt(3),
		},
		{
			CoverageFeeRate:      decimal.NewFromFloat(2.7),
			FinancesRegistration: boolPtr(false),
		},
	}

	for _, entity := range entities {
		cascade := BuildCapitalCascade(cascadeVehicle(),
			decimal.NewFromInt(840000), decimal.NewFromInt(120000), decimal.NewFromInt(2000000), entity)

		sum := cascade.AmortizationPrincipal.Add(cascade.CoverageFee)
		assert.True(t, cascade.FinancedPrincipal.Equal(sum),
			"financed principal %s must equal amortization %s + coverage %s",
			cascade.FinancedPrincipal, cascade.AmortizationPrincipal, cascade.CoverageFee)
	}
}

func TestBuildCapitalCascade_NoLayersReducesToPlainSubtraction(t *testing.T) {
	vehicle := &domain.Vehicle{
		Price:             decimal.NewFromInt(11450000),
		SpecialAdjustment: decimal.NewFromInt(-150000),
	}

	cascade := BuildCapitalCascade(vehicle,
		decimal.NewFromInt(840000), decimal.NewFromInt(120000), decimal.NewFromInt(2000000), nil)

	// price + adjustment - down payment + registration + doc fee
	want := decimal.NewFromInt(11450000 - 150000 - 2000000 + 840000 + 120000)
	assert.True(t, cascade.FinancedPrincipal.Equal(want), "got %s, want %s", cascade.FinancedPrincipal, want)
	assert.True(t, cascade.AmortizationPrincipal.Equal(want), "no coverage fee: amortization equals financed")
	assert.True(t, cascade.GuaranteeFundCost.IsZero())
	assert.True(t, cascade.ManagementFee.IsZero())
	assert.True(t, cascade.CoverageFee.IsZero())
}

func TestBuildCapitalCascade_RegistrationNotFolded(t *testing.T) {
	entity := &domain.FinancialEntity{FinancesRegistration: boolPtr(false)}

	cascade := BuildCapitalCascade(cascadeVehicle(),
		decimal.NewFromInt(840000), decimal.NewFromInt(120000), decimal.NewFromInt(2000000), entity)

	want := decimal.NewFromInt(11450000 - 2000000)
	assert.True(t, cascade.Base.Equal(want), "registration must stay out of the base, got %s", cascade.Base)
}

func TestBuildCapitalCascade_LayersRoundIndependently(t *testing.T) {
	entity := &domain.FinancialEntity{
		GuaranteeFundRate: decimal.NewFromFloat(4.55),
		ManagementFeeRate: decimal.NewFromFloat(3.33),
	}
	vehicle := &domain.Vehicle{Price: decimal.NewFromInt(1000001)}

	cascade := BuildCapitalCascade(vehicle, decimal.Zero, decimal.Zero, decimal.Zero, entity)

	// 1,000,001 * 4.55% = 45,500.0455 -> 45,500
	assert.True(t, cascade.GuaranteeFundCost.Equal(decimal.NewFromInt(45500)), "fund: %s", cascade.GuaranteeFundCost)
	// intermediate 1,045,501 * 3.33% = 34,815.1833 -> 34,815
	assert.True(t, cascade.ManagementFee.Equal(decimal.NewFromInt(34815)), "management: %s", cascade.ManagementFee)
	assert.True(t, cascade.FinancedPrincipal.Equal(decimal.NewFromInt(1080316)), "financed: %s", cascade.FinancedPrincipal)
}
