package calculation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casamotor/cotizador/internal/domain"
)

func engineRequest(method domain.PaymentMethod, entity *domain.FinancialEntity) QuoteRequest {
	return QuoteRequest{
		Vehicle: &domain.Vehicle{
			ID:             "nkd-125",
			Name:           "NKD 125",
			Price:          decimal.NewFromInt(6890000),
			DisplacementCC: 125,
			Category:       "urbano/trabajo",
		},
		Scenario: &domain.Scenario{
			Name:                   "Santa Marta, Crédito",
			DocumentationFee:       decimal.NewFromInt(120000),
			LegacyRegistrationCost: decimal.NewFromInt(650000),
		},
		RateBands: []domain.RateBand{
			{MinCC: 100, MaxCC: 199, Premium: decimal.NewFromInt(335000)},
		},
		Matrix:        testMatrix(),
		Entity:        entity,
		PaymentMethod: method,
		TermMonths:    36,
		DownPayment:   decimal.NewFromInt(1500000),
		AsOf:          time.Date(2026, time.July, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestNewEngine(t *testing.T) {
	engine := NewEngine()

	assert.NotNil(t, engine, "Should create engine")
	assert.NotNil(t, engine.Logger, "Should initialize logger")
}

func TestEngine_SetLogger(t *testing.T) {
	engine := NewEngine()

	engine.SetLogger(nil)

	assert.NotNil(t, engine.Logger, "Should not be nil")
	assert.IsType(t, NopLogger{}, engine.Logger, "Should be no-op logger")
}

func TestComputeQuote_CashPath(t *testing.T) {
	engine := NewEngine()
	req := engineRequest(domain.PaymentCash, nil)
	req.Scenario.Name = "Santa Marta, Contado"

	result, err := engine.ComputeQuote(req)
	require.NoError(t, err)

	assert.False(t, result.IsCredit)
	// cash Santa Marta column of the 100-125 row, no stamp tax at 125cc
	assert.True(t, result.RegistrationCost.Equal(decimal.NewFromInt(770000)), "registration: %s", result.RegistrationCost)
	want := decimal.NewFromInt(6890000 + 770000 + 120000)
	assert.True(t, result.Subtotal.Equal(want), "subtotal: %s", result.Subtotal)
	assert.True(t, result.TotalCost.Equal(want), "cash total equals subtotal")

	// credit-only fields stay zero
	assert.True(t, result.LoanAmount.IsZero())
	assert.True(t, result.MonthlyPayment.IsZero())
	assert.True(t, result.GuaranteeFundCost.IsZero())
	assert.True(t, result.CoverageFee.IsZero())
	assert.Equal(t, 0, result.TermMonths)
}

func TestComputeQuote_CreditPath(t *testing.T) {
	entity := &domain.FinancialEntity{
		Name:                "Financiera Casa Motor",
		MonthlyInterestRate: decimal.NewFromFloat(2.2),
		GuaranteeFundRate:   decimal.NewFromFloat(4.5),
	}
	engine := NewEngine()
	req := engineRequest(domain.PaymentCredit, entity)

	result, err := engine.ComputeQuote(req)
	require.NoError(t, err)

	assert.True(t, result.IsCredit)
	assert.Equal(t, "Financiera Casa Motor", result.FinancialEntity)
	assert.Equal(t, 36, result.TermMonths)
	assert.True(t, result.MonthlyRate.Equal(decimal.NewFromFloat(2.2)))

	// credit Santa Marta column
	assert.True(t, result.RegistrationCost.Equal(decimal.NewFromInt(840000)), "registration: %s", result.RegistrationCost)

	// base = price - down + registration + doc fee; fund = 4.5% rounded
	base := decimal.NewFromInt(6890000 - 1500000 + 840000 + 120000)
	fund := base.Mul(decimal.NewFromFloat(4.5)).Div(decimal.NewFromInt(100)).Round(0)
	assert.True(t, result.GuaranteeFundCost.Equal(fund), "fund: %s", result.GuaranteeFundCost)
	assert.True(t, result.LoanAmount.Equal(base.Add(fund)), "loan: %s", result.LoanAmount)

	assert.True(t, result.MonthlyPayment.IsPositive())
	assert.True(t, result.TotalCost.GreaterThan(result.DownPayment))
	assert.True(t, result.SOATPremium.Equal(decimal.NewFromInt(335000)))
}

func TestComputeQuote_NilEntityUsesDefaults(t *testing.T) {
	engine := NewEngine()
	req := engineRequest(domain.PaymentCredit, nil)

	result, err := engine.ComputeQuote(req)
	require.NoError(t, err, "missing entity must never fail a credit quote")

	assert.True(t, result.IsCredit)
	assert.Equal(t, "", result.FinancialEntity)
	assert.True(t, result.MonthlyRate.Equal(decimal.NewFromFloat(2.5)), "house default rate, got %s", result.MonthlyRate)
	assert.True(t, result.GuaranteeFundCost.IsZero())
	assert.True(t, result.ManagementFee.IsZero())
	assert.True(t, result.CoverageFee.IsZero())
	assert.True(t, result.LifeInsurance.IsPositive(), "default life insurance applies")
	assert.True(t, result.MonthlyPayment.IsPositive())
}

func TestComputeQuote_CoverageFeeSplitsOverTwelveMonths(t *testing.T) {
	entity := &domain.FinancialEntity{
		Name:            "Brilla",
		CoverageFeeRate: decimal.NewFromInt(3),
	}
	result, err := NewEngine().ComputeQuote(engineRequest(domain.PaymentCredit, entity))
	require.NoError(t, err)

	assert.True(t, result.CoverageFee.IsPositive())
	assert.True(t, result.CoverageMonthly.Equal(result.CoverageFee.Div(decimal.NewFromInt(12)).Round(0)))
	// loan amount carries the coverage fee even though it is not amortized
	assert.True(t, result.LoanAmount.Sub(result.CoverageFee).IsPositive())
}

func TestComputeQuote_Deterministic(t *testing.T) {
	engine := NewEngine()
	req := engineRequest(domain.PaymentCredit, &domain.FinancialEntity{
		Name:              "Brilla",
		ManagementFeeRate: decimal.NewFromInt(6),
		CoverageFeeRate:   decimal.NewFromInt(3),
	})

	first, err := engine.ComputeQuote(req)
	require.NoError(t, err)
	second, err := engine.ComputeQuote(req)
	require.NoError(t, err)

	assert.Equal(t, first, second, "same inputs must produce the same quote")
}

func TestComputeQuote_MissingVehicleOrScenario(t *testing.T) {
	engine := NewEngine()

	_, err := engine.ComputeQuote(QuoteRequest{Scenario: &domain.Scenario{Name: "x"}})
	assert.Error(t, err)

	_, err = engine.ComputeQuote(QuoteRequest{Vehicle: &domain.Vehicle{ID: "x"}})
	assert.Error(t, err)
}

func TestValidateRequest(t *testing.T) {
	base := engineRequest(domain.PaymentCredit, nil)

	t.Run("valid request passes", func(t *testing.T) {
		assert.NoError(t, ValidateRequest(base))
	})

	t.Run("negative term", func(t *testing.T) {
		req := base
		req.TermMonths = -1
		assert.Error(t, ValidateRequest(req))
	})

	t.Run("negative down payment", func(t *testing.T) {
		req := base
		req.DownPayment = decimal.NewFromInt(-1)
		assert.Error(t, ValidateRequest(req))
	})

	t.Run("down payment above price", func(t *testing.T) {
		req := base
		req.DownPayment = decimal.NewFromInt(7000000)
		assert.Error(t, ValidateRequest(req))
	})

	t.Run("non-positive price", func(t *testing.T) {
		req := base
		vehicle := *req.Vehicle
		vehicle.Price = decimal.Zero
		req.Vehicle = &vehicle
		assert.Error(t, ValidateRequest(req))
	})
}
