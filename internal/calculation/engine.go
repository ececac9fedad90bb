package calculation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/casamotor/cotizador/internal/domain"
)

// QuoteRequest carries every input of a single quote calculation. All fields
// are read-only snapshots; the engine holds no state between calls.
type QuoteRequest struct {
	Vehicle       *domain.Vehicle
	Scenario      *domain.Scenario
	RateBands     []domain.RateBand
	Matrix        []domain.MatrixRow
	Entity        *domain.FinancialEntity // nil means all-defaults financing
	PaymentMethod domain.PaymentMethod
	TermMonths    int
	DownPayment   decimal.Decimal

	// AsOf anchors the stamp-tax month arithmetic; the zero value means now.
	AsOf time.Time
}

// ValidateRequest rejects the input conditions the engine itself tolerates
// but a caller must not display: non-positive price, negative term, down
// payment above the vehicle price. Callers run this before ComputeQuote.
func ValidateRequest(req QuoteRequest) error {
	if req.Vehicle == nil {
		return fmt.Errorf("quote request has no vehicle")
	}
	if req.Scenario == nil {
		return fmt.Errorf("quote request has no scenario")
	}
	if !req.Vehicle.Price.IsPositive() {
		return fmt.Errorf("vehicle %s has non-positive price %s", req.Vehicle.ID, req.Vehicle.Price)
	}
	if req.TermMonths < 0 {
		return fmt.Errorf("term months must not be negative, got %d", req.TermMonths)
	}
	if req.DownPayment.IsNegative() {
		return fmt.Errorf("down payment must not be negative, got %s", req.DownPayment)
	}
	if req.DownPayment.GreaterThan(req.Vehicle.Price) {
		return fmt.Errorf("down payment %s exceeds vehicle price %s", req.DownPayment, req.Vehicle.Price)
	}
	return nil
}

// Engine computes quotes. It is stateless and safe for concurrent use.
type Engine struct {
	Logger Logger
}

// NewEngine creates a quote engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger installs a diagnostic logger; nil restores the no-op logger.
func (e *Engine) SetLogger(logger Logger) {
	if logger == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = logger
}

// ComputeQuote runs the full pipeline: registration resolution, capital
// cascade, insurance and amortization, assembly. Missing configuration
// degrades to the documented fallbacks; the only errors are nil vehicle or
// scenario.
func (e *Engine) ComputeQuote(req QuoteRequest) (*domain.QuoteResult, error) {
	if req.Vehicle == nil || req.Scenario == nil {
		return nil, fmt.Errorf("quote request needs a vehicle and a scenario")
	}

	asOf := req.AsOf
	if asOf.IsZero() {
		asOf = time.Now()
	}

	displacement := req.Vehicle.DisplacementCC
	if displacement <= 0 {
		displacement = defaultDisplacementCC
	}

	registration := ResolveRegistrationCost(req.Vehicle, req.Scenario, req.PaymentMethod, req.Matrix, asOf)
	soat := ResolveSOATPremium(displacement, req.RateBands)

	subtotal := req.Vehicle.Price.
		Add(req.Vehicle.SpecialAdjustment).
		Add(registration).
		Add(req.Scenario.DocumentationFee)

	result := &domain.QuoteResult{
		VehicleID:         req.Vehicle.ID,
		VehicleName:       req.Vehicle.Name,
		VehiclePrice:      req.Vehicle.Price,
		RegistrationCost:  registration,
		DocumentationFee:  req.Scenario.DocumentationFee,
		SpecialAdjustment: req.Vehicle.SpecialAdjustment,
		SOATPremium:       soat,
		Subtotal:          subtotal,
	}

	if req.PaymentMethod != domain.PaymentCredit {
		result.TotalCost = subtotal
		return result, nil
	}

	params := resolveEntity(req.Entity)
	e.Logger.Debugf("credit quote for %s in %s: entity=%q rate=%s%%/mo term=%d",
		req.Vehicle.ID, req.Scenario.Name, params.name, params.monthlyRate, req.TermMonths)

	cascade := BuildCapitalCascade(req.Vehicle, registration, req.Scenario.DocumentationFee, req.DownPayment, req.Entity)
	e.Logger.Debugf("capital cascade: base=%s fng=%s mgmt=%s coverage=%s financed=%s",
		cascade.Base, cascade.GuaranteeFundCost, cascade.ManagementFee, cascade.CoverageFee, cascade.FinancedPrincipal)

	installment := ComputeInstallment(cascade, req.Entity, req.TermMonths, req.DownPayment)

	result.IsCredit = true
	result.DownPayment = req.DownPayment
	result.LoanAmount = cascade.FinancedPrincipal
	result.GuaranteeFundCost = cascade.GuaranteeFundCost
	result.ManagementFee = cascade.ManagementFee
	result.CoverageFee = cascade.CoverageFee
	result.CoverageMonthly = installment.CoverageMonthly
	result.LifeInsurance = installment.LifeInsurance
	result.UnemploymentInsurance = installment.UnemploymentInsurance
	result.MonthlyPayment = installment.MonthlyPayment
	result.TotalCost = installment.TotalProjectedCost
	result.TermMonths = req.TermMonths
	result.MonthlyRate = params.monthlyRate
	result.FinancialEntity = params.name
	return result, nil
}
