package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/casamotor/cotizador/internal/calculation"
	"github.com/casamotor/cotizador/internal/config"
	"github.com/casamotor/cotizador/internal/domain"
)

const (
	focusDownPayment = iota
	focusTerm
)

// CatalogLoadedMsg carries the parsed catalog into the model.
type CatalogLoadedMsg struct {
	Catalog *domain.Catalog
}

// ErrorMsg carries a load failure.
type ErrorMsg struct {
	Err error
}

// Model is the interactive quoting screen: pick a vehicle, scenario, entity
// and payment method, drag down payment and term, watch the quote update.
type Model struct {
	catalogPath string
	catalog     *domain.Catalog
	engine      *calculation.Engine

	vehicleIdx  int
	scenarioIdx int
	entityIdx   int // -1 means no entity (all defaults)
	method      domain.PaymentMethod

	downSlider *Slider
	termSlider *Slider
	focused    int

	result *domain.QuoteResult
	err    error

	keys keyMap
	help help.Model

	width  int
	height int
}

// NewModel creates the quoting screen for a catalog file.
func NewModel(catalogPath string) Model {
	return Model{
		catalogPath: catalogPath,
		engine:      calculation.NewEngine(),
		entityIdx:   -1,
		method:      domain.PaymentCredit,
		downSlider:  NewSlider("Down payment", 0, 0, 1, 100000),
		termSlider:  NewSlider("Term (months)", 36, 6, 72, 6),
		keys:        defaultKeyMap(),
		help:        help.New(),
		width:       80,
		height:      24,
	}
}

// Init loads the catalog (required by tea.Model).
func (m Model) Init() tea.Cmd {
	return loadCatalogCmd(m.catalogPath)
}

func loadCatalogCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		catalog, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return CatalogLoadedMsg{Catalog: catalog}
	}
}

// Update handles messages (required by tea.Model).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case CatalogLoadedMsg:
		m.catalog = msg.Catalog
		if len(m.catalog.Entities) > 0 {
			m.entityIdx = 0
		}
		m.resetDownPaymentRange()
		m.recompute()
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Navigate):
		if m.focused == focusDownPayment {
			m.focused = focusTerm
		} else {
			m.focused = focusDownPayment
		}

	case key.Matches(msg, m.keys.Adjust):
		if m.catalog == nil {
			return m, nil
		}
		slider := m.downSlider
		if m.focused == focusTerm {
			slider = m.termSlider
		}
		if msg.String() == "right" || msg.String() == "l" {
			slider.Increment()
		} else {
			slider.Decrement()
		}
		m.recompute()

	case key.Matches(msg, m.keys.Vehicle):
		if m.catalog != nil && len(m.catalog.Vehicles) > 0 {
			m.vehicleIdx = (m.vehicleIdx + 1) % len(m.catalog.Vehicles)
			m.resetDownPaymentRange()
			m.recompute()
		}

	case key.Matches(msg, m.keys.Scenario):
		if m.catalog != nil && len(m.catalog.Scenarios) > 0 {
			m.scenarioIdx = (m.scenarioIdx + 1) % len(m.catalog.Scenarios)
			m.recompute()
		}

	case key.Matches(msg, m.keys.Entity):
		if m.catalog != nil && len(m.catalog.Entities) > 0 {
			// cycle entities, with -1 as the "no entity" position
			m.entityIdx++
			if m.entityIdx >= len(m.catalog.Entities) {
				m.entityIdx = -1
			}
			m.recompute()
		}

	case key.Matches(msg, m.keys.Method):
		if m.method == domain.PaymentCredit {
			m.method = domain.PaymentCash
		} else {
			m.method = domain.PaymentCredit
		}
		m.recompute()
	}
	return m, nil
}

// resetDownPaymentRange rescales the down payment slider to the selected
// vehicle: up to 90% of the price in 5% steps.
func (m *Model) resetDownPaymentRange() {
	vehicle := m.currentVehicle()
	if vehicle == nil {
		return
	}
	price := vehicle.Price.InexactFloat64()
	m.downSlider.Step = price * 0.05
	m.downSlider.SetRange(0, price*0.9)
}

func (m *Model) currentVehicle() *domain.Vehicle {
	if m.catalog == nil || len(m.catalog.Vehicles) == 0 {
		return nil
	}
	return &m.catalog.Vehicles[m.vehicleIdx]
}

func (m *Model) currentScenario() *domain.Scenario {
	if m.catalog == nil || len(m.catalog.Scenarios) == 0 {
		return nil
	}
	return &m.catalog.Scenarios[m.scenarioIdx]
}

func (m *Model) currentEntity() *domain.FinancialEntity {
	if m.catalog == nil || m.entityIdx < 0 || m.entityIdx >= len(m.catalog.Entities) {
		return nil
	}
	return &m.catalog.Entities[m.entityIdx]
}

// recompute re-runs the engine with the current selections. The engine is
// pure and cheap, so every keystroke gets a fresh quote.
func (m *Model) recompute() {
	vehicle := m.currentVehicle()
	scenario := m.currentScenario()
	if vehicle == nil || scenario == nil {
		return
	}

	result, err := m.engine.ComputeQuote(calculation.QuoteRequest{
		Vehicle:       vehicle,
		Scenario:      scenario,
		RateBands:     m.catalog.SOATRates,
		Matrix:        m.catalog.RegistrationMatrix,
		Entity:        m.currentEntity(),
		PaymentMethod: m.method,
		TermMonths:    int(m.termSlider.Value),
		DownPayment:   decimal.NewFromFloat(m.downSlider.Value).Round(0),
	})
	if err != nil {
		m.err = err
		return
	}
	m.result = result
}
