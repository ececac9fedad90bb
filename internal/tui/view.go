package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/casamotor/cotizador/internal/output"
)

// View renders the screen (required by tea.Model).
func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render("error: " + m.err.Error())
	}
	if m.catalog == nil {
		return appStyle.Render("Loading catalog...")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("COTIZADOR"))
	b.WriteString("  ")
	b.WriteString(subtitleStyle.Render(m.catalogPath))
	b.WriteString("\n\n")

	left := m.renderSelections()
	right := m.renderQuote()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right))

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return appStyle.Render(b.String())
}

func (m Model) renderSelections() string {
	var b strings.Builder

	vehicle := m.currentVehicle()
	scenario := m.currentScenario()

	b.WriteString(labelStyle.Render("Vehicle   "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%s (%dcc)", vehicle.Name, vehicle.DisplacementCC)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Scenario  "))
	b.WriteString(valueStyle.Render(scenario.Name))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Entity    "))
	if entity := m.currentEntity(); entity != nil {
		b.WriteString(valueStyle.Render(entity.Name))
	} else {
		b.WriteString(subtitleStyle.Render("(house defaults)"))
	}
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Method    "))
	b.WriteString(valueStyle.Render(string(m.method)))
	b.WriteString("\n\n")

	m.downSlider.IsFocused = m.focused == focusDownPayment
	m.termSlider.IsFocused = m.focused == focusTerm
	b.WriteString(m.downSlider.Render())
	b.WriteString("\n\n")
	b.WriteString(m.termSlider.Render())

	style := panelStyle
	if m.focused == focusDownPayment || m.focused == focusTerm {
		style = focusedPanelStyle
	}
	return style.Width(46).Render(b.String())
}

func (m Model) renderQuote() string {
	if m.result == nil {
		return panelStyle.Render("no quote yet")
	}

	var b strings.Builder
	r := m.result

	row := func(label string, value string) {
		b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render(fmt.Sprintf("%-22s", label)), value))
	}

	row("Subtotal", valueStyle.Render(output.FormatCOP(r.Subtotal)))
	row("Registration", valueStyle.Render(output.FormatCOP(r.RegistrationCost)))
	if !r.SOATPremium.IsZero() {
		row("SOAT", valueStyle.Render(output.FormatCOP(r.SOATPremium)))
	}

	if r.IsCredit {
		row("Loan amount", valueStyle.Render(output.FormatCOP(r.LoanAmount)))
		if !r.GuaranteeFundCost.IsZero() {
			row("Guarantee fund", valueStyle.Render(output.FormatCOP(r.GuaranteeFundCost)))
		}
		if !r.ManagementFee.IsZero() {
			row("Management fee", valueStyle.Render(output.FormatCOP(r.ManagementFee)))
		}
		if !r.CoverageFee.IsZero() {
			row("Coverage fee", valueStyle.Render(output.FormatCOP(r.CoverageFee)))
		}
		b.WriteString("\n")
		row("MONTHLY PAYMENT", paymentStyle.Render(output.FormatCOP(r.MonthlyPayment)))
		if !r.CoverageMonthly.IsZero() {
			row("  from month 13", valueStyle.Render(output.FormatCOP(r.MonthlyPayment.Sub(r.CoverageMonthly))))
		}
		row("Projected total", valueStyle.Render(output.FormatCOP(r.TotalCost)))
	} else {
		b.WriteString("\n")
		row("TOTAL (cash)", paymentStyle.Render(output.FormatCOP(r.TotalCost)))
	}

	return panelStyle.Width(44).Render(b.String())
}
