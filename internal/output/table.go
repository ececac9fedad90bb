package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/casamotor/cotizador/internal/domain"
)

// TableFormatter renders a plain-text quote summary for the console.
type TableFormatter struct{}

func (TableFormatter) Name() string { return "table" }

func (TableFormatter) Format(result *domain.QuoteResult) ([]byte, error) {
	buf := &bytes.Buffer{}

	fmt.Fprintf(buf, "QUOTE: %s", result.VehicleName)
	if result.VehicleName == "" {
		fmt.Fprintf(buf, "%s", result.VehicleID)
	}
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, strings.Repeat("=", 52))

	writeRow(buf, "Vehicle price", FormatCOP(result.VehiclePrice))
	if !result.SpecialAdjustment.IsZero() {
		writeRow(buf, "Special adjustment", FormatCOP(result.SpecialAdjustment))
	}
	writeRow(buf, "Registration", FormatCOP(result.RegistrationCost))
	writeRow(buf, "Documentation fee", FormatCOP(result.DocumentationFee))
	if !result.SOATPremium.IsZero() {
		writeRow(buf, "SOAT (informational)", FormatCOP(result.SOATPremium))
	}
	writeRow(buf, "Subtotal", FormatCOP(result.Subtotal))

	if !result.IsCredit {
		fmt.Fprintln(buf, strings.Repeat("-", 52))
		writeRow(buf, "TOTAL (cash)", FormatCOP(result.TotalCost))
		return buf.Bytes(), nil
	}

	fmt.Fprintln(buf, strings.Repeat("-", 52))
	if result.FinancialEntity != "" {
		writeRow(buf, "Financing entity", result.FinancialEntity)
	}
	writeRow(buf, "Down payment", FormatCOP(result.DownPayment))
	if !result.GuaranteeFundCost.IsZero() {
		writeRow(buf, "Guarantee fund (FNG)", FormatCOP(result.GuaranteeFundCost))
	}
	if !result.ManagementFee.IsZero() {
		writeRow(buf, "Management fee", FormatCOP(result.ManagementFee))
	}
	if !result.CoverageFee.IsZero() {
		writeRow(buf, "Coverage fee", FormatCOP(result.CoverageFee))
		writeRow(buf, "  billed months 1-12", FormatCOP(result.CoverageMonthly))
	}
	writeRow(buf, "Loan amount", FormatCOP(result.LoanAmount))
	writeRow(buf, "Life insurance /mo", FormatCOP(result.LifeInsurance))
	if !result.UnemploymentInsurance.IsZero() {
		writeRow(buf, "Unemployment ins. /mo", FormatCOP(result.UnemploymentInsurance))
	}
	writeRow(buf, "Term", fmt.Sprintf("%d months at %s%%/mo", result.TermMonths, result.MonthlyRate))

	fmt.Fprintln(buf, strings.Repeat("-", 52))
	writeRow(buf, "MONTHLY PAYMENT", FormatCOP(result.MonthlyPayment))
	if !result.CoverageMonthly.IsZero() {
		writeRow(buf, "  from month 13", FormatCOP(result.MonthlyPayment.Sub(result.CoverageMonthly)))
	}
	writeRow(buf, "PROJECTED TOTAL COST", FormatCOP(result.TotalCost))

	return buf.Bytes(), nil
}

func writeRow(buf *bytes.Buffer, label, value string) {
	fmt.Fprintf(buf, "%-28s %22s\n", label, value)
}
