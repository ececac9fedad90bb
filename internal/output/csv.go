package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/casamotor/cotizador/internal/domain"
)

// CSVFormatter emits a single-row CSV, handy for appending quotes to a sheet.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(result *domain.QuoteResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{
		"VehicleID", "VehicleName", "Price", "Registration", "DocumentationFee",
		"SOATPremium", "Subtotal", "DownPayment", "LoanAmount", "GuaranteeFund",
		"ManagementFee", "CoverageFee", "CoverageMonthly", "LifeInsurance",
		"UnemploymentInsurance", "MonthlyPayment", "TermMonths", "MonthlyRate",
		"FinancialEntity", "IsCredit", "TotalCost",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	row := []string{
		result.VehicleID,
		result.VehicleName,
		result.VehiclePrice.StringFixed(0),
		result.RegistrationCost.StringFixed(0),
		result.DocumentationFee.StringFixed(0),
		result.SOATPremium.StringFixed(0),
		result.Subtotal.StringFixed(0),
		result.DownPayment.StringFixed(0),
		result.LoanAmount.StringFixed(0),
		result.GuaranteeFundCost.StringFixed(0),
		result.ManagementFee.StringFixed(0),
		result.CoverageFee.StringFixed(0),
		result.CoverageMonthly.StringFixed(0),
		result.LifeInsurance.StringFixed(0),
		result.UnemploymentInsurance.StringFixed(0),
		result.MonthlyPayment.StringFixed(0),
		strconv.Itoa(result.TermMonths),
		result.MonthlyRate.String(),
		result.FinancialEntity,
		strconv.FormatBool(result.IsCredit),
		result.TotalCost.StringFixed(0),
	}
	if err := w.Write(row); err != nil {
		return nil, err
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
