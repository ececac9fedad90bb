package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/casamotor/cotizador/internal/calculation"
	"github.com/casamotor/cotizador/internal/config"
	"github.com/casamotor/cotizador/internal/domain"
	"github.com/casamotor/cotizador/internal/output"
	"github.com/casamotor/cotizador/internal/tui"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "cotizador %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(os.Stdout, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:   "cotizador",
	Short: "Motorcycle dealership quote calculator",
	Long:  "Cash and credit quoting for the dealership catalog: registration costs, financing cascade, insurances and monthly payments",
}

var quoteCmd = &cobra.Command{
	Use:   "quote [catalog-file]",
	Short: "Compute a quote for a catalog vehicle",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		catalogFile := args[0]

		parser := config.NewInputParser()
		catalog, err := parser.LoadFromFile(catalogFile)
		if err != nil {
			log.Fatal(err)
		}

		vehicleID, _ := cmd.Flags().GetString("vehicle")
		scenarioName, _ := cmd.Flags().GetString("scenario")
		entityName, _ := cmd.Flags().GetString("entity")
		method, _ := cmd.Flags().GetString("method")
		term, _ := cmd.Flags().GetInt("term")
		downPaymentStr, _ := cmd.Flags().GetString("down-payment")

		vehicle, err := catalog.FindVehicle(vehicleID)
		if err != nil {
			log.Fatal(err)
		}
		scenario, err := catalog.FindScenario(scenarioName)
		if err != nil {
			log.Fatal(err)
		}
		entity, err := catalog.FindEntity(entityName)
		if err != nil {
			log.Fatal(err)
		}
		downPayment, err := decimal.NewFromString(downPaymentStr)
		if err != nil {
			log.Fatalf("invalid down payment %q: %v", downPaymentStr, err)
		}

		req := calculation.QuoteRequest{
			Vehicle:       vehicle,
			Scenario:      scenario,
			RateBands:     catalog.SOATRates,
			Matrix:        catalog.RegistrationMatrix,
			Entity:        entity,
			PaymentMethod: domain.PaymentMethod(method),
			TermMonths:    term,
			DownPayment:   downPayment,
		}
		if err := calculation.ValidateRequest(req); err != nil {
			log.Fatal(err)
		}

		engine := calculation.NewEngine()
		debugMode, _ := cmd.Flags().GetBool("debug")
		if debugMode {
			engine.SetLogger(simpleCLILogger{})
		}

		result, err := engine.ComputeQuote(req)
		if err != nil {
			log.Fatal(err)
		}

		outputFormat, _ := cmd.Flags().GetString("format")
		f := output.GetFormatterByName(outputFormat)
		if f == nil {
			log.Fatalf("unsupported format %q, available: %v", outputFormat, output.FormatterNames())
		}
		data, err := f.Format(result)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [catalog-file]",
	Short: "Validate a catalog file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		catalogFile := args[0]

		parser := config.NewInputParser()
		catalog, err := parser.LoadFromFile(catalogFile)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Catalog file %s is valid: %d vehicles, %d scenarios, %d entities\n",
			catalogFile, len(catalog.Vehicles), len(catalog.Scenarios), len(catalog.Entities))
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui [catalog-file]",
	Short: "Interactive quoting screen",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p := tea.NewProgram(tui.NewModel(args[0]), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	quoteCmd.Flags().String("vehicle", "", "catalog vehicle ID")
	quoteCmd.Flags().String("scenario", "", "scenario (city/financing context) name")
	quoteCmd.Flags().String("entity", "", "financial entity name (credit only)")
	quoteCmd.Flags().String("method", "credit", "payment method: credit or cash")
	quoteCmd.Flags().Int("term", 36, "term in months (credit only)")
	quoteCmd.Flags().String("down-payment", "0", "down payment in pesos (credit only)")
	quoteCmd.Flags().String("format", "table", "output format: table, json or csv")
	quoteCmd.Flags().Bool("debug", false, "enable debug logging")
	_ = quoteCmd.MarkFlagRequired("vehicle")
	_ = quoteCmd.MarkFlagRequired("scenario")

	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
