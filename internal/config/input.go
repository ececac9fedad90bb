package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/casamotor/cotizador/internal/domain"
)

// InputParser handles parsing of catalog configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a quoting catalog from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Catalog, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var catalog domain.Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateCatalog(&catalog); err != nil {
		return nil, fmt.Errorf("catalog validation failed: %w", err)
	}

	return &catalog, nil
}

// ValidateCatalog checks the loaded catalog for the inconsistencies the
// engine cannot degrade around. Incomplete rate tables and matrices are
// allowed on purpose: the engine has documented fallbacks for those.
func (ip *InputParser) ValidateCatalog(catalog *domain.Catalog) error {
	if len(catalog.Vehicles) == 0 {
		return fmt.Errorf("no vehicles provided")
	}
	seen := make(map[string]bool, len(catalog.Vehicles))
	for i, vehicle := range catalog.Vehicles {
		if err := ip.validateVehicle(&vehicle); err != nil {
			return fmt.Errorf("vehicle %d (%s) validation failed: %w", i, vehicle.ID, err)
		}
		if seen[vehicle.ID] {
			return fmt.Errorf("duplicate vehicle id %q", vehicle.ID)
		}
		seen[vehicle.ID] = true
	}

	if len(catalog.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}
	for i, scenario := range catalog.Scenarios {
		if scenario.Name == "" {
			return fmt.Errorf("scenario %d has no name", i)
		}
		if scenario.DocumentationFee.IsNegative() {
			return fmt.Errorf("scenario %q has negative documentation fee", scenario.Name)
		}
	}

	for i, band := range catalog.SOATRates {
		if band.MaxCC < band.MinCC {
			return fmt.Errorf("soat rate band %d has max_cc below min_cc", i)
		}
		if band.Premium.IsNegative() {
			return fmt.Errorf("soat rate band %d has negative premium", i)
		}
	}

	for i, row := range catalog.RegistrationMatrix {
		if row.Category == "" && row.MinCC == 0 && row.MaxCC == 0 {
			return fmt.Errorf("registration matrix row %d matches nothing: needs a category or a displacement interval", i)
		}
		if row.MaxCC < row.MinCC {
			return fmt.Errorf("registration matrix row %d has max_cc below min_cc", i)
		}
	}

	for i, entity := range catalog.Entities {
		if entity.Name == "" {
			return fmt.Errorf("financial entity %d has no name", i)
		}
		if entity.MonthlyInterestRate.IsNegative() {
			return fmt.Errorf("financial entity %q has negative interest rate", entity.Name)
		}
	}

	return nil
}

func (ip *InputParser) validateVehicle(vehicle *domain.Vehicle) error {
	if vehicle.ID == "" {
		return fmt.Errorf("id is required")
	}
	if !vehicle.Price.IsPositive() {
		return fmt.Errorf("price must be positive")
	}
	if vehicle.DisplacementCC < 0 {
		return fmt.Errorf("displacement must not be negative")
	}
	return nil
}
