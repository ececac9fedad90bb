package domain

import "fmt"

// Catalog is the complete quoting configuration: everything the engine needs
// that normally lives in the dealership's document store.
type Catalog struct {
	Vehicles           []Vehicle         `yaml:"vehicles" json:"vehicles"`
	Scenarios          []Scenario        `yaml:"scenarios" json:"scenarios"`
	SOATRates          []RateBand        `yaml:"soat_rates,omitempty" json:"soat_rates,omitempty"`
	RegistrationMatrix []MatrixRow       `yaml:"registration_matrix,omitempty" json:"registration_matrix,omitempty"`
	Entities           []FinancialEntity `yaml:"financial_entities,omitempty" json:"financial_entities,omitempty"`
}

// FindVehicle returns the catalog vehicle with the given ID.
func (c *Catalog) FindVehicle(id string) (*Vehicle, error) {
	for i := range c.Vehicles {
		if c.Vehicles[i].ID == id {
			return &c.Vehicles[i], nil
		}
	}
	return nil, fmt.Errorf("vehicle %q not found in catalog", id)
}

// FindScenario returns the scenario whose name matches case-insensitively.
func (c *Catalog) FindScenario(name string) (*Scenario, error) {
	want := NormalizePlaceName(name)
	for i := range c.Scenarios {
		if NormalizePlaceName(c.Scenarios[i].Name) == want {
			return &c.Scenarios[i], nil
		}
	}
	return nil, fmt.Errorf("scenario %q not found in catalog", name)
}

// FindEntity returns the financial entity whose name matches
// case-insensitively, or nil when name is empty (cash quotes need none).
func (c *Catalog) FindEntity(name string) (*FinancialEntity, error) {
	if name == "" {
		return nil, nil
	}
	want := NormalizePlaceName(name)
	for i := range c.Entities {
		if NormalizePlaceName(c.Entities[i].Name) == want {
			return &c.Entities[i], nil
		}
	}
	return nil, fmt.Errorf("financial entity %q not found in catalog", name)
}
