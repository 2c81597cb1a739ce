package config

import (
	"fmt"
	"os"

	"github.com/clearcompass/ccplan/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// CatalogParser handles loading catalog override files.
type CatalogParser struct{}

// NewCatalogParser creates a new catalog parser.
func NewCatalogParser() *CatalogParser {
	return &CatalogParser{}
}

// LoadFromFile loads catalogs from a YAML file and validates them.
func (cp *CatalogParser) LoadFromFile(filename string) (*domain.Catalogs, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var catalogs domain.Catalogs
	if err := yaml.Unmarshal(data, &catalogs); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cp.ValidateCatalogs(&catalogs); err != nil {
		return nil, fmt.Errorf("catalog validation failed: %w", err)
	}

	return &catalogs, nil
}

// ValidateCatalogs checks that loaded catalogs are internally consistent.
func (cp *CatalogParser) ValidateCatalogs(catalogs *domain.Catalogs) error {
	if err := cp.validatePovertyGuidelines(&catalogs.PovertyGuidelines); err != nil {
		return fmt.Errorf("poverty guidelines validation failed: %w", err)
	}
	for i, program := range catalogs.AidPrograms {
		if err := cp.validateAidProgram(&program); err != nil {
			return fmt.Errorf("aid program %d (%s) validation failed: %w", i, program.Name, err)
		}
	}
	if err := cp.validateHospitalTerms(&catalogs.HospitalTerms); err != nil {
		return fmt.Errorf("hospital terms validation failed: %w", err)
	}
	return nil
}

func (cp *CatalogParser) validatePovertyGuidelines(pg *domain.PovertyGuidelines) error {
	if len(pg.Thresholds) == 0 {
		return fmt.Errorf("at least one threshold is required")
	}
	if _, ok := pg.Thresholds[1]; !ok {
		return fmt.Errorf("threshold for family size 1 is required")
	}
	for size, threshold := range pg.Thresholds {
		if size < 1 {
			return fmt.Errorf("family size %d is invalid", size)
		}
		if threshold.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("threshold for family size %d must be positive", size)
		}
	}
	if pg.AdditionalMemberIncrement.IsNegative() {
		return fmt.Errorf("additional member increment cannot be negative")
	}
	return nil
}

func (cp *CatalogParser) validateAidProgram(program *domain.AidProgram) error {
	if program.Name == "" {
		return fmt.Errorf("name is required")
	}
	switch program.Category {
	case domain.CategoryHospital, domain.CategoryState, domain.CategoryNonprofit,
		domain.CategoryGovernment, domain.CategoryFinancing:
	default:
		return fmt.Errorf("unknown category %q", program.Category)
	}
	if program.IncomeLimitPercent.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("income limit must be positive")
	}

	terms := program.SavingsTerms
	switch program.SavingsRule {
	case domain.SavingsFullSlidingScale:
		if terms.PhaseOutBand.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("phase out band must be positive")
		}
		if terms.FullCoverageLimit.IsNegative() || terms.PhaseOutDepth.IsNegative() {
			return fmt.Errorf("sliding scale terms cannot be negative")
		}
	case domain.SavingsCappedSlidingScale:
		if terms.ScaleDivisor.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("scale divisor must be positive")
		}
		if terms.CoverageFloor.IsNegative() {
			return fmt.Errorf("coverage floor cannot be negative")
		}
	case domain.SavingsFlatCapped:
		if terms.FlatRate.IsNegative() || terms.FlatCap.IsNegative() {
			return fmt.Errorf("flat terms cannot be negative")
		}
	default:
		return fmt.Errorf("unknown savings rule %q", program.SavingsRule)
	}
	return nil
}

func (cp *CatalogParser) validateHospitalTerms(table *domain.HospitalTermsTable) error {
	if len(table.Hospitals) == 0 {
		return fmt.Errorf("at least one hospital is required")
	}
	if table.DefaultHospital == "" {
		return fmt.Errorf("default hospital is required")
	}
	if _, ok := table.Hospitals[table.DefaultHospital]; !ok {
		return fmt.Errorf("default hospital %q has no terms entry", table.DefaultHospital)
	}
	for name, terms := range table.Hospitals {
		if terms.InterestFreeMonths < 1 {
			return fmt.Errorf("hospital %q: interest-free months must be at least 1", name)
		}
		if terms.ExtendedPlanMonths < 1 {
			return fmt.Errorf("hospital %q: extended plan months must be at least 1", name)
		}
		if terms.ExtendedPlanAPR.IsNegative() {
			return fmt.Errorf("hospital %q: extended plan APR cannot be negative", name)
		}
		if terms.MinimumMonthly.IsNegative() {
			return fmt.Errorf("hospital %q: minimum monthly payment cannot be negative", name)
		}
	}
	return nil
}
