package domain

import (
	"github.com/shopspring/decimal"
)

// Catalogs bundles the static reference tables the planner computes against.
// A Catalogs value is built once (from defaults or a YAML file) and shared
// read-only across requests.
type Catalogs struct {
	PovertyGuidelines PovertyGuidelines  `yaml:"poverty_guidelines" json:"poverty_guidelines"`
	AidPrograms       []AidProgram       `yaml:"aid_programs" json:"aid_programs"`
	HospitalTerms     HospitalTermsTable `yaml:"hospital_terms" json:"hospital_terms"`
}

// PovertyGuidelines maps family size to the annual poverty guideline dollar
// threshold. Sizes beyond the table extend linearly by
// AdditionalMemberIncrement per extra member.
type PovertyGuidelines struct {
	Thresholds                map[int]decimal.Decimal `yaml:"thresholds" json:"thresholds"`
	AdditionalMemberIncrement decimal.Decimal         `yaml:"additional_member_increment" json:"additional_member_increment"`
}

// ThresholdFor returns the guideline threshold for a family size. Sizes above
// the largest table entry extend linearly; sizes below 1 or missing from the
// table fall back to the size-1 threshold.
func (pg PovertyGuidelines) ThresholdFor(familySize int) decimal.Decimal {
	largest := 0
	for size := range pg.Thresholds {
		if size > largest {
			largest = size
		}
	}
	if familySize > largest {
		extra := decimal.NewFromInt(int64(familySize - largest))
		return pg.Thresholds[largest].Add(pg.AdditionalMemberIncrement.Mul(extra))
	}
	if threshold, ok := pg.Thresholds[familySize]; ok && familySize >= 1 {
		return threshold
	}
	return pg.Thresholds[1]
}

// HospitalTermsTable holds per-hospital plan terms plus the designated
// fallback entry used for hospitals not in the table.
type HospitalTermsTable struct {
	DefaultHospital string                       `yaml:"default_hospital" json:"default_hospital"`
	Hospitals       map[string]HospitalPlanTerms `yaml:"hospitals" json:"hospitals"`
}

// For returns the plan terms for the named hospital, falling back to the
// default entry when the name is unknown.
func (t HospitalTermsTable) For(hospital string) HospitalPlanTerms {
	if terms, ok := t.Hospitals[hospital]; ok {
		return terms
	}
	return t.Hospitals[t.DefaultHospital]
}
