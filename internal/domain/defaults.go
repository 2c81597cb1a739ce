package domain

import (
	"github.com/shopspring/decimal"
)

// DefaultCatalogs returns the built-in reference tables: the 2024 federal
// poverty guidelines, the known aid programs, and the known hospital plan
// terms. Callers may replace any of these via a catalog file.
func DefaultCatalogs() Catalogs {
	return Catalogs{
		PovertyGuidelines: PovertyGuidelines{
			Thresholds: map[int]decimal.Decimal{
				1: decimal.NewFromInt(15060),
				2: decimal.NewFromInt(20440),
				3: decimal.NewFromInt(25820),
				4: decimal.NewFromInt(31200),
				5: decimal.NewFromInt(36580),
				6: decimal.NewFromInt(41960),
				7: decimal.NewFromInt(47340),
				8: decimal.NewFromInt(52720),
			},
			AdditionalMemberIncrement: decimal.NewFromInt(5380),
		},
		AidPrograms: []AidProgram{
			{
				Name:                 "Hospital Charity Care",
				Category:             CategoryHospital,
				IncomeLimitPercent:   decimal.NewFromInt(200),
				Coverage:             "100% if under 150% FPL, sliding scale 150-200%",
				RequiredDocuments:    []string{"Tax returns", "Pay stubs", "Bank statements"},
				ApplicationReference: "Contact hospital financial counselor",
				SavingsRule:          SavingsFullSlidingScale,
				SavingsTerms: SavingsTerms{
					FullCoverageLimit: decimal.NewFromInt(150),
					PhaseOutBand:      decimal.NewFromInt(50),
					PhaseOutDepth:     decimal.NewFromFloat(0.5),
				},
			},
			{
				Name:                 "Massachusetts Health Safety Net",
				Category:             CategoryState,
				IncomeLimitPercent:   decimal.NewFromInt(300),
				Coverage:             "Sliding scale based on income",
				RequiredDocuments:    []string{"Proof of MA residency", "Income verification"},
				ApplicationReference: "https://www.mass.gov/health-safety-net",
				SavingsRule:          SavingsCappedSlidingScale,
				SavingsTerms: SavingsTerms{
					CoverageFloor: decimal.NewFromFloat(0.3),
					ScaleDivisor:  decimal.NewFromInt(300),
				},
			},
			{
				Name:                 "Patient Advocate Foundation",
				Category:             CategoryNonprofit,
				IncomeLimitPercent:   decimal.NewFromInt(400),
				Coverage:             "Case-by-case assistance",
				RequiredDocuments:    []string{"Medical bills", "Financial hardship documentation"},
				ApplicationReference: "https://www.patientadvocate.org",
				SavingsRule:          SavingsFlatCapped,
				SavingsTerms: SavingsTerms{
					FlatRate: decimal.NewFromFloat(0.5),
					FlatCap:  decimal.NewFromInt(5000),
				},
			},
			{
				Name:                 "Medicaid Emergency Services",
				Category:             CategoryGovernment,
				IncomeLimitPercent:   decimal.NewFromInt(138),
				Coverage:             "Emergency medical services",
				RequiredDocuments:    []string{"Emergency medical situation", "Income verification"},
				ApplicationReference: "https://www.mass.gov/medicaid",
				SavingsRule:          SavingsFlatCapped,
				SavingsTerms: SavingsTerms{
					FlatRate: decimal.NewFromFloat(0.5),
					FlatCap:  decimal.NewFromInt(5000),
				},
			},
			{
				// Credit-based rather than income-based; the limit is a
				// sentinel high enough to admit any applicant.
				Name:                 "CareCredit Medical Financing",
				Category:             CategoryFinancing,
				IncomeLimitPercent:   decimal.NewFromInt(999),
				Coverage:             "0% APR promotional periods available",
				RequiredDocuments:    []string{"Credit check", "Minimum credit score"},
				ApplicationReference: "https://www.carecredit.com",
				SavingsRule:          SavingsFlatCapped,
				SavingsTerms: SavingsTerms{
					FlatRate: decimal.NewFromFloat(0.5),
					FlatCap:  decimal.NewFromInt(5000),
				},
			},
		},
		HospitalTerms: HospitalTermsTable{
			DefaultHospital: "Boston Medical Center",
			Hospitals: map[string]HospitalPlanTerms{
				"Boston Medical Center": {
					InterestFreeMonths: 12,
					ExtendedPlanMonths: 24,
					ExtendedPlanAPR:    decimal.NewFromFloat(0.05),
					MinimumMonthly:     decimal.NewFromInt(50),
				},
				"Mass General Hospital": {
					InterestFreeMonths: 6,
					ExtendedPlanMonths: 36,
					ExtendedPlanAPR:    decimal.NewFromFloat(0.03),
					MinimumMonthly:     decimal.NewFromInt(100),
				},
				"Brigham Surgery Center": {
					InterestFreeMonths: 18,
					ExtendedPlanMonths: 24,
					ExtendedPlanAPR:    decimal.NewFromFloat(0.04),
					MinimumMonthly:     decimal.NewFromInt(75),
				},
			},
		},
	}
}
