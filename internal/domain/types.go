package domain

import (
	"github.com/shopspring/decimal"
)

// ProgramCategory classifies an aid program by its sponsoring organization.
type ProgramCategory string

const (
	CategoryHospital   ProgramCategory = "hospital"
	CategoryState      ProgramCategory = "state"
	CategoryNonprofit  ProgramCategory = "nonprofit"
	CategoryGovernment ProgramCategory = "government"
	CategoryFinancing  ProgramCategory = "financing"
)

// SavingsRule selects the formula used to estimate savings for an aid program.
type SavingsRule string

const (
	// SavingsFullSlidingScale covers the full cost below a poverty threshold,
	// then phases the discount down linearly across a band above it.
	SavingsFullSlidingScale SavingsRule = "full_sliding_scale"
	// SavingsCappedSlidingScale scales coverage down with income, never below
	// a coverage floor.
	SavingsCappedSlidingScale SavingsRule = "capped_sliding_scale"
	// SavingsFlatCapped estimates a flat fraction of the cost up to a dollar cap.
	SavingsFlatCapped SavingsRule = "flat_capped"
)

// PriorityTier indicates how urgently a patient should pursue an aid program.
type PriorityTier string

const (
	PriorityHigh   PriorityTier = "High"
	PriorityMedium PriorityTier = "Medium"
)

// SavingsTerms holds the parameters for a program's savings rule. Only the
// fields relevant to the program's rule are set; the rest stay zero.
type SavingsTerms struct {
	// full_sliding_scale
	FullCoverageLimit decimal.Decimal `yaml:"full_coverage_limit,omitempty" json:"full_coverage_limit,omitempty"`
	PhaseOutBand      decimal.Decimal `yaml:"phase_out_band,omitempty" json:"phase_out_band,omitempty"`
	PhaseOutDepth     decimal.Decimal `yaml:"phase_out_depth,omitempty" json:"phase_out_depth,omitempty"`

	// capped_sliding_scale
	CoverageFloor decimal.Decimal `yaml:"coverage_floor,omitempty" json:"coverage_floor,omitempty"`
	ScaleDivisor  decimal.Decimal `yaml:"scale_divisor,omitempty" json:"scale_divisor,omitempty"`

	// flat_capped
	FlatRate decimal.Decimal `yaml:"flat_rate,omitempty" json:"flat_rate,omitempty"`
	FlatCap  decimal.Decimal `yaml:"flat_cap,omitempty" json:"flat_cap,omitempty"`
}

// AidProgram is one immutable catalog entry describing a financial aid program.
// Matches are annotated copies; the catalog entry itself is never mutated.
type AidProgram struct {
	Name                 string          `yaml:"name" json:"name"`
	Category             ProgramCategory `yaml:"category" json:"category"`
	IncomeLimitPercent   decimal.Decimal `yaml:"income_limit_percent" json:"income_limit_percent"`
	Coverage             string          `yaml:"coverage" json:"coverage"`
	RequiredDocuments    []string        `yaml:"required_documents" json:"required_documents"`
	ApplicationReference string          `yaml:"application_reference" json:"application_reference"`
	SavingsRule          SavingsRule     `yaml:"savings_rule" json:"savings_rule"`
	SavingsTerms         SavingsTerms    `yaml:"savings_terms" json:"savings_terms"`
}

// HospitalPlanTerms contains one hospital's published payment plan terms.
type HospitalPlanTerms struct {
	InterestFreeMonths int             `yaml:"interest_free_months" json:"interest_free_months"`
	ExtendedPlanMonths int             `yaml:"extended_plan_months" json:"extended_plan_months"`
	ExtendedPlanAPR    decimal.Decimal `yaml:"extended_plan_apr" json:"extended_plan_apr"`
	MinimumMonthly     decimal.Decimal `yaml:"minimum_monthly" json:"minimum_monthly"`
}

// FinancialCapacity contains the payment capacity figures derived for a single
// request. DisposableIncome may be negative; that is a capacity warning for
// downstream consumers, not an error.
type FinancialCapacity struct {
	MonthlyIncome       decimal.Decimal `json:"monthly_income"`
	DisposableIncome    decimal.Decimal `json:"disposable_income"`
	ConservativePayment decimal.Decimal `json:"conservative_payment"`
	ModeratePayment     decimal.Decimal `json:"moderate_payment"`
	AggressivePayment   decimal.Decimal `json:"aggressive_payment"`
}

// PaymentPlanOffer is one synthesized payment plan. Monetary fields are
// rounded to cents for display; inclusion decisions are made on unrounded
// figures before the offer is built.
type PaymentPlanOffer struct {
	Name           string          `json:"name"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	TotalMonths    int             `json:"total_months"`
	TotalCost      decimal.Decimal `json:"total_cost"`
	InterestRate   decimal.Decimal `json:"interest_rate"`
	Provider       string          `json:"provider"`
	Rationale      string          `json:"rationale"`
}

// AidMatchResult is a catalog program annotated with the request-specific
// eligibility figures.
type AidMatchResult struct {
	AidProgram
	EstimatedSavings  decimal.Decimal `json:"estimated_savings"`
	PovertyPercentage decimal.Decimal `json:"poverty_percentage"`
	Priority          PriorityTier    `json:"priority"`
}

// PlanRequest carries the six externally supplied inputs for one planning
// request. InsuranceType is display context only and never influences any
// computed figure.
type PlanRequest struct {
	Hospital        string          `json:"hospital"`
	ProcedureCost   decimal.Decimal `json:"procedure_cost"`
	InsuranceType   string          `json:"insurance_type"`
	AnnualIncome    decimal.Decimal `json:"annual_income"`
	FamilySize      int             `json:"family_size"`
	MonthlyExpenses decimal.Decimal `json:"monthly_expenses"`
}

// Recommendation is the orchestrator's cross-component decision: whether to
// pursue aid before a payment plan, and which of each to pursue first.
type Recommendation struct {
	AidFirst     bool            `json:"aid_first"`
	AidProgram   string          `json:"aid_program,omitempty"`
	AidSavings   decimal.Decimal `json:"aid_savings"`
	PaymentPlan  string          `json:"payment_plan,omitempty"`
	SecondaryAid string          `json:"secondary_aid,omitempty"`
}

// ComprehensivePlan is the full structured result for one request.
type ComprehensivePlan struct {
	Request           PlanRequest        `json:"request"`
	PovertyPercentage decimal.Decimal    `json:"poverty_percentage"`
	Capacity          FinancialCapacity  `json:"capacity"`
	PaymentPlans      []PaymentPlanOffer `json:"payment_plans"`
	AidMatches        []AidMatchResult   `json:"aid_matches"`
	Recommendation    Recommendation     `json:"recommendation"`
}
