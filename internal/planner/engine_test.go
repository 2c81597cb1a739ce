package planner

import (
	"testing"

	"github.com/clearcompass/ccplan/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewEngine(t *testing.T) {
	engine := NewEngine(domain.DefaultCatalogs())

	assert.NotNil(t, engine, "Should create engine")
	assert.NotNil(t, engine.Logger, "Should initialize logger")
	assert.NotEmpty(t, engine.Catalogs.AidPrograms, "Should bind catalogs")
}

func TestEngine_SetLogger(t *testing.T) {
	engine := NewEngine(domain.DefaultCatalogs())

	engine.SetLogger(nil)

	assert.NotNil(t, engine.Logger, "Should not be nil")
	assert.IsType(t, NopLogger{}, engine.Logger, "Should be no-op logger")
}

func bostonScenarioRequest() domain.PlanRequest {
	return domain.PlanRequest{
		Hospital:        "Boston Medical Center",
		ProcedureCost:   decimal.NewFromInt(3200),
		InsuranceType:   "Blue Cross Blue Shield PPO",
		AnnualIncome:    decimal.NewFromInt(45000),
		FamilySize:      3,
		MonthlyExpenses: decimal.NewFromInt(2800),
	}
}

func TestCreateComprehensivePlan_BostonScenario(t *testing.T) {
	engine := newTestEngine()
	plan := engine.CreateComprehensivePlan(bostonScenarioRequest())

	// 45000 / 25820 * 100 = 174.28...
	assert.Equal(t, "174.3", plan.PovertyPercentage.Round(1).String(), "poverty percentage")
	assert.True(t, plan.Capacity.ModeratePayment.Equal(decimal.NewFromFloat(142.5)), "moderate payment, got %s", plan.Capacity.ModeratePayment)

	if assert.Len(t, plan.PaymentPlans, 3, "all three plans apply") {
		assert.Equal(t, "12-Month Interest-Free Plan", plan.PaymentPlans[0].Name)
		assert.True(t, plan.PaymentPlans[0].MonthlyPayment.Equal(decimal.NewFromFloat(266.67)),
			"interest-free monthly, got %s", plan.PaymentPlans[0].MonthlyPayment)
	}

	// Medicaid's 138% limit excludes it; the other four qualify. Charity care
	// slides to 75.7% coverage at this income.
	if assert.Len(t, plan.AidMatches, 4, "four programs eligible") {
		assert.Equal(t, "Hospital Charity Care", plan.AidMatches[0].Name)
		assert.True(t, plan.AidMatches[0].EstimatedSavings.Equal(decimal.NewFromFloat(2422.93)),
			"top savings, got %s", plan.AidMatches[0].EstimatedSavings)
		assert.Equal(t, domain.PriorityHigh, plan.AidMatches[0].Priority)
	}

	// Top savings exceed half the cost, so aid comes first.
	assert.True(t, plan.Recommendation.AidFirst, "aid-first recommendation")
	assert.Equal(t, "Hospital Charity Care", plan.Recommendation.AidProgram)
	assert.Equal(t, "12-Month Interest-Free Plan", plan.Recommendation.PaymentPlan)
}

func TestCreateComprehensivePlan_PlanFirstWhenSavingsAreModest(t *testing.T) {
	engine := newTestEngine()

	// 350% of the size-3 guideline: only the flat-capped programs qualify,
	// and min(3200*0.5, 5000) = 1600 does not exceed half the cost.
	plan := engine.CreateComprehensivePlan(domain.PlanRequest{
		Hospital:        "Boston Medical Center",
		ProcedureCost:   decimal.NewFromInt(3200),
		InsuranceType:   "Aetna HMO",
		AnnualIncome:    decimal.NewFromInt(90370),
		FamilySize:      3,
		MonthlyExpenses: decimal.NewFromInt(2800),
	})

	assert.False(t, plan.Recommendation.AidFirst, "modest savings lead with the payment plan")
	assert.Equal(t, "12-Month Interest-Free Plan", plan.Recommendation.PaymentPlan)
	assert.Equal(t, "Patient Advocate Foundation", plan.Recommendation.SecondaryAid, "top match is still suggested as a secondary step")
}

func TestCreateComprehensivePlan_NoEligibleProgramsNoSecondary(t *testing.T) {
	catalogs := domain.DefaultCatalogs()
	// Drop the credit-based program so a high income disqualifies everything.
	programs := catalogs.AidPrograms[:0:0]
	for _, p := range catalogs.AidPrograms {
		if p.Category != domain.CategoryFinancing {
			programs = append(programs, p)
		}
	}
	catalogs.AidPrograms = programs
	engine := NewEngine(catalogs)

	plan := engine.CreateComprehensivePlan(domain.PlanRequest{
		Hospital:        "Boston Medical Center",
		ProcedureCost:   decimal.NewFromInt(3200),
		AnnualIncome:    decimal.NewFromInt(500000),
		FamilySize:      1,
		MonthlyExpenses: decimal.NewFromInt(3000),
	})

	assert.Empty(t, plan.AidMatches, "no programs at this income")
	assert.False(t, plan.Recommendation.AidFirst)
	assert.Empty(t, plan.Recommendation.SecondaryAid)
	assert.Equal(t, "12-Month Interest-Free Plan", plan.Recommendation.PaymentPlan)
}

func TestCreateComprehensivePlan_UnknownHospitalUsesDefaultTerms(t *testing.T) {
	engine := newTestEngine()

	req := bostonScenarioRequest()
	req.Hospital = "Springfield General"
	plan := engine.CreateComprehensivePlan(req)

	if assert.NotEmpty(t, plan.PaymentPlans) {
		// Default terms are Boston Medical Center's 12-month plan; the offer
		// still names the requested provider.
		assert.Equal(t, "12-Month Interest-Free Plan", plan.PaymentPlans[0].Name)
		assert.Equal(t, "Springfield General", plan.PaymentPlans[0].Provider)
	}
}

func TestCreateComprehensivePlan_InsuranceTypeNeverAffectsResults(t *testing.T) {
	engine := newTestEngine()

	reqA := bostonScenarioRequest()
	reqB := bostonScenarioRequest()
	reqB.InsuranceType = "Uninsured"

	planA := engine.CreateComprehensivePlan(reqA)
	planB := engine.CreateComprehensivePlan(reqB)

	assert.Equal(t, planA.PovertyPercentage, planB.PovertyPercentage)
	assert.Equal(t, planA.Capacity, planB.Capacity)
	assert.Equal(t, planA.PaymentPlans, planB.PaymentPlans)
	assert.Equal(t, planA.AidMatches, planB.AidMatches)
	assert.Equal(t, planA.Recommendation, planB.Recommendation)
}

func TestCreateComprehensivePlan_Idempotent(t *testing.T) {
	engine := newTestEngine()
	req := bostonScenarioRequest()

	first := engine.CreateComprehensivePlan(req)
	second := engine.CreateComprehensivePlan(req)

	assert.Equal(t, first, second, "identical inputs must produce identical structured output")
}
