package output

import (
	"strings"
	"testing"

	"github.com/clearcompass/ccplan/internal/domain"
	"github.com/clearcompass/ccplan/internal/planner"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		want   string
	}{
		{"zero", decimal.Zero, "$0.00"},
		{"hundreds", decimal.NewFromFloat(266.666), "$266.67"},
		{"thousands", decimal.NewFromInt(3200), "$3,200.00"},
		{"millions", decimal.NewFromFloat(1234567.891), "$1,234,567.89"},
		{"rounds across a group boundary", decimal.NewFromFloat(999.999), "$1,000.00"},
		{"negative", decimal.NewFromFloat(-1234.5), "-$1,234.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(tt.amount))
		})
	}
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "0.0%", FormatRate(decimal.Zero))
	assert.Equal(t, "5.0%", FormatRate(decimal.NewFromFloat(0.05)))
	assert.Equal(t, "3.5%", FormatRate(decimal.NewFromFloat(0.035)))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "174.3%", FormatPercent(decimal.NewFromFloat(174.28)))
	assert.Equal(t, "100.0%", FormatPercent(decimal.NewFromInt(100)))
}

func bostonPlan() *domain.ComprehensivePlan {
	engine := planner.NewEngine(domain.DefaultCatalogs())
	return engine.CreateComprehensivePlan(domain.PlanRequest{
		Hospital:        "Boston Medical Center",
		ProcedureCost:   decimal.NewFromInt(3200),
		InsuranceType:   "Blue Cross Blue Shield PPO",
		AnnualIncome:    decimal.NewFromInt(45000),
		FamilySize:      3,
		MonthlyExpenses: decimal.NewFromInt(2800),
	})
}

func TestFormatComprehensivePlan_Summary(t *testing.T) {
	summary, _, _ := FormatComprehensivePlan(bostonPlan())

	assert.Contains(t, summary, "## Financial Summary")
	assert.Contains(t, summary, "- **Procedure Cost:** $3,200.00")
	assert.Contains(t, summary, "- **Hospital:** Boston Medical Center")
	assert.Contains(t, summary, "- **Insurance:** Blue Cross Blue Shield PPO")
	assert.Contains(t, summary, "- **Income Level:** 174.3% of Federal Poverty Level")
	assert.Contains(t, summary, "- **Monthly Disposable Income:** $950.00")
	assert.Contains(t, summary, "### Our Recommendation:")
	assert.Contains(t, summary, "1. **Apply for Hospital Charity Care** - could save you $2,422.93")
	assert.Contains(t, summary, "2. **Use 12-Month Interest-Free Plan** for any remaining balance")
}

func TestFormatComprehensivePlan_PaymentPlans(t *testing.T) {
	_, paymentPlans, _ := FormatComprehensivePlan(bostonPlan())

	assert.Contains(t, paymentPlans, "## Recommended Payment Plans")
	assert.Contains(t, paymentPlans, "### Plan 1: 12-Month Interest-Free Plan")
	assert.Contains(t, paymentPlans, "- **Monthly Payment:** $266.67")
	assert.Contains(t, paymentPlans, "- **Interest Rate:** 0.0%")
	assert.Contains(t, paymentPlans, "### Plan 2: 24-Month Extended Plan")
	assert.Contains(t, paymentPlans, "- **Interest Rate:** 5.0%")
	assert.Contains(t, paymentPlans, "### Plan 3: Income-Based Custom Plan")
	assert.Contains(t, paymentPlans, "- **Why this works:** Based on 15% of disposable income")
}

func TestFormatComprehensivePlan_AidPrograms(t *testing.T) {
	_, _, aidPrograms := FormatComprehensivePlan(bostonPlan())

	assert.Contains(t, aidPrograms, "## Financial Assistance Programs You May Qualify For")
	assert.Contains(t, aidPrograms, "### Hospital Charity Care (Hospital)")
	assert.Contains(t, aidPrograms, "- **Potential Savings:** $2,422.93")
	assert.Contains(t, aidPrograms, "- **Priority:** High")
	assert.Contains(t, aidPrograms, "- **Requirements:** Tax returns, Pay stubs, Bank statements")
	assert.Contains(t, aidPrograms, "- **Apply:** Contact hospital financial counselor")

	// Charity care sorts first; the state program trails the flat-capped ones.
	charityAt := strings.Index(aidPrograms, "Hospital Charity Care")
	stateAt := strings.Index(aidPrograms, "Massachusetts Health Safety Net")
	assert.Less(t, charityAt, stateAt, "listing order follows estimated savings")
}

func TestFormatComprehensivePlan_NoEligiblePrograms(t *testing.T) {
	plan := bostonPlan()
	plan.AidMatches = nil

	_, _, aidPrograms := FormatComprehensivePlan(plan)

	assert.Contains(t, aidPrograms, "you may not qualify for need-based assistance programs")
}

func TestFormatComprehensivePlan_Deterministic(t *testing.T) {
	summaryA, plansA, aidA := FormatComprehensivePlan(bostonPlan())
	summaryB, plansB, aidB := FormatComprehensivePlan(bostonPlan())

	assert.Equal(t, summaryA, summaryB, "summary must be byte-identical across runs")
	assert.Equal(t, plansA, plansB, "plan listing must be byte-identical across runs")
	assert.Equal(t, aidA, aidB, "aid listing must be byte-identical across runs")
}

func TestFormatJSON(t *testing.T) {
	data, err := FormatJSON(bostonPlan())
	require.NoError(t, err)

	assert.Contains(t, string(data), `"poverty_percentage"`)
	assert.Contains(t, string(data), `"payment_plans"`)
	assert.Contains(t, string(data), `"recommendation"`)
}
