package planner

import (
	"github.com/clearcompass/ccplan/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	twelve = decimal.NewFromInt(12)

	conservativeShare = decimal.NewFromFloat(0.10)
	moderateShare     = decimal.NewFromFloat(0.15)
	aggressiveShare   = decimal.NewFromFloat(0.25)

	conservativeFloor = decimal.NewFromInt(25)
	moderateFloor     = decimal.NewFromInt(50)
	aggressiveFloor   = decimal.NewFromInt(100)
)

// AssessCapacity derives a patient's monthly payment capacity from income and
// expenses. DisposableIncome is deliberately not clamped: a negative value is
// a warning the caller surfaces, not an error. Each payment tier is floored so
// a near-zero or negative disposable income still yields a usable minimum
// payment figure.
func AssessCapacity(annualIncome decimal.Decimal, familySize int, monthlyExpenses decimal.Decimal) domain.FinancialCapacity {
	monthlyIncome := annualIncome.Div(twelve)
	disposable := monthlyIncome.Sub(monthlyExpenses)

	return domain.FinancialCapacity{
		MonthlyIncome:       monthlyIncome,
		DisposableIncome:    disposable,
		ConservativePayment: decimal.Max(conservativeFloor, disposable.Mul(conservativeShare)),
		ModeratePayment:     decimal.Max(moderateFloor, disposable.Mul(moderateShare)),
		AggressivePayment:   decimal.Max(aggressiveFloor, disposable.Mul(aggressiveShare)),
	}
}
