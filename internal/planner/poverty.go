package planner

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// PovertyPercentage converts household income and family size into a
// percentage of the federal poverty guideline. It is a total function: every
// input maps to a number (well above 100 for high incomes), never an error.
func (e *Engine) PovertyPercentage(annualIncome decimal.Decimal, familySize int) decimal.Decimal {
	threshold := e.Catalogs.PovertyGuidelines.ThresholdFor(familySize)
	return annualIncome.Div(threshold).Mul(hundred)
}
