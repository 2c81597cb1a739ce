package planner

import (
	"sort"

	"github.com/clearcompass/ccplan/internal/domain"
	"github.com/shopspring/decimal"
)

var priorityCutoff = decimal.NewFromInt(200)

// MatchAidPrograms filters the aid catalog down to programs the patient is
// income-eligible for and annotates each with estimated savings and a
// priority tier. The result is sorted descending by estimated savings; equal
// savings keep catalog order.
func (e *Engine) MatchAidPrograms(annualIncome decimal.Decimal, familySize int, totalCost decimal.Decimal) []domain.AidMatchResult {
	povertyPct := e.PovertyPercentage(annualIncome, familySize)

	var matches []domain.AidMatchResult
	for _, program := range e.Catalogs.AidPrograms {
		if povertyPct.GreaterThan(program.IncomeLimitPercent) {
			continue
		}

		priority := domain.PriorityMedium
		if povertyPct.LessThanOrEqual(priorityCutoff) {
			priority = domain.PriorityHigh
		}

		matches = append(matches, domain.AidMatchResult{
			AidProgram:        program,
			EstimatedSavings:  EstimatedSavings(program.SavingsRule, program.SavingsTerms, povertyPct, totalCost).Round(2),
			PovertyPercentage: povertyPct.Round(1),
			Priority:          priority,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].EstimatedSavings.GreaterThan(matches[j].EstimatedSavings)
	})
	return matches
}

// EstimatedSavings dispatches on the program's savings rule to estimate the
// dollar amount the program would cover.
func EstimatedSavings(rule domain.SavingsRule, terms domain.SavingsTerms, povertyPct, totalCost decimal.Decimal) decimal.Decimal {
	switch rule {
	case domain.SavingsFullSlidingScale:
		if povertyPct.LessThanOrEqual(terms.FullCoverageLimit) {
			return totalCost
		}
		discount := one.Sub(povertyPct.Sub(terms.FullCoverageLimit).Div(terms.PhaseOutBand).Mul(terms.PhaseOutDepth))
		return totalCost.Mul(discount)
	case domain.SavingsCappedSlidingScale:
		coverage := decimal.Max(terms.CoverageFloor, one.Sub(povertyPct.Div(terms.ScaleDivisor)))
		return totalCost.Mul(coverage)
	case domain.SavingsFlatCapped:
		return decimal.Min(totalCost.Mul(terms.FlatRate), terms.FlatCap)
	default:
		return decimal.Zero
	}
}
