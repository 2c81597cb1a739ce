package planner

import (
	"fmt"

	"github.com/clearcompass/ccplan/internal/domain"
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// GeneratePlans synthesizes up to three payment plan offers from the
// hospital's published terms and the patient's capacity. The returned order
// is generation order, not a preference ranking. Inclusion gates compare
// unrounded figures; the offers themselves carry display-rounded amounts.
func GeneratePlans(totalCost decimal.Decimal, terms domain.HospitalPlanTerms, provider string, capacity domain.FinancialCapacity) []domain.PaymentPlanOffer {
	var plans []domain.PaymentPlanOffer

	// Interest-free hospital plan.
	if totalCost.IsPositive() && terms.InterestFreeMonths > 0 {
		months := decimal.NewFromInt(int64(terms.InterestFreeMonths))
		monthly := totalCost.Div(months)
		if monthly.GreaterThanOrEqual(terms.MinimumMonthly) {
			plans = append(plans, domain.PaymentPlanOffer{
				Name:           fmt.Sprintf("%d-Month Interest-Free Plan", terms.InterestFreeMonths),
				MonthlyPayment: monthly.Round(2),
				TotalMonths:    terms.InterestFreeMonths,
				TotalCost:      totalCost.Round(2),
				InterestRate:   decimal.Zero,
				Provider:       provider,
				Rationale:      "Best option - no interest charges",
			})
		}
	}

	// Extended hospital plan with simple interest. The minimum-payment gate
	// checks the pre-interest per-month cost; the published payment includes
	// interest.
	if terms.ExtendedPlanMonths > 0 {
		months := decimal.NewFromInt(int64(terms.ExtendedPlanMonths))
		preInterestMonthly := totalCost.Div(months)
		if preInterestMonthly.GreaterThanOrEqual(terms.MinimumMonthly) {
			totalWithInterest := totalCost.Mul(one.Add(terms.ExtendedPlanAPR.Mul(months.Div(twelve))))
			plans = append(plans, domain.PaymentPlanOffer{
				Name:           fmt.Sprintf("%d-Month Extended Plan", terms.ExtendedPlanMonths),
				MonthlyPayment: totalWithInterest.Div(months).Round(2),
				TotalMonths:    terms.ExtendedPlanMonths,
				TotalCost:      totalWithInterest.Round(2),
				InterestRate:   terms.ExtendedPlanAPR,
				Provider:       provider,
				Rationale:      "Lower monthly payments with minimal interest",
			})
		}
	}

	// Capacity-based custom plan at the moderate payment tier.
	target := capacity.ModeratePayment
	if target.IsPositive() {
		monthsNeeded := totalCost.Div(target).Ceil().IntPart()
		plans = append(plans, domain.PaymentPlanOffer{
			Name:           "Income-Based Custom Plan",
			MonthlyPayment: target.Round(2),
			TotalMonths:    int(monthsNeeded),
			TotalCost:      totalCost.Round(2),
			InterestRate:   decimal.Zero,
			Provider:       "Custom",
			Rationale:      customPlanRationale(target, capacity.DisposableIncome),
		})
	}

	return plans
}

// customPlanRationale describes the moderate payment as a share of disposable
// income. Zero disposable income gets a neutral rationale instead of a
// division by zero.
func customPlanRationale(target, disposableIncome decimal.Decimal) string {
	if disposableIncome.IsZero() {
		return "Based on a sustainable monthly payment for your budget"
	}
	share := target.Div(disposableIncome).Mul(hundred).IntPart()
	return fmt.Sprintf("Based on %d%% of disposable income", share)
}
