package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/clearcompass/ccplan/internal/domain"
	"github.com/shopspring/decimal"
)

// FormatComprehensivePlan renders the structured plan into the three text
// blocks the presentation layer displays: the financial summary with the
// recommendation, the payment plan listing, and the aid program listing.
func FormatComprehensivePlan(plan *domain.ComprehensivePlan) (summary, paymentPlans, aidPrograms string) {
	return formatSummary(plan), formatPaymentPlans(plan.PaymentPlans), formatAidPrograms(plan.AidMatches)
}

// FormatJSON renders the full structured plan as indented JSON.
func FormatJSON(plan *domain.ComprehensivePlan) ([]byte, error) {
	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal plan: %w", err)
	}
	return data, nil
}

func formatSummary(plan *domain.ComprehensivePlan) string {
	var buf strings.Builder

	buf.WriteString("## Financial Summary\n\n")
	fmt.Fprintf(&buf, "- **Procedure Cost:** %s\n", FormatCurrency(plan.Request.ProcedureCost))
	fmt.Fprintf(&buf, "- **Hospital:** %s\n", plan.Request.Hospital)
	fmt.Fprintf(&buf, "- **Insurance:** %s\n", plan.Request.InsuranceType)
	fmt.Fprintf(&buf, "- **Annual Income:** %s\n", FormatCurrency(plan.Request.AnnualIncome))
	fmt.Fprintf(&buf, "- **Family Size:** %d\n", plan.Request.FamilySize)
	fmt.Fprintf(&buf, "- **Income Level:** %s of Federal Poverty Level\n", FormatPercent(plan.PovertyPercentage))
	fmt.Fprintf(&buf, "- **Monthly Disposable Income:** %s\n\n", FormatCurrency(plan.Capacity.DisposableIncome))

	buf.WriteString("### Our Recommendation:\n")
	rec := plan.Recommendation
	switch {
	case rec.AidFirst:
		fmt.Fprintf(&buf, "1. **Apply for %s** - could save you %s\n", rec.AidProgram, FormatCurrency(rec.AidSavings))
		if rec.PaymentPlan != "" {
			fmt.Fprintf(&buf, "2. **Use %s** for any remaining balance\n", rec.PaymentPlan)
		}
	case rec.PaymentPlan != "":
		fmt.Fprintf(&buf, "1. **Choose %s** - most affordable option\n", rec.PaymentPlan)
		if rec.SecondaryAid != "" {
			fmt.Fprintf(&buf, "2. **Consider applying for %s** for additional savings\n", rec.SecondaryAid)
		}
	default:
		buf.WriteString("Contact your hospital's financial counselor to discuss options.\n")
	}

	return buf.String()
}

func formatPaymentPlans(plans []domain.PaymentPlanOffer) string {
	var buf strings.Builder

	buf.WriteString("## Recommended Payment Plans\n\n")
	for i, plan := range plans {
		fmt.Fprintf(&buf, "### Plan %d: %s\n", i+1, plan.Name)
		fmt.Fprintf(&buf, "- **Monthly Payment:** %s\n", FormatCurrency(plan.MonthlyPayment))
		fmt.Fprintf(&buf, "- **Duration:** %d months\n", plan.TotalMonths)
		fmt.Fprintf(&buf, "- **Total Cost:** %s\n", FormatCurrency(plan.TotalCost))
		fmt.Fprintf(&buf, "- **Interest Rate:** %s\n", FormatRate(plan.InterestRate))
		fmt.Fprintf(&buf, "- **Provider:** %s\n", plan.Provider)
		fmt.Fprintf(&buf, "- **Why this works:** %s\n\n", plan.Rationale)
	}

	return buf.String()
}

func formatAidPrograms(matches []domain.AidMatchResult) string {
	var buf strings.Builder

	buf.WriteString("## Financial Assistance Programs You May Qualify For\n\n")
	if len(matches) == 0 {
		buf.WriteString("Based on your income level, you may not qualify for need-based assistance programs. Consider the payment plan options above.\n\n")
		return buf.String()
	}

	for _, match := range matches {
		fmt.Fprintf(&buf, "### %s (%s)\n", match.Name, titleCase(string(match.Category)))
		fmt.Fprintf(&buf, "- **Potential Savings:** %s\n", FormatCurrency(match.EstimatedSavings))
		fmt.Fprintf(&buf, "- **Your Income Level:** %s of Federal Poverty Level\n", FormatPercent(match.PovertyPercentage))
		fmt.Fprintf(&buf, "- **Coverage:** %s\n", match.Coverage)
		fmt.Fprintf(&buf, "- **Priority:** %s\n", match.Priority)
		fmt.Fprintf(&buf, "- **Requirements:** %s\n", strings.Join(match.RequiredDocuments, ", "))
		fmt.Fprintf(&buf, "- **Apply:** %s\n\n", match.ApplicationReference)
	}

	return buf.String()
}

// FormatCurrency formats a decimal as currency with thousands grouping,
// e.g. $3,200.00 and -$1,234.56.
func FormatCurrency(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)
	dot := strings.Index(fixed, ".")

	var buf strings.Builder
	for i := 0; i < dot; i++ {
		if i > 0 && (dot-i)%3 == 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte(fixed[i])
	}
	buf.WriteString(fixed[dot:])

	if amount.IsNegative() {
		return "-$" + buf.String()
	}
	return "$" + buf.String()
}

// FormatRate formats a fractional rate as a percentage with one decimal,
// e.g. 0.05 becomes 5.0%.
func FormatRate(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}

// FormatPercent formats an already-scaled percentage value with one decimal,
// e.g. 174.28 becomes 174.3%.
func FormatPercent(pct decimal.Decimal) string {
	return pct.StringFixed(1) + "%"
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
