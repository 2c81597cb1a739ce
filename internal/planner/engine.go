package planner

import (
	"github.com/clearcompass/ccplan/internal/domain"
	"github.com/shopspring/decimal"
)

// Logger is the minimal logging interface the engine uses for debug output.
type Logger interface {
	Debugf(format string, args ...any)
}

// NopLogger discards all log output. It is the engine default.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}

// Engine computes affordability profiles against a fixed set of catalogs.
// The catalogs are bound at construction and never mutated, so a single
// engine is safe for any number of concurrent callers.
type Engine struct {
	Catalogs domain.Catalogs
	Logger   Logger
}

// NewEngine creates a planning engine bound to the given catalogs.
func NewEngine(catalogs domain.Catalogs) *Engine {
	return &Engine{
		Catalogs: catalogs,
		Logger:   NopLogger{},
	}
}

// SetLogger replaces the engine's logger. Passing nil restores the no-op logger.
func (e *Engine) SetLogger(logger Logger) {
	if logger == nil {
		logger = NopLogger{}
	}
	e.Logger = logger
}

var half = decimal.NewFromFloat(0.5)

// CreateComprehensivePlan runs the full pipeline for one request: poverty
// percentage, capacity assessment, plan generation, aid matching, and the
// final recommendation. It never fails; degenerate inputs produce degenerate
// but well-formed results.
func (e *Engine) CreateComprehensivePlan(req domain.PlanRequest) *domain.ComprehensivePlan {
	povertyPct := e.PovertyPercentage(req.AnnualIncome, req.FamilySize)
	capacity := AssessCapacity(req.AnnualIncome, req.FamilySize, req.MonthlyExpenses)

	terms := e.Catalogs.HospitalTerms.For(req.Hospital)
	plans := GeneratePlans(req.ProcedureCost, terms, req.Hospital, capacity)
	matches := e.MatchAidPrograms(req.AnnualIncome, req.FamilySize, req.ProcedureCost)

	e.Logger.Debugf("poverty level %s%%, %d payment plans, %d aid matches",
		povertyPct.StringFixed(1), len(plans), len(matches))

	return &domain.ComprehensivePlan{
		Request:           req,
		PovertyPercentage: povertyPct,
		Capacity:          capacity,
		PaymentPlans:      plans,
		AidMatches:        matches,
		Recommendation:    recommend(req.ProcedureCost, plans, matches),
	}
}

// recommend decides the primary action: pursue the top aid match first when
// its estimated savings exceed half the procedure cost, otherwise lead with
// the first generated payment plan and suggest aid as a secondary step.
func recommend(procedureCost decimal.Decimal, plans []domain.PaymentPlanOffer, matches []domain.AidMatchResult) domain.Recommendation {
	var rec domain.Recommendation
	if len(plans) > 0 {
		rec.PaymentPlan = plans[0].Name
	}
	if len(matches) > 0 && matches[0].EstimatedSavings.GreaterThan(procedureCost.Mul(half)) {
		rec.AidFirst = true
		rec.AidProgram = matches[0].Name
		rec.AidSavings = matches[0].EstimatedSavings
	} else if len(matches) > 0 {
		rec.SecondaryAid = matches[0].Name
	}
	return rec
}
