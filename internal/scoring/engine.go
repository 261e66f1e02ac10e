package scoring

import "math"

// Component names used as breakdown keys. Every key is always present in a
// Breakdown, even when the underlying lead data is entirely missing.
const (
	ComponentCompanySize       = "company_size"
	ComponentEngagement        = "engagement"
	ComponentBudgetFit         = "budget_fit"
	ComponentDecisionAuthority = "decision_authority"
	ComponentTimeline          = "timeline"
	ComponentDataQuality       = "data_quality"
	ComponentBehavioral        = "behavioral"
)

// ComponentNames lists all breakdown keys in weight-table order.
var ComponentNames = []string{
	ComponentCompanySize,
	ComponentEngagement,
	ComponentBudgetFit,
	ComponentDecisionAuthority,
	ComponentTimeline,
	ComponentDataQuality,
	ComponentBehavioral,
}

// Breakdown maps component names to their unweighted 0-100 scores,
// each rounded to 1 decimal place.
type Breakdown map[string]float64

// Engine combines the sub-scorer outputs into a rule-based score.
type Engine struct {
	weights Weights
}

// NewEngine creates a scoring engine after validating the weights.
func NewEngine(weights Weights) (*Engine, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &Engine{weights: weights}, nil
}

// Weights returns the engine's weight configuration.
func (e *Engine) Weights() Weights {
	return e.weights
}

// Score computes the rule-based score for a lead along with the component
// breakdown. Breakdown values are rounded per component so they reflect the
// unweighted sub-scorer outputs; the total is the weighted sum of the
// unrounded components, rounded to 1 decimal.
func (e *Engine) Score(lead Lead) (float64, Breakdown) {
	companyScore := CompanySizeScore(lead.EmployeeCount, lead.AnnualRevenueUSD)
	engagementScore := EngagementScore(lead.WebsiteVisits, lead.EmailsOpened, lead.ContentDownloads)
	budgetScore := BudgetFitScore(lead.BudgetRange)
	authorityScore := DecisionAuthorityScore(lead.DecisionAuthority, lead.JobTitle)
	timelineScore := TimelineScore(lead.PurchaseTimeline)
	dataQualityScore := DataQualityScore(lead)
	behavioralScore := BehavioralScore(lead.DemoRequested, lead.FreeTrialSignup)

	breakdown := Breakdown{
		ComponentCompanySize:       round1(companyScore),
		ComponentEngagement:        round1(engagementScore),
		ComponentBudgetFit:         round1(budgetScore),
		ComponentDecisionAuthority: round1(authorityScore),
		ComponentTimeline:          round1(timelineScore),
		ComponentDataQuality:       round1(dataQualityScore),
		ComponentBehavioral:        round1(behavioralScore),
	}

	total := companyScore*e.weights.CompanySize +
		engagementScore*e.weights.Engagement +
		budgetScore*e.weights.BudgetFit +
		authorityScore*e.weights.DecisionAuthority +
		timelineScore*e.weights.Timeline +
		dataQualityScore*e.weights.DataQuality +
		behavioralScore*e.weights.Behavioral

	return round1(total), breakdown
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}
