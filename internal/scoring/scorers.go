package scoring

import "strings"

// Each sub-scorer maps a subset of lead attributes to a 0-100 value. They are
// pure functions with total defaults: unknown categorical values and missing
// numbers resolve to a documented score, never an error.

// CompanySizeScore scores company size from employee count and annual revenue.
// Each half contributes up to 50 points.
func CompanySizeScore(employeeCount int, annualRevenueUSD float64) float64 {
	var empScore float64
	switch {
	case employeeCount >= 5000:
		empScore = 50
	case employeeCount >= 1000:
		empScore = 45
	case employeeCount >= 500:
		empScore = 40
	case employeeCount >= 200:
		empScore = 35
	case employeeCount >= 50:
		empScore = 25
	case employeeCount >= 10:
		empScore = 15
	default:
		empScore = 5
	}

	var revScore float64
	switch {
	case annualRevenueUSD >= 100_000_000:
		revScore = 50
	case annualRevenueUSD >= 50_000_000:
		revScore = 45
	case annualRevenueUSD >= 10_000_000:
		revScore = 40
	case annualRevenueUSD >= 5_000_000:
		revScore = 30
	case annualRevenueUSD >= 1_000_000:
		revScore = 20
	default:
		revScore = 10
	}

	return empScore + revScore
}

// EngagementScore scores engagement from website visits (max 35), emails
// opened (max 35) and content downloads (max 30). Maxima sum to 100.
func EngagementScore(websiteVisits, emailsOpened, contentDownloads int) float64 {
	var visitScore float64
	switch {
	case websiteVisits >= 20:
		visitScore = 35
	case websiteVisits >= 10:
		visitScore = 30
	case websiteVisits >= 5:
		visitScore = 20
	case websiteVisits >= 1:
		visitScore = 10
	}

	var emailScore float64
	switch {
	case emailsOpened >= 10:
		emailScore = 35
	case emailsOpened >= 5:
		emailScore = 28
	case emailsOpened >= 3:
		emailScore = 20
	case emailsOpened >= 1:
		emailScore = 10
	}

	var downloadScore float64
	switch {
	case contentDownloads >= 3:
		downloadScore = 30
	case contentDownloads >= 2:
		downloadScore = 22
	case contentDownloads >= 1:
		downloadScore = 15
	}

	return visitScore + emailScore + downloadScore
}

// budgetScores maps the budget bracket labels to scores. Exact match only.
var budgetScores = map[string]float64{
	"Over $1M":      100,
	"$500K - $1M":   90,
	"$100K - $500K": 75,
	"$50K - $100K":  55,
	"$10K - $50K":   35,
	"Under $10K":    15,
}

const defaultBudgetScore = 25

// BudgetFitScore scores the indicated budget bracket.
func BudgetFitScore(budgetRange string) float64 {
	if score, ok := budgetScores[budgetRange]; ok {
		return score
	}
	return defaultBudgetScore
}

var authorityScores = map[string]float64{
	"Final Decision Maker": 100,
	"Key Influencer":       75,
	"Evaluator":            50,
	"End User":             25,
}

const defaultAuthorityScore = 40

var (
	cLevelMarkers = []string{"CEO", "CTO", "CFO", "COO", "CMO", "CIO"}
	vpMarkers     = []string{"VP", "VICE PRESIDENT", "DIRECTOR", "HEAD OF"}
)

// DecisionAuthorityScore scores decision-making power from the stated
// authority level plus a seniority bonus inferred from the job title.
// C-level beats VP-level; only one bonus tier applies and the result is
// capped at 100.
func DecisionAuthorityScore(authority, jobTitle string) float64 {
	score, ok := authorityScores[authority]
	if !ok {
		score = defaultAuthorityScore
	}

	titleUpper := strings.ToUpper(jobTitle)
	switch {
	case titleUpper != "" && containsAny(titleUpper, cLevelMarkers):
		score += 15
	case titleUpper != "" && containsAny(titleUpper, vpMarkers):
		score += 10
	}

	if score > 100 {
		score = 100
	}
	return score
}

var timelineScores = map[string]float64{
	"Immediate (< 1 month)":    100,
	"Short-term (1-3 months)":  80,
	"Medium-term (3-6 months)": 55,
	"Long-term (6-12 months)":  30,
	"Just researching":         10,
}

const defaultTimelineScore = 25

// TimelineScore scores purchase urgency.
func TimelineScore(purchaseTimeline string) float64 {
	if score, ok := timelineScores[purchaseTimeline]; ok {
		return score
	}
	return defaultTimelineScore
}

// DataQualityScore scores data completeness and verification: +30 for a
// verified email, +20 for a LinkedIn profile, and up to 50 points for the
// fraction of important fields that carry a value. Terms sum to 100 exactly.
func DataQualityScore(lead Lead) float64 {
	score := 0.0

	if lead.EmailVerified {
		score += 30
	}
	if lead.HasLinkedInProfile {
		score += 20
	}

	// company name, contact email, job title, industry, employee count
	filled := 0
	for _, field := range []string{lead.CompanyName, lead.ContactEmail, lead.JobTitle, lead.Industry} {
		if strings.TrimSpace(field) != "" {
			filled++
		}
	}
	if lead.EmployeeCount > 0 {
		filled++
	}
	score += float64(filled) / 5 * 50

	return score
}

// BehavioralScore scores high-intent behaviors: +60 for a demo request, +40
// for a free trial signup, capped at 100 as a guard against weight changes.
func BehavioralScore(demoRequested, freeTrialSignup bool) float64 {
	score := 0.0
	if demoRequested {
		score += 60
	}
	if freeTrialSignup {
		score += 40
	}
	if score > 100 {
		score = 100
	}
	return score
}

// containsAny checks if s contains any of the markers.
func containsAny(s string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}
