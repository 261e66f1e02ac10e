package advisor

import (
	"fmt"

	"revenueradar_backend/internal/scoring"
)

// FallbackReason builds the deterministic explanation used when the advisory
// stage supplied no reason for a lead.
func FallbackReason(breakdown scoring.Breakdown) string {
	return fmt.Sprintf("Score based on: Company size (%v), Engagement (%v), Budget fit (%v)",
		breakdown[scoring.ComponentCompanySize],
		breakdown[scoring.ComponentEngagement],
		breakdown[scoring.ComponentBudgetFit])
}

// FallbackActions returns the deterministic action list tiered by final score.
func FallbackActions(finalScore int) []string {
	switch {
	case finalScore >= 80:
		return []string{
			"Schedule discovery call within 24-48 hours",
			"Prepare customized demo based on their industry",
			"Research their current tech stack and pain points",
			"Identify additional stakeholders for multi-threading",
			"Prepare ROI analysis based on their company size",
		}
	case finalScore >= 60:
		return []string{
			"Send personalized follow-up email with relevant case study",
			"Schedule introductory call within 1 week",
			"Add to nurture campaign with industry-specific content",
			"Monitor engagement for buying signals",
		}
	default:
		return []string{
			"Add to automated nurture sequence",
			"Monitor engagement metrics for future interest",
			"Re-evaluate lead status in 30 days",
		}
	}
}
