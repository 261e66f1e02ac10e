// Package scoring implements the deterministic multi-factor lead scoring
// engine: seven independent sub-scorers combined by fixed weights into a
// 0-100 rule-based score with a per-component breakdown.
package scoring

// Lead is a single normalized lead record as consumed by the scoring engine.
// Numeric fields default to 0 and string-typed booleans are normalized at the
// ingestion boundary, so every field here is safe to score directly.
type Lead struct {
	LeadID           string `json:"lead_id"`
	CompanyName      string `json:"company_name"`
	ContactFirstName string `json:"contact_first_name"`
	ContactLastName  string `json:"contact_last_name"`
	ContactEmail     string `json:"contact_email"`
	ContactPhone     string `json:"contact_phone"`
	JobTitle         string `json:"job_title"`
	Industry         string `json:"industry"`
	Country          string `json:"country"`
	City             string `json:"city"`

	EmployeeCount    int     `json:"employee_count"`
	AnnualRevenueUSD float64 `json:"annual_revenue_usd"`

	WebsiteVisits    int `json:"website_visits"`
	EmailsOpened     int `json:"emails_opened"`
	ContentDownloads int `json:"content_downloads"`

	BudgetRange       string `json:"budget_range"`
	PurchaseTimeline  string `json:"purchase_timeline"`
	DecisionAuthority string `json:"decision_authority"`

	DemoRequested      bool `json:"demo_requested"`
	FreeTrialSignup    bool `json:"free_trial_signup"`
	EmailVerified      bool `json:"email_verified"`
	HasLinkedInProfile bool `json:"has_linkedin_profile"`

	// Free-text fields are never scored, only passed through.
	LeadSource      string `json:"lead_source"`
	PainPoints      string `json:"pain_points"`
	Notes           string `json:"notes"`
	CurrentSolution string `json:"current_solution"`
}

// DisplayName resolves the name shown for a lead: company name first, then
// contact name, then a positional placeholder. position is 1-based.
func (l Lead) DisplayName(position int) string {
	if l.CompanyName != "" {
		return l.CompanyName
	}
	name := trimJoin(l.ContactFirstName, l.ContactLastName)
	if name != "" {
		return name
	}
	return placeholderName(position)
}
