// Package transport defines the request and response DTOs for the leads API.
package transport

import "revenueradar_backend/internal/scoring"

// LeadData carries the pass-through identity and context fields for a lead.
type LeadData struct {
	LeadID           string  `json:"lead_id"`
	CompanyName      string  `json:"company_name"`
	Industry         string  `json:"industry"`
	Country          string  `json:"country"`
	City             string  `json:"city"`
	EmployeeCount    int     `json:"employee_count"`
	AnnualRevenue    float64 `json:"annual_revenue"`
	ContactName      string  `json:"contact_name"`
	ContactEmail     string  `json:"contact_email"`
	ContactPhone     string  `json:"contact_phone"`
	JobTitle         string  `json:"job_title"`
	BudgetRange      string  `json:"budget_range"`
	PurchaseTimeline string  `json:"purchase_timeline"`
	LeadSource       string  `json:"lead_source"`
	PainPoints       string  `json:"pain_points"`
	CurrentSolution  string  `json:"current_solution"`
	DemoRequested    bool    `json:"demo_requested"`
	FreeTrial        bool    `json:"free_trial"`
}

// LeadResult is the full scored output for one lead.
type LeadResult struct {
	CustomerName   string            `json:"customer_name"`
	Score          int               `json:"score"`
	RuleBasedScore float64           `json:"rule_based_score"`
	AIAdjustment   int               `json:"ai_adjustment"`
	Reason         string            `json:"reason"`
	Actions        []string          `json:"actions"`
	ScoreBreakdown scoring.Breakdown `json:"score_breakdown"`
	Bucket         string            `json:"bucket"`
	LeadData       LeadData          `json:"lead_data"`
}

// AnalyzeResponse is the full batch analysis payload.
type AnalyzeResponse struct {
	Results []LeadResult    `json:"results"`
	Summary scoring.Summary `json:"summary"`
}

// DraftEmailRequest asks for a single AI-drafted sales email.
type DraftEmailRequest struct {
	CustomerName string `json:"customer_name" validate:"required,min=1,max=200"`
	Company      string `json:"company,omitempty" validate:"omitempty,max=200"`
	Reason       string `json:"reason,omitempty" validate:"omitempty,max=2000"`
	EmailType    string `json:"email_type,omitempty" validate:"omitempty,max=50"`
}

// EmailDraft is a drafted outreach email.
type EmailDraft struct {
	Subject      string `json:"subject"`
	Body         string `json:"body"`
	CustomerName string `json:"customer_name"`
}

// BulkEmailLead identifies one recipient in a bulk drafting request.
type BulkEmailLead struct {
	CustomerName string   `json:"customer_name"`
	Reason       string   `json:"reason,omitempty"`
	LeadData     LeadData `json:"lead_data,omitempty"`
}

// BulkEmailRequest asks for drafts for multiple leads.
type BulkEmailRequest struct {
	Leads []BulkEmailLead `json:"leads" validate:"required,min=1"`
}

// BulkEmailResult is the per-lead outcome of a bulk drafting request.
type BulkEmailResult struct {
	CustomerName string      `json:"customer_name"`
	Email        *EmailDraft `json:"email,omitempty"`
	Status       string      `json:"status"`
	Error        string      `json:"error,omitempty"`
}

// BulkEmailResponse is the full bulk drafting payload.
type BulkEmailResponse struct {
	Results []BulkEmailResult `json:"results"`
	Total   int               `json:"total"`
}

// ExportExcelRequest asks for an Excel workbook of analyzed leads.
type ExportExcelRequest struct {
	Results []LeadResult `json:"results" validate:"required"`
}

// ExportCRMRequest asks for CRM-shaped records of analyzed leads.
type ExportCRMRequest struct {
	Leads   []LeadResult `json:"leads" validate:"required"`
	CRMType string       `json:"crm_type" validate:"required,max=50"`
}

// ExportCRMResponse carries CRM-shaped records.
type ExportCRMResponse struct {
	CRMType string        `json:"crm_type"`
	Records []interface{} `json:"records"`
	Total   int           `json:"total"`
}
