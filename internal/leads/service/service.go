// Package service orchestrates the lead analysis pipeline: normalize rows,
// score every lead, run the best-effort advisory stage, and assemble the
// sorted batch response.
package service

import (
	"context"
	"sort"
	"strconv"

	"revenueradar_backend/internal/leads/advisor"
	"revenueradar_backend/internal/leads/ingest"
	"revenueradar_backend/internal/leads/transport"
	"revenueradar_backend/internal/scoring"
	"revenueradar_backend/platform/logger"

	"github.com/google/uuid"
)

// AdvicePort is the advisory stage boundary.
type AdvicePort interface {
	BatchAdvice(ctx context.Context, prospects []advisor.Prospect) map[string]advisor.Advice
}

// Service runs batch lead analysis.
type Service struct {
	engine  *scoring.Engine
	advisor AdvicePort
	log     *logger.Logger
}

// New creates the analysis service.
func New(engine *scoring.Engine, advicePort AdvicePort, log *logger.Logger) *Service {
	return &Service{engine: engine, advisor: advicePort, log: log}
}

// AnalyzeBatch scores every row and returns results sorted by final score
// descending, ties keeping upload order. Every submitted lead receives a
// complete result; advisory failures only show up as zero adjustments.
func (s *Service) AnalyzeBatch(ctx context.Context, rows []ingest.Row) transport.AnalyzeResponse {
	leads := ingest.Normalize(rows)
	batchID := uuid.New().String()

	prospects := make([]advisor.Prospect, 0, len(leads))
	ruleScores := make([]float64, len(leads))
	breakdowns := make([]scoring.Breakdown, len(leads))
	for i, lead := range leads {
		ruleScore, breakdown := s.engine.Score(lead)
		ruleScores[i] = ruleScore
		breakdowns[i] = breakdown
		prospects = append(prospects, advisor.Prospect{
			Lead:           lead,
			RuleBasedScore: ruleScore,
			ScoreBreakdown: breakdown,
		})
	}

	advice := s.advisor.BatchAdvice(ctx, prospects)

	results := make([]transport.LeadResult, len(leads))
	finalScores := make([]int, len(leads))
	for i, lead := range leads {
		entry, ok := advice[lead.LeadID]
		if !ok {
			// Positional-index fallback for entries the model keyed by row.
			entry = advice[strconv.Itoa(i)]
		}

		finalScore := scoring.FinalScore(ruleScores[i], entry.Adjustment)
		finalScores[i] = finalScore

		reason := entry.Reason
		if reason == "" {
			reason = advisor.FallbackReason(breakdowns[i])
		}
		actions := entry.Actions
		if len(actions) == 0 {
			actions = advisor.FallbackActions(finalScore)
		}

		results[i] = transport.LeadResult{
			CustomerName:   lead.DisplayName(i + 1),
			Score:          finalScore,
			RuleBasedScore: ruleScores[i],
			AIAdjustment:   entry.Adjustment,
			Reason:         reason,
			Actions:        actions,
			ScoreBreakdown: breakdowns[i],
			Bucket:         scoring.BucketFor(finalScore),
			LeadData:       leadData(lead),
		}
	}

	// Stable sort keeps upload order among equal scores.
	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Score > results[b].Score
	})

	summary := scoring.Summarize(finalScores)
	s.log.WithContext(ctx).BatchScored(batchID, summary.TotalLeads, summary.HotLeads, summary.WarmLeads, summary.ColdLeads, summary.AverageScore)

	return transport.AnalyzeResponse{
		Results: results,
		Summary: summary,
	}
}

func leadData(lead scoring.Lead) transport.LeadData {
	return transport.LeadData{
		LeadID:           lead.LeadID,
		CompanyName:      lead.CompanyName,
		Industry:         lead.Industry,
		Country:          lead.Country,
		City:             lead.City,
		EmployeeCount:    lead.EmployeeCount,
		AnnualRevenue:    lead.AnnualRevenueUSD,
		ContactName:      contactName(lead),
		ContactEmail:     lead.ContactEmail,
		ContactPhone:     lead.ContactPhone,
		JobTitle:         lead.JobTitle,
		BudgetRange:      lead.BudgetRange,
		PurchaseTimeline: lead.PurchaseTimeline,
		LeadSource:       lead.LeadSource,
		PainPoints:       lead.PainPoints,
		CurrentSolution:  lead.CurrentSolution,
		DemoRequested:    lead.DemoRequested,
		FreeTrial:        lead.FreeTrialSignup,
	}
}

func contactName(lead scoring.Lead) string {
	name := lead.ContactFirstName
	if lead.ContactLastName != "" {
		if name != "" {
			name += " "
		}
		name += lead.ContactLastName
	}
	return name
}
