// Package advisor implements the optional AI advisory stage: one bounded
// chat-completions call per batch that may adjust rule-based scores by at
// most +/-15 points. Any failure degrades the whole stage to zero
// adjustments; scoring never depends on this package succeeding.
package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"revenueradar_backend/internal/scoring"
	"revenueradar_backend/platform/config"
	"revenueradar_backend/platform/logger"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// ChatCompleter is the single-call LLM boundary the advisor depends on.
type ChatCompleter interface {
	ChatCompletion(ctx context.Context, system, user string) (string, error)
}

// Prospect is a scored lead as presented to the advisory model.
type Prospect struct {
	scoring.Lead
	RuleBasedScore float64           `json:"rule_based_score"`
	ScoreBreakdown scoring.Breakdown `json:"score_breakdown"`
}

// Advice is one advisory verdict for a lead. Adjustment is already clamped
// to the [-15, 15] contract; Reason and Actions are opaque pass-through text.
type Advice struct {
	Adjustment int
	Reason     string
	Actions    []string
}

// Advisor runs the batch advisory call.
type Advisor struct {
	client   ChatCompleter
	log      *logger.Logger
	timeout  time.Duration
	maxLeads int
	enabled  bool
}

// New creates an advisor. When the Groq API key is not configured the
// advisor stays permanently degraded and every batch gets zero adjustments.
func New(client ChatCompleter, cfg config.AdvisoryConfig, log *logger.Logger) *Advisor {
	timeout := cfg.GetAdvisoryTimeout()
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	maxLeads := cfg.GetAdvisoryMaxLeads()
	if maxLeads <= 0 {
		maxLeads = 30
	}

	return &Advisor{
		client:   client,
		log:      log,
		timeout:  timeout,
		maxLeads: maxLeads,
		enabled:  cfg.IsGroqEnabled() && client != nil,
	}
}

// BatchAdvice requests advisory adjustments for a batch, capped to the first
// maxLeads prospects. The returned map is keyed by lead id (or positional
// index for entries the model keyed that way). It is never nil and is empty
// whenever the stage degrades.
func (a *Advisor) BatchAdvice(ctx context.Context, prospects []Prospect) map[string]Advice {
	advice := map[string]Advice{}
	if !a.enabled || len(prospects) == 0 {
		return advice
	}

	if len(prospects) > a.maxLeads {
		prospects = prospects[:a.maxLeads]
	}

	batchID := uuid.New().String()

	callCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	userPrompt, err := buildBatchPrompt(prospects)
	if err != nil {
		a.log.AdvisoryDegraded(batchID, len(prospects), err)
		return advice
	}

	reply, err := a.client.ChatCompletion(callCtx, systemPrompt, userPrompt)
	if err != nil {
		a.log.AdvisoryDegraded(batchID, len(prospects), err)
		return advice
	}

	parsed, err := parseAdvice(reply)
	if err != nil {
		a.log.AdvisoryDegraded(batchID, len(prospects), err)
		return advice
	}

	a.log.Debug("advisory batch complete", "batch_id", batchID, "entries", len(parsed))
	return parsed
}

// parseAdvice parses the model's JSON array tolerantly: markdown fences are
// stripped, non-numeric adjustments read as 0, and adjustments are clamped.
func parseAdvice(reply string) (map[string]Advice, error) {
	clean := stripCodeFences(reply)

	result := gjson.Parse(clean)
	if !result.IsArray() {
		return nil, fmt.Errorf("advisory response is not a JSON array")
	}

	advice := map[string]Advice{}
	result.ForEach(func(_, entry gjson.Result) bool {
		leadID := entry.Get("lead_id").String()
		if leadID == "" {
			return true
		}

		var actions []string
		entry.Get("actions").ForEach(func(_, action gjson.Result) bool {
			if s := action.String(); s != "" {
				actions = append(actions, s)
			}
			return true
		})

		advice[leadID] = Advice{
			Adjustment: scoring.ClampAdjustment(int(entry.Get("ai_adjustment").Int())),
			Reason:     entry.Get("reason").String(),
			Actions:    actions,
		}
		return true
	})

	return advice, nil
}

func buildBatchPrompt(prospects []Prospect) (string, error) {
	payload, err := json.Marshal(prospects)
	if err != nil {
		return "", fmt.Errorf("failed to encode prospects: %w", err)
	}
	return fmt.Sprintf(batchPromptTemplate, string(payload)), nil
}
