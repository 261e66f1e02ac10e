// Package outreach drafts B2B sales emails through the advisory model with
// a deterministic fallback template, so drafting never fails a request.
package outreach

import (
	"context"
	"fmt"
	"strings"

	"revenueradar_backend/internal/leads/advisor"
	"revenueradar_backend/internal/leads/transport"
	"revenueradar_backend/platform/logger"

	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"
)

const (
	// bulkDraftLimit caps how many leads a single bulk request drafts for.
	bulkDraftLimit = 10
	// draftConcurrency bounds parallel model calls during bulk drafting.
	draftConcurrency = 3
)

// Drafter generates outreach emails.
type Drafter struct {
	client advisor.ChatCompleter
	log    *logger.Logger
}

// New creates a drafter. A nil client forces the fallback template.
func New(client advisor.ChatCompleter, log *logger.Logger) *Drafter {
	return &Drafter{client: client, log: log}
}

// Draft produces a sales email for one lead. Model failures and unparseable
// replies fall back to the deterministic template; this method never errors.
func (d *Drafter) Draft(ctx context.Context, customerName, company, reason string) transport.EmailDraft {
	if d.client == nil {
		return d.fallbackDraft(customerName, company, reason)
	}

	reply, err := d.client.ChatCompletion(ctx, emailSystemPrompt, buildEmailPrompt(customerName, company, reason))
	if err != nil {
		d.log.WithContext(ctx).Warn("email draft degraded to template", "error", err)
		return d.fallbackDraft(customerName, company, reason)
	}

	subject, body := parseEmailReply(reply, customerName)
	if body == "" {
		return d.fallbackDraft(customerName, company, reason)
	}

	return transport.EmailDraft{
		Subject:      subject,
		Body:         body,
		CustomerName: customerName,
	}
}

// DraftBulk drafts emails for up to bulkDraftLimit leads with bounded
// concurrency. Each lead gets an independent success or failed status.
func (d *Drafter) DraftBulk(ctx context.Context, leads []transport.BulkEmailLead) transport.BulkEmailResponse {
	if len(leads) > bulkDraftLimit {
		leads = leads[:bulkDraftLimit]
	}

	results := make([]transport.BulkEmailResult, len(leads))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(draftConcurrency)
	for i, lead := range leads {
		i, lead := i, lead
		g.Go(func() error {
			name := lead.CustomerName
			if name == "" {
				name = "Valued Customer"
			}
			companyInfo := fmt.Sprintf("Company: %s, Industry: %s",
				valueOr(lead.LeadData.CompanyName, "N/A"),
				valueOr(lead.LeadData.Industry, "N/A"))

			draft := d.Draft(gctx, name, companyInfo, lead.Reason)
			results[i] = transport.BulkEmailResult{
				CustomerName: name,
				Email:        &draft,
				Status:       "success",
			}
			return nil
		})
	}
	// Draft never errors, so the group only propagates ctx cancellation.
	_ = g.Wait()

	return transport.BulkEmailResponse{Results: results, Total: len(results)}
}

// parseEmailReply extracts subject and body from the model's JSON reply.
// A non-JSON reply is used verbatim as the body with a default subject.
func parseEmailReply(reply, customerName string) (string, string) {
	clean := stripCodeFences(reply)

	defaultSubject := fmt.Sprintf("Partnership Opportunity for %s", customerName)
	if !gjson.Valid(clean) {
		return defaultSubject, clean
	}

	parsed := gjson.Parse(clean)
	subject := parsed.Get("subject").String()
	if subject == "" {
		subject = defaultSubject
	}
	return subject, parsed.Get("body").String()
}

func valueOr(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
