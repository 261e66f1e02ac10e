package outreach

import (
	"fmt"
	"strings"

	"revenueradar_backend/internal/leads/transport"
)

const emailSystemPrompt = `You are an expert B2B sales analyst. Analyze leads and provide:
1. Detailed reasoning for the score
2. Specific, actionable recommendations as bullet points
3. Professional insights based on the data
Always respond in valid JSON format. Use English language only.`

const emailPromptTemplate = `Create a professional B2B sales email for %s.

Company: %s
Context: %s

Write a compelling sales email with:
1. Catchy subject line
2. Professional greeting
3. Personalized opening paragraph
4. Value proposition paragraph
5. Call to action paragraph
6. Professional closing

Respond ONLY with valid JSON (no markdown, no extra text):
{"subject": "your subject here", "body": "Dear [Name],\n\nFirst paragraph...\n\nSecond paragraph...\n\nThird paragraph...\n\nBest regards,\n[Your name]"}`

func buildEmailPrompt(customerName, company, reason string) string {
	return fmt.Sprintf(emailPromptTemplate, customerName, company, reason)
}

// fallbackDraft is the deterministic email used when the model is
// unavailable or returned nothing usable.
func (d *Drafter) fallbackDraft(customerName, company, reason string) transport.EmailDraft {
	pitch := reason
	if pitch == "" {
		pitch = "Based on your company profile, I believe we could provide significant value to your organization."
	}

	org := company
	if org == "" {
		org = "your organization"
	}

	body := fmt.Sprintf(`Dear %s,

I hope this email finds you well. I wanted to reach out regarding a potential partnership opportunity that could benefit %s.

%s

I would love to schedule a brief call to discuss how we might work together. Would you have 15-20 minutes available this week?

Looking forward to connecting.

Best regards,
Sales Team`, customerName, org, pitch)

	return transport.EmailDraft{
		Subject:      fmt.Sprintf("Partnership Opportunity for %s", customerName),
		Body:         body,
		CustomerName: customerName,
	}
}

func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = text[len("```json"):]
	}
	if strings.HasPrefix(text, "```") {
		text = text[len("```"):]
	}
	if strings.HasSuffix(text, "```") {
		text = text[:len(text)-len("```")]
	}
	return strings.TrimSpace(text)
}
