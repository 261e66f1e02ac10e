package advisor

import "strings"

const systemPrompt = `You are an expert B2B sales analyst. Analyze leads and provide:
1. Detailed reasoning for the score
2. Specific, actionable recommendations as bullet points
3. Professional insights based on the data
Always respond in valid JSON format. Use English language only.`

const batchPromptTemplate = `Analyze these B2B leads. I've calculated rule-based scores.

For each lead, provide:
1. AI score adjustment (-15 to +15 based on qualitative factors)
2. Detailed reason (2-3 sentences)
3. Action items as bullet points (4-5 specific actions)

Lead Data:
%s

Respond with JSON array:
[{"lead_id": "<id>", "ai_adjustment": <-15 to 15>, "reason": "<explanation>", "actions": ["action1", "action2", "action3", "action4"]}]

Actions should be very specific like:
- "Schedule discovery call within 24 hours - they have immediate purchase timeline"
- "Send case study from their industry sector to demonstrate relevant experience"
- "Connect on LinkedIn to build relationship with decision maker"
- "Prepare ROI calculator based on their budget range"`

// stripCodeFences removes a leading/trailing markdown code fence so fenced
// JSON replies still parse.
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
