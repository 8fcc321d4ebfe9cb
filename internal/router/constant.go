package router

import "multi-agent-assistant/internal/agent"

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Router prompts
const (
	PromptRouterSystem = "You are an intent classifier. Respond only with valid JSON."

	PromptRouterUser = `Classify the user's intent into one of these categories:
- sql: Database queries (employees, departments, salaries, projects, budgets)
- document-qa: Company policy questions (HR policies, benefits, PTO, handbook, leave)
- weather: Weather information requests
- recommend: Event or activity recommendations
- image: Image generation requests
- general: General conversation or unclear intent

Recent conversation context:
%s

User input: "%s"

Respond with a JSON object containing:
- "agent": the category name
- "confidence": number between 0 and 1
- "reasoning": brief explanation

JSON response:`

	PromptNoContext = "No prior context"
)

// Router configuration
const (
	RouterTemperature        = 0.1
	RouterMaxTokens          = 150
	RouterFallbackLabel      = agent.LabelGeneral
	RouterFallbackConfidence = 0.0
)

// Error messages
const (
	ErrMsgLLMCallFailed   = "LLM call failed, falling back to general"
	ErrMsgJSONParseFailed = "Failed to parse JSON, falling back to general"
)

// Fallback reasons
const (
	ReasonClassificationError = "Classification error: %v"
	ReasonParsingError        = "Could not parse intent"
)

// aliases maps label spellings models commonly produce onto the closed set.
var aliases = map[string]agent.Label{
	"rag":            agent.LabelDocumentQA,
	"docqa":          agent.LabelDocumentQA,
	"document_qa":    agent.LabelDocumentQA,
	"document-qa":    agent.LabelDocumentQA,
	"recommendation": agent.LabelRecommend,
	"recommender":    agent.LabelRecommend,
}
