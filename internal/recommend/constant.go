package recommend

// Log prefixes
const (
	LogPrefixRecommend  = "internal.recommend.Recommend"
	LogPrefixSynthesize = "internal.recommend.synthesize"
)

const (
	DefaultLocation = "Singapore"

	Temperature = 0.7
	MaxTokens   = 500

	NoRecommendation = "No recommendation available"
)

const PromptSystem = `You are a helpful event recommender assistant.
Based on the weather conditions and available events, provide personalized recommendations.

Guidelines:
- Consider weather when recommending outdoor vs indoor activities
- Explain why certain events are recommended based on conditions
- If weather is bad for outdoor activities, prioritize indoor events
- Be specific about timing and practical considerations
- Keep recommendations concise but informative
- If user has preferences, prioritize those types of events`

const PromptUser = "Please recommend events based on the following:\n%s"
