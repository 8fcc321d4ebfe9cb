package orchestrator

// Log prefixes
const (
	LogPrefixProcess = "internal.agent.orchestrator.Process"
	LogPrefixGeneral = "internal.agent.orchestrator.general"
)

const (
	DefaultContextTurns = 3

	GeneralTemperature = 0.7
	GeneralMaxTokens   = 300

	ForcedConfidence = 1.0
	ForcedReasoning  = "Forced by user"
)

const (
	PromptGeneralSystem = `You are a helpful AI assistant. You have access to:
- SQL Agent: For database queries about employees, departments, and projects
- RAG Agent: For company policy and employee handbook questions
- Weather Agent: For weather information
- Recommender Agent: For event and activity recommendations
- Image Agent: For generating images

If the user's request is unclear, ask for clarification.
If you can identify what they need, suggest which capability would help them.`

	PromptGeneralUser = "Previous context:\n%s\n\nCurrent message: %s"
)

// CapabilitiesText is the fixed overview shown by the "caps" command and
// GET /capabilities.
const CapabilitiesText = `
Available Capabilities:
=======================

1. SQL Database Queries
   - Query employee information
   - Department and budget data
   - Project status and details
   Example: "What is the average salary by department?"

2. Document Q&A (RAG)
   - Employee handbook questions
   - Company policies
   - Benefits and PTO information
   Example: "How much PTO do I get?"

3. Weather Information
   - Current weather conditions
   - Weather forecasts
   - Outdoor activity suitability
   Example: "What's the weather in Singapore?"

4. Event Recommendations
   - Activity suggestions based on weather
   - Indoor/outdoor event recommendations
   Example: "What events should I attend today?"

5. Image Generation
   - Create images from text descriptions
   - Multiple artistic styles
   Example: "Generate an image of a sunset over mountains"
`
