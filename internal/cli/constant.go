package cli

const (
	ruleWidth        = 60
	historyPreview   = 50
	demoPreview      = 500
	truncatedMessage = "... [truncated]"
)

const banner = `
╔════════════════════════════════════════════════════════════════╗
║                                                                ║
║            INTEGRATED AI ASSISTANT                             ║
║            ========================                            ║
║                                                                ║
║    A Multi-Agent System for Enterprise Tasks                   ║
║                                                                ║
║    Capabilities:                                               ║
║    - SQL Database Queries                                      ║
║    - Document Q&A (RAG)                                        ║
║    - Weather Information                                       ║
║    - Event Recommendations                                     ║
║    - Image Generation                                          ║
║                                                                ║
╚════════════════════════════════════════════════════════════════╝
`

const helpText = `
COMMANDS:
---------
  help     - Show this help message
  caps     - Show detailed capabilities
  clear    - Clear conversation memory
  history  - Show conversation history
  demo     - Run sample queries for each capability
  exit     - Exit the application

EXAMPLE QUERIES:
----------------
  SQL:      "What is the average salary by department?"
  RAG:      "How much PTO do I get as a new employee?"
  Weather:  "What's the weather in Singapore?"
  Recommend:"What events should I attend today?"
  Image:    "Generate an image of a sunset"

TIPS:
-----
  - The assistant automatically detects your intent
  - Follow-up questions use context from previous turns
  - Use 'clear' to start a fresh conversation
`

type demoQuery struct {
	Title string
	Query string
}

var demoQueries = []demoQuery{
	{"SQL Agent", "What is the average salary in each department?"},
	{"RAG Agent", "How much PTO do I get as a new employee?"},
	{"RAG Agent (Follow-up)", "Does it roll over to the next year?"},
	{"Weather Agent", "What's the weather in London?"},
	{"Recommender Agent", "What events should I attend today in Singapore?"},
	{"General", "Hello! What can you help me with?"},
}
