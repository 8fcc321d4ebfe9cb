package agent

// Catalogue describes each capability with sample requests.
var Catalogue = map[Label]Descriptor{
	LabelSQL: {
		Label:       LabelSQL,
		Description: "Database queries about employees, departments, salaries, projects, budgets",
		Examples: []string{
			"What is the average salary by department?",
			"Show me all employees in Engineering",
			"Which projects are currently active?",
		},
	},
	LabelDocumentQA: {
		Label:       LabelDocumentQA,
		Description: "Company policies, employee handbook, HR questions, benefits, PTO, leave policies",
		Examples: []string{
			"How much PTO do I get?",
			"What is the remote work policy?",
			"What health benefits are offered?",
		},
	},
	LabelWeather: {
		Label:       LabelWeather,
		Description: "Current weather conditions and forecasts for any location",
		Examples: []string{
			"What's the weather in Singapore?",
			"Weather forecast for London",
			"Is it good weather for outdoor activities in Tokyo?",
		},
	},
	LabelRecommend: {
		Label:       LabelRecommend,
		Description: "Event and activity recommendations based on weather and preferences",
		Examples: []string{
			"What events should I attend today?",
			"Recommend outdoor activities",
			"What indoor events are available?",
		},
	},
	LabelImage: {
		Label:       LabelImage,
		Description: "Generate images from text descriptions",
		Examples: []string{
			"Generate an image of a sunset over mountains",
			"Create a watercolor painting of a cat",
			"Draw a futuristic city",
		},
	},
	LabelGeneral: {
		Label:       LabelGeneral,
		Description: "General conversation, greetings, unclear requests",
		Examples: []string{
			"Hello! What can you help me with?",
		},
	},
}
