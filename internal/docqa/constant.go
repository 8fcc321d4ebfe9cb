package docqa

// Log prefixes
const (
	LogPrefixInitialize = "internal.docqa.Initialize"
	LogPrefixAsk        = "internal.docqa.Ask"
)

const (
	DefaultDocumentPath = "employee_handbook.txt"
	DefaultChunkSize    = 2000
	DefaultChunkOverlap = 200
	DefaultTopK         = 3
	DefaultMemoryWindow = 5
	DefaultTemperature  = 0.3

	// EmbedBatchSize bounds the number of chunks per embeddings call.
	EmbedBatchSize = 64

	SourcePreviewLen = 200
)

// DefaultSeparators are tried in order by the splitter.
var DefaultSeparators = []string{"\n\n", "\n", ". ", " ", ""}

const PromptCondense = `Given the following conversation and a follow up question, rephrase the follow up question to be a standalone question, in its original language.

Chat History:
%s
Follow Up Input: %s
Standalone question:`

const PromptAnswer = `Use the following pieces of context to answer the user's question.
If you don't know the answer, just say that you don't know, don't try to make up an answer.
----------------
%s`
