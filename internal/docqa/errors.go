package docqa

import "errors"

var (
	ErrDocumentMissing = errors.New("document not found")
	ErrEmptyDocument   = errors.New("document is empty")
	ErrNotInitialized  = errors.New("RAG Agent not initialized. Document may be missing.")
	ErrEmbeddingCount  = errors.New("embedding count mismatch")
)
