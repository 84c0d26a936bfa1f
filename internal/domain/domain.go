package domain

// Document is a single partner profile loaded from the corpus directory.
type Document struct {
	ID      string
	Path    string
	Content string
}

// Chunk is a retrievable unit of text: one paragraph of one document.
type Chunk struct {
	DocID   string
	ChunkID string
	Text    string
	Index   int
}

// ScoredChunk pairs a chunk with its lexical relevance score.
type ScoredChunk struct {
	Chunk Chunk
	Score int
}

// Intent classifies a query for answer synthesis.
type Intent int

const (
	IntentGeneric Intent = iota
	IntentGrowth
	IntentManufacturing
)

func (i Intent) String() string {
	switch i {
	case IntentGrowth:
		return "growth"
	case IntentManufacturing:
		return "manufacturing"
	default:
		return "generic"
	}
}

// Chunker splits documents into chunks suitable for retrieval.
type Chunker interface {
	Chunk(document Document) []Chunk
}

// Retriever indexes chunks once and answers ranked lookups.
// Implementations must not mutate the index after Index returns.
type Retriever interface {
	Index(chunks []Chunk)
	Retrieve(query string, topK int) []ScoredChunk
}

// Synthesizer turns a query and its retrieved context into a display answer.
type Synthesizer interface {
	Synthesize(query string, retrieved []ScoredChunk) string
}

// Engine defines the operations exposed by the application core.
type Engine interface {
	Retrieve(query string, topK int) []ScoredChunk
	Query(query, systemPrompt string) (answer, trace string)
}
