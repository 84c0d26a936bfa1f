// Package engine wires corpus loading, chunking, retrieval, and answer
// synthesis into the query façade the presentation layer consumes.
package engine

import (
	"strings"

	"partnerinsights/internal/domain"
	"partnerinsights/internal/logger"
	"partnerinsights/internal/prompt"
)

// FailureMarker prefixes the trace when retrieval returns nothing.
const FailureMarker = "RETRIVAL FAILED"

// NoInformation is the fixed answer for an empty retrieval.
const NoInformation = "I couldn't find any relevant details in the current partner knowledge base to answer that."

// Engine holds the immutable chunk sequence built once at construction.
// Queries only read it, so one instance is safe for concurrent readers;
// picking up corpus changes means constructing a new Engine.
type Engine struct {
	documents []domain.Document
	chunks    []domain.Chunk
	retriever domain.Retriever
	synth     domain.Synthesizer
	topK      int
}

// New chunks every document and indexes the result. topK bounds the
// number of chunks a query retrieves; non-positive values use 5.
func New(documents []domain.Document, chunker domain.Chunker, retriever domain.Retriever, synth domain.Synthesizer, topK int) *Engine {
	if topK <= 0 {
		topK = 5
	}
	var chunks []domain.Chunk
	for _, doc := range documents {
		chunks = append(chunks, chunker.Chunk(doc)...)
	}
	retriever.Index(chunks)
	return &Engine{
		documents: documents,
		chunks:    chunks,
		retriever: retriever,
		synth:     synth,
		topK:      topK,
	}
}

// DocumentCount reports how many profiles were loaded.
func (e *Engine) DocumentCount() int { return len(e.documents) }

// ChunkCount reports how many retrievable chunks the corpus produced.
func (e *Engine) ChunkCount() int { return len(e.chunks) }

// Retrieve returns the top chunks for the query. A non-positive topK
// falls back to the engine's configured default.
func (e *Engine) Retrieve(query string, topK int) []domain.ScoredChunk {
	if topK <= 0 {
		topK = e.topK
	}
	return e.retriever.Retrieve(query, topK)
}

// Query runs the full workflow: retrieve, synthesize an answer, and
// render the prompt with the answer spliced in after the response
// marker. The second return value is that rendered trace. An empty
// retrieval short-circuits to the fixed no-information answer.
func (e *Engine) Query(userQuery, systemPrompt string) (string, string) {
	retrieved := e.retriever.Retrieve(userQuery, e.topK)
	if len(retrieved) == 0 {
		logger.Debug("rag query: user=%q retrieval empty", userQuery)
		return NoInformation, FailureMarker + "\n\n" + NoInformation
	}

	response := e.synth.Synthesize(userQuery, retrieved)

	rendered := prompt.Build(userQuery, retrieved, systemPrompt)
	trace := strings.Replace(rendered, prompt.ResponseMarker, prompt.ResponseMarker+"\n"+response, 1)

	logger.Debug("rag query: user=%q chunks=%d response_len=%d", userQuery, len(retrieved), len(response))
	return response, trace
}
