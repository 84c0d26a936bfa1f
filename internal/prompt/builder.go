// Package prompt renders the deterministic prompt template carried back
// to callers as the query trace.
package prompt

import (
	"strings"

	"partnerinsights/internal/domain"
)

// DefaultSystem is the instruction used when the caller supplies none.
const DefaultSystem = "You are a Partner Insights Assistant. Using the following retrieved context, answer the user's question accurately. If the answer is not in the context, state that you don't have enough information."

// ResponseMarker terminates the rendered template. The engine splices
// the synthesized answer in directly after it.
const ResponseMarker = "RESPONSE:"

// Build renders the prompt: system instruction, a CONTEXT section with
// one labeled block per retrieved chunk, the verbatim user question,
// and the trailing response marker. Identical inputs render identical text.
func Build(query string, retrieved []domain.ScoredChunk, systemPrompt string) string {
	system := systemPrompt
	if system == "" {
		system = DefaultSystem
	}
	sections := make([]string, 0, len(retrieved))
	for _, sc := range retrieved {
		sections = append(sections, "--- Context from "+sc.Chunk.DocID+" ---\n"+sc.Chunk.Text)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(system)
	b.WriteString("\n\nCONTEXT:\n")
	b.WriteString(strings.Join(sections, "\n\n"))
	b.WriteString("\n\nUSER QUESTION:\n")
	b.WriteString(query)
	b.WriteString("\n\n")
	b.WriteString(ResponseMarker)
	b.WriteString("\n")
	return b.String()
}
