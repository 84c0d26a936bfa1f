// Package retriever ranks chunks by lexical overlap with the query.
package retriever

import (
	"regexp"
	"sort"
	"strings"

	"partnerinsights/internal/domain"
)

// DefaultTopK is used when a caller passes a non-positive top-K.
const DefaultTopK = 5

var wordRe = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Boost adds Weight to a chunk's score when both the query and the
// chunk text contain Keyword, case-insensitively.
type Boost struct {
	Keyword string
	Weight  int
}

// Lexical scores chunks by the number of distinct case-folded word
// tokens they share with the query, plus configured topic boosts.
// Query tokens collapse to a set, so repetition carries no extra weight.
type Lexical struct {
	boosts []Boost
	chunks []domain.Chunk
}

func NewLexical(boosts []Boost) *Lexical {
	normalized := make([]Boost, 0, len(boosts))
	for _, b := range boosts {
		if b.Keyword == "" {
			continue
		}
		normalized = append(normalized, Boost{Keyword: strings.ToLower(b.Keyword), Weight: b.Weight})
	}
	return &Lexical{boosts: normalized}
}

// Index replaces the retrievable chunk sequence. Called once at engine
// construction; the slice is read-only afterwards.
func (l *Lexical) Index(chunks []domain.Chunk) {
	l.chunks = chunks
}

// Retrieve returns at most topK chunks with strictly positive score,
// ordered by score descending. Ties keep their original relative order.
// A non-positive topK falls back to DefaultTopK.
func (l *Lexical) Retrieve(query string, topK int) []domain.ScoredChunk {
	if topK <= 0 {
		topK = DefaultTopK
	}
	queryTokens := tokenSet(query)
	queryLower := strings.ToLower(query)

	scored := make([]domain.ScoredChunk, 0, len(l.chunks))
	for _, ch := range l.chunks {
		textLower := strings.ToLower(ch.Text)
		score := overlap(queryTokens, textLower)
		for _, b := range l.boosts {
			if strings.Contains(queryLower, b.Keyword) && strings.Contains(textLower, b.Keyword) {
				score += b.Weight
			}
		}
		scored = append(scored, domain.ScoredChunk{Chunk: ch, Score: score})
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })

	if topK > len(scored) {
		topK = len(scored)
	}
	out := make([]domain.ScoredChunk, 0, topK)
	for _, sc := range scored[:topK] {
		if sc.Score > 0 {
			out = append(out, sc)
		}
	}
	return out
}

func tokenSet(s string) map[string]struct{} {
	tokens := wordRe.FindAllString(strings.ToLower(s), -1)
	m := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		m[t] = struct{}{}
	}
	return m
}

// overlap counts the distinct tokens of text that also appear in queryTokens.
func overlap(queryTokens map[string]struct{}, text string) int {
	tokens := wordRe.FindAllString(text, -1)
	seen := make(map[string]struct{}, len(tokens))
	count := 0
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		if _, ok := queryTokens[t]; ok {
			count++
		}
	}
	return count
}
