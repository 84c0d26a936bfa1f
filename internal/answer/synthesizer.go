// Package answer synthesizes templated natural-language answers from
// retrieved partner profile chunks.
package answer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"partnerinsights/internal/domain"
)

const (
	closing = "\n\n**[IBM AI Insight]**: This data suggests a healthy pipeline for GenAI enablement. I recommend focusing on partners with growth >15% for the upcoming IBM ecosystem waves."

	noThresholdMatch = "I found growth data for several partners, but none currently exceed the specifically requested 20% growth threshold."
	noGrowthMetrics  = "I see mentions of growth initiatives in the partner profiles, but specific percentage metrics were not found in the retrieved sections."
	noManufacturing  = "I couldn't find any partners specifically tagged with Manufacturing industry focus in the current retrieved documents."
)

// growthRe is the fixed sub-grammar "Revenue growth of <decimal>%" the
// growth handler extracts percentages with. Profile documents that lack
// the phrase simply contribute nothing.
var growthRe = regexp.MustCompile(`Revenue growth of ([\d.]+)%`)

// Classify decides which handler answers the query. Priority order:
// growth, then manufacturing, then generic; the first match wins.
// Growth also triggers off the retrieved context so follow-up phrasing
// like "tell me more about those partners" stays in the growth flow.
func Classify(query, contextText string) domain.Intent {
	q := strings.ToLower(query)
	if strings.Contains(q, "growth") || strings.Contains(strings.ToLower(contextText), "growth") {
		return domain.IntentGrowth
	}
	if strings.Contains(q, "manufacturing") {
		return domain.IntentManufacturing
	}
	return domain.IntentGeneric
}

// Synthesizer produces heuristic answers routed by query intent.
type Synthesizer struct{}

func New() *Synthesizer { return &Synthesizer{} }

// Synthesize builds the answer for a non-empty retrieval and appends
// the fixed closing insight. Retrieved must not be empty; the engine
// handles the empty case before calling.
func (s *Synthesizer) Synthesize(query string, retrieved []domain.ScoredChunk) string {
	texts := make([]string, 0, len(retrieved))
	for _, sc := range retrieved {
		texts = append(texts, sc.Chunk.Text)
	}

	var resp string
	switch Classify(query, strings.Join(texts, " ")) {
	case domain.IntentGrowth:
		resp = growthAnswer(query, retrieved)
	case domain.IntentManufacturing:
		resp = manufacturingAnswer(retrieved)
	default:
		resp = genericAnswer(retrieved)
	}
	return resp + closing
}

func growthAnswer(query string, retrieved []domain.ScoredChunk) string {
	type match struct {
		docID string
		value string
	}
	var matches []match
	for _, sc := range retrieved {
		if m := growthRe.FindStringSubmatch(sc.Chunk.Text); m != nil {
			matches = append(matches, match{docID: sc.Chunk.DocID, value: m[1]})
		}
	}
	if len(matches) == 0 {
		return noGrowthMetrics
	}

	// The high-growth filter triggers on these literal substrings in the
	// raw query; other thresholds are not parsed.
	filterHigh := strings.Contains(query, ">20") || strings.Contains(query, "high")

	var bullets []string
	for _, gm := range matches {
		if filterHigh {
			v, err := strconv.ParseFloat(gm.value, 64)
			if err != nil || v <= 20 {
				continue
			}
			bullets = append(bullets, fmt.Sprintf("- **%s** (%s%% growth) - High Momentum", gm.docID, gm.value))
		} else {
			bullets = append(bullets, fmt.Sprintf("- **%s** (%s%% growth)", gm.docID, gm.value))
		}
	}
	if len(bullets) == 0 {
		return noThresholdMatch
	}
	return "### Detailed Growth Analysis\n" + strings.Join(bullets, "\n")
}

func manufacturingAnswer(retrieved []domain.ScoredChunk) string {
	var partners []string
	seen := make(map[string]struct{})
	for _, sc := range retrieved {
		if !strings.Contains(strings.ToLower(sc.Chunk.Text), "manufacturing") {
			continue
		}
		if _, ok := seen[sc.Chunk.DocID]; ok {
			continue
		}
		seen[sc.Chunk.DocID] = struct{}{}
		partners = append(partners, sc.Chunk.DocID)
	}
	if len(partners) == 0 {
		return noManufacturing
	}
	return fmt.Sprintf("The following partners are currently categorized as **Manufacturing** sector experts: %s.", strings.Join(partners, ", "))
}

func genericAnswer(retrieved []domain.ScoredChunk) string {
	var partners []string
	seen := make(map[string]struct{})
	for _, sc := range retrieved {
		if _, ok := seen[sc.Chunk.DocID]; ok {
			continue
		}
		seen[sc.Chunk.DocID] = struct{}{}
		partners = append(partners, sc.Chunk.DocID)
	}
	return fmt.Sprintf("I have analyzed profiles for %s. Most show a strong strategic focus on digital transformation and IBM watsonx integration.", strings.Join(partners, ", "))
}
