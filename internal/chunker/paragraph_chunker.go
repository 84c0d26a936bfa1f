package chunker

import (
	"strconv"
	"strings"

	"partnerinsights/internal/domain"
)

// ParagraphChunker splits document content on blank-line boundaries.
// Each surviving paragraph becomes one chunk with a stable id of the
// form "<doc_id>_<paragraph_index>".
type ParagraphChunker struct{}

func NewParagraph() *ParagraphChunker { return &ParagraphChunker{} }

func (c *ParagraphChunker) Chunk(document domain.Document) []domain.Chunk {
	paras := strings.Split(document.Content, "\n\n")
	var chunks []domain.Chunk
	for i, p := range paras {
		text := strings.TrimSpace(p)
		if text == "" {
			continue
		}
		chunks = append(chunks, domain.Chunk{
			DocID:   document.ID,
			ChunkID: document.ID + "_" + strconv.Itoa(i),
			Text:    text,
			Index:   i,
		})
	}
	return chunks
}
