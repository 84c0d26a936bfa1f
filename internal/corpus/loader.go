// Package corpus loads partner profile documents from a directory.
package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"partnerinsights/internal/domain"
)

const markdownExt = ".md"

// Load reads every markdown file in dir into a document, using the
// filename without extension as the document id. A missing directory is
// not an error: the caller degrades to "no information" answers.
func Load(dir string) ([]domain.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var docs []domain.Document
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), markdownExt) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		docs = append(docs, domain.Document{
			ID:      strings.TrimSuffix(entry.Name(), markdownExt),
			Path:    path,
			Content: string(data),
		})
	}
	return docs, nil
}
