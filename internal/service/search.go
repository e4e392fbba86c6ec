package service

import (
	"strings"

	"github.com/xolan/devjournal/internal/entry"
	"github.com/xolan/devjournal/internal/filter"
	"github.com/xolan/devjournal/internal/storage"
)

// SearchService provides search operations for entries
type SearchService struct {
	store *storage.Store
}

// NewSearchService creates a new SearchService
func NewSearchService(store *storage.Store) *SearchService {
	return &SearchService{store: store}
}

// Search finds entries containing query (case-insensitive).
// Results keep the journal's stored order within each tier.
func (s *SearchService) Search(query string, titlesOnly bool) (*SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, entry.ErrInvalidInput
	}

	entries := s.store.Load()
	return &SearchResult{
		Query:      query,
		TitlesOnly: titlesOnly,
		Matches:    filter.Search(entries, query, titlesOnly),
		Total:      len(entries),
	}, nil
}
