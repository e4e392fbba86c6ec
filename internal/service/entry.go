package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/xolan/devjournal/internal/config"
	"github.com/xolan/devjournal/internal/entry"
	"github.com/xolan/devjournal/internal/fake"
	"github.com/xolan/devjournal/internal/filter"
	"github.com/xolan/devjournal/internal/storage"
)

// Common errors for the entry service
var (
	ErrEntryNotFound = errors.New("no entry was found with this ID")
	ErrPopulateLimit = fmt.Errorf("number of items exceeds %d", MaxPopulate)
)

// ContentFunc obtains the new content for the entry being edited.
// It runs inside the session, after the entry has been found.
type ContentFunc func(e entry.Entry) (string, error)

// EntryService provides operations for managing journal entries
type EntryService struct {
	store  *storage.Store
	config config.Config
	now    func() time.Time
}

// NewEntryService creates a new EntryService
func NewEntryService(store *storage.Store, cfg config.Config) *EntryService {
	return &EntryService{
		store:  store,
		config: cfg,
		now:    time.Now,
	}
}

func (s *EntryService) options() entry.Options {
	return entry.Options{
		IDWidth:      s.config.IDWidth,
		LengthPolicy: entry.LengthPolicy(s.config.LengthPolicy),
		Now:          s.now,
	}
}

// insert places e at the end or the front of the collection per insert_position
func (s *EntryService) insert(entries *[]entry.Entry, e entry.Entry) {
	if s.config.InsertPosition == config.InsertPrepend {
		*entries = append([]entry.Entry{e}, *entries...)
		return
	}
	*entries = append(*entries, e)
}

// Add creates a new entry from title, content and comma-separated tags.
func (s *EntryService) Add(title, content, rawTags string) (*AddResult, error) {
	var result *AddResult

	err := s.store.Session(func(entries *[]entry.Entry) error {
		e, truncations, err := entry.Create(title, content, *entries, s.options())
		if err != nil {
			return err
		}
		e.Tags = entry.ParseTags(rawTags, entry.SplitComma)

		s.insert(entries, e)
		result = &AddResult{Entry: e, Truncations: truncations}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Edit replaces the content of the entry with the given id.
// contentFn is only called once the entry is known to exist.
func (s *EntryService) Edit(id string, contentFn ContentFunc) (*entry.Entry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, entry.ErrInvalidInput
	}

	var updated *entry.Entry
	err := s.store.Session(func(entries *[]entry.Entry) error {
		idx := indexOf(*entries, id)
		if idx < 0 {
			return ErrEntryNotFound
		}

		content, err := contentFn((*entries)[idx])
		if err != nil {
			return err
		}
		content = strings.TrimSpace(content)
		if content == "" {
			return entry.ErrInvalidInput
		}

		(*entries)[idx].Content = content
		e := (*entries)[idx]
		updated = &e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the entry with the given id and returns it.
func (s *EntryService) Delete(id string) (*entry.Entry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, entry.ErrInvalidInput
	}

	var removed *entry.Entry
	err := s.store.Session(func(entries *[]entry.Entry) error {
		idx := indexOf(*entries, id)
		if idx < 0 {
			return ErrEntryNotFound
		}

		e := (*entries)[idx]
		removed = &e
		*entries = append((*entries)[:idx], (*entries)[idx+1:]...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

// Get returns the entry with the given id.
func (s *EntryService) Get(id string) (*entry.Entry, error) {
	entries := s.store.Load()
	idx := indexOf(entries, strings.TrimSpace(id))
	if idx < 0 {
		return nil, ErrEntryNotFound
	}
	e := entries[idx]
	return &e, nil
}

// List returns every entry, most recent id first, keeping those that carry
// any of tags when tags is non-empty.
func (s *EntryService) List(tags []string) *ListResult {
	entries := s.store.Load()
	f := filter.NewFilter(tags)

	return &ListResult{
		Entries:  filter.FilterEntries(SortByIDDesc(entries), f),
		Total:    len(entries),
		Filtered: !f.IsEmpty(),
	}
}

// IDs returns every entry id with its title, most recent first (used for completion).
func (s *EntryService) IDs() []entry.Entry {
	return SortByIDDesc(s.store.Load())
}

// Populate adds n synthetic entries drawn from gen.
// Generated titles that collide with existing ones are skipped and retried,
// up to n*10 attempts. Overlong generated fields are always truncated.
func (s *EntryService) Populate(n int, gen fake.Generator) (*PopulateResult, error) {
	if n > MaxPopulate {
		return nil, ErrPopulateLimit
	}
	if n < 1 {
		return nil, entry.ErrInvalidInput
	}

	result := &PopulateResult{Requested: n}
	opts := s.options()
	opts.LengthPolicy = entry.LengthTruncate

	err := s.store.Session(func(entries *[]entry.Entry) error {
		for attempts := 0; len(result.Added) < n; attempts++ {
			if attempts >= n*10 {
				result.Exhausted = true
				return nil
			}

			e, truncations, err := entry.Create(gen.Title(), gen.Content(), *entries, opts)
			switch {
			case errors.Is(err, entry.ErrDuplicateTitle):
				result.Skipped++
				continue
			case errors.Is(err, entry.ErrInvalidInput):
				continue
			case err != nil:
				result.Exhausted = true
				return err
			}
			e.Tags = entry.ParseTags(gen.Tags(), entry.SplitSpace)

			s.insert(entries, e)
			result.Added = append(result.Added, e)
			result.Truncations = append(result.Truncations, truncations...)
		}
		return nil
	})
	if err != nil {
		return result, err
	}
	return result, nil
}

// SortByIDDesc returns a copy of entries sorted by numeric id, highest first.
// Entries with non-numeric ids sort last in their original order.
func SortByIDDesc(entries []entry.Entry) []entry.Entry {
	sorted := make([]entry.Entry, len(entries))
	copy(sorted, entries)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, okA := entry.NumericID(sorted[i].ID)
		b, okB := entry.NumericID(sorted[j].ID)
		if !okA || !okB {
			return okA && !okB
		}
		return a > b
	})
	return sorted
}

// indexOf returns the index of the first entry whose id matches, or -1
func indexOf(entries []entry.Entry, id string) int {
	for i, e := range entries {
		if entry.SameID(e.ID, id) {
			return i
		}
	}
	return -1
}
