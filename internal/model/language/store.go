package language

import "strings"

// Store exposes language lookups for prompts and HTTP handlers.
type Store interface {
	List() []Language
	FindByCode(code string) (Language, bool)
}

// MemoryStore implements Store with an in-memory slice.
type MemoryStore struct {
	items []Language
	index map[string]int
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied languages.
func NewMemoryStore(items []Language) *MemoryStore {
	s := &MemoryStore{
		items: append([]Language(nil), items...),
		index: make(map[string]int, len(items)),
	}
	for i, item := range s.items {
		s.index[strings.ToLower(item.Code)] = i
	}
	return s
}

// List returns the catalogue in seed order.
func (s *MemoryStore) List() []Language {
	return append([]Language(nil), s.items...)
}

// FindByCode looks up a language by code, ignoring case and surrounding space.
func (s *MemoryStore) FindByCode(code string) (Language, bool) {
	i, ok := s.index[strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		return Language{}, false
	}
	return s.items[i], true
}

// NameOf returns the English name for code, or English when the code is unknown.
func NameOf(s Store, code string) string {
	if s != nil {
		if lang, ok := s.FindByCode(code); ok {
			return lang.Name
		}
	}
	return "English"
}
