package application

import (
	"sync"

	"pontbot/internal/domain/entities"
)

// Stats accumulates the relay counters. All methods are safe for
// concurrent use and the Record methods never fail.
type Stats struct {
	mu           sync.Mutex
	messages     uint64
	errors       uint64
	rateLimited  uint64
	translations map[string]uint64
}

func NewStats() *Stats {
	return &Stats{translations: make(map[string]uint64)}
}

// MessageSeen counts one inbound message, relayed or not.
func (s *Stats) MessageSeen() {
	s.mu.Lock()
	s.messages++
	s.mu.Unlock()
}

// Translated counts one successful translation into lang.
func (s *Stats) Translated(lang string) {
	s.mu.Lock()
	s.translations[lang]++
	s.mu.Unlock()
}

// Error counts one failed detection, translation or delivery.
func (s *Stats) Error() {
	s.mu.Lock()
	s.errors++
	s.mu.Unlock()
}

// RateLimited counts one branch denied by the limiter.
func (s *Stats) RateLimited() {
	s.mu.Lock()
	s.rateLimited++
	s.mu.Unlock()
}

// Snapshot returns a consistent copy of every counter.
func (s *Stats) Snapshot() entities.StatsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	byLang := make(map[string]uint64, len(s.translations))
	for lang, n := range s.translations {
		byLang[lang] = n
	}
	return entities.StatsSnapshot{
		MessagesProcessed:      s.messages,
		TranslationsByLanguage: byLang,
		Errors:                 s.errors,
		RateLimited:            s.rateLimited,
	}
}
