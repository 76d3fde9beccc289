package entities

import "time"

// RoutingDecision says where a classified message must be relayed.
// Skip means the message needs no relay at all.
type RoutingDecision struct {
	Source  Language
	Targets []Language
	Skip    bool
}

// TranslationResult is the outcome of one translation branch.
type TranslationResult struct {
	Target Language
	Text   string
	Err    error
}

// StatsSnapshot is a point-in-time copy of the relay counters.
type StatsSnapshot struct {
	MessagesProcessed      uint64
	TranslationsByLanguage map[string]uint64
	Errors                 uint64
	RateLimited            uint64
}

// DispatchRecord is the audit trail of one relayed message.
type DispatchRecord struct {
	RequestID   string
	ChatID      string
	SenderID    string
	SourceLang  string
	Targets     []string // bases visées
	Succeeded   []string // bases effectivement traduites
	Delivered   bool
	Translated  int
	Errors      int
	RateLimited int
	At          time.Time
}
