package entities

import (
	"strings"
	"time"
)

// Message is an inbound chat message as seen by the relay.
type Message struct {
	ID        string
	ChatID    string
	SenderID  string
	Sender    string
	Text      string
	Timestamp time.Time
}

// IsEmpty reports whether the message carries no translatable text.
func (m *Message) IsEmpty() bool {
	return strings.TrimSpace(m.Text) == ""
}

// IsCommand reports whether the text is a bot command rather than conversation.
func (m *Message) IsCommand() bool {
	t := strings.TrimSpace(m.Text)
	return strings.HasPrefix(t, "/") || strings.HasPrefix(t, "!")
}
