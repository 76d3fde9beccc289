package output

import "context"

// Messenger delivers a composed reply back into the originating chat.
type Messenger interface {
	// Send posts text in chatID as a quiet reply to replyToID.
	Send(ctx context.Context, chatID, replyToID, text string) error
}
