package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"pontbot/internal/ports/output"
	pkgdiscord "pontbot/pkg/discord"
)

var _ output.Messenger = (*Messenger)(nil)

// Messenger posts relay replies through the Discord session. Replies
// reference the original message, never ping anyone, stay silent
// notification-wise and are truncated to the API content cap.
type Messenger struct {
	session *discordgo.Session
}

func NewMessenger(session *discordgo.Session) *Messenger {
	return &Messenger{session: session}
}

func (m *Messenger) Send(ctx context.Context, chatID, replyToID, text string) error {
	_, err := m.session.ChannelMessageSendComplex(chatID, &discordgo.MessageSend{
		Content: pkgdiscord.TruncateContent(text, pkgdiscord.MaxContentLength),
		Reference: &discordgo.MessageReference{
			MessageID: replyToID,
			ChannelID: chatID,
		},
		AllowedMentions: &discordgo.MessageAllowedMentions{},
		Flags:           discordgo.MessageFlagsSuppressNotifications,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("envoi du message: %w", err)
	}
	return nil
}
