package discord

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"pontbot/internal/config"
	"pontbot/internal/domain/entities"
	"pontbot/internal/ports/input"
	"pontbot/internal/ports/output"
	"pontbot/pkg/tz"
)

// Handler turns Discord events into relay use-case calls.
type Handler struct {
	dispatcher   input.MessageDispatcher
	stats        input.StatsQuery
	texts        output.T
	pair         entities.LanguagePair
	locale       string
	loc          *time.Location
	allowedChats map[string]struct{}
	admins       map[string]struct{}
	log          *logrus.Logger
}

// NewHandler creates a Handler.
func NewHandler(
	dispatcher input.MessageDispatcher,
	stats input.StatsQuery,
	texts output.T,
	cfg *config.Config,
	log *logrus.Logger,
) *Handler {
	if log == nil {
		log = logrus.New()
	}
	return &Handler{
		dispatcher:   dispatcher,
		stats:        stats,
		texts:        texts,
		pair:         cfg.Pair(),
		locale:       cfg.Locale,
		loc:          tz.Load(cfg.Timezone),
		allowedChats: toSet(cfg.AllowedChats),
		admins:       toSet(cfg.AdminUsers),
		log:          log,
	}
}

// HandleMessage relays ordinary guild messages. The bot's own
// messages, other bots and unauthorized chats are dropped here, the
// engine never sees them. Dispatch failures stay in the logs, nothing
// is ever posted about them.
func (h *Handler) HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.Author.ID == s.State.User.ID {
		return
	}
	if !h.chatAllowed(m.ChannelID) {
		h.log.WithFields(logrus.Fields{
			"chat":   m.ChannelID,
			"sender": m.Author.ID,
		}).Info("salon hors liste blanche, message ignoré")
		return
	}

	msg := &entities.Message{
		ID:        m.ID,
		ChatID:    m.ChannelID,
		SenderID:  m.Author.ID,
		Sender:    m.Author.Username,
		Text:      m.Content,
		Timestamp: m.Timestamp,
	}
	_ = h.dispatcher.Dispatch(context.Background(), msg)
}

// chatAllowed: une liste blanche vide autorise tous les salons.
func (h *Handler) chatAllowed(chatID string) bool {
	if len(h.allowedChats) == 0 {
		return true
	}
	_, ok := h.allowedChats[chatID]
	return ok
}

func (h *Handler) isAdmin(userID string) bool {
	_, ok := h.admins[userID]
	return ok
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
