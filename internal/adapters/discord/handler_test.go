package discord

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"pontbot/internal/config"
	"pontbot/internal/domain/entities"
	"pontbot/internal/infrastructure/i18n"
)

type recordingDispatcher struct {
	mu   sync.Mutex
	msgs []*entities.Message
}

func (d *recordingDispatcher) Dispatch(_ context.Context, msg *entities.Message) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.msgs = append(d.msgs, msg)
	return nil
}

func (d *recordingDispatcher) dispatched() []*entities.Message {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]*entities.Message(nil), d.msgs...)
}

type fakeStatsQuery struct {
	snap entities.StatsSnapshot
}

func (f fakeStatsQuery) Snapshot() entities.StatsSnapshot { return f.snap }

func testConfig() *config.Config {
	return &config.Config{
		Token:     "jeton",
		LangA:     "fr",
		LangAName: "Français",
		LangAFlag: "🇫🇷",
		LangB:     "en",
		LangBName: "English",
		LangBFlag: "🇬🇧",
		Locale:    "fr",
	}
}

func newTestHandler(t *testing.T, cfg *config.Config, dispatcher *recordingDispatcher, snap entities.StatsSnapshot) *Handler {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewHandler(dispatcher, fakeStatsQuery{snap: snap}, i18n.NewCatalog(cfg.Locale), cfg, log)
}

func testSession() *discordgo.Session {
	s := &discordgo.Session{State: discordgo.NewState()}
	s.State.User = &discordgo.User{ID: "bot-self"}
	return s
}

func guildMessage(id, channelID, authorID, content string) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{Message: &discordgo.Message{
		ID:        id,
		ChannelID: channelID,
		Content:   content,
		Author:    &discordgo.User{ID: authorID, Username: "ana"},
		Timestamp: time.Now(),
	}}
}

func TestHandleMessage_RelaysGuildMessages(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	h := newTestHandler(t, testConfig(), dispatcher, entities.StatsSnapshot{})

	h.HandleMessage(testSession(), guildMessage("m1", "chan-1", "u1", "bonjour à tous"))

	msgs := dispatcher.dispatched()
	require.Len(t, msgs, 1)
	require.Equal(t, "m1", msgs[0].ID)
	require.Equal(t, "chan-1", msgs[0].ChatID)
	require.Equal(t, "u1", msgs[0].SenderID)
	require.Equal(t, "ana", msgs[0].Sender)
	require.Equal(t, "bonjour à tous", msgs[0].Text)
}

func TestHandleMessage_DropsBotsAndSelf(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	h := newTestHandler(t, testConfig(), dispatcher, entities.StatsSnapshot{})
	s := testSession()

	bot := guildMessage("m1", "chan-1", "u1", "bip bop")
	bot.Author.Bot = true
	h.HandleMessage(s, bot)

	self := guildMessage("m2", "chan-1", "bot-self", "ma propre réponse")
	h.HandleMessage(s, self)

	anonymous := guildMessage("m3", "chan-1", "", "sans auteur")
	anonymous.Author = nil
	h.HandleMessage(s, anonymous)

	require.Empty(t, dispatcher.dispatched())
}

func TestHandleMessage_WhitelistFiltersChats(t *testing.T) {
	cfg := testConfig()
	cfg.AllowedChats = []string{"chan-1"}
	dispatcher := &recordingDispatcher{}
	h := newTestHandler(t, cfg, dispatcher, entities.StatsSnapshot{})
	s := testSession()

	h.HandleMessage(s, guildMessage("m1", "chan-2", "u1", "hors liste"))
	require.Empty(t, dispatcher.dispatched())

	h.HandleMessage(s, guildMessage("m2", "chan-1", "u1", "dans la liste"))
	require.Len(t, dispatcher.dispatched(), 1)
}

func TestChatAllowed_EmptyWhitelistAllowsEverything(t *testing.T) {
	h := newTestHandler(t, testConfig(), &recordingDispatcher{}, entities.StatsSnapshot{})

	require.True(t, h.chatAllowed("chan-1"))
	require.True(t, h.chatAllowed("n'importe-quel-salon"))
}

func TestIsAdmin(t *testing.T) {
	cfg := testConfig()
	cfg.AdminUsers = []string{"u-admin"}
	h := newTestHandler(t, cfg, &recordingDispatcher{}, entities.StatsSnapshot{})

	require.True(t, h.isAdmin("u-admin"))
	require.False(t, h.isAdmin("u1"))
}

func TestInteractionUser(t *testing.T) {
	member := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Member: &discordgo.Member{User: &discordgo.User{ID: "u-guild"}},
	}}
	require.Equal(t, "u-guild", interactionUser(member).ID)

	direct := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		User: &discordgo.User{ID: "u-dm"},
	}}
	require.Equal(t, "u-dm", interactionUser(direct).ID)

	nobody := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{}}
	require.Nil(t, interactionUser(nobody))
}
