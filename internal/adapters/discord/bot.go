package discord

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"pontbot/internal/application"
	"pontbot/internal/config"
	"pontbot/internal/ports/output"
	"pontbot/pkg/ratelimit"
)

// Bot is the Discord adapter of the relay.
type Bot struct {
	session *discordgo.Session
	config  *config.Config
	handler *Handler
}

// NewBot creates a Bot and wires ports: output adapters -> application (use cases) -> handler.
func NewBot(cfg *config.Config, translator output.Translator, auditor output.DispatchAuditor, texts output.T, logger *logrus.Logger) *Bot {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		log.Fatal("❌ Erreur lors de la création de la session Discord:", err)
	}
	s.Identify.Intents = discordgo.IntentGuildMessages | discordgo.IntentMessageContent

	stats := application.NewStats()
	classifier := application.NewClassifier(translator, cfg.CacheSize, cfg.CacheTTL, cfg.Confidence)
	limiter := ratelimit.New(cfg.RatePerSec, cfg.Burst, cfg.MaxInflight, cfg.AcquireWait)
	dispatcher := application.NewDispatchService(
		application.DispatchConfig{
			Pair:       cfg.Pair(),
			Locale:     cfg.Locale,
			Confidence: cfg.Confidence,
			ShortText:  cfg.ShortTextLimit,
		},
		classifier,
		translator,
		limiter,
		NewMessenger(s),
		stats,
		auditor,
		texts,
		logger,
	)

	handler := NewHandler(dispatcher, stats, texts, cfg, logger)

	bot := &Bot{
		session: s,
		config:  cfg,
		handler: handler,
	}
	bot.setupHandlers()
	return bot
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handler.HandleMessage)
	b.session.AddHandler(b.handleInteraction)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	if i.ApplicationCommandData().Name == "stats" {
		b.handler.HandleStats(s, i)
	}
}

// Start runs the bot until interrupted.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("erreur lors de l'ouverture de la session: %w", err)
	}
	defer b.session.Close()

	commands := []*discordgo.ApplicationCommand{
		{Name: "stats", Description: "Statistiques du relais (réservé aux administrateurs)"},
	}

	for _, cmd := range commands {
		if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd); err != nil {
			log.Printf("⚠️ Erreur lors de l'enregistrement de la commande %s: %v", cmd.Name, err)
		}
	}

	go b.handler.RunHeartbeat(b.config.HeartbeatInterval)

	fmt.Println("🤖 Bot en ligne ! Appuyez sur CTRL+C pour quitter.")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	return nil
}
