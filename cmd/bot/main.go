package main

import (
	"context"
	"log"
	"os"

	"github.com/sirupsen/logrus"

	"pontbot/internal/adapters/discord"
	"pontbot/internal/config"
	"pontbot/internal/infrastructure/database"
	"pontbot/internal/infrastructure/i18n"
	"pontbot/internal/infrastructure/translate"
	"pontbot/internal/ports/output"
	"pontbot/pkg/tz"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration invalide: %v", err)
	}

	logger := logrus.New()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	ctx := context.Background()

	engineType, err := translate.ParseEngineType(cfg.Engine)
	if err != nil {
		log.Fatalf("❌ Configuration invalide: %v", err)
	}
	translator, closeEngine, err := translate.NewEngine(ctx, translate.Config{
		Engine: engineType,
		Logger: logger,
	})
	if err != nil {
		log.Fatalf("❌ Erreur lors de l'initialisation du moteur de traduction: %v", err)
	}
	defer closeEngine()

	var auditor output.DispatchAuditor
	if cfg.DatabaseURL != "" {
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			log.Fatalf("❌ Erreur lors des migrations: %v", err)
		}
		pool, err := database.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("❌ Erreur lors de l'initialisation de la base de données: %v", err)
		}
		defer pool.Close()
		auditor = database.NewDispatchRepository(pool, tz.Load(cfg.Timezone))
	} else {
		log.Println("⚠️ DATABASE_URL absente, journal des relais désactivé.")
	}

	texts := i18n.NewCatalog(cfg.Locale)

	bot := discord.NewBot(cfg, translator, auditor, texts, logger)
	if err := bot.Start(); err != nil {
		log.Printf("❌ Erreur lors du démarrage du bot: %v", err)
		os.Exit(1)
	}
}
