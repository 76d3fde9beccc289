package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"pontbot/internal/domain"
	"pontbot/internal/domain/entities"
)

type Config struct {
	Token   string
	GuildID string

	LangA     string
	LangAName string
	LangAFlag string
	LangB     string
	LangBName string
	LangBFlag string

	Locale string
	Engine string

	RatePerSec  float64
	Burst       int
	MaxInflight int
	AcquireWait time.Duration

	CacheSize int
	CacheTTL  time.Duration

	Confidence     float64
	ShortTextLimit int

	AllowedChats []string
	AdminUsers   []string

	Timezone          string
	HeartbeatInterval time.Duration

	DatabaseURL    string
	MigrationsPath string

	LogLevel string
}

// Load charge la configuration depuis les variables d'environnement et la valide.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env est optionnel lorsque les variables sont fournies par l'environnement (Docker, CI, etc.).
	}

	cfg := &Config{
		Token:   os.Getenv("TOKEN"),
		GuildID: os.Getenv("GUILD_ID"),

		LangA:     os.Getenv("LANG_A"),
		LangAName: os.Getenv("LANG_A_NAME"),
		LangAFlag: os.Getenv("LANG_A_FLAG"),
		LangB:     os.Getenv("LANG_B"),
		LangBName: os.Getenv("LANG_B_NAME"),
		LangBFlag: os.Getenv("LANG_B_FLAG"),

		Locale: envStr("BOT_LOCALE", "fr"),
		Engine: envStr("TRANSLATE_ENGINE", "google"),

		RatePerSec:  envFloat("TRANSLATE_RATE_PER_SEC", 10),
		Burst:       envInt("TRANSLATE_BURST", 5),
		MaxInflight: envInt("TRANSLATE_MAX_INFLIGHT", 8),
		AcquireWait: envDuration("TRANSLATE_ACQUIRE_WAIT", 2*time.Second),

		CacheSize: envInt("DETECT_CACHE_SIZE", 256),
		CacheTTL:  envDuration("DETECT_CACHE_TTL", 30*time.Minute),

		Confidence:     envFloat("CONFIDENCE_THRESHOLD", 0.7),
		ShortTextLimit: envInt("SHORT_TEXT_LIMIT", 6),

		AllowedChats: envList("ALLOWED_CHAT_IDS"),
		AdminUsers:   envList("ADMIN_USER_IDS"),

		Timezone:          envStr("TIMEZONE", "Europe/Paris"),
		HeartbeatInterval: envDuration("HEARTBEAT_INTERVAL", 15*time.Minute),

		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MigrationsPath: envStr("MIGRATIONS_PATH", "migrations"),

		LogLevel: envStr("LOG_LEVEL", "info"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applique toutes les règles métier sur la configuration chargée.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: TOKEN est requis et ne peut pas être vide")
	}

	if strings.TrimSpace(c.LangA) == "" || strings.TrimSpace(c.LangB) == "" {
		return fmt.Errorf("config: LANG_A et LANG_B sont requis (codes BCP 47, ex: \"fr\", \"pt-BR\")")
	}
	baseA := domain.NormalizeCode(c.LangA)
	baseB := domain.NormalizeCode(c.LangB)
	if baseA == "" {
		return fmt.Errorf("config: LANG_A invalide (%q)", c.LangA)
	}
	if baseB == "" {
		return fmt.Errorf("config: LANG_B invalide (%q)", c.LangB)
	}
	if baseA == baseB {
		return fmt.Errorf("config: LANG_A et LANG_B doivent être deux langues distinctes (%q et %q se réduisent à %q)", c.LangA, c.LangB, baseA)
	}

	if c.RatePerSec <= 0 {
		return fmt.Errorf("config: TRANSLATE_RATE_PER_SEC doit être strictement positif")
	}
	if c.Burst < 1 {
		return fmt.Errorf("config: TRANSLATE_BURST doit être au moins 1")
	}
	if c.MaxInflight < 1 {
		return fmt.Errorf("config: TRANSLATE_MAX_INFLIGHT doit être au moins 1")
	}
	if c.AcquireWait <= 0 {
		return fmt.Errorf("config: TRANSLATE_ACQUIRE_WAIT doit être strictement positif")
	}

	if c.CacheSize < 0 {
		return fmt.Errorf("config: DETECT_CACHE_SIZE ne peut pas être négatif (0 désactive le cache)")
	}
	if c.CacheSize > 0 && c.CacheTTL <= 0 {
		return fmt.Errorf("config: DETECT_CACHE_TTL doit être strictement positif quand le cache est actif")
	}

	if c.Confidence < 0 || c.Confidence > 1 {
		return fmt.Errorf("config: CONFIDENCE_THRESHOLD doit être entre 0 et 1")
	}
	if c.ShortTextLimit < 0 {
		return fmt.Errorf("config: SHORT_TEXT_LIMIT ne peut pas être négatif")
	}
	if c.HeartbeatInterval < 0 {
		return fmt.Errorf("config: HEARTBEAT_INTERVAL ne peut pas être négatif (0 désactive le rythme)")
	}

	if strings.TrimSpace(c.DatabaseURL) != "" {
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: DATABASE_URL invalide (%q): %w", c.DatabaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: DATABASE_URL invalide (%q): scheme ou host manquant", c.DatabaseURL)
		}
	}

	return nil
}

// Pair assemble la paire de langues pivots à partir de la configuration.
// Les noms absents retombent sur le code en majuscules, les drapeaux sur
// une chaîne vide.
func (c *Config) Pair() entities.LanguagePair {
	return entities.LanguagePair{
		A: entities.Language{
			Code: c.LangA,
			Base: domain.NormalizeCode(c.LangA),
			Name: defaultName(c.LangAName, c.LangA),
			Flag: c.LangAFlag,
		},
		B: entities.Language{
			Code: c.LangB,
			Base: domain.NormalizeCode(c.LangB),
			Name: defaultName(c.LangBName, c.LangB),
			Flag: c.LangBFlag,
		},
	}
}

func defaultName(name, code string) string {
	if strings.TrimSpace(name) != "" {
		return name
	}
	return strings.ToUpper(code)
}

func envStr(key, def string) string {
	if v := os.Getenv(key); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return n
}

func envFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return def
	}
	return f
}

func envDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return d
}

func envList(key string) []string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
