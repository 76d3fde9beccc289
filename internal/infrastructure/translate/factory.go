package translate

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"pontbot/internal/ports/output"
)

// EngineType selects the machine-translation backend.
type EngineType string

const (
	// EngineGoogle uses the Google Cloud Translation API for both
	// detection and translation.
	EngineGoogle EngineType = "google"
	// EngineLingua detects locally with lingua-go and delegates
	// translation to the Google backend, keeping detection off the
	// API quota.
	EngineLingua EngineType = "lingua"
	// EngineEcho returns the input unchanged. Development only.
	EngineEcho EngineType = "echo"
)

// ParseEngineType parses a string into an EngineType.
// Returns an error if the string is not a valid engine type.
func ParseEngineType(s string) (EngineType, error) {
	switch s {
	case "google", "Google", "GOOGLE":
		return EngineGoogle, nil
	case "lingua", "Lingua", "LINGUA":
		return EngineLingua, nil
	case "echo", "Echo", "ECHO":
		return EngineEcho, nil
	default:
		return "", fmt.Errorf("moteur de traduction inconnu: %s (supportés: google, lingua, echo)", s)
	}
}

// Config holds what the factory needs to build an engine.
type Config struct {
	// Engine specifies which backend to build.
	Engine EngineType
	// Logger is the logger instance to use. If nil, a default logger is created.
	Logger *logrus.Logger
}

// NewEngine builds the configured backend. The returned close func
// releases any underlying API client and is never nil.
func NewEngine(ctx context.Context, cfg Config) (output.Translator, func() error, error) {
	if cfg.Logger == nil {
		cfg.Logger = logrus.New()
	}
	cfg.Logger.WithField("engine", cfg.Engine).Info("initialisation du moteur de traduction")

	switch cfg.Engine {
	case EngineGoogle:
		g, err := NewGoogle(ctx)
		if err != nil {
			return nil, nil, err
		}
		return g, g.Close, nil
	case EngineLingua:
		g, err := NewGoogle(ctx)
		if err != nil {
			return nil, nil, err
		}
		return NewLingua(g, cfg.Logger), g.Close, nil
	case EngineEcho:
		return NewEcho(), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("moteur de traduction inconnu: %s", cfg.Engine)
	}
}
