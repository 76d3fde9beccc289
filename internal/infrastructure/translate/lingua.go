package translate

import (
	"context"
	"fmt"
	"strings"

	"github.com/pemistahl/lingua-go"
	"github.com/sirupsen/logrus"

	"pontbot/internal/domain/entities"
	"pontbot/internal/ports/output"
)

var _ output.Translator = (*Lingua)(nil)

// Lingua detects languages locally with lingua-go and delegates
// translation to another backend. Models are loaded lazily, the first
// detection of a language pays the loading cost.
type Lingua struct {
	detector lingua.LanguageDetector
	delegate output.Translator
	log      *logrus.Logger
}

func NewLingua(delegate output.Translator, log *logrus.Logger) *Lingua {
	detector := lingua.NewLanguageDetectorBuilder().
		FromAllLanguages().
		Build()
	if log == nil {
		log = logrus.New()
	}
	log.Info("détecteur local lingua initialisé")
	return &Lingua{detector: detector, delegate: delegate, log: log}
}

// Detect classifies text without any network call.
func (l *Lingua) Detect(ctx context.Context, text string) (entities.Detection, error) {
	lang, ok := l.detector.DetectLanguageOf(text)
	if !ok {
		return entities.Detection{}, fmt.Errorf("détection locale: aucune langue reconnue")
	}
	code := strings.ToLower(lang.IsoCode639_1().String())
	return entities.Detection{
		Code:       code,
		Confidence: l.detector.ComputeLanguageConfidence(text, lang),
	}, nil
}

// Translate delegates to the configured remote backend.
func (l *Lingua) Translate(ctx context.Context, text, target string) (string, error) {
	return l.delegate.Translate(ctx, text, target)
}
