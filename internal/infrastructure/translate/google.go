package translate

import (
	"context"
	"fmt"

	gtranslate "cloud.google.com/go/translate"
	"golang.org/x/text/language"

	"pontbot/internal/domain/entities"
	"pontbot/internal/ports/output"
)

var _ output.Translator = (*Google)(nil)

// Google speaks to the Google Cloud Translation API. Credentials come
// from the environment (GOOGLE_APPLICATION_CREDENTIALS), like any
// other Google client.
type Google struct {
	client *gtranslate.Client
}

func NewGoogle(ctx context.Context) (*Google, error) {
	client, err := gtranslate.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("client Google Translate: %w", err)
	}
	return &Google{client: client}, nil
}

// Close releases the underlying API client.
func (g *Google) Close() error {
	return g.client.Close()
}

// Detect returns the API's best guess for the language of text.
// The API orders candidates best first.
func (g *Google) Detect(ctx context.Context, text string) (entities.Detection, error) {
	rows, err := g.client.DetectLanguage(ctx, []string{text})
	if err != nil {
		return entities.Detection{}, fmt.Errorf("détection: %w", err)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return entities.Detection{}, fmt.Errorf("détection: réponse vide")
	}
	best := rows[0][0]
	return entities.Detection{
		Code:       best.Language.String(),
		Confidence: best.Confidence,
	}, nil
}

// Translate renders text into the target language code.
func (g *Google) Translate(ctx context.Context, text, target string) (string, error) {
	tag, err := language.Parse(target)
	if err != nil {
		return "", fmt.Errorf("code cible %q: %w", target, err)
	}
	resp, err := g.client.Translate(ctx, []string{text}, tag, &gtranslate.Options{
		Format: gtranslate.Text,
		Model:  "nmt",
	})
	if err != nil {
		return "", fmt.Errorf("traduction vers %s: %w", target, err)
	}
	if len(resp) == 0 {
		return "", fmt.Errorf("traduction vers %s: réponse vide", target)
	}
	return resp[0].Text, nil
}
