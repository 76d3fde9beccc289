package output

import (
	"context"

	"pontbot/internal/domain/entities"
)

// Translator is the machine-translation backend behind the relay.
type Translator interface {
	// Detect identifies the language the text is written in.
	Detect(ctx context.Context, text string) (entities.Detection, error)
	// Translate renders the text into the target language code.
	Translate(ctx context.Context, text, target string) (string, error)
}
