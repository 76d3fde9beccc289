package translate

import (
	"context"

	"pontbot/internal/domain/entities"
	"pontbot/internal/ports/output"
)

var _ output.Translator = (*Echo)(nil)

// Echo is a development backend: Detect always answers English and
// Translate returns the text unchanged, tagged with the target code so
// dual replies stay distinguishable. No credentials needed.
type Echo struct{}

func NewEcho() *Echo {
	return &Echo{}
}

func (e *Echo) Detect(ctx context.Context, text string) (entities.Detection, error) {
	return entities.Detection{Code: "en", Confidence: 1}, nil
}

func (e *Echo) Translate(ctx context.Context, text, target string) (string, error) {
	return "[" + target + "] " + text, nil
}
