package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"pontbot/internal/domain"
	"pontbot/internal/domain/entities"
	"pontbot/internal/ports/output"
)

// Classifier identifies message languages through the Translator port.
// Recent verdicts are kept in a bounded cache so repeated text (spam,
// greetings, stickers) does not hit the backend twice.
type Classifier struct {
	backend  output.Translator
	cache    *expirable.LRU[string, entities.Detection]
	minCache float64
}

// NewClassifier builds a classifier keeping at most size recent
// detections for ttl. size <= 0 disables the cache entirely; verdicts
// with confidence below minCache are never cached.
func NewClassifier(backend output.Translator, size int, ttl time.Duration, minCache float64) *Classifier {
	c := &Classifier{backend: backend, minCache: minCache}
	if size > 0 {
		c.cache = expirable.NewLRU[string, entities.Detection](size, nil, ttl)
	}
	return c
}

// Classify returns the detected language of text. Empty or whitespace
// input and backend failures both surface as domain.ErrDetectionFailed;
// there is no retry.
func (c *Classifier) Classify(ctx context.Context, text string) (entities.Detection, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return entities.Detection{}, fmt.Errorf("%w: %w", domain.ErrDetectionFailed, domain.ErrEmptyText)
	}
	if c.cache != nil {
		if det, ok := c.cache.Get(text); ok {
			return det, nil
		}
	}
	det, err := c.backend.Detect(ctx, text)
	if err != nil {
		return entities.Detection{}, fmt.Errorf("%w: %w", domain.ErrDetectionFailed, err)
	}
	det.Base = domain.NormalizeCode(det.Code)
	if det.Base == "" {
		return entities.Detection{}, fmt.Errorf("%w: code de langue vide", domain.ErrDetectionFailed)
	}
	if c.cache != nil && det.Confidence >= c.minCache {
		c.cache.Add(text, det)
	}
	return det, nil
}
