package application

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pontbot/internal/domain"
	"pontbot/internal/domain/entities"
)

// countingBackend serves canned detections and records how often the
// backend is actually hit.
type countingBackend struct {
	mu        sync.Mutex
	detection entities.Detection
	err       error
	calls     int
}

func (b *countingBackend) Detect(_ context.Context, _ string) (entities.Detection, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls++
	if b.err != nil {
		return entities.Detection{}, b.err
	}
	return b.detection, nil
}

func (b *countingBackend) Translate(_ context.Context, text, _ string) (string, error) {
	return text, nil
}

func (b *countingBackend) callCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls
}

func TestClassify_EmptyTextFailsWithoutBackendCall(t *testing.T) {
	backend := &countingBackend{}
	c := NewClassifier(backend, 16, time.Minute, 0.7)

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := c.Classify(context.Background(), text)
		require.ErrorIs(t, err, domain.ErrDetectionFailed)
		require.ErrorIs(t, err, domain.ErrEmptyText)
	}
	require.Zero(t, backend.callCount())
}

func TestClassify_NormalizesDetectedCode(t *testing.T) {
	backend := &countingBackend{detection: entities.Detection{Code: "zh-CN", Confidence: 0.98}}
	c := NewClassifier(backend, 16, time.Minute, 0.7)

	det, err := c.Classify(context.Background(), "你好，今天怎么样？")
	require.NoError(t, err)
	require.Equal(t, "zh-CN", det.Code)
	require.Equal(t, "zh", det.Base)
	require.InDelta(t, 0.98, det.Confidence, 1e-9)
}

func TestClassify_CacheHitSkipsBackend(t *testing.T) {
	backend := &countingBackend{detection: entities.Detection{Code: "fr", Confidence: 0.95}}
	c := NewClassifier(backend, 16, time.Minute, 0.7)

	first, err := c.Classify(context.Background(), "bonjour tout le monde")
	require.NoError(t, err)
	second, err := c.Classify(context.Background(), "bonjour tout le monde")
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, 1, backend.callCount())
}

func TestClassify_TrimmedVariantsShareACacheEntry(t *testing.T) {
	backend := &countingBackend{detection: entities.Detection{Code: "fr", Confidence: 0.95}}
	c := NewClassifier(backend, 16, time.Minute, 0.7)

	_, err := c.Classify(context.Background(), "bonjour")
	require.NoError(t, err)
	_, err = c.Classify(context.Background(), "  bonjour  ")
	require.NoError(t, err)

	require.Equal(t, 1, backend.callCount())
}

func TestClassify_LowConfidenceIsNotCached(t *testing.T) {
	backend := &countingBackend{detection: entities.Detection{Code: "fr", Confidence: 0.4}}
	c := NewClassifier(backend, 16, time.Minute, 0.7)

	_, err := c.Classify(context.Background(), "ok")
	require.NoError(t, err)
	_, err = c.Classify(context.Background(), "ok")
	require.NoError(t, err)

	require.Equal(t, 2, backend.callCount())
}

func TestClassify_CacheEntriesExpire(t *testing.T) {
	backend := &countingBackend{detection: entities.Detection{Code: "fr", Confidence: 0.95}}
	c := NewClassifier(backend, 16, 10*time.Millisecond, 0.7)

	_, err := c.Classify(context.Background(), "bonjour")
	require.NoError(t, err)

	time.Sleep(150 * time.Millisecond)

	_, err = c.Classify(context.Background(), "bonjour")
	require.NoError(t, err)
	require.Equal(t, 2, backend.callCount())
}

func TestClassify_DisabledCacheAlwaysHitsBackend(t *testing.T) {
	backend := &countingBackend{detection: entities.Detection{Code: "fr", Confidence: 0.95}}
	c := NewClassifier(backend, 0, time.Minute, 0.7)

	_, err := c.Classify(context.Background(), "bonjour")
	require.NoError(t, err)
	_, err = c.Classify(context.Background(), "bonjour")
	require.NoError(t, err)

	require.Equal(t, 2, backend.callCount())
}

func TestClassify_BackendErrorWrapsDetectionFailure(t *testing.T) {
	cause := errors.New("backend indisponible")
	backend := &countingBackend{err: cause}
	c := NewClassifier(backend, 16, time.Minute, 0.7)

	_, err := c.Classify(context.Background(), "bonjour")
	require.ErrorIs(t, err, domain.ErrDetectionFailed)
	require.ErrorIs(t, err, cause)
}
