package discord

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pontbot/internal/domain/entities"
)

func TestRenderStats_FormatsSnapshot(t *testing.T) {
	snap := entities.StatsSnapshot{
		MessagesProcessed:      3,
		TranslationsByLanguage: map[string]uint64{"en": 2, "uk": 1},
		Errors:                 1,
		RateLimited:            4,
	}
	h := newTestHandler(t, testConfig(), &recordingDispatcher{}, snap)

	out := h.renderStats(time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC))

	require.Contains(t, out, "2026-01-15")
	require.Contains(t, out, "Messages traités : 3")
	require.Contains(t, out, "• English : 2")
	require.Contains(t, out, "• UK : 1")
	require.Contains(t, out, "Erreurs : 1")
	require.Contains(t, out, "Refus par limitation : 4")
	require.Contains(t, out, "Paire active : 🇫🇷 Français ↔ 🇬🇧 English")
}

func TestRenderStats_SortsLanguageLines(t *testing.T) {
	snap := entities.StatsSnapshot{
		TranslationsByLanguage: map[string]uint64{"uk": 1, "en": 2, "fr": 5},
	}
	h := newTestHandler(t, testConfig(), &recordingDispatcher{}, snap)

	out := h.renderStats(time.Now())

	require.Less(t, strings.Index(out, "• English"), strings.Index(out, "• Français"))
	require.Less(t, strings.Index(out, "• Français"), strings.Index(out, "• UK"))
}

func TestRenderStats_EmptyCounters(t *testing.T) {
	h := newTestHandler(t, testConfig(), &recordingDispatcher{}, entities.StatsSnapshot{})

	out := h.renderStats(time.Now())

	require.Contains(t, out, "Messages traités : 0")
	require.Contains(t, out, "aucune pour l'instant")
}
