package discord

import (
	"time"

	"github.com/sirupsen/logrus"
)

// RunHeartbeat logs a snapshot of the relay counters at every interval
// so operators can follow activity without the /stats command. An
// interval of zero (or less) disables the loop.
func (h *Handler) RunHeartbeat(interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		h.logHeartbeat()
	}
}

func (h *Handler) logHeartbeat() {
	snap := h.stats.Snapshot()
	var translations uint64
	for _, n := range snap.TranslationsByLanguage {
		translations += n
	}
	h.log.WithFields(logrus.Fields{
		"messages":     snap.MessagesProcessed,
		"translations": translations,
		"errors":       snap.Errors,
		"rate_limited": snap.RateLimited,
	}).Info("état du relais")
}
