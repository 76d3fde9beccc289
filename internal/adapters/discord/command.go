package discord

import (
	"sort"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

// HandleStats answers the /stats slash command. Admin only; the reply
// is ephemeral either way so the chat never sees it.
func (h *Handler) HandleStats(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := interactionUser(i)
	if user == nil || !h.isAdmin(user.ID) {
		if user != nil {
			h.log.WithField("sender", user.ID).Info("commande stats refusée")
		}
		respondEphemeral(s, i.Interaction, h.texts.T(h.locale, "stats.forbidden", nil))
		return
	}
	respondEphemeral(s, i.Interaction, h.renderStats(time.Now()))
}

// renderStats met en forme l'instantané courant des compteurs.
func (h *Handler) renderStats(now time.Time) string {
	snap := h.stats.Snapshot()

	lines := []string{
		h.texts.T(h.locale, "stats.header", map[string]any{"Date": now.In(h.loc).Format("2006-01-02")}),
		"",
		h.texts.T(h.locale, "stats.messages", map[string]any{"Count": snap.MessagesProcessed}),
		h.texts.T(h.locale, "stats.translations", nil),
	}

	if len(snap.TranslationsByLanguage) == 0 {
		lines = append(lines, h.texts.T(h.locale, "stats.none", nil))
	} else {
		langs := make([]string, 0, len(snap.TranslationsByLanguage))
		for lang := range snap.TranslationsByLanguage {
			langs = append(langs, lang)
		}
		sort.Strings(langs)
		for _, lang := range langs {
			lines = append(lines, h.texts.T(h.locale, "stats.lang_line", map[string]any{
				"Name":  h.langName(lang),
				"Count": snap.TranslationsByLanguage[lang],
			}))
		}
	}

	lines = append(lines,
		h.texts.T(h.locale, "stats.errors", map[string]any{"Count": snap.Errors}),
		h.texts.T(h.locale, "stats.rate_limited", map[string]any{"Count": snap.RateLimited}),
		"",
		h.texts.T(h.locale, "stats.pair", map[string]any{
			"FlagA": h.pair.A.Flag,
			"NameA": h.pair.A.Name,
			"FlagB": h.pair.B.Flag,
			"NameB": h.pair.B.Name,
		}),
	)
	return strings.Join(lines, "\n")
}

func (h *Handler) langName(base string) string {
	switch base {
	case h.pair.A.Base:
		return h.pair.A.Name
	case h.pair.B.Base:
		return h.pair.B.Name
	}
	return strings.ToUpper(base)
}
