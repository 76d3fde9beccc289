package discord

import "unicode/utf8"

// MaxContentLength is Discord's hard cap on message content, counted in
// code points. The API rejects anything longer outright.
const MaxContentLength = 2000

// TruncateContent caps s at max runes, marking the cut with an
// ellipsis. A composed dual-language reply built from a long original
// can overshoot the cap even when the original fit.
func TruncateContent(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-1]) + "…"
}
