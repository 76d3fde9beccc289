package domain

import (
	"strings"

	"golang.org/x/text/language"

	"pontbot/internal/domain/entities"
)

// NormalizeCode reduces a language code to its lowercase base tag.
// "zh-CN", "zh_TW" and "ZH" all normalize to "zh". Codes that x/text
// cannot parse are cut down by hand: lowercased, underscores mapped to
// hyphens, everything after the first subtag dropped.
func NormalizeCode(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	if tag, err := language.Parse(code); err == nil {
		if base, conf := tag.Base(); conf > language.No {
			return base.String()
		}
	}
	code = strings.ToLower(strings.ReplaceAll(code, "_", "-"))
	if i := strings.IndexByte(code, '-'); i >= 0 {
		code = code[:i]
	}
	return code
}

// Route applies the relay policy to a detected base tag: a message in
// one anchor goes to the other, a message in any third language goes to
// both anchors, first anchor first. An empty base yields a skip
// decision; callers filter empty text before detection, so this is the
// policy's answer for unusable input only.
func Route(pair entities.LanguagePair, base string) entities.RoutingDecision {
	switch base {
	case "":
		return entities.RoutingDecision{Skip: true}
	case pair.A.Base:
		return entities.RoutingDecision{Source: pair.A, Targets: []entities.Language{pair.B}}
	case pair.B.Base:
		return entities.RoutingDecision{Source: pair.B, Targets: []entities.Language{pair.A}}
	}
	source := entities.Language{
		Code: base,
		Base: base,
		Name: strings.ToUpper(base),
	}
	return entities.RoutingDecision{Source: source, Targets: []entities.Language{pair.A, pair.B}}
}
