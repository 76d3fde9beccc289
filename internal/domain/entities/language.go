package entities

import "strings"

// Language identifies one of the two relay anchors.
type Language struct {
	Code string // tag configuré, ex. "en" ou "pt-BR"
	Base string // tag de base normalisé, ex. "en", "pt"
	Name string
	Flag string
}

// DisplayName is the human label used in reply headers.
func (l Language) DisplayName() string {
	if l.Name != "" {
		return l.Name
	}
	return strings.ToUpper(l.Code)
}

// LanguagePair holds the two anchor languages of a relayed chat.
type LanguagePair struct {
	A Language
	B Language
}

// Other returns the opposite anchor for a base tag known to match one side.
func (p LanguagePair) Other(base string) Language {
	if base == p.A.Base {
		return p.B
	}
	return p.A
}

// Matches reports whether the base tag is one of the two anchors.
func (p LanguagePair) Matches(base string) bool {
	return base == p.A.Base || base == p.B.Base
}

// Detection is the classifier's verdict for a message text.
type Detection struct {
	Code       string  // tag renvoyé par le backend
	Base       string  // tag de base normalisé
	Confidence float64 // 0..1, 1 si le backend ne fournit rien
}
