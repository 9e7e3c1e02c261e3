package domain

import "strings"

// Supported response languages.
const (
	LanguageEnglish  = "en"
	LanguageFrench   = "fr"
	LanguageRomanian = "ro"
)

// SupportedLanguages lists the languages the generator answers in.
var SupportedLanguages = []string{LanguageEnglish, LanguageFrench, LanguageRomanian}

// NormalizeLanguage maps a language tag to a supported language, defaulting to English.
func NormalizeLanguage(tag string) string {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case LanguageFrench:
		return LanguageFrench
	case LanguageRomanian:
		return LanguageRomanian
	default:
		return LanguageEnglish
	}
}

// IsSupportedLanguage reports whether tag names one of SupportedLanguages exactly.
func IsSupportedLanguage(tag string) bool {
	for _, l := range SupportedLanguages {
		if l == tag {
			return true
		}
	}
	return false
}

// BusinessContext describes the asker and the conversation a request belongs to.
// Query carries the UI language tag.
type BusinessContext struct {
	Country          string         `json:"country"`
	Query            string         `json:"query"`
	Industry         string         `json:"industry,omitempty"`
	CompanySize      string         `json:"companySize,omitempty"`
	MessageType      MessageType    `json:"messageType,omitempty"`
	PreviousMessages []HistoryEntry `json:"previousMessages,omitempty"`
}

// DefaultContext returns the context a new conversation starts with.
func DefaultContext(language string) BusinessContext {
	return BusinessContext{Country: "us", Query: NormalizeLanguage(language)}
}

// WithoutHistory returns a copy of c with PreviousMessages dropped.
func (c BusinessContext) WithoutHistory() BusinessContext {
	c.PreviousMessages = nil
	return c
}
