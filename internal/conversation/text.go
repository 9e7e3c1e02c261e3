package conversation

import "github.com/maisondeculture/leguide/internal/domain"

// WelcomeMessageID is the fixed id of the greeting shown in an empty conversation.
const WelcomeMessageID = "welcome"

var welcomeText = map[string]string{
	domain.LanguageEnglish:  "Hello! I'm Le Guide, your expert assistant for cross-cultural business consulting. How can I help you today?",
	domain.LanguageFrench:   "Bonjour ! Je suis Le Guide, votre assistant expert pour le conseil en affaires interculturelles. Comment puis-je vous aider aujourd'hui ?",
	domain.LanguageRomanian: "Bună! Sunt Le Guide, asistentul tău expert pentru consultanță în afaceri interculturale. Cum te pot ajuta astăzi?",
}

var genericErrorText = map[string]string{
	domain.LanguageEnglish:  "Something went wrong. Please try again.",
	domain.LanguageFrench:   "Une erreur s'est produite. Veuillez réessayer.",
	domain.LanguageRomanian: "Ceva nu a mers bine. Te rog să încerci din nou.",
}

// WelcomeText returns the greeting in lang, falling back to English.
func WelcomeText(lang string) string {
	return welcomeText[domain.NormalizeLanguage(lang)]
}

// GenericErrorText returns the catch-all failure message in lang.
func GenericErrorText(lang string) string {
	return genericErrorText[domain.NormalizeLanguage(lang)]
}

// Voice input messages.
const (
	speechUnsupportedText = "Speech recognition not supported in this browser"
	speechErrorText       = "Voice input error. Please try again."
	speechStartFailedText = "Could not start voice recognition"
)
