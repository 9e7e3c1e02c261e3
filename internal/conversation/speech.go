package conversation

import "github.com/maisondeculture/leguide/internal/domain"

// SpeechHandlers receive the outcome of one recognition session.
// A session reports either OnResult or OnError, then OnEnd. Handlers may be
// called from any goroutine.
type SpeechHandlers struct {
	OnResult func(text string)
	OnError  func(err error)
	OnEnd    func()
}

// SpeechInput starts single-utterance speech recognition.
type SpeechInput interface {
	Start(lang string, h SpeechHandlers) error
}

// RecognitionLanguage maps a UI language to a speech recognition locale.
func RecognitionLanguage(lang string) string {
	switch lang {
	case domain.LanguageFrench:
		return "fr-FR"
	case domain.LanguageRomanian:
		return "ro-RO"
	default:
		return "en-US"
	}
}
