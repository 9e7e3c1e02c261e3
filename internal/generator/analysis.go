package generator

import "strings"

// Tone is the register detected in a message.
type Tone string

const (
	ToneFormal   Tone = "formal"
	ToneInformal Tone = "informal"
	ToneNeutral  Tone = "neutral"
)

// Risk is the likelihood a message lands badly with the target culture.
type Risk string

const (
	RiskLow    Risk = "low"
	RiskMedium Risk = "medium"
	RiskHigh   Risk = "high"
)

// Analysis is the communication assessment for one message.
type Analysis struct {
	Tone         Tone
	CulturalRisk Risk
	Suggestions  []string
	Timing       string
	Etiquette    []string
}

var (
	formalIndicators   = []string{"please", "kindly", "would you", "could you", "sincerely", "respectfully", "dear", "regards"}
	informalIndicators = []string{"hey", "hi there", "thanks!", "cool", "awesome", "sure thing", "no worries"}
)

// Analyze assesses tone and cultural fit of text for targetCulture.
// sourceContext names the setting the message is written for, such as "meeting", "formal" or "legal".
func Analyze(text, targetCulture, sourceContext string) Analysis {
	a := Analysis{
		Tone:         detectTone(text),
		CulturalRisk: RiskLow,
		Suggestions:  []string{},
		Etiquette:    []string{},
	}

	switch strings.ToLower(targetCulture) {
	case "french", "france":
		if a.Tone == ToneInformal {
			a.CulturalRisk = RiskHigh
			a.Suggestions = append(a.Suggestions,
				"🚨 ALERT: French business culture expects formal communication",
				`Add "Monsieur/Madame" titles and formal greetings`,
				"Use structured paragraphs and polite closing formulas",
			)
		}
		a.Timing = "Optimal: 9 AM - 6 PM CET weekdays. AVOID: August vacation period, lunch 12-2 PM"
		a.Etiquette = append(a.Etiquette, `Begin with "Bonjour" + title`, `Use "vous" form`, `End with "Cordialement"`)

	case "romanian", "romania":
		if a.Tone == ToneInformal && (sourceContext == "meeting" || sourceContext == "formal") {
			a.CulturalRisk = RiskMedium
			a.Suggestions = append(a.Suggestions,
				"⚠️ Romanian business culture values directness but with hierarchy respect",
				"Show deference to senior team members",
			)
		}
		a.Timing = "Optimal: 8 AM - 5 PM EET weekdays. AVOID: Orthodox holidays, summer breaks"
		a.Etiquette = append(a.Etiquette, "Respect seniority in discussions", "Be direct but diplomatic", "Build relationships first")

	case "american", "usa":
		if a.Tone == ToneFormal && sourceContext != "legal" {
			a.Suggestions = append(a.Suggestions,
				"💡 TIP: American teams often prefer friendly, direct communication",
				"Consider adding a brief personal touch or enthusiasm",
			)
		}
		a.Timing = "Optimal: 9 AM - 5 PM EST/PST weekdays. AVOID: Major holidays, summer Fridays"
		a.Etiquette = append(a.Etiquette, "Get straight to the point", "Use confident, action-oriented language", "Include clear next steps")

	default:
		a.Suggestions = append(a.Suggestions, "Consider specific cultural context for optimal communication effectiveness")
	}

	return a
}

func detectTone(text string) Tone {
	lower := strings.ToLower(text)
	formal := countContained(lower, formalIndicators)
	informal := countContained(lower, informalIndicators)
	switch {
	case formal > informal:
		return ToneFormal
	case informal > formal:
		return ToneInformal
	default:
		return ToneNeutral
	}
}

func countContained(s string, needles []string) int {
	n := 0
	for _, needle := range needles {
		if strings.Contains(s, needle) {
			n++
		}
	}
	return n
}
