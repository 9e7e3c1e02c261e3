// Package generator produces Le Guide's rule-based consulting replies.
package generator

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/maisondeculture/leguide/internal/domain"
)

// category is the response family selected for a message.
type category int

const (
	categoryQuickAnalysis category = iota
	categoryQuickConflict
	categoryQuickTeam
	categoryPricing
	categoryCompliance
	categoryCultural
	categoryLanguage
	categoryMarket
	categoryGeneral
	categoryDefault
)

var categoryNames = map[category]string{
	categoryQuickAnalysis: "quick_analysis",
	categoryQuickConflict: "quick_conflict",
	categoryQuickTeam:     "quick_team",
	categoryPricing:       "pricing",
	categoryCompliance:    "compliance",
	categoryCultural:      "cultural",
	categoryLanguage:      "language",
	categoryMarket:        "market",
	categoryGeneral:       "general",
	categoryDefault:       "default",
}

func (c category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

var (
	analysisPattern   = regexp.MustCompile(`(?i)analyze|review|tone|communication|team|feedback|cultural|coach`)
	conflictPattern   = regexp.MustCompile(`(?i)conflict|problem|misunderstanding|issue|tension`)
	teamPattern       = regexp.MustCompile(`(?i)team|meeting|collaboration|remote|international`)
	pricingPattern    = regexp.MustCompile(`(?i)price|cost|pricing|fee|budget|how much|expensive|affordable`)
	compliancePattern = regexp.MustCompile(`(?i)regulation|law|legal|compliance|requirement|permit|license`)
	culturalPattern   = regexp.MustCompile(`(?i)culture|etiquette|custom|tradition|behavior|communication style`)
	languagePattern   = regexp.MustCompile(`(?i)language|translation|learn|speak|fluent|bilingual`)
	marketPattern     = regexp.MustCompile(`(?i)market|expand|business|opportunity|competition|strategy`)
)

// signals are the request-type flags shared by several rules.
type signals struct {
	quickAction bool
	analysis    bool
	conflict    bool
	team        bool
}

func detect(text string, bc domain.BusinessContext) signals {
	return signals{
		quickAction: bc.MessageType == domain.MessageTypeQuickAction,
		analysis:    analysisPattern.MatchString(text),
		conflict:    conflictPattern.MatchString(text),
		team:        teamPattern.MatchString(text),
	}
}

type rule struct {
	category category
	match    func(text string, s signals) bool
}

func pattern(re *regexp.Regexp) func(string, signals) bool {
	return func(text string, _ signals) bool { return re.MatchString(text) }
}

// rules is evaluated top to bottom; the first match wins.
var rules = []rule{
	{categoryQuickAnalysis, func(_ string, s signals) bool { return s.quickAction && s.analysis }},
	{categoryQuickConflict, func(_ string, s signals) bool { return s.quickAction && s.conflict }},
	{categoryQuickTeam, func(_ string, s signals) bool { return s.quickAction && s.team }},
	{categoryPricing, pattern(pricingPattern)},
	{categoryCompliance, pattern(compliancePattern)},
	{categoryCultural, pattern(culturalPattern)},
	{categoryLanguage, pattern(languagePattern)},
	{categoryMarket, pattern(marketPattern)},
	{categoryGeneral, func(_ string, s signals) bool { return s.analysis || s.team || s.conflict }},
}

func classify(text string, s signals) category {
	for _, r := range rules {
		if r.match(text, s) {
			return r.category
		}
	}
	return categoryDefault
}

// Engine generates replies. It holds no per-request state and is safe for concurrent use.
type Engine struct {
	logger *slog.Logger
}

// New creates an Engine. A nil logger falls back to slog.Default.
func New(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logger: logger}
}

// Generate returns the reply for text. It is deterministic and always returns a non-empty string.
func (e *Engine) Generate(text string, bc domain.BusinessContext, history []domain.HistoryEntry) string {
	s := detect(text, bc)
	cat := classify(text, s)

	e.logger.Debug("Generating response",
		"category", cat.String(),
		"language", bc.Query,
		"quick_action", s.quickAction,
		"history_len", len(history),
	)

	return render(cat, text, bc, s)
}

// Respond implements the conversation Responder contract in-process.
func (e *Engine) Respond(ctx context.Context, text string, bc domain.BusinessContext, history []domain.HistoryEntry) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return e.Generate(text, bc, history), nil
}

func render(cat category, text string, bc domain.BusinessContext, s signals) string {
	switch cat {
	case categoryQuickAnalysis:
		a := Analyze(text, bc.Country, "")
		return strings.NewReplacer(
			"{tone}", string(a.Tone),
			"{risk}", string(a.CulturalRisk),
			"{suggestions}", strings.Join(a.Suggestions, ", "),
			"{timing}", a.Timing,
			"{etiquette}", strings.Join(a.Etiquette, ", "),
		).Replace(analysisTemplate)
	case categoryQuickConflict:
		return conflictTemplate
	case categoryQuickTeam:
		a := Analyze(text, bc.Country, "")
		return strings.NewReplacer(
			"{country}", bc.Country,
			"{tone}", string(a.Tone),
			"{suggestions}", strings.Join(a.Suggestions, ", "),
		).Replace(teamTemplate)
	case categoryGeneral:
		return strings.NewReplacer(
			"{conflict_line}", flagLine(s.conflict, conflictLine),
			"{team_line}", flagLine(s.team, teamLine),
			"{analysis_line}", flagLine(s.analysis, analysisLine),
		).Replace(localized(cat, bc.Query))
	case categoryDefault:
		return strings.NewReplacer("{message}", text).Replace(localized(cat, bc.Query))
	default:
		return localized(cat, bc.Query)
	}
}

func localized(cat category, lang string) string {
	byLang := localizedTemplates[cat]
	if tpl, ok := byLang[lang]; ok {
		return tpl
	}
	return byLang[domain.LanguageEnglish]
}

func flagLine(on bool, line string) string {
	if on {
		return line
	}
	return ""
}
