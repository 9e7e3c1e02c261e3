package conversation

import "strings"

// QuickAction is a canned prompt offered as a one-click shortcut.
type QuickAction struct {
	ID    string
	Title string
	Query string
}

var quickActions = []QuickAction{
	{"team-communication", "Team Communication", "Analyze my international team communication and provide real-time cultural coaching"},
	{"conflict-resolution", "Conflict Resolution", "Help resolve cross-cultural team conflict with AI coaching and cultural mediation"},
	{"cultural-tips", "Cultural Tips", "What are important cultural considerations for international business teams?"},
	{"timing-optimization", "Timing Optimization", "Optimize communication timing for my French, Romanian, and American team members"},
	{"france-regs", "France Business Regulations", "What are the key business regulations for starting a company in France?"},
	{"romania-laws", "Romania Business Laws", "Tell me about business laws and compliance requirements in Romania"},
	{"us-expansion", "US Market Expansion", "How can European businesses expand to the US market, specifically Arizona?"},
	{"language-training", "Language Training", "What language training programs do you offer for business contexts?"},
	{"services", "Our Services", "What AI Collaboration Coach services does Maison de Culture offer and pricing?"},
}

// Text prefixes that mark a message as a quick-action phrasing even when typed by hand.
var quickActionPrefixes = []string{
	"Analyze",
	"Help",
	"What are important cultural considerations",
}

// QuickActions returns the quick-action catalogue in display order.
func QuickActions() []QuickAction {
	return append([]QuickAction(nil), quickActions...)
}

// LookupQuickAction finds a quick action by id.
func LookupQuickAction(id string) (QuickAction, bool) {
	for _, qa := range quickActions {
		if qa.ID == id {
			return qa, true
		}
	}
	return QuickAction{}, false
}

// IsQuickAction reports whether text matches a known quick-action phrasing.
func IsQuickAction(text string) bool {
	for _, qa := range quickActions {
		if qa.Query == text {
			return true
		}
	}
	for _, p := range quickActionPrefixes {
		if strings.HasPrefix(text, p) {
			return true
		}
	}
	return false
}
