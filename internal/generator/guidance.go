package generator

import (
	"sort"
	"strings"
)

var teamStrategies = map[string]map[string]string{
	"virtual_meeting": {
		"french":   "🇫🇷 Prepare structured agenda, formal introductions, allow discussion time, respect speaking hierarchy",
		"romanian": "🇷🇴 Show hierarchy respect, come prepared with facts, build consensus, allow relationship building",
		"american": "🇺🇸 Start with brief small talk, focus on outcomes, encourage participation, end with action items",
	},
	"email_communication": {
		"french":   "🇫🇷 Formal salutations (Monsieur/Madame), structured paragraphs, diplomatic language, proper closing",
		"romanian": "🇷🇴 Clear subject lines, respectful but direct tone, specific deliverables, acknowledge hierarchy",
		"american": "🇺🇸 Concise bullet points, action-oriented language, friendly but professional, clear deadlines",
	},
	"conflict_resolution": {
		"french":   "🇫🇷 Address through proper channels, use diplomatic language, maintain formality, seek mediated resolution",
		"romanian": "🇷🇴 Direct but respectful discussion, acknowledge authority, focus on practical solutions",
		"american": "🇺🇸 Open dialogue encouraged, solution-focused approach, document agreements, move forward quickly",
	},
	"feedback_delivery": {
		"french":   "🇫🇷 Schedule formal meeting, sandwich method, focus on process improvement, maintain dignity",
		"romanian": "🇷🇴 Private discussion first, direct but constructive, provide specific examples, offer support",
		"american": "🇺🇸 Regular informal check-ins, specific behavioral feedback, growth-oriented, actionable steps",
	},
}

// Scenarios lists the scenarios TeamGuidance knows about.
func Scenarios() []string {
	out := make([]string, 0, len(teamStrategies))
	for k := range teamStrategies {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// TeamGuidance renders per-culture strategies for a collaboration scenario.
func TeamGuidance(scenario string, cultures []string) string {
	byCulture, ok := teamStrategies[scenario]
	if !ok {
		return "📋 No specific strategies available for this scenario."
	}

	parts := make([]string, len(cultures))
	for i, c := range cultures {
		if s, ok := byCulture[strings.ToLower(c)]; ok {
			parts[i] = s
			continue
		}
		parts[i] = "**" + c + "**: Apply general professional communication principles"
	}

	header := "## 🌍 Cross-Cultural Strategy: " + strings.ToUpper(strings.Replace(scenario, "_", " ", 1)) + "\n\n"
	return header + strings.Join(parts, "\n\n") + "\n\n💡 **AI Coach Tip**: Use our real-time feedback feature to optimize each interaction!"
}
