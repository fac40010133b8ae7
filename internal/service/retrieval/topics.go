package retrieval

import "strings"

// topicKeywords maps a photography topic to the phrases that signal it in
// generated coaching text. Key-phrase extraction runs against the model's
// own answer, not the user's question, so the citations stay aligned with
// what the answer actually said.
var topicKeywords = map[string][]string{
	"rule of thirds":   {"rule of thirds", "thirds", "grid", "power point", "intersection"},
	"golden hour":      {"golden hour", "magic hour", "sunrise", "sunset", "warm light"},
	"depth of field":   {"depth of field", "dof", "bokeh", "background separation", "shallow", "deep focus"},
	"exposure":         {"exposure", "overexposed", "underexposed", "histogram"},
	"iso":              {"iso", "noise", "grain", "sensitivity"},
	"aperture":         {"aperture", "f-stop", "f/", "wide open", "stopped down"},
	"shutter speed":    {"shutter speed", "motion blur", "freeze", "fast shutter", "slow shutter"},
	"leading lines":    {"leading lines", "diagonal", "eye flow", "converging"},
	"lighting":         {"lighting", "light", "shadows", "highlights", "contrast"},
	"composition":      {"composition", "framing", "frame", "arrange", "placement"},
	"focus":            {"focus", "sharp", "sharpness", "out of focus", "soft"},
	"white balance":    {"white balance", "color temperature", "kelvin", "color cast"},
	"horizon":          {"horizon", "tilt", "level", "crooked"},
	"centered subject": {"centered", "center", "symmetry", "symmetrical"},
	"background":       {"background", "distraction", "clutter", "busy"},
}

// topicOrder keeps extraction deterministic; map iteration order is not.
var topicOrder = []string{
	"rule of thirds",
	"golden hour",
	"depth of field",
	"exposure",
	"iso",
	"aperture",
	"shutter speed",
	"leading lines",
	"lighting",
	"composition",
	"focus",
	"white balance",
	"horizon",
	"centered subject",
	"background",
}

// ExtractTopics derives key phrases from a generated answer, enriched with
// issue labels surfaced by the vision analyzer. Falls back to the general
// topics when nothing specific matched.
func ExtractTopics(answer string, issueLabels []string) []string {
	haystack := strings.ToLower(answer + " " + strings.Join(issueLabels, " "))
	haystack = strings.ReplaceAll(haystack, "_", " ")

	var found []string
	for _, topic := range topicOrder {
		for _, kw := range topicKeywords[topic] {
			if strings.Contains(haystack, kw) {
				found = append(found, topic)
				break
			}
		}
	}

	if len(found) == 0 {
		found = []string{"composition", "exposure"}
	}
	return found
}
