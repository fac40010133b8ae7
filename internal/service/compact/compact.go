// Package compact bounds the conversation context passed to the coaching
// model by collapsing older turns into a short summary string.
package compact

import (
	"strings"

	"github.com/prasadt1/photocoach/internal/core"
)

// Window is how many trailing turns the compactor looks at: the last
// three user/assistant exchanges.
const Window = 6

// Compact returns a summary of the most recent Window turns, built from up
// to maxSentences leading sentences of assistant-authored text. User turns
// are excluded here because the recent-turns tail already carries them
// verbatim.
//
// Pure and total: no side effects, no errors. Malformed turns (empty text)
// are skipped; an empty or assistant-free history yields "".
func Compact(history []core.Turn, maxSentences int) string {
	if len(history) == 0 || maxSentences <= 0 {
		return ""
	}

	window := history
	if len(window) > Window {
		window = window[len(window)-Window:]
	}

	var sentences []string
	for _, turn := range window {
		if turn.Role != core.RoleAssistant || strings.TrimSpace(turn.Text) == "" {
			continue
		}
		for _, s := range splitSentences(turn.Text) {
			if len(sentences) == maxSentences {
				return strings.Join(sentences, " ")
			}
			sentences = append(sentences, s)
		}
	}

	return strings.Join(sentences, " ")
}

func splitSentences(text string) []string {
	var out []string
	var current strings.Builder

	for _, r := range text {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if s := strings.TrimSpace(current.String()); len(s) > 1 {
				out = append(out, s)
			}
			current.Reset()
		}
	}

	// A trailing fragment without terminal punctuation still counts as a
	// sentence; model text often ends mid-list.
	if s := strings.TrimSpace(current.String()); s != "" {
		out = append(out, s+".")
	}

	return out
}
