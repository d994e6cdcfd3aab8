package compose

import (
	"strings"

	"github.com/mangakit/bubbletext/internal/fontkit"
)

// Wrap greedily word-wraps text into lines no wider than maxWidth pixels,
// measured with the given font handle. Lines are joined with "\n".
//
// Words are whitespace-separated tokens; punctuation stays attached. A word
// whose own measured width exceeds maxWidth is placed alone on its own line
// anyway; words are never fragmented. Empty input returns an empty string.
func Wrap(text string, h *fontkit.Handle, maxWidth int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	var current []string

	for _, word := range words {
		candidate := strings.Join(append(current, word), " ")
		w, _ := h.LineSize(candidate)
		if w <= maxWidth {
			current = append(current, word)
			continue
		}
		if len(current) == 0 {
			// Even a single word overflows; keep it whole on its
			// own line.
			lines = append(lines, word)
			continue
		}
		lines = append(lines, strings.Join(current, " "))
		current = []string{word}
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}

	return strings.Join(lines, "\n")
}
