package engine

import (
	"strings"
	"unicode"
)

// NormalizeSkill canonicalizes a skill term for comparison: lowercase,
// trimmed, inner whitespace collapsed to single spaces.
func NormalizeSkill(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// tokenize splits text into lowercase tokens. '+', '#' and '.' count as word
// characters so terms like "c++", "c#" and "node.js" survive intact; trailing
// dots are stripped so sentence-final words still match.
func tokenize(text string) []string {
	var tokens []string
	var word strings.Builder

	flush := func() {
		if word.Len() == 0 {
			return
		}
		w := strings.TrimRight(word.String(), ".")
		word.Reset()
		if w != "" {
			tokens = append(tokens, w)
		}
	}

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	return tokens
}

// containsSequence reports whether term occurs as a consecutive run of whole
// tokens inside tokens. This is the engine's whole-word/phrase presence test:
// "java" never matches inside "javascript", while "machine learning" matches
// the two-token run.
func containsSequence(tokens, term []string) bool {
	if len(term) == 0 || len(term) > len(tokens) {
		return false
	}

	for i := 0; i+len(term) <= len(tokens); i++ {
		match := true
		for j := range term {
			if tokens[i+j] != term[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}

	return false
}
