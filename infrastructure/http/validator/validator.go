package validator

import "strings"

func ValidateRequired(value string) bool {
	return strings.TrimSpace(value) != ""
}

// ContainsBannedWord reports the first entry of words that occurs in text,
// ignoring case. Empty entries never match.
func ContainsBannedWord(text string, words []string) (string, bool) {
	if text == "" || len(words) == 0 {
		return "", false
	}
	lowered := strings.ToLower(text)
	for _, word := range words {
		w := strings.ToLower(strings.TrimSpace(word))
		if w != "" && strings.Contains(lowered, w) {
			return word, true
		}
	}
	return "", false
}

// ValidateJWT is a cheap shape check: three dot separated segments.
func ValidateJWT(token string) bool {
	if token == "" {
		return false
	}
	return len(strings.Split(token, ".")) == 3
}
