package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent normalizes a field name or path for fuzzy matching.
// The normalization pipeline:
// 1. Split CamelCase into tokens.
// 2. Case-fold to lower.
// 3. Strip separators (_, -, ., space).
func NormalizeIdent(s string) string {
	tokens := tokenizeCamelCase(s)

	joined := strings.ToLower(strings.Join(tokens, ""))

	return stripSeparators(joined)
}

// tokenizeCamelCase splits a CamelCase or camelCase string into tokens.
// Examples:
//   - "gitEmail" -> ["git", "Email"]
//   - "SSHKeyPath" -> ["SSH", "Key", "Path"]
//   - "git.user_name" -> ["git", "user", "name"]
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && shouldStartNewToken(runes, i) && current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || r == ' '
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prev := runes[i-1]

	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	// "gitName" -> split before 'N'
	if !unicode.IsUpper(prev) {
		return true
	}

	// "SSHKey" -> split before 'K'
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}

func stripSeparators(s string) string {
	var result strings.Builder

	result.Grow(len(s))

	for _, r := range s {
		if !isSeparator(r) {
			result.WriteRune(r)
		}
	}

	return result.String()
}
