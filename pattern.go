package dawg

import (
	"regexp"
	"strings"
)

var patternRegex = regexp.MustCompile(`^\$?[A-Z?]*\$?$`)

// tokenEnd is the sentinel pattern-token letter for the trailing `$`
// end-anchor; it cannot collide with an uppercase letter, '?', or the
// root's 0 sentinel.
const tokenEnd byte = 0xff

// patternToken is one (letter, required) pair produced by the pattern
// compiler and consumed left-to-right by the search engine.
type patternToken struct {
	letter   byte
	required bool
}

// patternValid reports whether pattern is nil/empty, or matches
// `\$?[A-Z?]*\$?` once case-folded.
func patternValid(pattern string) bool {
	if pattern == "" {
		return true
	}
	return patternRegex.MatchString(strings.ToUpper(pattern))
}

// compilePattern turns a validated, already-uppercased pattern into its
// token sequence. An empty pattern yields no tokens.
func compilePattern(pattern string) []patternToken {
	if pattern == "" {
		return nil
	}

	var tokens []patternToken
	n := len(pattern)

	first := pattern[0]
	if first == '$' {
		tokens = append(tokens, patternToken{letter: 0, required: true})
	} else {
		tokens = append(tokens, patternToken{letter: first, required: false})
	}

	for i := 1; i < n-1; i++ {
		tokens = append(tokens, patternToken{letter: pattern[i], required: true})
	}

	if n > 1 {
		last := pattern[n-1]
		if last == '$' {
			tokens = append(tokens, patternToken{letter: tokenEnd, required: true})
		} else {
			tokens = append(tokens, patternToken{letter: last, required: true})
		}
	}

	return tokens
}
