package dawg

import "strings"

// searchFrame is one entry of the explicit traversal stack used by
// Subwords. Recursion is deliberately not used here: dictionaries reach
// hundreds of thousands of words, and native call stacks do not
// comfortably cover the resulting search-tree depth.
type searchFrame struct {
	node              int32
	chars             letterCounts
	subword           []byte
	wildcardPositions []int
	patternIndex      int
}

// Subwords finds every dictionary word constructible from the letters
// multiset (a bag of A-Z letters plus any number of '?' single-letter
// wildcards), optionally constrained by pattern. It returns nil if
// letters or pattern fail validation (distinct from an empty, non-nil
// slice meaning "validated, no matches").
func (d *Dawg) Subwords(letters, pattern string) []Result {
	if !lettersValid(letters) {
		return nil
	}
	if !patternValid(pattern) {
		return nil
	}

	tokens := compilePattern(strings.ToUpper(pattern))
	chars, ok := parseLetters(strings.ToUpper(letters))
	if !ok {
		return nil
	}

	results := make(map[string]Result)
	stack := []searchFrame{{node: 0, chars: chars}}

	for len(stack) > 0 {
		entry := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		cell := d.cells.cell(entry.node)
		nodeValue := cell.letter()

		switch {
		case entry.patternIndex >= len(tokens):
			stack = d.stepNoPattern(stack, results, entry, cell, nodeValue)
		case tokens[entry.patternIndex].required:
			stack = d.stepRequired(stack, results, tokens, entry, cell, nodeValue)
		default:
			stack = d.stepOptional(stack, results, tokens, entry, cell, nodeValue)
		}
	}

	out := make([]Result, 0, len(results))
	for _, r := range results {
		out = append(out, r)
	}
	return out
}

func addResult(results map[string]Result, word string, wildcardPositions []int) {
	if _, exists := results[word]; exists {
		return
	}
	var wp []int
	if len(wildcardPositions) > 0 {
		wp = make([]int, len(wildcardPositions))
		copy(wp, wildcardPositions)
	}
	results[word] = Result{Word: word, WildcardPositions: wp}
}

func appendByte(b []byte, c byte) []byte {
	nb := make([]byte, len(b)+1)
	copy(nb, b)
	nb[len(b)] = c
	return nb
}

func push(stack []searchFrame, node int32, chars letterCounts, subword []byte, wildcardPositions []int, patternIndex int) []searchFrame {
	return append(stack, searchFrame{
		node:              node,
		chars:             chars,
		subword:           subword,
		wildcardPositions: wildcardPositions,
		patternIndex:      patternIndex,
	})
}

// stepRequired handles §4.4(B): the next pattern token must be satisfied
// by this node.
func (d *Dawg) stepRequired(stack []searchFrame, results map[string]Result, tokens []patternToken, entry searchFrame, cell PackedCell, nodeValue byte) []searchFrame {
	token := tokens[entry.patternIndex]
	chars := entry.chars
	wildcardPositions := entry.wildcardPositions
	subword := entry.subword
	patternIndex := entry.patternIndex

	switch token.letter {
	case '?':
		next, nextWP, ok := consume(chars, nodeValue, wildcardPositions, len(subword))
		if !ok {
			return stack
		}
		chars, wildcardPositions = next, nextWP
		subword = appendByte(subword, nodeValue)

	case tokenEnd:
		if cell.terminal() {
			addResult(results, string(subword), wildcardPositions)
		}
		return stack

	default:
		if nodeValue != token.letter {
			return stack
		}
		if nodeValue != 0 {
			subword = appendByte(subword, nodeValue)
		}
	}

	patternIndex++
	if patternIndex == len(tokens) && cell.terminal() {
		addResult(results, string(subword), wildcardPositions)
	}

	return d.addCandidates(stack, tokens, patternIndex, entry.node, chars, subword, wildcardPositions)
}

// stepOptional handles §4.4(C): only the first pattern token can be
// optional, meaning the walk may skip over it (an "open prefix").
func (d *Dawg) stepOptional(stack []searchFrame, results map[string]Result, tokens []patternToken, entry searchFrame, cell PackedCell, nodeValue byte) []searchFrame {
	token := tokens[entry.patternIndex]

	if entry.node == 0 {
		return d.addCandidates(stack, tokens, entry.patternIndex, entry.node, entry.chars, entry.subword, entry.wildcardPositions)
	}

	if token.letter == '?' {
		chars, wildcardPositions, ok := consume(entry.chars, nodeValue, entry.wildcardPositions, len(entry.subword))
		if !ok {
			return stack
		}
		subword := appendByte(entry.subword, nodeValue)

		nextPatternIndex := entry.patternIndex + 1
		if nextPatternIndex == len(tokens) && cell.terminal() {
			addResult(results, string(subword), wildcardPositions)
		}
		stack = d.addCandidates(stack, tokens, nextPatternIndex, entry.node, chars, subword, wildcardPositions)

		// Pattern not matched here; try again further along.
		stack = d.addCandidates(stack, tokens, entry.patternIndex, entry.node, chars, subword, wildcardPositions)
		return stack
	}

	subword := appendByte(entry.subword, nodeValue)

	// Letters matched, pattern still pending.
	if chars, wildcardPositions, ok := consume(entry.chars, nodeValue, entry.wildcardPositions, len(entry.subword)); ok {
		stack = d.addCandidates(stack, tokens, entry.patternIndex, entry.node, chars, subword, wildcardPositions)
	}

	// Pattern matched by a letter outside the available multiset ("open prefix").
	if nodeValue == token.letter {
		nextPatternIndex := entry.patternIndex + 1
		if nextPatternIndex == len(tokens) && cell.terminal() {
			addResult(results, string(subword), entry.wildcardPositions)
		}
		stack = d.addCandidates(stack, tokens, nextPatternIndex, entry.node, entry.chars, subword, entry.wildcardPositions)
	}

	return stack
}

// stepNoPattern handles §4.4(A): every pattern token has already been
// satisfied (or there was no pattern).
func (d *Dawg) stepNoPattern(stack []searchFrame, results map[string]Result, entry searchFrame, cell PackedCell, nodeValue byte) []searchFrame {
	chars := entry.chars
	wildcardPositions := entry.wildcardPositions
	subword := entry.subword

	if entry.node != 0 {
		next, nextWP, ok := consume(chars, nodeValue, wildcardPositions, len(subword))
		if !ok {
			return stack
		}
		chars, wildcardPositions = next, nextWP
		subword = appendByte(subword, nodeValue)

		if cell.terminal() {
			addResult(results, string(subword), wildcardPositions)
		}
	}

	return d.addCandidatesFromLetters(stack, entry.node, chars, subword, wildcardPositions, entry.patternIndex)
}

// addCandidates is the lookahead expansion described in spec.md §4.4:
// given the token that will have to be satisfied next, push only the
// children that could possibly satisfy it.
func (d *Dawg) addCandidates(stack []searchFrame, tokens []patternToken, patternIndex int, node int32, chars letterCounts, subword []byte, wildcardPositions []int) []searchFrame {
	if patternIndex >= len(tokens) {
		return d.addCandidatesFromLetters(stack, node, chars, subword, wildcardPositions, patternIndex)
	}

	token := tokens[patternIndex]
	if !token.required {
		if token.letter != '?' {
			if candidate, ok := d.findChild(node, token.letter); ok {
				stack = push(stack, candidate, chars, subword, wildcardPositions, patternIndex)
			}
		}
		return d.addCandidatesFromLetters(stack, node, chars, subword, wildcardPositions, patternIndex)
	}

	switch token.letter {
	case '?':
		for _, letter := range chars.uniqueLetters() {
			if candidate, ok := d.findChild(node, letter); ok {
				stack = push(stack, candidate, chars, subword, wildcardPositions, patternIndex)
			}
		}
		if chars.hasWildcard() {
			it := newChildIterator(d.cells, d.cells.cell(node).firstChildIndex())
			for {
				idx, _, ok := it.Next()
				if !ok {
					break
				}
				stack = push(stack, idx, chars, subword, wildcardPositions, patternIndex)
			}
		}

	case tokenEnd:
		stack = push(stack, node, chars, subword, wildcardPositions, patternIndex)

	default:
		if candidate, ok := d.findChild(node, token.letter); ok {
			stack = push(stack, candidate, chars, subword, wildcardPositions, patternIndex)
		}
	}

	return stack
}

// addCandidatesFromLetters is the letters-only expansion: every child
// reachable using what remains of the letter multiset.
func (d *Dawg) addCandidatesFromLetters(stack []searchFrame, node int32, chars letterCounts, subword []byte, wildcardPositions []int, patternIndex int) []searchFrame {
	if chars.hasWildcard() {
		it := newChildIterator(d.cells, d.cells.cell(node).firstChildIndex())
		for {
			idx, _, ok := it.Next()
			if !ok {
				break
			}
			stack = push(stack, idx, chars, subword, wildcardPositions, patternIndex)
		}
		return stack
	}

	for _, letter := range chars.uniqueLetters() {
		if candidate, ok := d.findChild(node, letter); ok {
			stack = push(stack, candidate, chars, subword, wildcardPositions, patternIndex)
		}
	}
	return stack
}
