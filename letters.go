package dawg

import "regexp"

var lettersRegex = regexp.MustCompile(`^[A-Za-z?]+$`)

// lettersValid reports whether letters is usable as a Subwords multiset:
// at least two characters, all of them letters or '?'.
func lettersValid(letters string) bool {
	if len(letters) < 2 {
		return false
	}
	return lettersRegex.MatchString(letters)
}

// wildcardSlot is the index letterCounts reserves for '?' wildcards,
// one past the 26 letter slots.
const wildcardSlot = 26

// letterCounts is a fixed-size multiset over A-Z plus a wildcard slot.
// Being an array, not a slice, it copies by value on assignment, which
// is what gives each pushed search frame its own independent snapshot
// without an explicit clone.
type letterCounts [27]int16

func letterSlot(ch byte) (int, bool) {
	switch {
	case ch == '?':
		return wildcardSlot, true
	case ch >= 'A' && ch <= 'Z':
		return int(ch - 'A'), true
	default:
		return 0, false
	}
}

func parseLetters(upper string) (letterCounts, bool) {
	var lc letterCounts
	for i := 0; i < len(upper); i++ {
		slot, ok := letterSlot(upper[i])
		if !ok {
			return lc, false
		}
		lc[slot]++
	}
	return lc, true
}

func (lc letterCounts) has(ch byte) bool {
	slot, ok := letterSlot(ch)
	return ok && lc[slot] > 0
}

func (lc letterCounts) hasWildcard() bool {
	return lc[wildcardSlot] > 0
}

func (lc letterCounts) remove(ch byte) letterCounts {
	slot, _ := letterSlot(ch)
	lc[slot]--
	return lc
}

func (lc letterCounts) removeWildcard() letterCounts {
	lc[wildcardSlot]--
	return lc
}

// uniqueLetters returns the distinct A-Z letters present in the multiset,
// in alphabetical order (the wildcard slot is never included: whether a
// wildcard is available is queried separately with hasWildcard).
func (lc letterCounts) uniqueLetters() []byte {
	var out []byte
	for i := 0; i < wildcardSlot; i++ {
		if lc[i] > 0 {
			out = append(out, byte('A'+i))
		}
	}
	return out
}

// consume removes ch from chars if present; failing that, it spends one
// wildcard and records position in a freshly copied wildcardPositions.
// ok is false if neither was available, meaning the caller must abandon
// this branch of the search.
func consume(chars letterCounts, ch byte, wildcardPositions []int, position int) (next letterCounts, nextWildcardPositions []int, ok bool) {
	if chars.has(ch) {
		return chars.remove(ch), wildcardPositions, true
	}
	if chars.hasWildcard() {
		wp := make([]int, len(wildcardPositions)+1)
		copy(wp, wildcardPositions)
		wp[len(wildcardPositions)] = position
		return chars.removeWildcard(), wp, true
	}
	return chars, wildcardPositions, false
}
