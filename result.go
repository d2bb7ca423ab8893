package dawg

// Result is one match returned by Subwords: a dictionary word plus the
// 0-indexed positions within it where a '?' from the letter multiset
// was spent to satisfy a letter.
type Result struct {
	Word              string
	WildcardPositions []int
}
