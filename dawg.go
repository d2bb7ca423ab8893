package dawg

import "strings"

// Dawg is an immutable, minimized Directed Acyclic Word Graph. Any
// number of readers may call Contains and Subwords concurrently; there
// are no internal mutable caches on the query path.
type Dawg struct {
	cells     cellSource
	wordCount int
}

// NodeCount returns the number of packed cells in this Dawg.
func (d *Dawg) NodeCount() int {
	return d.cells.len()
}

// WordCount returns the number of distinct words the Builder added
// before producing this Dawg.
func (d *Dawg) WordCount() int {
	return d.wordCount
}

// Contains reports whether word is in the dictionary. nil, empty, and
// single-character input always yield false.
func (d *Dawg) Contains(word string) bool {
	if len(word) < 2 {
		return false
	}
	word = strings.ToUpper(word)

	node := int32(0)
	for i := 0; i < len(word); i++ {
		child, ok := d.findChild(node, word[i])
		if !ok {
			return false
		}
		node = child
	}
	return d.cells.cell(node).terminal()
}

// findChild scans node's child block for a cell with the given letter.
func (d *Dawg) findChild(node int32, letter byte) (int32, bool) {
	it := newChildIterator(d.cells, d.cells.cell(node).firstChildIndex())
	for {
		idx, cell, ok := it.Next()
		if !ok {
			return 0, false
		}
		if cell.letter() == letter {
			return idx, true
		}
	}
}

// ExtractWords is a convenience projection returning the set of distinct
// words among results.
func ExtractWords(results []Result) map[string]struct{} {
	words := make(map[string]struct{}, len(results))
	for _, r := range results {
		words[r.Word] = struct{}{}
	}
	return words
}

// EnumFn is called by Enumerate for every prefix reachable from the
// root, in the order the packed children were written. It returns an
// EnumerationResult telling Enumerate whether to keep descending.
type EnumFn func(prefix []byte, final bool) EnumerationResult

// EnumerationResult controls how Enumerate proceeds past the node it was
// just called for.
type EnumerationResult int

const (
	// Continue enumerates all words below this prefix.
	Continue EnumerationResult = iota
	// Skip stops descending below this prefix, but keeps enumerating siblings.
	Skip
	// Stop halts enumeration entirely.
	Stop
)

// Enumerate calls fn for every prefix of every word in the Dawg,
// including the empty prefix at the root, stopping early per fn's
// return value.
func (d *Dawg) Enumerate(fn EnumFn) {
	d.enumerate(0, nil, fn)
}

func (d *Dawg) enumerate(node int32, prefix []byte, fn EnumFn) EnumerationResult {
	result := fn(prefix, d.cells.cell(node).terminal())
	if result != Continue {
		return result
	}

	it := newChildIterator(d.cells, d.cells.cell(node).firstChildIndex())
	for {
		idx, cell, ok := it.Next()
		if !ok {
			break
		}
		childPrefix := make([]byte, len(prefix)+1)
		copy(childPrefix, prefix)
		childPrefix[len(prefix)] = cell.letter()

		childResult := d.enumerate(idx, childPrefix, fn)
		if childResult == Stop {
			return Stop
		}
	}
	return Continue
}
