package dawg

import (
	"bufio"
	"io"
	"strings"

	"github.com/milden6/dawg/internal/trie"
)

// Builder grows an uncompressed trie one word at a time, then minimizes
// it into a Dawg. A Builder is single-owner: Add and Build are not safe
// for concurrent use, and Add after a successful Build panics.
type Builder struct {
	arena     *trie.Arena
	wordCount int
	built     bool

	// lastNodeCount is the trie's reachable-node count at the moment of
	// Build, kept around so NodeCount stays meaningful afterward even
	// though the scratch arena itself is discarded.
	lastNodeCount int
}

// New creates an empty Builder.
func New() *Builder {
	return &Builder{arena: trie.New()}
}

// Add folds word to uppercase and inserts it into the trie. Words under
// two characters, and nil/empty input, are silently ignored. WordCount
// only increases the first time a given word is marked terminal; adding
// the same word twice is a no-op the second time.
func (b *Builder) Add(word string) {
	if b.built {
		panic("dawg: Add called on a Builder that has already been Built")
	}
	if len(word) < 2 {
		return
	}

	word = strings.ToUpper(word)

	node := trie.RootIndex
	for i := 0; i < len(word); i++ {
		ch := word[i]
		child := b.arena.FindChild(node, ch)
		if child == trie.NoChild {
			child = b.arena.AddChild(node, ch)
		}
		node = child
	}

	if !b.arena.Nodes[node].Terminal {
		b.arena.Nodes[node].Terminal = true
		b.wordCount++
	}
}

// AddAll adds every word in words.
func (b *Builder) AddAll(words []string) {
	for _, w := range words {
		b.Add(w)
	}
}

// AddReader reads newline-delimited words from r, adding each one.
// Blank lines are silently dropped (Add already ignores anything under
// two characters).
func (b *Builder) AddReader(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		b.Add(scanner.Text())
	}
	return scanner.Err()
}

// Contains reports whether word would be found in the Dawg this Builder
// would currently produce.
func (b *Builder) Contains(word string) bool {
	if len(word) < 2 {
		return false
	}
	word = strings.ToUpper(word)

	node := trie.RootIndex
	for i := 0; i < len(word); i++ {
		child := b.arena.FindChild(node, word[i])
		if child == trie.NoChild {
			return false
		}
		node = child
	}
	return b.arena.Nodes[node].Terminal
}

// WordCount returns the number of distinct words added so far.
func (b *Builder) WordCount() int {
	return b.wordCount
}

// NodeCount returns a full traversal count of the trie: before Build it
// walks the live arena; after Build it reports the count recorded at
// minimization time, since the scratch arena is discarded by Build.
func (b *Builder) NodeCount() int {
	if b.arena == nil {
		return b.lastNodeCount
	}
	return b.arena.NodeCount()
}

// Build minimizes the accumulated trie into a DAWG, packs it, and
// returns the resulting Dawg. The Builder's scratch state is discarded;
// further calls to Add panic.
func (b *Builder) Build() *Dawg {
	return b.build(false)
}

// BuildHashed is identical to Build but uses the O(N) hash-based
// equivalence classifier instead of pairwise bin comparison. Both Dawgs
// accept the same words; the hash classifier does not merge nodes that
// have two or more children, so its NodeCount can be larger than
// Build's for the same word list.
func (b *Builder) BuildHashed() *Dawg {
	return b.build(true)
}

func (b *Builder) build(useHash bool) *Dawg {
	if b.built {
		panic("dawg: Build called twice on the same Builder")
	}

	trie.Minimize(b.arena, useHash)
	b.lastNodeCount = b.arena.NodeCount()

	infos := trie.Pack(b.arena)
	cells := make([]PackedCell, len(infos))
	for i, info := range infos {
		cells[i] = makeCell(info.Letter, info.Terminal, info.LastSibling, info.FirstChild)
	}

	b.built = true
	b.arena = nil

	return &Dawg{cells: sliceCells(cells), wordCount: b.wordCount}
}
