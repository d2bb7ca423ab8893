/*
Package dawg is an implementation of a Directed Acyclic Word Graph, a
minimal automaton for a fixed set of uppercase words.

It stores words in a compact array of 32-bit cells and answers two kinds
of query: whether a word is present, and which dictionary words can be
built from a multiset of letters (with `?` wildcards) subject to an
optional pattern using `?` single-letter wildcards and `$` anchors.

To build a Dawg, create a Builder with New, Add words to it in any order,
then call Build. The Builder's internal trie is minimized bottom-up into
a directed acyclic graph and packed into a flat []PackedCell before
Build returns. The resulting Dawg is immutable and safe for concurrent
readers.

The packed array can be written to and read back from a stream with
Write/Read or Save/Load. LoadMmap maps the file into memory instead of
reading it into a []byte, which is useful for very large dictionaries.
*/
package dawg
