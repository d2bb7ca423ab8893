// Package trie holds the Builder-internal, transient word trie: an
// arena of nodes referenced by integer index rather than by pointer, so
// that the minimizer can re-parent merged-away subtrees without needing
// cyclic parent/child pointers.
package trie

import "github.com/willf/bitset"

// NoChild is the sentinel stored in Node.FirstChild/Replacement when there
// is no such node.
const NoChild int32 = -1

// Node is one trie node. Index, ChildDepth, IsFirstChild, LastSibling,
// SiblingCount and Replacement are minimization scratch, valid only
// between a call to BFSNumber and the point the arena is discarded.
type Node struct {
	Letter   byte
	Terminal bool
	Parent   int32

	// FirstChild is the first of this node's children in insertion order;
	// NextSiblings holds the rest, in the order they were added.
	FirstChild   int32
	NextSiblings []int32

	Index        int32
	ChildDepth   int32
	IsFirstChild bool
	LastSibling  bool
	SiblingCount int32
	Replacement  int32
}

// Arena owns every node of one trie by value, addressed by index.
type Arena struct {
	Nodes []Node
}

// RootIndex is always 0: the first node New allocates.
const RootIndex int32 = 0

// New creates an arena containing only the root node (sentinel letter 0).
func New() *Arena {
	a := &Arena{}
	a.Nodes = append(a.Nodes, Node{
		Letter:      0,
		Parent:      NoChild,
		FirstChild:  NoChild,
		Replacement: NoChild,
	})
	return a
}

// Children returns idx's children in insertion order: first FirstChild,
// then NextSiblings.
func (a *Arena) Children(idx int32) []int32 {
	n := &a.Nodes[idx]
	if n.FirstChild == NoChild {
		return nil
	}
	children := make([]int32, 0, 1+len(n.NextSiblings))
	children = append(children, n.FirstChild)
	children = append(children, n.NextSiblings...)
	return children
}

// FindChild returns the index of idx's child with the given letter, or
// NoChild if there is none.
func (a *Arena) FindChild(idx int32, letter byte) int32 {
	n := &a.Nodes[idx]
	if n.FirstChild == NoChild {
		return NoChild
	}
	if a.Nodes[n.FirstChild].Letter == letter {
		return n.FirstChild
	}
	for _, sib := range n.NextSiblings {
		if a.Nodes[sib].Letter == letter {
			return sib
		}
	}
	return NoChild
}

// AddChild appends a new child with the given letter to idx and returns
// its index. The first child added to a node becomes its FirstChild;
// later ones are appended to NextSiblings.
func (a *Arena) AddChild(idx int32, letter byte) int32 {
	childIdx := int32(len(a.Nodes))
	a.Nodes = append(a.Nodes, Node{
		Letter:      letter,
		Parent:      idx,
		FirstChild:  NoChild,
		Replacement: NoChild,
	})

	parent := &a.Nodes[idx]
	if parent.FirstChild == NoChild {
		parent.FirstChild = childIdx
	} else {
		parent.NextSiblings = append(parent.NextSiblings, childIdx)
	}
	return childIdx
}

// NodeCount does a full traversal of the reachable node set, counting
// each node once even if shared subgraphs make it reachable from more
// than one parent (post-minimization).
func (a *Arena) NodeCount() int {
	return len(a.Reachable())
}

// Reachable returns every node index reachable from the root, in BFS
// order, visiting shared subgraphs once.
func (a *Arena) Reachable() []int32 {
	visited := bitset.New(uint(len(a.Nodes)))
	queue := []int32{RootIndex}
	visited.Set(uint(RootIndex))

	var order []int32
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		order = append(order, idx)

		for _, child := range a.Children(idx) {
			if !visited.Test(uint(child)) {
				visited.Set(uint(child))
				queue = append(queue, child)
			}
		}
	}
	return order
}

// Resolve follows a chain of Replacement pointers to the canonical node
// that idx was fused into, if any.
func (a *Arena) Resolve(idx int32) int32 {
	for a.Nodes[idx].Replacement != NoChild {
		idx = a.Nodes[idx].Replacement
	}
	return idx
}
