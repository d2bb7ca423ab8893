package trie

import "fmt"

// BFSNumber assigns Index in breadth-first order starting at the root,
// and records each node's IsFirstChild/LastSibling/SiblingCount relative
// to its parent's current child list. It returns the visited order.
func (a *Arena) BFSNumber() []int32 {
	order := a.Reachable()
	for i, idx := range order {
		a.Nodes[idx].Index = int32(i)
	}

	for _, idx := range order {
		children := a.Children(idx)
		count := len(children)
		for i, child := range children {
			a.Nodes[child].IsFirstChild = i == 0
			a.Nodes[child].LastSibling = i == count-1
			a.Nodes[child].SiblingCount = int32(count - 1)
		}
	}
	return order
}

// AssignChildDepths implements spec.md step 2: for every terminal node,
// walk upward toward the root, raising each ancestor's ChildDepth to the
// distance from that ancestor to the terminal node, and stopping as soon
// as a step would not increase it. Nodes untouched by this pass keep
// ChildDepth == -1 and are excluded from merging.
func (a *Arena) AssignChildDepths(order []int32) {
	for _, idx := range order {
		a.Nodes[idx].ChildDepth = -1
	}

	for _, idx := range order {
		n := &a.Nodes[idx]
		if !n.Terminal {
			continue
		}
		n.ChildDepth = 0

		ptr := idx
		depth := int32(0)
		for ptr != RootIndex {
			parent := a.Nodes[ptr].Parent
			depth++
			if depth > a.Nodes[parent].ChildDepth {
				a.Nodes[parent].ChildDepth = depth
				ptr = parent
			} else {
				break
			}
		}
	}
}

// bins groups the visited nodes by ChildDepth, ascending, skipping any
// node whose ChildDepth is still -1 (unreachable from a terminal).
func bins(a *Arena, order []int32) ([][]int32, int32) {
	byDepth := make(map[int32][]int32)
	maxDepth := int32(-1)

	for _, idx := range order {
		cd := a.Nodes[idx].ChildDepth
		if cd == -1 {
			continue
		}
		byDepth[cd] = append(byDepth[cd], idx)
		if cd > maxDepth {
			maxDepth = cd
		}
	}

	result := make([][]int32, maxDepth+1)
	for depth := int32(0); depth <= maxDepth; depth++ {
		result[depth] = byDepth[depth]
	}
	return result, maxDepth
}

// eligible reports whether idx is a merge candidate: it hasn't already
// been replaced, it is reached via its parent's FirstChild pointer, and
// it is an only child (this is the rule that lets it be redirected to
// without renumbering siblings).
func eligible(a *Arena, idx int32) bool {
	n := &a.Nodes[idx]
	return n.Replacement == NoChild && n.IsFirstChild && n.SiblingCount == 0
}

// Equals reports whether x and y head equal subtrees: same letter, same
// terminal flag, the same presence/absence of a first child (recursively
// equal when both present), and positionally-equal sibling sequences.
func Equals(a *Arena, x, y int32) bool {
	nx, ny := &a.Nodes[x], &a.Nodes[y]

	if nx.Letter != ny.Letter || nx.Terminal != ny.Terminal {
		return false
	}
	if (nx.FirstChild == NoChild) != (ny.FirstChild == NoChild) {
		return false
	}
	if nx.FirstChild != NoChild && !Equals(a, nx.FirstChild, ny.FirstChild) {
		return false
	}
	if len(nx.NextSiblings) != len(ny.NextSiblings) {
		return false
	}
	for i := range nx.NextSiblings {
		if !Equals(a, nx.NextSiblings[i], ny.NextSiblings[i]) {
			return false
		}
	}
	return true
}

// Minimize fuses subtree-isomorphic nodes bottom-up, bin by bin in
// ascending ChildDepth order. useHash selects a hash-based O(N)
// equivalence classification instead of the default pairwise O(N*d)
// comparison within each bin. Both accept the same words. The hash path
// never merges a node that has two or more children, while the pairwise
// path merges such nodes when their subtrees are equal, so on that input
// the hash path leaves more nodes.
func Minimize(a *Arena, useHash bool) {
	order := a.BFSNumber()
	a.AssignChildDepths(order)

	binsByDepth, maxDepth := bins(a, order)
	for depth := int32(0); depth <= maxDepth; depth++ {
		nodes := binsByDepth[depth]
		if len(nodes) == 0 {
			continue
		}
		if useHash {
			mergeBinHash(a, nodes)
		} else {
			mergeBinPairwise(a, nodes)
		}
	}
}

func mergeBinPairwise(a *Arena, nodes []int32) {
	for i, pick := range nodes {
		if !eligible(a, pick) {
			continue
		}
		for j := i + 1; j < len(nodes); j++ {
			search := nodes[j]
			if !eligible(a, search) {
				continue
			}
			if Equals(a, pick, search) {
				parent := a.Nodes[search].Parent
				a.Nodes[parent].FirstChild = pick
				a.Nodes[search].Replacement = pick
			}
		}
	}
}

// mergeBinHash classifies nodes by a canonical string key built from
// (letter, terminal, resolved children) instead of pairwise comparison.
// Bins are processed in ascending depth order, so a merged first child
// already resolves through Replacement to its canonical node. Children
// of a node with two or more children are never merge candidates and
// keep their own ids in the key, so two such nodes never share a key
// even when their subtrees are equal.
func mergeBinHash(a *Arena, nodes []int32) {
	seen := make(map[string]int32, len(nodes))

	for _, idx := range nodes {
		if !eligible(a, idx) {
			continue
		}

		key := nodeKey(a, idx)
		if canon, ok := seen[key]; ok {
			parent := a.Nodes[idx].Parent
			a.Nodes[parent].FirstChild = canon
			a.Nodes[idx].Replacement = canon
		} else {
			seen[key] = idx
		}
	}
}

func nodeKey(a *Arena, idx int32) string {
	n := &a.Nodes[idx]

	firstChild := int32(-1)
	if n.FirstChild != NoChild {
		firstChild = a.Resolve(n.FirstChild)
	}

	key := fmt.Sprintf("%d,%t,%d", n.Letter, n.Terminal, firstChild)
	for _, sib := range n.NextSiblings {
		key += fmt.Sprintf(",%d", a.Resolve(sib))
	}
	return key
}

// PackedInfo is the (letter, terminal, lastSibling, firstChild) tuple
// that one packed cell of the host package's node encoding is built
// from. It exists so this package doesn't need to know the bit layout.
type PackedInfo struct {
	Letter      byte
	Terminal    bool
	LastSibling bool
	FirstChild  int32
}

// Pack re-numbers the (now minimized) reachable nodes by a fresh BFS,
// assigning an index only the first time a node is visited so that
// shared subgraphs collapse to one run of cells, then returns one
// PackedInfo per node in that order, ready for the caller to encode.
func Pack(a *Arena) []PackedInfo {
	for i := range a.Nodes {
		a.Nodes[i].Index = -1
	}

	order := make([]int32, 0, len(a.Nodes))
	queue := []int32{RootIndex}
	a.Nodes[RootIndex].Index = 0
	next := int32(1)

	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		order = append(order, idx)

		for _, child := range a.Children(idx) {
			if a.Nodes[child].Index == -1 {
				a.Nodes[child].Index = next
				next++
				queue = append(queue, child)
			}
		}
	}

	infos := make([]PackedInfo, len(order))
	for _, idx := range order {
		n := &a.Nodes[idx]
		children := a.Children(idx)

		firstChild := int32(-1)
		if len(children) > 0 {
			firstChild = a.Nodes[children[0]].Index
		}

		lastSibling := n.LastSibling
		if idx == RootIndex {
			lastSibling = false
		}

		infos[n.Index] = PackedInfo{
			Letter:      n.Letter,
			Terminal:    n.Terminal,
			LastSibling: lastSibling,
			FirstChild:  firstChild,
		}
	}
	return infos
}
