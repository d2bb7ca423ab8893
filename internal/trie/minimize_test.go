package trie

import "testing"

func buildCarsBars() *Arena {
	a := New()
	addWord(a, "CARS")
	addWord(a, "BARS")
	return a
}

func TestMinimizeSharesCommonSuffix(t *testing.T) {
	a := buildCarsBars()
	Minimize(a, false)

	// root + C + B + (shared A, R, S) = 6.
	if got := a.NodeCount(); got != 6 {
		t.Errorf("NodeCount() after Minimize = %d, want 6", got)
	}
}

func TestMinimizeHashMatchesPairwise(t *testing.T) {
	a1 := buildCarsBars()
	Minimize(a1, false)

	a2 := buildCarsBars()
	Minimize(a2, true)

	if a1.NodeCount() != a2.NodeCount() {
		t.Errorf("pairwise NodeCount() = %d, hash NodeCount() = %d", a1.NodeCount(), a2.NodeCount())
	}
}

func TestAssignChildDepthsStopsAtFirstNonIncrease(t *testing.T) {
	a := New()
	addWord(a, "AT")
	addWord(a, "ATE")

	order := a.BFSNumber()
	a.AssignChildDepths(order)

	root := &a.Nodes[RootIndex]
	if root.ChildDepth != 3 {
		t.Errorf("root ChildDepth = %d, want 3 (A-T-E path length)", root.ChildDepth)
	}
}

func TestEligibleRequiresSoleFirstChild(t *testing.T) {
	a := New()
	aIdx := a.AddChild(RootIndex, 'A')
	a.AddChild(RootIndex, 'B')
	soleIdx := a.AddChild(aIdx, 'X')
	order := a.BFSNumber()
	_ = order

	bIdx := a.Nodes[RootIndex].NextSiblings[0]

	if !eligible(a, soleIdx) {
		t.Error("sole first child with no siblings should be eligible")
	}
	if eligible(a, bIdx) {
		t.Error("a node reached via NextSiblings should not be eligible")
	}
}

func TestPackCollapsesSharedSubgraphToOneRun(t *testing.T) {
	a := buildCarsBars()
	Minimize(a, false)
	infos := Pack(a)

	if len(infos) != 6 {
		t.Fatalf("Pack() returned %d cells, want 6", len(infos))
	}

	letters := make([]byte, len(infos))
	for i, info := range infos {
		letters[i] = info.Letter
	}
	// exactly one A, R, S despite two words sharing that tail
	counts := map[byte]int{}
	for _, l := range letters {
		counts[l]++
	}
	if counts['A'] != 1 || counts['R'] != 1 || counts['S'] != 1 {
		t.Errorf("letter counts = %v, want exactly one each of A, R, S", counts)
	}
}
