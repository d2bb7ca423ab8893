package dawg

import "testing"

func TestMakeCellRoundTrip(t *testing.T) {
	cases := []struct {
		letter      byte
		terminal    bool
		lastSibling bool
		firstChild  int32
	}{
		{'A', true, false, 5},
		{'Z', false, true, noChild},
		{0, false, false, 0},
	}

	for _, c := range cases {
		cell := makeCell(c.letter, c.terminal, c.lastSibling, c.firstChild)
		if cell.letter() != c.letter {
			t.Errorf("letter() = %v, want %v", cell.letter(), c.letter)
		}
		if cell.terminal() != c.terminal {
			t.Errorf("terminal() = %v, want %v", cell.terminal(), c.terminal)
		}
		if cell.lastSibling() != c.lastSibling {
			t.Errorf("lastSibling() = %v, want %v", cell.lastSibling(), c.lastSibling)
		}
		if cell.firstChildIndex() != c.firstChild {
			t.Errorf("firstChildIndex() = %v, want %v", cell.firstChildIndex(), c.firstChild)
		}
	}
}

func TestChildIteratorStopsAtLastSibling(t *testing.T) {
	cells := sliceCells{
		makeCell('A', false, false, noChild),
		makeCell('B', false, true, noChild),
		makeCell('C', false, true, noChild), // unreachable: never pointed to
	}

	it := newChildIterator(cells, 0)
	var letters []byte
	for {
		_, cell, ok := it.Next()
		if !ok {
			break
		}
		letters = append(letters, cell.letter())
	}

	if string(letters) != "AB" {
		t.Errorf("iterated letters = %q, want AB", letters)
	}
}

func TestChildIteratorNoChildren(t *testing.T) {
	it := newChildIterator(sliceCells{}, noChild)
	if _, _, ok := it.Next(); ok {
		t.Error("iterating the no-children sentinel should yield nothing")
	}
}
