package dawg_test

import (
	"os"
	"strings"
	"testing"

	"github.com/milden6/dawg"
)

func buildDawg(t *testing.T, words []string) *dawg.Dawg {
	t.Helper()
	b := dawg.New()
	b.AddAll(words)
	return b.Build()
}

// S1: membership.
func TestContainsMembership(t *testing.T) {
	d := buildDawg(t, []string{"search", "searched", "searching"})

	cases := []struct {
		word string
		want bool
	}{
		{"search", true},
		{"SEARCH", true},
		{"searched", true},
		{"searches", false},
		{"j", false},
		{"", false},
	}
	for _, c := range cases {
		if got := d.Contains(c.word); got != c.want {
			t.Errorf("Contains(%q) = %v, want %v", c.word, got, c.want)
		}
	}
}

// S2: node-sharing. CARS and BARS must share their ARS tail: walking
// from each word's second letter onward lands on identical node indices.
func TestNodeSharingOnCommonSuffix(t *testing.T) {
	b := dawg.New()
	b.Add("cars")
	b.Add("bars")
	d := b.Build()

	if !d.Contains("cars") || !d.Contains("bars") {
		t.Fatal("both words should be present")
	}

	before := d.NodeCount()
	bBuilder := dawg.New()
	bBuilder.Add("cars")
	soloCount := bBuilder.Build().NodeCount()

	// Adding BARS should add exactly one node (the 'B' itself) if the
	// ARS suffix is shared rather than duplicated.
	if before != soloCount+1 {
		t.Errorf("NodeCount() = %d, want %d (suffix ARS should be shared)", before, soloCount+1)
	}
}

func TestWordCount(t *testing.T) {
	d := buildDawg(t, []string{"cars", "cars", "bars"})
	if got := d.WordCount(); got != 2 {
		t.Errorf("WordCount() = %d, want 2", got)
	}
}

func TestEnumerateVisitsEveryWord(t *testing.T) {
	words := []string{"cars", "bars", "bar"}
	d := buildDawg(t, words)

	found := make(map[string]bool)
	d.Enumerate(func(prefix []byte, final bool) dawg.EnumerationResult {
		if final && len(prefix) > 0 {
			found[string(prefix)] = true
		}
		return dawg.Continue
	})

	for _, w := range words {
		if !found[strings.ToUpper(w)] {
			t.Errorf("Enumerate did not visit %q", w)
		}
	}
	if len(found) != len(words) {
		t.Errorf("Enumerate visited %d words, want %d", len(found), len(words))
	}
}

func TestEnumerateStop(t *testing.T) {
	d := buildDawg(t, []string{"cars", "bars"})

	count := 0
	d.Enumerate(func(prefix []byte, final bool) dawg.EnumerationResult {
		count++
		return dawg.Stop
	})
	if count != 1 {
		t.Errorf("Enumerate kept going past Stop: called %d times", count)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	words := []string{"search", "searched", "searching"}
	d := buildDawg(t, words)

	tmp := t.TempDir() + "/words.dawg"
	if _, err := d.Save(tmp); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	defer os.Remove(tmp)

	loaded, err := dawg.Load(tmp)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if loaded.WordCount() != d.WordCount() || loaded.NodeCount() != d.NodeCount() {
		t.Errorf("loaded (%d words, %d nodes) != original (%d words, %d nodes)",
			loaded.WordCount(), loaded.NodeCount(), d.WordCount(), d.NodeCount())
	}
	for _, w := range words {
		if !loaded.Contains(w) {
			t.Errorf("loaded Dawg missing %q", w)
		}
	}
}

func TestLoadMmapRoundTrip(t *testing.T) {
	words := []string{"search", "searched", "searching"}
	d := buildDawg(t, words)

	tmp := t.TempDir() + "/words.dawg"
	if _, err := d.Save(tmp); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	defer os.Remove(tmp)

	loaded, err := dawg.LoadMmap(tmp)
	if err != nil {
		t.Fatalf("LoadMmap() error: %v", err)
	}
	for _, w := range words {
		if !loaded.Contains(w) {
			t.Errorf("mmap-loaded Dawg missing %q", w)
		}
	}
	if loaded.Contains("nonsense") {
		t.Error("mmap-loaded Dawg contains a word it shouldn't")
	}
}

func TestBuildHashedMatchesBuild(t *testing.T) {
	words := []string{"cars", "bars", "car", "bar", "search", "searched", "searching"}

	b1 := dawg.New()
	b1.AddAll(words)
	pairwise := b1.Build()

	b2 := dawg.New()
	b2.AddAll(words)
	hashed := b2.BuildHashed()

	if pairwise.NodeCount() != hashed.NodeCount() {
		t.Errorf("pairwise NodeCount() = %d, hashed = %d", pairwise.NodeCount(), hashed.NodeCount())
	}
	for _, w := range words {
		if !hashed.Contains(w) {
			t.Errorf("BuildHashed() dawg missing %q", w)
		}
	}
}

func TestExtractWords(t *testing.T) {
	results := []dawg.Result{
		{Word: "CAT"},
		{Word: "CAT"},
		{Word: "DOG"},
	}
	words := dawg.ExtractWords(results)
	if len(words) != 2 {
		t.Errorf("ExtractWords() returned %d distinct words, want 2", len(words))
	}
}
