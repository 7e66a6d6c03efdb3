package index

import (
	"reflect"
	"testing"
)

// seedVocab mirrors the small vocabulary used across the adapter tests:
// scores are distinct so the expected ranking is unambiguous.
func seedVocab() *Index {
	ix := New()
	ix.Insert("hello", 10)
	ix.Insert("help", 9)
	ix.Insert("hell", 8)
	ix.Insert("helmet", 7)
	ix.Insert("heap", 6)
	ix.Insert("zebra", 5)
	ix.Insert("toast", 4)
	ix.Insert("apple", 3)
	return ix
}

func TestInsertAndContains(t *testing.T) {
	ix := New()
	ix.Insert("hello", 5)
	if !ix.Contains("hello") {
		t.Error("Contains(hello) = false after insert, want true")
	}
	if ix.Contains("hell") {
		t.Error("Contains(hell) = true, want false: prefix of a word is not a word")
	}
	if ix.Contains("helloo") {
		t.Error("Contains(helloo) = true, want false")
	}
}

func TestReinsertUpdatesScoreWithoutDoubleCount(t *testing.T) {
	ix := New()
	ix.Insert("word", 1)
	before := ix.Stats()

	ix.Insert("word", 42)
	after := ix.Stats()

	if after.Words != before.Words {
		t.Errorf("Words after re-insert = %d, want %d", after.Words, before.Words)
	}
	if after.Nodes != before.Nodes {
		t.Errorf("Nodes after re-insert = %d, want %d", after.Nodes, before.Nodes)
	}
	items := ix.Items()
	if len(items) != 1 || items[0].Score != 42 {
		t.Errorf("Items = %v, want [{word 42}]", items)
	}
}

func TestCompleteRanking(t *testing.T) {
	ix := seedVocab()
	got := ix.Complete("he", 3)
	want := []string{"hello", "help", "hell"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Complete(he, 3) = %v, want %v", got, want)
	}
}

func TestCompleteLargeKTruncates(t *testing.T) {
	ix := seedVocab()
	got := ix.Complete("he", 100)
	want := []string{"hello", "help", "hell", "helmet", "heap"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Complete(he, 100) = %v, want %v", got, want)
	}
}

func TestCompleteEmptyPrefixRanksWholeIndex(t *testing.T) {
	ix := seedVocab()
	got := ix.Complete("", 2)
	want := []string{"hello", "help"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Complete(\"\", 2) = %v, want %v", got, want)
	}
}

func TestCompleteAbsentPrefix(t *testing.T) {
	ix := seedVocab()
	if got := ix.Complete("xyz", 5); len(got) != 0 {
		t.Errorf("Complete(xyz, 5) = %v, want empty", got)
	}
}

func TestCompleteZeroAndNegativeK(t *testing.T) {
	ix := seedVocab()
	if got := ix.Complete("he", 0); len(got) != 0 {
		t.Errorf("Complete(he, 0) = %v, want empty", got)
	}
	if got := ix.Complete("he", -3); len(got) != 0 {
		t.Errorf("Complete(he, -3) = %v, want empty", got)
	}
}

func TestCompleteTieBreakLexicographic(t *testing.T) {
	ix := New()
	ix.Insert("aa", 1.0)
	ix.Insert("ab", 1.0)
	ix.Insert("ac", 1.0)

	got := ix.Complete("a", 3)
	want := []string{"aa", "ab", "ac"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Complete(a, 3) = %v, want %v", got, want)
	}

	// With a full selection, the lexicographically larger word is the one
	// evicted on an exact-score tie.
	got = ix.Complete("a", 2)
	want = []string{"aa", "ab"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Complete(a, 2) = %v, want %v", got, want)
	}
}

func TestCompleteIncludesPrefixItself(t *testing.T) {
	ix := New()
	ix.Insert("he", 3)
	ix.Insert("help", 1)
	got := ix.Complete("he", 5)
	want := []string{"he", "help"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Complete(he, 5) = %v, want %v", got, want)
	}
}

func TestScoreUpdateAffectsRanking(t *testing.T) {
	ix := New()
	ix.Insert("hello", 1)
	ix.Insert("helium", 10)
	got := ix.Complete("he", 2)
	want := []string{"helium", "hello"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Complete(he, 2) = %v, want %v", got, want)
	}

	ix.Insert("hello", 20)
	got = ix.Complete("he", 2)
	want = []string{"hello", "helium"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Complete(he, 2) after update = %v, want %v", got, want)
	}
}

func TestRemovePrunesExactly(t *testing.T) {
	ix := New()
	ix.Insert("toast", 1)
	if got := ix.Stats(); got.Nodes != 6 || got.Words != 1 {
		t.Fatalf("Stats after insert = %+v, want 6 nodes, 1 word", got)
	}

	if !ix.Remove("toast") {
		t.Fatal("Remove(toast) = false, want true")
	}
	if ix.Contains("toast") {
		t.Error("Contains(toast) = true after remove")
	}
	got := ix.Stats()
	if got.Nodes != 1 || got.Words != 0 || got.Height != 0 {
		t.Errorf("Stats after remove = %+v, want root only", got)
	}
}

func TestRemoveStopsAtSharedBranch(t *testing.T) {
	ix := New()
	ix.Insert("team", 2)
	ix.Insert("tear", 3)
	before := ix.Stats() // t-e-a shared, m and r leaves: 6 nodes

	if !ix.Remove("team") {
		t.Fatal("Remove(team) = false, want true")
	}
	after := ix.Stats()
	if after.Nodes != before.Nodes-1 {
		t.Errorf("Nodes = %d, want %d: only the 'm' leaf is dead", after.Nodes, before.Nodes-1)
	}
	if !ix.Contains("tear") {
		t.Error("Contains(tear) = false, live branch was pruned")
	}
}

func TestRemoveWordThatIsPrefixOfAnother(t *testing.T) {
	ix := New()
	ix.Insert("te", 1)
	ix.Insert("team", 2)
	before := ix.Stats()

	if !ix.Remove("te") {
		t.Fatal("Remove(te) = false, want true")
	}
	after := ix.Stats()
	if after.Nodes != before.Nodes {
		t.Errorf("Nodes = %d, want %d: no node on team's path is dead", after.Nodes, before.Nodes)
	}
	if after.Words != before.Words-1 {
		t.Errorf("Words = %d, want %d", after.Words, before.Words-1)
	}
	if !ix.Contains("team") {
		t.Error("Contains(team) = false after removing its prefix word")
	}
}

func TestRemoveAbsentChangesNothing(t *testing.T) {
	ix := New()
	ix.Insert("team", 2)
	before := ix.Stats()

	if ix.Remove("missing") {
		t.Error("Remove(missing) = true, want false")
	}
	// Prefix exists but is not itself a word.
	if ix.Remove("tea") {
		t.Error("Remove(tea) = true, want false")
	}
	if after := ix.Stats(); after != before {
		t.Errorf("Stats changed by failed removes: %+v -> %+v", before, after)
	}
}

func TestStats(t *testing.T) {
	ix := New()
	if got := ix.Stats(); got.Words != 0 || got.Height != 0 || got.Nodes != 1 {
		t.Errorf("empty Stats = %+v, want {0 0 1}", got)
	}

	ix = seedVocab()
	got := ix.Stats()
	if got.Words != 8 {
		t.Errorf("Words = %d, want 8", got.Words)
	}
	if got.Height != 6 {
		t.Errorf("Height = %d, want 6 (helmet)", got.Height)
	}
	if got.Nodes < got.Words {
		t.Errorf("Nodes = %d < Words = %d", got.Nodes, got.Words)
	}
}

func TestItemsDepthFirstOrder(t *testing.T) {
	ix := New()
	ix.Insert("b", 2)
	ix.Insert("a", 1)
	ix.Insert("ab", 3)

	got := ix.Items()
	want := []Entry{{"a", 1}, {"ab", 3}, {"b", 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Items = %v, want %v", got, want)
	}
}

func TestCompleteDoesNotMutate(t *testing.T) {
	ix := seedVocab()
	before := ix.Stats()
	ix.Complete("he", 3)
	ix.Complete("", 100)
	ix.Complete("nope", 1)
	if after := ix.Stats(); after != before {
		t.Errorf("Stats changed by Complete: %+v -> %+v", before, after)
	}
}
