package index

import (
	"container/heap"
	"sort"
)

// entryHeap implements container/heap.Interface as a min-heap where the root
// is the worst kept candidate: lowest score first, and among equal scores the
// lexicographically largest word. That makes the evictable candidate pop off
// in O(log k) when a better one arrives.
type entryHeap []Entry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].Score != h[j].Score {
		return h[i].Score < h[j].Score
	}
	return h[i].Word > h[j].Word
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x any) { *h = append(*h, x.(Entry)) }

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// topK is a bounded best-k selection over (score desc, word asc). Candidates
// are value data, never references into the trie.
type topK struct {
	k       int
	entries entryHeap
}

func newTopK(k int) *topK {
	// k is caller-supplied and may be far larger than the match count.
	capHint := k
	if capHint > 1024 {
		capHint = 1024
	}
	return &topK{k: k, entries: make(entryHeap, 0, capHint)}
}

// better reports whether a outranks b under (score desc, word asc).
func better(a, b Entry) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.Word < b.Word
}

// Offer considers a candidate, evicting the current worst when the selection
// is full and the candidate outranks it.
func (t *topK) Offer(e Entry) {
	if len(t.entries) < t.k {
		heap.Push(&t.entries, e)
		return
	}
	if better(e, t.entries[0]) {
		t.entries[0] = e
		heap.Fix(&t.entries, 0)
	}
}

// Ranked drains the selection into its final order: score descending, exact
// ties broken by ascending word order.
func (t *topK) Ranked() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	sort.Slice(out, func(i, j int) bool { return better(out[i], out[j]) })
	return out
}
