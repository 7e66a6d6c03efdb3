// Package index implements the score-ranked prefix vocabulary index.
//
// The index is a plain ownership trie: one rune per edge, each node optionally
// marking the end of a stored word together with that word's score. It answers
// exact membership, ranked prefix completion and aggregate stats, and supports
// insert/update/remove with synchronous pruning of dead branches.
//
// The index performs no locking. It is built for single-threaded, synchronous
// use; embed it behind a sync.RWMutex if a concurrent host needs it.
package index

import "sort"

// Entry is a stored word together with its relevance score.
type Entry struct {
	Word  string
	Score float64
}

// Stats reports aggregate shape information about an Index.
// Words and Nodes are maintained incrementally and cost nothing to read;
// Height is computed by a full traversal on every Stats call.
type Stats struct {
	Words  int
	Height int
	Nodes  int
}

type node struct {
	children map[rune]*node
	terminal bool
	score    float64
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// dead reports whether the node no longer lies on the path to any stored word.
func (n *node) dead() bool {
	return !n.terminal && len(n.children) == 0
}

// sortedRunes returns the node's child edges in ascending rune order.
// Completion and Items depend on this order for deterministic output.
func (n *node) sortedRunes() []rune {
	runes := make([]rune, 0, len(n.children))
	for r := range n.children {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return runes
}

// Index is a rune-keyed trie mapping words to scores. The zero value is not
// usable; create one with New.
type Index struct {
	root  *node
	words int
	nodes int
}

// New returns an empty index. The root node represents the empty prefix and
// is never removed, so the node count starts at 1.
func New() *Index {
	return &Index{root: newNode(), nodes: 1}
}

// findNode walks the exact rune path of word and returns the final node,
// or nil when some edge along the path is missing.
func (ix *Index) findNode(word string) *node {
	cur := ix.root
	for _, r := range word {
		child, ok := cur.children[r]
		if !ok {
			return nil
		}
		cur = child
	}
	return cur
}

// Insert stores word with the given score, creating one node per missing
// rune along the path. Re-inserting an existing word overwrites its score
// without changing the word count. Words are indexed as given; callers
// normalize case and whitespace beforehand.
//
// Cost is O(len(word)).
func (ix *Index) Insert(word string, score float64) {
	cur := ix.root
	for _, r := range word {
		child, ok := cur.children[r]
		if !ok {
			child = newNode()
			cur.children[r] = child
			ix.nodes++
		}
		cur = child
	}
	if !cur.terminal {
		cur.terminal = true
		ix.words++
	}
	cur.score = score
}

// Remove deletes word from the index and prunes every node that no longer
// leads to a stored word. It returns false, with no structural change, when
// the word is absent — including when the path exists only as a prefix of
// other words.
//
// Pruning walks back up the recorded path and detaches nodes while they are
// dead (no children, not terminal), stopping at the first live ancestor.
// The root survives even when the index becomes empty. Cost is O(len(word)).
func (ix *Index) Remove(word string) bool {
	type step struct {
		parent *node
		r      rune
		child  *node
	}
	cur := ix.root
	path := make([]step, 0, len(word))
	for _, r := range word {
		child, ok := cur.children[r]
		if !ok {
			return false
		}
		path = append(path, step{parent: cur, r: r, child: child})
		cur = child
	}
	if !cur.terminal {
		return false
	}

	cur.terminal = false
	cur.score = 0
	ix.words--

	for i := len(path) - 1; i >= 0; i-- {
		st := path[i]
		if !st.child.dead() {
			break
		}
		delete(st.parent.children, st.r)
		ix.nodes--
	}
	return true
}

// Contains reports whether the exact word is stored. It never mutates.
// Cost is O(len(word)).
func (ix *Index) Contains(word string) bool {
	n := ix.findNode(word)
	return n != nil && n.terminal
}

// Complete returns up to k words starting with prefix, ordered by score
// descending with exact-score ties broken by ascending word order. An empty
// prefix ranks over the whole index. An absent prefix or k <= 0 yields an
// empty result; neither is an error.
//
// The subtree is enumerated depth-first in ascending rune order while a
// bounded min-heap keeps the k best candidates seen so far, so the cost is
// O(len(prefix) + matches·log k + k·log k) rather than sorting every match.
func (ix *Index) Complete(prefix string, k int) []string {
	if k <= 0 {
		return nil
	}
	start := ix.findNode(prefix)
	if start == nil {
		return nil
	}

	best := newTopK(k)
	word := []rune(prefix)

	var collect func(n *node)
	collect = func(n *node) {
		if n.terminal {
			best.Offer(Entry{Word: string(word), Score: n.score})
		}
		for _, r := range n.sortedRunes() {
			word = append(word, r)
			collect(n.children[r])
			word = word[:len(word)-1]
		}
	}
	collect(start)

	entries := best.Ranked()
	words := make([]string, len(entries))
	for i, e := range entries {
		words[i] = e.Word
	}
	return words
}

// Stats returns the current word count, height and node count. Height is the
// edge count of the longest path from the root, so an empty index reports 0.
func (ix *Index) Stats() Stats {
	var height func(n *node) int
	height = func(n *node) int {
		max := 0
		for _, child := range n.children {
			if h := height(child); h > max {
				max = h
			}
		}
		if len(n.children) == 0 {
			return 0
		}
		return 1 + max
	}
	return Stats{Words: ix.words, Height: height(ix.root), Nodes: ix.nodes}
}

// Items returns every stored (word, score) pair in the same ascending-rune
// depth-first order Complete uses. It carries no ranking guarantee and exists
// to externalize the index contents, e.g. for snapshots.
func (ix *Index) Items() []Entry {
	items := make([]Entry, 0, ix.words)
	word := make([]rune, 0, 16)

	var collect func(n *node)
	collect = func(n *node) {
		if n.terminal {
			items = append(items, Entry{Word: string(word), Score: n.score})
		}
		for _, r := range n.sortedRunes() {
			word = append(word, r)
			collect(n.children[r])
			word = word[:len(word)-1]
		}
	}
	collect(ix.root)
	return items
}
