package geo

import (
	"sort"
	"strings"

	"github.com/bd-address-extractor/app/models"
)

// Prefix tree over lowercase whitespace-normalized area names. Lookup and
// prefix walks stay sub-millisecond over thousands of entries, which the
// gazetteer's latency contract depends on.

type trieNode struct {
	children map[rune]*trieNode
	entries  []*models.GazetteerEntry // set on terminal nodes
}

type trie struct {
	root *trieNode
	size int
}

func newTrie() *trie {
	return &trie{root: &trieNode{children: map[rune]*trieNode{}}}
}

// trieKey canonical form used for every insert and lookup.
func trieKey(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

func (t *trie) insert(name string, entry *models.GazetteerEntry) {
	key := trieKey(name)
	if key == "" {
		return
	}
	node := t.root
	for _, r := range key {
		next, ok := node.children[r]
		if !ok {
			next = &trieNode{children: map[rune]*trieNode{}}
			node.children[r] = next
		}
		node = next
	}
	node.entries = append(node.entries, entry)
	t.size++
}

// exact returns the entries stored at the key, nil when absent.
func (t *trie) exact(name string) []*models.GazetteerEntry {
	node := t.descend(trieKey(name))
	if node == nil {
		return nil
	}
	return node.entries
}

// withPrefix collects every entry under the prefix, most frequent first,
// stopping at limit (limit <= 0 means no cap).
func (t *trie) withPrefix(prefix string, limit int) []*models.GazetteerEntry {
	node := t.descend(trieKey(prefix))
	if node == nil {
		return nil
	}
	var out []*models.GazetteerEntry
	var walk func(n *trieNode)
	walk = func(n *trieNode) {
		out = append(out, n.entries...)
		// deterministic child order
		runes := make([]rune, 0, len(n.children))
		for r := range n.children {
			runes = append(runes, r)
		}
		sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
		for _, r := range runes {
			walk(n.children[r])
		}
	}
	walk(node)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ObservedFrequency > out[j].ObservedFrequency
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (t *trie) descend(key string) *trieNode {
	node := t.root
	for _, r := range key {
		next, ok := node.children[r]
		if !ok {
			return nil
		}
		node = next
	}
	return node
}
