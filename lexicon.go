package sarf

import (
	"slices"

	"github.com/derekparker/trie"

	"github.com/npillmayer/sarf/arabic"
	"github.com/npillmayer/sarf/roots"
)

// Lexicon is a reverse index from recorded words to the roots they have
// been derived from. Words are indexed in normalized form, so lookups ignore
// shadda and short vowels.
type Lexicon struct {
	index *trie.Trie
	size  int
}

// rootSet is the payload of a trie node: the compact roots of one word.
type rootSet map[string]struct{}

func NewLexicon() *Lexicon {
	return &Lexicon{index: trie.New()}
}

// Add records that word has been derived from compactRoot.
func (lex *Lexicon) Add(word, compactRoot string) {
	key := arabic.NormalizeWord(word)
	if key == "" {
		return
	}
	if node, ok := lex.index.Find(key); ok {
		set := node.Meta().(rootSet)
		if len(set) == 0 {
			lex.size++
		}
		set[compactRoot] = struct{}{}
		return
	}
	lex.index.Add(key, rootSet{compactRoot: {}})
	lex.size++
}

// RemoveRoot drops compactRoot from the entries of words. Words left without
// any root disappear from the lexicon.
//
// Emptied keys stay in the trie with an empty root set, since removing a
// key from the trie may drop other keys sharing its path.
func (lex *Lexicon) RemoveRoot(compactRoot string, words []string) {
	for _, word := range words {
		set := lex.lookup(word)
		if len(set) == 0 {
			continue
		}
		delete(set, compactRoot)
		if len(set) == 0 {
			lex.size--
		}
	}
}

// lookup returns the root set of word, nil if word was never added.
func (lex *Lexicon) lookup(word string) rootSet {
	node, ok := lex.index.Find(arabic.NormalizeWord(word))
	if !ok {
		return nil
	}
	return node.Meta().(rootSet)
}

// Roots returns the dashed roots word has been derived from, sorted.
func (lex *Lexicon) Roots(word string) []string {
	set := lex.lookup(word)
	if len(set) == 0 {
		return nil
	}
	rr := make([]string, 0, len(set))
	for r := range set {
		rr = append(rr, roots.FormatDashed(r))
	}
	slices.Sort(rr)
	return rr
}

// Complete returns all recorded words starting with prefix, sorted. An empty
// prefix yields every word.
func (lex *Lexicon) Complete(prefix string) []string {
	var keys []string
	if p := arabic.NormalizeWord(prefix); p == "" {
		keys = lex.index.Keys()
	} else {
		keys = lex.index.PrefixSearch(p)
	}
	words := slices.DeleteFunc(keys, func(key string) bool {
		return len(lex.lookup(key)) == 0
	})
	slices.Sort(words)
	return words
}

// Rebuild replaces the contents of the lexicon with the derived words of
// tree.
func (lex *Lexicon) Rebuild(tree *roots.Tree) {
	lex.index, lex.size = trie.New(), 0
	for n := range tree.Walk() {
		for _, word := range n.Derived.Words() {
			lex.Add(word, n.Root)
		}
	}
	tracer().Debugf("lexicon rebuilt with %d words", lex.size)
}

// Len is the number of distinct normalized words.
func (lex *Lexicon) Len() int {
	return lex.size
}
