package sarf

import (
	"iter"

	"github.com/npillmayer/sarf/patterns"
	"github.com/npillmayer/sarf/roots"
)

// RootStore is the view of the root tree needed for generation and
// validation.
type RootStore interface {
	Search(raw string) *roots.Node
	AddDerivedWord(raw, word string) bool
}

// PatternStore is the view of the pattern table needed for generation and
// validation.
type PatternStore interface {
	Rule(pattern string) (string, bool)
	All() iter.Seq[string]
}

var (
	_ RootStore    = (*roots.Tree)(nil)
	_ PatternStore = (*patterns.Table)(nil)
)

// recordingStore forwards recorded words to the lexicon of an engine.
type recordingStore struct {
	*roots.Tree
	lexicon *Lexicon
}

func (s recordingStore) AddDerivedWord(raw, word string) bool {
	n := s.Tree.Search(raw)
	if n == nil || word == "" {
		return false
	}
	s.lexicon.Add(word, n.Root)
	return n.Derived.Add(word)
}
