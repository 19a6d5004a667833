package sarf

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of derivations a Generator memoizes unless
// told otherwise.
const DefaultCacheSize = 4096

// ErrorCode tells why a generation attempt failed.
type ErrorCode string

const (
	RootNotFound     ErrorCode = "ROOT_NOT_FOUND"
	PatternNotFound  ErrorCode = "PATTERN_NOT_FOUND"
	DerivationFailed ErrorCode = "DERIVATION_FAILED"
)

// Result is the outcome of one generation attempt. Root and Pattern echo the
// caller's input. Failures are reported in Error, never as a Go error, so a
// family generation can carry on past them.
type Result struct {
	OK      bool      `json:"ok"`
	Root    string    `json:"root"`
	Pattern string    `json:"pattern"`
	Word    string    `json:"word,omitempty"`
	Error   ErrorCode `json:"error,omitempty"`
}

type derivationKey struct {
	root, rule string
}

type derivation struct {
	word string
	ok   bool
}

// Generator produces derived words from the roots and patterns of two
// stores.
type Generator struct {
	roots    RootStore
	patterns PatternStore
	cache    *lru.Cache[derivationKey, derivation] // nil if disabled
}

// NewGenerator creates a generator over the given stores. Derivations are
// memoized in an LRU cache holding up to cacheSize entries; a cacheSize of
// 0 or less disables caching.
func NewGenerator(rs RootStore, ps PatternStore, cacheSize int) *Generator {
	g := &Generator{roots: rs, patterns: ps}
	if cacheSize > 0 {
		cache, err := lru.New[derivationKey, derivation](cacheSize)
		if err != nil {
			tracer().Errorf("derivation cache disabled: %v", err)
		}
		g.cache = cache
	}
	return g
}

// GenerateOne derives the word for root and pattern. Both have to be
// present in their stores. If store is set, a successfully derived word is
// recorded with its root.
func (g *Generator) GenerateOne(root, pattern string, store bool) Result {
	res := Result{Root: root, Pattern: pattern}
	if g.roots.Search(root) == nil {
		res.Error = RootNotFound
		return res
	}
	rule, ok := g.patterns.Rule(pattern)
	if !ok {
		res.Error = PatternNotFound
		return res
	}
	word, ok := g.derive(root, rule)
	if !ok {
		res.Error = DerivationFailed
		return res
	}
	if store {
		g.roots.AddDerivedWord(root, word)
	}
	res.OK, res.Word = true, word
	return res
}

// GenerateFamily applies every stored pattern to root, recording all derived
// words. The result contains one entry per pattern, failures included, or a
// single ROOT_NOT_FOUND entry.
func (g *Generator) GenerateFamily(root string) []Result {
	if g.roots.Search(root) == nil {
		return []Result{{Root: root, Error: RootNotFound}}
	}
	var results []Result
	for pattern := range g.patterns.All() {
		results = append(results, g.GenerateOne(root, pattern, true))
	}
	tracer().Debugf("generated family of %s with %d members", root, len(results))
	return results
}

func (g *Generator) derive(root, rule string) (string, bool) {
	if g.cache == nil {
		return Derive(root, rule)
	}
	key := derivationKey{root: root, rule: rule}
	if d, ok := g.cache.Get(key); ok {
		return d.word, d.ok
	}
	word, ok := Derive(root, rule)
	g.cache.Add(key, derivation{word: word, ok: ok})
	return word, ok
}
