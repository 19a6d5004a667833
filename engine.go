package sarf

import (
	"fmt"
	"iter"

	"github.com/npillmayer/sarf/patterns"
	"github.com/npillmayer/sarf/roots"
)

// Options configure an Engine.
type Options struct {
	Identifier string // free-form name, e.g. the data set loaded
	CacheSize  int    // derivation cache entries; 0 means DefaultCacheSize, < 0 disables
}

// Engine bundles a root tree, a pattern table, a generator, a validator and
// a lexicon of recorded words. It is the API used by the commands.
//
// An Engine is not safe for concurrent mutation.
type Engine struct {
	Identifier string
	patterns   *patterns.Table
	roots      *roots.Tree
	lexicon    *Lexicon
	generator  *Generator
	validator  *Validator
}

// EngineStats summarizes the contents of an Engine.
type EngineStats struct {
	Roots       int            `json:"roots"`
	TreeHeight  int            `json:"tree_height"`
	Derivatives int            `json:"derivatives"`
	Words       int            `json:"words"`
	Patterns    patterns.Stats `json:"patterns"`
}

// NewEngine creates an engine with empty stores.
func NewEngine(opts Options) *Engine {
	cacheSize := opts.CacheSize
	if cacheSize == 0 {
		cacheSize = DefaultCacheSize
	}
	e := &Engine{
		Identifier: opts.Identifier,
		patterns:   patterns.NewTable(),
		roots:      roots.NewTree(),
		lexicon:    NewLexicon(),
	}
	e.generator = NewGenerator(recordingStore{Tree: e.roots, lexicon: e.lexicon}, e.patterns, cacheSize)
	e.validator = NewValidator(e.generator)
	return e
}

// Patterns gives access to the pattern table.
func (e *Engine) Patterns() *patterns.Table { return e.patterns }

// Roots gives access to the root tree. Derived words added directly to the
// tree are not seen by the lexicon until RebuildLexicon is called.
func (e *Engine) Roots() *roots.Tree { return e.roots }

// Lexicon gives access to the reverse index of recorded words.
func (e *Engine) Lexicon() *Lexicon { return e.lexicon }

// AddRoot inserts a root and returns it in dashed form. Adding a known root
// is not an error.
func (e *Engine) AddRoot(raw string) (string, error) {
	n, err := e.roots.Insert(raw)
	if err != nil {
		return "", fmt.Errorf("add root: %w", err)
	}
	return n.Dashed(), nil
}

// DeleteRoot removes a root together with its recorded words.
func (e *Engine) DeleteRoot(raw string) bool {
	n := e.roots.Search(raw)
	if n == nil {
		return false
	}
	compact, words := n.Root, n.Derived.Words()
	if !e.roots.Delete(raw) {
		return false
	}
	e.lexicon.RemoveRoot(compact, words)
	return true
}

// AddDerivedWord records word with an existing root.
func (e *Engine) AddDerivedWord(raw, word string) bool {
	return e.generator.roots.AddDerivedWord(raw, word)
}

// RebuildLexicon re-indexes all words recorded in the root tree.
func (e *Engine) RebuildLexicon() {
	e.lexicon.Rebuild(e.roots)
}

// AddPattern inserts a pattern, with an optional rule differing from it.
func (e *Engine) AddPattern(pattern string, rule ...string) error {
	if err := e.patterns.Insert(pattern, rule...); err != nil {
		return fmt.Errorf("add pattern: %w", err)
	}
	return nil
}

// UpdatePattern replaces the rule of a pattern.
func (e *Engine) UpdatePattern(pattern, rule string) error {
	if err := e.patterns.Update(pattern, rule); err != nil {
		return fmt.Errorf("update pattern: %w", err)
	}
	return nil
}

// RemovePattern deletes a pattern.
func (e *Engine) RemovePattern(pattern string) error {
	if err := e.patterns.Remove(pattern); err != nil {
		return fmt.Errorf("remove pattern: %w", err)
	}
	return nil
}

// Generate derives one word, see Generator.GenerateOne.
func (e *Engine) Generate(root, pattern string, store bool) Result {
	return e.generator.GenerateOne(root, pattern, store)
}

// GenerateFamily derives the words of all patterns for root.
func (e *Engine) GenerateFamily(root string) []Result {
	return e.generator.GenerateFamily(root)
}

// Validate checks whether word belongs to root.
func (e *Engine) Validate(root, word string) Verdict {
	return e.validator.Validate(root, word)
}

// LoadRoots inserts one dashed root per line. It returns the number of roots
// added and one *arabic.LineError per skipped line.
func (e *Engine) LoadRoots(lines iter.Seq[string]) (int, []error) {
	return e.roots.LoadReport(lines)
}

// LoadPatterns inserts one pattern per line. It returns the number of
// patterns added and one *arabic.LineError per skipped line.
func (e *Engine) LoadPatterns(lines iter.Seq[string]) (int, []error) {
	return e.patterns.LoadReport(lines)
}

// Stats summarizes the engine's contents.
func (e *Engine) Stats() EngineStats {
	return EngineStats{
		Roots:       e.roots.Size(),
		TreeHeight:  e.roots.Height(),
		Derivatives: e.roots.CountTotalDerivatives(),
		Words:       e.lexicon.Len(),
		Patterns:    e.patterns.Stats(),
	}
}
